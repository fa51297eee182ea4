package validators

import (
	"context"
	"regexp"

	"github.com/MKhiriev/go-fleet-logbook/models"
)

const (
	FieldVehiclePlate = "plate"
	FieldVehicleType  = "type"
)

// plateRe matches normalized plates: upper-case letters and digits only.
var plateRe = regexp.MustCompile(`^[A-Z0-9]{5,10}$`)

// VehicleValidator validates vehicles. Plates must already be normalized.
type VehicleValidator struct{}

func NewVehicleValidator() Validator {
	return &VehicleValidator{}
}

func (v *VehicleValidator) Validate(_ context.Context, obj any, fields ...string) error {
	var vehicle models.Vehicle
	switch value := obj.(type) {
	case models.Vehicle:
		vehicle = value
	case *models.Vehicle:
		vehicle = *value
	default:
		return ErrUnsupportedType
	}

	if len(fields) == 0 {
		fields = []string{FieldVehiclePlate, FieldVehicleType}
	}

	for _, f := range fields {
		switch f {
		case FieldVehiclePlate:
			if !plateRe.MatchString(vehicle.Plate) {
				return ErrInvalidPlate
			}
		case FieldVehicleType:
			if !vehicle.Type.IsValid() {
				return ErrInvalidVehicleType
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
