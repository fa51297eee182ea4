package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-fleet-logbook/models"
)

const (
	FieldSectorName   = "name"
	FieldSectorFields = "fields"
)

// SectorValidator validates sector schemas.
type SectorValidator struct{}

func NewSectorValidator() Validator {
	return &SectorValidator{}
}

func (v *SectorValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Sector:
		return v.validateSector(ctx, value, fields...)
	case *models.Sector:
		return v.validateSector(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *SectorValidator) validateSector(_ context.Context, sector models.Sector, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSectorName, FieldSectorFields}
	}

	for _, f := range fields {
		switch f {
		case FieldSectorName:
			if strings.TrimSpace(sector.Name) == "" {
				return ErrEmptySectorName
			}
		case FieldSectorFields:
			if err := validateFieldDefinitions(sector.Fields); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateFieldDefinitions reports the first broken definition in order.
// Labels key the customData snapshot, so they must be unique too.
func validateFieldDefinitions(defs []models.FieldDefinition) error {
	ids := make(map[string]struct{}, len(defs))
	labels := make(map[string]struct{}, len(defs))

	for i, d := range defs {
		pos := i + 1
		label := strings.TrimSpace(d.Label)

		if label == "" {
			return fmt.Errorf("%w (field %d)", ErrEmptyFieldLabel, pos)
		}
		if !d.Type.IsValid() {
			return fmt.Errorf("%w %q (field %q)", ErrInvalidFieldType, d.Type, label)
		}
		if d.Type == models.FieldSelect && len(d.Options) == 0 {
			return fmt.Errorf("%w (field %q)", ErrSelectWithoutOptions, label)
		}
		if d.Type != models.FieldSelect && len(d.Options) > 0 {
			return fmt.Errorf("%w (field %q)", ErrOptionsOnNonSelect, label)
		}

		if d.ID != "" {
			if _, dup := ids[d.ID]; dup {
				return fmt.Errorf("%w %q", ErrDuplicateFieldID, d.ID)
			}
			ids[d.ID] = struct{}{}
		}

		key := strings.ToLower(label)
		if _, dup := labels[key]; dup {
			return fmt.Errorf("%w %q", ErrDuplicateFieldLabel, label)
		}
		labels[key] = struct{}{}
	}

	return nil
}
