package validators

import (
	"context"

	"github.com/MKhiriev/go-fleet-logbook/models"
)

const (
	FieldLogKind      = "kind"
	FieldLogUserID    = "user_id"
	FieldLogVehicleID = "vehicle_id"
	FieldLogTimestamp = "timestamp"
	FieldLogPayload   = "payload"
)

// LogRecordValidator validates log records before they are stored.
type LogRecordValidator struct{}

func NewLogRecordValidator() Validator {
	return &LogRecordValidator{}
}

func (v *LogRecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.LogRecord:
		return v.validateLogRecord(ctx, value, fields...)
	case *models.LogRecord:
		return v.validateLogRecord(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *LogRecordValidator) validateLogRecord(_ context.Context, r models.LogRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLogKind, FieldLogUserID, FieldLogVehicleID, FieldLogTimestamp, FieldLogPayload}
	}

	for _, f := range fields {
		switch f {
		case FieldLogKind:
			if !r.Kind.IsValid() {
				return ErrInvalidLogKind
			}
		case FieldLogUserID:
			if r.UserID == "" {
				return ErrEmptyUserID
			}
		case FieldLogVehicleID:
			if r.VehicleID == "" {
				return ErrEmptyVehicleID
			}
		case FieldLogTimestamp:
			if r.Timestamp <= 0 {
				return ErrInvalidTimestamp
			}
		case FieldLogPayload:
			if err := validatePayload(r); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validatePayload requires exactly the payload matching the kind.
func validatePayload(r models.LogRecord) error {
	set := 0
	for _, present := range []bool{r.Trip != nil, r.Refuel != nil, r.Maintenance != nil} {
		if present {
			set++
		}
	}
	if set != 1 {
		return ErrPayloadMismatch
	}

	switch r.Kind {
	case models.KindTrip:
		if r.Trip == nil {
			return ErrPayloadMismatch
		}
	case models.KindRefuel:
		if r.Refuel == nil {
			return ErrPayloadMismatch
		}
		if r.Refuel.Liters < 0 || r.Refuel.Cost < 0 || r.Refuel.OdometerKm < 0 {
			return ErrNegativeAmount
		}
	case models.KindMaintenance:
		if r.Maintenance == nil {
			return ErrPayloadMismatch
		}
	default:
		return ErrInvalidLogKind
	}

	return nil
}
