package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptySectorName      = errors.New("sector name is required")
	ErrEmptyFieldLabel      = errors.New("field label is required")
	ErrDuplicateFieldID     = errors.New("duplicate field id")
	ErrDuplicateFieldLabel  = errors.New("duplicate field label")
	ErrInvalidFieldType     = errors.New("invalid field type")
	ErrSelectWithoutOptions = errors.New("select field needs at least one option")
	ErrOptionsOnNonSelect   = errors.New("only select fields have options")

	ErrInvalidLogKind   = errors.New("invalid log kind")
	ErrPayloadMismatch  = errors.New("payload does not match log kind")
	ErrEmptyUserID      = errors.New("user id is required")
	ErrEmptyVehicleID   = errors.New("vehicle id is required")
	ErrInvalidTimestamp = errors.New("timestamp must be positive")
	ErrNegativeAmount   = errors.New("liters, cost and odometer must not be negative")

	ErrInvalidPlate       = errors.New("invalid plate")
	ErrInvalidVehicleType = errors.New("invalid vehicle type")
)
