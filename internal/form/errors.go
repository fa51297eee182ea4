package form

import "errors"

var (
	ErrRequired      = errors.New("is required")
	ErrNotANumber    = errors.New("must be a number")
	ErrInvalidChoice = errors.New("has an invalid choice")
	ErrNotText       = errors.New("must be text")

	ErrNoSector     = errors.New("no sector selected")
	ErrUnknownField = errors.New("unknown field")
)

// FieldError reports the field that failed validation. Its message reads
// "<label> <reason>", e.g. "Tipologia is required".
type FieldError struct {
	FieldID string
	Label   string
	Err     error
}

func (e *FieldError) Error() string {
	return e.Label + " " + e.Err.Error()
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
