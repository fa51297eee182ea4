package form

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-fleet-logbook/models"
)

// DefaultPlaceholder is the choice shown before the driver picks an option.
const DefaultPlaceholder = "unselected"

// ControlKind is the input widget a field renders as.
type ControlKind string

const (
	ControlText    ControlKind = "text"
	ControlNumeric ControlKind = "numeric"
	ControlChoice  ControlKind = "choice"
)

// Control is one rendered input.
type Control struct {
	FieldID  string      `json:"fieldId"`
	Label    string      `json:"label"`
	Kind     ControlKind `json:"kind"`
	Required bool        `json:"required"`
	// Options starts with the placeholder for choice controls.
	Options []string `json:"options,omitempty"`
	// Value is the current answer, or the placeholder for an unanswered
	// choice.
	Value any `json:"value,omitempty"`
}

// Result is a validated answer set.
type Result struct {
	// Answers is keyed by field id. Optional fields left empty are omitted.
	Answers models.FieldAnswers
	// CustomData holds the same values keyed by label.
	CustomData models.CustomData
}

// Resolver renders and validates sector forms. The zero value uses
// DefaultPlaceholder.
type Resolver struct {
	Placeholder string
}

func NewResolver(placeholder string) *Resolver {
	return &Resolver{Placeholder: placeholder}
}

func (r *Resolver) placeholder() string {
	if r == nil || r.Placeholder == "" {
		return DefaultPlaceholder
	}
	return r.Placeholder
}

// Resolve lists the controls of sector in field order with the current
// answers filled in.
func (r *Resolver) Resolve(sector models.Sector, answers map[string]any) []Control {
	controls := make([]Control, 0, len(sector.Fields))
	for _, f := range sector.Fields {
		c := Control{
			FieldID:  f.ID,
			Label:    f.Label,
			Required: f.Required,
		}

		value, _ := lookup(answers, f)
		switch f.Type {
		case models.FieldNumber:
			c.Kind = ControlNumeric
		case models.FieldSelect:
			c.Kind = ControlChoice
			c.Options = append([]string{r.placeholder()}, f.Options...)
			if r.isEmpty(f, value) {
				value = r.placeholder()
			}
		default:
			c.Kind = ControlText
		}
		c.Value = value

		controls = append(controls, c)
	}
	return controls
}

// Validate checks answers against sector and returns them coerced to the
// field types. The first failing field, in schema order, is reported as a
// *FieldError.
func (r *Resolver) Validate(sector models.Sector, answers map[string]any) (Result, error) {
	result := Result{
		Answers:    make(models.FieldAnswers, len(sector.Fields)),
		CustomData: make(models.CustomData, len(sector.Fields)),
	}

	for _, f := range sector.Fields {
		raw, _ := lookup(answers, f)
		if r.isEmpty(f, raw) {
			if f.Required {
				return Result{}, &FieldError{FieldID: f.ID, Label: f.Label, Err: ErrRequired}
			}
			continue
		}

		value, err := coerce(f, raw)
		if err != nil {
			return Result{}, &FieldError{FieldID: f.ID, Label: f.Label, Err: err}
		}

		result.Answers[f.ID] = value
		result.CustomData[f.Label] = value
	}

	return result, nil
}

// isEmpty reports whether v leaves f unanswered. The placeholder counts as
// empty for choice fields.
func (r *Resolver) isEmpty(f models.FieldDefinition, v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		s := strings.TrimSpace(t)
		return s == "" || (f.Type == models.FieldSelect && s == r.placeholder())
	}
	return false
}

// lookup finds the answer of f by id, then by label.
func lookup(answers map[string]any, f models.FieldDefinition) (any, bool) {
	if v, ok := answers[f.ID]; ok {
		return v, true
	}
	v, ok := answers[f.Label]
	return v, ok
}

func coerce(f models.FieldDefinition, raw any) (any, error) {
	switch f.Type {
	case models.FieldNumber:
		return toNumber(raw)
	case models.FieldSelect:
		s, ok := raw.(string)
		if !ok {
			return nil, ErrInvalidChoice
		}
		s = strings.TrimSpace(s)
		if !f.HasOption(s) {
			return nil, ErrInvalidChoice
		}
		return s, nil
	default:
		switch t := raw.(type) {
		case string:
			return strings.TrimSpace(t), nil
		case float64:
			return strconv.FormatFloat(t, 'f', -1, 64), nil
		case json.Number:
			return t.String(), nil
		}
		return nil, ErrNotText
	}
}

// toNumber accepts finite numbers and numeric strings. A decimal comma is
// read as a decimal point. NaN and infinities are rejected.
func toNumber(raw any) (float64, error) {
	v, err := parseNumber(raw)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrNotANumber
	}
	return v, nil
}

func parseNumber(raw any) (float64, error) {
	switch t := raw.(type) {
	case float64:
		return t, nil
	case float32:
		return float64(t), nil
	case int:
		return float64(t), nil
	case int64:
		return float64(t), nil
	case json.Number:
		v, err := t.Float64()
		if err != nil {
			return 0, ErrNotANumber
		}
		return v, nil
	case string:
		s := strings.ReplaceAll(strings.TrimSpace(t), ",", ".")
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, ErrNotANumber
		}
		return v, nil
	}
	return 0, ErrNotANumber
}
