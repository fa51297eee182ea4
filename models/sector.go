package models

// FieldType is the input kind of a sector field.
type FieldType string

const (
	FieldText   FieldType = "text"
	FieldNumber FieldType = "number"
	FieldSelect FieldType = "select"
)

// IsValid reports whether t is one of the known field types.
func (t FieldType) IsValid() bool {
	switch t {
	case FieldText, FieldNumber, FieldSelect:
		return true
	}
	return false
}

// FieldDefinition is one configurable input of a sector schema.
type FieldDefinition struct {
	// ID identifies the field within its sector. Answers are keyed by it so
	// renaming the label does not orphan historical values.
	ID string `json:"id" firestore:"id"`

	// Label is the display name of the field.
	Label string `json:"label" firestore:"label"`

	Type     FieldType `json:"type" firestore:"type"`
	Required bool      `json:"required" firestore:"required"`

	// Options lists the allowed values of a select field in display order.
	// It must be non-empty iff Type is FieldSelect.
	Options []string `json:"options,omitempty" firestore:"options"`
}

// HasOption reports whether v is one of the field's options.
func (f FieldDefinition) HasOption(v string) bool {
	for _, o := range f.Options {
		if o == v {
			return true
		}
	}
	return false
}

// Sector is a named operational trip category with its own ordered list of
// extra fields. Field order is the render order.
type Sector struct {
	ID     string            `json:"id" firestore:"id"`
	Name   string            `json:"name" firestore:"name"`
	Fields []FieldDefinition `json:"fields" firestore:"fields"`
}

// Field returns the field with the given id.
func (s Sector) Field(id string) (FieldDefinition, bool) {
	for _, f := range s.Fields {
		if f.ID == id {
			return f, true
		}
	}
	return FieldDefinition{}, false
}

// SectorUpdate carries a partial sector update. Nil members are kept.
type SectorUpdate struct {
	Name   *string            `json:"name,omitempty"`
	Fields *[]FieldDefinition `json:"fields,omitempty"`
}

// Apply returns s with the non-nil members of u applied.
func (u SectorUpdate) Apply(s Sector) Sector {
	if u.Name != nil {
		s.Name = *u.Name
	}
	if u.Fields != nil {
		s.Fields = append([]FieldDefinition(nil), (*u.Fields)...)
	}
	return s
}
