package models

// FieldAnswers maps FieldDefinition.ID to the submitted value. Values are
// strings for text and select fields and float64 for number fields.
type FieldAnswers map[string]any

// CustomData is the label-keyed snapshot of a trip's answers taken at
// submission time. It stays readable after the sector schema changes.
type CustomData map[string]any
