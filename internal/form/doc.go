// Package form turns a sector schema into the list of inputs a driver has
// to fill and validates the answers before a trip is stored.
//
// Answers are keyed by field id. A label is accepted as a fallback key for
// clients that only know display names. Validation walks the fields in
// schema order and reports the first failing field, so the same schema and
// answers always produce the same error.
package form
