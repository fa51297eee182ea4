package models

// ImportCandidate is a vehicle resolved from an external record, together
// with the position of that record in the input.
type ImportCandidate struct {
	Row     int     `json:"row"`
	Vehicle Vehicle `json:"vehicle"`
}

// UnmatchedRow is an input record that could not be mapped to a vehicle.
type UnmatchedRow struct {
	Row    int            `json:"row"`
	Reason string         `json:"reason"`
	Raw    map[string]any `json:"raw,omitempty"`
}

// ImportReport is the outcome of a bulk vehicle import.
type ImportReport struct {
	DryRun     bool              `json:"dryRun"`
	Candidates []ImportCandidate `json:"candidates"`
	Unmatched  []UnmatchedRow    `json:"unmatched"`

	// Created and Skipped are filled only when the import is applied.
	// Skipped holds plates that already existed.
	Created []Vehicle `json:"created,omitempty"`
	Skipped []string  `json:"skipped,omitempty"`
}
