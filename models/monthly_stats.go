package models

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidMonthKey is returned by [ParseMonthKey] for malformed input.
var ErrInvalidMonthKey = errors.New("invalid month key, expected YYYY-MM")

// MonthKey is a calendar month.
type MonthKey struct {
	Year  int
	Month time.Month
}

// ParseMonthKey parses the "YYYY-MM" form.
func ParseMonthKey(s string) (MonthKey, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return MonthKey{}, fmt.Errorf("%w: %q", ErrInvalidMonthKey, s)
	}
	return MonthKey{Year: t.Year(), Month: t.Month()}, nil
}

// MonthOf returns the month t falls in, in t's location.
func MonthOf(t time.Time) MonthKey {
	return MonthKey{Year: t.Year(), Month: t.Month()}
}

// String returns the "YYYY-MM" form.
func (m MonthKey) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Previous returns the calendar month before m. January rolls back to
// December of the previous year.
func (m MonthKey) Previous() MonthKey {
	if m.Month == time.January {
		return MonthKey{Year: m.Year - 1, Month: time.December}
	}
	return MonthKey{Year: m.Year, Month: m.Month - 1}
}

// IsZero reports whether m is unset.
func (m MonthKey) IsZero() bool {
	return m.Year == 0 && m.Month == 0
}

// Bound selects one end of a monthly odometer range.
type Bound string

const (
	BoundInitial Bound = "initial"
	BoundFinal   Bound = "final"
)

// IsValid reports whether b is a known bound.
func (b Bound) IsValid() bool {
	return b == BoundInitial || b == BoundFinal
}

// StatsID builds the composite id of a monthly stats record.
func StatsID(userID, vehicleID string, month MonthKey) string {
	return userID + "_" + vehicleID + "_" + month.String()
}

// MonthlyStats is the odometer range of one driver on one vehicle in one
// calendar month. At most one exists per (user, vehicle, month).
type MonthlyStats struct {
	ID        string `json:"id" firestore:"id"`
	UserID    string `json:"userId" firestore:"userId"`
	VehicleID string `json:"vehicleId" firestore:"vehicleId"`
	MonthKey  string `json:"monthKey" firestore:"monthKey"`

	InitialKm *int64 `json:"initialKm" firestore:"initialKm"`
	FinalKm   *int64 `json:"finalKm" firestore:"finalKm"`

	// Version grows by one every time a bound actually changes. It is
	// informational; writes are last-write-wins.
	Version   int64     `json:"version" firestore:"version"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// Distance is the kilometres covered in the month. It is zero unless both
// bounds are set, and never negative: a final reading below the initial one
// is treated as not yet settled.
func (s MonthlyStats) Distance() int64 {
	if s.InitialKm == nil || s.FinalKm == nil {
		return 0
	}
	if d := *s.FinalKm - *s.InitialKm; d > 0 {
		return d
	}
	return 0
}

// BoundUpdate sets or clears one bound of a monthly stats record.
type BoundUpdate struct {
	UserID    string
	VehicleID string
	Month     MonthKey
	Bound     Bound
	// Value is the odometer reading; nil clears the bound.
	Value *int64
}

// VehicleDistance is one row of a monthly breakdown.
type VehicleDistance struct {
	VehicleID  string `json:"vehicleId"`
	InitialKm  *int64 `json:"initialKm"`
	FinalKm    *int64 `json:"finalKm"`
	DistanceKm int64  `json:"distanceKm"`
	Assigned   bool   `json:"assigned,omitempty"`
}

// MonthlyTotal is a driver's combined distance for a month with the
// per-vehicle breakdown in display order.
type MonthlyTotal struct {
	UserID    string            `json:"userId"`
	MonthKey  string            `json:"monthKey"`
	TotalKm   int64             `json:"totalKm"`
	Breakdown []VehicleDistance `json:"breakdown"`
}

// InitialSuggestion is the result of an initial-bound autofill lookup.
type InitialSuggestion struct {
	MonthKey string `json:"monthKey"`
	// Value is the previous month's final reading, nil when nothing can be
	// suggested.
	Value *int64 `json:"value"`
	// Source is the id of the record the value was taken from.
	Source string `json:"source,omitempty"`
}
