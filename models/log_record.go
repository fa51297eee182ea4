package models

import "time"

// LogKind discriminates the payload of a [LogRecord].
type LogKind string

const (
	KindTrip        LogKind = "trip"
	KindRefuel      LogKind = "refuel"
	KindMaintenance LogKind = "maintenance"
)

// IsValid reports whether k is one of the known log kinds.
func (k LogKind) IsValid() bool {
	switch k {
	case KindTrip, KindRefuel, KindMaintenance:
		return true
	}
	return false
}

// EditWindow is how long after creation the owning driver may still modify
// or delete a record. A record exactly EditWindow old is locked.
const EditWindow = 24 * time.Hour

// LogRecord is a logbook entry. Exactly one of Trip, Refuel or Maintenance
// is set, matching Kind.
type LogRecord struct {
	ID        string  `json:"id" firestore:"id"`
	Kind      LogKind `json:"kind" firestore:"kind"`
	UserID    string  `json:"userId" firestore:"userId"`
	VehicleID string  `json:"vehicleId" firestore:"vehicleId"`

	// Timestamp is the caller-supplied event time in epoch milliseconds.
	// It may be backdated and edited.
	Timestamp int64 `json:"timestamp" firestore:"timestamp"`

	// CreatedAt is stamped by the store on append and never changes.
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`

	Trip        *TripPayload        `json:"trip,omitempty" firestore:"trip,omitempty"`
	Refuel      *RefuelPayload      `json:"refuel,omitempty" firestore:"refuel,omitempty"`
	Maintenance *MaintenancePayload `json:"maintenance,omitempty" firestore:"maintenance,omitempty"`
}

// Editable reports whether the record is still inside the edit window at now.
func (r LogRecord) Editable(now time.Time) bool {
	return now.Sub(r.CreatedAt) < EditWindow
}

// TripPayload is the trip-specific part of a log record.
type TripPayload struct {
	BollaNumber string `json:"bollaNumber,omitempty" firestore:"bollaNumber"`

	// SectorID references the sector the answers were collected for.
	// SectorName is copied at submission so the trip stays displayable
	// after the sector is deleted.
	SectorID   string `json:"sectorId,omitempty" firestore:"sectorId"`
	SectorName string `json:"sectorName,omitempty" firestore:"sectorName"`

	From string `json:"from,omitempty" firestore:"from"`
	To   string `json:"to,omitempty" firestore:"to"`

	FieldAnswers FieldAnswers `json:"fieldAnswers,omitempty" firestore:"fieldAnswers"`
	CustomData   CustomData   `json:"customData,omitempty" firestore:"customData"`
}

// RefuelPayload is the refuel-specific part of a log record.
type RefuelPayload struct {
	StationID  string  `json:"stationId,omitempty" firestore:"stationId"`
	Liters     float64 `json:"liters" firestore:"liters"`
	Cost       float64 `json:"cost" firestore:"cost"`
	OdometerKm int64   `json:"odometerKm" firestore:"odometerKm"`

	// ReceiptRef references an externally stored receipt image.
	ReceiptRef string `json:"receiptRef,omitempty" firestore:"receiptRef"`
}

// MaintenancePayload is the maintenance-specific part of a log record.
type MaintenancePayload struct {
	Subtype     string `json:"subtype,omitempty" firestore:"subtype"`
	WorkshopID  string `json:"workshopId,omitempty" firestore:"workshopId"`
	Description string `json:"description,omitempty" firestore:"description"`
	Notes       string `json:"notes,omitempty" firestore:"notes"`
}

// LogUpdate is a partial update of a log record. Nil members are kept;
// a non-nil payload replaces the stored one of the same kind.
type LogUpdate struct {
	VehicleID   *string             `json:"vehicleId,omitempty"`
	Timestamp   *int64              `json:"timestamp,omitempty"`
	Trip        *TripPayload        `json:"trip,omitempty"`
	Refuel      *RefuelPayload      `json:"refuel,omitempty"`
	Maintenance *MaintenancePayload `json:"maintenance,omitempty"`
}

// IsEmpty reports whether u changes nothing.
func (u LogUpdate) IsEmpty() bool {
	return u.VehicleID == nil && u.Timestamp == nil && u.Trip == nil && u.Refuel == nil && u.Maintenance == nil
}

// Apply returns r with the non-nil members of u applied.
func (u LogUpdate) Apply(r LogRecord) LogRecord {
	if u.VehicleID != nil {
		r.VehicleID = *u.VehicleID
	}
	if u.Timestamp != nil {
		r.Timestamp = *u.Timestamp
	}
	if u.Trip != nil {
		r.Trip = u.Trip
	}
	if u.Refuel != nil {
		r.Refuel = u.Refuel
	}
	if u.Maintenance != nil {
		r.Maintenance = u.Maintenance
	}
	return r
}

// LogQuery selects log records of one user, newest first by Timestamp.
type LogQuery struct {
	UserID string
	// Kind filters by kind when non-empty.
	Kind  LogKind
	Limit int
}

// DefaultLogLimit is used when a query does not set a positive limit.
const DefaultLogLimit = 50

// MaxLogLimit caps the number of records a single query returns.
const MaxLogLimit = 500

// TripSubmission is the input of the trip submission path: core trip data
// plus the raw answers for the selected sector.
type TripSubmission struct {
	VehicleID   string         `json:"vehicleId"`
	Timestamp   int64          `json:"timestamp"`
	BollaNumber string         `json:"bollaNumber,omitempty"`
	SectorID    string         `json:"sectorId"`
	From        string         `json:"from,omitempty"`
	To          string         `json:"to,omitempty"`
	Answers     map[string]any `json:"answers,omitempty"`
}
