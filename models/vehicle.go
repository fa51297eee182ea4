package models

import "time"

// VehicleType is the normalized kind of a vehicle.
type VehicleType string

const (
	VehicleTractor     VehicleType = "tractor"
	VehicleTrailer     VehicleType = "trailer"
	VehicleSemitrailer VehicleType = "semitrailer"
	VehicleVan         VehicleType = "van"
	VehicleCar         VehicleType = "car"
	VehicleOther       VehicleType = "other"
)

// IsValid reports whether t is one of the known vehicle types.
func (t VehicleType) IsValid() bool {
	switch t {
	case VehicleTractor, VehicleTrailer, VehicleSemitrailer, VehicleVan, VehicleCar, VehicleOther:
		return true
	}
	return false
}

// Vehicle is a fleet vehicle. Plate is unique and stored normalized.
type Vehicle struct {
	ID      string      `json:"id" firestore:"id"`
	Plate   string      `json:"plate" firestore:"plate"`
	Type    VehicleType `json:"type" firestore:"type"`
	Subtype string      `json:"subtype,omitempty" firestore:"subtype"`
	Code    string      `json:"code,omitempty" firestore:"code"`

	// PairedTrailerID is the plate or id of the trailer usually coupled to
	// a tractor.
	PairedTrailerID string `json:"pairedTrailerId,omitempty" firestore:"pairedTrailerId"`

	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
}
