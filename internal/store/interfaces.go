package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-fleet-logbook/models"
)

// UserRepository persists accounts.
type UserRepository interface {
	// CreateUser returns [ErrAlreadyExists] when the email or external id
	// is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetUser(ctx context.Context, id string) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByExternalID(ctx context.Context, externalID string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	// UpdateUser overwrites the mutable fields of an existing account.
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
}

// SectorRepository persists sector schemas.
type SectorRepository interface {
	// ListSectors returns sectors sorted by name, case-insensitively, then by id.
	ListSectors(ctx context.Context) ([]models.Sector, error)
	GetSector(ctx context.Context, id string) (models.Sector, error)
	CreateSector(ctx context.Context, sector models.Sector) (models.Sector, error)
	UpdateSector(ctx context.Context, sector models.Sector) (models.Sector, error)
	// DeleteSector succeeds whether or not the sector exists.
	DeleteSector(ctx context.Context, id string) error
}

// LogRepository persists log records.
type LogRepository interface {
	// AppendLog stores a new record and returns it with CreatedAt stamped
	// at write time.
	AppendLog(ctx context.Context, record models.LogRecord) (models.LogRecord, error)
	GetLog(ctx context.Context, id string) (models.LogRecord, error)
	// UpdateLog overwrites vehicle, timestamp and payload. CreatedAt and
	// ownership never change.
	UpdateLog(ctx context.Context, record models.LogRecord) error
	RemoveLog(ctx context.Context, id string) error
	// QueryLogs returns at most q.Limit records newest first by Timestamp.
	QueryLogs(ctx context.Context, q models.LogQuery) ([]models.LogRecord, error)
}

// StatsRepository persists monthly odometer ranges.
type StatsRepository interface {
	// UpsertBound sets one bound, creating the record when needed and
	// leaving the other bound untouched. Version grows only when the
	// stored value changes.
	UpsertBound(ctx context.Context, update models.BoundUpdate) (models.MonthlyStats, error)
	GetStats(ctx context.Context, id string) (models.MonthlyStats, error)
	// ListUserMonth returns the records of one driver in one month ordered
	// by vehicle id.
	ListUserMonth(ctx context.Context, userID string, month models.MonthKey) ([]models.MonthlyStats, error)
	// ListMonth returns every record of a month ordered by user then vehicle.
	ListMonth(ctx context.Context, month models.MonthKey) ([]models.MonthlyStats, error)
}

// VehicleRepository persists fleet vehicles.
type VehicleRepository interface {
	ListVehicles(ctx context.Context) ([]models.Vehicle, error)
	GetVehicle(ctx context.Context, id string) (models.Vehicle, error)
	// CreateVehicle returns [ErrAlreadyExists] when the plate is taken.
	CreateVehicle(ctx context.Context, vehicle models.Vehicle) (models.Vehicle, error)
	UpdateVehicle(ctx context.Context, vehicle models.Vehicle) (models.Vehicle, error)
	DeleteVehicle(ctx context.Context, id string) error
}

// ReferenceRepository persists workshops and fuel stations.
type ReferenceRepository interface {
	ListWorkshops(ctx context.Context) ([]models.Workshop, error)
	CreateWorkshop(ctx context.Context, workshop models.Workshop) (models.Workshop, error)
	UpdateWorkshop(ctx context.Context, workshop models.Workshop) (models.Workshop, error)
	DeleteWorkshop(ctx context.Context, id string) error

	ListFuelStations(ctx context.Context) ([]models.FuelStation, error)
	CreateFuelStation(ctx context.Context, station models.FuelStation) (models.FuelStation, error)
	UpdateFuelStation(ctx context.Context, station models.FuelStation) (models.FuelStation, error)
	DeleteFuelStation(ctx context.Context, id string) error
}

// SessionStore keeps signed-in sessions until they expire or are deleted.
type SessionStore interface {
	SaveSession(ctx context.Context, session models.Session) error
	// GetSession returns [ErrNotFound] for unknown and expired sessions.
	GetSession(ctx context.Context, id string) (models.Session, error)
	DeleteSession(ctx context.Context, id string) error
}

// ErrorClassificator decides whether a failed database call is transient.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
