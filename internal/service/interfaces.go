package service

import (
	"context"

	"github.com/MKhiriev/go-fleet-logbook/internal/form"
	"github.com/MKhiriev/go-fleet-logbook/models"
)

// Every service reads the authenticated caller from the context (see
// utils.WithCaller) and returns [ErrUnauthenticated] without one.

// AuthService opens and closes sessions.
type AuthService interface {
	// Login verifies credentials with the configured identity provider,
	// opens a session and issues a token bound to it.
	Login(ctx context.Context, credentials models.Credentials) (models.LoginResponse, error)
	// Authenticate resolves a token to an active account and the id of the
	// session it was issued for. The account is loaded fresh on every call.
	Authenticate(ctx context.Context, token string) (models.User, string, error)
	// Logout removes the caller's session; every token issued for it stops
	// working.
	Logout(ctx context.Context) error
}

// UserService administers accounts. Master or owner only.
type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	UpdateUser(ctx context.Context, id string, update models.UserUpdate) (models.User, error)
}

// SectorService manages sector schemas. Writes are master or owner only.
type SectorService interface {
	ListSectors(ctx context.Context) ([]models.Sector, error)
	GetSector(ctx context.Context, id string) (models.Sector, error)
	CreateSector(ctx context.Context, name string, fields []models.FieldDefinition) (models.Sector, error)
	UpdateSector(ctx context.Context, id string, update models.SectorUpdate) (models.Sector, error)
	// DeleteSector succeeds for unknown ids. Trips recorded against the
	// sector keep their copy of its name.
	DeleteSector(ctx context.Context, id string) error
	// ResolveForm renders the sector's fields as input controls prefilled
	// with answers.
	ResolveForm(ctx context.Context, id string, answers map[string]any) ([]form.Control, error)
}

// LogService records trips, refuels and maintenance interventions.
//
// Drivers see and modify only their own records, and only while a record is
// inside [models.EditWindow]. Masters and owners are not limited.
type LogService interface {
	AppendLog(ctx context.Context, record models.LogRecord) (models.LogRecord, error)
	// SubmitTrip validates the answers against the selected sector and
	// stores a trip with the label-keyed snapshot of the answers.
	SubmitTrip(ctx context.Context, trip models.TripSubmission) (models.LogRecord, error)
	GetLog(ctx context.Context, id string) (models.LogRecord, error)
	UpdateLog(ctx context.Context, id string, update models.LogUpdate) (models.LogRecord, error)
	RemoveLog(ctx context.Context, id string) error
	QueryLogs(ctx context.Context, query models.LogQuery) ([]models.LogRecord, error)
}

// StatsService keeps the monthly odometer ranges and totals.
type StatsService interface {
	UpsertBound(ctx context.Context, update models.BoundUpdate) (models.MonthlyStats, error)
	// AutofillInitial suggests the previous month's final reading as the
	// initial bound of month. No value is suggested when month already
	// has one.
	AutofillInitial(ctx context.Context, userID, vehicleID string, month models.MonthKey) (models.InitialSuggestion, error)
	// MonthlyTotal sums the settled ranges of the driver's vehicles. Active
	// vehicles without a record show up in the breakdown with zero distance.
	MonthlyTotal(ctx context.Context, userID string, month models.MonthKey, activeVehicleIDs []string) (models.MonthlyTotal, error)
	// MonthReport returns the total of every driver with records in month,
	// ordered by user id. Master or owner only.
	MonthReport(ctx context.Context, month models.MonthKey) ([]models.MonthlyTotal, error)
}

// VehicleService manages the fleet. Writes are master or owner only.
type VehicleService interface {
	ListVehicles(ctx context.Context) ([]models.Vehicle, error)
	GetVehicle(ctx context.Context, id string) (models.Vehicle, error)
	CreateVehicle(ctx context.Context, vehicle models.Vehicle) (models.Vehicle, error)
	UpdateVehicle(ctx context.Context, id string, vehicle models.Vehicle) (models.Vehicle, error)
	DeleteVehicle(ctx context.Context, id string) error
	// ImportVehicles maps an external JSON document to vehicles. With
	// dryRun nothing is written.
	ImportVehicles(ctx context.Context, document []byte, dryRun bool) (models.ImportReport, error)
}

// ReferenceService manages workshops and fuel stations. Writes are master
// or owner only.
type ReferenceService interface {
	ListWorkshops(ctx context.Context) ([]models.Workshop, error)
	CreateWorkshop(ctx context.Context, workshop models.Workshop) (models.Workshop, error)
	UpdateWorkshop(ctx context.Context, id string, workshop models.Workshop) (models.Workshop, error)
	DeleteWorkshop(ctx context.Context, id string) error

	ListFuelStations(ctx context.Context) ([]models.FuelStation, error)
	CreateFuelStation(ctx context.Context, station models.FuelStation) (models.FuelStation, error)
	UpdateFuelStation(ctx context.Context, id string, station models.FuelStation) (models.FuelStation, error)
	DeleteFuelStation(ctx context.Context, id string) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.VersionInfo
}

// SectorServiceWrapper defines middleware composition for SectorService.
// Implementations wrap an existing SectorService to add behavior such as
// validation.
type SectorServiceWrapper interface {
	Wrap(SectorService) SectorService
}
