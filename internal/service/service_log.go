package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/MKhiriev/go-fleet-logbook/internal/form"
	"github.com/MKhiriev/go-fleet-logbook/internal/logger"
	"github.com/MKhiriev/go-fleet-logbook/internal/store"
	"github.com/MKhiriev/go-fleet-logbook/internal/utils"
	"github.com/MKhiriev/go-fleet-logbook/internal/validators"
	"github.com/MKhiriev/go-fleet-logbook/models"
)

type logService struct {
	logs      store.LogRepository
	sectors   store.SectorRepository
	resolver  *form.Resolver
	validator validators.Validator
	ids       utils.IDGenerator

	// now is evaluated on every edit attempt.
	now func() time.Time

	logger *logger.Logger
}

func NewLogService(logs store.LogRepository, sectors store.SectorRepository, resolver *form.Resolver, ids utils.IDGenerator, logger *logger.Logger) LogService {
	return &logService{
		logs:      logs,
		sectors:   sectors,
		resolver:  resolver,
		validator: validators.NewLogRecordValidator(),
		ids:       ids,
		now:       time.Now,
		logger:    logger,
	}
}

// AppendLog stores a new record for the caller, or for any user when the
// caller is elevated. Trip answers are validated against their sector.
func (s *logService) AppendLog(ctx context.Context, record models.LogRecord) (models.LogRecord, error) {
	caller, err := callerFrom(ctx)
	if err != nil {
		return models.LogRecord{}, err
	}
	if record.UserID, err = subjectFor(caller, record.UserID); err != nil {
		return models.LogRecord{}, err
	}

	if err = s.validator.Validate(ctx, record); err != nil {
		return models.LogRecord{}, newValidationError(err)
	}
	if record.Kind == models.KindTrip {
		trip := *record.Trip
		if err = s.resolveTrip(ctx, &trip); err != nil {
			return models.LogRecord{}, err
		}
		record.Trip = &trip
	}

	record.ID = s.ids.Generate()
	stored, err := s.logs.AppendLog(ctx, record)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("kind", string(record.Kind)).Msg("error appending log record")
		return models.LogRecord{}, storeError("append log", err)
	}

	return stored, nil
}

func (s *logService) SubmitTrip(ctx context.Context, trip models.TripSubmission) (models.LogRecord, error) {
	return s.AppendLog(ctx, models.LogRecord{
		Kind:      models.KindTrip,
		VehicleID: trip.VehicleID,
		Timestamp: trip.Timestamp,
		Trip: &models.TripPayload{
			BollaNumber:  trip.BollaNumber,
			SectorID:     trip.SectorID,
			From:         trip.From,
			To:           trip.To,
			FieldAnswers: trip.Answers,
		},
	})
}

func (s *logService) GetLog(ctx context.Context, id string) (models.LogRecord, error) {
	caller, err := callerFrom(ctx)
	if err != nil {
		return models.LogRecord{}, err
	}

	record, err := s.logs.GetLog(ctx, id)
	if err != nil {
		return models.LogRecord{}, storeError("get log", err)
	}
	if record.UserID != caller.ID && !caller.Role.IsElevated() {
		return models.LogRecord{}, ErrPermission
	}
	return record, nil
}

// UpdateLog applies a partial update within the edit window. Trip answers are
// re-validated against the current sector; answers of a trip whose sector
// was deleted are read-only.
func (s *logService) UpdateLog(ctx context.Context, id string, update models.LogUpdate) (models.LogRecord, error) {
	if update.IsEmpty() {
		return models.LogRecord{}, validationMessage("nothing to update")
	}

	existing, err := s.editable(ctx, id)
	if err != nil {
		return models.LogRecord{}, err
	}

	merged := update.Apply(existing)
	if err = s.validator.Validate(ctx, merged); err != nil {
		return models.LogRecord{}, newValidationError(err)
	}
	if update.Trip != nil {
		trip := *update.Trip
		if err = s.resolveUpdatedTrip(ctx, existing.Trip, &trip); err != nil {
			return models.LogRecord{}, err
		}
		merged.Trip = &trip
	}

	if err = s.logs.UpdateLog(ctx, merged); err != nil {
		return models.LogRecord{}, storeError("update log", err)
	}
	return merged, nil
}

func (s *logService) RemoveLog(ctx context.Context, id string) error {
	if _, err := s.editable(ctx, id); err != nil {
		return err
	}

	if err := s.logs.RemoveLog(ctx, id); err != nil {
		return storeError("remove log", err)
	}

	logger.FromContext(ctx).Info().Str("log_id", id).Msg("log record removed")
	return nil
}

// QueryLogs defaults to the caller's own records and clamps the limit to
// [models.MaxLogLimit].
func (s *logService) QueryLogs(ctx context.Context, query models.LogQuery) ([]models.LogRecord, error) {
	caller, err := callerFrom(ctx)
	if err != nil {
		return nil, err
	}
	if query.UserID, err = subjectFor(caller, query.UserID); err != nil {
		return nil, err
	}
	if query.Kind != "" && !query.Kind.IsValid() {
		return nil, newValidationError(validators.ErrInvalidLogKind)
	}
	switch {
	case query.Limit <= 0:
		query.Limit = models.DefaultLogLimit
	case query.Limit > models.MaxLogLimit:
		query.Limit = models.MaxLogLimit
	}

	records, err := s.logs.QueryLogs(ctx, query)
	if err != nil {
		return nil, storeError("query logs", err)
	}
	return records, nil
}

// editable loads a record and checks the caller may still change it: its
// owner inside the edit window, or an elevated caller at any time.
func (s *logService) editable(ctx context.Context, id string) (models.LogRecord, error) {
	caller, err := callerFrom(ctx)
	if err != nil {
		return models.LogRecord{}, err
	}

	record, err := s.logs.GetLog(ctx, id)
	if err != nil {
		return models.LogRecord{}, storeError("get log", err)
	}
	if caller.Role.IsElevated() {
		return record, nil
	}
	if record.UserID != caller.ID {
		return models.LogRecord{}, ErrPermission
	}
	if !record.Editable(s.now()) {
		return models.LogRecord{}, fmt.Errorf("%w: records can only be changed within %s of creation", ErrPermission, models.EditWindow)
	}
	return record, nil
}

// resolveTrip validates the trip answers against the current schema of the
// trip's sector and takes the name and label snapshots.
func (s *logService) resolveTrip(ctx context.Context, trip *models.TripPayload) error {
	if trip.SectorID == "" {
		if len(trip.FieldAnswers) > 0 {
			return validationMessage("answers need a sector")
		}
		trip.SectorName, trip.CustomData = "", nil
		return nil
	}

	sector, err := s.sectors.GetSector(ctx, trip.SectorID)
	if errors.Is(err, store.ErrNotFound) {
		return validationMessage("unknown sector " + trip.SectorID)
	}
	if err != nil {
		return storeError("get sector", err)
	}

	return s.applySector(sector, trip)
}

// resolveUpdatedTrip is resolveTrip for edits. When the sector was deleted
// after the trip was recorded the stored answers are read-only: resending
// them or omitting them keeps the snapshot, anything else is rejected.
func (s *logService) resolveUpdatedTrip(ctx context.Context, stored *models.TripPayload, trip *models.TripPayload) error {
	if stored == nil || stored.SectorID == "" || trip.SectorID != stored.SectorID {
		return s.resolveTrip(ctx, trip)
	}

	sector, err := s.sectors.GetSector(ctx, trip.SectorID)
	if errors.Is(err, store.ErrNotFound) {
		if trip.FieldAnswers != nil && !reflect.DeepEqual(trip.FieldAnswers, stored.FieldAnswers) {
			return validationMessage("sector " + trip.SectorID + " no longer exists, its answers cannot be changed")
		}
		trip.SectorName = stored.SectorName
		trip.FieldAnswers = stored.FieldAnswers
		trip.CustomData = stored.CustomData
		return nil
	}
	if err != nil {
		return storeError("get sector", err)
	}
	return s.applySector(sector, trip)
}

func (s *logService) applySector(sector models.Sector, trip *models.TripPayload) error {
	result, err := s.resolver.Validate(sector, trip.FieldAnswers)
	if err != nil {
		return newValidationError(err)
	}

	trip.SectorName = sector.Name
	trip.FieldAnswers = result.Answers
	trip.CustomData = result.CustomData
	return nil
}
