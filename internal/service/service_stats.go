package service

import (
	"context"
	"errors"
	"sort"

	"github.com/MKhiriev/go-fleet-logbook/internal/logger"
	"github.com/MKhiriev/go-fleet-logbook/internal/store"
	"github.com/MKhiriev/go-fleet-logbook/models"
)

type statsService struct {
	stats store.StatsRepository
	users store.UserRepository

	logger *logger.Logger
}

func NewStatsService(stats store.StatsRepository, users store.UserRepository, logger *logger.Logger) StatsService {
	return &statsService{stats: stats, users: users, logger: logger}
}

// UpsertBound sets or clears one bound. The other bound of the record is
// preserved; concurrent writers are last-write-wins.
func (s *statsService) UpsertBound(ctx context.Context, update models.BoundUpdate) (models.MonthlyStats, error) {
	caller, err := callerFrom(ctx)
	if err != nil {
		return models.MonthlyStats{}, err
	}
	if update.UserID, err = subjectFor(caller, update.UserID); err != nil {
		return models.MonthlyStats{}, err
	}

	switch {
	case update.VehicleID == "":
		return models.MonthlyStats{}, validationMessage("vehicle id is required")
	case update.Month.IsZero():
		return models.MonthlyStats{}, validationMessage("month is required")
	case !update.Bound.IsValid():
		return models.MonthlyStats{}, validationMessage("bound must be initial or final")
	case update.Value != nil && *update.Value < 0:
		return models.MonthlyStats{}, validationMessage("odometer reading must not be negative")
	}

	record, err := s.stats.UpsertBound(ctx, update)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("stats_id", models.StatsID(update.UserID, update.VehicleID, update.Month)).Msg("error writing monthly bound")
		return models.MonthlyStats{}, storeError("upsert bound", err)
	}
	return record, nil
}

func (s *statsService) AutofillInitial(ctx context.Context, userID, vehicleID string, month models.MonthKey) (models.InitialSuggestion, error) {
	caller, err := callerFrom(ctx)
	if err != nil {
		return models.InitialSuggestion{}, err
	}
	if userID, err = subjectFor(caller, userID); err != nil {
		return models.InitialSuggestion{}, err
	}
	if vehicleID == "" || month.IsZero() {
		return models.InitialSuggestion{}, validationMessage("vehicle id and month are required")
	}

	suggestion := models.InitialSuggestion{MonthKey: month.String()}

	current, found, err := s.find(ctx, models.StatsID(userID, vehicleID, month))
	if err != nil {
		return models.InitialSuggestion{}, err
	}
	if found && current.InitialKm != nil {
		return suggestion, nil
	}

	previous, found, err := s.find(ctx, models.StatsID(userID, vehicleID, month.Previous()))
	if err != nil {
		return models.InitialSuggestion{}, err
	}
	if found && previous.FinalKm != nil {
		v := *previous.FinalKm
		suggestion.Value = &v
		suggestion.Source = previous.ID
	}
	return suggestion, nil
}

func (s *statsService) MonthlyTotal(ctx context.Context, userID string, month models.MonthKey, activeVehicleIDs []string) (models.MonthlyTotal, error) {
	caller, err := callerFrom(ctx)
	if err != nil {
		return models.MonthlyTotal{}, err
	}
	if userID, err = subjectFor(caller, userID); err != nil {
		return models.MonthlyTotal{}, err
	}
	if month.IsZero() {
		return models.MonthlyTotal{}, validationMessage("month is required")
	}

	assigned := caller.AssignedVehicleID
	if userID != caller.ID {
		user, err := s.users.GetUser(ctx, userID)
		if err != nil {
			return models.MonthlyTotal{}, storeError("get user", err)
		}
		assigned = user.AssignedVehicleID
	}

	records, err := s.stats.ListUserMonth(ctx, userID, month)
	if err != nil {
		return models.MonthlyTotal{}, storeError("list monthly stats", err)
	}

	return buildTotal(userID, month, records, activeVehicleIDs, assigned), nil
}

func (s *statsService) MonthReport(ctx context.Context, month models.MonthKey) ([]models.MonthlyTotal, error) {
	if _, err := requireElevated(ctx); err != nil {
		return nil, err
	}
	if month.IsZero() {
		return nil, validationMessage("month is required")
	}

	records, err := s.stats.ListMonth(ctx, month)
	if err != nil {
		return nil, storeError("list monthly stats", err)
	}
	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, storeError("list users", err)
	}
	assigned := make(map[string]string, len(users))
	for _, u := range users {
		assigned[u.ID] = u.AssignedVehicleID
	}

	byUser := make(map[string][]models.MonthlyStats)
	for _, r := range records {
		byUser[r.UserID] = append(byUser[r.UserID], r)
	}
	userIDs := make([]string, 0, len(byUser))
	for id := range byUser {
		userIDs = append(userIDs, id)
	}
	sort.Strings(userIDs)

	report := make([]models.MonthlyTotal, 0, len(userIDs))
	for _, id := range userIDs {
		report = append(report, buildTotal(id, month, byUser[id], nil, assigned[id]))
	}
	return report, nil
}

func (s *statsService) find(ctx context.Context, id string) (models.MonthlyStats, bool, error) {
	record, err := s.stats.GetStats(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return models.MonthlyStats{}, false, nil
	}
	if err != nil {
		return models.MonthlyStats{}, false, storeError("get monthly stats", err)
	}
	return record, true, nil
}

// buildTotal sums the distances of records and lays out the breakdown:
// the assigned vehicle first, then the others by vehicle id. Active
// vehicles without a record get a zero row; they never change the total.
func buildTotal(userID string, month models.MonthKey, records []models.MonthlyStats, active []string, assigned string) models.MonthlyTotal {
	total := models.MonthlyTotal{UserID: userID, MonthKey: month.String()}

	rows := make(map[string]models.VehicleDistance, len(records)+len(active))
	for _, r := range records {
		d := r.Distance()
		total.TotalKm += d
		rows[r.VehicleID] = models.VehicleDistance{
			VehicleID:  r.VehicleID,
			InitialKm:  r.InitialKm,
			FinalKm:    r.FinalKm,
			DistanceKm: d,
		}
	}
	for _, id := range active {
		if _, ok := rows[id]; !ok && id != "" {
			rows[id] = models.VehicleDistance{VehicleID: id}
		}
	}

	total.Breakdown = make([]models.VehicleDistance, 0, len(rows))
	for _, row := range rows {
		row.Assigned = assigned != "" && row.VehicleID == assigned
		total.Breakdown = append(total.Breakdown, row)
	}
	sort.Slice(total.Breakdown, func(i, j int) bool {
		a, b := total.Breakdown[i], total.Breakdown[j]
		if a.Assigned != b.Assigned {
			return a.Assigned
		}
		return a.VehicleID < b.VehicleID
	})
	return total
}
