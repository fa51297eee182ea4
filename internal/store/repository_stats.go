package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-fleet-logbook/internal/logger"
	"github.com/MKhiriev/go-fleet-logbook/models"
	sq "github.com/Masterminds/squirrel"
)

var statsColumns = []string{"id", "user_id", "vehicle_id", "month_key", "initial_km", "final_km", "version", "updated_at"}

// The upserts touch a single bound. version and updated_at move only when
// the stored value actually changes, so repeating a write is a no-op.
const (
	upsertInitialKm = `INSERT INTO monthly_stats AS s (id, user_id, vehicle_id, month_key, initial_km)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			initial_km = EXCLUDED.initial_km,
			version    = s.version + CASE WHEN s.initial_km IS DISTINCT FROM EXCLUDED.initial_km THEN 1 ELSE 0 END,
			updated_at = CASE WHEN s.initial_km IS DISTINCT FROM EXCLUDED.initial_km THEN NOW() ELSE s.updated_at END
		RETURNING id, user_id, vehicle_id, month_key, initial_km, final_km, version, updated_at;`

	upsertFinalKm = `INSERT INTO monthly_stats AS s (id, user_id, vehicle_id, month_key, final_km)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			final_km   = EXCLUDED.final_km,
			version    = s.version + CASE WHEN s.final_km IS DISTINCT FROM EXCLUDED.final_km THEN 1 ELSE 0 END,
			updated_at = CASE WHEN s.final_km IS DISTINCT FROM EXCLUDED.final_km THEN NOW() ELSE s.updated_at END
		RETURNING id, user_id, vehicle_id, month_key, initial_km, final_km, version, updated_at;`
)

// statsRepository stores monthly odometer ranges in "monthly_stats".
type statsRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewStatsRepository(db *DB, logger *logger.Logger) StatsRepository {
	logger.Debug().Msg("creating monthly stats repository")
	return &statsRepository{db: db, logger: logger}
}

func (r *statsRepository) UpsertBound(ctx context.Context, u models.BoundUpdate) (models.MonthlyStats, error) {
	query := upsertInitialKm
	if u.Bound == models.BoundFinal {
		query = upsertFinalKm
	}

	id := models.StatsID(u.UserID, u.VehicleID, u.Month)
	row := r.db.QueryRowContext(ctx, query, id, u.UserID, u.VehicleID, u.Month.String(), u.Value)

	stats, err := scanStats(row)
	if err != nil {
		return models.MonthlyStats{}, r.db.queryError(ctx, "*statsRepository.UpsertBound", err)
	}

	return stats, nil
}

func (r *statsRepository) GetStats(ctx context.Context, id string) (models.MonthlyStats, error) {
	query, args, err := psql.Select(statsColumns...).From("monthly_stats").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return models.MonthlyStats{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	stats, err := scanStats(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.MonthlyStats{}, r.db.queryError(ctx, "*statsRepository.GetStats", err)
	}

	return stats, nil
}

func (r *statsRepository) ListUserMonth(ctx context.Context, userID string, month models.MonthKey) ([]models.MonthlyStats, error) {
	return r.list(ctx, "*statsRepository.ListUserMonth", psql.Select(statsColumns...).
		From("monthly_stats").
		Where(sq.Eq{"user_id": userID, "month_key": month.String()}).
		OrderBy("vehicle_id"))
}

func (r *statsRepository) ListMonth(ctx context.Context, month models.MonthKey) ([]models.MonthlyStats, error) {
	return r.list(ctx, "*statsRepository.ListMonth", psql.Select(statsColumns...).
		From("monthly_stats").
		Where(sq.Eq{"month_key": month.String()}).
		OrderBy("user_id", "vehicle_id"))
}

func (r *statsRepository) list(ctx context.Context, op string, b sq.SelectBuilder) ([]models.MonthlyStats, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, r.db.queryError(ctx, op, err)
	}
	defer rows.Close()

	result := make([]models.MonthlyStats, 0)
	for rows.Next() {
		stats, err := scanStats(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		result = append(result, stats)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}

func scanStats(row rowScanner) (models.MonthlyStats, error) {
	var s models.MonthlyStats
	err := row.Scan(&s.ID, &s.UserID, &s.VehicleID, &s.MonthKey, &s.InitialKm, &s.FinalKm, &s.Version, &s.UpdatedAt)
	return s, err
}
