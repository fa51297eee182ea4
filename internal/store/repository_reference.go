package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-fleet-logbook/internal/logger"
	"github.com/MKhiriev/go-fleet-logbook/models"
	sq "github.com/Masterminds/squirrel"
)

// referenceRepository stores workshops and fuel stations.
type referenceRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewReferenceRepository(db *DB, logger *logger.Logger) ReferenceRepository {
	logger.Debug().Msg("creating reference data repository")
	return &referenceRepository{db: db, logger: logger}
}

// ── workshops ──

func (r *referenceRepository) ListWorkshops(ctx context.Context) ([]models.Workshop, error) {
	query, args, err := psql.Select("id", "name", "address", "phone", "created_at").
		From("workshops").
		OrderBy("LOWER(name)", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, r.db.queryError(ctx, "*referenceRepository.ListWorkshops", err)
	}
	defer rows.Close()

	workshops := make([]models.Workshop, 0)
	for rows.Next() {
		var w models.Workshop
		if err := rows.Scan(&w.ID, &w.Name, &w.Address, &w.Phone, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		workshops = append(workshops, w)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return workshops, nil
}

func (r *referenceRepository) CreateWorkshop(ctx context.Context, w models.Workshop) (models.Workshop, error) {
	query, args, err := psql.Insert("workshops").
		Columns("id", "name", "address", "phone").
		Values(w.ID, w.Name, w.Address, w.Phone).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return models.Workshop{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&w.CreatedAt); err != nil {
		return models.Workshop{}, r.db.queryError(ctx, "*referenceRepository.CreateWorkshop", err)
	}

	return w, nil
}

func (r *referenceRepository) UpdateWorkshop(ctx context.Context, w models.Workshop) (models.Workshop, error) {
	err := r.db.execAffecting(ctx, "*referenceRepository.UpdateWorkshop", psql.Update("workshops").
		Set("name", w.Name).
		Set("address", w.Address).
		Set("phone", w.Phone).
		Where(sq.Eq{"id": w.ID}))
	return w, err
}

func (r *referenceRepository) DeleteWorkshop(ctx context.Context, id string) error {
	return r.db.execAffecting(ctx, "*referenceRepository.DeleteWorkshop", psql.Delete("workshops").Where(sq.Eq{"id": id}))
}

// ── fuel stations ──

func (r *referenceRepository) ListFuelStations(ctx context.Context) ([]models.FuelStation, error) {
	query, args, err := psql.Select("id", "name", "brand", "address", "created_at").
		From("fuel_stations").
		OrderBy("LOWER(name)", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, r.db.queryError(ctx, "*referenceRepository.ListFuelStations", err)
	}
	defer rows.Close()

	stations := make([]models.FuelStation, 0)
	for rows.Next() {
		var s models.FuelStation
		if err := rows.Scan(&s.ID, &s.Name, &s.Brand, &s.Address, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		stations = append(stations, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return stations, nil
}

func (r *referenceRepository) CreateFuelStation(ctx context.Context, s models.FuelStation) (models.FuelStation, error) {
	query, args, err := psql.Insert("fuel_stations").
		Columns("id", "name", "brand", "address").
		Values(s.ID, s.Name, s.Brand, s.Address).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return models.FuelStation{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&s.CreatedAt); err != nil {
		return models.FuelStation{}, r.db.queryError(ctx, "*referenceRepository.CreateFuelStation", err)
	}

	return s, nil
}

func (r *referenceRepository) UpdateFuelStation(ctx context.Context, s models.FuelStation) (models.FuelStation, error) {
	err := r.db.execAffecting(ctx, "*referenceRepository.UpdateFuelStation", psql.Update("fuel_stations").
		Set("name", s.Name).
		Set("brand", s.Brand).
		Set("address", s.Address).
		Where(sq.Eq{"id": s.ID}))
	return s, err
}

func (r *referenceRepository) DeleteFuelStation(ctx context.Context, id string) error {
	return r.db.execAffecting(ctx, "*referenceRepository.DeleteFuelStation", psql.Delete("fuel_stations").Where(sq.Eq{"id": id}))
}
