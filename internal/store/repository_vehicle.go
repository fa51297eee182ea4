package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-fleet-logbook/internal/logger"
	"github.com/MKhiriev/go-fleet-logbook/models"
	sq "github.com/Masterminds/squirrel"
)

var vehicleColumns = []string{"id", "plate", "type", "subtype", "code", "paired_trailer_id", "created_at"}

// vehicleRepository stores vehicles in the "vehicles" table; plate is unique.
type vehicleRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewVehicleRepository(db *DB, logger *logger.Logger) VehicleRepository {
	logger.Debug().Msg("creating vehicle repository")
	return &vehicleRepository{db: db, logger: logger}
}

func (r *vehicleRepository) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	query, args, err := psql.Select(vehicleColumns...).From("vehicles").OrderBy("plate").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, r.db.queryError(ctx, "*vehicleRepository.ListVehicles", err)
	}
	defer rows.Close()

	vehicles := make([]models.Vehicle, 0)
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		vehicles = append(vehicles, v)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return vehicles, nil
}

func (r *vehicleRepository) GetVehicle(ctx context.Context, id string) (models.Vehicle, error) {
	query, args, err := psql.Select(vehicleColumns...).From("vehicles").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return models.Vehicle{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	v, err := scanVehicle(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Vehicle{}, r.db.queryError(ctx, "*vehicleRepository.GetVehicle", err)
	}

	return v, nil
}

func (r *vehicleRepository) CreateVehicle(ctx context.Context, v models.Vehicle) (models.Vehicle, error) {
	query, args, err := psql.Insert("vehicles").
		Columns("id", "plate", "type", "subtype", "code", "paired_trailer_id").
		Values(v.ID, v.Plate, v.Type, v.Subtype, v.Code, v.PairedTrailerID).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return models.Vehicle{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&v.CreatedAt); err != nil {
		return models.Vehicle{}, r.db.queryError(ctx, "*vehicleRepository.CreateVehicle", err)
	}

	return v, nil
}

func (r *vehicleRepository) UpdateVehicle(ctx context.Context, v models.Vehicle) (models.Vehicle, error) {
	err := r.db.execAffecting(ctx, "*vehicleRepository.UpdateVehicle", psql.Update("vehicles").
		Set("plate", v.Plate).
		Set("type", v.Type).
		Set("subtype", v.Subtype).
		Set("code", v.Code).
		Set("paired_trailer_id", v.PairedTrailerID).
		Where(sq.Eq{"id": v.ID}))
	if err != nil {
		return models.Vehicle{}, err
	}

	return r.GetVehicle(ctx, v.ID)
}

func (r *vehicleRepository) DeleteVehicle(ctx context.Context, id string) error {
	return r.db.execAffecting(ctx, "*vehicleRepository.DeleteVehicle", psql.Delete("vehicles").Where(sq.Eq{"id": id}))
}

func scanVehicle(row rowScanner) (models.Vehicle, error) {
	var v models.Vehicle
	err := row.Scan(&v.ID, &v.Plate, &v.Type, &v.Subtype, &v.Code, &v.PairedTrailerID, &v.CreatedAt)
	return v, err
}
