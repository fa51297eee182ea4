package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-fleet-logbook/internal/logger"
	"github.com/MKhiriev/go-fleet-logbook/models"
	sq "github.com/Masterminds/squirrel"
)

// sectorRepository stores sectors in the "sectors" table. The ordered field
// list is kept as a JSONB array.
type sectorRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewSectorRepository(db *DB, logger *logger.Logger) SectorRepository {
	logger.Debug().Msg("creating sector repository")
	return &sectorRepository{db: db, logger: logger}
}

func (r *sectorRepository) ListSectors(ctx context.Context) ([]models.Sector, error) {
	query, args, err := psql.Select("id", "name", "fields").
		From("sectors").
		OrderBy("LOWER(name)", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, r.db.queryError(ctx, "*sectorRepository.ListSectors", err)
	}
	defer rows.Close()

	sectors := make([]models.Sector, 0)
	for rows.Next() {
		sector, err := scanSector(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		sectors = append(sectors, sector)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return sectors, nil
}

func (r *sectorRepository) GetSector(ctx context.Context, id string) (models.Sector, error) {
	query, args, err := psql.Select("id", "name", "fields").
		From("sectors").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Sector{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	sector, err := scanSector(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Sector{}, r.db.queryError(ctx, "*sectorRepository.GetSector", err)
	}

	return sector, nil
}

func (r *sectorRepository) CreateSector(ctx context.Context, sector models.Sector) (models.Sector, error) {
	fields, err := encodeFields(sector.Fields)
	if err != nil {
		return models.Sector{}, err
	}

	query, args, err := psql.Insert("sectors").
		Columns("id", "name", "fields").
		Values(sector.ID, sector.Name, fields).
		ToSql()
	if err != nil {
		return models.Sector{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		return models.Sector{}, r.db.queryError(ctx, "*sectorRepository.CreateSector", err)
	}

	return sector, nil
}

func (r *sectorRepository) UpdateSector(ctx context.Context, sector models.Sector) (models.Sector, error) {
	fields, err := encodeFields(sector.Fields)
	if err != nil {
		return models.Sector{}, err
	}

	err = r.db.execAffecting(ctx, "*sectorRepository.UpdateSector", psql.Update("sectors").
		Set("name", sector.Name).
		Set("fields", fields).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": sector.ID}))
	if err != nil {
		return models.Sector{}, err
	}

	return sector, nil
}

// DeleteSector removes the sector. Trips keep their sector id and name copy.
func (r *sectorRepository) DeleteSector(ctx context.Context, id string) error {
	query, args, err := psql.Delete("sectors").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		return r.db.queryError(ctx, "*sectorRepository.DeleteSector", err)
	}

	return nil
}

func scanSector(row rowScanner) (models.Sector, error) {
	var (
		s   models.Sector
		raw []byte
	)
	if err := row.Scan(&s.ID, &s.Name, &raw); err != nil {
		return models.Sector{}, err
	}

	s.Fields = make([]models.FieldDefinition, 0)
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &s.Fields); err != nil {
			return models.Sector{}, fmt.Errorf("%w: %w", ErrEncodingPayload, err)
		}
	}

	return s, nil
}

func encodeFields(fields []models.FieldDefinition) (string, error) {
	if fields == nil {
		fields = []models.FieldDefinition{}
	}
	b, err := json.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodingPayload, err)
	}
	return string(b), nil
}
