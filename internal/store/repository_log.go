package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-fleet-logbook/internal/logger"
	"github.com/MKhiriev/go-fleet-logbook/models"
	sq "github.com/Masterminds/squirrel"
)

var logColumns = []string{"id", "kind", "user_id", "vehicle_id", "ts", "created_at", "payload"}

// logPayload is the JSONB layout of the kind-specific part of a record.
type logPayload struct {
	Trip        *models.TripPayload        `json:"trip,omitempty"`
	Refuel      *models.RefuelPayload      `json:"refuel,omitempty"`
	Maintenance *models.MaintenancePayload `json:"maintenance,omitempty"`
}

// logRepository stores log records in the "log_records" table.
// created_at is assigned by the database default and never updated.
type logRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewLogRepository(db *DB, logger *logger.Logger) LogRepository {
	logger.Debug().Msg("creating log repository")
	return &logRepository{db: db, logger: logger}
}

func (r *logRepository) AppendLog(ctx context.Context, record models.LogRecord) (models.LogRecord, error) {
	payload, err := encodeLogPayload(record)
	if err != nil {
		return models.LogRecord{}, err
	}

	query, args, err := psql.Insert("log_records").
		Columns("id", "kind", "user_id", "vehicle_id", "ts", "payload").
		Values(record.ID, record.Kind, record.UserID, record.VehicleID, record.Timestamp, payload).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return models.LogRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&record.CreatedAt); err != nil {
		return models.LogRecord{}, r.db.queryError(ctx, "*logRepository.AppendLog", err)
	}

	return record, nil
}

func (r *logRepository) GetLog(ctx context.Context, id string) (models.LogRecord, error) {
	query, args, err := psql.Select(logColumns...).From("log_records").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return models.LogRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	record, err := scanLogRecord(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.LogRecord{}, r.db.queryError(ctx, "*logRepository.GetLog", err)
	}

	return record, nil
}

func (r *logRepository) UpdateLog(ctx context.Context, record models.LogRecord) error {
	payload, err := encodeLogPayload(record)
	if err != nil {
		return err
	}

	return r.db.execAffecting(ctx, "*logRepository.UpdateLog", psql.Update("log_records").
		Set("vehicle_id", record.VehicleID).
		Set("ts", record.Timestamp).
		Set("payload", payload).
		Where(sq.Eq{"id": record.ID}))
}

func (r *logRepository) RemoveLog(ctx context.Context, id string) error {
	return r.db.execAffecting(ctx, "*logRepository.RemoveLog", psql.Delete("log_records").Where(sq.Eq{"id": id}))
}

func (r *logRepository) QueryLogs(ctx context.Context, q models.LogQuery) ([]models.LogRecord, error) {
	b := psql.Select(logColumns...).
		From("log_records").
		Where(sq.Eq{"user_id": q.UserID})
	if q.Kind != "" {
		b = b.Where(sq.Eq{"kind": q.Kind})
	}

	query, args, err := b.OrderBy("ts DESC", "id DESC").Limit(uint64(q.Limit)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, r.db.queryError(ctx, "*logRepository.QueryLogs", err)
	}
	defer rows.Close()

	records := make([]models.LogRecord, 0)
	for rows.Next() {
		record, err := scanLogRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

func scanLogRecord(row rowScanner) (models.LogRecord, error) {
	var (
		rec models.LogRecord
		raw []byte
	)
	if err := row.Scan(&rec.ID, &rec.Kind, &rec.UserID, &rec.VehicleID, &rec.Timestamp, &rec.CreatedAt, &raw); err != nil {
		return models.LogRecord{}, err
	}

	var p logPayload
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &p); err != nil {
			return models.LogRecord{}, fmt.Errorf("%w: %w", ErrEncodingPayload, err)
		}
	}
	rec.Trip, rec.Refuel, rec.Maintenance = p.Trip, p.Refuel, p.Maintenance

	return rec, nil
}

func encodeLogPayload(record models.LogRecord) (string, error) {
	b, err := json.Marshal(logPayload{
		Trip:        record.Trip,
		Refuel:      record.Refuel,
		Maintenance: record.Maintenance,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodingPayload, err)
	}
	return string(b), nil
}
