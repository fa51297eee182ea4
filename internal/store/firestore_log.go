package store

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/MKhiriev/go-fleet-logbook/internal/logger"
	"github.com/MKhiriev/go-fleet-logbook/models"
)

// firestoreLogRepository keeps log records in the "logs" collection.
// Queries by user, kind and timestamp need a composite index
// (userId ASC, kind ASC, timestamp DESC).
type firestoreLogRepository struct {
	client *firestore.Client
	logger *logger.Logger
}

func NewFirestoreLogRepository(client *firestore.Client, logger *logger.Logger) LogRepository {
	logger.Debug().Msg("creating firestore log repository")
	return &firestoreLogRepository{client: client, logger: logger}
}

func (r *firestoreLogRepository) AppendLog(ctx context.Context, record models.LogRecord) (models.LogRecord, error) {
	record.CreatedAt = nowUTC()

	if _, err := r.client.Collection(logsCollection).Doc(record.ID).Create(ctx, record); err != nil {
		return models.LogRecord{}, docError(ctx, "*firestoreLogRepository.AppendLog", err)
	}

	return record, nil
}

func (r *firestoreLogRepository) GetLog(ctx context.Context, id string) (models.LogRecord, error) {
	doc, err := r.client.Collection(logsCollection).Doc(id).Get(ctx)
	if err != nil {
		return models.LogRecord{}, docError(ctx, "*firestoreLogRepository.GetLog", err)
	}

	var record models.LogRecord
	if err := doc.DataTo(&record); err != nil {
		return models.LogRecord{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return record, nil
}

func (r *firestoreLogRepository) UpdateLog(ctx context.Context, record models.LogRecord) error {
	_, err := r.client.Collection(logsCollection).Doc(record.ID).Update(ctx, []firestore.Update{
		{Path: "vehicleId", Value: record.VehicleID},
		{Path: "timestamp", Value: record.Timestamp},
		{Path: "trip", Value: record.Trip},
		{Path: "refuel", Value: record.Refuel},
		{Path: "maintenance", Value: record.Maintenance},
	})
	if err != nil {
		return docError(ctx, "*firestoreLogRepository.UpdateLog", err)
	}
	return nil
}

func (r *firestoreLogRepository) RemoveLog(ctx context.Context, id string) error {
	if _, err := r.client.Collection(logsCollection).Doc(id).Delete(ctx, firestore.Exists); err != nil {
		return docError(ctx, "*firestoreLogRepository.RemoveLog", err)
	}
	return nil
}

func (r *firestoreLogRepository) QueryLogs(ctx context.Context, q models.LogQuery) ([]models.LogRecord, error) {
	query := r.client.Collection(logsCollection).Where("userId", "==", q.UserID)
	if q.Kind != "" {
		query = query.Where("kind", "==", string(q.Kind))
	}

	records, err := collect[models.LogRecord](query.OrderBy("timestamp", firestore.Desc).Limit(q.Limit).Documents(ctx))
	if err != nil {
		return nil, docError(ctx, "*firestoreLogRepository.QueryLogs", err)
	}

	return records, nil
}
