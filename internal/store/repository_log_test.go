package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-fleet-logbook/internal/logger"
	"github.com/MKhiriev/go-fleet-logbook/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var logRowColumns = []string{"id", "kind", "user_id", "vehicle_id", "ts", "created_at", "payload"}

func TestLogRepository_AppendLog_StampsCreatedAt(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewLogRepository(db, logger.Nop())
	now := time.Date(2026, 5, 2, 9, 30, 0, 0, time.UTC)

	record := models.LogRecord{
		ID:        "l1",
		Kind:      models.KindRefuel,
		UserID:    "u1",
		VehicleID: "v1",
		Timestamp: 1714640000000,
		Refuel:    &models.RefuelPayload{Liters: 310.5, Cost: 540, OdometerKm: 120400},
	}

	mock.ExpectQuery("INSERT INTO log_records").
		WithArgs("l1", "refuel", "u1", "v1", int64(1714640000000), `{"refuel":{"liters":310.5,"cost":540,"odometerKm":120400}}`).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))

	stored, err := repo.AppendLog(context.Background(), record)
	require.NoError(t, err)
	assert.Equal(t, now, stored.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogRepository_QueryLogs(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewLogRepository(db, logger.Nop())
	now := time.Now().UTC()

	mock.ExpectQuery("SELECT (.+) FROM log_records WHERE user_id = \\$1 AND kind = \\$2 ORDER BY ts DESC, id DESC LIMIT 20").
		WithArgs("u1", "trip").
		WillReturnRows(sqlmock.NewRows(logRowColumns).
			AddRow("l2", "trip", "u1", "v1", int64(2000), now, []byte(`{"trip":{"sectorId":"s1","sectorName":"Container","customData":{"Tipologia":"40 HC"}}}`)).
			AddRow("l1", "trip", "u1", "v1", int64(1000), now, []byte(`{"trip":{"from":"Genova"}}`)))

	records, err := repo.QueryLogs(context.Background(), models.LogQuery{UserID: "u1", Kind: models.KindTrip, Limit: 20})
	require.NoError(t, err)
	require.Len(t, records, 2)

	require.NotNil(t, records[0].Trip)
	assert.Equal(t, "Container", records[0].Trip.SectorName)
	assert.Equal(t, "40 HC", records[0].Trip.CustomData["Tipologia"])
	assert.Nil(t, records[0].Refuel)
	assert.Equal(t, "Genova", records[1].Trip.From)
}

func TestLogRepository_QueryLogs_AllKinds(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewLogRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM log_records WHERE user_id = \\$1 ORDER BY").
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(logRowColumns))

	records, err := repo.QueryLogs(context.Background(), models.LogQuery{UserID: "u1", Limit: 5})
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestLogRepository_UpdateLog_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewLogRepository(db, logger.Nop())

	mock.ExpectExec("UPDATE log_records SET").WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateLog(context.Background(), models.LogRecord{ID: "ghost", Kind: models.KindTrip})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLogRepository_RemoveLog(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewLogRepository(db, logger.Nop())

	mock.ExpectExec("DELETE FROM log_records WHERE id = \\$1").
		WithArgs("l1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.RemoveLog(context.Background(), "l1"))
}
