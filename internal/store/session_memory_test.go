package store

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-fleet-logbook/internal/logger"
	"github.com/MKhiriev/go-fleet-logbook/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySessionStore(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 4, 10, 12, 0, 0, 0, time.UTC)

	store := NewMemorySessionStore(logger.Nop()).(*memorySessionStore)
	store.now = func() time.Time { return now }

	session := models.Session{ID: "s1", UserID: "u1", CreatedAt: now, ExpiresAt: now.Add(time.Hour)}
	require.NoError(t, store.SaveSession(ctx, session))

	got, err := store.GetSession(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, session, got)

	_, err = store.GetSession(ctx, "unknown")
	assert.ErrorIs(t, err, ErrNotFound)

	now = now.Add(time.Hour)
	_, err = store.GetSession(ctx, "s1")
	assert.ErrorIs(t, err, ErrNotFound, "expired sessions are not returned")
}

func TestMemorySessionStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySessionStore(logger.Nop())

	require.NoError(t, store.SaveSession(ctx, models.Session{ID: "s1", UserID: "u1", ExpiresAt: time.Now().Add(time.Hour)}))
	require.NoError(t, store.DeleteSession(ctx, "s1"))
	require.NoError(t, store.DeleteSession(ctx, "s1"), "deleting twice is fine")

	_, err := store.GetSession(ctx, "s1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemorySessionStore_EvictsExpiredOnSave(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	store := NewMemorySessionStore(logger.Nop()).(*memorySessionStore)
	store.now = func() time.Time { return now }

	require.NoError(t, store.SaveSession(ctx, models.Session{ID: "old", ExpiresAt: now.Add(-time.Minute)}))
	require.NoError(t, store.SaveSession(ctx, models.Session{ID: "new", ExpiresAt: now.Add(time.Minute)}))

	assert.Len(t, store.sessions, 1)
}
