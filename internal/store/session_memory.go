package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-fleet-logbook/internal/logger"
	"github.com/MKhiriev/go-fleet-logbook/models"
)

// memorySessionStore keeps sessions in process memory. Sessions do not
// survive a restart, so it suits single-instance deployments and tests.
type memorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
	now      func() time.Time
}

func NewMemorySessionStore(logger *logger.Logger) SessionStore {
	logger.Debug().Msg("creating in-memory session store")
	return &memorySessionStore{
		sessions: make(map[string]models.Session),
		now:      time.Now,
	}
}

func (s *memorySessionStore) SaveSession(_ context.Context, session models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.ID] = session
	s.evictExpired()
	return nil
}

func (s *memorySessionStore) GetSession(_ context.Context, id string) (models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok || session.Expired(s.now()) {
		return models.Session{}, ErrNotFound
	}
	return session, nil
}

func (s *memorySessionStore) DeleteSession(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	return nil
}

// evictExpired must be called with mu held.
func (s *memorySessionStore) evictExpired() {
	now := s.now()
	for id, session := range s.sessions {
		if session.Expired(now) {
			delete(s.sessions, id)
		}
	}
}
