package store

import (
	"context"
	"errors"
	"fmt"
	"io"

	firebase "firebase.google.com/go"
	"github.com/MKhiriev/go-fleet-logbook/internal/config"
	"github.com/MKhiriev/go-fleet-logbook/internal/logger"
)

// Storages bundles the repositories of the selected backend.
type Storages struct {
	UserRepository      UserRepository
	SectorRepository    SectorRepository
	LogRepository       LogRepository
	StatsRepository     StatsRepository
	VehicleRepository   VehicleRepository
	ReferenceRepository ReferenceRepository
	SessionStore        SessionStore

	closers []io.Closer
}

// NewStorages connects the backend named by cfg.Storage.Backend and the
// session store. app is required for the Firestore backend only.
func NewStorages(ctx context.Context, cfg *config.StructuredConfig, app *firebase.App, log *logger.Logger) (*Storages, error) {
	s := &Storages{}

	switch cfg.Storage.Backend {
	case config.BackendFirestore:
		if app == nil {
			return nil, fmt.Errorf("%w: firestore backend needs a Firebase app", ErrDocumentStore)
		}
		client, err := NewConnectFirestore(ctx, app, log)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, client)

		s.UserRepository = NewFirestoreUserRepository(client, log)
		s.SectorRepository = NewFirestoreSectorRepository(client, log)
		s.LogRepository = NewFirestoreLogRepository(client, log)
		s.StatsRepository = NewFirestoreStatsRepository(client, log)
		s.VehicleRepository = NewFirestoreVehicleRepository(client, log)
		s.ReferenceRepository = NewFirestoreReferenceRepository(client, log)
	default:
		db, err := NewConnectPostgres(ctx, cfg.Storage.DB, log)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, db)

		if err = db.Migrate(); err != nil {
			log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
			_ = s.Close()
			return nil, fmt.Errorf("error applying migrations: %w", err)
		}

		s.UserRepository = NewUserRepository(db, log)
		s.SectorRepository = NewSectorRepository(db, log)
		s.LogRepository = NewLogRepository(db, log)
		s.StatsRepository = NewStatsRepository(db, log)
		s.VehicleRepository = NewVehicleRepository(db, log)
		s.ReferenceRepository = NewReferenceRepository(db, log)
	}

	if cfg.Storage.Sessions.RedisAddress == "" {
		s.SessionStore = NewMemorySessionStore(log)
		return s, nil
	}

	client, err := NewConnectRedis(ctx, cfg.Storage.Sessions, log)
	if err != nil {
		_ = s.Close()
		return nil, err
	}
	s.closers = append(s.closers, client)
	s.SessionStore = NewRedisSessionStore(client, log)

	return s, nil
}

// Close releases every backend connection.
func (s *Storages) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		errs = append(errs, s.closers[i].Close())
	}
	s.closers = nil
	return errors.Join(errs...)
}
