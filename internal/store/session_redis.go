package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-fleet-logbook/internal/config"
	"github.com/MKhiriev/go-fleet-logbook/internal/logger"
	"github.com/MKhiriev/go-fleet-logbook/models"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

// redisSessionStore keeps sessions as JSON values whose TTL matches the
// session expiry, so redis drops them on its own.
type redisSessionStore struct {
	client *redis.Client
	logger *logger.Logger
	now    func() time.Time
}

// NewConnectRedis opens a client for cfg and pings it.
func NewConnectRedis(ctx context.Context, cfg config.Sessions, log *logger.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Err(err).Str("func", "NewConnectRedis").Msg("error connecting redis (ping)")
		_ = client.Close()
		return nil, fmt.Errorf("%w: %w", ErrSessionStore, err)
	}
	log.Info().Str("func", "NewConnectRedis").Msg("connected to redis successfully")

	return client, nil
}

func NewRedisSessionStore(client *redis.Client, logger *logger.Logger) SessionStore {
	logger.Debug().Msg("creating redis session store")
	return &redisSessionStore{client: client, logger: logger, now: time.Now}
}

func (s *redisSessionStore) SaveSession(ctx context.Context, session models.Session) error {
	ttl := session.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return fmt.Errorf("%w: session %s already expired", ErrSessionStore, session.ID)
	}

	value, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSessionStore, err)
	}

	if err := s.client.Set(ctx, sessionKeyPrefix+session.ID, value, ttl).Err(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*redisSessionStore.SaveSession").Msg("error saving session")
		return fmt.Errorf("%w: %w", ErrSessionStore, err)
	}

	return nil
}

func (s *redisSessionStore) GetSession(ctx context.Context, id string) (models.Session, error) {
	value, err := s.client.Get(ctx, sessionKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.Session{}, ErrNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*redisSessionStore.GetSession").Msg("error reading session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrSessionStore, err)
	}

	var session models.Session
	if err := json.Unmarshal(value, &session); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrSessionStore, err)
	}
	if session.Expired(s.now()) {
		return models.Session{}, ErrNotFound
	}

	return session, nil
}

func (s *redisSessionStore) DeleteSession(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, sessionKeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrSessionStore, err)
	}
	return nil
}
