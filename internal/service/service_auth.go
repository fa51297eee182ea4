package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-fleet-logbook/internal/config"
	"github.com/MKhiriev/go-fleet-logbook/internal/identity"
	"github.com/MKhiriev/go-fleet-logbook/internal/logger"
	"github.com/MKhiriev/go-fleet-logbook/internal/store"
	"github.com/MKhiriev/go-fleet-logbook/internal/utils"
	"github.com/MKhiriev/go-fleet-logbook/models"
)

// authService is the concrete implementation of AuthService.
//
// Identity is delegated to an identity.Provider. The service itself only
// keeps sessions: every login opens one, every token carries its id in the
// "jti" claim, and a token is accepted only while its session exists.
type authService struct {
	provider identity.Provider
	users    store.UserRepository
	sessions store.SessionStore
	ids      utils.IDGenerator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration is both the token lifetime and the session TTL.
	tokenDuration time.Duration

	now func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService populated with token
// parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(provider identity.Provider, users store.UserRepository, sessions store.SessionStore, ids utils.IDGenerator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		provider:      provider,
		users:         users,
		sessions:      sessions,
		ids:           ids,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		now:           time.Now,
		logger:        logger,
	}
}

// Login authenticates credentials and opens a session.
//
// Returns:
//   - ErrUnauthenticated if the provider rejects the credentials.
//   - ErrAccountInactive if the account is pending or disabled.
//   - ErrPersistence if the session cannot be stored.
//   - ErrTokenCreationFailed if the token cannot be signed.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.LoginResponse, error) {
	log := logger.FromContext(ctx)

	user, err := a.provider.Authenticate(ctx, credentials)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			log.Warn().Str("email", credentials.Email).Msg("login rejected")
			return models.LoginResponse{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
		}
		log.Err(err).Msg("identity provider failed")
		return models.LoginResponse{}, fmt.Errorf("%w: identity provider: %w", ErrPersistence, err)
	}

	if !user.IsActive() {
		log.Warn().Str("user_id", user.ID).Str("status", string(user.Status)).Msg("login of inactive account")
		return models.LoginResponse{}, ErrAccountInactive
	}

	now := a.now().UTC()
	session := models.Session{
		ID:        a.ids.Generate(),
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(a.tokenDuration),
	}
	if err = a.sessions.SaveSession(ctx, session); err != nil {
		log.Err(err).Str("user_id", user.ID).Msg("error opening session")
		return models.LoginResponse{}, storeError("open session", err)
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, session.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		// the session is unusable without a token
		_ = a.sessions.DeleteSession(ctx, session.ID)
		return models.LoginResponse{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	log.Info().Str("user_id", user.ID).Str("session_id", session.ID).Msg("session opened")

	return models.LoginResponse{
		Token:     token.SignedString,
		ExpiresAt: session.ExpiresAt.UnixMilli(),
		User:      user,
	}, nil
}

// Authenticate validates tokenString and resolves it to the account it was
// issued for.
//
// Any token validation failure is normalised to ErrTokenIsExpiredOrInvalid.
// A signed-out session or a deleted account yields ErrUnauthenticated.
func (a *authService) Authenticate(ctx context.Context, tokenString string) (models.User, string, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.User{}, "", ErrTokenIsExpiredOrInvalid
	}

	session, err := a.sessions.GetSession(ctx, token.SessionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.User{}, "", fmt.Errorf("%w: session is closed", ErrUnauthenticated)
		}
		return models.User{}, "", storeError("load session", err)
	}
	if session.UserID != token.UserID {
		return models.User{}, "", ErrTokenIsExpiredOrInvalid
	}

	user, err := a.users.GetUser(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.User{}, "", fmt.Errorf("%w: account no longer exists", ErrUnauthenticated)
		}
		return models.User{}, "", storeError("load caller", err)
	}
	if !user.IsActive() {
		return models.User{}, "", ErrAccountInactive
	}

	return user, session.ID, nil
}

func (a *authService) Logout(ctx context.Context) error {
	sessionID, ok := utils.GetSessionIDFromContext(ctx)
	if !ok {
		return ErrUnauthenticated
	}

	if err := a.sessions.DeleteSession(ctx, sessionID); err != nil && !errors.Is(err, store.ErrNotFound) {
		return storeError("close session", err)
	}

	logger.FromContext(ctx).Info().Str("session_id", sessionID).Msg("session closed")
	return nil
}
