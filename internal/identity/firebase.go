package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-fleet-logbook/internal/logger"
	"github.com/MKhiriev/go-fleet-logbook/internal/store"
	"github.com/MKhiriev/go-fleet-logbook/internal/utils"
	"github.com/MKhiriev/go-fleet-logbook/models"
)

type firebaseProvider struct {
	verifier TokenVerifier
	users    store.UserRepository
	ids      utils.IDGenerator
	logger   *logger.Logger
}

// NewFirebaseProvider authenticates Firebase ID tokens. Accounts are
// matched by uid first, then by email; an unmatched subject becomes a
// pending driver that an administrator has to activate.
func NewFirebaseProvider(verifier TokenVerifier, users store.UserRepository, ids utils.IDGenerator, logger *logger.Logger) Provider {
	return &firebaseProvider{verifier: verifier, users: users, ids: ids, logger: logger}
}

func (p *firebaseProvider) Authenticate(ctx context.Context, c models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if c.IDToken == "" {
		return models.User{}, ErrInvalidCredentials
	}

	token, err := p.verifier.VerifyIDToken(ctx, c.IDToken)
	if err != nil {
		log.Info().Err(err).Msg("ID token rejected")
		return models.User{}, ErrInvalidCredentials
	}

	id := models.Identity{Subject: token.UID}
	if email, ok := token.Claims["email"].(string); ok {
		id.Email = strings.ToLower(email)
	}

	user, err := p.users.FindUserByExternalID(ctx, id.Subject)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return models.User{}, fmt.Errorf("user search by external id failed: %w", err)
	}

	return p.syncProfile(ctx, id, token.Claims)
}

// syncProfile links an existing account with the same email or creates a
// pending driver for the subject.
func (p *firebaseProvider) syncProfile(ctx context.Context, id models.Identity, claims map[string]any) (models.User, error) {
	log := logger.FromContext(ctx)

	if id.Email != "" {
		user, err := p.users.FindUserByEmail(ctx, id.Email)
		switch {
		case err == nil && user.ExternalID == "":
			user.ExternalID = id.Subject
			linked, err := p.users.UpdateUser(ctx, user)
			if err != nil {
				return models.User{}, fmt.Errorf("linking account failed: %w", err)
			}
			log.Info().Str("user_id", linked.ID).Msg("account linked to identity provider")
			return linked, nil
		case err == nil:
			// email belongs to an account bound to another subject
			return models.User{}, ErrInvalidCredentials
		case !errors.Is(err, store.ErrNotFound):
			return models.User{}, fmt.Errorf("user search by email failed: %w", err)
		}
	}

	name, _ := claims["name"].(string)
	user, err := p.users.CreateUser(ctx, models.User{
		ID:         p.ids.Generate(),
		Email:      id.Email,
		Name:       name,
		Role:       models.RoleDriver,
		Status:     models.StatusPending,
		ExternalID: id.Subject,
	})
	if err != nil {
		return models.User{}, fmt.Errorf("provisioning account failed: %w", err)
	}
	log.Info().Str("user_id", user.ID).Msg("account provisioned from identity provider")

	return user, nil
}
