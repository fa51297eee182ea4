package identity

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go"
	"github.com/MKhiriev/go-fleet-logbook/internal/config"
	"github.com/MKhiriev/go-fleet-logbook/internal/logger"
	"github.com/MKhiriev/go-fleet-logbook/internal/store"
	"github.com/MKhiriev/go-fleet-logbook/internal/utils"
)

// NewProvider returns the provider named by cfg.IdentityProvider. app is
// only used by the Firebase provider.
func NewProvider(ctx context.Context, cfg config.App, app *firebase.App, users store.UserRepository, ids utils.IDGenerator, log *logger.Logger) (Provider, error) {
	switch cfg.IdentityProvider {
	case config.IdentityPassword, "":
		return NewPasswordProvider(users, log), nil
	case config.IdentityFirebase:
		if app == nil {
			return nil, fmt.Errorf("%w: firebase provider needs a Firebase app", ErrUnknownProvider)
		}
		client, err := app.Auth(ctx)
		if err != nil {
			return nil, fmt.Errorf("error initializing Firebase auth client: %w", err)
		}
		return NewFirebaseProvider(client, users, ids, log), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.IdentityProvider)
}
