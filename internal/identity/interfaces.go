package identity

import (
	"context"

	"firebase.google.com/go/auth"
	"github.com/MKhiriev/go-fleet-logbook/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/identity_mock.go -package=mock

// Provider resolves login credentials to a local account.
type Provider interface {
	Authenticate(ctx context.Context, credentials models.Credentials) (models.User, error)
}

// TokenVerifier verifies Firebase ID tokens. *auth.Client implements it.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}
