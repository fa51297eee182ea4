package identity

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-fleet-logbook/internal/logger"
	"github.com/MKhiriev/go-fleet-logbook/internal/mock"
	"github.com/MKhiriev/go-fleet-logbook/internal/store"
	"github.com/MKhiriev/go-fleet-logbook/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── HashPassword / CheckPassword ─────────────────────────────────────────────

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("correct-horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct-horse", hash)

	assert.NoError(t, CheckPassword("correct-horse", hash))
	assert.ErrorIs(t, CheckPassword("wrong-horse", hash), ErrInvalidCredentials)
}

func TestHashPassword_TooShort(t *testing.T) {
	_, err := HashPassword("short")
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

// ── passwordProvider ──────────────────────────────────────────────────────────

func TestPasswordProvider_Authenticate(t *testing.T) {
	hash, err := HashPassword("secret-pass")
	require.NoError(t, err)

	stored := models.User{ID: "u1", Email: "anna@fleet.test", PasswordHash: hash, Status: models.StatusActive}

	tests := []struct {
		name    string
		creds   models.Credentials
		setup   func(users *mock.MockUserRepository)
		wantErr error
	}{
		{
			name:  "success with mixed-case email",
			creds: models.Credentials{Email: " Anna@Fleet.test ", Password: "secret-pass"},
			setup: func(users *mock.MockUserRepository) {
				users.EXPECT().FindUserByEmail(gomock.Any(), "anna@fleet.test").Return(stored, nil)
			},
		},
		{
			name:    "empty password",
			creds:   models.Credentials{Email: "anna@fleet.test"},
			setup:   func(*mock.MockUserRepository) {},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:  "unknown email",
			creds: models.Credentials{Email: "ghost@fleet.test", Password: "secret-pass"},
			setup: func(users *mock.MockUserRepository) {
				users.EXPECT().FindUserByEmail(gomock.Any(), "ghost@fleet.test").Return(models.User{}, store.ErrNotFound)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:  "wrong password",
			creds: models.Credentials{Email: "anna@fleet.test", Password: "not-the-pass"},
			setup: func(users *mock.MockUserRepository) {
				users.EXPECT().FindUserByEmail(gomock.Any(), "anna@fleet.test").Return(stored, nil)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:  "account without password",
			creds: models.Credentials{Email: "anna@fleet.test", Password: "secret-pass"},
			setup: func(users *mock.MockUserRepository) {
				users.EXPECT().FindUserByEmail(gomock.Any(), "anna@fleet.test").Return(models.User{ID: "u1"}, nil)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:  "store failure",
			creds: models.Credentials{Email: "anna@fleet.test", Password: "secret-pass"},
			setup: func(users *mock.MockUserRepository) {
				users.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrExecutingQuery)
			},
			wantErr: store.ErrExecutingQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			users := mock.NewMockUserRepository(ctrl)
			tt.setup(users)

			p := NewPasswordProvider(users, logger.Nop())
			user, err := p.Authenticate(context.Background(), tt.creds)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "u1", user.ID)
		})
	}
}
