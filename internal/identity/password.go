// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-fleet-logbook/internal/logger"
	"github.com/MKhiriev/go-fleet-logbook/internal/store"
	"github.com/MKhiriev/go-fleet-logbook/models"
	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength is the shortest password HashPassword accepts.
const MinPasswordLength = 8

// HashPassword returns the bcrypt hash of password.
func HashPassword(password string) (string, error) {
	if len(password) < MinPasswordLength {
		return "", fmt.Errorf("%w: at least %d characters required", ErrPasswordTooShort, MinPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hash), nil
}

// CheckPassword compares password with a bcrypt hash.
func CheckPassword(password, hash string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrInvalidCredentials
	}
	if err != nil {
		return fmt.Errorf("failed to check password: %w", err)
	}
	return nil
}

type passwordProvider struct {
	users  store.UserRepository
	logger *logger.Logger
}

// NewPasswordProvider authenticates against password hashes kept in users.
func NewPasswordProvider(users store.UserRepository, logger *logger.Logger) Provider {
	return &passwordProvider{users: users, logger: logger}
}

func (p *passwordProvider) Authenticate(ctx context.Context, c models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	email := strings.TrimSpace(strings.ToLower(c.Email))
	if email == "" || c.Password == "" {
		return models.User{}, ErrInvalidCredentials
	}

	user, err := p.users.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		log.Info().Str("email", email).Msg("login for unknown email")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	// accounts provisioned by an external provider have no password
	if user.PasswordHash == "" {
		return models.User{}, ErrInvalidCredentials
	}
	if err = CheckPassword(c.Password, user.PasswordHash); err != nil {
		log.Info().Str("user_id", user.ID).Msg("wrong password")
		return models.User{}, err
	}

	return user, nil
}
