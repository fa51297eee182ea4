package identity

import "errors"

var (
	// ErrInvalidCredentials is returned for unknown emails, wrong passwords
	// and rejected ID tokens alike.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrPasswordTooShort is returned by HashPassword.
	ErrPasswordTooShort = errors.New("password is too short")

	ErrUnknownProvider = errors.New("unknown identity provider")
)
