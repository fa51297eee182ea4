package models

import "time"

// Session is a signed-in identity. It is created when the identity provider
// confirms a login and removed on sign-out; an expired or removed session
// invalidates every token issued for it.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired reports whether the session is no longer valid at now.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// Identity is a subject confirmed by an identity provider.
type Identity struct {
	// Subject is the provider-side identifier (user id for the password
	// provider, uid for Firebase).
	Subject string
	Email   string
}
