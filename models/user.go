package models

import "time"

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the unique identifier of the user. For accounts provisioned by
	// the external identity provider it is generated at creation time and
	// ExternalID carries the provider's subject.
	ID string `json:"id" firestore:"id"`

	// Email is the unique login of the user.
	Email string `json:"email" firestore:"email"`

	// Name is the display name of the user.
	Name string `json:"name" firestore:"name"`

	Role   Role       `json:"role" firestore:"role"`
	Status UserStatus `json:"status" firestore:"status"`

	// AssignedVehicleID is the vehicle permanently assigned to a driver.
	// Empty when the driver has no fixed vehicle.
	AssignedVehicleID string `json:"assignedVehicleId,omitempty" firestore:"assignedVehicleId"`

	// ExternalID is the subject of the account at the identity provider.
	ExternalID string `json:"externalId,omitempty" firestore:"externalId"`

	// Password is accepted on input only and never persisted.
	Password string `json:"password,omitempty" firestore:"-"`

	// PasswordHash is the bcrypt hash of the password.
	PasswordHash string `json:"-" firestore:"passwordHash"`

	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
}

// IsActive reports whether the account may use the service.
func (u User) IsActive() bool {
	return u.Status == StatusActive
}

// UserUpdate carries the administrator-editable fields of an account.
// Nil fields are left untouched.
type UserUpdate struct {
	Name              *string     `json:"name,omitempty"`
	Role              *Role       `json:"role,omitempty"`
	Status            *UserStatus `json:"status,omitempty"`
	AssignedVehicleID *string     `json:"assignedVehicleId,omitempty"`
	Password          *string     `json:"password,omitempty"`
}

// Credentials is the login payload. The password provider reads Email and
// Password, the Firebase provider reads IDToken.
type Credentials struct {
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
	IDToken  string `json:"idToken,omitempty"`
}
