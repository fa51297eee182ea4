// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Role is the access level of an account.
type Role string

const (
	// RoleDriver records logs for the vehicles assigned to them.
	RoleDriver Role = "driver"

	// RoleMaster manages reference data and user accounts.
	RoleMaster Role = "master"

	// RoleOwner has the same rights as RoleMaster.
	RoleOwner Role = "owner"
)

// IsElevated reports whether r may manage reference data and edit any log
// record regardless of the edit window.
func (r Role) IsElevated() bool {
	return r == RoleMaster || r == RoleOwner
}

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleDriver, RoleMaster, RoleOwner:
		return true
	}
	return false
}

// UserStatus is the lifecycle state of an account.
type UserStatus string

const (
	StatusActive   UserStatus = "active"
	StatusPending  UserStatus = "pending"
	StatusDisabled UserStatus = "disabled"
)

// IsValid reports whether s is one of the known statuses.
func (s UserStatus) IsValid() bool {
	switch s {
	case StatusActive, StatusPending, StatusDisabled:
		return true
	}
	return false
}
