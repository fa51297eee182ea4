package service

import (
	"context"

	"github.com/MKhiriev/go-fleet-logbook/internal/utils"
	"github.com/MKhiriev/go-fleet-logbook/models"
)

func callerFrom(ctx context.Context) (models.User, error) {
	caller, ok := utils.GetCallerFromContext(ctx)
	if !ok || caller.ID == "" {
		return models.User{}, ErrUnauthenticated
	}
	return caller, nil
}

func requireElevated(ctx context.Context) (models.User, error) {
	caller, err := callerFrom(ctx)
	if err != nil {
		return models.User{}, err
	}
	if !caller.Role.IsElevated() {
		return models.User{}, ErrPermission
	}
	return caller, nil
}

// subjectFor returns the user an operation acts on. Drivers may only act
// on themselves; an empty userID means the caller.
func subjectFor(caller models.User, userID string) (string, error) {
	if userID == "" {
		return caller.ID, nil
	}
	if userID != caller.ID && !caller.Role.IsElevated() {
		return "", ErrPermission
	}
	return userID, nil
}
