package service

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-fleet-logbook/internal/identity"
	"github.com/MKhiriev/go-fleet-logbook/internal/logger"
	"github.com/MKhiriev/go-fleet-logbook/internal/store"
	"github.com/MKhiriev/go-fleet-logbook/internal/utils"
	"github.com/MKhiriev/go-fleet-logbook/models"
)

type userService struct {
	users store.UserRepository
	ids   utils.IDGenerator

	logger *logger.Logger
}

func NewUserService(users store.UserRepository, ids utils.IDGenerator, logger *logger.Logger) UserService {
	return &userService{users: users, ids: ids, logger: logger}
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	if _, err := requireElevated(ctx); err != nil {
		return nil, err
	}

	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, storeError("list users", err)
	}
	return users, nil
}

// CreateUser provisions an account. Role defaults to driver and status to
// active. The password is optional for accounts that sign in through an
// external provider.
func (s *userService) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	caller, err := requireElevated(ctx)
	if err != nil {
		return models.User{}, err
	}

	user.Email = strings.TrimSpace(strings.ToLower(user.Email))
	user.Name = strings.TrimSpace(user.Name)
	if user.Email == "" {
		return models.User{}, validationMessage("email is required")
	}
	if user.Role == "" {
		user.Role = models.RoleDriver
	}
	if user.Status == "" {
		user.Status = models.StatusActive
	}
	if err = checkRoleAndStatus(caller, user.Role, user.Status); err != nil {
		return models.User{}, err
	}

	if user.Password != "" {
		if user.PasswordHash, err = hashPassword(user.Password); err != nil {
			return models.User{}, err
		}
	}
	user.Password = ""
	user.ID = s.ids.Generate()

	created, err := s.users.CreateUser(ctx, user)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, storeError("create user", err)
	}

	logger.FromContext(ctx).Info().Str("user_id", created.ID).Str("by", caller.ID).Msg("user created")
	return created, nil
}

func (s *userService) UpdateUser(ctx context.Context, id string, update models.UserUpdate) (models.User, error) {
	caller, err := requireElevated(ctx)
	if err != nil {
		return models.User{}, err
	}

	user, err := s.users.GetUser(ctx, id)
	if err != nil {
		return models.User{}, storeError("get user", err)
	}
	// only an owner may touch an owner account
	if user.Role == models.RoleOwner && caller.Role != models.RoleOwner {
		return models.User{}, ErrPermission
	}

	if update.Name != nil {
		user.Name = strings.TrimSpace(*update.Name)
	}
	if update.Role != nil {
		user.Role = *update.Role
	}
	if update.Status != nil {
		user.Status = *update.Status
	}
	if update.AssignedVehicleID != nil {
		user.AssignedVehicleID = *update.AssignedVehicleID
	}
	if err = checkRoleAndStatus(caller, user.Role, user.Status); err != nil {
		return models.User{}, err
	}
	if update.Password != nil {
		if user.PasswordHash, err = hashPassword(*update.Password); err != nil {
			return models.User{}, err
		}
	}

	updated, err := s.users.UpdateUser(ctx, user)
	if err != nil {
		return models.User{}, storeError("update user", err)
	}
	return updated, nil
}

func checkRoleAndStatus(caller models.User, role models.Role, status models.UserStatus) error {
	if !role.IsValid() {
		return validationMessage("unknown role " + string(role))
	}
	if !status.IsValid() {
		return validationMessage("unknown status " + string(status))
	}
	if role == models.RoleOwner && caller.Role != models.RoleOwner {
		return ErrPermission
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := identity.HashPassword(password)
	if errors.Is(err, identity.ErrPasswordTooShort) {
		return "", newValidationError(err)
	}
	return hash, err
}
