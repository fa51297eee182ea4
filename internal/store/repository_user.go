package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-fleet-logbook/internal/logger"
	"github.com/MKhiriev/go-fleet-logbook/models"
	sq "github.com/Masterminds/squirrel"
)

var userColumns = []string{
	"id", "email", "name", "role", "status", "assigned_vehicle_id",
	"COALESCE(external_id, '')", "password_hash", "created_at",
}

// userRepository is the PostgreSQL-backed implementation of [UserRepository]
// over the "users" table.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts the account and returns it with the database-assigned
// CreatedAt. A taken email or external id yields [ErrAlreadyExists].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	query, args, err := psql.Insert("users").
		Columns("id", "email", "name", "role", "status", "assigned_vehicle_id", "external_id", "password_hash").
		Values(user.ID, user.Email, user.Name, user.Role, user.Status, user.AssignedVehicleID, nullIfEmpty(user.ExternalID), user.PasswordHash).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&user.CreatedAt); err != nil {
		return models.User{}, r.db.queryError(ctx, "*userRepository.CreateUser", err)
	}

	user.Password = ""
	return user, nil
}

func (r *userRepository) GetUser(ctx context.Context, id string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.GetUser", sq.Eq{"id": id})
}

func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByEmail", sq.Eq{"email": email})
}

func (r *userRepository) FindUserByExternalID(ctx context.Context, externalID string) (models.User, error) {
	if externalID == "" {
		return models.User{}, ErrNotFound
	}
	return r.findOne(ctx, "*userRepository.FindUserByExternalID", sq.Eq{"external_id": externalID})
}

// ListUsers returns every account ordered by email.
func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	query, args, err := psql.Select(userColumns...).From("users").OrderBy("email").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, r.db.queryError(ctx, "*userRepository.ListUsers", err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, user)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

// UpdateUser writes every mutable column of the account.
func (r *userRepository) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	err := r.db.execAffecting(ctx, "*userRepository.UpdateUser", psql.Update("users").
		Set("name", user.Name).
		Set("role", user.Role).
		Set("status", user.Status).
		Set("assigned_vehicle_id", user.AssignedVehicleID).
		Set("password_hash", user.PasswordHash).
		Set("external_id", nullIfEmpty(user.ExternalID)).
		Where(sq.Eq{"id": user.ID}))
	if err != nil {
		return models.User{}, err
	}

	return r.GetUser(ctx, user.ID)
}

func (r *userRepository) findOne(ctx context.Context, op string, where sq.Eq) (models.User, error) {
	query, args, err := psql.Select(userColumns...).From("users").Where(where).ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.User{}, r.db.queryError(ctx, op, err)
	}

	return user, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

var _ rowScanner = (*sql.Row)(nil)

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.Role, &u.Status, &u.AssignedVehicleID, &u.ExternalID, &u.PasswordHash, &u.CreatedAt)
	return u, err
}
