package store

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/MKhiriev/go-fleet-logbook/internal/logger"
	"github.com/MKhiriev/go-fleet-logbook/models"
	"google.golang.org/api/iterator"
)

// firestoreUserRepository keeps accounts in the "users" collection keyed by
// user id. Email and external id uniqueness is checked inside a transaction.
type firestoreUserRepository struct {
	client *firestore.Client
	logger *logger.Logger
}

func NewFirestoreUserRepository(client *firestore.Client, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating firestore user repository")
	return &firestoreUserRepository{client: client, logger: logger}
}

func (r *firestoreUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	users := r.client.Collection(usersCollection)
	user.Password = ""
	user.CreatedAt = nowUTC()

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		taken, err := tx.Documents(users.Where("email", "==", user.Email).Limit(1)).GetAll()
		if err != nil {
			return err
		}
		if len(taken) > 0 {
			return ErrAlreadyExists
		}

		if user.ExternalID != "" {
			taken, err = tx.Documents(users.Where("externalId", "==", user.ExternalID).Limit(1)).GetAll()
			if err != nil {
				return err
			}
			if len(taken) > 0 {
				return ErrAlreadyExists
			}
		}

		return tx.Create(users.Doc(user.ID), user)
	})
	if err != nil {
		return models.User{}, docError(ctx, "*firestoreUserRepository.CreateUser", err)
	}

	return user, nil
}

func (r *firestoreUserRepository) GetUser(ctx context.Context, id string) (models.User, error) {
	doc, err := r.client.Collection(usersCollection).Doc(id).Get(ctx)
	if err != nil {
		return models.User{}, docError(ctx, "*firestoreUserRepository.GetUser", err)
	}

	var user models.User
	if err := doc.DataTo(&user); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return user, nil
}

func (r *firestoreUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, "*firestoreUserRepository.FindUserByEmail", "email", email)
}

func (r *firestoreUserRepository) FindUserByExternalID(ctx context.Context, externalID string) (models.User, error) {
	if externalID == "" {
		return models.User{}, ErrNotFound
	}
	return r.findOne(ctx, "*firestoreUserRepository.FindUserByExternalID", "externalId", externalID)
}

func (r *firestoreUserRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := collect[models.User](r.client.Collection(usersCollection).OrderBy("email", firestore.Asc).Documents(ctx))
	if err != nil {
		return nil, docError(ctx, "*firestoreUserRepository.ListUsers", err)
	}
	return users, nil
}

func (r *firestoreUserRepository) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	_, err := r.client.Collection(usersCollection).Doc(user.ID).Update(ctx, []firestore.Update{
		{Path: "name", Value: user.Name},
		{Path: "role", Value: user.Role},
		{Path: "status", Value: user.Status},
		{Path: "assignedVehicleId", Value: user.AssignedVehicleID},
		{Path: "passwordHash", Value: user.PasswordHash},
		{Path: "externalId", Value: user.ExternalID},
	})
	if err != nil {
		return models.User{}, docError(ctx, "*firestoreUserRepository.UpdateUser", err)
	}

	return r.GetUser(ctx, user.ID)
}

func (r *firestoreUserRepository) findOne(ctx context.Context, op, field, value string) (models.User, error) {
	iter := r.client.Collection(usersCollection).Where(field, "==", value).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if errors.Is(err, iterator.Done) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, docError(ctx, op, err)
	}

	var user models.User
	if err := doc.DataTo(&user); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return user, nil
}
