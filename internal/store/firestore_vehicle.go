package store

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/MKhiriev/go-fleet-logbook/internal/logger"
	"github.com/MKhiriev/go-fleet-logbook/models"
)

type firestoreVehicleRepository struct {
	client *firestore.Client
	logger *logger.Logger
}

func NewFirestoreVehicleRepository(client *firestore.Client, logger *logger.Logger) VehicleRepository {
	logger.Debug().Msg("creating firestore vehicle repository")
	return &firestoreVehicleRepository{client: client, logger: logger}
}

func (r *firestoreVehicleRepository) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	vehicles, err := collect[models.Vehicle](r.client.Collection(vehiclesCollection).OrderBy("plate", firestore.Asc).Documents(ctx))
	if err != nil {
		return nil, docError(ctx, "*firestoreVehicleRepository.ListVehicles", err)
	}
	return vehicles, nil
}

func (r *firestoreVehicleRepository) GetVehicle(ctx context.Context, id string) (models.Vehicle, error) {
	doc, err := r.client.Collection(vehiclesCollection).Doc(id).Get(ctx)
	if err != nil {
		return models.Vehicle{}, docError(ctx, "*firestoreVehicleRepository.GetVehicle", err)
	}

	var v models.Vehicle
	if err := doc.DataTo(&v); err != nil {
		return models.Vehicle{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return v, nil
}

// CreateVehicle checks plate uniqueness and creates the document in one
// transaction.
func (r *firestoreVehicleRepository) CreateVehicle(ctx context.Context, v models.Vehicle) (models.Vehicle, error) {
	v.CreatedAt = nowUTC()

	if err := r.writeUnique(ctx, v, func(tx *firestore.Transaction, ref *firestore.DocumentRef) error {
		return tx.Create(ref, v)
	}); err != nil {
		return models.Vehicle{}, docError(ctx, "*firestoreVehicleRepository.CreateVehicle", err)
	}

	return v, nil
}

func (r *firestoreVehicleRepository) UpdateVehicle(ctx context.Context, v models.Vehicle) (models.Vehicle, error) {
	if err := r.writeUnique(ctx, v, func(tx *firestore.Transaction, ref *firestore.DocumentRef) error {
		return tx.Update(ref, []firestore.Update{
			{Path: "plate", Value: v.Plate},
			{Path: "type", Value: v.Type},
			{Path: "subtype", Value: v.Subtype},
			{Path: "code", Value: v.Code},
			{Path: "pairedTrailerId", Value: v.PairedTrailerID},
		})
	}); err != nil {
		return models.Vehicle{}, docError(ctx, "*firestoreVehicleRepository.UpdateVehicle", err)
	}

	return r.GetVehicle(ctx, v.ID)
}

func (r *firestoreVehicleRepository) DeleteVehicle(ctx context.Context, id string) error {
	if _, err := r.client.Collection(vehiclesCollection).Doc(id).Delete(ctx, firestore.Exists); err != nil {
		return docError(ctx, "*firestoreVehicleRepository.DeleteVehicle", err)
	}
	return nil
}

func (r *firestoreVehicleRepository) writeUnique(ctx context.Context, v models.Vehicle, write func(*firestore.Transaction, *firestore.DocumentRef) error) error {
	vehicles := r.client.Collection(vehiclesCollection)

	return r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		same, err := tx.Documents(vehicles.Where("plate", "==", v.Plate)).GetAll()
		if err != nil {
			return err
		}
		if existsOther(same, v.ID) {
			return ErrAlreadyExists
		}

		return write(tx, vehicles.Doc(v.ID))
	})
}
