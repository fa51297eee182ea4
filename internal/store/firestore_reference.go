package store

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/MKhiriev/go-fleet-logbook/internal/logger"
	"github.com/MKhiriev/go-fleet-logbook/models"
)

type firestoreReferenceRepository struct {
	client *firestore.Client
	logger *logger.Logger
}

func NewFirestoreReferenceRepository(client *firestore.Client, logger *logger.Logger) ReferenceRepository {
	logger.Debug().Msg("creating firestore reference data repository")
	return &firestoreReferenceRepository{client: client, logger: logger}
}

func (r *firestoreReferenceRepository) ListWorkshops(ctx context.Context) ([]models.Workshop, error) {
	workshops, err := collect[models.Workshop](r.client.Collection(workshopsCollection).OrderBy("name", firestore.Asc).Documents(ctx))
	if err != nil {
		return nil, docError(ctx, "*firestoreReferenceRepository.ListWorkshops", err)
	}
	return workshops, nil
}

func (r *firestoreReferenceRepository) CreateWorkshop(ctx context.Context, w models.Workshop) (models.Workshop, error) {
	w.CreatedAt = nowUTC()
	if _, err := r.client.Collection(workshopsCollection).Doc(w.ID).Create(ctx, w); err != nil {
		return models.Workshop{}, docError(ctx, "*firestoreReferenceRepository.CreateWorkshop", err)
	}
	return w, nil
}

func (r *firestoreReferenceRepository) UpdateWorkshop(ctx context.Context, w models.Workshop) (models.Workshop, error) {
	_, err := r.client.Collection(workshopsCollection).Doc(w.ID).Update(ctx, []firestore.Update{
		{Path: "name", Value: w.Name},
		{Path: "address", Value: w.Address},
		{Path: "phone", Value: w.Phone},
	})
	if err != nil {
		return models.Workshop{}, docError(ctx, "*firestoreReferenceRepository.UpdateWorkshop", err)
	}
	return w, nil
}

func (r *firestoreReferenceRepository) DeleteWorkshop(ctx context.Context, id string) error {
	if _, err := r.client.Collection(workshopsCollection).Doc(id).Delete(ctx, firestore.Exists); err != nil {
		return docError(ctx, "*firestoreReferenceRepository.DeleteWorkshop", err)
	}
	return nil
}

func (r *firestoreReferenceRepository) ListFuelStations(ctx context.Context) ([]models.FuelStation, error) {
	stations, err := collect[models.FuelStation](r.client.Collection(stationsCollection).OrderBy("name", firestore.Asc).Documents(ctx))
	if err != nil {
		return nil, docError(ctx, "*firestoreReferenceRepository.ListFuelStations", err)
	}
	return stations, nil
}

func (r *firestoreReferenceRepository) CreateFuelStation(ctx context.Context, s models.FuelStation) (models.FuelStation, error) {
	s.CreatedAt = nowUTC()
	if _, err := r.client.Collection(stationsCollection).Doc(s.ID).Create(ctx, s); err != nil {
		return models.FuelStation{}, docError(ctx, "*firestoreReferenceRepository.CreateFuelStation", err)
	}
	return s, nil
}

func (r *firestoreReferenceRepository) UpdateFuelStation(ctx context.Context, s models.FuelStation) (models.FuelStation, error) {
	_, err := r.client.Collection(stationsCollection).Doc(s.ID).Update(ctx, []firestore.Update{
		{Path: "name", Value: s.Name},
		{Path: "brand", Value: s.Brand},
		{Path: "address", Value: s.Address},
	})
	if err != nil {
		return models.FuelStation{}, docError(ctx, "*firestoreReferenceRepository.UpdateFuelStation", err)
	}
	return s, nil
}

func (r *firestoreReferenceRepository) DeleteFuelStation(ctx context.Context, id string) error {
	if _, err := r.client.Collection(stationsCollection).Doc(id).Delete(ctx, firestore.Exists); err != nil {
		return docError(ctx, "*firestoreReferenceRepository.DeleteFuelStation", err)
	}
	return nil
}
