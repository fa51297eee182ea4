package store

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"cloud.google.com/go/firestore"
	"github.com/MKhiriev/go-fleet-logbook/internal/logger"
	"github.com/MKhiriev/go-fleet-logbook/models"
)

type firestoreSectorRepository struct {
	client *firestore.Client
	logger *logger.Logger
}

func NewFirestoreSectorRepository(client *firestore.Client, logger *logger.Logger) SectorRepository {
	logger.Debug().Msg("creating firestore sector repository")
	return &firestoreSectorRepository{client: client, logger: logger}
}

// ListSectors sorts in memory: Firestore cannot order case-insensitively.
func (r *firestoreSectorRepository) ListSectors(ctx context.Context) ([]models.Sector, error) {
	sectors, err := collect[models.Sector](r.client.Collection(sectorsCollection).Documents(ctx))
	if err != nil {
		return nil, docError(ctx, "*firestoreSectorRepository.ListSectors", err)
	}

	sortSectors(sectors)
	return sectors, nil
}

func (r *firestoreSectorRepository) GetSector(ctx context.Context, id string) (models.Sector, error) {
	doc, err := r.client.Collection(sectorsCollection).Doc(id).Get(ctx)
	if err != nil {
		return models.Sector{}, docError(ctx, "*firestoreSectorRepository.GetSector", err)
	}

	var sector models.Sector
	if err := doc.DataTo(&sector); err != nil {
		return models.Sector{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return sector, nil
}

func (r *firestoreSectorRepository) CreateSector(ctx context.Context, sector models.Sector) (models.Sector, error) {
	if _, err := r.client.Collection(sectorsCollection).Doc(sector.ID).Create(ctx, sector); err != nil {
		return models.Sector{}, docError(ctx, "*firestoreSectorRepository.CreateSector", err)
	}
	return sector, nil
}

func (r *firestoreSectorRepository) UpdateSector(ctx context.Context, sector models.Sector) (models.Sector, error) {
	_, err := r.client.Collection(sectorsCollection).Doc(sector.ID).Update(ctx, []firestore.Update{
		{Path: "name", Value: sector.Name},
		{Path: "fields", Value: sector.Fields},
	})
	if err != nil {
		return models.Sector{}, docError(ctx, "*firestoreSectorRepository.UpdateSector", err)
	}
	return sector, nil
}

// DeleteSector relies on Firestore deletes of missing documents succeeding.
func (r *firestoreSectorRepository) DeleteSector(ctx context.Context, id string) error {
	if _, err := r.client.Collection(sectorsCollection).Doc(id).Delete(ctx); err != nil {
		return docError(ctx, "*firestoreSectorRepository.DeleteSector", err)
	}
	return nil
}

// sortSectors orders sectors by name, case-insensitively, then by id.
func sortSectors(sectors []models.Sector) {
	sort.SliceStable(sectors, func(i, j int) bool {
		a, b := strings.ToLower(sectors[i].Name), strings.ToLower(sectors[j].Name)
		if a != b {
			return a < b
		}
		return sectors[i].ID < sectors[j].ID
	})
}
