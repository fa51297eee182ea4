package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-fleet-logbook/internal/form"
	"github.com/MKhiriev/go-fleet-logbook/internal/logger"
	"github.com/MKhiriev/go-fleet-logbook/internal/store"
	"github.com/MKhiriev/go-fleet-logbook/internal/utils"
	"github.com/MKhiriev/go-fleet-logbook/models"
)

type sectorService struct {
	sectors  store.SectorRepository
	resolver *form.Resolver
	ids      utils.IDGenerator

	logger *logger.Logger
}

// NewSectorService returns the unvalidated sector service. Wrap it with
// [NewSectorValidationService] before exposing it.
func NewSectorService(sectors store.SectorRepository, resolver *form.Resolver, ids utils.IDGenerator, logger *logger.Logger) SectorService {
	return &sectorService{sectors: sectors, resolver: resolver, ids: ids, logger: logger}
}

func (s *sectorService) ListSectors(ctx context.Context) ([]models.Sector, error) {
	if _, err := callerFrom(ctx); err != nil {
		return nil, err
	}

	sectors, err := s.sectors.ListSectors(ctx)
	if err != nil {
		return nil, storeError("list sectors", err)
	}
	return sectors, nil
}

func (s *sectorService) GetSector(ctx context.Context, id string) (models.Sector, error) {
	if _, err := callerFrom(ctx); err != nil {
		return models.Sector{}, err
	}

	sector, err := s.sectors.GetSector(ctx, id)
	if err != nil {
		return models.Sector{}, storeError("get sector", err)
	}
	return sector, nil
}

func (s *sectorService) CreateSector(ctx context.Context, name string, fields []models.FieldDefinition) (models.Sector, error) {
	if _, err := requireElevated(ctx); err != nil {
		return models.Sector{}, err
	}

	sector := models.Sector{
		ID:     s.ids.Generate(),
		Name:   strings.TrimSpace(name),
		Fields: s.withFieldIDs(fields),
	}

	created, err := s.sectors.CreateSector(ctx, sector)
	if err != nil {
		return models.Sector{}, storeError("create sector", err)
	}

	logger.FromContext(ctx).Info().Str("sector_id", created.ID).Str("name", created.Name).Msg("sector created")
	return created, nil
}

func (s *sectorService) UpdateSector(ctx context.Context, id string, update models.SectorUpdate) (models.Sector, error) {
	if _, err := requireElevated(ctx); err != nil {
		return models.Sector{}, err
	}

	existing, err := s.sectors.GetSector(ctx, id)
	if err != nil {
		return models.Sector{}, storeError("get sector", err)
	}

	merged := update.Apply(existing)
	merged.Name = strings.TrimSpace(merged.Name)
	merged.Fields = s.withFieldIDs(merged.Fields)

	updated, err := s.sectors.UpdateSector(ctx, merged)
	if err != nil {
		return models.Sector{}, storeError("update sector", err)
	}
	return updated, nil
}

func (s *sectorService) DeleteSector(ctx context.Context, id string) error {
	if _, err := requireElevated(ctx); err != nil {
		return err
	}

	if err := s.sectors.DeleteSector(ctx, id); err != nil {
		return storeError("delete sector", err)
	}

	logger.FromContext(ctx).Info().Str("sector_id", id).Msg("sector deleted")
	return nil
}

func (s *sectorService) ResolveForm(ctx context.Context, id string, answers map[string]any) ([]form.Control, error) {
	sector, err := s.GetSector(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.resolver.Resolve(sector, answers), nil
}

// withFieldIDs copies fields, trimming labels and giving new fields an id.
// Existing ids are kept so stored answers stay attached.
func (s *sectorService) withFieldIDs(fields []models.FieldDefinition) []models.FieldDefinition {
	out := make([]models.FieldDefinition, len(fields))
	for i, f := range fields {
		f.Label = strings.TrimSpace(f.Label)
		if f.ID == "" {
			f.ID = s.ids.Generate()
		}
		out[i] = f
	}
	return out
}
