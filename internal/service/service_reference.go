package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-fleet-logbook/internal/logger"
	"github.com/MKhiriev/go-fleet-logbook/internal/store"
	"github.com/MKhiriev/go-fleet-logbook/internal/utils"
	"github.com/MKhiriev/go-fleet-logbook/models"
)

type referenceService struct {
	references store.ReferenceRepository
	ids        utils.IDGenerator

	logger *logger.Logger
}

func NewReferenceService(references store.ReferenceRepository, ids utils.IDGenerator, logger *logger.Logger) ReferenceService {
	return &referenceService{references: references, ids: ids, logger: logger}
}

func (s *referenceService) ListWorkshops(ctx context.Context) ([]models.Workshop, error) {
	if _, err := callerFrom(ctx); err != nil {
		return nil, err
	}

	workshops, err := s.references.ListWorkshops(ctx)
	if err != nil {
		return nil, storeError("list workshops", err)
	}
	return workshops, nil
}

func (s *referenceService) CreateWorkshop(ctx context.Context, workshop models.Workshop) (models.Workshop, error) {
	if _, err := requireElevated(ctx); err != nil {
		return models.Workshop{}, err
	}
	if workshop.Name = strings.TrimSpace(workshop.Name); workshop.Name == "" {
		return models.Workshop{}, validationMessage("workshop name is required")
	}
	workshop.ID = s.ids.Generate()

	created, err := s.references.CreateWorkshop(ctx, workshop)
	if err != nil {
		return models.Workshop{}, storeError("create workshop", err)
	}
	return created, nil
}

func (s *referenceService) UpdateWorkshop(ctx context.Context, id string, workshop models.Workshop) (models.Workshop, error) {
	if _, err := requireElevated(ctx); err != nil {
		return models.Workshop{}, err
	}
	if workshop.Name = strings.TrimSpace(workshop.Name); workshop.Name == "" {
		return models.Workshop{}, validationMessage("workshop name is required")
	}
	workshop.ID = id

	updated, err := s.references.UpdateWorkshop(ctx, workshop)
	if err != nil {
		return models.Workshop{}, storeError("update workshop", err)
	}
	return updated, nil
}

func (s *referenceService) DeleteWorkshop(ctx context.Context, id string) error {
	if _, err := requireElevated(ctx); err != nil {
		return err
	}

	if err := s.references.DeleteWorkshop(ctx, id); err != nil {
		return storeError("delete workshop", err)
	}
	return nil
}

func (s *referenceService) ListFuelStations(ctx context.Context) ([]models.FuelStation, error) {
	if _, err := callerFrom(ctx); err != nil {
		return nil, err
	}

	stations, err := s.references.ListFuelStations(ctx)
	if err != nil {
		return nil, storeError("list fuel stations", err)
	}
	return stations, nil
}

func (s *referenceService) CreateFuelStation(ctx context.Context, station models.FuelStation) (models.FuelStation, error) {
	if _, err := requireElevated(ctx); err != nil {
		return models.FuelStation{}, err
	}
	if station.Name = strings.TrimSpace(station.Name); station.Name == "" {
		return models.FuelStation{}, validationMessage("fuel station name is required")
	}
	station.ID = s.ids.Generate()

	created, err := s.references.CreateFuelStation(ctx, station)
	if err != nil {
		return models.FuelStation{}, storeError("create fuel station", err)
	}
	return created, nil
}

func (s *referenceService) UpdateFuelStation(ctx context.Context, id string, station models.FuelStation) (models.FuelStation, error) {
	if _, err := requireElevated(ctx); err != nil {
		return models.FuelStation{}, err
	}
	if station.Name = strings.TrimSpace(station.Name); station.Name == "" {
		return models.FuelStation{}, validationMessage("fuel station name is required")
	}
	station.ID = id

	updated, err := s.references.UpdateFuelStation(ctx, station)
	if err != nil {
		return models.FuelStation{}, storeError("update fuel station", err)
	}
	return updated, nil
}

func (s *referenceService) DeleteFuelStation(ctx context.Context, id string) error {
	if _, err := requireElevated(ctx); err != nil {
		return err
	}

	if err := s.references.DeleteFuelStation(ctx, id); err != nil {
		return storeError("delete fuel station", err)
	}
	return nil
}
