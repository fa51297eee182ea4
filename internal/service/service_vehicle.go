package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-fleet-logbook/internal/importer"
	"github.com/MKhiriev/go-fleet-logbook/internal/logger"
	"github.com/MKhiriev/go-fleet-logbook/internal/store"
	"github.com/MKhiriev/go-fleet-logbook/internal/utils"
	"github.com/MKhiriev/go-fleet-logbook/internal/validators"
	"github.com/MKhiriev/go-fleet-logbook/models"
)

type vehicleService struct {
	vehicles  store.VehicleRepository
	validator validators.Validator
	ids       utils.IDGenerator

	logger *logger.Logger
}

func NewVehicleService(vehicles store.VehicleRepository, ids utils.IDGenerator, logger *logger.Logger) VehicleService {
	return &vehicleService{
		vehicles:  vehicles,
		validator: validators.NewVehicleValidator(),
		ids:       ids,
		logger:    logger,
	}
}

func (s *vehicleService) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	if _, err := callerFrom(ctx); err != nil {
		return nil, err
	}

	vehicles, err := s.vehicles.ListVehicles(ctx)
	if err != nil {
		return nil, storeError("list vehicles", err)
	}
	return vehicles, nil
}

func (s *vehicleService) GetVehicle(ctx context.Context, id string) (models.Vehicle, error) {
	if _, err := callerFrom(ctx); err != nil {
		return models.Vehicle{}, err
	}

	vehicle, err := s.vehicles.GetVehicle(ctx, id)
	if err != nil {
		return models.Vehicle{}, storeError("get vehicle", err)
	}
	return vehicle, nil
}

func (s *vehicleService) CreateVehicle(ctx context.Context, vehicle models.Vehicle) (models.Vehicle, error) {
	if _, err := requireElevated(ctx); err != nil {
		return models.Vehicle{}, err
	}

	vehicle = normalizeVehicle(vehicle)
	if err := s.validator.Validate(ctx, vehicle); err != nil {
		return models.Vehicle{}, newValidationError(err)
	}
	vehicle.ID = s.ids.Generate()

	created, err := s.vehicles.CreateVehicle(ctx, vehicle)
	if err != nil {
		return models.Vehicle{}, storeError("create vehicle", err)
	}
	return created, nil
}

func (s *vehicleService) UpdateVehicle(ctx context.Context, id string, vehicle models.Vehicle) (models.Vehicle, error) {
	if _, err := requireElevated(ctx); err != nil {
		return models.Vehicle{}, err
	}

	vehicle = normalizeVehicle(vehicle)
	vehicle.ID = id
	if err := s.validator.Validate(ctx, vehicle); err != nil {
		return models.Vehicle{}, newValidationError(err)
	}

	updated, err := s.vehicles.UpdateVehicle(ctx, vehicle)
	if err != nil {
		return models.Vehicle{}, storeError("update vehicle", err)
	}
	return updated, nil
}

func (s *vehicleService) DeleteVehicle(ctx context.Context, id string) error {
	if _, err := requireElevated(ctx); err != nil {
		return err
	}

	if err := s.vehicles.DeleteVehicle(ctx, id); err != nil {
		return storeError("delete vehicle", err)
	}
	return nil
}

// ImportVehicles creates the candidates of the document one by one. Plates
// that already exist are reported as skipped. The import stops at the first
// other failure and returns what was created so far.
func (s *vehicleService) ImportVehicles(ctx context.Context, document []byte, dryRun bool) (models.ImportReport, error) {
	caller, err := requireElevated(ctx)
	if err != nil {
		return models.ImportReport{}, err
	}

	rows, err := importer.Parse(document)
	if err != nil {
		return models.ImportReport{}, newValidationError(err)
	}

	report := importer.Map(rows)
	report.DryRun = dryRun
	if dryRun {
		return report, nil
	}

	log := logger.FromContext(ctx)
	for _, c := range report.Candidates {
		v := c.Vehicle
		v.ID = s.ids.Generate()

		created, err := s.vehicles.CreateVehicle(ctx, v)
		if errors.Is(err, store.ErrAlreadyExists) {
			report.Skipped = append(report.Skipped, v.Plate)
			continue
		}
		if err != nil {
			log.Err(err).Int("row", c.Row).Str("plate", v.Plate).Msg("vehicle import interrupted")
			return report, storeError(fmt.Sprintf("import row %d", c.Row), err)
		}
		report.Created = append(report.Created, created)
	}

	log.Info().
		Str("by", caller.ID).
		Int("created", len(report.Created)).
		Int("skipped", len(report.Skipped)).
		Int("unmatched", len(report.Unmatched)).
		Msg("vehicles imported")
	return report, nil
}

func normalizeVehicle(v models.Vehicle) models.Vehicle {
	v.Plate = importer.NormalizePlate(v.Plate)
	if v.Type == "" {
		v.Type = models.VehicleOther
	}
	v.Subtype = strings.TrimSpace(v.Subtype)
	v.Code = strings.TrimSpace(v.Code)
	v.PairedTrailerID = strings.TrimSpace(v.PairedTrailerID)
	return v
}
