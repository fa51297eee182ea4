package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-fleet-logbook/internal/form"
	"github.com/MKhiriev/go-fleet-logbook/internal/validators"
	"github.com/MKhiriev/go-fleet-logbook/models"
)

// SectorValidationService rejects malformed schemas before they reach the
// wrapped service. Writes check the caller first, so a driver gets a
// permission error whatever the payload. Reads pass through.
type SectorValidationService struct {
	inner     SectorService
	validator validators.Validator
}

func NewSectorValidationService() SectorServiceWrapper {
	return &SectorValidationService{
		validator: validators.NewSectorValidator(),
	}
}

func (v *SectorValidationService) ListSectors(ctx context.Context) ([]models.Sector, error) {
	return v.inner.ListSectors(ctx)
}

func (v *SectorValidationService) GetSector(ctx context.Context, id string) (models.Sector, error) {
	return v.inner.GetSector(ctx, id)
}

func (v *SectorValidationService) CreateSector(ctx context.Context, name string, fields []models.FieldDefinition) (models.Sector, error) {
	if _, err := requireElevated(ctx); err != nil {
		return models.Sector{}, err
	}

	candidate := models.Sector{Name: strings.TrimSpace(name), Fields: trimLabels(fields)}
	if err := v.validator.Validate(ctx, candidate); err != nil {
		return models.Sector{}, newValidationError(fmt.Errorf("invalid sector: %w", err))
	}

	return v.inner.CreateSector(ctx, name, fields)
}

// UpdateSector validates the sector as it would look after the update.
func (v *SectorValidationService) UpdateSector(ctx context.Context, id string, update models.SectorUpdate) (models.Sector, error) {
	if _, err := requireElevated(ctx); err != nil {
		return models.Sector{}, err
	}
	if update.Name == nil && update.Fields == nil {
		return models.Sector{}, validationMessage("nothing to update")
	}

	existing, err := v.inner.GetSector(ctx, id)
	if err != nil {
		return models.Sector{}, err
	}

	merged := update.Apply(existing)
	merged.Name = strings.TrimSpace(merged.Name)
	merged.Fields = trimLabels(merged.Fields)
	if err = v.validator.Validate(ctx, merged); err != nil {
		return models.Sector{}, newValidationError(fmt.Errorf("invalid sector: %w", err))
	}

	return v.inner.UpdateSector(ctx, id, update)
}

func (v *SectorValidationService) DeleteSector(ctx context.Context, id string) error {
	return v.inner.DeleteSector(ctx, id)
}

func (v *SectorValidationService) ResolveForm(ctx context.Context, id string, answers map[string]any) ([]form.Control, error) {
	return v.inner.ResolveForm(ctx, id, answers)
}

func (v *SectorValidationService) Wrap(inner SectorService) SectorService {
	v.inner = inner
	return v
}

func trimLabels(fields []models.FieldDefinition) []models.FieldDefinition {
	out := make([]models.FieldDefinition, len(fields))
	for i, f := range fields {
		f.Label = strings.TrimSpace(f.Label)
		out[i] = f
	}
	return out
}
