package http

import (
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-fleet-logbook/internal/logger"
	"github.com/MKhiriev/go-fleet-logbook/internal/utils"
	"github.com/MKhiriev/go-fleet-logbook/models"
)

// maxImportDocumentSize bounds the body of a vehicle import.
const maxImportDocumentSize = 8 << 20

func (h *Handler) listVehicles(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.services.VehicleService.ListVehicles(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "listing vehicles failed")
		return
	}
	utils.WriteJSON(w, vehicles, http.StatusOK)
}

func (h *Handler) getVehicle(w http.ResponseWriter, r *http.Request) {
	vehicle, err := h.services.VehicleService.GetVehicle(r.Context(), pathID(r))
	if err != nil {
		writeServiceError(w, r, err, "getting vehicle failed")
		return
	}
	utils.WriteJSON(w, vehicle, http.StatusOK)
}

func (h *Handler) createVehicle(w http.ResponseWriter, r *http.Request) {
	var vehicle models.Vehicle
	if err := utils.ReadJSON(r, &vehicle); err != nil {
		writeServiceError(w, r, err, "invalid JSON was passed")
		return
	}

	created, err := h.services.VehicleService.CreateVehicle(r.Context(), vehicle)
	if err != nil {
		writeServiceError(w, r, err, "creating vehicle failed")
		return
	}
	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateVehicle(w http.ResponseWriter, r *http.Request) {
	var vehicle models.Vehicle
	if err := utils.ReadJSON(r, &vehicle); err != nil {
		writeServiceError(w, r, err, "invalid JSON was passed")
		return
	}

	updated, err := h.services.VehicleService.UpdateVehicle(r.Context(), pathID(r), vehicle)
	if err != nil {
		writeServiceError(w, r, err, "updating vehicle failed")
		return
	}
	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteVehicle(w http.ResponseWriter, r *http.Request) {
	if err := h.services.VehicleService.DeleteVehicle(r.Context(), pathID(r)); err != nil {
		writeServiceError(w, r, err, "deleting vehicle failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// importVehicles serves POST /api/vehicles/import?dryRun=true. The body is
// the raw fleet export document.
func (h *Handler) importVehicles(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	dryRun, err := boolParam(r, "dryRun")
	if err != nil {
		writeServiceError(w, r, fmt.Errorf("%w: %w", ErrInvalidDryRunParam, err), "bad query")
		return
	}

	document, err := io.ReadAll(io.LimitReader(r.Body, maxImportDocumentSize))
	if err != nil {
		writeServiceError(w, r, fmt.Errorf("%w: %w", utils.ErrInvalidJSONBody, err), "reading import document failed")
		return
	}
	if len(document) == 0 {
		writeServiceError(w, r, ErrEmptyImportDocument, "bad import request")
		return
	}

	report, err := h.services.VehicleService.ImportVehicles(r.Context(), document, dryRun)
	if err != nil {
		writeServiceError(w, r, err, "vehicle import failed")
		return
	}

	log.Info().
		Bool("dry_run", report.DryRun).
		Int("candidates", len(report.Candidates)).
		Int("unmatched", len(report.Unmatched)).
		Int("created", len(report.Created)).
		Int("skipped", len(report.Skipped)).
		Msg("vehicle import processed")

	utils.WriteJSON(w, report, http.StatusOK)
}
