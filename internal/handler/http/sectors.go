package http

import (
	"net/http"

	"github.com/MKhiriev/go-fleet-logbook/internal/form"
	"github.com/MKhiriev/go-fleet-logbook/internal/utils"
	"github.com/MKhiriev/go-fleet-logbook/models"
)

// sectorRequest is the body of POST /api/sectors.
type sectorRequest struct {
	Name   string                   `json:"name"`
	Fields []models.FieldDefinition `json:"fields"`
}

// formRequest carries the answers given so far for a sector form.
type formRequest struct {
	Answers map[string]any `json:"answers"`
}

// formResponse lists the controls to render, in sector field order.
type formResponse struct {
	SectorID string         `json:"sectorId"`
	Controls []form.Control `json:"controls"`
}

func (h *Handler) listSectors(w http.ResponseWriter, r *http.Request) {
	sectors, err := h.services.SectorService.ListSectors(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "listing sectors failed")
		return
	}
	utils.WriteJSON(w, sectors, http.StatusOK)
}

func (h *Handler) getSector(w http.ResponseWriter, r *http.Request) {
	sector, err := h.services.SectorService.GetSector(r.Context(), pathID(r))
	if err != nil {
		writeServiceError(w, r, err, "getting sector failed")
		return
	}
	utils.WriteJSON(w, sector, http.StatusOK)
}

func (h *Handler) createSector(w http.ResponseWriter, r *http.Request) {
	var req sectorRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		writeServiceError(w, r, err, "invalid JSON was passed")
		return
	}

	sector, err := h.services.SectorService.CreateSector(r.Context(), req.Name, req.Fields)
	if err != nil {
		writeServiceError(w, r, err, "creating sector failed")
		return
	}
	utils.WriteJSON(w, sector, http.StatusCreated)
}

func (h *Handler) updateSector(w http.ResponseWriter, r *http.Request) {
	var update models.SectorUpdate
	if err := utils.ReadJSON(r, &update); err != nil {
		writeServiceError(w, r, err, "invalid JSON was passed")
		return
	}

	sector, err := h.services.SectorService.UpdateSector(r.Context(), pathID(r), update)
	if err != nil {
		writeServiceError(w, r, err, "updating sector failed")
		return
	}
	utils.WriteJSON(w, sector, http.StatusOK)
}

func (h *Handler) deleteSector(w http.ResponseWriter, r *http.Request) {
	if err := h.services.SectorService.DeleteSector(r.Context(), pathID(r)); err != nil {
		writeServiceError(w, r, err, "deleting sector failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) resolveForm(w http.ResponseWriter, r *http.Request) {
	var req formRequest
	if r.ContentLength != 0 {
		if err := utils.ReadJSON(r, &req); err != nil {
			writeServiceError(w, r, err, "invalid JSON was passed")
			return
		}
	}

	id := pathID(r)
	controls, err := h.services.SectorService.ResolveForm(r.Context(), id, req.Answers)
	if err != nil {
		writeServiceError(w, r, err, "resolving form failed")
		return
	}
	utils.WriteJSON(w, formResponse{SectorID: id, Controls: controls}, http.StatusOK)
}
