package http

import (
	"net/http"

	"github.com/MKhiriev/go-fleet-logbook/internal/utils"
	"github.com/MKhiriev/go-fleet-logbook/models"
)

func (h *Handler) listWorkshops(w http.ResponseWriter, r *http.Request) {
	workshops, err := h.services.ReferenceService.ListWorkshops(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "listing workshops failed")
		return
	}
	utils.WriteJSON(w, workshops, http.StatusOK)
}

func (h *Handler) createWorkshop(w http.ResponseWriter, r *http.Request) {
	var workshop models.Workshop
	if err := utils.ReadJSON(r, &workshop); err != nil {
		writeServiceError(w, r, err, "invalid JSON was passed")
		return
	}

	created, err := h.services.ReferenceService.CreateWorkshop(r.Context(), workshop)
	if err != nil {
		writeServiceError(w, r, err, "creating workshop failed")
		return
	}
	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateWorkshop(w http.ResponseWriter, r *http.Request) {
	var workshop models.Workshop
	if err := utils.ReadJSON(r, &workshop); err != nil {
		writeServiceError(w, r, err, "invalid JSON was passed")
		return
	}

	updated, err := h.services.ReferenceService.UpdateWorkshop(r.Context(), pathID(r), workshop)
	if err != nil {
		writeServiceError(w, r, err, "updating workshop failed")
		return
	}
	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteWorkshop(w http.ResponseWriter, r *http.Request) {
	if err := h.services.ReferenceService.DeleteWorkshop(r.Context(), pathID(r)); err != nil {
		writeServiceError(w, r, err, "deleting workshop failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listFuelStations(w http.ResponseWriter, r *http.Request) {
	stations, err := h.services.ReferenceService.ListFuelStations(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "listing fuel stations failed")
		return
	}
	utils.WriteJSON(w, stations, http.StatusOK)
}

func (h *Handler) createFuelStation(w http.ResponseWriter, r *http.Request) {
	var station models.FuelStation
	if err := utils.ReadJSON(r, &station); err != nil {
		writeServiceError(w, r, err, "invalid JSON was passed")
		return
	}

	created, err := h.services.ReferenceService.CreateFuelStation(r.Context(), station)
	if err != nil {
		writeServiceError(w, r, err, "creating fuel station failed")
		return
	}
	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateFuelStation(w http.ResponseWriter, r *http.Request) {
	var station models.FuelStation
	if err := utils.ReadJSON(r, &station); err != nil {
		writeServiceError(w, r, err, "invalid JSON was passed")
		return
	}

	updated, err := h.services.ReferenceService.UpdateFuelStation(r.Context(), pathID(r), station)
	if err != nil {
		writeServiceError(w, r, err, "updating fuel station failed")
		return
	}
	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteFuelStation(w http.ResponseWriter, r *http.Request) {
	if err := h.services.ReferenceService.DeleteFuelStation(r.Context(), pathID(r)); err != nil {
		writeServiceError(w, r, err, "deleting fuel station failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
