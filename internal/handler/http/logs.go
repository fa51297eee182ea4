package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-fleet-logbook/internal/utils"
	"github.com/MKhiriev/go-fleet-logbook/models"
)

func (h *Handler) appendLog(w http.ResponseWriter, r *http.Request) {
	var record models.LogRecord
	if err := utils.ReadJSON(r, &record); err != nil {
		writeServiceError(w, r, err, "invalid JSON was passed")
		return
	}

	saved, err := h.services.LogService.AppendLog(r.Context(), record)
	if err != nil {
		writeServiceError(w, r, err, "appending log record failed")
		return
	}
	utils.WriteJSON(w, saved, http.StatusCreated)
}

func (h *Handler) submitTrip(w http.ResponseWriter, r *http.Request) {
	var submission models.TripSubmission
	if err := utils.ReadJSON(r, &submission); err != nil {
		writeServiceError(w, r, err, "invalid JSON was passed")
		return
	}

	saved, err := h.services.LogService.SubmitTrip(r.Context(), submission)
	if err != nil {
		writeServiceError(w, r, err, "submitting trip failed")
		return
	}
	utils.WriteJSON(w, saved, http.StatusCreated)
}

func (h *Handler) getLog(w http.ResponseWriter, r *http.Request) {
	record, err := h.services.LogService.GetLog(r.Context(), pathID(r))
	if err != nil {
		writeServiceError(w, r, err, "getting log record failed")
		return
	}
	utils.WriteJSON(w, record, http.StatusOK)
}

func (h *Handler) updateLog(w http.ResponseWriter, r *http.Request) {
	var update models.LogUpdate
	if err := utils.ReadJSON(r, &update); err != nil {
		writeServiceError(w, r, err, "invalid JSON was passed")
		return
	}

	updated, err := h.services.LogService.UpdateLog(r.Context(), pathID(r), update)
	if err != nil {
		writeServiceError(w, r, err, "updating log record failed")
		return
	}
	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) removeLog(w http.ResponseWriter, r *http.Request) {
	if err := h.services.LogService.RemoveLog(r.Context(), pathID(r)); err != nil {
		writeServiceError(w, r, err, "removing log record failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// queryLogs serves GET /api/logs?userId=&kind=&limit=.
func (h *Handler) queryLogs(w http.ResponseWriter, r *http.Request) {
	limit, err := intParam(r, "limit")
	if err != nil {
		writeServiceError(w, r, fmt.Errorf("%w: %w", ErrInvalidLimitParam, err), "bad query")
		return
	}

	query := models.LogQuery{
		UserID: r.URL.Query().Get("userId"),
		Kind:   models.LogKind(r.URL.Query().Get("kind")),
		Limit:  limit,
	}

	records, err := h.services.LogService.QueryLogs(r.Context(), query)
	if err != nil {
		writeServiceError(w, r, err, "querying log records failed")
		return
	}
	if records == nil {
		records = []models.LogRecord{}
	}
	utils.WriteJSON(w, records, http.StatusOK)
}
