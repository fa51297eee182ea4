package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-fleet-logbook/internal/utils"
	"github.com/MKhiriev/go-fleet-logbook/models"
)

// boundRequest is the body of PUT /api/stats/bounds. A null value clears
// the bound.
type boundRequest struct {
	UserID    string       `json:"userId,omitempty"`
	VehicleID string       `json:"vehicleId"`
	Month     string       `json:"month"`
	Bound     models.Bound `json:"bound"`
	Value     *int64       `json:"value"`
}

func (h *Handler) upsertBound(w http.ResponseWriter, r *http.Request) {
	var req boundRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		writeServiceError(w, r, err, "invalid JSON was passed")
		return
	}

	month, err := models.ParseMonthKey(req.Month)
	if err != nil {
		writeServiceError(w, r, err, "invalid month")
		return
	}

	stats, err := h.services.StatsService.UpsertBound(r.Context(), models.BoundUpdate{
		UserID:    req.UserID,
		VehicleID: req.VehicleID,
		Month:     month,
		Bound:     req.Bound,
		Value:     req.Value,
	})
	if err != nil {
		writeServiceError(w, r, err, "saving bound failed")
		return
	}
	utils.WriteJSON(w, stats, http.StatusOK)
}

// autofill serves GET /api/stats/autofill?vehicleId=&month=&userId=.
func (h *Handler) autofill(w http.ResponseWriter, r *http.Request) {
	month, err := monthParam(r)
	if err != nil {
		writeServiceError(w, r, err, "bad query")
		return
	}

	q := r.URL.Query()
	suggestion, err := h.services.StatsService.AutofillInitial(r.Context(), q.Get("userId"), q.Get("vehicleId"), month)
	if err != nil {
		writeServiceError(w, r, err, "autofill failed")
		return
	}
	utils.WriteJSON(w, suggestion, http.StatusOK)
}

// monthlyTotal serves GET /api/stats/total?month=&userId=&vehicleId=a,b.
// Each vehicleId names an active vehicle to list even without readings.
func (h *Handler) monthlyTotal(w http.ResponseWriter, r *http.Request) {
	month, err := monthParam(r)
	if err != nil {
		writeServiceError(w, r, err, "bad query")
		return
	}

	q := r.URL.Query()
	total, err := h.services.StatsService.MonthlyTotal(r.Context(), q.Get("userId"), month, vehicleIDs(q["vehicleId"]))
	if err != nil {
		writeServiceError(w, r, err, "computing monthly total failed")
		return
	}
	utils.WriteJSON(w, total, http.StatusOK)
}

func (h *Handler) monthReport(w http.ResponseWriter, r *http.Request) {
	month, err := monthParam(r)
	if err != nil {
		writeServiceError(w, r, err, "bad query")
		return
	}

	report, err := h.services.StatsService.MonthReport(r.Context(), month)
	if err != nil {
		writeServiceError(w, r, err, "building month report failed")
		return
	}
	if report == nil {
		report = []models.MonthlyTotal{}
	}
	utils.WriteJSON(w, report, http.StatusOK)
}

// vehicleIDs flattens repeated and comma separated values.
func vehicleIDs(values []string) []string {
	var ids []string
	for _, v := range values {
		for _, id := range strings.Split(v, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
	}
	return ids
}
