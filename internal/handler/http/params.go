package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-fleet-logbook/models"
	"github.com/go-chi/chi/v5"
)

func pathID(r *http.Request) string {
	return chi.URLParam(r, "id")
}

// monthParam reads the required "month" query parameter.
func monthParam(r *http.Request) (models.MonthKey, error) {
	month, err := models.ParseMonthKey(r.URL.Query().Get("month"))
	if err != nil {
		return models.MonthKey{}, fmt.Errorf("%w: %w", ErrInvalidMonthParam, err)
	}
	return month, nil
}

func boolParam(r *http.Request, name string) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return false, nil
	}
	return strconv.ParseBool(raw)
}

func intParam(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
