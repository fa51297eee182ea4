package http

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-fleet-logbook/internal/service"
	"github.com/MKhiriev/go-fleet-logbook/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var june2026 = models.MonthKey{Year: 2026, Month: time.June}

func TestUpsertBound(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantUpdate *models.BoundUpdate
		wantStatus int
	}{
		{
			name:       "set final",
			body:       `{"vehicleId":"veh-9","month":"2026-06","bound":"final","value":120500}`,
			wantUpdate: &models.BoundUpdate{VehicleID: "veh-9", Month: june2026, Bound: models.BoundFinal, Value: int64Ptr(120500)},
			wantStatus: http.StatusOK,
		},
		{
			name:       "clear initial",
			body:       `{"vehicleId":"veh-9","month":"2026-06","bound":"initial","value":null}`,
			wantUpdate: &models.BoundUpdate{VehicleID: "veh-9", Month: june2026, Bound: models.BoundInitial},
			wantStatus: http.StatusOK,
		},
		{
			name:       "bad month",
			body:       `{"vehicleId":"veh-9","month":"06/2026","bound":"final","value":1}`,
			wantStatus: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := &fakeStatsService{upsertFn: func(_ context.Context, u models.BoundUpdate) (models.MonthlyStats, error) {
				require.NotNil(t, tt.wantUpdate)
				assert.Equal(t, *tt.wantUpdate, u)
				return models.MonthlyStats{ID: models.StatsID("drv-1", u.VehicleID, u.Month)}, nil
			}}

			rr := serve(t, &service.Services{AuthService: authenticatedAs(testDriver), StatsService: stats}, http.MethodPut, "/api/stats/bounds", tt.body)

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func int64Ptr(v int64) *int64 { return &v }

func TestAutofill(t *testing.T) {
	stats := &fakeStatsService{autofillFn: func(_ context.Context, userID, vehicleID string, month models.MonthKey) (models.InitialSuggestion, error) {
		assert.Empty(t, userID)
		assert.Equal(t, "veh-9", vehicleID)
		assert.Equal(t, june2026, month)
		return models.InitialSuggestion{MonthKey: "2026-06", Value: int64Ptr(98000), Source: "drv-1_veh-9_2026-05"}, nil
	}}

	rr := serve(t, &service.Services{AuthService: authenticatedAs(testDriver), StatsService: stats}, http.MethodGet, "/api/stats/autofill?vehicleId=veh-9&month=2026-06", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"monthKey":"2026-06","value":98000,"source":"drv-1_veh-9_2026-05"}`, rr.Body.String())
}

func TestMonthlyTotal(t *testing.T) {
	stats := &fakeStatsService{totalFn: func(_ context.Context, userID string, month models.MonthKey, active []string) (models.MonthlyTotal, error) {
		assert.Equal(t, "drv-2", userID)
		assert.Equal(t, []string{"veh-1", "veh-2", "veh-3"}, active)
		return models.MonthlyTotal{UserID: userID, MonthKey: month.String(), TotalKm: 300}, nil
	}}

	rr := serve(t, &service.Services{AuthService: authenticatedAs(testMaster), StatsService: stats},
		http.MethodGet, "/api/stats/total?month=2026-06&userId=drv-2&vehicleId=veh-1,veh-2&vehicleId=veh-3", "")

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestMonthlyTotal_MissingMonth(t *testing.T) {
	rr := serve(t, &service.Services{AuthService: authenticatedAs(testDriver), StatsService: &fakeStatsService{}}, http.MethodGet, "/api/stats/total", "")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestMonthReport(t *testing.T) {
	tests := []struct {
		name       string
		caller     models.User
		wantStatus int
	}{
		{name: "master", caller: testMaster, wantStatus: http.StatusOK},
		{name: "driver", caller: testDriver, wantStatus: http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := &fakeStatsService{reportFn: func(_ context.Context, month models.MonthKey) ([]models.MonthlyTotal, error) {
				return nil, nil
			}}

			rr := serve(t, &service.Services{AuthService: authenticatedAs(tt.caller), StatsService: stats}, http.MethodGet, "/api/stats/report?month=2026-06", "")

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				assert.JSONEq(t, `[]`, rr.Body.String())
			}
		})
	}
}
