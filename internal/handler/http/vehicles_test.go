package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-fleet-logbook/internal/service"
	"github.com/MKhiriev/go-fleet-logbook/models"
	"github.com/stretchr/testify/assert"
)

const fleetExport = `{"veicoli":[{"targa":"AB123CD","tipo":"motrice"}]}`

func TestImportVehicles(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		body       string
		wantDryRun bool
		wantCall   bool
		wantStatus int
	}{
		{name: "dry run", target: "/api/vehicles/import?dryRun=true", body: fleetExport, wantDryRun: true, wantCall: true, wantStatus: http.StatusOK},
		{name: "apply", target: "/api/vehicles/import", body: fleetExport, wantCall: true, wantStatus: http.StatusOK},
		{name: "bad flag", target: "/api/vehicles/import?dryRun=maybe", body: fleetExport, wantStatus: http.StatusBadRequest},
		{name: "empty body", target: "/api/vehicles/import", wantStatus: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			vehicles := &fakeVehicleService{importFn: func(_ context.Context, document []byte, dryRun bool) (models.ImportReport, error) {
				called = true
				assert.Equal(t, fleetExport, string(document))
				assert.Equal(t, tt.wantDryRun, dryRun)
				return models.ImportReport{DryRun: dryRun}, nil
			}}

			rr := serve(t, &service.Services{AuthService: authenticatedAs(testMaster), VehicleService: vehicles}, http.MethodPost, tt.target, tt.body)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantCall, called)
		})
	}
}

func TestImportVehicles_DriverRejectedBeforeService(t *testing.T) {
	vehicles := &fakeVehicleService{importFn: func(context.Context, []byte, bool) (models.ImportReport, error) {
		t.Fatal("import must not be reached")
		return models.ImportReport{}, nil
	}}

	rr := serve(t, &service.Services{AuthService: authenticatedAs(testDriver), VehicleService: vehicles}, http.MethodPost, "/api/vehicles/import", fleetExport)

	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestCreateVehicle_Conflict(t *testing.T) {
	vehicles := &fakeVehicleService{createFn: func(_ context.Context, v models.Vehicle) (models.Vehicle, error) {
		assert.Equal(t, "AB123CD", v.Plate)
		return models.Vehicle{}, service.ErrAlreadyExists
	}}

	rr := serve(t, &service.Services{AuthService: authenticatedAs(testMaster), VehicleService: vehicles}, http.MethodPost, "/api/vehicles", `{"plate":"AB123CD"}`)

	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestUpdateVehicle_PassesPathID(t *testing.T) {
	vehicles := &fakeVehicleService{updateFn: func(_ context.Context, id string, v models.Vehicle) (models.Vehicle, error) {
		v.ID = id
		return v, nil
	}}

	rr := serve(t, &service.Services{AuthService: authenticatedAs(testMaster), VehicleService: vehicles}, http.MethodPut, "/api/vehicles/veh-4", `{"plate":"AB123CD","type":"van"}`)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"id":"veh-4"`)
}
