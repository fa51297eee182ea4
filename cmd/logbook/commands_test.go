package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/MKhiriev/go-fleet-logbook/internal/adapter"
	"github.com/MKhiriev/go-fleet-logbook/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	adapter.LogbookAPI

	login          func(models.Credentials) (models.LoginResponse, error)
	logoutCalls    int
	importVehicles func(doc []byte, dryRun bool) (models.ImportReport, error)
	monthReport    func(month models.MonthKey) ([]models.MonthlyTotal, error)
}

func (f *fakeAPI) Login(_ context.Context, c models.Credentials) (models.LoginResponse, error) {
	return f.login(c)
}

func (f *fakeAPI) Logout(context.Context) error {
	f.logoutCalls++
	return nil
}

func (f *fakeAPI) Version(context.Context) (models.VersionInfo, error) {
	return models.VersionInfo{Version: "1.2.0", Date: "2026-03-01", Commit: "abc"}, nil
}

func (f *fakeAPI) ImportVehicles(_ context.Context, doc []byte, dryRun bool) (models.ImportReport, error) {
	return f.importVehicles(doc, dryRun)
}

func (f *fakeAPI) MonthReport(_ context.Context, month models.MonthKey) ([]models.MonthlyTotal, error) {
	return f.monthReport(month)
}

func newTestCLI(api adapter.LogbookAPI) (*cli, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &cli{
		api: api,
		out: out,
		readFile: func(name string) ([]byte, error) {
			if name == "fleet.json" {
				return []byte(`{"veicoli": []}`), nil
			}
			return nil, os.ErrNotExist
		},
		now: func() time.Time { return time.Date(2026, time.March, 4, 9, 0, 0, 0, time.UTC) },
	}, out
}

// ─── run ───

func TestRun_CommandErrors(t *testing.T) {
	c, out := newTestCLI(&fakeAPI{})

	assert.ErrorIs(t, c.run(context.Background(), nil), errNoCommand)
	assert.Contains(t, out.String(), "usage: logbook")

	assert.ErrorIs(t, c.run(context.Background(), []string{"sync"}), errUnknownCommand)
}

func TestRun_Logout(t *testing.T) {
	api := &fakeAPI{}
	c, _ := newTestCLI(api)

	require.NoError(t, c.run(context.Background(), []string{"logout"}))
	assert.Equal(t, 1, api.logoutCalls)
}

// ─── login ───

func TestLogin_PrintsToken(t *testing.T) {
	api := &fakeAPI{login: func(creds models.Credentials) (models.LoginResponse, error) {
		assert.Equal(t, models.Credentials{Email: "anna@example.com", Password: "secret"}, creds)
		return models.LoginResponse{
			Token:     "tok-1",
			ExpiresAt: time.Date(2026, time.March, 5, 9, 0, 0, 0, time.UTC).UnixMilli(),
			User:      models.User{Email: "anna@example.com", Role: models.RoleMaster},
		}, nil
	}}
	c, out := newTestCLI(api)

	err := c.run(context.Background(), []string{"login", "-email", "anna@example.com", "-password", "secret"})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "export ADAPTER_TOKEN=tok-1")
	assert.Contains(t, out.String(), "2026-03-05T09:00:00Z")
}

func TestLogin_MissingCredentials(t *testing.T) {
	c, _ := newTestCLI(&fakeAPI{})

	err := c.run(context.Background(), []string{"login", "-email", "anna@example.com"})

	assert.ErrorIs(t, err, errMissingArg)
}

func TestLogin_ServerRejects(t *testing.T) {
	api := &fakeAPI{login: func(models.Credentials) (models.LoginResponse, error) {
		return models.LoginResponse{}, adapter.ErrUnauthorized
	}}
	c, _ := newTestCLI(api)

	err := c.run(context.Background(), []string{"login", "-id-token", "firebase-token"})

	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}

// ─── version ───

func TestVersion(t *testing.T) {
	c, out := newTestCLI(&fakeAPI{})

	require.NoError(t, c.run(context.Background(), []string{"version"}))
	assert.Contains(t, out.String(), "server version: 1.2.0")
	assert.Contains(t, out.String(), "cli version: N/A")
}

// ─── import ───

func TestImport_DryRun(t *testing.T) {
	api := &fakeAPI{importVehicles: func(doc []byte, dryRun bool) (models.ImportReport, error) {
		assert.JSONEq(t, `{"veicoli": []}`, string(doc))
		assert.True(t, dryRun)
		return models.ImportReport{
			DryRun:     true,
			Candidates: []models.ImportCandidate{{Row: 1, Vehicle: models.Vehicle{Plate: "AB123CD", Type: models.VehicleTractor}}},
			Unmatched:  []models.UnmatchedRow{{Row: 2, Reason: "missing plate"}},
		}, nil
	}}
	c, out := newTestCLI(api)

	err := c.run(context.Background(), []string{"import", "-dry-run", "fleet.json"})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "dry run: 1 vehicles would be created")
	assert.Contains(t, out.String(), "row 1: AB123CD")
	assert.Contains(t, out.String(), "row 2: missing plate")
}

func TestImport_Apply(t *testing.T) {
	api := &fakeAPI{importVehicles: func(_ []byte, dryRun bool) (models.ImportReport, error) {
		assert.False(t, dryRun)
		return models.ImportReport{
			Created: []models.Vehicle{{ID: "veh-1", Plate: "AB123CD", Type: models.VehicleVan}},
			Skipped: []string{"XY987ZW"},
		}, nil
	}}
	c, out := newTestCLI(api)

	require.NoError(t, c.run(context.Background(), []string{"import", "fleet.json"}))
	assert.Contains(t, out.String(), "created 1 vehicles")
	assert.Contains(t, out.String(), "skipped existing plates: XY987ZW")
}

func TestImport_BadArgs(t *testing.T) {
	c, _ := newTestCLI(&fakeAPI{})

	assert.ErrorIs(t, c.run(context.Background(), []string{"import"}), errMissingArg)
	assert.ErrorIs(t, c.run(context.Background(), []string{"import", "missing.json"}), os.ErrNotExist)
}

// ─── report ───

func TestReport_DefaultsToPreviousMonth(t *testing.T) {
	var asked models.MonthKey
	api := &fakeAPI{monthReport: func(month models.MonthKey) ([]models.MonthlyTotal, error) {
		asked = month
		return []models.MonthlyTotal{{
			UserID:   "drv-1",
			MonthKey: "2026-02",
			TotalKm:  120,
			Breakdown: []models.VehicleDistance{
				{VehicleID: "veh-1", InitialKm: kmPtr(1000), FinalKm: kmPtr(1120), DistanceKm: 120},
			},
		}}, nil
	}}
	c, out := newTestCLI(api)

	require.NoError(t, c.run(context.Background(), []string{"report"}))
	assert.Equal(t, "2026-02", asked.String())
	assert.Contains(t, out.String(), "drv-1,veh-1,1000,1120,120")
	assert.Contains(t, out.String(), "drv-1,TOTAL,,,120")
}

func TestReport_ExplicitMonth(t *testing.T) {
	var asked models.MonthKey
	api := &fakeAPI{monthReport: func(month models.MonthKey) ([]models.MonthlyTotal, error) {
		asked = month
		return nil, nil
	}}
	c, _ := newTestCLI(api)

	require.NoError(t, c.run(context.Background(), []string{"report", "-month", "2025-11"}))
	assert.Equal(t, "2025-11", asked.String())
}

func TestReport_InvalidMonth(t *testing.T) {
	c, _ := newTestCLI(&fakeAPI{})

	err := c.run(context.Background(), []string{"report", "-month", "11/2025"})

	assert.True(t, errors.Is(err, models.ErrInvalidMonthKey))
}

func kmPtr(v int64) *int64 { return &v }
