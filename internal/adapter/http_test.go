// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-fleet-logbook/internal/config"
	"github.com/MKhiriev/go-fleet-logbook/internal/logger"
	"github.com/MKhiriev/go-fleet-logbook/internal/utils"
	"github.com/MKhiriev/go-fleet-logbook/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAPI(t *testing.T, serverURL, token string) *httpLogbookAPI {
	t.Helper()
	api, err := NewHTTPLogbookAPI(config.ClientConfig{BaseURL: serverURL, Token: token, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return api.(*httpLogbookAPI)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ── normalizeBaseURL ────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:8080", want: "http://localhost:8080"},
		{raw: " https://logbook.example.com/ ", want: "https://logbook.example.com"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPLogbookAPI_InvalidAddress(t *testing.T) {
	_, err := NewHTTPLogbookAPI(config.ClientConfig{}, logger.Nop())

	assert.ErrorIs(t, err, ErrInvalidBaseURL)
}

// ── Login / Logout ──────────────────────────────────────────────────────────

func TestLogin_StoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)

		var creds models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "anna@example.com", creds.Email)

		writeJSON(w, http.StatusOK, models.LoginResponse{Token: "tok-1", User: models.User{ID: "mst-1"}})
	}))
	defer srv.Close()

	api := newTestAPI(t, srv.URL, "")
	got, err := api.Login(context.Background(), models.Credentials{Email: "anna@example.com", Password: "pw-123456"})

	require.NoError(t, err)
	assert.Equal(t, "mst-1", got.User.ID)
	assert.Equal(t, "tok-1", api.Token())
}

func TestLogin_TokenFromHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Authorization", "Bearer tok-header")
		writeJSON(w, http.StatusOK, map[string]any{"user": map[string]string{"id": "mst-1"}})
	}))
	defer srv.Close()

	api := newTestAPI(t, srv.URL, "")
	_, err := api.Login(context.Background(), models.Credentials{})

	require.NoError(t, err)
	assert.Equal(t, "tok-header", api.Token())
}

func TestLogin_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
		wantMsg string
	}{
		{name: "wrong password", status: http.StatusUnauthorized, wantErr: ErrUnauthorized, wantMsg: "not authenticated"},
		{name: "pending account", status: http.StatusForbidden, wantErr: ErrForbidden, wantMsg: "account is not active"},
		{name: "server failure", status: http.StatusInternalServerError, wantErr: ErrInternalServerError, wantMsg: "Internal Server Error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, tt.status, utils.ErrorResponse{Error: tt.wantMsg})
			}))
			defer srv.Close()

			api := newTestAPI(t, srv.URL, "")
			_, err := api.Login(context.Background(), models.Credentials{Email: "x@example.com"})

			require.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.Empty(t, api.Token())
		})
	}
}

func TestLogout_ClearsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	api := newTestAPI(t, srv.URL, "tok-1")

	require.NoError(t, api.Logout(context.Background()))
	assert.Empty(t, api.Token())
}

// ── Version ─────────────────────────────────────────────────────────────────

func TestVersion(t *testing.T) {
	want := models.VersionInfo{Version: "1.4.0", Date: "2026-05-01", Commit: "abc123"}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, want)
	}))
	defer srv.Close()

	got, err := newTestAPI(t, srv.URL, "").Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// ── ImportVehicles ──────────────────────────────────────────────────────────

func TestImportVehicles(t *testing.T) {
	document := []byte(`{"veicoli":[{"targa":"AB123CD","tipo":"motrice"}]}`)

	for _, dryRun := range []bool{true, false} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/vehicles/import", r.URL.Path)
			assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
			if dryRun {
				assert.Equal(t, "true", r.URL.Query().Get("dryRun"))
			} else {
				assert.Equal(t, "false", r.URL.Query().Get("dryRun"))
			}

			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			assert.JSONEq(t, string(document), string(body))

			writeJSON(w, http.StatusOK, models.ImportReport{DryRun: dryRun, Skipped: []string{"XY987ZW"}})
		}))

		report, err := newTestAPI(t, srv.URL, "tok-1").ImportVehicles(context.Background(), document, dryRun)
		srv.Close()

		require.NoError(t, err)
		assert.Equal(t, dryRun, report.DryRun)
		assert.Equal(t, []string{"XY987ZW"}, report.Skipped)
	}
}

func TestImportVehicles_Malformed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, utils.ErrorResponse{Error: "document must be an array or an object with a veicoli array"})
	}))
	defer srv.Close()

	_, err := newTestAPI(t, srv.URL, "tok-1").ImportVehicles(context.Background(), []byte(`{}`), true)

	require.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "veicoli")
}

// ── MonthReport ─────────────────────────────────────────────────────────────

func TestMonthReport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2026-05", r.URL.Query().Get("month"))
		writeJSON(w, http.StatusOK, []models.MonthlyTotal{{UserID: "drv-1", MonthKey: "2026-05", TotalKm: 1234}})
	}))
	defer srv.Close()

	got, err := newTestAPI(t, srv.URL, "tok-1").MonthReport(context.Background(), models.MonthKey{Year: 2026, Month: time.May})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1234), got[0].TotalKm)
}

func TestMapHTTPError_PlainBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down\n"))
	}))
	defer srv.Close()

	_, err := newTestAPI(t, srv.URL, "").Version(context.Background())

	require.Error(t, err)
	assert.Equal(t, "http 502: upstream down", err.Error())
}
