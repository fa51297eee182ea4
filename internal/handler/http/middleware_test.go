package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-fleet-logbook/internal/logger"
	"github.com/MKhiriev/go-fleet-logbook/internal/service"
	"github.com/MKhiriev/go-fleet-logbook/internal/utils"
	"github.com/MKhiriev/go-fleet-logbook/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body utils.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body.Error
}

// ─── auth ───

func TestAuth(t *testing.T) {
	tests := []struct {
		name         string
		header       string
		authenticate func(ctx context.Context, token string) (models.User, string, error)
		wantStatus   int
		wantNext     bool
	}{
		{
			name:       "no header",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong scheme",
			header:     "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "token without scheme",
			header:     "abc.def.ghi",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "invalid token",
			header: "Bearer abc",
			authenticate: func(context.Context, string) (models.User, string, error) {
				return models.User{}, "", service.ErrTokenIsExpiredOrInvalid
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "closed session",
			header: "Bearer abc",
			authenticate: func(context.Context, string) (models.User, string, error) {
				return models.User{}, "", service.ErrUnauthenticated
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "disabled account",
			header: "Bearer abc",
			authenticate: func(context.Context, string) (models.User, string, error) {
				return models.User{}, "", service.ErrAccountInactive
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:   "valid token",
			header: "bearer abc",
			authenticate: func(_ context.Context, token string) (models.User, string, error) {
				return testDriver, "sess-1", nil
			},
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(&service.Services{AuthService: &fakeAuthService{authenticateFn: tt.authenticate}})

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()

			h.auth(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantNext, nextCalled)
			if !tt.wantNext {
				assert.NotEmpty(t, decodeError(t, rr))
			}
		})
	}
}

func TestAuth_StoresCallerAndSession(t *testing.T) {
	var gotToken string
	h := newTestHandler(&service.Services{AuthService: &fakeAuthService{
		authenticateFn: func(_ context.Context, token string) (models.User, string, error) {
			gotToken = token
			return testDriver, "sess-42", nil
		},
	}})

	var caller models.User
	var sessionID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller, _ = utils.GetCallerFromContext(r.Context())
		sessionID, _ = utils.GetSessionIDFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer the-token")
	h.auth(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "the-token", gotToken)
	assert.Equal(t, testDriver.ID, caller.ID)
	assert.Equal(t, "sess-42", sessionID)
}

// ─── elevated ───

func TestElevated(t *testing.T) {
	tests := []struct {
		name       string
		caller     *models.User
		wantStatus int
	}{
		{name: "no caller", wantStatus: http.StatusUnauthorized},
		{name: "driver", caller: &testDriver, wantStatus: http.StatusForbidden},
		{name: "master", caller: &testMaster, wantStatus: http.StatusNoContent},
		{name: "owner", caller: &models.User{ID: "own-1", Role: models.RoleOwner}, wantStatus: http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(&service.Services{})
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
			if tt.caller != nil {
				req = req.WithContext(utils.WithCaller(req.Context(), *tt.caller, "sess"))
			}
			rr := httptest.NewRecorder()

			h.elevated(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

// ─── trace id ───

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		wantSame bool
	}{
		{name: "reuses header", incoming: "abc-123", wantSame: true},
		{name: "generates when absent"},
		{name: "replaces id with spaces", incoming: "abc 123"},
		{name: "replaces oversized id", incoming: string(bytes.Repeat([]byte("a"), maxTraceIDLength+1))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(&service.Services{})

			var fromContext string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fromContext = middleware.GetReqID(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(traceIDHeader, tt.incoming)
			}
			rr := httptest.NewRecorder()

			h.withTraceID(next).ServeHTTP(rr, req)

			got := rr.Header().Get(traceIDHeader)
			assert.Equal(t, got, fromContext)
			if tt.wantSame {
				assert.Equal(t, tt.incoming, got)
				return
			}
			_, err := uuid.Parse(got)
			assert.NoError(t, err)
		})
	}
}

func TestWithTraceID_LoggerCarriesTraceID(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
	})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "trace-7")

	h.withTraceID(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"trace_id":"trace-7"`)
}

// ─── logging ───

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantFields []string
	}{
		{
			name: "explicit status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusCreated)
				_, _ = w.Write([]byte(`{"id":"1"}`))
			},
			wantFields: []string{`"method":"POST"`, `"path":"/api/logs"`, `"status":201`, `"bytes":10`},
		},
		{
			name: "implicit 200 on write",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("ok"))
			},
			wantFields: []string{`"status":200`, `"bytes":2`},
		},
		{
			name:       "nothing written",
			handler:    func(w http.ResponseWriter, r *http.Request) {},
			wantFields: []string{`"status":200`, `"bytes":0`, `"level":"info"`},
		},
		{
			name: "server error logged as error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
			wantFields: []string{`"status":502`, `"level":"error"`},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := zerolog.New(&buf)
			req := httptest.NewRequest(http.MethodPost, "/api/logs", nil)
			req = req.WithContext(l.WithContext(req.Context()))

			newTestHandler(&service.Services{}).withLogging(tt.handler).ServeHTTP(httptest.NewRecorder(), req)

			for _, field := range tt.wantFields {
				assert.Contains(t, buf.String(), field)
			}
			assert.Contains(t, buf.String(), `"elapsed":`)
		})
	}
}

func TestResponseWriter_HeaderWrittenOnce(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	w.WriteHeader(http.StatusAccepted)
	w.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusAccepted, w.status)
	assert.Equal(t, http.StatusAccepted, rr.Code)
}

// ─── method check ───

func TestCheckHTTPMethod(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/api/items", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	router.Delete("/api/items/{id}", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })
	router.MethodNotAllowed(CheckHTTPMethod(router))

	tests := []struct {
		method     string
		path       string
		wantStatus int
	}{
		{http.MethodGet, "/api/items", http.StatusOK},
		{http.MethodPost, "/api/items", http.StatusNotFound},
		{http.MethodDelete, "/api/items/7", http.StatusNoContent},
		{http.MethodGet, "/api/items/7", http.StatusNotFound},
		{http.MethodPatch, "/api/items/7", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}
