package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-fleet-logbook/internal/logger"
	"github.com/MKhiriev/go-fleet-logbook/internal/service"
	"github.com/MKhiriev/go-fleet-logbook/internal/utils"
)

// auth is an HTTP middleware that enforces bearer-token authentication.
//
// The token from the "Authorization" header is resolved to an account by
// [service.AuthService.Authenticate]. The account and its session id are
// stored in the request context with [utils.WithCaller], and the request
// logger gains a "user_id" field.
//
// Requests are rejected with 401 when the header is absent or malformed,
// when the token is invalid or its session was closed, and with 403 when the
// account is no longer active.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeServiceError(w, r, ErrEmptyAuthorizationHeader, "request rejected")
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeServiceError(w, r, fmt.Errorf("%w: %w", service.ErrUnauthenticated, err), "request rejected")
			return
		}

		ctx := r.Context()
		user, sessionID, err := h.services.AuthService.Authenticate(ctx, tokenString)
		if err != nil {
			writeServiceError(w, r, err, "authentication failed")
			return
		}

		l := logger.FromRequest(r).With("user_id", user.ID, "role", string(user.Role))

		ctx = utils.WithCaller(ctx, user, sessionID)
		next.ServeHTTP(w, r.WithContext(l.WithContext(ctx)))
	})
}

// elevated admits only master and owner accounts. It must run after auth.
func (h *Handler) elevated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller, ok := utils.GetCallerFromContext(r.Context())
		if !ok {
			writeServiceError(w, r, service.ErrUnauthenticated, "request rejected")
			return
		}
		if !caller.Role.IsElevated() {
			writeServiceError(w, r, service.ErrPermission, "request rejected")
			return
		}
		next.ServeHTTP(w, r)
	})
}
