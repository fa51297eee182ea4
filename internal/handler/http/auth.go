package http

import (
	"net/http"

	"github.com/MKhiriev/go-fleet-logbook/internal/logger"
	"github.com/MKhiriev/go-fleet-logbook/internal/utils"
	"github.com/MKhiriev/go-fleet-logbook/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := utils.ReadJSON(r, &credentials); err != nil {
		writeServiceError(w, r, err, "invalid JSON was passed")
		return
	}

	log.Debug().Str("email", credentials.Email).Msg("login attempt")

	response, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		writeServiceError(w, r, err, "login failed")
		return
	}

	log.Info().Str("user_id", response.User.ID).Msg("user logged in")

	w.Header().Set("Authorization", "Bearer "+response.Token)
	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.services.AuthService.Logout(r.Context()); err != nil {
		writeServiceError(w, r, err, "logout failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// me returns the authenticated account.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	caller, _ := utils.GetCallerFromContext(r.Context())
	utils.WriteJSON(w, caller, http.StatusOK)
}
