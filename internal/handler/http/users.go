package http

import (
	"net/http"

	"github.com/MKhiriev/go-fleet-logbook/internal/utils"
	"github.com/MKhiriev/go-fleet-logbook/models"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "listing users failed")
		return
	}
	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := utils.ReadJSON(r, &user); err != nil {
		writeServiceError(w, r, err, "invalid JSON was passed")
		return
	}

	created, err := h.services.UserService.CreateUser(r.Context(), user)
	if err != nil {
		writeServiceError(w, r, err, "creating user failed")
		return
	}
	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	var update models.UserUpdate
	if err := utils.ReadJSON(r, &update); err != nil {
		writeServiceError(w, r, err, "invalid JSON was passed")
		return
	}

	updated, err := h.services.UserService.UpdateUser(r.Context(), pathID(r), update)
	if err != nil {
		writeServiceError(w, r, err, "updating user failed")
		return
	}
	utils.WriteJSON(w, updated, http.StatusOK)
}
