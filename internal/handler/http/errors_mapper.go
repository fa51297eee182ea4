package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-fleet-logbook/internal/logger"
	"github.com/MKhiriev/go-fleet-logbook/internal/service"
	"github.com/MKhiriev/go-fleet-logbook/internal/utils"
	"github.com/MKhiriev/go-fleet-logbook/models"
)

var errorStatusMap = map[error]int{
	service.ErrValidation:              http.StatusBadRequest,
	service.ErrPermission:              http.StatusForbidden,
	service.ErrAccountInactive:         http.StatusForbidden,
	service.ErrNotFound:                http.StatusNotFound,
	service.ErrAlreadyExists:           http.StatusConflict,
	service.ErrUnauthenticated:         http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,
	service.ErrPersistence:             http.StatusInternalServerError,

	utils.ErrInvalidJSONBody:  http.StatusBadRequest,
	models.ErrInvalidMonthKey: http.StatusBadRequest,

	ErrEmptyAuthorizationHeader: http.StatusUnauthorized,
	ErrInvalidMonthParam:        http.StatusBadRequest,
	ErrInvalidDryRunParam:       http.StatusBadRequest,
	ErrInvalidLimitParam:        http.StatusBadRequest,
	ErrEmptyImportDocument:      http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// publicMessage is the error text shown to API clients. Validation and
// permission errors are composed by the service layer for end users; other
// categories only reveal their status text.
func publicMessage(err error, status int) string {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Message
	}

	switch status {
	case http.StatusForbidden:
		return err.Error()
	case http.StatusBadRequest:
		for _, target := range []error{utils.ErrInvalidJSONBody, models.ErrInvalidMonthKey} {
			if errors.Is(err, target) {
				return target.Error()
			}
		}
		return err.Error()
	}
	return http.StatusText(status)
}

// writeServiceError logs err and writes it as a JSON error response.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg(msg)
	} else {
		log.Warn().Err(err).Int("status", status).Msg(msg)
	}

	utils.WriteError(w, publicMessage(err, status), status)
}
