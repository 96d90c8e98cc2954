package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"bloodbank-backend/internal/logger"
	"bloodbank-backend/internal/repository"
	"bloodbank-backend/internal/security"
	"bloodbank-backend/internal/service"
)

type errorBody struct {
	Error    string `json:"error"`
	Location string `json:"location,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Error: msg})
}

// writeServiceError maps service and repository errors to HTTP statuses.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, security.ErrInvalidToken),
		errors.Is(err, security.ErrExpiredToken),
		errors.Is(err, security.ErrWrongTokenType):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrAlreadyFinalized),
		errors.Is(err, service.ErrAppointmentFinal),
		errors.Is(err, service.ErrCampNotUpcoming):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrNotAppointmentOwner):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrRequestNotFound),
		errors.Is(err, service.ErrCampNotFound),
		errors.Is(err, service.ErrAppointmentNotFound),
		errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrPasswordMismatch),
		errors.Is(err, service.ErrInvalidRole),
		errors.Is(err, service.ErrInvalidQuantity),
		errors.Is(err, service.ErrInvalidAdjustment),
		errors.Is(err, service.ErrUnknownBloodType),
		errors.Is(err, service.ErrInvalidUnits),
		errors.Is(err, service.ErrInvalidUrgency),
		errors.Is(err, service.ErrMissingHospital),
		errors.Is(err, service.ErrMissingReason),
		errors.Is(err, service.ErrMissingCampFields):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		logger.Error("unhandled service error", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
