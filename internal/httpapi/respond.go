package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hi-yolit/solutions-sub000/pkg/types"
)

// errorBody is the JSON shape of every non-2xx response.
type errorBody struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorBody{Error: message})
}

// respondDomainError maps the store and catalog error taxonomy to HTTP
// status codes. Absence is 404, integrity and transition conflicts are
// 409, caller mistakes are 400, everything else is a 500.
func respondDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, types.ErrNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, types.ErrReferentialIntegrity),
		errors.Is(err, types.ErrInvalidTransition):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, types.ErrInvalidID),
		errors.Is(err, types.ErrInvalidData),
		errors.Is(err, types.ErrInvalidTitle),
		errors.Is(err, types.ErrInvalidType),
		errors.Is(err, types.ErrInvalidStatus):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, err.Error())
	}
}
