package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/bizlink/internal/identity"
	"github.com/sbilibin2017/bizlink/internal/logger"
	"github.com/sbilibin2017/bizlink/internal/services"
)

// ErrorResponse is the body of every failed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: User does not exist
	Error string `json:"error"`
}

// MessageResponse is the body of requests that return no entity
// swagger:model MessageResponse
type MessageResponse struct {
	// Success message
	// default: User deleted successfully
	Message string `json:"message"`
}

const (
	msgInvalidBody    = "invalid request body"
	msgInvalidCreds   = "Invalid username or password"
	msgInvalidOldPass = "Old password is incorrect"
	msgInternal       = "Internal server error"
)

var errInvalidQuery = errors.New("page and limit must be integers")

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusOK, MessageResponse{Message: msg})
}

// writeError renders err with the status of its kind. Errors of unknown kind
// are logged and reported without detail.
func writeError(w http.ResponseWriter, err error) {
	var entityErr *services.EntityError

	switch {
	case errors.Is(err, identity.ErrMalformedIdentifier),
		errors.Is(err, services.ErrValidation),
		errors.Is(err, errInvalidQuery):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: msgInvalidCreds})
	case errors.Is(err, services.ErrInvalidOldPassword):
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: msgInvalidOldPass})
	case errors.As(err, &entityErr) && entityErr.Kind == services.ErrNotFound:
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: entityErr.Error()})
	case errors.As(err, &entityErr) && entityErr.Kind == services.ErrConflict:
		writeJSON(w, http.StatusConflict, ErrorResponse{Error: entityErr.Error()})
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: msgInternal})
	}
}

// decodeBody reads a JSON body into v and answers 400 when it cannot.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		logger.Log.Infow("invalid request body", "path", r.URL.Path, "err", err)
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msgInvalidBody})
		return false
	}
	return true
}

func pathID(r *http.Request, name string) (uuid.UUID, error) {
	return identity.Parse(chi.URLParam(r, name))
}

// pageQuery reads the optional page and limit query parameters.
// Missing values are returned as zero and clamped by the service.
func pageQuery(r *http.Request) (page, limit int, err error) {
	q := r.URL.Query()
	if v := q.Get("page"); v != "" {
		if page, err = strconv.Atoi(v); err != nil {
			return 0, 0, errInvalidQuery
		}
	}
	if v := q.Get("limit"); v != "" {
		if limit, err = strconv.Atoi(v); err != nil {
			return 0, 0, errInvalidQuery
		}
	}
	return page, limit, nil
}

// orEmpty keeps empty lists rendered as [] rather than null.
func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
