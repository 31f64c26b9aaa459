package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/bizlink/internal/identity"
	"github.com/sbilibin2017/bizlink/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		rctx = chi.NewRouteContext()
	}
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeMap(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func TestWriteError(t *testing.T) {
	_, malformed := identity.Parse("nope")

	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedBody string
	}{
		{"malformed identifier", malformed, http.StatusBadRequest, malformed.Error()},
		{"validation", fmt.Errorf("%w: username must satisfy required", services.ErrValidation), http.StatusBadRequest, "validation failed: username must satisfy required"},
		{"invalid query", errInvalidQuery, http.StatusBadRequest, errInvalidQuery.Error()},
		{"invalid credentials", services.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid username or password"},
		{"invalid old password", services.ErrInvalidOldPassword, http.StatusUnauthorized, "Old password is incorrect"},
		{"not found", services.ErrUserNotFound, http.StatusNotFound, "User does not exist"},
		{"wrapped not found", fmt.Errorf("lookup: %w", services.ErrBusinessNotFound), http.StatusNotFound, "Business does not exist"},
		{"conflict", services.ErrUserAlreadyExists, http.StatusConflict, "User already exists"},
		{"orphaned user", fmt.Errorf("%w: timeout", services.ErrOrphanedUser), http.StatusInternalServerError, "Internal server error"},
		{"store failure", errors.New("server selection timeout"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			writeError(rr, tt.err)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.Equal(t, map[string]any{"error": tt.expectedBody}, decodeMap(t, rr))
		})
	}
}

func TestPageQuery(t *testing.T) {
	tests := []struct {
		query     string
		wantPage  int
		wantLimit int
		wantErr   bool
	}{
		{"", 0, 0, false},
		{"?page=2&limit=10", 2, 10, false},
		{"?page=-1", -1, 0, false},
		{"?limit=abc", 0, 0, true},
		{"?page=1.5", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/users"+tt.query, nil)
			page, limit, err := pageQuery(r)
			if tt.wantErr {
				assert.ErrorIs(t, err, errInvalidQuery)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestOrEmpty(t *testing.T) {
	rr := httptest.NewRecorder()
	writeJSON(rr, http.StatusOK, orEmpty[string](nil))
	assert.JSONEq(t, `[]`, rr.Body.String())
}
