package handlers

//go:generate mockgen -source=profiles.go -destination=profiles_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/bizlink/internal/models"
	"github.com/sbilibin2017/bizlink/internal/services"
)

// ProfileManager defines the profile operations the handlers need.
type ProfileManager interface {
	Create(ctx context.Context, in services.ProfileInput) (*models.Profile, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	GetByUsername(ctx context.Context, username string) (*models.Profile, error)
	List(ctx context.Context) ([]models.Profile, error)
	Update(ctx context.Context, in services.ProfileInput) (*models.Profile, error)
	DeleteByUsername(ctx context.Context, username string) error
}

// NewRegisterProfileHandler returns an HTTP handler creating a profile for a user that has none.
// @Summary Create a profile
// @Tags profiles
// @Accept json
// @Produce json
// @Param request body services.ProfileInput true "Profile"
// @Success 201 {object} models.Profile "Profile created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 404 {object} handlers.ErrorResponse "User does not exist"
// @Failure 409 {object} handlers.ErrorResponse "Profile already exists"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /profiles/register [post]
func NewRegisterProfileHandler(svc ProfileManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in services.ProfileInput
		if !decodeBody(w, r, &in) {
			return
		}

		profile, err := svc.Create(r.Context(), in)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, profile)
	}
}

// NewUpdateProfileHandler returns an HTTP handler replacing a profile's fields.
// @Summary Update a profile
// @Tags profiles
// @Accept json
// @Produce json
// @Param request body services.ProfileInput true "Profile, identified by profile_id"
// @Success 200 {object} models.Profile "Profile updated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 404 {object} handlers.ErrorResponse "Profile does not exist"
// @Failure 409 {object} handlers.ErrorResponse "Profile already exists"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /profiles/update [put]
func NewUpdateProfileHandler(svc ProfileManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in services.ProfileInput
		if !decodeBody(w, r, &in) {
			return
		}

		profile, err := svc.Update(r.Context(), in)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, profile)
	}
}

// NewDeleteProfileHandler returns an HTTP handler deleting a profile by username.
// @Summary Delete a profile
// @Tags profiles
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} handlers.MessageResponse "Profile deleted"
// @Failure 404 {object} handlers.ErrorResponse "Profile does not exist"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /profiles/delete/{username} [delete]
func NewDeleteProfileHandler(svc ProfileManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.DeleteByUsername(r.Context(), chi.URLParam(r, "username")); err != nil {
			writeError(w, err)
			return
		}

		writeMessage(w, "Profile deleted successfully")
	}
}

// NewListProfilesHandler returns an HTTP handler listing every profile.
// @Summary List profiles
// @Tags profiles
// @Produce json
// @Success 200 {array} models.Profile "Profiles"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /profiles [get]
func NewListProfilesHandler(svc ProfileManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profiles, err := svc.List(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, orEmpty(profiles))
	}
}

// NewGetProfileHandler returns an HTTP handler fetching a profile by identifier.
// @Summary Get a profile
// @Tags profiles
// @Produce json
// @Param profile_id path string true "Profile ID"
// @Success 200 {object} models.Profile "Profile"
// @Failure 400 {object} handlers.ErrorResponse "Malformed identifier"
// @Failure 404 {object} handlers.ErrorResponse "Profile does not exist"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /profiles/{profile_id} [get]
func NewGetProfileHandler(svc ProfileManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "profile_id")
		if err != nil {
			writeError(w, err)
			return
		}

		profile, err := svc.Get(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, profile)
	}
}

// NewGetProfileByUsernameHandler returns an HTTP handler fetching a profile by username.
// @Summary Get a profile by username
// @Tags profiles
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} models.Profile "Profile"
// @Failure 404 {object} handlers.ErrorResponse "Profile does not exist"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /profiles/username/{username} [get]
func NewGetProfileByUsernameHandler(svc ProfileManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := svc.GetByUsername(r.Context(), chi.URLParam(r, "username"))
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, profile)
	}
}
