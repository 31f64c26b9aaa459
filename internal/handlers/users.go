package handlers

//go:generate mockgen -source=users.go -destination=users_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/bizlink/internal/models"
	"github.com/sbilibin2017/bizlink/internal/services"
)

// UserManager defines the user operations the handlers need.
type UserManager interface {
	Register(ctx context.Context, in services.RegisterUserInput) (*models.User, error)
	Get(ctx context.Context, username string) (*models.User, error)
	List(ctx context.Context, page, limit int) ([]models.User, error)
	Update(ctx context.Context, in services.UpdateUserInput) (*models.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// RegisterUserRequest represents the JSON body for user registration
// swagger:model RegisterUserRequest
type RegisterUserRequest struct {
	// Username
	// required: true
	// default: alice
	Username string `json:"username"`

	// Email
	// required: true
	// default: alice@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`

	// Account type
	// default: individual
	UserType string `json:"user_type"`
}

// UpdateUserRequest represents the JSON body for a user update
// swagger:model UpdateUserRequest
type UpdateUserRequest struct {
	// User identifier
	// required: true
	UserID uuid.UUID `json:"user_id"`

	// New username
	// required: true
	Username string `json:"username"`

	// New email
	// required: true
	Email string `json:"email"`

	// Account type
	UserType string `json:"user_type"`
}

// NewRegisterUserHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a user and its profile. The username must be unused. The password is hashed before storing.
// @Tags users
// @Accept json
// @Produce json
// @Param request body handlers.RegisterUserRequest true "User registration request"
// @Success 201 {object} models.User "User registered"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 409 {object} handlers.ErrorResponse "User already exists"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/register [post]
func NewRegisterUserHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterUserRequest
		if !decodeBody(w, r, &req) {
			return
		}

		user, err := svc.Register(r.Context(), services.RegisterUserInput{
			Username: req.Username,
			Email:    req.Email,
			Password: req.Password,
			UserType: req.UserType,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, user)
	}
}

// NewUpdateUserHandler returns an HTTP handler that replaces a user's fields.
// @Summary Update a user
// @Description A new username must be unused and is copied onto the user's profile.
// @Tags users
// @Accept json
// @Produce json
// @Param request body handlers.UpdateUserRequest true "User update request"
// @Success 200 {object} models.User "User updated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 404 {object} handlers.ErrorResponse "User does not exist"
// @Failure 409 {object} handlers.ErrorResponse "User already exists"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/update [put]
func NewUpdateUserHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpdateUserRequest
		if !decodeBody(w, r, &req) {
			return
		}

		user, err := svc.Update(r.Context(), services.UpdateUserInput{
			UserID:   req.UserID,
			Username: req.Username,
			Email:    req.Email,
			UserType: req.UserType,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// NewDeleteUserHandler returns an HTTP handler that deletes a user.
// @Summary Delete a user
// @Description Removes the user and its profile and drops it from business ownership. Payments, messages and reviews are kept.
// @Tags users
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} handlers.MessageResponse "User deleted"
// @Failure 400 {object} handlers.ErrorResponse "Malformed identifier"
// @Failure 404 {object} handlers.ErrorResponse "User does not exist"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/delete/{user_id} [delete]
func NewDeleteUserHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "user_id")
		if err != nil {
			writeError(w, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			writeError(w, err)
			return
		}

		writeMessage(w, "User deleted successfully")
	}
}

// NewListUsersHandler returns an HTTP handler listing one page of users.
// @Summary List users
// @Tags users
// @Produce json
// @Param page query int false "Page number, starting at 1"
// @Param limit query int false "Page size, at most 100"
// @Success 200 {array} models.User "Users"
// @Failure 400 {object} handlers.ErrorResponse "Invalid query"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users [get]
func NewListUsersHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, limit, err := pageQuery(r)
		if err != nil {
			writeError(w, err)
			return
		}

		users, err := svc.List(r.Context(), page, limit)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, orEmpty(users))
	}
}

// NewGetUserHandler returns an HTTP handler fetching a user by username.
// @Summary Get a user
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} models.User "User"
// @Failure 404 {object} handlers.ErrorResponse "User does not exist"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/{username} [get]
func NewGetUserHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := svc.Get(r.Context(), chi.URLParam(r, "username"))
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}
