package handlers

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/bizlink/internal/models"
)

// Authenticator defines the credential operations the handlers need.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (*models.User, error)
	SetPassword(ctx context.Context, email, password string) error
	ChangePassword(ctx context.Context, email, oldPassword, newPassword string) error
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Username
	// required: true
	// default: alice
	Username string `json:"username"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// Success message
	// default: Login successful
	Message string `json:"message"`

	// Identifier of the authenticated user
	UserID uuid.UUID `json:"user_id"`
}

// SetPasswordRequest represents the JSON body for setting a password
// swagger:model SetPasswordRequest
type SetPasswordRequest struct {
	// Email of the user
	// required: true
	// default: alice@example.com
	Email string `json:"email"`

	// New password
	// required: true
	Password string `json:"password"`
}

// ChangePasswordRequest represents the JSON body for changing a password
// swagger:model ChangePasswordRequest
type ChangePasswordRequest struct {
	// Email of the user
	// required: true
	// default: alice@example.com
	Email string `json:"email"`

	// Current password
	// required: true
	OldPassword string `json:"old_password"`

	// New password
	// required: true
	NewPassword string `json:"new_password"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Verifies a username and password. No session or token is issued.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.LoginResponse "Credentials valid"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Invalid username or password"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func NewLoginHandler(svc Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if !decodeBody(w, r, &req) {
			return
		}

		user, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, LoginResponse{
			Message: "Login successful",
			UserID:  user.UserID,
		})
	}
}

// NewSetPasswordHandler returns an HTTP handler replacing a password without verifying the old one.
// @Summary Set password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body handlers.SetPasswordRequest true "Set password request"
// @Success 200 {object} handlers.MessageResponse "Password set"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 404 {object} handlers.ErrorResponse "User does not exist"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /auth/set_password [post]
func NewSetPasswordHandler(svc Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SetPasswordRequest
		if !decodeBody(w, r, &req) {
			return
		}

		if err := svc.SetPassword(r.Context(), req.Email, req.Password); err != nil {
			writeError(w, err)
			return
		}

		writeMessage(w, "Password set successfully")
	}
}

// NewChangePasswordHandler returns an HTTP handler replacing a password after verifying the old one.
// @Summary Change password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body handlers.ChangePasswordRequest true "Change password request"
// @Success 200 {object} handlers.MessageResponse "Password changed"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Old password is incorrect"
// @Failure 404 {object} handlers.ErrorResponse "User does not exist"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /auth/change_password [put]
func NewChangePasswordHandler(svc Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ChangePasswordRequest
		if !decodeBody(w, r, &req) {
			return
		}

		if err := svc.ChangePassword(r.Context(), req.Email, req.OldPassword, req.NewPassword); err != nil {
			writeError(w, err)
			return
		}

		writeMessage(w, "Password changed successfully")
	}
}
