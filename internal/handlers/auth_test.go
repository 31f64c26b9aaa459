package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/bizlink/internal/models"
	"github.com/sbilibin2017/bizlink/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockAuthenticator)
		expectedCode int
		expectedBody map[string]any
	}{
		{
			name: "success",
			body: `{"username":"alice","password":"secret"}`,
			mockSetup: func(m *MockAuthenticator) {
				m.EXPECT().Login(gomock.Any(), "alice", "secret").Return(&models.User{UserID: id}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: map[string]any{"message": "Login successful", "user_id": id.String()},
		},
		{
			name: "invalid credentials",
			body: `{"username":"alice","password":"wrong"}`,
			mockSetup: func(m *MockAuthenticator) {
				m.EXPECT().Login(gomock.Any(), "alice", "wrong").Return(nil, services.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
			expectedBody: map[string]any{"error": "Invalid username or password"},
		},
		{
			name: "internal error",
			body: `{"username":"alice","password":"secret"}`,
			mockSetup: func(m *MockAuthenticator) {
				m.EXPECT().Login(gomock.Any(), "alice", "secret").Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: map[string]any{"error": "Internal server error"},
		},
		{
			name:         "invalid json",
			body:         `not json`,
			mockSetup:    func(m *MockAuthenticator) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]any{"error": "invalid request body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockAuthenticator(ctrl)
			tt.mockSetup(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()

			NewLoginHandler(mockSvc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectedBody, decodeMap(t, rr))
		})
	}
}

func TestSetPasswordHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockSvc := NewMockAuthenticator(ctrl)

	mockSvc.EXPECT().SetPassword(gomock.Any(), "alice@x.com", "fresh").Return(nil)
	mockSvc.EXPECT().SetPassword(gomock.Any(), "ghost@x.com", "fresh").Return(services.ErrUserNotFound)

	rr := httptest.NewRecorder()
	NewSetPasswordHandler(mockSvc).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/auth/set_password",
		bytes.NewBufferString(`{"email":"alice@x.com","password":"fresh"}`)))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, map[string]any{"message": "Password set successfully"}, decodeMap(t, rr))

	rr = httptest.NewRecorder()
	NewSetPasswordHandler(mockSvc).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/auth/set_password",
		bytes.NewBufferString(`{"email":"ghost@x.com","password":"fresh"}`)))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestChangePasswordHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedBody map[string]any
	}{
		{"changed", nil, http.StatusOK, map[string]any{"message": "Password changed successfully"}},
		{"wrong old password", services.ErrInvalidOldPassword, http.StatusUnauthorized, map[string]any{"error": "Old password is incorrect"}},
		{"unknown email", services.ErrUserNotFound, http.StatusNotFound, map[string]any{"error": "User does not exist"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockAuthenticator(ctrl)
			mockSvc.EXPECT().ChangePassword(gomock.Any(), "alice@x.com", "old", "new").Return(tt.err)

			req := httptest.NewRequest(http.MethodPut, "/auth/change_password",
				bytes.NewBufferString(`{"email":"alice@x.com","old_password":"old","new_password":"new"}`))
			rr := httptest.NewRecorder()

			NewChangePasswordHandler(mockSvc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectedBody, decodeMap(t, rr))
		})
	}
}
