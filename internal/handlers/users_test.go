package handlers

import (
	"bytes"
	"encoding/json"
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

func TestRegisterUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockUserManager)
		expectedCode int
		expectedBody map[string]any
	}{
		{
			name: "success",
			body: `{"username":"alice","email":"alice@x.com","password":"secret"}`,
			mockSetup: func(m *MockUserManager) {
				m.EXPECT().
					Register(gomock.Any(), services.RegisterUserInput{Username: "alice", Email: "alice@x.com", Password: "secret"}).
					Return(&models.User{UserID: id, Username: "alice", Email: "alice@x.com", Password: "digest"}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "user already exists",
			body: `{"username":"alice","email":"alice@x.com","password":"secret"}`,
			mockSetup: func(m *MockUserManager) {
				m.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, services.ErrUserAlreadyExists)
			},
			expectedCode: http.StatusConflict,
			expectedBody: map[string]any{"error": "User already exists"},
		},
		{
			name: "internal server error",
			body: `{"username":"bob","email":"bob@x.com","password":"secret"}`,
			mockSetup: func(m *MockUserManager) {
				m.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: map[string]any{"error": "Internal server error"},
		},
		{
			name:         "invalid json",
			body:         `{"username":`,
			mockSetup:    func(m *MockUserManager) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]any{"error": "invalid request body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserManager(ctrl)
			tt.mockSetup(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/users/register", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()

			NewRegisterUserHandler(mockSvc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedBody != nil {
				assert.Equal(t, tt.expectedBody, decodeMap(t, rr))
				return
			}

			body := decodeMap(t, rr)
			assert.Equal(t, id.String(), body["user_id"])
			assert.Equal(t, "alice", body["username"])
			assert.NotContains(t, body, "password")
		})
	}
}

func TestUpdateUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	id := uuid.New()
	mockSvc := NewMockUserManager(ctrl)

	mockSvc.EXPECT().
		Update(gomock.Any(), services.UpdateUserInput{UserID: id, Username: "alicia", Email: "alice@x.com"}).
		Return(&models.User{UserID: id, Username: "alicia"}, nil)

	body, _ := json.Marshal(UpdateUserRequest{UserID: id, Username: "alicia", Email: "alice@x.com"})
	rr := httptest.NewRecorder()
	NewUpdateUserHandler(mockSvc).ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/users/update", bytes.NewReader(body)))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "alicia", decodeMap(t, rr)["username"])
}

func TestDeleteUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()

	tests := []struct {
		name         string
		param        string
		mockSetup    func(m *MockUserManager)
		expectedCode int
		expectedBody map[string]any
	}{
		{
			name:  "deleted",
			param: id.String(),
			mockSetup: func(m *MockUserManager) {
				m.EXPECT().Delete(gomock.Any(), id).Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: map[string]any{"message": "User deleted successfully"},
		},
		{
			name:  "missing",
			param: id.String(),
			mockSetup: func(m *MockUserManager) {
				m.EXPECT().Delete(gomock.Any(), id).Return(services.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: map[string]any{"error": "User does not exist"},
		},
		{
			name:         "malformed identifier",
			param:        "12345",
			mockSetup:    func(m *MockUserManager) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]any{"error": `malformed identifier: "12345"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserManager(ctrl)
			tt.mockSetup(mockSvc)

			req := withURLParam(httptest.NewRequest(http.MethodDelete, "/users/delete/"+tt.param, nil), "user_id", tt.param)
			rr := httptest.NewRecorder()

			NewDeleteUserHandler(mockSvc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectedBody, decodeMap(t, rr))
		})
	}
}

func TestListUsersHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockSvc := NewMockUserManager(ctrl)

	mockSvc.EXPECT().List(gomock.Any(), 2, 5).Return(nil, nil)

	rr := httptest.NewRecorder()
	NewListUsersHandler(mockSvc).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/users?page=2&limit=5", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())

	rr = httptest.NewRecorder()
	NewListUsersHandler(mockSvc).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/users?page=two", nil))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockSvc := NewMockUserManager(ctrl)

	mockSvc.EXPECT().Get(gomock.Any(), "alice").Return(&models.User{Username: "alice"}, nil)
	mockSvc.EXPECT().Get(gomock.Any(), "ghost").Return(nil, services.ErrUserNotFound)

	rr := httptest.NewRecorder()
	NewGetUserHandler(mockSvc).ServeHTTP(rr, withURLParam(httptest.NewRequest(http.MethodGet, "/users/alice", nil), "username", "alice"))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "alice", decodeMap(t, rr)["username"])

	rr = httptest.NewRecorder()
	NewGetUserHandler(mockSvc).ServeHTTP(rr, withURLParam(httptest.NewRequest(http.MethodGet, "/users/ghost", nil), "username", "ghost"))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
