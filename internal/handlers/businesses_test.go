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

func TestRegisterBusinessHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := uuid.New()
	body := `{"user_ids":["` + owner.String() + `"],"name":"Acme","founder":"Alice","industry":"Retail","phone":"1","country":"US"}`

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockBusinessManager)
		expectedCode int
	}{
		{
			name: "registered",
			body: body,
			mockSetup: func(m *MockBusinessManager) {
				m.EXPECT().Register(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ any, in services.BusinessInput) (*models.Business, error) {
						assert.Equal(t, []uuid.UUID{owner}, in.UserIDs)
						return &models.Business{Name: in.Name, UserIDs: in.UserIDs}, nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "name taken",
			body: body,
			mockSetup: func(m *MockBusinessManager) {
				m.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, services.ErrBusinessAlreadyExists)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "unknown owner",
			body: body,
			mockSetup: func(m *MockBusinessManager) {
				m.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, services.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "owner id not a uuid",
			body:         `{"user_ids":["abc"],"name":"Acme"}`,
			mockSetup:    func(m *MockBusinessManager) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockBusinessManager(ctrl)
			tt.mockSetup(mockSvc)

			rr := httptest.NewRecorder()
			NewRegisterBusinessHandler(mockSvc).ServeHTTP(rr,
				httptest.NewRequest(http.MethodPost, "/businesses/register", bytes.NewBufferString(tt.body)))

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestBusinessReadHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockSvc := NewMockBusinessManager(ctrl)
	id, owner := uuid.New(), uuid.New()

	mockSvc.EXPECT().Get(gomock.Any(), id).Return(&models.Business{BusinessID: id, Name: "Acme"}, nil)
	mockSvc.EXPECT().ListByOwner(gomock.Any(), owner).Return([]models.Business{{Name: "Acme"}}, nil)
	mockSvc.EXPECT().List(gomock.Any(), 0, 0).Return(nil, errors.New("db down"))

	rr := httptest.NewRecorder()
	NewGetBusinessHandler(mockSvc).ServeHTTP(rr,
		withURLParam(httptest.NewRequest(http.MethodGet, "/businesses/"+id.String(), nil), "business_id", id.String()))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Acme", decodeMap(t, rr)["name"])

	rr = httptest.NewRecorder()
	NewListBusinessesByOwnerHandler(mockSvc).ServeHTTP(rr,
		withURLParam(httptest.NewRequest(http.MethodGet, "/businesses/user/"+owner.String(), nil), "user_id", owner.String()))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	NewListBusinessesHandler(mockSvc).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/businesses", nil))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, map[string]any{"error": "Internal server error"}, decodeMap(t, rr))
}

func TestDeleteBusinessHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockSvc := NewMockBusinessManager(ctrl)
	id := uuid.New()

	mockSvc.EXPECT().Delete(gomock.Any(), id).Return(services.ErrBusinessNotFound)

	rr := httptest.NewRecorder()
	NewDeleteBusinessHandler(mockSvc).ServeHTTP(rr,
		withURLParam(httptest.NewRequest(http.MethodDelete, "/businesses/delete/"+id.String(), nil), "id", id.String()))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, map[string]any{"error": "Business does not exist"}, decodeMap(t, rr))
}
