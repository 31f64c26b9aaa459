package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/bizlink/internal/models"
	"github.com/sbilibin2017/bizlink/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestAddTrainingHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	trainer := uuid.New()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockTrainingManager)
		expectedCode int
	}{
		{
			name: "added",
			body: `{"trainer_id":"` + trainer.String() + `","title":"Go","start_date":"2024-01-01T00:00:00Z","duration":"2h"}`,
			mockSetup: func(m *MockTrainingManager) {
				m.EXPECT().Add(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ any, in services.TrainingInput) (*models.Training, error) {
						assert.NotNil(t, in.StartDate)
						assert.Nil(t, in.EndDate)
						return &models.Training{TrainerID: trainer, Title: in.Title}, nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "end before start",
			body: `{"trainer_id":"` + trainer.String() + `","title":"Go"}`,
			mockSetup: func(m *MockTrainingManager) {
				m.EXPECT().Add(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("%w: end date before start date", services.ErrValidation))
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "broken json",
			body:         `{"title":`,
			mockSetup:    func(m *MockTrainingManager) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockTrainingManager(ctrl)
			tt.mockSetup(mockSvc)

			rr := httptest.NewRecorder()
			NewAddTrainingHandler(mockSvc).ServeHTTP(rr,
				httptest.NewRequest(http.MethodPost, "/trainings/add", bytes.NewBufferString(tt.body)))

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestListTrainingsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockSvc := NewMockTrainingManager(ctrl)

	mockSvc.EXPECT().List(gomock.Any(), 2, 5).Return([]models.Training{{Title: "Go"}}, nil)

	rr := httptest.NewRecorder()
	NewListTrainingsHandler(mockSvc).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/trainings?page=2&limit=5", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	NewListTrainingsHandler(mockSvc).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/trainings?page=x", nil))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, map[string]any{"error": "page and limit must be integers"}, decodeMap(t, rr))
}

func TestDeleteTrainingHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockSvc := NewMockTrainingManager(ctrl)
	id := uuid.New()

	mockSvc.EXPECT().Delete(gomock.Any(), id).Return(nil)

	rr := httptest.NewRecorder()
	NewDeleteTrainingHandler(mockSvc).ServeHTTP(rr, withURLParam(httptest.NewRequest(http.MethodDelete, "/", nil), "id", id.String()))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, map[string]any{"message": "Training deleted successfully"}, decodeMap(t, rr))
}
