package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/bizlink/internal/models"
	"github.com/sbilibin2017/bizlink/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestAddPaymentHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockSvc := NewMockPaymentManager(ctrl)
	purchaser, seller := uuid.New(), uuid.New()

	mockSvc.EXPECT().Add(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, in services.PaymentInput) (*models.Payment, error) {
			assert.Equal(t, purchaser, in.PurchaserID)
			assert.Equal(t, seller, in.SellerID)
			assert.Equal(t, 12.5, in.Amount)
			return &models.Payment{PurchaserID: purchaser, SellerID: seller, Amount: in.Amount, Currency: "USD"}, nil
		})

	body := `{"purchaser_id":"` + purchaser.String() + `","seller_id":"` + seller.String() +
		`","payment_type":"card","amount":12.5,"currency":"usd","status":"completed"}`
	rr := httptest.NewRecorder()
	NewAddPaymentHandler(mockSvc).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/payments/add", bytes.NewBufferString(body)))

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "USD", decodeMap(t, rr)["currency"])
}

func TestListPaymentsByRoleHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := uuid.New()

	tests := []struct {
		name      string
		param     string
		handler   func(PaymentManager) http.HandlerFunc
		mockSetup func(m *MockPaymentManager)
	}{
		{
			name:    "by seller",
			param:   "seller_id",
			handler: NewListPaymentsBySellerHandler,
			mockSetup: func(m *MockPaymentManager) {
				m.EXPECT().ListBySeller(gomock.Any(), user).Return([]models.Payment{{SellerID: user}}, nil)
			},
		},
		{
			name:    "by purchaser",
			param:   "purchaser_id",
			handler: NewListPaymentsByPurchaserHandler,
			mockSetup: func(m *MockPaymentManager) {
				m.EXPECT().ListByPurchaser(gomock.Any(), user).Return([]models.Payment{{PurchaserID: user}}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockPaymentManager(ctrl)
			tt.mockSetup(mockSvc)

			rr := httptest.NewRecorder()
			tt.handler(mockSvc).ServeHTTP(rr,
				withURLParam(httptest.NewRequest(http.MethodGet, "/payments", nil), tt.param, user.String()))

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Contains(t, rr.Body.String(), user.String())
		})
	}
}

func TestGetPaymentHandler_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockSvc := NewMockPaymentManager(ctrl)
	id := uuid.New()

	mockSvc.EXPECT().Get(gomock.Any(), id).Return(nil, services.ErrPaymentNotFound)

	rr := httptest.NewRecorder()
	NewGetPaymentHandler(mockSvc).ServeHTTP(rr,
		withURLParam(httptest.NewRequest(http.MethodGet, "/payments/"+id.String(), nil), "id", id.String()))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, map[string]any{"error": "Payment does not exist"}, decodeMap(t, rr))
}
