package refundPayment

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"stagedeck/internal/http-server/handlers/payment/refundPayment/mocks"
	"stagedeck/internal/lib/logger/handlers/slogdiscard"
	"stagedeck/internal/models"
	"stagedeck/internal/payments"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRefundPaymentHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	refund := &payments.Refund{
		RefundID: "re_123",
		IntentID: "pi_123",
		Amount:   25.5,
		Status:   "succeeded",
	}

	testCases := []struct {
		name           string
		intentID       string
		role           string
		requestBody    string
		mockSetup      func(r *mocks.Refunder, m *mocks.PaymentMarker)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Full refund on empty body",
			intentID:    "pi_123",
			role:        "admin",
			requestBody: "",
			mockSetup: func(r *mocks.Refunder, m *mocks.PaymentMarker) {
				r.On("RefundIntent", mock.Anything, "pi_123", (*float64)(nil)).Return(refund, nil)
				m.On("UpdatePaymentStatus", mock.Anything, "pi_123", models.PaymentStatusRefunded).Return(nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "re_123")
			},
		},
		{
			name:        "Partial refund",
			intentID:    "pi_123",
			role:        "admin",
			requestBody: `{"amount": 10.0}`,
			mockSetup: func(r *mocks.Refunder, m *mocks.PaymentMarker) {
				r.On("RefundIntent", mock.Anything, "pi_123", mock.MatchedBy(func(a *float64) bool {
					return a != nil && *a == 10.0
				})).Return(&payments.Refund{RefundID: "re_124", IntentID: "pi_123", Amount: 10.0, Status: "succeeded"}, nil)
				m.On("UpdatePaymentStatus", mock.Anything, "pi_123", models.PaymentStatusRefunded).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Non-admin forbidden",
			intentID:       "pi_123",
			role:           "student",
			mockSetup:      func(r *mocks.Refunder, m *mocks.PaymentMarker) {},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:     "Gateway unconfigured",
			intentID: "pi_123",
			role:     "admin",
			mockSetup: func(r *mocks.Refunder, m *mocks.PaymentMarker) {
				r.On("RefundIntent", mock.Anything, "pi_123", (*float64)(nil)).
					Return(nil, payments.ErrGatewayUnconfigured)
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
		{
			name:     "Gateway error stays generic",
			intentID: "pi_123",
			role:     "admin",
			mockSetup: func(r *mocks.Refunder, m *mocks.PaymentMarker) {
				r.On("RefundIntent", mock.Anything, "pi_123", (*float64)(nil)).
					Return(nil, errors.New("stripe: charge already refunded"))
			},
			expectedStatus: http.StatusBadGateway,
			checkBody: func(t *testing.T, body string) {
				assert.NotContains(t, body, "stripe")
			},
		},
		{
			name:     "Record update failure does not fail the refund",
			intentID: "pi_123",
			role:     "admin",
			mockSetup: func(r *mocks.Refunder, m *mocks.PaymentMarker) {
				r.On("RefundIntent", mock.Anything, "pi_123", (*float64)(nil)).Return(refund, nil)
				m.On("UpdatePaymentStatus", mock.Anything, "pi_123", models.PaymentStatusRefunded).
					Return(errors.New("db down"))
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			refunderMock := mocks.NewRefunder(t)
			markerMock := mocks.NewPaymentMarker(t)
			tc.mockSetup(refunderMock, markerMock)

			handler := New(logger, refunderMock, markerMock)

			req, err := http.NewRequest(http.MethodPost, "/api/payments/"+tc.intentID+"/refund",
				bytes.NewReader([]byte(tc.requestBody)))
			require.NoError(t, err)

			req.Header.Set("X-User-Role", tc.role)

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tc.intentID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
