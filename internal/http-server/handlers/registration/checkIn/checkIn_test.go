package checkIn

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"stagedeck/internal/booking"
	"stagedeck/internal/http-server/handlers/registration/checkIn/mocks"
	"stagedeck/internal/lib/logger/handlers/slogdiscard"
	"stagedeck/internal/models"
	"stagedeck/internal/qr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCheckInHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	payload := `{\"registrationId\":10,\"eventId\":7,\"userId\":\"user123\"}`
	validBody := `{"payload": "` + payload + `"}`

	testCases := []struct {
		name           string
		requestBody    string
		admin          bool
		mockSetup      func(m *mocks.CheckerIn)
		expectedStatus int
	}{
		{
			name:        "Success",
			requestBody: validBody,
			admin:       true,
			mockSetup: func(m *mocks.CheckerIn) {
				m.On("CheckIn", mock.Anything, mock.Anything).
					Return(&models.Registration{ID: 10, Attended: true, Status: models.RegistrationStatusConfirmed}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Non-admin is forbidden",
			requestBody:    validBody,
			admin:          false,
			mockSetup:      func(m *mocks.CheckerIn) {},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "Missing payload",
			requestBody:    `{}`,
			admin:          true,
			mockSetup:      func(m *mocks.CheckerIn) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "Malformed payload",
			requestBody: `{"payload": "garbage"}`,
			admin:       true,
			mockSetup: func(m *mocks.CheckerIn) {
				m.On("CheckIn", mock.Anything, []byte("garbage")).Return(nil, qr.ErrMalformedPayload)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "Payload mismatch",
			requestBody: validBody,
			admin:       true,
			mockSetup: func(m *mocks.CheckerIn) {
				m.On("CheckIn", mock.Anything, mock.Anything).Return(nil, booking.ErrPayloadMismatch)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:        "Unconfirmed registration",
			requestBody: validBody,
			admin:       true,
			mockSetup: func(m *mocks.CheckerIn) {
				m.On("CheckIn", mock.Anything, mock.Anything).Return(nil, booking.ErrNotConfirmed)
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			checkerMock := mocks.NewCheckerIn(t)
			tc.mockSetup(checkerMock)

			handler := New(logger, checkerMock)

			req, err := http.NewRequest(http.MethodPost, "/api/checkin", bytes.NewReader([]byte(tc.requestBody)))
			require.NoError(t, err)

			if tc.admin {
				req.Header.Set("X-User-Role", "admin")
			}

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
		})
	}
}
