package markAttendance

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"stagedeck/internal/http-server/handlers/registration/markAttendance/mocks"
	"stagedeck/internal/lib/logger/handlers/slogdiscard"
	"stagedeck/internal/models"
	"stagedeck/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMarkAttendanceHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	attended := &models.Registration{
		ID:       42,
		EventID:  7,
		UserID:   "user123",
		Status:   models.RegistrationStatusConfirmed,
		Attended: true,
	}

	testCases := []struct {
		name           string
		registrationID string
		role           string
		mockSetup      func(m *mocks.AttendanceMarker)
		expectedStatus int
	}{
		{
			name:           "Success",
			registrationID: "42",
			role:           "admin",
			mockSetup: func(m *mocks.AttendanceMarker) {
				m.On("MarkAttendance", mock.Anything, 42).Return(attended, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Non-admin forbidden",
			registrationID: "42",
			role:           "student",
			mockSetup:      func(m *mocks.AttendanceMarker) {},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "Invalid id format",
			registrationID: "abc",
			role:           "admin",
			mockSetup:      func(m *mocks.AttendanceMarker) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Registration not found",
			registrationID: "99",
			role:           "admin",
			mockSetup: func(m *mocks.AttendanceMarker) {
				m.On("MarkAttendance", mock.Anything, 99).Return(nil, storage.ErrRegistrationNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Storage error",
			registrationID: "42",
			role:           "admin",
			mockSetup: func(m *mocks.AttendanceMarker) {
				m.On("MarkAttendance", mock.Anything, 42).Return(nil, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			markerMock := mocks.NewAttendanceMarker(t)
			tc.mockSetup(markerMock)

			handler := New(logger, markerMock)

			req, err := http.NewRequest(http.MethodPost, "/api/registrations/"+tc.registrationID+"/attendance", nil)
			require.NoError(t, err)

			req.Header.Set("X-User-Role", tc.role)

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tc.registrationID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
		})
	}
}
