package getAllEvents

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"stagedeck/internal/http-server/handlers/event/getAllEvents/mocks"
	"stagedeck/internal/lib/logger/handlers/slogdiscard"
	"stagedeck/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetAllEventsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	events := []models.Event{
		{ID: 1, Title: "GopherCon", Status: models.EventStatusScheduled},
		{ID: 2, Title: "RustFest", Status: models.EventStatusScheduled},
	}

	testCases := []struct {
		name           string
		mockSetup      func(m *mocks.EventsGetter)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "Success",
			mockSetup: func(m *mocks.EventsGetter) {
				m.On("GetAllEvents", mock.Anything).Return(events, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "GopherCon")
				assert.Contains(t, body, "RustFest")
			},
		},
		{
			name: "Empty list",
			mockSetup: func(m *mocks.EventsGetter) {
				m.On("GetAllEvents", mock.Anything).Return([]models.Event{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Storage error",
			mockSetup: func(m *mocks.EventsGetter) {
				m.On("GetAllEvents", mock.Anything).Return(nil, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			getterMock := mocks.NewEventsGetter(t)
			tc.mockSetup(getterMock)

			handler := New(logger, getterMock)

			req, err := http.NewRequest(http.MethodGet, "/api/events", nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
