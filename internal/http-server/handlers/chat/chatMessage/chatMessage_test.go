package chatMessage

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"stagedeck/internal/http-server/handlers/chat/chatMessage/mocks"
	"stagedeck/internal/lib/logger/handlers/slogdiscard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestChatMessageHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.Chatter)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success",
			requestBody: `{"message": "when is the next event?"}`,
			mockSetup: func(m *mocks.Chatter) {
				m.On("Chat", mock.Anything, "when is the next event?").Return("Next Friday at 18:00.")
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "Next Friday at 18:00.")
			},
		},
		{
			name:           "Invalid JSON",
			requestBody:    `nope`,
			mockSetup:      func(m *mocks.Chatter) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Empty message",
			requestBody:    `{"message": ""}`,
			mockSetup:      func(m *mocks.Chatter) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Oversized message",
			requestBody:    `{"message": "` + strings.Repeat("a", 2001) + `"}`,
			mockSetup:      func(m *mocks.Chatter) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			chatterMock := mocks.NewChatter(t)
			tc.mockSetup(chatterMock)

			handler := New(logger, chatterMock)

			req, err := http.NewRequest(http.MethodPost, "/api/chat/message", bytes.NewReader([]byte(tc.requestBody)))
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
