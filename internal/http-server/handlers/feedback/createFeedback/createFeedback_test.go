package createFeedback

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"stagedeck/internal/ai"
	"stagedeck/internal/http-server/handlers/feedback/createFeedback/mocks"
	"stagedeck/internal/lib/logger/handlers/slogdiscard"
	"stagedeck/internal/models"
	"stagedeck/internal/notify"
	"stagedeck/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type handlerMocks struct {
	storage  *mocks.FeedbackStorage
	analyzer *mocks.SentimentAnalyzer
	notifier *mocks.Dispatcher
}

func TestCreateFeedbackHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	event := &models.Event{ID: 7, Title: "GopherCon"}

	validBody := `{"event_id": 7, "user_id": "user123", "user_name": "Ada", "email": "ada@example.com", "rating": 5, "comment": "loved it"}`

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m handlerMocks)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success with cached sentiment",
			requestBody: validBody,
			mockSetup: func(m handlerMocks) {
				m.storage.On("GetEvent", mock.Anything, 7).Return(event, nil)
				m.analyzer.On("AnalyzeSentiment", mock.Anything, "loved it", 5).
					Return(ai.Sentiment{Label: "positive", Score: 1.0})
				m.storage.On("CreateFeedback", mock.Anything, mock.MatchedBy(func(f *models.Feedback) bool {
					return f.Sentiment == "positive" && f.Score == 1.0
				})).Return(3, nil)
				m.notifier.On("Send", notify.KindFeedbackThanks, "ada@example.com", mock.Anything).
					Return(notify.Result{Success: true})
			},
			expectedStatus: http.StatusCreated,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"sentiment":"positive"`)
				assert.Contains(t, body, `"sentiment_score":1`)
			},
		},
		{
			name:        "Notification failure does not fail the request",
			requestBody: validBody,
			mockSetup: func(m handlerMocks) {
				m.storage.On("GetEvent", mock.Anything, 7).Return(event, nil)
				m.analyzer.On("AnalyzeSentiment", mock.Anything, "loved it", 5).
					Return(ai.Sentiment{Label: "positive", Score: 1.0})
				m.storage.On("CreateFeedback", mock.Anything, mock.Anything).Return(3, nil)
				m.notifier.On("Send", notify.KindFeedbackThanks, "ada@example.com", mock.Anything).
					Return(notify.Result{Err: "smtp down"})
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Rating out of range",
			requestBody:    `{"event_id": 7, "user_id": "user123", "rating": 6}`,
			mockSetup:      func(m handlerMocks) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "Event not found",
			requestBody: validBody,
			mockSetup: func(m handlerMocks) {
				m.storage.On("GetEvent", mock.Anything, 7).Return(nil, storage.ErrEventNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:        "Duplicate feedback",
			requestBody: validBody,
			mockSetup: func(m handlerMocks) {
				m.storage.On("GetEvent", mock.Anything, 7).Return(event, nil)
				m.analyzer.On("AnalyzeSentiment", mock.Anything, "loved it", 5).
					Return(ai.Sentiment{Label: "positive", Score: 1.0})
				m.storage.On("CreateFeedback", mock.Anything, mock.Anything).Return(0, storage.ErrDuplicateFeedback)
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			m := handlerMocks{
				storage:  mocks.NewFeedbackStorage(t),
				analyzer: mocks.NewSentimentAnalyzer(t),
				notifier: mocks.NewDispatcher(t),
			}
			tc.mockSetup(m)

			handler := New(logger, m.storage, m.analyzer, m.notifier)

			req, err := http.NewRequest(http.MethodPost, "/api/feedback", bytes.NewReader([]byte(tc.requestBody)))
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
