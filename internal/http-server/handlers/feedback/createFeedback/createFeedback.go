package createFeedback

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"stagedeck/internal/ai"
	"stagedeck/internal/lib/api/response"
	"stagedeck/internal/lib/logger/sl"
	"stagedeck/internal/models"
	"stagedeck/internal/notify"
	"stagedeck/internal/storage"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type FeedbackRequest struct {
	EventID  int    `json:"event_id" validate:"required"`
	UserID   string `json:"user_id" validate:"required"`
	UserName string `json:"user_name"`
	Email    string `json:"email" validate:"omitempty,email"`
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
	Comment  string `json:"comment"`
}

type FeedbackResponse struct {
	response.Response
	Feedback *models.Feedback `json:"feedback"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=FeedbackStorage
type FeedbackStorage interface {
	GetEvent(ctx context.Context, id int) (*models.Event, error)
	CreateFeedback(ctx context.Context, f *models.Feedback) (int, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SentimentAnalyzer
type SentimentAnalyzer interface {
	AnalyzeSentiment(ctx context.Context, text string, rating int) ai.Sentiment
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Dispatcher
type Dispatcher interface {
	Send(kind notify.Kind, recipient string, nctx notify.Context) notify.Result
}

// New records feedback for an event. The sentiment score is computed
// once here and cached on the record; the analyzer degrades to a
// rating-based heuristic on its own.
func New(log *slog.Logger, st FeedbackStorage, analyzer SentimentAnalyzer, notifier Dispatcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.feedback.createFeedback.New"

		log = log.With(slog.String("op", op))

		var req FeedbackRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		event, err := st.GetEvent(r.Context(), req.EventID)
		if err != nil {
			if errors.Is(err, storage.ErrEventNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
				return
			}

			log.Error("failed to get event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to submit feedback"))
			return
		}

		sentiment := analyzer.AnalyzeSentiment(r.Context(), req.Comment, req.Rating)

		fb := &models.Feedback{
			EventID:   req.EventID,
			UserID:    req.UserID,
			Rating:    req.Rating,
			Comment:   req.Comment,
			Sentiment: sentiment.Label,
			Score:     sentiment.Score,
		}

		id, err := st.CreateFeedback(r.Context(), fb)
		if err != nil {
			if errors.Is(err, storage.ErrDuplicateFeedback) {
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("feedback already submitted for this event"))
				return
			}

			log.Error("failed to create feedback", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to submit feedback"))
			return
		}
		fb.ID = id

		if req.Email != "" {
			res := notifier.Send(notify.KindFeedbackThanks, req.Email, notify.Context{
				UserName:   req.UserName,
				EventTitle: event.Title,
			})
			if !res.Success {
				log.Warn("feedback thank-you mail not delivered", slog.String("error", res.Err))
			}
		}

		log.Info("feedback recorded",
			slog.Int("feedback_id", id),
			slog.String("sentiment", fb.Sentiment),
		)

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, FeedbackResponse{
			Response: response.OK(),
			Feedback: fb,
		})
	}
}
