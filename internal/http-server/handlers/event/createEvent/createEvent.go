package createEvent

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"stagedeck/internal/lib/api/response"
	"stagedeck/internal/lib/logger/sl"
	"stagedeck/internal/models"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type EventRequest struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	StartsAt    time.Time `json:"starts_at" validate:"required"`
	Venue       string    `json:"venue" validate:"required"`
	Capacity    int       `json:"capacity" validate:"required,min=1"`
	Price       float64   `json:"price" validate:"min=0"`
	Draft       bool      `json:"draft"`
}

type EventResponse struct {
	response.Response
	EventID int `json:"event_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventCreator
type EventCreator interface {
	CreateEvent(ctx context.Context, e *models.Event) (int, error)
}

func New(log *slog.Logger, event EventCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.createEvent.New"

		log = log.With(slog.String("op", op))

		adminID := r.Header.Get("X-User-ID")
		if r.Header.Get("X-User-Role") != "admin" {
			log.Warn("non-admin tried to create an event", slog.String("user_id", adminID))
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error("admin role required"))
			return
		}

		var req EventRequest

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

		status := models.EventStatusScheduled
		if req.Draft {
			status = models.EventStatusDraft
		}

		eventID, err := event.CreateEvent(r.Context(), &models.Event{
			Title:       req.Title,
			Description: req.Description,
			Category:    req.Category,
			StartsAt:    req.StartsAt,
			Venue:       req.Venue,
			Capacity:    req.Capacity,
			Price:       req.Price,
			Status:      status,
			CreatedBy:   adminID,
		})
		if err != nil {
			log.Error("failed to add event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to add event"))
			return
		}

		log.Info("event added", slog.Int("id", eventID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, EventResponse{
			Response: response.OK(),
			EventID:  eventID,
		})
	}
}
