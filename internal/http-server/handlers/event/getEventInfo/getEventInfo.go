package getEventInfo

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"stagedeck/internal/lib/api/response"
	"stagedeck/internal/lib/logger/sl"
	"stagedeck/internal/models"
	"stagedeck/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type EventInfoResponse struct {
	response.Response
	Event *models.Event `json:"event"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventGetter
type EventGetter interface {
	GetEvent(ctx context.Context, id int) (*models.Event, error)
}

func New(log *slog.Logger, info EventGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getEventInfo.New"

		log = log.With(slog.String("op", op))

		eventIDStr := chi.URLParam(r, "id")
		if eventIDStr == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		eventID, err := strconv.Atoi(eventIDStr)
		if err != nil {
			log.Error("invalid event id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id format"))
			return
		}

		log = log.With(slog.Int("event_id", eventID))

		event, err := info.GetEvent(r.Context(), eventID)
		if err != nil {
			if errors.Is(err, storage.ErrEventNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
				return
			}

			log.Error("failed to get event information", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get event information"))
			return
		}

		log.Info("event info successfully received")

		render.JSON(w, r, EventInfoResponse{
			Response: response.OK(),
			Event:    event,
		})
	}
}
