package cancelRegistration

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"stagedeck/internal/booking"
	"stagedeck/internal/lib/api/response"
	"stagedeck/internal/lib/logger/sl"
	"stagedeck/internal/models"
	"stagedeck/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type CancelRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

type CancelResponse struct {
	response.Response
	Registration *models.Registration `json:"registration"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Canceller
type Canceller interface {
	Cancel(ctx context.Context, registrationID int, actorID string, admin bool) (*models.Registration, error)
}

func New(log *slog.Logger, canceller Canceller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.registration.cancelRegistration.New"

		log = log.With(slog.String("op", op))

		regIDStr := chi.URLParam(r, "id")
		if regIDStr == "" {
			log.Error("registration id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("registration id is required"))
			return
		}

		regID, err := strconv.Atoi(regIDStr)
		if err != nil {
			log.Error("invalid registration id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid registration id format"))
			return
		}

		log = log.With(slog.Int("registration_id", regID))

		var req CancelRequest

		err = render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		admin := r.Header.Get("X-User-Role") == "admin"

		reg, err := canceller.Cancel(r.Context(), regID, req.UserID, admin)
		if err != nil {
			log.Error("failed to cancel registration", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrRegistrationNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("registration not found"))
			case errors.Is(err, booking.ErrForbidden):
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("you cannot cancel this registration"))
			case errors.Is(err, storage.ErrRegistrationTerminal):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("registration is already closed"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to cancel registration"))
			}
			return
		}

		log.Info("registration cancelled", slog.String("user_id", req.UserID))

		render.JSON(w, r, CancelResponse{
			Response:     response.OK(),
			Registration: reg,
		})
	}
}
