package checkIn

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"stagedeck/internal/booking"
	"stagedeck/internal/lib/api/response"
	"stagedeck/internal/lib/logger/sl"
	"stagedeck/internal/models"
	"stagedeck/internal/qr"
	"stagedeck/internal/storage"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type CheckInRequest struct {
	// Payload is the raw JSON decoded from the scanned QR code.
	Payload string `json:"payload" validate:"required"`
}

type CheckInResponse struct {
	response.Response
	Registration *models.Registration `json:"registration"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CheckerIn
type CheckerIn interface {
	CheckIn(ctx context.Context, rawPayload []byte) (*models.Registration, error)
}

func New(log *slog.Logger, checker CheckerIn) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.registration.checkIn.New"

		log = log.With(slog.String("op", op))

		if r.Header.Get("X-User-Role") != "admin" {
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error("admin role required"))
			return
		}

		var req CheckInRequest

		err := render.DecodeJSON(r.Body, &req)
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

		reg, err := checker.CheckIn(r.Context(), []byte(req.Payload))
		if err != nil {
			log.Error("check-in failed", sl.Err(err))

			switch {
			case errors.Is(err, qr.ErrMalformedPayload), errors.Is(err, qr.ErrMissingField):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid qr payload"))
			case errors.Is(err, storage.ErrRegistrationNotFound), errors.Is(err, booking.ErrPayloadMismatch):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("no matching registration"))
			case errors.Is(err, booking.ErrNotConfirmed):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("registration is not confirmed"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("check-in failed"))
			}
			return
		}

		log.Info("attendee checked in", slog.Int("registration_id", reg.ID))

		render.JSON(w, r, CheckInResponse{
			Response:     response.OK(),
			Registration: reg,
		})
	}
}
