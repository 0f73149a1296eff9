package rejectRegistration

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

type RejectResponse struct {
	response.Response
	Registration *models.Registration `json:"registration"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Rejecter
type Rejecter interface {
	Reject(ctx context.Context, registrationID int) (*models.Registration, error)
}

func New(log *slog.Logger, rejecter Rejecter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.registration.rejectRegistration.New"

		log = log.With(slog.String("op", op))

		if r.Header.Get("X-User-Role") != "admin" {
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error("admin role required"))
			return
		}

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

		reg, err := rejecter.Reject(r.Context(), regID)
		if err != nil {
			log.Error("failed to reject registration", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrRegistrationNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("registration not found"))
			case errors.Is(err, storage.ErrRegistrationTerminal):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("registration is already cancelled"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to reject registration"))
			}
			return
		}

		log.Info("registration rejected")

		render.JSON(w, r, RejectResponse{
			Response:     response.OK(),
			Registration: reg,
		})
	}
}
