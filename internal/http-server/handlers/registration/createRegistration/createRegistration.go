package createRegistration

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"stagedeck/internal/booking"
	"stagedeck/internal/lib/api/response"
	"stagedeck/internal/lib/logger/sl"
	"stagedeck/internal/models"
	"stagedeck/internal/payments"
	"stagedeck/internal/storage"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type RegistrationRequest struct {
	EventID  int    `json:"event_id" validate:"required"`
	UserID   string `json:"user_id" validate:"required"`
	UserName string `json:"user_name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Tickets  int    `json:"tickets" validate:"required,min=1"`
}

type PaymentInfo struct {
	PaymentIntentID string  `json:"payment_intent_id"`
	ClientSecret    string  `json:"client_secret"`
	Amount          float64 `json:"amount"`
}

type RegistrationResponse struct {
	response.Response
	Registration *models.Registration `json:"registration"`
	Payment      *PaymentInfo         `json:"payment,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Registrar
type Registrar interface {
	Register(ctx context.Context, userID, userName, email string, eventID, tickets int) (*booking.RegisterResult, error)
}

func New(log *slog.Logger, registrar Registrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.registration.createRegistration.New"

		log = log.With(slog.String("op", op))

		var req RegistrationRequest

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

		result, err := registrar.Register(r.Context(), req.UserID, req.UserName, req.Email, req.EventID, req.Tickets)
		if err != nil {
			log.Error("failed to register for event", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrEventNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
			case errors.Is(err, storage.ErrEventClosed):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("event is not open for registration"))
			case errors.Is(err, storage.ErrCapacityExceeded):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("not enough seats available"))
			case errors.Is(err, booking.ErrPaymentUnavailable):
				// The registration was kept pending, return it so the
				// client can retry payment against it.
				render.Status(r, http.StatusBadGateway)
				render.JSON(w, r, RegistrationResponse{
					Response:     response.Error("payment service is unavailable, registration kept pending"),
					Registration: result.Registration,
				})
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to register for event"))
			}
			return
		}

		log.Info("registration created",
			slog.Int("registration_id", result.Registration.ID),
			slog.String("status", result.Registration.Status),
		)

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, RegistrationResponse{
			Response:     response.OK(),
			Registration: result.Registration,
			Payment:      paymentInfo(result.Payment),
		})
	}
}

func paymentInfo(intent *payments.Intent) *PaymentInfo {
	if intent == nil {
		return nil
	}

	return &PaymentInfo{
		PaymentIntentID: intent.IntentID,
		ClientSecret:    intent.ClientSecret,
		Amount:          intent.Amount,
	}
}
