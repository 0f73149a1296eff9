package createOrder

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"stagedeck/internal/lib/api/response"
	"stagedeck/internal/lib/logger/sl"
	"stagedeck/internal/payments"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type OrderRequest struct {
	EventID int     `json:"event_id" validate:"required"`
	UserID  string  `json:"user_id" validate:"required"`
	Email   string  `json:"email" validate:"required,email"`
	Amount  float64 `json:"amount" validate:"required,gt=0"`
}

type OrderResponse struct {
	response.Response
	PaymentIntentID string  `json:"payment_intent_id"`
	ClientSecret    string  `json:"client_secret"`
	Amount          float64 `json:"amount"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=IntentCreator
type IntentCreator interface {
	CreateIntent(ctx context.Context, amount float64, eventID int, userID, email string) (*payments.Intent, error)
}

func New(log *slog.Logger, gateway IntentCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.payment.createOrder.New"

		log = log.With(slog.String("op", op))

		var req OrderRequest

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

		intent, err := gateway.CreateIntent(r.Context(), req.Amount, req.EventID, req.UserID, req.Email)
		if err != nil {
			log.Error("failed to create payment intent", sl.Err(err))

			if errors.Is(err, payments.ErrGatewayUnconfigured) {
				render.Status(r, http.StatusServiceUnavailable)
				render.JSON(w, r, response.Error("payments are not available"))
				return
			}

			render.Status(r, http.StatusBadGateway)
			render.JSON(w, r, response.Error("payment service error"))
			return
		}

		log.Info("payment intent created", slog.String("intent_id", intent.IntentID))

		render.JSON(w, r, OrderResponse{
			Response:        response.OK(),
			PaymentIntentID: intent.IntentID,
			ClientSecret:    intent.ClientSecret,
			Amount:          intent.Amount,
		})
	}
}
