package verifyPayment

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"stagedeck/internal/booking"
	"stagedeck/internal/lib/api/response"
	"stagedeck/internal/lib/logger/sl"
	"stagedeck/internal/payments"
	"stagedeck/internal/storage"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type VerifyRequest struct {
	PaymentIntentID string `json:"payment_intent_id" validate:"required"`
}

type VerifyResponse struct {
	response.Response
	Success bool    `json:"success"`
	Status  string  `json:"payment_status"`
	Amount  float64 `json:"amount"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PaymentVerifier
type PaymentVerifier interface {
	VerifyPayment(ctx context.Context, intentID string) (*booking.VerifyOutcome, error)
}

func New(log *slog.Logger, verifier PaymentVerifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.payment.verifyPayment.New"

		log = log.With(slog.String("op", op))

		var req VerifyRequest

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

		log = log.With(slog.String("intent_id", req.PaymentIntentID))

		outcome, err := verifier.VerifyPayment(r.Context(), req.PaymentIntentID)
		if err != nil {
			log.Error("failed to verify payment", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrPaymentNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("payment not found"))
			case errors.Is(err, storage.ErrRegistrationTerminal):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("registration is no longer active, payment is flagged for refund"))
			case errors.Is(err, payments.ErrGatewayUnconfigured):
				render.Status(r, http.StatusServiceUnavailable)
				render.JSON(w, r, response.Error("payments are not available"))
			case errors.Is(err, payments.ErrGateway):
				render.Status(r, http.StatusBadGateway)
				render.JSON(w, r, response.Error("payment service error"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to verify payment"))
			}
			return
		}

		log.Info("payment verified",
			slog.Bool("success", outcome.Success),
			slog.String("status", outcome.Status),
		)

		render.JSON(w, r, VerifyResponse{
			Response: response.OK(),
			Success:  outcome.Success,
			Status:   outcome.Status,
			Amount:   outcome.Amount,
		})
	}
}
