package refundPayment

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"stagedeck/internal/lib/api/response"
	"stagedeck/internal/lib/logger/sl"
	"stagedeck/internal/models"
	"stagedeck/internal/payments"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type RefundRequest struct {
	// Amount in major units; omit for a full refund. Partial amounts
	// are validated by the gateway against the captured total.
	Amount *float64 `json:"amount,omitempty"`
}

type RefundResponse struct {
	response.Response
	RefundID string  `json:"refund_id"`
	Amount   float64 `json:"amount"`
	Status   string  `json:"refund_status"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Refunder
type Refunder interface {
	RefundIntent(ctx context.Context, intentID string, amount *float64) (*payments.Refund, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PaymentMarker
type PaymentMarker interface {
	UpdatePaymentStatus(ctx context.Context, intentID, status string) error
}

// New triggers a refund against the gateway. Refunds are admin-only and
// never automatic: cancellation does not call this.
func New(log *slog.Logger, refunder Refunder, marker PaymentMarker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.payment.refundPayment.New"

		log = log.With(slog.String("op", op))

		if r.Header.Get("X-User-Role") != "admin" {
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error("admin role required"))
			return
		}

		intentID := chi.URLParam(r, "id")
		if intentID == "" {
			log.Error("payment intent id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("payment intent id is required"))
			return
		}

		log = log.With(slog.String("intent_id", intentID))

		var req RefundRequest
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			// An empty or absent body means a full refund.
			req.Amount = nil
		}

		refund, err := refunder.RefundIntent(r.Context(), intentID, req.Amount)
		if err != nil {
			log.Error("failed to refund payment", sl.Err(err))

			if errors.Is(err, payments.ErrGatewayUnconfigured) {
				render.Status(r, http.StatusServiceUnavailable)
				render.JSON(w, r, response.Error("payments are not available"))
				return
			}

			render.Status(r, http.StatusBadGateway)
			render.JSON(w, r, response.Error("payment service error"))
			return
		}

		if err := marker.UpdatePaymentStatus(r.Context(), intentID, models.PaymentStatusRefunded); err != nil {
			// The gateway refund already went through; the local record
			// is reconciled later rather than failing the request.
			log.Warn("refund succeeded but payment record update failed", sl.Err(err))
		}

		log.Info("payment refunded", slog.String("refund_id", refund.RefundID))

		render.JSON(w, r, RefundResponse{
			Response: response.OK(),
			RefundID: refund.RefundID,
			Amount:   refund.Amount,
			Status:   refund.Status,
		})
	}
}
