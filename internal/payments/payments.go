package payments

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/google/uuid"
	stripe "github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/client"
)

var (
	// ErrGatewayUnconfigured is returned by every operation when no
	// secret key was present at construction. The check is static and
	// never reaches the network.
	ErrGatewayUnconfigured = errors.New("payment gateway is not configured")

	ErrGateway = errors.New("payment gateway error")
)

// Intent is the simplified result shape handed back to callers.
// Amount is in major currency units.
type Intent struct {
	IntentID     string
	ClientSecret string
	Amount       float64
	Status       string
}

type VerifyResult struct {
	Succeeded bool
	Status    string
	Amount    float64
}

type Refund struct {
	RefundID string
	IntentID string
	Amount   float64
	Status   string
}

// Gateway wraps the Stripe payment-intent lifecycle. Amounts cross this
// boundary in major units and are converted to minor units (x100) here
// and nowhere else.
type Gateway struct {
	api      *client.API
	currency string
}

func NewGateway(secretKey string) *Gateway {
	g := &Gateway{currency: string(stripe.CurrencyUSD)}

	if secretKey == "" {
		return g
	}

	api := &client.API{}
	api.Init(secretKey, nil)
	g.api = api

	return g
}

func (g *Gateway) Configured() bool {
	return g.api != nil
}

func (g *Gateway) CreateIntent(ctx context.Context, amount float64, eventID int, userID, email string) (*Intent, error) {
	if g.api == nil {
		return nil, ErrGatewayUnconfigured
	}

	params := &stripe.PaymentIntentParams{
		Params: stripe.Params{
			Context: ctx,
		},
		Amount:       stripe.Int64(toMinorUnits(amount)),
		Currency:     stripe.String(g.currency),
		ReceiptEmail: stripe.String(email),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("event_id", strconv.Itoa(eventID))
	params.AddMetadata("user_id", userID)
	params.SetIdempotencyKey(uuid.NewString())

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, fmt.Errorf("%w: create intent: %v", ErrGateway, err)
	}

	return &Intent{
		IntentID:     pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       fromMinorUnits(pi.Amount),
		Status:       string(pi.Status),
	}, nil
}

func (g *Gateway) Verify(ctx context.Context, intentID string) (*VerifyResult, error) {
	if g.api == nil {
		return nil, ErrGatewayUnconfigured
	}

	pi, err := g.api.PaymentIntents.Get(intentID, &stripe.PaymentIntentParams{
		Params: stripe.Params{Context: ctx},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: verify intent: %v", ErrGateway, err)
	}

	return &VerifyResult{
		Succeeded: pi.Status == stripe.PaymentIntentStatusSucceeded,
		Status:    string(pi.Status),
		Amount:    fromMinorUnits(pi.Amount),
	}, nil
}

func (g *Gateway) Fetch(ctx context.Context, intentID string) (*Intent, error) {
	if g.api == nil {
		return nil, ErrGatewayUnconfigured
	}

	pi, err := g.api.PaymentIntents.Get(intentID, &stripe.PaymentIntentParams{
		Params: stripe.Params{Context: ctx},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: fetch intent: %v", ErrGateway, err)
	}

	return &Intent{
		IntentID:     pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       fromMinorUnits(pi.Amount),
		Status:       string(pi.Status),
	}, nil
}

// RefundIntent refunds a captured intent. A nil amount refunds in full;
// a partial amount is passed through and validated by the gateway
// against the captured total, not locally.
func (g *Gateway) RefundIntent(ctx context.Context, intentID string, amount *float64) (*Refund, error) {
	if g.api == nil {
		return nil, ErrGatewayUnconfigured
	}

	params := &stripe.RefundParams{
		Params:        stripe.Params{Context: ctx},
		PaymentIntent: stripe.String(intentID),
	}
	if amount != nil {
		params.Amount = stripe.Int64(toMinorUnits(*amount))
	}

	ref, err := g.api.Refunds.New(params)
	if err != nil {
		return nil, fmt.Errorf("%w: refund intent: %v", ErrGateway, err)
	}

	return &Refund{
		RefundID: ref.ID,
		IntentID: intentID,
		Amount:   fromMinorUnits(ref.Amount),
		Status:   string(ref.Status),
	}, nil
}

func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func fromMinorUnits(amount int64) float64 {
	return float64(amount) / 100
}
