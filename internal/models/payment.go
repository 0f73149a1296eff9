package models

import "time"

const (
	PaymentStatusCreated   = "created"
	PaymentStatusSucceeded = "succeeded"
	PaymentStatusFailed    = "failed"
	PaymentStatusRefunded  = "refunded"
)

// Payment mirrors the gateway's intent lifecycle. Amount is in major
// currency units; conversion to minor units happens only at the gateway
// boundary.
type Payment struct {
	ID             int       `json:"id"`
	EventID        int       `json:"event_id"`
	UserID         string    `json:"user_id"`
	RegistrationID int       `json:"registration_id"`
	Amount         float64   `json:"amount"`
	IntentID       string    `json:"payment_intent_id"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}
