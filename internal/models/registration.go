package models

import "time"

const (
	RegistrationStatusPending   = "pending"
	RegistrationStatusConfirmed = "confirmed"
	RegistrationStatusRejected  = "rejected"
	RegistrationStatusCancelled = "cancelled"
)

type Registration struct {
	ID         int       `json:"id"`
	EventID    int       `json:"event_id"`
	UserID     string    `json:"user_id"`
	UserName   string    `json:"user_name"`
	Email      string    `json:"email"`
	Tickets    int       `json:"tickets"`
	Status     string    `json:"status"`
	Attended   bool      `json:"attended"`
	TicketCode string    `json:"ticket_code"`
	QRImage    []byte    `json:"qr_image,omitempty"`
	Reminded   bool      `json:"-"`
	CreatedAt  time.Time `json:"created_at"`
}

// Terminal reports whether the registration can no longer change status.
func (r *Registration) Terminal() bool {
	return r.Status == RegistrationStatusCancelled || r.Status == RegistrationStatusRejected
}
