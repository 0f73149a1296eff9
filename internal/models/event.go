package models

import "time"

const (
	EventStatusScheduled = "scheduled"
	EventStatusDraft     = "draft"
	EventStatusCancelled = "cancelled"
	EventStatusCompleted = "completed"
)

type Event struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"`
	StartsAt    time.Time `json:"starts_at"`
	Venue       string    `json:"venue"`
	Capacity    int       `json:"capacity"`
	Price       float64   `json:"price"`
	Status      string    `json:"status"`
	CreatedBy   string    `json:"created_by"`
	Confirmed   int       `json:"confirmed_registrations"`
	CreatedAt   time.Time `json:"created_at"`
}

// Free reports whether the event requires no payment to confirm a spot.
func (e *Event) Free() bool {
	return e.Price == 0
}
