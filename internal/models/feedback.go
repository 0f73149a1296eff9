package models

import "time"

type Feedback struct {
	ID        int       `json:"id"`
	EventID   int       `json:"event_id"`
	UserID    string    `json:"user_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	Sentiment string    `json:"sentiment,omitempty"`
	Score     float64   `json:"sentiment_score"`
	CreatedAt time.Time `json:"created_at"`
}
