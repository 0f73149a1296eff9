package qr

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"stagedeck/internal/models"

	qrcode "github.com/skip2/go-qrcode"
)

var (
	ErrMalformedPayload = errors.New("malformed qr payload")
	ErrMissingField     = errors.New("qr payload is missing a required field")
)

const imageSize = 256

// Payload identifies a registration for check-in. It carries no
// signature or expiry: consumers must re-verify against the stored
// registration and never trust the payload alone.
type Payload struct {
	RegistrationID int       `json:"registrationId"`
	EventID        int       `json:"eventId"`
	UserID         string    `json:"userId"`
	UserName       string    `json:"userName"`
	IssuedAt       time.Time `json:"timestamp"`
}

type Issuer struct{}

func NewIssuer() *Issuer {
	return &Issuer{}
}

// Issue encodes the registration's identifying fields as a
// high-error-correction QR PNG and returns the image with the raw
// payload it embeds.
func (i *Issuer) Issue(reg *models.Registration) ([]byte, Payload, error) {
	payload := Payload{
		RegistrationID: reg.ID,
		EventID:        reg.EventID,
		UserID:         reg.UserID,
		UserName:       reg.UserName,
		IssuedAt:       time.Now().UTC(),
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, Payload{}, fmt.Errorf("failed to marshal qr payload: %w", err)
	}

	png, err := qrcode.Encode(string(raw), qrcode.High, imageSize)
	if err != nil {
		return nil, Payload{}, fmt.Errorf("failed to render qr image: %w", err)
	}

	return png, payload, nil
}

// Validate parses a scanned payload and checks the identifying fields
// are present.
func (i *Issuer) Validate(raw []byte) (Payload, error) {
	var payload Payload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return Payload{}, ErrMalformedPayload
	}

	switch {
	case payload.RegistrationID == 0:
		return Payload{}, fmt.Errorf("%w: registrationId", ErrMissingField)
	case payload.EventID == 0:
		return Payload{}, fmt.Errorf("%w: eventId", ErrMissingField)
	case payload.UserID == "":
		return Payload{}, fmt.Errorf("%w: userId", ErrMissingField)
	}

	return payload, nil
}
