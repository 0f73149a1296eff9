package storage

import "errors"

var (
	ErrEventNotFound        = errors.New("event not found")
	ErrEventClosed          = errors.New("event is not open for registration")
	ErrCapacityExceeded     = errors.New("not enough seats available")
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrRegistrationTerminal = errors.New("registration is in a terminal status")
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrDuplicateFeedback    = errors.New("feedback already submitted")
)
