package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"stagedeck/internal/lib/logger/sl"
	"stagedeck/internal/models"
	"stagedeck/internal/notify"
	"stagedeck/internal/payments"
	"stagedeck/internal/qr"
	"stagedeck/internal/storage"

	"github.com/google/uuid"
)

var (
	ErrForbidden = errors.New("actor is not allowed to modify this registration")

	// ErrPaymentUnavailable means the gateway could not produce an
	// intent. The registration is kept pending so the user can retry
	// payment against it.
	ErrPaymentUnavailable = errors.New("payment service is unavailable")

	ErrPayloadMismatch = errors.New("qr payload does not match the stored registration")
	ErrNotConfirmed    = errors.New("registration is not confirmed")
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Storage
type Storage interface {
	GetEvent(ctx context.Context, id int) (*models.Event, error)
	CreateRegistration(ctx context.Context, reg *models.Registration) (int, error)
	GetRegistration(ctx context.Context, id int) (*models.Registration, error)
	ConfirmRegistration(ctx context.Context, id int) error
	UpdateRegistrationStatus(ctx context.Context, id int, status string) error
	SetAttendance(ctx context.Context, id int, attended bool) error
	SaveRegistrationQR(ctx context.Context, id int, image []byte) error
	CreatePayment(ctx context.Context, p *models.Payment) (int, error)
	GetPaymentByIntent(ctx context.Context, intentID string) (*models.Payment, error)
	UpdatePaymentStatus(ctx context.Context, intentID, status string) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Gateway
type Gateway interface {
	CreateIntent(ctx context.Context, amount float64, eventID int, userID, email string) (*payments.Intent, error)
	Verify(ctx context.Context, intentID string) (*payments.VerifyResult, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Issuer
type Issuer interface {
	Issue(reg *models.Registration) ([]byte, qr.Payload, error)
	Validate(raw []byte) (qr.Payload, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Dispatcher
type Dispatcher interface {
	Send(kind notify.Kind, recipient string, nctx notify.Context) notify.Result
}

// Service coordinates capacity checks, registration records, payment
// intents, QR issuance and notifications into one booking flow. All
// collaborators are injected; the service holds no hidden globals.
type Service struct {
	storage  Storage
	gateway  Gateway
	issuer   Issuer
	notifier Dispatcher
	log      *slog.Logger
}

func NewService(storage Storage, gateway Gateway, issuer Issuer, notifier Dispatcher, log *slog.Logger) *Service {
	return &Service{
		storage:  storage,
		gateway:  gateway,
		issuer:   issuer,
		notifier: notifier,
		log:      log,
	}
}

type RegisterResult struct {
	Registration *models.Registration
	Payment      *payments.Intent
}

// Register books a spot on an event. Free events confirm immediately;
// priced events leave the registration pending and return a payment
// intent for the client to complete. If the gateway fails, the pending
// registration is kept and ErrPaymentUnavailable is returned alongside
// it so the caller can offer a retry.
func (s *Service) Register(ctx context.Context, userID, userName, email string, eventID, tickets int) (*RegisterResult, error) {
	const op = "booking.Register"

	event, err := s.storage.GetEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	reg := &models.Registration{
		EventID:    eventID,
		UserID:     userID,
		UserName:   userName,
		Email:      email,
		Tickets:    tickets,
		Status:     models.RegistrationStatusPending,
		TicketCode: uuid.NewString(),
	}
	if event.Free() {
		reg.Status = models.RegistrationStatusConfirmed
	}

	id, err := s.storage.CreateRegistration(ctx, reg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	reg.ID = id

	if event.Free() {
		s.issueTicket(ctx, reg)
		s.notifyConfirmed(event, reg)

		return &RegisterResult{Registration: reg}, nil
	}

	intent, err := s.gateway.CreateIntent(ctx, event.Price*float64(tickets), eventID, userID, email)
	if err != nil {
		s.log.Error("failed to create payment intent, registration kept pending",
			slog.Int("registration_id", reg.ID), sl.Err(err))

		return &RegisterResult{Registration: reg}, ErrPaymentUnavailable
	}

	payment := &models.Payment{
		EventID:        eventID,
		UserID:         userID,
		RegistrationID: reg.ID,
		Amount:         intent.Amount,
		IntentID:       intent.IntentID,
		Status:         models.PaymentStatusCreated,
	}
	if _, err := s.storage.CreatePayment(ctx, payment); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &RegisterResult{Registration: reg, Payment: intent}, nil
}

type VerifyOutcome struct {
	Success bool    `json:"success"`
	Status  string  `json:"status"`
	Amount  float64 `json:"amount"`
}

// VerifyPayment is the client callback after completing a payment. On a
// succeeded intent it marks the payment, confirms the registration,
// issues the QR ticket and dispatches the confirmation mail. Verifying
// an already-settled payment is idempotent.
func (s *Service) VerifyPayment(ctx context.Context, intentID string) (*VerifyOutcome, error) {
	const op = "booking.VerifyPayment"

	payment, err := s.storage.GetPaymentByIntent(ctx, intentID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if payment.Status == models.PaymentStatusSucceeded {
		return &VerifyOutcome{Success: true, Status: payment.Status, Amount: payment.Amount}, nil
	}

	result, err := s.gateway.Verify(ctx, intentID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !result.Succeeded {
		if result.Status == "canceled" {
			if err := s.storage.UpdatePaymentStatus(ctx, intentID, models.PaymentStatusFailed); err != nil {
				return nil, fmt.Errorf("%s: %w", op, err)
			}
		}

		return &VerifyOutcome{Status: result.Status, Amount: result.Amount}, nil
	}

	if err := s.storage.UpdatePaymentStatus(ctx, intentID, models.PaymentStatusSucceeded); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	reg, err := s.storage.GetRegistration(ctx, payment.RegistrationID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// Cancelled and rejected are terminal: a late payment callback must
	// not resurrect the registration. The payment stays marked succeeded
	// so an admin can refund it.
	if reg.Terminal() {
		s.log.Warn("payment succeeded for a terminal registration, leaving it for refund",
			slog.Int("registration_id", reg.ID),
			slog.String("status", reg.Status),
			slog.String("intent_id", intentID),
		)

		return nil, fmt.Errorf("%s: %w", op, storage.ErrRegistrationTerminal)
	}

	if err := s.storage.ConfirmRegistration(ctx, payment.RegistrationID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	reg.Status = models.RegistrationStatusConfirmed

	s.issueTicket(ctx, reg)

	event, err := s.storage.GetEvent(ctx, reg.EventID)
	if err != nil {
		s.log.Error("failed to load event for payment notification", sl.Err(err))
	} else {
		res := s.notifier.Send(notify.KindPaymentConfirmed, reg.Email, notify.Context{
			UserName:   reg.UserName,
			EventTitle: event.Title,
			EventVenue: event.Venue,
			EventTime:  event.StartsAt.Format("2006-01-02 15:04"),
			Amount:     result.Amount,
		})
		if !res.Success {
			s.log.Warn("payment confirmation mail not delivered", slog.String("error", res.Err))
		}
	}

	return &VerifyOutcome{Success: true, Status: result.Status, Amount: result.Amount}, nil
}

// Cancel transitions a registration to cancelled. Only the owning user
// or an admin may cancel; cancelling an already-cancelled registration
// is a no-op, a rejected one is terminal and stays rejected. Refunds
// are a separate admin action, never automatic.
func (s *Service) Cancel(ctx context.Context, registrationID int, actorID string, admin bool) (*models.Registration, error) {
	const op = "booking.Cancel"

	reg, err := s.storage.GetRegistration(ctx, registrationID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !admin && reg.UserID != actorID {
		return nil, ErrForbidden
	}

	if reg.Status == models.RegistrationStatusCancelled {
		return reg, nil
	}

	if reg.Terminal() {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrRegistrationTerminal)
	}

	if err := s.storage.UpdateRegistrationStatus(ctx, registrationID, models.RegistrationStatusCancelled); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	reg.Status = models.RegistrationStatusCancelled

	if event, err := s.storage.GetEvent(ctx, reg.EventID); err == nil {
		res := s.notifier.Send(notify.KindStatusUpdate, reg.Email, notify.Context{
			UserName:   reg.UserName,
			EventTitle: event.Title,
			Status:     reg.Status,
		})
		if !res.Success {
			s.log.Warn("cancellation mail not delivered", slog.String("error", res.Err))
		}
	}

	return reg, nil
}

// Reject declines a registration. It is an admin decision: the seat is
// released and the attendee is mailed the status change. Rejecting an
// already-rejected registration is a no-op; a cancelled one is terminal
// and cannot be rejected.
func (s *Service) Reject(ctx context.Context, registrationID int) (*models.Registration, error) {
	const op = "booking.Reject"

	reg, err := s.storage.GetRegistration(ctx, registrationID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if reg.Status == models.RegistrationStatusRejected {
		return reg, nil
	}

	if reg.Terminal() {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrRegistrationTerminal)
	}

	if err := s.storage.UpdateRegistrationStatus(ctx, registrationID, models.RegistrationStatusRejected); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	reg.Status = models.RegistrationStatusRejected

	if event, err := s.storage.GetEvent(ctx, reg.EventID); err == nil {
		res := s.notifier.Send(notify.KindStatusUpdate, reg.Email, notify.Context{
			UserName:   reg.UserName,
			EventTitle: event.Title,
			Status:     reg.Status,
		})
		if !res.Success {
			s.log.Warn("rejection mail not delivered", slog.String("error", res.Err))
		}
	}

	return reg, nil
}

// MarkAttendance flips the attendance flag. It is idempotent and
// independent of payment state.
func (s *Service) MarkAttendance(ctx context.Context, registrationID int) (*models.Registration, error) {
	const op = "booking.MarkAttendance"

	reg, err := s.storage.GetRegistration(ctx, registrationID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if reg.Attended {
		return reg, nil
	}

	if err := s.storage.SetAttendance(ctx, registrationID, true); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	reg.Attended = true

	return reg, nil
}

// CheckIn validates a scanned QR payload and re-verifies it against the
// stored registration before marking attendance. The payload itself is
// never trusted: identifying fields must match the record and the
// registration must be confirmed.
func (s *Service) CheckIn(ctx context.Context, rawPayload []byte) (*models.Registration, error) {
	const op = "booking.CheckIn"

	payload, err := s.issuer.Validate(rawPayload)
	if err != nil {
		return nil, err
	}

	reg, err := s.storage.GetRegistration(ctx, payload.RegistrationID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if reg.EventID != payload.EventID || reg.UserID != payload.UserID {
		return nil, ErrPayloadMismatch
	}

	if reg.Status != models.RegistrationStatusConfirmed {
		return nil, ErrNotConfirmed
	}

	return s.MarkAttendance(ctx, reg.ID)
}

// issueTicket renders and stores the QR image. Failures are logged and
// swallowed: a missing image is re-issuable and must never fail a
// booking.
func (s *Service) issueTicket(ctx context.Context, reg *models.Registration) {
	image, _, err := s.issuer.Issue(reg)
	if err != nil {
		s.log.Error("failed to issue qr ticket", slog.Int("registration_id", reg.ID), sl.Err(err))
		return
	}

	if err := s.storage.SaveRegistrationQR(ctx, reg.ID, image); err != nil {
		s.log.Error("failed to store qr ticket", slog.Int("registration_id", reg.ID), sl.Err(err))
		return
	}

	reg.QRImage = image
}

// notifyConfirmed dispatches the registration confirmation. Delivery
// failure is logged and swallowed.
func (s *Service) notifyConfirmed(event *models.Event, reg *models.Registration) {
	res := s.notifier.Send(notify.KindRegistrationConfirmed, reg.Email, notify.Context{
		UserName:   reg.UserName,
		EventTitle: event.Title,
		EventVenue: event.Venue,
		EventTime:  event.StartsAt.Format("2006-01-02 15:04"),
	})
	if !res.Success {
		s.log.Warn("registration confirmation mail not delivered",
			slog.Int("registration_id", reg.ID), slog.String("error", res.Err))
	}
}
