package notify

import (
	"fmt"
	"log/slog"
	"net/smtp"

	"stagedeck/internal/config"
)

type Kind string

const (
	KindRegistrationConfirmed Kind = "registrationConfirmed"
	KindReminder              Kind = "reminder"
	KindPaymentConfirmed      Kind = "paymentConfirmed"
	KindFeedbackThanks        Kind = "feedbackThanks"
	KindStatusUpdate          Kind = "statusUpdate"
)

// Context carries the template fields. Unused fields are ignored by
// kinds that do not reference them.
type Context struct {
	UserName   string
	EventTitle string
	EventVenue string
	EventTime  string
	Amount     float64
	Status     string
}

// Result is the only outcome a Send produces. Delivery failure is data,
// not an error: callers log it and move on, the primary workflow never
// blocks on mail.
type Result struct {
	Success bool
	Err     string
}

type sender func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type Dispatcher struct {
	cfg  config.SMTP
	log  *slog.Logger
	send sender
}

func NewDispatcher(cfg config.SMTP, log *slog.Logger) *Dispatcher {
	return &Dispatcher{
		cfg:  cfg,
		log:  log,
		send: smtp.SendMail,
	}
}

func (d *Dispatcher) Send(kind Kind, recipient string, nctx Context) Result {
	subject, body, ok := render(kind, nctx)
	if !ok {
		d.log.Warn("unknown notification kind", slog.String("kind", string(kind)))
		return Result{Err: fmt.Sprintf("unknown notification kind %q", kind)}
	}

	if d.cfg.Host == "" || d.cfg.From == "" {
		d.log.Warn("mail transport is not configured, dropping notification",
			slog.String("kind", string(kind)),
			slog.String("recipient", recipient),
		)
		return Result{Err: "mail transport is not configured"}
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		d.cfg.From, recipient, subject, body,
	)

	addr := fmt.Sprintf("%s:%d", d.cfg.Host, d.cfg.Port)
	auth := smtp.PlainAuth("", d.cfg.User, d.cfg.Password, d.cfg.Host)

	if err := d.send(addr, auth, d.cfg.From, []string{recipient}, []byte(msg)); err != nil {
		d.log.Warn("failed to send notification",
			slog.String("kind", string(kind)),
			slog.String("recipient", recipient),
			slog.String("error", err.Error()),
		)
		return Result{Err: fmt.Sprintf("send email: %v", err)}
	}

	d.log.Info("notification sent",
		slog.String("kind", string(kind)),
		slog.String("recipient", recipient),
	)

	return Result{Success: true}
}

func render(kind Kind, nctx Context) (subject, body string, ok bool) {
	switch kind {
	case KindRegistrationConfirmed:
		subject = fmt.Sprintf("You're in: %s", nctx.EventTitle)
		body = fmt.Sprintf("Hi %s,\n\nYour registration for \"%s\" is confirmed.\nWhen: %s\nWhere: %s\n\nYour QR ticket is attached to your account - show it at the door.\n\nSee you there!",
			nctx.UserName, nctx.EventTitle, nctx.EventTime, nctx.EventVenue)
	case KindReminder:
		subject = fmt.Sprintf("Reminder: %s is coming up", nctx.EventTitle)
		body = fmt.Sprintf("Hi %s,\n\n\"%s\" starts at %s.\nVenue: %s\n\nDon't forget your QR ticket.",
			nctx.UserName, nctx.EventTitle, nctx.EventTime, nctx.EventVenue)
	case KindPaymentConfirmed:
		subject = fmt.Sprintf("Payment received for %s", nctx.EventTitle)
		body = fmt.Sprintf("Hi %s,\n\nWe received your payment of %.2f for \"%s\".\nYour spot is confirmed.",
			nctx.UserName, nctx.Amount, nctx.EventTitle)
	case KindFeedbackThanks:
		subject = "Thanks for your feedback"
		body = fmt.Sprintf("Hi %s,\n\nThanks for sharing your thoughts on \"%s\". It helps us make the next one better.",
			nctx.UserName, nctx.EventTitle)
	case KindStatusUpdate:
		subject = fmt.Sprintf("Update on your registration for %s", nctx.EventTitle)
		body = fmt.Sprintf("Hi %s,\n\nThe status of your registration for \"%s\" changed to: %s.",
			nctx.UserName, nctx.EventTitle, nctx.Status)
	default:
		return "", "", false
	}

	return subject, body, true
}
