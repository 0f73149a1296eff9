package reminder

import (
	"context"
	"log/slog"
	"time"

	"stagedeck/internal/lib/logger/sl"
	"stagedeck/internal/models"
	"stagedeck/internal/notify"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Storage
type Storage interface {
	DueReminders(ctx context.Context, window time.Duration) ([]models.Registration, error)
	GetEvent(ctx context.Context, id int) (*models.Event, error)
	MarkReminded(ctx context.Context, registrationID int) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Dispatcher
type Dispatcher interface {
	Send(kind notify.Kind, recipient string, nctx notify.Context) notify.Result
}

// Worker mails attendees ahead of their event start. A registration is
// reminded at most once: the flag is flipped only after a successful
// delivery, so a failed send is retried on the next sweep.
type Worker struct {
	storage  Storage
	notifier Dispatcher
	log      *slog.Logger
	interval time.Duration
	window   time.Duration
}

func New(log *slog.Logger, st Storage, notifier Dispatcher, interval, window time.Duration) *Worker {
	return &Worker{
		storage:  st,
		notifier: notifier,
		log:      log,
		interval: interval,
		window:   window,
	}
}

// Run sweeps on a ticker until ctx is cancelled.
func (w *Worker) Run(ctx context.Context) {
	const op = "reminder.Run"

	log := w.log.With(slog.String("op", op))

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.Info("reminder worker started",
		slog.Duration("interval", w.interval),
		slog.Duration("window", w.window),
	)

	for {
		select {
		case <-ticker.C:
			w.Sweep(ctx)
		case <-ctx.Done():
			log.Info("reminder worker stopped")
			return
		}
	}
}

// Sweep sends reminder mail for every due registration. Per-registration
// failures are logged and skipped so one bad address cannot stall the rest.
func (w *Worker) Sweep(ctx context.Context) {
	const op = "reminder.Sweep"

	log := w.log.With(slog.String("op", op))

	regs, err := w.storage.DueReminders(ctx, w.window)
	if err != nil {
		log.Error("failed to list due reminders", sl.Err(err))
		return
	}

	if len(regs) == 0 {
		return
	}

	log.Info("sending reminders", slog.Int("count", len(regs)))

	events := make(map[int]*models.Event)

	for _, reg := range regs {
		if reg.Email == "" {
			// nothing to deliver to, but do not keep re-selecting it
			if err := w.storage.MarkReminded(ctx, reg.ID); err != nil {
				log.Error("failed to mark registration reminded", sl.Err(err))
			}
			continue
		}

		event, ok := events[reg.EventID]
		if !ok {
			event, err = w.storage.GetEvent(ctx, reg.EventID)
			if err != nil {
				log.Error("failed to get event",
					slog.Int("event_id", reg.EventID), sl.Err(err))
				continue
			}
			events[reg.EventID] = event
		}

		res := w.notifier.Send(notify.KindReminder, reg.Email, notify.Context{
			UserName:   reg.UserName,
			EventTitle: event.Title,
			EventVenue: event.Venue,
			EventTime:  event.StartsAt.Format(time.RFC1123),
		})
		if !res.Success {
			log.Warn("reminder not delivered",
				slog.Int("registration_id", reg.ID),
				slog.String("error", res.Err),
			)
			continue
		}

		if err := w.storage.MarkReminded(ctx, reg.ID); err != nil {
			log.Error("failed to mark registration reminded",
				slog.Int("registration_id", reg.ID), sl.Err(err))
		}
	}
}
