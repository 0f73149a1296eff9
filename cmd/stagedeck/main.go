package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"stagedeck/internal/ai"
	"stagedeck/internal/booking"
	"stagedeck/internal/config"
	"stagedeck/internal/http-server/handlers/chat/chatMessage"
	"stagedeck/internal/http-server/handlers/event/createEvent"
	"stagedeck/internal/http-server/handlers/event/generateDescription"
	"stagedeck/internal/http-server/handlers/event/getAllEvents"
	"stagedeck/internal/http-server/handlers/event/getEventInfo"
	"stagedeck/internal/http-server/handlers/event/getRecommendations"
	"stagedeck/internal/http-server/handlers/feedback/createFeedback"
	"stagedeck/internal/http-server/handlers/payment/createOrder"
	"stagedeck/internal/http-server/handlers/payment/refundPayment"
	"stagedeck/internal/http-server/handlers/payment/verifyPayment"
	"stagedeck/internal/http-server/handlers/registration/cancelRegistration"
	"stagedeck/internal/http-server/handlers/registration/checkIn"
	"stagedeck/internal/http-server/handlers/registration/createRegistration"
	"stagedeck/internal/http-server/handlers/registration/markAttendance"
	"stagedeck/internal/http-server/handlers/registration/rejectRegistration"
	"stagedeck/internal/http-server/middleware/mwlogger"
	"stagedeck/internal/lib/logger/handlers/slogpretty"
	"stagedeck/internal/lib/logger/sl"
	"stagedeck/internal/notify"
	"stagedeck/internal/payments"
	"stagedeck/internal/qr"
	"stagedeck/internal/reminder"
	"stagedeck/internal/storage/postgres"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting stagedeck", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	gateway := payments.NewGateway(cfg.Stripe.SecretKey)
	if !gateway.Configured() {
		log.Warn("payment gateway is not configured, paid registrations will fail")
	}

	issuer := qr.NewIssuer()
	notifier := notify.NewDispatcher(cfg.SMTP, log)
	assistant := ai.NewAdapter(ai.NewGeminiClient(cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.Timeout), log)
	bookings := booking.NewService(storage, gateway, issuer, notifier, log)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Route("/api", func(r chi.Router) {
		r.Post("/events", createEvent.New(log, storage))
		r.Get("/events", getAllEvents.New(log, storage))
		r.Get("/events/{id}", getEventInfo.New(log, storage))
		r.Post("/events/{id}/description", generateDescription.New(log, assistant))
		r.Get("/recommendations", getRecommendations.New(log, storage, assistant))

		r.Post("/registrations", createRegistration.New(log, bookings))
		r.Delete("/registrations/{id}", cancelRegistration.New(log, bookings))
		r.Patch("/registrations/{id}/attendance", markAttendance.New(log, bookings))
		r.Post("/registrations/{id}/reject", rejectRegistration.New(log, bookings))
		r.Post("/checkin", checkIn.New(log, bookings))

		r.Post("/payments/create-order", createOrder.New(log, gateway))
		r.Post("/payments/verify", verifyPayment.New(log, bookings))
		r.Post("/payments/{id}/refund", refundPayment.New(log, gateway, storage))

		r.Post("/feedback", createFeedback.New(log, storage, assistant, notifier))
		r.Post("/chat/message", chatMessage.New(log, assistant))
	})

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	workerCtx, cancelWorker := context.WithCancel(context.Background())
	defer cancelWorker()

	go reminder.New(log, storage, notifier, cfg.Reminder.Interval, cfg.Reminder.Window).Run(workerCtx)

	go func() {
		if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	cancelWorker()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.Timeout)
	defer cancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
