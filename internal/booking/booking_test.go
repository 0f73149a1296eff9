package booking

import (
	"context"
	"testing"
	"time"

	"stagedeck/internal/booking/mocks"
	"stagedeck/internal/lib/logger/handlers/slogdiscard"
	"stagedeck/internal/models"
	"stagedeck/internal/notify"
	"stagedeck/internal/payments"
	"stagedeck/internal/qr"
	"stagedeck/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type serviceMocks struct {
	storage  *mocks.Storage
	gateway  *mocks.Gateway
	issuer   *mocks.Issuer
	notifier *mocks.Dispatcher
}

func newService(t *testing.T) (*Service, serviceMocks) {
	m := serviceMocks{
		storage:  mocks.NewStorage(t),
		gateway:  mocks.NewGateway(t),
		issuer:   mocks.NewIssuer(t),
		notifier: mocks.NewDispatcher(t),
	}

	svc := NewService(m.storage, m.gateway, m.issuer, m.notifier, slogdiscard.NewDiscardLogger())

	return svc, m
}

func scheduledEvent(price float64) *models.Event {
	return &models.Event{
		ID:       7,
		Title:    "GopherCon",
		Venue:    "Main Hall",
		StartsAt: time.Date(2026, 9, 12, 18, 0, 0, 0, time.UTC),
		Capacity: 100,
		Price:    price,
		Status:   models.EventStatusScheduled,
	}
}

func TestRegisterFreeEvent(t *testing.T) {
	t.Parallel()

	svc, m := newService(t)

	m.storage.On("GetEvent", mock.Anything, 7).Return(scheduledEvent(0), nil)
	m.storage.On("CreateRegistration", mock.Anything, mock.MatchedBy(func(reg *models.Registration) bool {
		return reg.Status == models.RegistrationStatusConfirmed && reg.TicketCode != ""
	})).Return(10, nil)
	m.issuer.On("Issue", mock.Anything).Return([]byte("png"), qr.Payload{}, nil)
	m.storage.On("SaveRegistrationQR", mock.Anything, 10, []byte("png")).Return(nil)
	m.notifier.On("Send", notify.KindRegistrationConfirmed, "ada@example.com", mock.Anything).
		Return(notify.Result{Success: true})

	got, err := svc.Register(context.Background(), "user123", "Ada", "ada@example.com", 7, 2)
	require.NoError(t, err)

	assert.Equal(t, 10, got.Registration.ID)
	assert.Equal(t, models.RegistrationStatusConfirmed, got.Registration.Status)
	assert.Equal(t, []byte("png"), got.Registration.QRImage)
	assert.Nil(t, got.Payment)
}

func TestRegisterFreeEventNotificationFailureIsSwallowed(t *testing.T) {
	t.Parallel()

	svc, m := newService(t)

	m.storage.On("GetEvent", mock.Anything, 7).Return(scheduledEvent(0), nil)
	m.storage.On("CreateRegistration", mock.Anything, mock.Anything).Return(10, nil)
	m.issuer.On("Issue", mock.Anything).Return([]byte("png"), qr.Payload{}, nil)
	m.storage.On("SaveRegistrationQR", mock.Anything, 10, []byte("png")).Return(nil)
	m.notifier.On("Send", notify.KindRegistrationConfirmed, mock.Anything, mock.Anything).
		Return(notify.Result{Err: "smtp down"})

	_, err := svc.Register(context.Background(), "user123", "Ada", "ada@example.com", 7, 1)
	require.NoError(t, err)
}

func TestRegisterPricedEvent(t *testing.T) {
	t.Parallel()

	svc, m := newService(t)

	m.storage.On("GetEvent", mock.Anything, 7).Return(scheduledEvent(25), nil)
	m.storage.On("CreateRegistration", mock.Anything, mock.MatchedBy(func(reg *models.Registration) bool {
		return reg.Status == models.RegistrationStatusPending
	})).Return(10, nil)
	m.gateway.On("CreateIntent", mock.Anything, 50.0, 7, "user123", "ada@example.com").
		Return(&payments.Intent{IntentID: "pi_1", ClientSecret: "cs_1", Amount: 50, Status: "requires_payment_method"}, nil)
	m.storage.On("CreatePayment", mock.Anything, mock.MatchedBy(func(p *models.Payment) bool {
		return p.IntentID == "pi_1" && p.RegistrationID == 10 && p.Status == models.PaymentStatusCreated
	})).Return(1, nil)

	got, err := svc.Register(context.Background(), "user123", "Ada", "ada@example.com", 7, 2)
	require.NoError(t, err)

	assert.Equal(t, models.RegistrationStatusPending, got.Registration.Status)
	require.NotNil(t, got.Payment)
	assert.Equal(t, "pi_1", got.Payment.IntentID)
}

func TestRegisterGatewayFailureKeepsPendingRegistration(t *testing.T) {
	t.Parallel()

	svc, m := newService(t)

	m.storage.On("GetEvent", mock.Anything, 7).Return(scheduledEvent(25), nil)
	m.storage.On("CreateRegistration", mock.Anything, mock.Anything).Return(10, nil)
	m.gateway.On("CreateIntent", mock.Anything, 25.0, 7, "user123", "ada@example.com").
		Return(nil, payments.ErrGatewayUnconfigured)

	got, err := svc.Register(context.Background(), "user123", "Ada", "ada@example.com", 7, 1)

	require.ErrorIs(t, err, ErrPaymentUnavailable)
	require.NotNil(t, got)
	assert.Equal(t, 10, got.Registration.ID)
	assert.Equal(t, models.RegistrationStatusPending, got.Registration.Status)
}

func TestRegisterStorageErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		setup       func(m serviceMocks)
		expectedErr error
	}{
		{
			name: "Event not found",
			setup: func(m serviceMocks) {
				m.storage.On("GetEvent", mock.Anything, 7).Return(nil, storage.ErrEventNotFound)
			},
			expectedErr: storage.ErrEventNotFound,
		},
		{
			name: "Event closed",
			setup: func(m serviceMocks) {
				m.storage.On("GetEvent", mock.Anything, 7).Return(scheduledEvent(0), nil)
				m.storage.On("CreateRegistration", mock.Anything, mock.Anything).Return(0, storage.ErrEventClosed)
			},
			expectedErr: storage.ErrEventClosed,
		},
		{
			name: "Capacity exceeded",
			setup: func(m serviceMocks) {
				m.storage.On("GetEvent", mock.Anything, 7).Return(scheduledEvent(0), nil)
				m.storage.On("CreateRegistration", mock.Anything, mock.Anything).Return(0, storage.ErrCapacityExceeded)
			},
			expectedErr: storage.ErrCapacityExceeded,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc, m := newService(t)
			tc.setup(m)

			_, err := svc.Register(context.Background(), "user123", "Ada", "ada@example.com", 7, 1)
			assert.ErrorIs(t, err, tc.expectedErr)
		})
	}
}

func TestVerifyPaymentSuccess(t *testing.T) {
	t.Parallel()

	svc, m := newService(t)

	reg := &models.Registration{
		ID: 10, EventID: 7, UserID: "user123", UserName: "Ada",
		Email: "ada@example.com", Status: models.RegistrationStatusConfirmed,
	}

	m.storage.On("GetPaymentByIntent", mock.Anything, "pi_1").
		Return(&models.Payment{RegistrationID: 10, IntentID: "pi_1", Amount: 50, Status: models.PaymentStatusCreated}, nil)
	m.gateway.On("Verify", mock.Anything, "pi_1").
		Return(&payments.VerifyResult{Succeeded: true, Status: "succeeded", Amount: 50}, nil)
	m.storage.On("UpdatePaymentStatus", mock.Anything, "pi_1", models.PaymentStatusSucceeded).Return(nil)
	m.storage.On("ConfirmRegistration", mock.Anything, 10).Return(nil)
	m.storage.On("GetRegistration", mock.Anything, 10).Return(reg, nil)
	m.issuer.On("Issue", reg).Return([]byte("png"), qr.Payload{}, nil)
	m.storage.On("SaveRegistrationQR", mock.Anything, 10, []byte("png")).Return(nil)
	m.storage.On("GetEvent", mock.Anything, 7).Return(scheduledEvent(25), nil)
	m.notifier.On("Send", notify.KindPaymentConfirmed, "ada@example.com", mock.Anything).
		Return(notify.Result{Success: true})

	outcome, err := svc.VerifyPayment(context.Background(), "pi_1")
	require.NoError(t, err)

	assert.True(t, outcome.Success)
	assert.Equal(t, "succeeded", outcome.Status)
	assert.Equal(t, 50.0, outcome.Amount)
}

func TestVerifyPaymentIdempotentWhenAlreadySucceeded(t *testing.T) {
	t.Parallel()

	svc, m := newService(t)

	m.storage.On("GetPaymentByIntent", mock.Anything, "pi_1").
		Return(&models.Payment{RegistrationID: 10, IntentID: "pi_1", Amount: 50, Status: models.PaymentStatusSucceeded}, nil)

	outcome, err := svc.VerifyPayment(context.Background(), "pi_1")
	require.NoError(t, err)

	assert.True(t, outcome.Success)
	m.gateway.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything)
}

func TestVerifyPaymentNotSucceededYet(t *testing.T) {
	t.Parallel()

	svc, m := newService(t)

	m.storage.On("GetPaymentByIntent", mock.Anything, "pi_1").
		Return(&models.Payment{RegistrationID: 10, IntentID: "pi_1", Status: models.PaymentStatusCreated}, nil)
	m.gateway.On("Verify", mock.Anything, "pi_1").
		Return(&payments.VerifyResult{Status: "requires_payment_method", Amount: 50}, nil)

	outcome, err := svc.VerifyPayment(context.Background(), "pi_1")
	require.NoError(t, err)

	assert.False(t, outcome.Success)
	assert.Equal(t, "requires_payment_method", outcome.Status)
	m.storage.AssertNotCalled(t, "ConfirmRegistration", mock.Anything, mock.Anything)
}

func TestVerifyPaymentCancelledRegistrationStaysCancelled(t *testing.T) {
	t.Parallel()

	svc, m := newService(t)

	reg := &models.Registration{
		ID: 10, EventID: 7, UserID: "user123",
		Email: "ada@example.com", Status: models.RegistrationStatusCancelled,
	}

	m.storage.On("GetPaymentByIntent", mock.Anything, "pi_1").
		Return(&models.Payment{RegistrationID: 10, IntentID: "pi_1", Amount: 50, Status: models.PaymentStatusCreated}, nil)
	m.gateway.On("Verify", mock.Anything, "pi_1").
		Return(&payments.VerifyResult{Succeeded: true, Status: "succeeded", Amount: 50}, nil)
	m.storage.On("UpdatePaymentStatus", mock.Anything, "pi_1", models.PaymentStatusSucceeded).Return(nil)
	m.storage.On("GetRegistration", mock.Anything, 10).Return(reg, nil)

	_, err := svc.VerifyPayment(context.Background(), "pi_1")
	assert.ErrorIs(t, err, storage.ErrRegistrationTerminal)

	m.storage.AssertNotCalled(t, "ConfirmRegistration", mock.Anything, mock.Anything)
	m.issuer.AssertNotCalled(t, "Issue", mock.Anything)
	m.notifier.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestVerifyPaymentUnknownIntent(t *testing.T) {
	t.Parallel()

	svc, m := newService(t)

	m.storage.On("GetPaymentByIntent", mock.Anything, "pi_missing").Return(nil, storage.ErrPaymentNotFound)

	_, err := svc.VerifyPayment(context.Background(), "pi_missing")
	assert.ErrorIs(t, err, storage.ErrPaymentNotFound)
}

func TestCancel(t *testing.T) {
	t.Parallel()

	reg := func(status string) *models.Registration {
		return &models.Registration{
			ID: 10, EventID: 7, UserID: "user123", UserName: "Ada",
			Email: "ada@example.com", Status: status,
		}
	}

	t.Run("Owner cancels", func(t *testing.T) {
		t.Parallel()

		svc, m := newService(t)
		m.storage.On("GetRegistration", mock.Anything, 10).Return(reg(models.RegistrationStatusConfirmed), nil)
		m.storage.On("UpdateRegistrationStatus", mock.Anything, 10, models.RegistrationStatusCancelled).Return(nil)
		m.storage.On("GetEvent", mock.Anything, 7).Return(scheduledEvent(0), nil)
		m.notifier.On("Send", notify.KindStatusUpdate, "ada@example.com", mock.Anything).
			Return(notify.Result{Success: true})

		got, err := svc.Cancel(context.Background(), 10, "user123", false)
		require.NoError(t, err)
		assert.Equal(t, models.RegistrationStatusCancelled, got.Status)
	})

	t.Run("Admin cancels someone else's registration", func(t *testing.T) {
		t.Parallel()

		svc, m := newService(t)
		m.storage.On("GetRegistration", mock.Anything, 10).Return(reg(models.RegistrationStatusPending), nil)
		m.storage.On("UpdateRegistrationStatus", mock.Anything, 10, models.RegistrationStatusCancelled).Return(nil)
		m.storage.On("GetEvent", mock.Anything, 7).Return(scheduledEvent(0), nil)
		m.notifier.On("Send", notify.KindStatusUpdate, mock.Anything, mock.Anything).
			Return(notify.Result{Success: true})

		got, err := svc.Cancel(context.Background(), 10, "admin1", true)
		require.NoError(t, err)
		assert.Equal(t, models.RegistrationStatusCancelled, got.Status)
	})

	t.Run("Stranger is forbidden", func(t *testing.T) {
		t.Parallel()

		svc, m := newService(t)
		m.storage.On("GetRegistration", mock.Anything, 10).Return(reg(models.RegistrationStatusConfirmed), nil)

		_, err := svc.Cancel(context.Background(), 10, "someone-else", false)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("Already cancelled is idempotent", func(t *testing.T) {
		t.Parallel()

		svc, m := newService(t)
		m.storage.On("GetRegistration", mock.Anything, 10).Return(reg(models.RegistrationStatusCancelled), nil)

		got, err := svc.Cancel(context.Background(), 10, "user123", false)
		require.NoError(t, err)
		assert.Equal(t, models.RegistrationStatusCancelled, got.Status)
		m.storage.AssertNotCalled(t, "UpdateRegistrationStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Rejected registration stays rejected", func(t *testing.T) {
		t.Parallel()

		svc, m := newService(t)
		m.storage.On("GetRegistration", mock.Anything, 10).Return(reg(models.RegistrationStatusRejected), nil)

		_, err := svc.Cancel(context.Background(), 10, "user123", false)
		assert.ErrorIs(t, err, storage.ErrRegistrationTerminal)
		m.storage.AssertNotCalled(t, "UpdateRegistrationStatus", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestReject(t *testing.T) {
	t.Parallel()

	reg := func(status string) *models.Registration {
		return &models.Registration{
			ID: 10, EventID: 7, UserID: "user123", UserName: "Ada",
			Email: "ada@example.com", Status: status,
		}
	}

	t.Run("Pending registration is rejected and mailed", func(t *testing.T) {
		t.Parallel()

		svc, m := newService(t)
		m.storage.On("GetRegistration", mock.Anything, 10).Return(reg(models.RegistrationStatusPending), nil)
		m.storage.On("UpdateRegistrationStatus", mock.Anything, 10, models.RegistrationStatusRejected).Return(nil)
		m.storage.On("GetEvent", mock.Anything, 7).Return(scheduledEvent(0), nil)
		m.notifier.On("Send", notify.KindStatusUpdate, "ada@example.com", mock.Anything).
			Return(notify.Result{Success: true})

		got, err := svc.Reject(context.Background(), 10)
		require.NoError(t, err)
		assert.Equal(t, models.RegistrationStatusRejected, got.Status)
	})

	t.Run("Already rejected is idempotent", func(t *testing.T) {
		t.Parallel()

		svc, m := newService(t)
		m.storage.On("GetRegistration", mock.Anything, 10).Return(reg(models.RegistrationStatusRejected), nil)

		got, err := svc.Reject(context.Background(), 10)
		require.NoError(t, err)
		assert.Equal(t, models.RegistrationStatusRejected, got.Status)
		m.storage.AssertNotCalled(t, "UpdateRegistrationStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Cancelled registration cannot be rejected", func(t *testing.T) {
		t.Parallel()

		svc, m := newService(t)
		m.storage.On("GetRegistration", mock.Anything, 10).Return(reg(models.RegistrationStatusCancelled), nil)

		_, err := svc.Reject(context.Background(), 10)
		assert.ErrorIs(t, err, storage.ErrRegistrationTerminal)
		m.storage.AssertNotCalled(t, "UpdateRegistrationStatus", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestMarkAttendance(t *testing.T) {
	t.Parallel()

	t.Run("First flip", func(t *testing.T) {
		t.Parallel()

		svc, m := newService(t)
		m.storage.On("GetRegistration", mock.Anything, 10).
			Return(&models.Registration{ID: 10, Status: models.RegistrationStatusConfirmed}, nil)
		m.storage.On("SetAttendance", mock.Anything, 10, true).Return(nil)

		got, err := svc.MarkAttendance(context.Background(), 10)
		require.NoError(t, err)
		assert.True(t, got.Attended)
	})

	t.Run("Idempotent", func(t *testing.T) {
		t.Parallel()

		svc, m := newService(t)
		m.storage.On("GetRegistration", mock.Anything, 10).
			Return(&models.Registration{ID: 10, Attended: true}, nil)

		got, err := svc.MarkAttendance(context.Background(), 10)
		require.NoError(t, err)
		assert.True(t, got.Attended)
		m.storage.AssertNotCalled(t, "SetAttendance", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCheckIn(t *testing.T) {
	t.Parallel()

	payload := qr.Payload{RegistrationID: 10, EventID: 7, UserID: "user123"}

	t.Run("Success", func(t *testing.T) {
		t.Parallel()

		svc, m := newService(t)
		m.issuer.On("Validate", []byte("raw")).Return(payload, nil)
		m.storage.On("GetRegistration", mock.Anything, 10).
			Return(&models.Registration{ID: 10, EventID: 7, UserID: "user123", Status: models.RegistrationStatusConfirmed}, nil)
		m.storage.On("SetAttendance", mock.Anything, 10, true).Return(nil)

		got, err := svc.CheckIn(context.Background(), []byte("raw"))
		require.NoError(t, err)
		assert.True(t, got.Attended)
	})

	t.Run("Malformed payload", func(t *testing.T) {
		t.Parallel()

		svc, m := newService(t)
		m.issuer.On("Validate", []byte("raw")).Return(qr.Payload{}, qr.ErrMalformedPayload)

		_, err := svc.CheckIn(context.Background(), []byte("raw"))
		assert.ErrorIs(t, err, qr.ErrMalformedPayload)
	})

	t.Run("Payload does not match stored registration", func(t *testing.T) {
		t.Parallel()

		svc, m := newService(t)
		m.issuer.On("Validate", []byte("raw")).Return(payload, nil)
		m.storage.On("GetRegistration", mock.Anything, 10).
			Return(&models.Registration{ID: 10, EventID: 99, UserID: "user123", Status: models.RegistrationStatusConfirmed}, nil)

		_, err := svc.CheckIn(context.Background(), []byte("raw"))
		assert.ErrorIs(t, err, ErrPayloadMismatch)
	})

	t.Run("Pending registration cannot check in", func(t *testing.T) {
		t.Parallel()

		svc, m := newService(t)
		m.issuer.On("Validate", []byte("raw")).Return(payload, nil)
		m.storage.On("GetRegistration", mock.Anything, 10).
			Return(&models.Registration{ID: 10, EventID: 7, UserID: "user123", Status: models.RegistrationStatusPending}, nil)

		_, err := svc.CheckIn(context.Background(), []byte("raw"))
		assert.ErrorIs(t, err, ErrNotConfirmed)
	})
}
