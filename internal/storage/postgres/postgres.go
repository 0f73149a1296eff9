package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"stagedeck/internal/config"
	"stagedeck/internal/models"
	"stagedeck/internal/storage"

	_ "github.com/lib/pq"
)

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func (s *Storage) CreateEvent(ctx context.Context, e *models.Event) (int, error) {
	query := `
		INSERT INTO events (title, description, category, starts_at, venue, capacity, price, status, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	var id int
	err := s.DB.QueryRowContext(ctx, query,
		e.Title, e.Description, e.Category, e.StartsAt, e.Venue, e.Capacity, e.Price, e.Status, e.CreatedBy,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create event: %w", err)
	}

	return id, nil
}

func (s *Storage) GetEvent(ctx context.Context, id int) (*models.Event, error) {
	query := `
		SELECT id, title, description, category, starts_at, venue, capacity, price, status, created_by, created_at
		FROM events
		WHERE id = $1`

	var event models.Event
	err := s.DB.QueryRowContext(ctx, query, id).Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.Category,
		&event.StartsAt,
		&event.Venue,
		&event.Capacity,
		&event.Price,
		&event.Status,
		&event.CreatedBy,
		&event.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	confirmedQuery := `
		SELECT COALESCE(SUM(tickets), 0)
		FROM registrations
		WHERE event_id = $1 AND status = 'confirmed'`

	err = s.DB.QueryRowContext(ctx, confirmedQuery, id).Scan(&event.Confirmed)
	if err != nil {
		return nil, fmt.Errorf("failed to count confirmed registrations: %w", err)
	}

	return &event, nil
}

func (s *Storage) GetAllEvents(ctx context.Context) ([]models.Event, error) {
	query := `
		SELECT e.id, e.title, e.description, e.category, e.starts_at, e.venue, e.capacity,
		       e.price, e.status, e.created_by, e.created_at,
		       COALESCE(SUM(r.tickets) FILTER (WHERE r.status = 'confirmed'), 0)
		FROM events e
		LEFT JOIN registrations r ON e.id = r.event_id
		GROUP BY e.id
		ORDER BY e.starts_at ASC`

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var event models.Event
		err := rows.Scan(
			&event.ID,
			&event.Title,
			&event.Description,
			&event.Category,
			&event.StartsAt,
			&event.Venue,
			&event.Capacity,
			&event.Price,
			&event.Status,
			&event.CreatedBy,
			&event.CreatedAt,
			&event.Confirmed,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}

		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	return events, nil
}

// CreateRegistration inserts a registration after a capacity check done
// under a row lock on the event, so two bookings racing on the last
// seats cannot both commit.
func (s *Storage) CreateRegistration(ctx context.Context, reg *models.Registration) (int, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var capacity int
	var status string
	lockQuery := `
		SELECT capacity, status
		FROM events
		WHERE id = $1
		FOR UPDATE`

	err = tx.QueryRowContext(ctx, lockQuery, reg.EventID).Scan(&capacity, &status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, storage.ErrEventNotFound
		}
		return 0, fmt.Errorf("failed to lock event: %w", err)
	}

	if status != models.EventStatusScheduled {
		return 0, storage.ErrEventClosed
	}

	var confirmed int
	countQuery := `
		SELECT COALESCE(SUM(tickets), 0)
		FROM registrations
		WHERE event_id = $1 AND status = 'confirmed'`

	err = tx.QueryRowContext(ctx, countQuery, reg.EventID).Scan(&confirmed)
	if err != nil {
		return 0, fmt.Errorf("failed to count confirmed registrations: %w", err)
	}

	if confirmed+reg.Tickets > capacity {
		return 0, storage.ErrCapacityExceeded
	}

	insertQuery := `
		INSERT INTO registrations (event_id, user_id, user_name, email, tickets, status, ticket_code, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id`

	var id int
	err = tx.QueryRowContext(ctx, insertQuery,
		reg.EventID, reg.UserID, reg.UserName, reg.Email, reg.Tickets, reg.Status, reg.TicketCode,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create registration: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return id, nil
}

func (s *Storage) GetRegistration(ctx context.Context, id int) (*models.Registration, error) {
	query := `
		SELECT id, event_id, user_id, user_name, email, tickets, status, attended, ticket_code, qr_image, reminded, created_at
		FROM registrations
		WHERE id = $1`

	var reg models.Registration
	var qr []byte
	err := s.DB.QueryRowContext(ctx, query, id).Scan(
		&reg.ID,
		&reg.EventID,
		&reg.UserID,
		&reg.UserName,
		&reg.Email,
		&reg.Tickets,
		&reg.Status,
		&reg.Attended,
		&reg.TicketCode,
		&qr,
		&reg.Reminded,
		&reg.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("failed to get registration: %w", err)
	}
	reg.QRImage = qr

	return &reg, nil
}

// ConfirmRegistration flips a registration to confirmed, re-checking
// capacity under the event row lock: a pending registration does not
// hold a seat, confirmation claims it. Cancelled and rejected are
// terminal; a terminal registration is never re-confirmed.
func (s *Storage) ConfirmRegistration(ctx context.Context, id int) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var eventID, tickets int
	var regStatus string
	regQuery := `
		SELECT event_id, tickets, status
		FROM registrations
		WHERE id = $1`

	err = tx.QueryRowContext(ctx, regQuery, id).Scan(&eventID, &tickets, &regStatus)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.ErrRegistrationNotFound
		}
		return fmt.Errorf("failed to get registration: %w", err)
	}

	if regStatus == models.RegistrationStatusConfirmed {
		return nil
	}

	if regStatus == models.RegistrationStatusCancelled || regStatus == models.RegistrationStatusRejected {
		return storage.ErrRegistrationTerminal
	}

	var capacity int
	lockQuery := `
		SELECT capacity
		FROM events
		WHERE id = $1
		FOR UPDATE`

	err = tx.QueryRowContext(ctx, lockQuery, eventID).Scan(&capacity)
	if err != nil {
		return fmt.Errorf("failed to lock event: %w", err)
	}

	var confirmed int
	countQuery := `
		SELECT COALESCE(SUM(tickets), 0)
		FROM registrations
		WHERE event_id = $1 AND status = 'confirmed'`

	err = tx.QueryRowContext(ctx, countQuery, eventID).Scan(&confirmed)
	if err != nil {
		return fmt.Errorf("failed to count confirmed registrations: %w", err)
	}

	if confirmed+tickets > capacity {
		return storage.ErrCapacityExceeded
	}

	updateQuery := `
		UPDATE registrations
		SET status = 'confirmed'
		WHERE id = $1`

	if _, err = tx.ExecContext(ctx, updateQuery, id); err != nil {
		return fmt.Errorf("failed to confirm registration: %w", err)
	}

	return tx.Commit()
}

func (s *Storage) UpdateRegistrationStatus(ctx context.Context, id int, status string) error {
	result, err := s.DB.ExecContext(ctx,
		`UPDATE registrations SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("failed to update registration status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if affected == 0 {
		return storage.ErrRegistrationNotFound
	}

	return nil
}

func (s *Storage) SetAttendance(ctx context.Context, id int, attended bool) error {
	result, err := s.DB.ExecContext(ctx,
		`UPDATE registrations SET attended = $2 WHERE id = $1`, id, attended)
	if err != nil {
		return fmt.Errorf("failed to set attendance: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if affected == 0 {
		return storage.ErrRegistrationNotFound
	}

	return nil
}

func (s *Storage) SaveRegistrationQR(ctx context.Context, id int, image []byte) error {
	_, err := s.DB.ExecContext(ctx,
		`UPDATE registrations SET qr_image = $2 WHERE id = $1`, id, image)
	if err != nil {
		return fmt.Errorf("failed to save registration qr: %w", err)
	}

	return nil
}

func (s *Storage) CreatePayment(ctx context.Context, p *models.Payment) (int, error) {
	query := `
		INSERT INTO payments (event_id, user_id, registration_id, amount, intent_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id`

	var id int
	err := s.DB.QueryRowContext(ctx, query,
		p.EventID, p.UserID, p.RegistrationID, p.Amount, p.IntentID, p.Status,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create payment: %w", err)
	}

	return id, nil
}

func (s *Storage) GetPaymentByIntent(ctx context.Context, intentID string) (*models.Payment, error) {
	query := `
		SELECT id, event_id, user_id, registration_id, amount, intent_id, status, created_at
		FROM payments
		WHERE intent_id = $1`

	var p models.Payment
	err := s.DB.QueryRowContext(ctx, query, intentID).Scan(
		&p.ID,
		&p.EventID,
		&p.UserID,
		&p.RegistrationID,
		&p.Amount,
		&p.IntentID,
		&p.Status,
		&p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}

	return &p, nil
}

func (s *Storage) UpdatePaymentStatus(ctx context.Context, intentID, status string) error {
	result, err := s.DB.ExecContext(ctx,
		`UPDATE payments SET status = $2 WHERE intent_id = $1`, intentID, status)
	if err != nil {
		return fmt.Errorf("failed to update payment status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if affected == 0 {
		return storage.ErrPaymentNotFound
	}

	return nil
}

func (s *Storage) CreateFeedback(ctx context.Context, f *models.Feedback) (int, error) {
	var exists bool
	err := s.DB.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM feedback WHERE event_id = $1 AND user_id = $2)`,
		f.EventID, f.UserID,
	).Scan(&exists)
	if err != nil {
		return 0, fmt.Errorf("failed to check existing feedback: %w", err)
	}
	if exists {
		return 0, storage.ErrDuplicateFeedback
	}

	query := `
		INSERT INTO feedback (event_id, user_id, rating, comment, sentiment, score, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id`

	var id int
	err = s.DB.QueryRowContext(ctx, query,
		f.EventID, f.UserID, f.Rating, f.Comment, f.Sentiment, f.Score,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create feedback: %w", err)
	}

	return id, nil
}

// DueReminders returns confirmed registrations for events starting
// within the window that have not been reminded yet.
func (s *Storage) DueReminders(ctx context.Context, window time.Duration) ([]models.Registration, error) {
	query := `
		SELECT r.id, r.event_id, r.user_id, r.user_name, r.email, r.tickets, r.status,
		       r.attended, r.ticket_code, r.reminded, r.created_at
		FROM registrations r
		JOIN events e ON e.id = r.event_id
		WHERE r.status = 'confirmed'
		  AND r.reminded = false
		  AND e.status = 'scheduled'
		  AND e.starts_at BETWEEN NOW() AND NOW() + $1 * INTERVAL '1 second'`

	rows, err := s.DB.QueryContext(ctx, query, int(window.Seconds()))
	if err != nil {
		return nil, fmt.Errorf("failed to get due reminders: %w", err)
	}
	defer rows.Close()

	var regs []models.Registration
	for rows.Next() {
		var reg models.Registration
		err := rows.Scan(
			&reg.ID,
			&reg.EventID,
			&reg.UserID,
			&reg.UserName,
			&reg.Email,
			&reg.Tickets,
			&reg.Status,
			&reg.Attended,
			&reg.TicketCode,
			&reg.Reminded,
			&reg.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan registration: %w", err)
		}

		regs = append(regs, reg)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating registrations: %w", err)
	}

	return regs, nil
}

func (s *Storage) MarkReminded(ctx context.Context, id int) error {
	_, err := s.DB.ExecContext(ctx,
		`UPDATE registrations SET reminded = true WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to mark registration reminded: %w", err)
	}

	return nil
}
