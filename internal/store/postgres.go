package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ayush/multiuser-calendar/internal/apperror"
	"github.com/ayush/multiuser-calendar/internal/calendar"
	"github.com/ayush/multiuser-calendar/internal/models"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint violations.
const pgUniqueViolation = "23505"

// PostgresStore handles user and event CRUD against PostgreSQL.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Migrate creates the users and events tables if they don't exist.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			id         BIGSERIAL PRIMARY KEY,
			username   VARCHAR(80)  UNIQUE NOT NULL,
			password   VARCHAR(255) NOT NULL,
			created_at TIMESTAMPTZ  DEFAULT NOW()
		)
	`)
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS events (
			id         BIGSERIAL PRIMARY KEY,
			user_id    BIGINT       NOT NULL REFERENCES users(id),
			date       VARCHAR(10)  NOT NULL,
			event_text VARCHAR(255) NOT NULL,
			created_at TIMESTAMPTZ  DEFAULT NOW()
		)
	`)
	return err
}

// CreateUser inserts a new user with an already-hashed password.
func (s *PostgresStore) CreateUser(ctx context.Context, username, hashedPassword string) (*models.User, error) {
	var u models.User
	err := s.pool.QueryRow(ctx,
		`INSERT INTO users (username, password)
		 VALUES ($1, $2)
		 RETURNING id, username, created_at`,
		username, hashedPassword,
	).Scan(&u.ID, &u.Username, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, apperror.NewDuplicateUsername("username already exists")
		}
		return nil, apperror.NewStorage("create user", err)
	}
	return &u, nil
}

func (s *PostgresStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	err := s.pool.QueryRow(ctx,
		`SELECT id, username, password, created_at FROM users WHERE username = $1`, username,
	).Scan(&u.ID, &u.Username, &u.Password, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("user not found")
		}
		return nil, apperror.NewStorage("get user by username", err)
	}
	return &u, nil
}

func (s *PostgresStore) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	var u models.User
	err := s.pool.QueryRow(ctx,
		`SELECT id, username, created_at FROM users WHERE id = $1`, id,
	).Scan(&u.ID, &u.Username, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("user not found")
		}
		return nil, apperror.NewStorage("get user by id", err)
	}
	return &u, nil
}

// CreateEvent inserts a single event row. date must already be in the
// canonical zero-padded YYYY-MM-DD form.
func (s *PostgresStore) CreateEvent(ctx context.Context, userID int64, date, text string) (*models.Event, error) {
	var e models.Event
	err := s.pool.QueryRow(ctx,
		`INSERT INTO events (user_id, date, event_text)
		 VALUES ($1, $2, $3)
		 RETURNING id, user_id, date, event_text, created_at`,
		userID, date, text,
	).Scan(&e.ID, &e.UserID, &e.Date, &e.Text, &e.CreatedAt)
	if err != nil {
		return nil, apperror.NewStorage("create event", err)
	}
	return &e, nil
}

// ListEventsByMonth returns the user's events whose date falls in the given
// year and month, ordered by date then insertion order.
func (s *PostgresStore) ListEventsByMonth(ctx context.Context, userID int64, year, month int) ([]models.Event, error) {
	prefix := calendar.MonthPrefix(year, month)
	rows, err := s.pool.Query(ctx,
		`SELECT id, user_id, date, event_text, created_at
		 FROM events
		 WHERE user_id = $1 AND date LIKE $2
		 ORDER BY date, id`,
		userID, fmt.Sprintf("%s-%%", prefix),
	)
	if err != nil {
		return nil, apperror.NewStorage("list events", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(&e.ID, &e.UserID, &e.Date, &e.Text, &e.CreatedAt); err != nil {
			return nil, apperror.NewStorage("scan event", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewStorage("list events", err)
	}
	return events, nil
}
