package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/s21platform/family-web/internal/config"
	"github.com/s21platform/family-web/internal/model"
)

var ErrSessionNotFound = errors.New("session not found")

type Repository struct {
	connection *sqlx.DB
}

type sessionRow struct {
	ID          string    `db:"id"`
	Token       string    `db:"token"`
	UserProfile []byte    `db:"user_profile"`
	CreatedAt   time.Time `db:"created_at"`
	ExpiresAt   time.Time `db:"expires_at"`
}

func New(cfg *config.Config) *Repository {
	conStr := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%s sslmode=disable",
		cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Database, cfg.Postgres.Host, cfg.Postgres.Port)

	conn, err := sqlx.Connect("postgres", conStr)
	if err != nil {
		log.Fatal("error connect: ", err)
	}

	return &Repository{
		connection: conn,
	}
}

func NewWithDB(db *sqlx.DB) *Repository {
	return &Repository{connection: db}
}

func (r *Repository) Close() {
	_ = r.connection.Close()
}

func (r *Repository) CreateSession(ctx context.Context, session *model.Session) (string, error) {
	profile, err := json.Marshal(session.User)
	if err != nil {
		return "", fmt.Errorf("failed to marshal user profile: %v", err)
	}

	if session.ID == "" {
		session.ID = uuid.New().String()
	}

	query, args, err := sq.Insert("sessions").
		Columns("id", "token", "user_profile", "expires_at").
		Values(session.ID, session.Token, profile, session.ExpiresAt).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.connection.ExecContext(ctx, query, args...)
	if err != nil {
		return "", fmt.Errorf("failed to create session: %v", err)
	}

	return session.ID, nil
}

func (r *Repository) GetSession(ctx context.Context, sessionID string) (*model.Session, error) {
	query, args, err := sq.Select(
		"id",
		"token",
		"user_profile",
		"created_at",
		"expires_at",
	).
		From("sessions").
		Where(sq.Eq{"id": sessionID}).
		Where(sq.Gt{"expires_at": time.Now()}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var row sessionRow
	err = r.connection.GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %v", err)
	}

	session := &model.Session{
		ID:        row.ID,
		Token:     row.Token,
		CreatedAt: row.CreatedAt,
		ExpiresAt: row.ExpiresAt,
	}
	if err := json.Unmarshal(row.UserProfile, &session.User); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user profile: %v", err)
	}

	return session, nil
}

func (r *Repository) DeleteSession(ctx context.Context, sessionID string) error {
	query, args, err := sq.Delete("sessions").
		Where(sq.Eq{"id": sessionID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.connection.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete session: %v", err)
	}

	return nil
}

func (r *Repository) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	query, args, err := sq.Delete("sessions").
		Where(sq.LtOrEq{"expires_at": now}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build sql query: %v", err)
	}

	res, err := r.connection.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %v", err)
	}

	return res.RowsAffected()
}
