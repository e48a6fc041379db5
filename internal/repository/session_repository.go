package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrNoSession means no one is logged in on this machine.
var ErrNoSession = errors.New("not logged in")

type Session struct {
	Token   string
	UserID  string
	Email   string
	Name    string
	SavedAt time.Time
}

// SessionRepository persists the bearer token and identity returned by
// login, so later commands can run without credentials. It doubles as
// the ambient TokenSource the API client falls back to.
type SessionRepository struct {
	db *sql.DB
}

func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Save replaces the stored session wholesale; there is at most one.
func (r *SessionRepository) Save(session *Session) error {
	query := `
	INSERT INTO session (id, token, user_id, email, name, saved_at)
        VALUES (1, ?, ?, ?, ?, CURRENT_TIMESTAMP)
        ON CONFLICT (id) DO UPDATE SET
            token = excluded.token,
            user_id = excluded.user_id,
            email = excluded.email,
            name = excluded.name,
            saved_at = CURRENT_TIMESTAMP
	`

	_, err := r.db.Exec(query,
		session.Token,
		session.UserID,
		session.Email,
		session.Name,
	)

	if err != nil {
		return fmt.Errorf("Error trying to save the session: %w", err)
	}

	return nil
}

func (r *SessionRepository) Get() (*Session, error) {
	query := `SELECT token, user_id, email, name, saved_at FROM session WHERE id = 1`

	var s Session
	err := r.db.QueryRow(query).Scan(&s.Token, &s.UserID, &s.Email, &s.Name, &s.SavedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("Error trying to get the session: %w", err)
	}

	return &s, nil
}

func (r *SessionRepository) Clear() error {
	_, err := r.db.Exec(`DELETE FROM session WHERE id = 1`)
	return err
}

// Token implements client.TokenSource.
func (r *SessionRepository) Token() (string, error) {
	session, err := r.Get()
	if err != nil {
		return "", err
	}
	return session.Token, nil
}
