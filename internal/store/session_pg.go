package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"vinylapi/internal/entity"
	"vinylapi/internal/usecase"
)

type SessionPG struct {
	db *pgxpool.Pool
}

func NewSessionPG(db *pgxpool.Pool) *SessionPG {
	return &SessionPG{db: db}
}

func (r *SessionPG) Create(ctx context.Context, session *entity.Session) error {
	const query = `
	INSERT INTO sessions (id, user_id, user_agent, ip_address, expires_at)
	VALUES (gen_random_uuid(), $1, $2, $3, $4)
	RETURNING id, created_at, last_used_at
	`
	return r.db.QueryRow(ctx, query,
		session.UserID,
		session.UserAgent,
		session.IPAddress,
		session.ExpiresAt,
	).Scan(&session.ID, &session.CreatedAt, &session.LastUsedAt)
}

func (r *SessionPG) GetByID(ctx context.Context, sessionID string) (entity.Session, error) {
	const query = `
	SELECT id, user_id, user_agent, ip_address, expires_at, created_at, last_used_at
	FROM sessions
	WHERE id = $1 AND expires_at > now()
	LIMIT 1
	`
	var session entity.Session
	err := r.db.QueryRow(ctx, query, sessionID).Scan(
		&session.ID,
		&session.UserID,
		&session.UserAgent,
		&session.IPAddress,
		&session.ExpiresAt,
		&session.CreatedAt,
		&session.LastUsedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Session{}, usecase.ErrNotFound
		}
		return entity.Session{}, err
	}
	return session, nil
}

// Delete is idempotent; signing out twice is not an error.
func (r *SessionPG) Delete(ctx context.Context, sessionID string) error {
	const query = `DELETE FROM sessions WHERE id = $1`
	_, err := r.db.Exec(ctx, query, sessionID)
	return err
}

func (r *SessionPG) UpdateLastUsed(ctx context.Context, sessionID string) error {
	const query = `UPDATE sessions SET last_used_at = now() WHERE id = $1`
	_, err := r.db.Exec(ctx, query, sessionID)
	return err
}

func (r *SessionPG) CleanupExpired(ctx context.Context) error {
	const query = `DELETE FROM sessions WHERE expires_at < now()`
	_, err := r.db.Exec(ctx, query)
	return err
}
