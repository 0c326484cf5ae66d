package usecase

import (
	"context"

	"vinylapi/internal/entity"
)

type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, sessionID string) (entity.Session, error)
	Delete(ctx context.Context, sessionID string) error
	UpdateLastUsed(ctx context.Context, sessionID string) error
	CleanupExpired(ctx context.Context) error
}
