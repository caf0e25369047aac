package ports

import (
	"context"

	"github.com/renato0307/hiit/internal/domain"
)

// SessionStore persists the single in-flight session snapshot
type SessionStore interface {
	// GetSession returns nil, nil when no session is stored
	GetSession(ctx context.Context) (*domain.RuntimeSnapshot, error)
	UpsertSession(ctx context.Context, snapshot domain.RuntimeSnapshot) error
	ClearSession(ctx context.Context) error
}
