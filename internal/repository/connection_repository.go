package repository

import (
	"context"

	"github.com/techconnect/backend/internal/domain"
)

type ConnectionRepository interface {
	Create(ctx context.Context, conn *domain.Connection) error
	GetByID(ctx context.Context, id string) (*domain.Connection, error)
	// GetBetween looks up the edge in either direction.
	GetBetween(ctx context.Context, eventID, userID, otherUserID string) (*domain.Connection, error)
	ListForUser(ctx context.Context, eventID, userID string) ([]*domain.Connection, error)
	UpdateStatus(ctx context.Context, id, status string) error
}
