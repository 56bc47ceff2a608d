package repository

import (
	"context"

	"github.com/techconnect/backend/internal/domain"
)

type EventRepository interface {
	List(ctx context.Context) ([]*domain.Event, error)
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Event, error)
	// UpsertParticipant records event membership; joining twice is a no-op.
	UpsertParticipant(ctx context.Context, eventID, userID string) error
	CountParticipants(ctx context.Context, eventID string) (int, error)
}
