package repository

import (
	"context"

	"github.com/techconnect/backend/internal/domain"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) error
	Update(ctx context.Context, profile *domain.Profile) error
	GetByUserAndEvent(ctx context.Context, userID, eventID string) (*domain.Profile, error)
	// ListVisibleByEvent returns visible, onboarding-complete profiles in
	// the event, excluding the given user.
	ListVisibleByEvent(ctx context.Context, eventID, excludeUserID string) ([]*domain.Profile, error)
	SetVisibility(ctx context.Context, userID, eventID string, visible bool) error
}
