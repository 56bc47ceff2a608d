package event

import (
	"context"
	"errors"
	"fmt"

	"github.com/techconnect/backend/internal/domain"
	"github.com/techconnect/backend/internal/repository"
)

type EventUseCase struct {
	eventRepo   repository.EventRepository
	profileRepo repository.ProfileRepository
}

func NewEventUseCase(eventRepo repository.EventRepository, profileRepo repository.ProfileRepository) *EventUseCase {
	return &EventUseCase{
		eventRepo:   eventRepo,
		profileRepo: profileRepo,
	}
}

// JoinResult tells the client where to send the user next.
type JoinResult struct {
	Event              *domain.Event `json:"event"`
	OnboardingRequired bool          `json:"onboarding_required"`
}

// Join records event membership (idempotent) and reports whether the
// user still needs to complete onboarding for this event. Invite links
// carry the slug while the app uses IDs, so both are accepted.
func (uc *EventUseCase) Join(ctx context.Context, slugOrID, userID string) (*JoinResult, error) {
	ev, err := uc.eventRepo.GetBySlug(ctx, slugOrID)
	if errors.Is(err, domain.ErrEventNotFound) {
		ev, err = uc.eventRepo.GetByID(ctx, slugOrID)
	}
	if err != nil {
		return nil, err
	}

	if err := uc.eventRepo.UpsertParticipant(ctx, ev.ID, userID); err != nil {
		return nil, fmt.Errorf("failed to join event: %w", err)
	}

	onboardingRequired := true
	profile, err := uc.profileRepo.GetByUserAndEvent(ctx, userID, ev.ID)
	if err == nil {
		onboardingRequired = !profile.OnboardingComplete
	} else if !errors.Is(err, domain.ErrProfileNotFound) {
		return nil, fmt.Errorf("failed to check profile: %w", err)
	}

	return &JoinResult{Event: ev, OnboardingRequired: onboardingRequired}, nil
}

// List returns all events, soonest first.
func (uc *EventUseCase) List(ctx context.Context) ([]*domain.Event, error) {
	return uc.eventRepo.List(ctx)
}

// Get returns one event with its participant count.
func (uc *EventUseCase) Get(ctx context.Context, eventID string) (*domain.Event, int, error) {
	ev, err := uc.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, 0, err
	}
	count, err := uc.eventRepo.CountParticipants(ctx, eventID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count participants: %w", err)
	}
	return ev, count, nil
}
