package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/techconnect/backend/internal/domain"
	"github.com/techconnect/backend/internal/repository"
)

type ProfileUseCase struct {
	profileRepo    repository.ProfileRepository
	userRepo       repository.UserRepository
	connectionRepo repository.ConnectionRepository
}

func NewProfileUseCase(
	profileRepo repository.ProfileRepository,
	userRepo repository.UserRepository,
	connectionRepo repository.ConnectionRepository,
) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo:    profileRepo,
		userRepo:       userRepo,
		connectionRepo: connectionRepo,
	}
}

// SaveProfileRequest is the onboarding payload. Saving always completes
// onboarding; subsequent saves update in place.
type SaveProfileRequest struct {
	AboutMe     *string  `json:"about_me" binding:"omitempty,max=1000"`
	CurrentRole *string  `json:"current_role" binding:"omitempty,max=100"`
	Company     *string  `json:"company" binding:"omitempty,max=100"`
	Skills      []string `json:"skills" binding:"omitempty,max=20,dive,notblank,max=50"`
	Interests   []string `json:"interests" binding:"omitempty,max=20,dive,notblank,max=50"`
	LookingFor  []string `json:"looking_for" binding:"omitempty,max=10,dive,notblank,max=50"`
}

// Save upserts the (user, event) profile. The pair is unique: an
// existing record is updated, otherwise one is created with visibility
// on and onboarding complete.
func (uc *ProfileUseCase) Save(ctx context.Context, userID, eventID string, req *SaveProfileRequest) (*domain.Profile, error) {
	existing, err := uc.profileRepo.GetByUserAndEvent(ctx, userID, eventID)
	if err != nil && !errors.Is(err, domain.ErrProfileNotFound) {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	if existing != nil {
		existing.AboutMe = req.AboutMe
		existing.CurrentRole = req.CurrentRole
		existing.Company = req.Company
		existing.Skills = req.Skills
		existing.Interests = req.Interests
		existing.LookingFor = req.LookingFor
		existing.OnboardingComplete = true
		if err := uc.profileRepo.Update(ctx, existing); err != nil {
			return nil, fmt.Errorf("failed to update profile: %w", err)
		}
		return existing, nil
	}

	profile := &domain.Profile{
		UserID:             userID,
		EventID:            eventID,
		AboutMe:            req.AboutMe,
		CurrentRole:        req.CurrentRole,
		Company:            req.Company,
		Skills:             req.Skills,
		Interests:          req.Interests,
		LookingFor:         req.LookingFor,
		IsVisible:          true,
		OnboardingComplete: true,
	}
	if err := uc.profileRepo.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return profile, nil
}

// Get returns the user's profile for the event.
func (uc *ProfileUseCase) Get(ctx context.Context, userID, eventID string) (*domain.Profile, error) {
	return uc.profileRepo.GetByUserAndEvent(ctx, userID, eventID)
}

// SetVisibility toggles whether the profile appears in discover lists.
func (uc *ProfileUseCase) SetVisibility(ctx context.Context, userID, eventID string, visible bool) error {
	return uc.profileRepo.SetVisibility(ctx, userID, eventID, visible)
}

// AttendeeView is another attendee's full card: the directory record
// plus the event profile and the viewer's connection status with them.
type AttendeeView struct {
	UserID           string   `json:"user_id"`
	Name             string   `json:"name"`
	Image            *string  `json:"image"`
	AboutMe          *string  `json:"about_me"`
	CurrentRole      *string  `json:"current_role"`
	Company          *string  `json:"company"`
	Skills           []string `json:"skills"`
	Interests        []string `json:"interests"`
	LookingFor       []string `json:"looking_for"`
	ConnectionStatus string   `json:"connection_status"`
}

// Attendee returns another user's profile card for the event. A hidden
// profile reads the same as an absent one, so hiding removes the card
// everywhere at once.
func (uc *ProfileUseCase) Attendee(ctx context.Context, viewerID, userID, eventID string) (*AttendeeView, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	prof, err := uc.profileRepo.GetByUserAndEvent(ctx, userID, eventID)
	if err != nil {
		return nil, err
	}
	if !prof.IsVisible {
		return nil, domain.ErrProfileNotFound
	}

	status := domain.ConnectionStatusNone
	if viewerID != userID {
		conn, err := uc.connectionRepo.GetBetween(ctx, eventID, viewerID, userID)
		switch {
		case err == nil:
			status = conn.Status
		case !errors.Is(err, domain.ErrConnectionNotFound):
			return nil, fmt.Errorf("failed to check connection: %w", err)
		}
	}

	return &AttendeeView{
		UserID:           user.ID,
		Name:             user.Name,
		Image:            user.Image,
		AboutMe:          prof.AboutMe,
		CurrentRole:      prof.CurrentRole,
		Company:          prof.Company,
		Skills:           prof.Skills,
		Interests:        prof.Interests,
		LookingFor:       prof.LookingFor,
		ConnectionStatus: status,
	}, nil
}
