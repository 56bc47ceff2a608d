package domain

import "time"

// Profile is a user's networking card for a single event. A user has at
// most one profile per event.
type Profile struct {
	ID                 string    `json:"id" db:"id"`
	UserID             string    `json:"user_id" db:"user_id"`
	EventID            string    `json:"event_id" db:"event_id"`
	AboutMe            *string   `json:"about_me" db:"about_me"`
	CurrentRole        *string   `json:"current_role" db:"role"`
	Company            *string   `json:"company" db:"company"`
	Skills             []string  `json:"skills" db:"skills"`
	Interests          []string  `json:"interests" db:"interests"`
	LookingFor         []string  `json:"looking_for" db:"looking_for"`
	IsVisible          bool      `json:"is_visible" db:"is_visible"`
	OnboardingComplete bool      `json:"onboarding_complete" db:"onboarding_complete"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" db:"updated_at"`
}

// Role returns the current role or "" when not set.
func (p *Profile) Role() string {
	if p.CurrentRole == nil {
		return ""
	}
	return *p.CurrentRole
}

// CompanyName returns the company or "" when not set.
func (p *Profile) CompanyName() string {
	if p.Company == nil {
		return ""
	}
	return *p.Company
}
