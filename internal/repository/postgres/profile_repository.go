package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/techconnect/backend/internal/domain"
	"github.com/techconnect/backend/internal/repository"
)

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

const profileColumns = `
	id, user_id, event_id, about_me, role, company,
	skills, interests, looking_for,
	is_visible, onboarding_complete, created_at, updated_at
`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanProfile reads a profile row; the text[] columns need pq.Array and
// rule out sqlx struct scanning.
func scanProfile(row rowScanner) (*domain.Profile, error) {
	var p domain.Profile
	err := row.Scan(
		&p.ID, &p.UserID, &p.EventID, &p.AboutMe, &p.CurrentRole, &p.Company,
		pq.Array(&p.Skills), pq.Array(&p.Interests), pq.Array(&p.LookingFor),
		&p.IsVisible, &p.OnboardingComplete, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *profileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	query := `
		INSERT INTO profiles (
			id, user_id, event_id, about_me, role, company,
			skills, interests, looking_for, is_visible, onboarding_complete
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		profile.ID, profile.UserID, profile.EventID,
		profile.AboutMe, profile.CurrentRole, profile.Company,
		pq.Array(profile.Skills), pq.Array(profile.Interests), pq.Array(profile.LookingFor),
		profile.IsVisible, profile.OnboardingComplete,
	).Scan(&profile.CreatedAt, &profile.UpdatedAt)
}

func (r *profileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	query := `
		UPDATE profiles
		SET about_me = $1, role = $2, company = $3,
		    skills = $4, interests = $5, looking_for = $6,
		    is_visible = $7, onboarding_complete = $8,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $9
		RETURNING updated_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		profile.AboutMe, profile.CurrentRole, profile.Company,
		pq.Array(profile.Skills), pq.Array(profile.Interests), pq.Array(profile.LookingFor),
		profile.IsVisible, profile.OnboardingComplete,
		profile.ID,
	).Scan(&profile.UpdatedAt)
}

func (r *profileRepository) GetByUserAndEvent(ctx context.Context, userID, eventID string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = $1 AND event_id = $2`
	profile, err := scanProfile(r.db.QueryRowContext(ctx, query, userID, eventID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

func (r *profileRepository) ListVisibleByEvent(ctx context.Context, eventID, excludeUserID string) ([]*domain.Profile, error) {
	query := `
		SELECT ` + profileColumns + `
		FROM profiles
		WHERE event_id = $1
		  AND user_id <> $2
		  AND is_visible = true
		  AND onboarding_complete = true
		ORDER BY created_at ASC
	`
	rows, err := r.db.QueryContext(ctx, query, eventID, excludeUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []*domain.Profile
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	return profiles, rows.Err()
}

func (r *profileRepository) SetVisibility(ctx context.Context, userID, eventID string, visible bool) error {
	query := `
		UPDATE profiles
		SET is_visible = $1, updated_at = CURRENT_TIMESTAMP
		WHERE user_id = $2 AND event_id = $3
	`
	result, err := r.db.ExecContext(ctx, query, visible, userID, eventID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}
