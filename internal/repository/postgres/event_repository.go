package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/techconnect/backend/internal/domain"
	"github.com/techconnect/backend/internal/repository"
)

type eventRepository struct {
	db *sqlx.DB
}

func NewEventRepository(db *sqlx.DB) repository.EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	var events []*domain.Event
	query := `SELECT * FROM events ORDER BY start_date ASC`
	err := r.db.SelectContext(ctx, &events, query)
	return events, err
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	var event domain.Event
	query := `SELECT * FROM events WHERE id = $1`
	err := r.db.GetContext(ctx, &event, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	var event domain.Event
	query := `SELECT * FROM events WHERE slug = $1`
	err := r.db.GetContext(ctx, &event, query, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) UpsertParticipant(ctx context.Context, eventID, userID string) error {
	query := `
		INSERT INTO event_participants (event_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (event_id, user_id) DO NOTHING
	`
	_, err := r.db.ExecContext(ctx, query, eventID, userID)
	return err
}

func (r *eventRepository) CountParticipants(ctx context.Context, eventID string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM event_participants WHERE event_id = $1`
	err := r.db.GetContext(ctx, &count, query, eventID)
	return count, err
}
