package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/techconnect/backend/internal/domain"
	"github.com/techconnect/backend/internal/repository"
)

type connectionRepository struct {
	db *sqlx.DB
}

func NewConnectionRepository(db *sqlx.DB) repository.ConnectionRepository {
	return &connectionRepository{db: db}
}

func (r *connectionRepository) Create(ctx context.Context, conn *domain.Connection) error {
	if conn.ID == "" {
		conn.ID = uuid.NewString()
	}
	if conn.Status == "" {
		conn.Status = domain.ConnectionStatusPending
	}
	query := `
		INSERT INTO connections (id, event_id, requester_id, receiver_id, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`
	return r.db.QueryRowContext(ctx, query,
		conn.ID, conn.EventID, conn.RequesterID, conn.ReceiverID, conn.Status,
	).Scan(&conn.CreatedAt)
}

func (r *connectionRepository) GetByID(ctx context.Context, id string) (*domain.Connection, error) {
	var conn domain.Connection
	query := `SELECT * FROM connections WHERE id = $1`
	err := r.db.GetContext(ctx, &conn, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrConnectionNotFound
		}
		return nil, err
	}
	return &conn, nil
}

func (r *connectionRepository) GetBetween(ctx context.Context, eventID, userID, otherUserID string) (*domain.Connection, error) {
	var conn domain.Connection
	query := `
		SELECT * FROM connections
		WHERE event_id = $1
		  AND ((requester_id = $2 AND receiver_id = $3)
		    OR (requester_id = $3 AND receiver_id = $2))
	`
	err := r.db.GetContext(ctx, &conn, query, eventID, userID, otherUserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrConnectionNotFound
		}
		return nil, err
	}
	return &conn, nil
}

func (r *connectionRepository) ListForUser(ctx context.Context, eventID, userID string) ([]*domain.Connection, error) {
	var conns []*domain.Connection
	query := `
		SELECT * FROM connections
		WHERE event_id = $1 AND (requester_id = $2 OR receiver_id = $2)
		ORDER BY created_at DESC
	`
	err := r.db.SelectContext(ctx, &conns, query, eventID, userID)
	return conns, err
}

func (r *connectionRepository) UpdateStatus(ctx context.Context, id, status string) error {
	query := `UPDATE connections SET status = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrConnectionNotFound
	}
	return nil
}
