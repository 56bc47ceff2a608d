package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/techconnect/backend/internal/domain"
	"github.com/techconnect/backend/internal/repository"
)

type messageRepository struct {
	db *sqlx.DB
}

func NewMessageRepository(db *sqlx.DB) repository.MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, msg *domain.Message) error {
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	query := `
		INSERT INTO messages (id, event_id, sender_id, receiver_id, content, is_icebreaker)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING read, created_at
	`
	return r.db.QueryRowContext(ctx, query,
		msg.ID, msg.EventID, msg.SenderID, msg.ReceiverID, msg.Content, msg.IsIcebreaker,
	).Scan(&msg.Read, &msg.CreatedAt)
}

func (r *messageRepository) CountSentSince(ctx context.Context, eventID, senderID, receiverID string, since time.Time) (int, error) {
	var count int
	query := `
		SELECT COUNT(*) FROM messages
		WHERE event_id = $1 AND sender_id = $2 AND receiver_id = $3 AND created_at >= $4
	`
	err := r.db.GetContext(ctx, &count, query, eventID, senderID, receiverID, since)
	return count, err
}

func (r *messageRepository) ListThread(ctx context.Context, eventID, userID, partnerID string) ([]*domain.Message, error) {
	var msgs []*domain.Message
	query := `
		SELECT * FROM messages
		WHERE event_id = $1
		  AND ((sender_id = $2 AND receiver_id = $3)
		    OR (sender_id = $3 AND receiver_id = $2))
		ORDER BY created_at ASC
	`
	err := r.db.SelectContext(ctx, &msgs, query, eventID, userID, partnerID)
	return msgs, err
}

func (r *messageRepository) ListForUser(ctx context.Context, eventID, userID string) ([]*domain.Message, error) {
	var msgs []*domain.Message
	query := `
		SELECT * FROM messages
		WHERE event_id = $1 AND (sender_id = $2 OR receiver_id = $2)
		ORDER BY created_at DESC
	`
	err := r.db.SelectContext(ctx, &msgs, query, eventID, userID)
	return msgs, err
}

func (r *messageRepository) MarkRead(ctx context.Context, eventID, senderID, receiverID string) error {
	query := `
		UPDATE messages SET read = true
		WHERE event_id = $1 AND sender_id = $2 AND receiver_id = $3 AND read = false
	`
	_, err := r.db.ExecContext(ctx, query, eventID, senderID, receiverID)
	return err
}
