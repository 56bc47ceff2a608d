package repository

import (
	"context"
	"time"

	"github.com/techconnect/backend/internal/domain"
)

type MessageRepository interface {
	Create(ctx context.Context, msg *domain.Message) error
	// CountSentSince counts sender->receiver messages in the event created
	// at or after since. A zero since counts the full history.
	CountSentSince(ctx context.Context, eventID, senderID, receiverID string, since time.Time) (int, error)
	// ListThread returns messages in both directions between the two
	// users, ordered by creation time ascending.
	ListThread(ctx context.Context, eventID, userID, partnerID string) ([]*domain.Message, error)
	// ListForUser returns all messages the user sent or received in the
	// event, newest first.
	ListForUser(ctx context.Context, eventID, userID string) ([]*domain.Message, error)
	// MarkRead flips every unread sender->receiver message to read.
	MarkRead(ctx context.Context, eventID, senderID, receiverID string) error
}
