package domain

import "time"

// Message is a directed message between two users within an event.
// Immutable after creation except the read flag, which flips when the
// receiver opens the thread.
type Message struct {
	ID           string    `json:"id" db:"id"`
	EventID      string    `json:"event_id" db:"event_id"`
	SenderID     string    `json:"sender_id" db:"sender_id"`
	ReceiverID   string    `json:"receiver_id" db:"receiver_id"`
	Content      string    `json:"content" db:"content"`
	IsIcebreaker bool      `json:"is_icebreaker" db:"is_icebreaker"`
	Read         bool      `json:"read" db:"read"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
