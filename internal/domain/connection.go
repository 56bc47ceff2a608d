package domain

import "time"

const (
	ConnectionStatusPending  = "pending"
	ConnectionStatusAccepted = "accepted"
	// ConnectionStatusNone is never stored; it annotates match results
	// for pairs with no connection record.
	ConnectionStatusNone = "none"
)

// Connection is an edge between two users scoped to one event. At most
// one record exists per unordered (user, user, event) triple; the store
// does not enforce unordered-pair uniqueness, so callers must check both
// directions before insert.
type Connection struct {
	ID          string    `json:"id" db:"id"`
	EventID     string    `json:"event_id" db:"event_id"`
	RequesterID string    `json:"requester_id" db:"requester_id"`
	ReceiverID  string    `json:"receiver_id" db:"receiver_id"`
	Status      string    `json:"status" db:"status"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

func (c *Connection) HasUser(userID string) bool {
	return c.RequesterID == userID || c.ReceiverID == userID
}

func (c *Connection) OtherUserID(userID string) (string, bool) {
	if c.RequesterID == userID {
		return c.ReceiverID, true
	}
	if c.ReceiverID == userID {
		return c.RequesterID, true
	}
	return "", false
}
