package repository

import (
	"context"
	"time"
)

// CodeStore holds short-lived login-code hashes, keyed by email.
type CodeStore interface {
	SaveCode(ctx context.Context, email, hash string, ttl time.Duration) error
	// GetCode returns domain.ErrInvalidLoginCode when no code is pending.
	GetCode(ctx context.Context, email string) (string, error)
	DeleteCode(ctx context.Context, email string) error
}
