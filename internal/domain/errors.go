package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEventNotFound      = errors.New("event not found")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrConnectionNotFound = errors.New("connection not found")

	ErrSelfConnection   = errors.New("cannot connect with yourself")
	ErrSelfMessage      = errors.New("cannot message yourself")
	ErrConnectionExists = errors.New("connection already exists")

	// ErrDailyLimitReached is the messaging guard denial: the sender hit
	// the per-pair daily cap and the receiver has never replied.
	ErrDailyLimitReached = errors.New("daily message limit reached for this user")

	ErrNotConnectionReceiver = errors.New("only the receiver can accept a connection")

	ErrInvalidLoginCode = errors.New("invalid or expired login code")
	ErrInvalidToken     = errors.New("invalid or expired token")
	ErrInvalidInput     = errors.New("invalid input")
)
