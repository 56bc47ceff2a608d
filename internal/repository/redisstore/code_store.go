package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/techconnect/backend/internal/domain"
	"github.com/techconnect/backend/internal/repository"
)

type codeStore struct {
	client *redis.Client
}

// NewCodeStore returns a redis-backed login-code store.
func NewCodeStore(client *redis.Client) repository.CodeStore {
	return &codeStore{client: client}
}

func codeKey(email string) string {
	return "login_code:" + email
}

func (s *codeStore) SaveCode(ctx context.Context, email, hash string, ttl time.Duration) error {
	if err := s.client.Set(ctx, codeKey(email), hash, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save login code: %w", err)
	}
	return nil
}

func (s *codeStore) GetCode(ctx context.Context, email string) (string, error) {
	hash, err := s.client.Get(ctx, codeKey(email)).Result()
	if errors.Is(err, redis.Nil) {
		return "", domain.ErrInvalidLoginCode
	}
	if err != nil {
		return "", fmt.Errorf("failed to get login code: %w", err)
	}
	return hash, nil
}

func (s *codeStore) DeleteCode(ctx context.Context, email string) error {
	if err := s.client.Del(ctx, codeKey(email)).Err(); err != nil {
		return fmt.Errorf("failed to delete login code: %w", err)
	}
	return nil
}
