package notification

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

const (
	RoleUser      = "user"
	RoleTherapist = "therapist"
)

// TokenStore maps a user or therapist to their current FCM device token.
type TokenStore interface {
	Register(ctx context.Context, role, id, token string) error
	Get(ctx context.Context, role, id string) (string, error)
}

// RedisTokenStore keeps one token per identity; registering overwrites the
// previous device.
type RedisTokenStore struct {
	Client *redis.Client
}

func tokenKey(role, id string) string {
	return fmt.Sprintf("fcm:%s:%s", role, id)
}

func (s *RedisTokenStore) Register(ctx context.Context, role, id, token string) error {
	if id == "" || token == "" {
		return fmt.Errorf("missing identity or token")
	}
	if err := s.Client.Set(ctx, tokenKey(role, id), token, 0).Err(); err != nil {
		return fmt.Errorf("failed to register device token: %w", err)
	}
	return nil
}

func (s *RedisTokenStore) Get(ctx context.Context, role, id string) (string, error) {
	token, err := s.Client.Get(ctx, tokenKey(role, id)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return token, nil
}
