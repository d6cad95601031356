package presence

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Service exposes the therapist online signal. The presence collaborator
// (the therapist app heartbeating) owns the state; the booking core only
// reads it.
type Service interface {
	Heartbeat(ctx context.Context, therapistID string) error
	IsOnline(ctx context.Context, therapistID string) (bool, error)
}

// RedisPresenceService tracks presence as TTL keys: a therapist is online
// while their heartbeat key has not expired.
type RedisPresenceService struct {
	Client *redis.Client
	TTL    time.Duration
}

func presenceKey(therapistID string) string {
	return "presence:therapist:" + therapistID
}

func (s *RedisPresenceService) Heartbeat(ctx context.Context, therapistID string) error {
	if therapistID == "" {
		return fmt.Errorf("missing therapist ID")
	}
	if err := s.Client.Set(ctx, presenceKey(therapistID), "online", s.TTL).Err(); err != nil {
		return fmt.Errorf("failed to record heartbeat: %w", err)
	}
	return nil
}

func (s *RedisPresenceService) IsOnline(ctx context.Context, therapistID string) (bool, error) {
	n, err := s.Client.Exists(ctx, presenceKey(therapistID)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check presence: %w", err)
	}
	return n > 0, nil
}
