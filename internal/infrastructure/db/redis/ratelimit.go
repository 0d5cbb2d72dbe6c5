package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	loginWindow      = 15 * time.Minute
	loginMaxAttempts = 5
)

// LoginLimiter throttles credential checks per account, backed by Redis.
// Key format: login_attempts:<email>
type LoginLimiter struct {
	client *redis.Client
}

// NewLoginLimiter creates a LoginLimiter wrapping the given Redis client.
func NewLoginLimiter(client *redis.Client) *LoginLimiter {
	return &LoginLimiter{client: client}
}

// Allow records one attempt for email and reports whether it is still
// within the window budget. The first attempt opens the window.
func (l *LoginLimiter) Allow(ctx context.Context, email string) (bool, error) {
	key := l.key(email)

	n, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("rate limit incr: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, key, loginWindow).Err(); err != nil {
			return false, fmt.Errorf("rate limit expire: %w", err)
		}
	}
	return n <= loginMaxAttempts, nil
}

// Reset clears the attempt counter after a successful login.
func (l *LoginLimiter) Reset(ctx context.Context, email string) error {
	return l.client.Del(ctx, l.key(email)).Err()
}

func (l *LoginLimiter) key(email string) string {
	return "login_attempts:" + strings.ToLower(strings.TrimSpace(email))
}
