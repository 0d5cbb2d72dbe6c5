package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/savdo-crm/crm-api/internal/core/domain"
)

const resetTokenTTL = 15 * time.Minute

// ResetTokenStore holds single-use password-reset tokens.
// Key format: pwreset:<token>
type ResetTokenStore struct {
	client *redis.Client
}

// NewResetTokenStore creates a ResetTokenStore wrapping the given Redis client.
func NewResetTokenStore(client *redis.Client) *ResetTokenStore {
	return &ResetTokenStore{client: client}
}

// Store associates token with userID for the reset window.
func (s *ResetTokenStore) Store(ctx context.Context, token, userID string) error {
	return s.client.Set(ctx, s.key(token), userID, resetTokenTTL).Err()
}

// Consume resolves token to its user id and deletes it in one step, so a
// token can be redeemed at most once.
func (s *ResetTokenStore) Consume(ctx context.Context, token string) (string, error) {
	userID, err := s.client.GetDel(ctx, s.key(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrResetTokenInvalid
		}
		return "", fmt.Errorf("reset token consume: %w", err)
	}
	return userID, nil
}

func (s *ResetTokenStore) key(token string) string {
	return "pwreset:" + token
}
