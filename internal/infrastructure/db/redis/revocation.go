package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RevocationList marks accounts whose live bearer tokens must stop
// authenticating, backed by Redis. Deactivating an account adds a mark that
// outlives any token issued before the deactivation; re-activation clears it.
// Key format: revoked:<account_id>
type RevocationList struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRevocationList creates a RevocationList. The TTL should match the token
// lifetime: once every token issued before the revocation has expired, the
// mark has nothing left to block.
func NewRevocationList(client *redis.Client, ttl time.Duration) *RevocationList {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RevocationList{client: client, ttl: ttl}
}

// Revoke marks all current tokens for the account as unusable.
func (l *RevocationList) Revoke(ctx context.Context, accountID string) error {
	return l.client.Set(ctx, l.key(accountID), "1", l.ttl).Err()
}

// Reinstate clears the revocation mark.
func (l *RevocationList) Reinstate(ctx context.Context, accountID string) error {
	return l.client.Del(ctx, l.key(accountID)).Err()
}

// IsRevoked reports whether the account's tokens have been revoked.
func (l *RevocationList) IsRevoked(ctx context.Context, accountID string) (bool, error) {
	n, err := l.client.Exists(ctx, l.key(accountID)).Result()
	if err != nil {
		return false, fmt.Errorf("revocation check: %w", err)
	}
	return n > 0, nil
}

func (l *RevocationList) key(accountID string) string {
	return "revoked:" + accountID
}
