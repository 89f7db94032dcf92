package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedSessionPrefix = "revoked:session:"

// RevocationList is a denylist of session token IDs. Entries expire together
// with the token they revoke, so the set never outgrows the live sessions.
type RevocationList struct {
	client redis.Cmdable
}

func NewRevocationList(client redis.Cmdable) *RevocationList {
	return &RevocationList{client: client}
}

func RevokedSessionKey(tokenID string) string {
	return revokedSessionPrefix + tokenID
}

// Revoke marks tokenID as revoked for ttl. A token that has already expired
// needs no entry.
func (l *RevocationList) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if tokenID == "" || ttl <= 0 {
		return nil
	}

	if err := l.client.Set(ctx, RevokedSessionKey(tokenID), 1, ttl).Err(); err != nil {
		return fmt.Errorf("ошибка при отзыве сессии: %w", err)
	}

	return nil
}

func (l *RevocationList) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := l.client.Exists(ctx, RevokedSessionKey(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("ошибка при проверке отзыва сессии: %w", err)
	}

	return n > 0, nil
}
