package store

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tuiter/tuiter/internal/domain/contract"
)

// TokenDenylist keeps revoked token ids until the token would have expired anyway.
type TokenDenylist struct {
	rdb *redis.Client
}

var _ contract.ITokenDenylist = (*TokenDenylist)(nil)

func NewTokenDenylist(rdb *redis.Client) *TokenDenylist {
	return &TokenDenylist{rdb: rdb}
}

func revokedTokenKey(tokenID string) string { return fmt.Sprintf("auth:revoked:%s", tokenID) }

func (d *TokenDenylist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	return d.rdb.Set(ctx, revokedTokenKey(tokenID), 1, ttl).Err()
}

func (d *TokenDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := d.rdb.Exists(ctx, revokedTokenKey(tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
