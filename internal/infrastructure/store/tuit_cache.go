package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tuiter/tuiter/internal/domain/contract"
	"github.com/tuiter/tuiter/internal/domain/entity"
)

type TuitCacheStore struct {
	rdb *redis.Client
	ttl time.Duration
}

var _ contract.ITuitCache = (*TuitCacheStore)(nil)

func NewTuitCacheStore(rdb *redis.Client, ttl time.Duration) *TuitCacheStore {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &TuitCacheStore{rdb: rdb, ttl: ttl}
}

func tuitKey(tuitID string) string { return fmt.Sprintf("tuit:id:%s", tuitID) }

func (c *TuitCacheStore) GetTuit(ctx context.Context, tuitID string) (*entity.Tuit, bool, error) {
	b, err := c.rdb.Get(ctx, tuitKey(tuitID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	var tuit entity.Tuit
	if err := json.Unmarshal(b, &tuit); err != nil {
		// treat a corrupt entry as a miss
		return nil, false, nil
	}
	return &tuit, true, nil
}

func (c *TuitCacheStore) SetTuit(ctx context.Context, tuit *entity.Tuit) error {
	data, err := json.Marshal(tuit)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, tuitKey(tuit.ID), data, c.ttl).Err()
}

func (c *TuitCacheStore) InvalidateTuit(ctx context.Context, tuitID string) error {
	return c.rdb.Del(ctx, tuitKey(tuitID)).Err()
}
