package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/tuiter/tuiter/internal/domain/contract"
	usecasecontract "github.com/tuiter/tuiter/internal/usecase/contract"
)

// releaseScript deletes the lock only if it still carries our token, so a
// holder whose lock expired cannot release someone else's.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// ToggleLocker is a Redis lock keyed by (user, tuit).
type ToggleLocker struct {
	rdb        *redis.Client
	logger     usecasecontract.IAppLogger
	ttl        time.Duration
	retryEvery time.Duration
}

var _ contract.IToggleLocker = (*ToggleLocker)(nil)

func NewToggleLocker(rdb *redis.Client, logger usecasecontract.IAppLogger) *ToggleLocker {
	return &ToggleLocker{
		rdb:        rdb,
		logger:     logger,
		ttl:        5 * time.Second,
		retryEvery: 25 * time.Millisecond,
	}
}

func toggleLockKey(userID, tuitID string) string {
	return fmt.Sprintf("reaction:lock:%s:%s", userID, tuitID)
}

// Acquire spins until the lock is taken or ctx is done.
func (l *ToggleLocker) Acquire(ctx context.Context, userID, tuitID string) (func(), error) {
	key := toggleLockKey(userID, tuitID)
	token := uuid.New().String()

	ticker := time.NewTicker(l.retryEvery)
	defer ticker.Stop()
	for {
		ok, err := l.rdb.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return nil, err
		}
		if ok {
			return func() {
				// release on a fresh context; the request one may already be cancelled
				releaseCtx, cancel := context.WithTimeout(context.Background(), time.Second)
				defer cancel()
				if err := releaseScript.Run(releaseCtx, l.rdb, []string{key}, token).Err(); err != nil {
					l.logger.Warnf("failed to release toggle lock %s, it expires in %s: %v", key, l.ttl, err)
				}
			}, nil
		}
		select {
		case <-ctx.Done():
			return nil, errors.Join(errors.New("toggle lock busy"), ctx.Err())
		case <-ticker.C:
		}
	}
}
