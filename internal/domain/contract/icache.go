package contract

import (
	"context"
	"time"

	"github.com/tuiter/tuiter/internal/domain/entity"
)

// ITuitCache defines caching operations for tuits.
type ITuitCache interface {
	GetTuit(ctx context.Context, tuitID string) (*entity.Tuit, bool, error)
	SetTuit(ctx context.Context, tuit *entity.Tuit) error
	InvalidateTuit(ctx context.Context, tuitID string) error
}

// ITokenDenylist remembers access tokens revoked by logout until they expire.
type ITokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// IToggleLocker serializes reaction toggles for one (user, tuit) pair.
type IToggleLocker interface {
	// Acquire blocks until the lock is held or ctx is done. The returned
	// func releases it.
	Acquire(ctx context.Context, userID, tuitID string) (func(), error)
}
