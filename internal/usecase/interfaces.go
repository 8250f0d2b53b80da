package usecase

import (
	"time"

	"github.com/tuiter/tuiter/internal/domain/entity"
)

// JWTService defines the interface for JWT operations.
type JWTService interface {
	GenerateAccessToken(user *entity.User) (token string, tokenID string, err error)
	ParseAccessToken(token string) (*entity.Claims, error)
	AccessTokenTTL() time.Duration
}

// ToggleObserver receives the outcome of every reaction toggle.
type ToggleObserver interface {
	ObserveToggle(kind entity.ReactionKind, transition string)
	ObserveToggleFailure(kind entity.ReactionKind)
}

// CacheObserver counts tuit cache lookups.
type CacheObserver interface {
	ObserveCacheHit(elapsed time.Duration)
	ObserveCacheMiss(elapsed time.Duration)
}
