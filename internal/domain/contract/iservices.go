package contract

import (
	"context"

	"github.com/tuiter/tuiter/internal/domain/entity"
)

// IHasher hashes and verifies passwords.
type IHasher interface {
	HashPassword(password string) (string, error)
	ComparePasswordHash(password, hashedPassword string) error
}

type IUUIDGenerator interface {
	NewUUID() string
}

// ReactionToggled describes the state a toggle left behind.
type ReactionToggled struct {
	UserID   string              `json:"userId"`
	TuitID   string              `json:"tuitId"`
	Kind     entity.ReactionKind `json:"kind"`
	Active   bool                `json:"active"`
	Likes    int                 `json:"likes"`
	Dislikes int                 `json:"dislikes"`
}

// IReactionEventPublisher announces completed toggles to other services.
type IReactionEventPublisher interface {
	PublishReactionToggled(ctx context.Context, event ReactionToggled) error
}
