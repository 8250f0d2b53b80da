package contract

import (
	"context"

	"github.com/tuiter/tuiter/internal/domain/entity"
)

// IReactionRepository stores the reactions of a single kind. There is one
// instance for likes and one for dislikes; neither touches tuit stats.
type IReactionRepository interface {
	Kind() entity.ReactionKind
	// FindByTuit returns every reaction on a tuit with the reacting user resolved.
	FindByTuit(ctx context.Context, tuitID string) ([]*entity.Reaction, error)
	// FindByUser returns every reaction by a user with the tuit resolved.
	// Reactions pointing at a deleted tuit carry a nil Tuit.
	FindByUser(ctx context.Context, userID string) ([]*entity.Reaction, error)
	// Find returns nil, nil when the user has no reaction of this kind on the tuit.
	Find(ctx context.Context, userID, tuitID string) (*entity.Reaction, error)
	Create(ctx context.Context, userID, tuitID string) (*entity.Reaction, error)
	Delete(ctx context.Context, userID, tuitID string) (int64, error)
	Count(ctx context.Context, tuitID string) (int64, error)
}
