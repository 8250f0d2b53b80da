package usecasecontract

import (
	"context"

	"github.com/tuiter/tuiter/internal/domain/entity"
)

type IReactionUseCase interface {
	// Toggle flips kind on or off for the user and keeps the opposite kind
	// and the tuit stats consistent.
	Toggle(ctx context.Context, kind entity.ReactionKind, userID, tuitID string) (*entity.Stats, error)
	React(ctx context.Context, kind entity.ReactionKind, userID, tuitID string) (*entity.Reaction, error)
	Unreact(ctx context.Context, kind entity.ReactionKind, userID, tuitID string) (int64, error)
	ListReactorsForTuit(ctx context.Context, kind entity.ReactionKind, tuitID string) ([]*entity.Reaction, error)
	ListTuitsReactedByUser(ctx context.Context, kind entity.ReactionKind, userID string) ([]*entity.Tuit, error)
}
