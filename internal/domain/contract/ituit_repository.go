package contract

import (
	"context"

	"github.com/tuiter/tuiter/internal/domain/entity"
)

// ITuitRepository provides methods for managing tuit data in the database.
type ITuitRepository interface {
	CreateTuit(ctx context.Context, tuit *entity.Tuit) error
	// GetTuitByID returns the tuit with its author resolved.
	GetTuitByID(ctx context.Context, tuitID string) (*entity.Tuit, error)
	GetTuits(ctx context.Context) ([]*entity.Tuit, error)
	GetTuitsByUser(ctx context.Context, userID string) ([]*entity.Tuit, error)
	UpdateTuit(ctx context.Context, tuitID string, updates map[string]interface{}) error
	// UpdateStats replaces the whole stats sub-document of a tuit.
	UpdateStats(ctx context.Context, tuitID string, stats entity.Stats) error
	DeleteTuit(ctx context.Context, tuitID string) (int64, error)
}
