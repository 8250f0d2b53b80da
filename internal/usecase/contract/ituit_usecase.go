package usecasecontract

import (
	"context"

	"github.com/tuiter/tuiter/internal/domain/entity"
)

type ITuitUseCase interface {
	CreateTuit(ctx context.Context, userID string, tuit *entity.Tuit) (*entity.Tuit, error)
	GetTuitByID(ctx context.Context, tuitID string) (*entity.Tuit, error)
	GetTuits(ctx context.Context) ([]*entity.Tuit, error)
	GetTuitsByUser(ctx context.Context, userID string) ([]*entity.Tuit, error)
	UpdateTuit(ctx context.Context, tuitID string, updates map[string]interface{}) error
	DeleteTuit(ctx context.Context, tuitID string) (int64, error)
}
