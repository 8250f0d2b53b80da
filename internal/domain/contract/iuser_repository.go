package contract

import (
	"context"

	"github.com/tuiter/tuiter/internal/domain/entity"
)

type IUserRepository interface {
	CreateUser(ctx context.Context, user *entity.User) error
	GetUserByID(ctx context.Context, id string) (*entity.User, error)
	// GetUserByUsername retrieves a user by username.
	GetUserByUsername(ctx context.Context, username string) (*entity.User, error)
	GetAllUsers(ctx context.Context) ([]*entity.User, error)
	// UpdateUser applies the given field updates and returns the updated user.
	UpdateUser(ctx context.Context, id string, updates map[string]interface{}) (*entity.User, error)
	// DeleteUser removes a user by ID and reports how many documents were removed.
	DeleteUser(ctx context.Context, id string) (int64, error)
	DeleteUsersByUsername(ctx context.Context, username string) (int64, error)
	DeleteAllUsers(ctx context.Context) (int64, error)
}
