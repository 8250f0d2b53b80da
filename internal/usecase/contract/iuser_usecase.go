package usecasecontract

import (
	"context"

	"github.com/tuiter/tuiter/internal/domain/entity"
)

// IUserUseCase defines the interface for user-related operations.
type IUserUseCase interface {
	Register(ctx context.Context, user *entity.User, password string) (*entity.User, string, error)
	Login(ctx context.Context, username, password string) (*entity.User, string, error)
	Logout(ctx context.Context, accessToken string) error
	Authenticate(ctx context.Context, accessToken string) (string, error)
	CreateUser(ctx context.Context, user *entity.User, password string) (*entity.User, error)
	GetUserByID(ctx context.Context, userID string) (*entity.User, error)
	GetAllUsers(ctx context.Context) ([]*entity.User, error)
	UpdateUser(ctx context.Context, userID string, updates map[string]interface{}) (*entity.User, error)
	DeleteUser(ctx context.Context, userID string) (int64, error)
	DeleteUsersByUsername(ctx context.Context, username string) (int64, error)
	DeleteAllUsers(ctx context.Context) (int64, error)
}
