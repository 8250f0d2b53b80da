package mocks

import (
	"context"
	"errors"

	"github.com/tuiter/tuiter/internal/domain/contract"
	"github.com/tuiter/tuiter/internal/domain/entity"
	"github.com/tuiter/tuiter/internal/usecase"
	usecasecontract "github.com/tuiter/tuiter/internal/usecase/contract"
)

// MockUserUsecase is a mock implementation of the UserUsecase interface
type MockUserUsecase struct {
	// Control mock behavior
	ShouldFailCreateUser   bool
	ShouldDuplicateUser    bool
	ShouldFailLogin        bool
	ShouldFailGetByID      bool
	ShouldFailUpdateUser   bool
	ShouldFailDelete       bool
	ShouldFailLogout       bool
	ShouldFailAuthenticate bool

	// Return values
	MockUser        entity.User
	MockAccessToken string
	MockDeleted     int64

	// Recorded arguments
	LastUserID      string
	LastUpdates     map[string]interface{}
	LoggedOutTokens []string
}

// Ensure MockUserUsecase implements the correct interface for handler.NewUserHandler
var _ usecasecontract.IUserUseCase = (*MockUserUsecase)(nil)

func NewMockUserUsecase() *MockUserUsecase {
	return &MockUserUsecase{
		MockUser: entity.User{
			ID:          "mock-user-id",
			Username:    "testuser",
			Email:       "test@example.com",
			AccountType: entity.AccountTypePersonal,
		},
		MockAccessToken: "mock_access_token",
		MockDeleted:     1,
	}
}

func (m *MockUserUsecase) Register(ctx context.Context, user *entity.User, password string) (*entity.User, string, error) {
	created, err := m.CreateUser(ctx, user, password)
	if err != nil {
		return nil, "", err
	}
	return created, m.MockAccessToken, nil
}

func (m *MockUserUsecase) Login(ctx context.Context, username, password string) (*entity.User, string, error) {
	if m.ShouldFailLogin {
		return nil, "", usecase.ErrInvalidCredentials
	}
	return &m.MockUser, m.MockAccessToken, nil
}

func (m *MockUserUsecase) Logout(ctx context.Context, accessToken string) error {
	m.LoggedOutTokens = append(m.LoggedOutTokens, accessToken)
	if m.ShouldFailLogout {
		return errors.New("logout failed")
	}
	return nil
}

// Authenticate accepts MockAccessToken only.
func (m *MockUserUsecase) Authenticate(ctx context.Context, accessToken string) (string, error) {
	if m.ShouldFailAuthenticate || accessToken != m.MockAccessToken {
		return "", errors.New("invalid token")
	}
	return m.MockUser.ID, nil
}

func (m *MockUserUsecase) CreateUser(ctx context.Context, user *entity.User, password string) (*entity.User, error) {
	if m.ShouldDuplicateUser {
		return nil, contract.ErrDuplicateUser
	}
	if m.ShouldFailCreateUser {
		return nil, errors.New("user creation failed")
	}
	created := *user
	created.ID = m.MockUser.ID
	return &created, nil
}

func (m *MockUserUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	m.LastUserID = userID
	if m.ShouldFailGetByID {
		return nil, contract.ErrUserNotFound
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) GetAllUsers(ctx context.Context) ([]*entity.User, error) {
	return []*entity.User{&m.MockUser}, nil
}

func (m *MockUserUsecase) UpdateUser(ctx context.Context, userID string, updates map[string]interface{}) (*entity.User, error) {
	m.LastUserID = userID
	m.LastUpdates = updates
	if m.ShouldFailUpdateUser {
		return nil, usecase.ErrInvalidInput
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) DeleteUser(ctx context.Context, userID string) (int64, error) {
	m.LastUserID = userID
	return m.delete()
}

func (m *MockUserUsecase) DeleteUsersByUsername(ctx context.Context, username string) (int64, error) {
	return m.delete()
}

func (m *MockUserUsecase) DeleteAllUsers(ctx context.Context) (int64, error) {
	return m.delete()
}

func (m *MockUserUsecase) delete() (int64, error) {
	if m.ShouldFailDelete {
		return 0, errors.New("store unavailable")
	}
	return m.MockDeleted, nil
}
