package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/tuiter/tuiter/internal/domain/entity"
	usecasecontract "github.com/tuiter/tuiter/internal/usecase/contract"
)

type MockTuitUsecase struct {
	mock.Mock
}

var _ usecasecontract.ITuitUseCase = (*MockTuitUsecase)(nil)

func (m *MockTuitUsecase) CreateTuit(ctx context.Context, userID string, tuit *entity.Tuit) (*entity.Tuit, error) {
	args := m.Called(ctx, userID, tuit)
	if t, ok := args.Get(0).(*entity.Tuit); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTuitUsecase) GetTuitByID(ctx context.Context, tuitID string) (*entity.Tuit, error) {
	args := m.Called(ctx, tuitID)
	if t, ok := args.Get(0).(*entity.Tuit); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTuitUsecase) GetTuits(ctx context.Context) ([]*entity.Tuit, error) {
	args := m.Called(ctx)
	if ts, ok := args.Get(0).([]*entity.Tuit); ok {
		return ts, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTuitUsecase) GetTuitsByUser(ctx context.Context, userID string) ([]*entity.Tuit, error) {
	args := m.Called(ctx, userID)
	if ts, ok := args.Get(0).([]*entity.Tuit); ok {
		return ts, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTuitUsecase) UpdateTuit(ctx context.Context, tuitID string, updates map[string]interface{}) error {
	args := m.Called(ctx, tuitID, updates)
	return args.Error(0)
}

func (m *MockTuitUsecase) DeleteTuit(ctx context.Context, tuitID string) (int64, error) {
	args := m.Called(ctx, tuitID)
	return args.Get(0).(int64), args.Error(1)
}
