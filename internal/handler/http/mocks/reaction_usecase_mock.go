package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/tuiter/tuiter/internal/domain/entity"
	usecasecontract "github.com/tuiter/tuiter/internal/usecase/contract"
)

type MockReactionUsecase struct {
	mock.Mock
}

var _ usecasecontract.IReactionUseCase = (*MockReactionUsecase)(nil)

func (m *MockReactionUsecase) Toggle(ctx context.Context, kind entity.ReactionKind, userID, tuitID string) (*entity.Stats, error) {
	args := m.Called(ctx, kind, userID, tuitID)
	if stats, ok := args.Get(0).(*entity.Stats); ok {
		return stats, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockReactionUsecase) React(ctx context.Context, kind entity.ReactionKind, userID, tuitID string) (*entity.Reaction, error) {
	args := m.Called(ctx, kind, userID, tuitID)
	if r, ok := args.Get(0).(*entity.Reaction); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockReactionUsecase) Unreact(ctx context.Context, kind entity.ReactionKind, userID, tuitID string) (int64, error) {
	args := m.Called(ctx, kind, userID, tuitID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReactionUsecase) ListReactorsForTuit(ctx context.Context, kind entity.ReactionKind, tuitID string) ([]*entity.Reaction, error) {
	args := m.Called(ctx, kind, tuitID)
	if rs, ok := args.Get(0).([]*entity.Reaction); ok {
		return rs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockReactionUsecase) ListTuitsReactedByUser(ctx context.Context, kind entity.ReactionKind, userID string) ([]*entity.Tuit, error) {
	args := m.Called(ctx, kind, userID)
	if ts, ok := args.Get(0).([]*entity.Tuit); ok {
		return ts, args.Error(1)
	}
	return nil, args.Error(1)
}
