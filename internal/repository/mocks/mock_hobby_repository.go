package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"startconnect/internal/model"
)

type MockHobbyRepository struct {
	mock.Mock
}

func (m *MockHobbyRepository) List(ctx context.Context) ([]model.Hobby, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Hobby), args.Error(1)
}

func (m *MockHobbyRepository) Create(ctx context.Context, h *model.Hobby) (*model.Hobby, error) {
	args := m.Called(ctx, h)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Hobby), args.Error(1)
}

func (m *MockHobbyRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockHobbyRepository) CountExisting(ctx context.Context, ids []string) (int, error) {
	args := m.Called(ctx, ids)
	return args.Int(0), args.Error(1)
}

func (m *MockHobbyRepository) ListByUser(ctx context.Context, userID string) ([]model.Hobby, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Hobby), args.Error(1)
}

func (m *MockHobbyRepository) ReplaceForUser(ctx context.Context, userID string, ids []string) error {
	args := m.Called(ctx, userID, ids)
	return args.Error(0)
}
