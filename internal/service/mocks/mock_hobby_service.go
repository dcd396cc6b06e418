package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"startconnect/internal/model"
)

type MockHobbyService struct {
	mock.Mock
}

func (m *MockHobbyService) Catalog(ctx context.Context) ([]model.Hobby, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Hobby), args.Error(1)
}

func (m *MockHobbyService) ListMine(ctx context.Context, uid string) ([]model.Hobby, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Hobby), args.Error(1)
}

func (m *MockHobbyService) ReplaceMine(ctx context.Context, uid string, ids []string) ([]model.Hobby, error) {
	args := m.Called(ctx, uid, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Hobby), args.Error(1)
}

func (m *MockHobbyService) Create(ctx context.Context, in model.HobbyInput) (*model.Hobby, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Hobby), args.Error(1)
}

func (m *MockHobbyService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
