package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"startconnect/internal/model"
	"startconnect/internal/repository"
)

type MockCenterRepository struct {
	mock.Mock
}

func (m *MockCenterRepository) Create(ctx context.Context, c *model.Center) (*model.Center, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Center), args.Error(1)
}

func (m *MockCenterRepository) FindByID(ctx context.Context, id string) (*model.Center, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Center), args.Error(1)
}

func (m *MockCenterRepository) FindByIDForUpdate(ctx context.Context, id string) (*model.Center, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Center), args.Error(1)
}

func (m *MockCenterRepository) Update(ctx context.Context, c *model.Center) (*model.Center, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Center), args.Error(1)
}

func (m *MockCenterRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCenterRepository) List(ctx context.Context, f model.CenterFilter) (*repository.PageResult[model.Center], error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Center]), args.Error(1)
}

func (m *MockCenterRepository) WithinBounds(ctx context.Context, b repository.Bounds, sport string) ([]model.Center, error) {
	args := m.Called(ctx, b, sport)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Center), args.Error(1)
}

func (m *MockCenterRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
