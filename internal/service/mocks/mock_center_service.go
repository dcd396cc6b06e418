package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"startconnect/internal/model"
)

type MockCenterService struct {
	mock.Mock
}

func (m *MockCenterService) List(ctx context.Context, f model.CenterFilter) (*model.Page[model.Center], error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Page[model.Center]), args.Error(1)
}

func (m *MockCenterService) Get(ctx context.Context, id string) (*model.Center, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Center), args.Error(1)
}

func (m *MockCenterService) Nearby(ctx context.Context, q model.NearbyQuery) ([]model.Center, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Center), args.Error(1)
}

func (m *MockCenterService) Availability(ctx context.Context, id string, date string) (*model.Availability, error) {
	args := m.Called(ctx, id, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Availability), args.Error(1)
}

func (m *MockCenterService) Create(ctx context.Context, in model.Center) (*model.Center, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Center), args.Error(1)
}

func (m *MockCenterService) Update(ctx context.Context, id string, in model.Center) (*model.Center, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Center), args.Error(1)
}

func (m *MockCenterService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
