package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"startconnect/internal/model"
)

type MockGroupRequestService struct {
	mock.Mock
}

func (m *MockGroupRequestService) Create(ctx context.Context, uid string, groupID string, message string) (*model.GroupRequest, error) {
	args := m.Called(ctx, uid, groupID, message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GroupRequest), args.Error(1)
}

func (m *MockGroupRequestService) ListMine(ctx context.Context, uid string) ([]model.GroupRequest, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.GroupRequest), args.Error(1)
}

func (m *MockGroupRequestService) ListPending(ctx context.Context, uid string, groupID string) ([]model.GroupRequest, error) {
	args := m.Called(ctx, uid, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.GroupRequest), args.Error(1)
}

func (m *MockGroupRequestService) Accept(ctx context.Context, uid string, id string) (*model.GroupRequest, error) {
	args := m.Called(ctx, uid, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GroupRequest), args.Error(1)
}

func (m *MockGroupRequestService) Reject(ctx context.Context, uid string, id string) (*model.GroupRequest, error) {
	args := m.Called(ctx, uid, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GroupRequest), args.Error(1)
}

func (m *MockGroupRequestService) Cancel(ctx context.Context, uid string, id string) error {
	args := m.Called(ctx, uid, id)
	return args.Error(0)
}

func (m *MockGroupRequestService) ExpireStale(ctx context.Context, maxAge time.Duration) (int64, error) {
	args := m.Called(ctx, maxAge)
	return args.Get(0).(int64), args.Error(1)
}
