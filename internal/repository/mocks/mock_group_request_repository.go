package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"startconnect/internal/model"
)

type MockGroupRequestRepository struct {
	mock.Mock
}

func (m *MockGroupRequestRepository) Create(ctx context.Context, r *model.GroupRequest) (*model.GroupRequest, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GroupRequest), args.Error(1)
}

func (m *MockGroupRequestRepository) FindByID(ctx context.Context, id string) (*model.GroupRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GroupRequest), args.Error(1)
}

func (m *MockGroupRequestRepository) FindByIDForUpdate(ctx context.Context, id string) (*model.GroupRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GroupRequest), args.Error(1)
}

func (m *MockGroupRequestRepository) FindPending(ctx context.Context, groupID, userID string) (*model.GroupRequest, error) {
	args := m.Called(ctx, groupID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GroupRequest), args.Error(1)
}

func (m *MockGroupRequestRepository) ListByUser(ctx context.Context, userID string) ([]model.GroupRequest, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.GroupRequest), args.Error(1)
}

func (m *MockGroupRequestRepository) ListPendingByGroup(ctx context.Context, groupID string) ([]model.GroupRequest, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.GroupRequest), args.Error(1)
}

func (m *MockGroupRequestRepository) UpdateStatus(ctx context.Context, id, status string, decidedAt time.Time) error {
	args := m.Called(ctx, id, status, decidedAt)
	return args.Error(0)
}

func (m *MockGroupRequestRepository) ExpirePendingBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}
