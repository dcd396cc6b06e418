package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"startconnect/internal/model"
	"startconnect/internal/repository"
)

type MockGroupRepository struct {
	mock.Mock
}

func (m *MockGroupRepository) Create(ctx context.Context, g *model.Group) (*model.Group, error) {
	args := m.Called(ctx, g)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Group), args.Error(1)
}

func (m *MockGroupRepository) FindByID(ctx context.Context, id string) (*model.Group, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Group), args.Error(1)
}

func (m *MockGroupRepository) FindByIDForUpdate(ctx context.Context, id string) (*model.Group, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Group), args.Error(1)
}

func (m *MockGroupRepository) List(ctx context.Context, f model.GroupFilter) (*repository.PageResult[model.Group], error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Group]), args.Error(1)
}

func (m *MockGroupRepository) ListByMember(ctx context.Context, userID string) ([]model.Group, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Group), args.Error(1)
}

func (m *MockGroupRepository) Update(ctx context.Context, g *model.Group) (*model.Group, error) {
	args := m.Called(ctx, g)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Group), args.Error(1)
}

func (m *MockGroupRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockGroupRepository) AdjustCounters(ctx context.Context, id string, memberDelta, postDelta int) error {
	args := m.Called(ctx, id, memberDelta, postDelta)
	return args.Error(0)
}

func (m *MockGroupRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockGroupRepository) AddMember(ctx context.Context, gm model.GroupMember) error {
	args := m.Called(ctx, gm)
	return args.Error(0)
}

func (m *MockGroupRepository) RemoveMember(ctx context.Context, groupID, userID string) error {
	args := m.Called(ctx, groupID, userID)
	return args.Error(0)
}

func (m *MockGroupRepository) FindMember(ctx context.Context, groupID, userID string) (*model.GroupMember, error) {
	args := m.Called(ctx, groupID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GroupMember), args.Error(1)
}

func (m *MockGroupRepository) ListMembers(ctx context.Context, groupID string) ([]model.GroupMember, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.GroupMember), args.Error(1)
}

func (m *MockGroupRepository) SetMemberRole(ctx context.Context, groupID, userID, role string) error {
	args := m.Called(ctx, groupID, userID, role)
	return args.Error(0)
}

type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, p *model.GroupPost) (*model.GroupPost, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GroupPost), args.Error(1)
}

func (m *MockPostRepository) FindByID(ctx context.Context, id string) (*model.GroupPost, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GroupPost), args.Error(1)
}

func (m *MockPostRepository) ListByGroup(ctx context.Context, groupID string, pq repository.PageQuery) (*repository.PageResult[model.GroupPost], error) {
	args := m.Called(ctx, groupID, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.GroupPost]), args.Error(1)
}

func (m *MockPostRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
