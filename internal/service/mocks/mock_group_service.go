package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"startconnect/internal/model"
)

type MockGroupService struct {
	mock.Mock
}

func (m *MockGroupService) Create(ctx context.Context, uid string, in model.GroupInput) (*model.Group, error) {
	args := m.Called(ctx, uid, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Group), args.Error(1)
}

func (m *MockGroupService) List(ctx context.Context, f model.GroupFilter) (*model.Page[model.Group], error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Page[model.Group]), args.Error(1)
}

func (m *MockGroupService) Get(ctx context.Context, id string) (*model.Group, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Group), args.Error(1)
}

func (m *MockGroupService) Update(ctx context.Context, uid string, id string, in model.GroupInput) (*model.Group, error) {
	args := m.Called(ctx, uid, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Group), args.Error(1)
}

func (m *MockGroupService) Delete(ctx context.Context, caller model.Identity, id string) error {
	args := m.Called(ctx, caller, id)
	return args.Error(0)
}

func (m *MockGroupService) SetImage(ctx context.Context, uid string, id string, r io.Reader, contentType string, size int64) (*model.Group, error) {
	args := m.Called(ctx, uid, id, r, contentType, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Group), args.Error(1)
}

func (m *MockGroupService) ListForMember(ctx context.Context, uid string) ([]model.Group, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Group), args.Error(1)
}

func (m *MockGroupService) Join(ctx context.Context, uid string, id string) (*model.GroupMember, error) {
	args := m.Called(ctx, uid, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GroupMember), args.Error(1)
}

func (m *MockGroupService) Leave(ctx context.Context, uid string, id string) error {
	args := m.Called(ctx, uid, id)
	return args.Error(0)
}

func (m *MockGroupService) Transfer(ctx context.Context, uid string, id string, newOwnerID string) (*model.Group, error) {
	args := m.Called(ctx, uid, id, newOwnerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Group), args.Error(1)
}

func (m *MockGroupService) Members(ctx context.Context, id string) ([]model.GroupMember, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.GroupMember), args.Error(1)
}

func (m *MockGroupService) RemoveMember(ctx context.Context, uid string, id string, memberID string) error {
	args := m.Called(ctx, uid, id, memberID)
	return args.Error(0)
}

func (m *MockGroupService) CreatePost(ctx context.Context, uid string, id string, content string) (*model.GroupPost, error) {
	args := m.Called(ctx, uid, id, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GroupPost), args.Error(1)
}

func (m *MockGroupService) ListPosts(ctx context.Context, uid string, id string, limit int, offset int) (*model.Page[model.GroupPost], error) {
	args := m.Called(ctx, uid, id, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Page[model.GroupPost]), args.Error(1)
}

func (m *MockGroupService) DeletePost(ctx context.Context, uid string, id string, postID string) error {
	args := m.Called(ctx, uid, id, postID)
	return args.Error(0)
}
