package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"startconnect/internal/model"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Me(ctx context.Context, uid string) (*model.User, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) UpdateMe(ctx context.Context, uid string, in model.UserUpdate) (*model.User, error) {
	args := m.Called(ctx, uid, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) DeleteMe(ctx context.Context, uid string) error {
	args := m.Called(ctx, uid)
	return args.Error(0)
}

func (m *MockUserService) SetAvatar(ctx context.Context, uid string, r io.Reader, contentType string, size int64) (*model.User, error) {
	args := m.Called(ctx, uid, r, contentType, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) Get(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) Search(ctx context.Context, term string, limit int, offset int) (*model.Page[model.User], error) {
	args := m.Called(ctx, term, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Page[model.User]), args.Error(1)
}
