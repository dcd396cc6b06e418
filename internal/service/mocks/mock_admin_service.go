package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"startconnect/internal/model"
)

type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) ListUsers(ctx context.Context, term string, limit int, offset int) (*model.Page[model.User], error) {
	args := m.Called(ctx, term, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Page[model.User]), args.Error(1)
}

func (m *MockAdminService) SetRole(ctx context.Context, uid string, admin bool) (*model.User, error) {
	args := m.Called(ctx, uid, admin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAdminService) DeleteUser(ctx context.Context, uid string) error {
	args := m.Called(ctx, uid)
	return args.Error(0)
}

func (m *MockAdminService) Stats(ctx context.Context) (*model.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Stats), args.Error(1)
}
