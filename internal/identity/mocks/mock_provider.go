package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"startconnect/internal/identity"
	"startconnect/internal/model"
)

type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) VerifyToken(ctx context.Context, token string) (*model.Identity, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Identity), args.Error(1)
}

func (m *MockProvider) CreateAccount(ctx context.Context, email, password, displayName string) (string, error) {
	args := m.Called(ctx, email, password, displayName)
	return args.String(0), args.Error(1)
}

func (m *MockProvider) DeleteAccount(ctx context.Context, uid string) error {
	args := m.Called(ctx, uid)
	return args.Error(0)
}

func (m *MockProvider) RevokeSessions(ctx context.Context, uid string) error {
	args := m.Called(ctx, uid)
	return args.Error(0)
}

func (m *MockProvider) SetAdmin(ctx context.Context, uid string, admin bool) error {
	args := m.Called(ctx, uid, admin)
	return args.Error(0)
}

func (m *MockProvider) SignIn(ctx context.Context, email, password string) (*identity.Session, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Session), args.Error(1)
}
