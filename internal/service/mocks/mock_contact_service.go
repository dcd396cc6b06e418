package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"startconnect/internal/model"
)

type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) List(ctx context.Context, uid string) ([]model.Contact, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Contact), args.Error(1)
}

func (m *MockContactService) Add(ctx context.Context, uid string, contactID string) (*model.Contact, error) {
	args := m.Called(ctx, uid, contactID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Contact), args.Error(1)
}

func (m *MockContactService) Remove(ctx context.Context, uid string, contactID string) error {
	args := m.Called(ctx, uid, contactID)
	return args.Error(0)
}
