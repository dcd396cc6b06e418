package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"startconnect/internal/model"
)

type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) List(ctx context.Context, userID string) ([]model.Contact, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Contact), args.Error(1)
}

func (m *MockContactRepository) Add(ctx context.Context, userID, contactID string) (*model.Contact, error) {
	args := m.Called(ctx, userID, contactID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Contact), args.Error(1)
}

func (m *MockContactRepository) Remove(ctx context.Context, userID, contactID string) error {
	args := m.Called(ctx, userID, contactID)
	return args.Error(0)
}
