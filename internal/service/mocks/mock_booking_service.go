package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"startconnect/internal/model"
)

type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) Create(ctx context.Context, uid string, in model.BookingInput) (*model.Booking, error) {
	args := m.Called(ctx, uid, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Booking), args.Error(1)
}

func (m *MockBookingService) ListMine(ctx context.Context, uid string, upcoming bool) ([]model.Booking, error) {
	args := m.Called(ctx, uid, upcoming)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Booking), args.Error(1)
}

func (m *MockBookingService) Get(ctx context.Context, caller model.Identity, id string) (*model.Booking, error) {
	args := m.Called(ctx, caller, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Booking), args.Error(1)
}

func (m *MockBookingService) Cancel(ctx context.Context, uid string, id string) (*model.Booking, error) {
	args := m.Called(ctx, uid, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Booking), args.Error(1)
}

func (m *MockBookingService) CompleteEnded(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
