package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"startconnect/internal/model"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, b *model.Booking) (*model.Booking, error) {
	args := m.Called(ctx, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindByID(ctx context.Context, id string) (*model.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListByUser(ctx context.Context, userID string, from *time.Time) ([]model.Booking, error) {
	args := m.Called(ctx, userID, from)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Booking), args.Error(1)
}

func (m *MockBookingRepository) CountOverlapping(ctx context.Context, centerID string, start, end time.Time) (int, error) {
	args := m.Called(ctx, centerID, start, end)
	return args.Int(0), args.Error(1)
}

func (m *MockBookingRepository) UserHasOverlap(ctx context.Context, userID string, start, end time.Time) (bool, error) {
	args := m.Called(ctx, userID, start, end)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingRepository) ListActiveByCenter(ctx context.Context, centerID string, from, to time.Time) ([]model.Booking, error) {
	args := m.Called(ctx, centerID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, id, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockBookingRepository) CompleteEnded(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
