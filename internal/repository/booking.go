package repository

import (
	"context"
	"time"

	"startconnect/internal/model"
)

// BookingRepository persists court bookings. Only confirmed bookings count as active.
type BookingRepository interface {
	Create(ctx context.Context, b *model.Booking) (*model.Booking, error)
	FindByID(ctx context.Context, id string) (*model.Booking, error)
	// ListByUser returns the user's bookings; a non-nil from keeps only those ending after it.
	ListByUser(ctx context.Context, userID string, from *time.Time) ([]model.Booking, error)
	// CountOverlapping counts active bookings at the center intersecting [start, end).
	CountOverlapping(ctx context.Context, centerID string, start, end time.Time) (int, error)
	// UserHasOverlap reports whether the user holds an active booking intersecting [start, end).
	UserHasOverlap(ctx context.Context, userID string, start, end time.Time) (bool, error)
	ListActiveByCenter(ctx context.Context, centerID string, from, to time.Time) ([]model.Booking, error)
	UpdateStatus(ctx context.Context, id, status string) error
	// CompleteEnded marks active bookings that ended before now as completed.
	CompleteEnded(ctx context.Context, now time.Time) (int64, error)
	Count(ctx context.Context) (int, error)
}
