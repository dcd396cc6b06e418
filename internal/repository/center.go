package repository

import (
	"context"

	"startconnect/internal/model"
)

// Bounds is a latitude/longitude box used to pre-filter radius searches.
type Bounds struct {
	MinLat, MaxLat float64
	MinLng, MaxLng float64
}

// CenterRepository persists sports venues.
type CenterRepository interface {
	Create(ctx context.Context, c *model.Center) (*model.Center, error)
	FindByID(ctx context.Context, id string) (*model.Center, error)
	// FindByIDForUpdate locks the center row, serializing bookings per center.
	FindByIDForUpdate(ctx context.Context, id string) (*model.Center, error)
	Update(ctx context.Context, c *model.Center) (*model.Center, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f model.CenterFilter) (*PageResult[model.Center], error)
	WithinBounds(ctx context.Context, b Bounds, sport string) ([]model.Center, error)
	Count(ctx context.Context) (int, error)
}
