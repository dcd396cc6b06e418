package repository

import (
	"context"

	"startconnect/internal/model"
)

// UserRepository persists user profiles. Missing rows surface as sql.ErrNoRows.
type UserRepository interface {
	Create(ctx context.Context, u *model.User) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	Update(ctx context.Context, u *model.User) (*model.User, error)
	Delete(ctx context.Context, id string) error
	// Search matches display names case-insensitively; an empty term lists everyone.
	Search(ctx context.Context, term string, pq PageQuery) (*PageResult[model.User], error)
	SetAdmin(ctx context.Context, id string, admin bool) error
	Count(ctx context.Context) (int, error)
}
