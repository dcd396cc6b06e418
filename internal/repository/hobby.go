package repository

import (
	"context"

	"startconnect/internal/model"
)

// HobbyRepository persists the hobby catalog and per-user hobby lists.
type HobbyRepository interface {
	List(ctx context.Context) ([]model.Hobby, error)
	Create(ctx context.Context, h *model.Hobby) (*model.Hobby, error)
	Delete(ctx context.Context, id string) error
	// CountExisting returns how many of ids are present in the catalog.
	CountExisting(ctx context.Context, ids []string) (int, error)
	ListByUser(ctx context.Context, userID string) ([]model.Hobby, error)
	ReplaceForUser(ctx context.Context, userID string, ids []string) error
}
