// Package service holds the use cases behind the HTTP handlers. Services
// validate ownership and state, and run multi-step updates through a
// repository.Transactor.
package service

import (
	"context"
	"time"

	"startconnect/internal/model"
	"startconnect/internal/repository"
	"startconnect/internal/storage"
)

const (
	defaultLimit = 20
	maxLimit     = 100
	presignTTL   = time.Hour
)

func pageQuery(limit, offset int) repository.PageQuery {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return repository.PageQuery{Limit: limit, Offset: offset}
}

func toPage[T any](res *repository.PageResult[T]) *model.Page[T] {
	items := res.Items
	if items == nil {
		items = []T{}
	}
	return &model.Page[T]{Items: items, Total: res.Total}
}

// presign returns a download URL for key, or "" when key is empty or signing fails.
func presign(ctx context.Context, store storage.Storage, key string) string {
	if key == "" || store == nil {
		return ""
	}
	u, err := store.PresignGet(ctx, key, presignTTL)
	if err != nil {
		return ""
	}
	return u
}
