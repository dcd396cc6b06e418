package repository

import (
	"context"

	"startconnect/internal/model"
)

// ContactRepository persists user contact lists.
type ContactRepository interface {
	List(ctx context.Context, userID string) ([]model.Contact, error)
	Add(ctx context.Context, userID, contactID string) (*model.Contact, error)
	// Remove returns sql.ErrNoRows if no such contact existed.
	Remove(ctx context.Context, userID, contactID string) error
}
