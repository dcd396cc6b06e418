package repository

import (
	"context"
	"time"

	"startconnect/internal/model"
)

// GroupRequestRepository persists join requests for private groups.
type GroupRequestRepository interface {
	Create(ctx context.Context, r *model.GroupRequest) (*model.GroupRequest, error)
	FindByID(ctx context.Context, id string) (*model.GroupRequest, error)
	// FindByIDForUpdate locks the request row for the rest of the transaction.
	FindByIDForUpdate(ctx context.Context, id string) (*model.GroupRequest, error)
	FindPending(ctx context.Context, groupID, userID string) (*model.GroupRequest, error)
	ListByUser(ctx context.Context, userID string) ([]model.GroupRequest, error)
	ListPendingByGroup(ctx context.Context, groupID string) ([]model.GroupRequest, error)
	UpdateStatus(ctx context.Context, id, status string, decidedAt time.Time) error
	// ExpirePendingBefore marks pending requests created before cutoff as expired.
	ExpirePendingBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
