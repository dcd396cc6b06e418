package repository

import (
	"context"

	"startconnect/internal/model"
)

// GroupRepository persists groups and their membership lists.
type GroupRepository interface {
	Create(ctx context.Context, g *model.Group) (*model.Group, error)
	FindByID(ctx context.Context, id string) (*model.Group, error)
	// FindByIDForUpdate locks the group row for the rest of the transaction.
	FindByIDForUpdate(ctx context.Context, id string) (*model.Group, error)
	List(ctx context.Context, f model.GroupFilter) (*PageResult[model.Group], error)
	ListByMember(ctx context.Context, userID string) ([]model.Group, error)
	Update(ctx context.Context, g *model.Group) (*model.Group, error)
	Delete(ctx context.Context, id string) error
	// AdjustCounters adds the deltas to member_count and post_count.
	AdjustCounters(ctx context.Context, id string, memberDelta, postDelta int) error
	Count(ctx context.Context) (int, error)

	AddMember(ctx context.Context, m model.GroupMember) error
	// RemoveMember returns sql.ErrNoRows if the user was not a member.
	RemoveMember(ctx context.Context, groupID, userID string) error
	FindMember(ctx context.Context, groupID, userID string) (*model.GroupMember, error)
	// ListMembers returns members ordered by join time, oldest first.
	ListMembers(ctx context.Context, groupID string) ([]model.GroupMember, error)
	SetMemberRole(ctx context.Context, groupID, userID, role string) error
}

// PostRepository persists group feed posts.
type PostRepository interface {
	Create(ctx context.Context, p *model.GroupPost) (*model.GroupPost, error)
	FindByID(ctx context.Context, id string) (*model.GroupPost, error)
	ListByGroup(ctx context.Context, groupID string, pq PageQuery) (*PageResult[model.GroupPost], error)
	Delete(ctx context.Context, id string) error
}
