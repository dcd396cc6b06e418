package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"startconnect/internal/model"
	"startconnect/internal/repository"
)

// GroupRequestService handles join requests for private groups.
type GroupRequestService interface {
	Create(ctx context.Context, uid, groupID, message string) (*model.GroupRequest, error)
	ListMine(ctx context.Context, uid string) ([]model.GroupRequest, error)
	// ListPending returns the pending requests of a group; owner only.
	ListPending(ctx context.Context, uid, groupID string) ([]model.GroupRequest, error)
	Accept(ctx context.Context, uid, id string) (*model.GroupRequest, error)
	Reject(ctx context.Context, uid, id string) (*model.GroupRequest, error)
	// Cancel withdraws the caller's own pending request.
	Cancel(ctx context.Context, uid, id string) error
	// ExpireStale marks pending requests older than maxAge as expired.
	ExpireStale(ctx context.Context, maxAge time.Duration) (int64, error)
}

type groupRequestService struct {
	tx       repository.Transactor
	groups   repository.GroupRepository
	requests repository.GroupRequestRepository
}

func NewGroupRequestService(tx repository.Transactor, groups repository.GroupRepository, requests repository.GroupRequestRepository) GroupRequestService {
	return &groupRequestService{tx: tx, groups: groups, requests: requests}
}

func (s *groupRequestService) Create(ctx context.Context, uid, groupID, message string) (*model.GroupRequest, error) {
	if _, err := s.groups.FindByID(ctx, groupID); err != nil {
		return nil, notFound(err, ErrGroupNotFound)
	}
	switch _, err := s.groups.FindMember(ctx, groupID, uid); {
	case err == nil:
		return nil, ErrAlreadyMember
	case !errors.Is(err, sql.ErrNoRows):
		return nil, err
	}
	switch _, err := s.requests.FindPending(ctx, groupID, uid); {
	case err == nil:
		return nil, ErrRequestPending
	case !errors.Is(err, sql.ErrNoRows):
		return nil, err
	}

	req, err := s.requests.Create(ctx, &model.GroupRequest{
		ID:        uuid.NewString(),
		GroupID:   groupID,
		UserID:    uid,
		Message:   strings.TrimSpace(message),
		Status:    model.RequestPending,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		// concurrent duplicate caught by the partial unique index
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrRequestPending
		}
		return nil, err
	}
	return req, nil
}

func (s *groupRequestService) ListMine(ctx context.Context, uid string) ([]model.GroupRequest, error) {
	return s.requests.ListByUser(ctx, uid)
}

func (s *groupRequestService) ListPending(ctx context.Context, uid, groupID string) ([]model.GroupRequest, error) {
	g, err := s.groups.FindByID(ctx, groupID)
	if err != nil {
		return nil, notFound(err, ErrGroupNotFound)
	}
	if g.OwnerID != uid {
		return nil, ErrNotOwner
	}
	return s.requests.ListPendingByGroup(ctx, groupID)
}

// decide loads and locks the request and its group, checks that uid owns the
// group and that the request is still pending, then runs apply.
func (s *groupRequestService) decide(ctx context.Context, uid, id string, apply func(ctx context.Context, g *model.Group, r *model.GroupRequest) error) (*model.GroupRequest, error) {
	var out *model.GroupRequest
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		r, err := s.requests.FindByIDForUpdate(ctx, id)
		if err != nil {
			return notFound(err, ErrRequestNotFound)
		}
		g, err := s.groups.FindByIDForUpdate(ctx, r.GroupID)
		if err != nil {
			return notFound(err, ErrGroupNotFound)
		}
		if g.OwnerID != uid {
			return ErrNotOwner
		}
		if r.Status != model.RequestPending {
			return ErrRequestClosed
		}
		if err := apply(ctx, g, r); err != nil {
			return err
		}
		now := time.Now().UTC()
		if err := s.requests.UpdateStatus(ctx, r.ID, r.Status, now); err != nil {
			return err
		}
		r.DecidedAt = &now
		out = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *groupRequestService) Accept(ctx context.Context, uid, id string) (*model.GroupRequest, error) {
	return s.decide(ctx, uid, id, func(ctx context.Context, g *model.Group, r *model.GroupRequest) error {
		r.Status = model.RequestAccepted
		switch _, err := s.groups.FindMember(ctx, g.ID, r.UserID); {
		case err == nil:
			return nil
		case !errors.Is(err, sql.ErrNoRows):
			return err
		}
		if g.Full() {
			return ErrGroupFull
		}
		err := s.groups.AddMember(ctx, model.GroupMember{
			GroupID:  g.ID,
			UserID:   r.UserID,
			Role:     model.RoleMember,
			JoinedAt: time.Now().UTC(),
		})
		if err != nil {
			return err
		}
		return s.groups.AdjustCounters(ctx, g.ID, 1, 0)
	})
}

func (s *groupRequestService) Reject(ctx context.Context, uid, id string) (*model.GroupRequest, error) {
	return s.decide(ctx, uid, id, func(ctx context.Context, g *model.Group, r *model.GroupRequest) error {
		r.Status = model.RequestRejected
		return nil
	})
}

func (s *groupRequestService) Cancel(ctx context.Context, uid, id string) error {
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		r, err := s.requests.FindByIDForUpdate(ctx, id)
		if err != nil {
			return notFound(err, ErrRequestNotFound)
		}
		if r.UserID != uid {
			return ErrNotAllowed
		}
		if r.Status != model.RequestPending {
			return ErrRequestClosed
		}
		return s.requests.UpdateStatus(ctx, id, model.RequestCancelled, time.Now().UTC())
	})
}

func (s *groupRequestService) ExpireStale(ctx context.Context, maxAge time.Duration) (int64, error) {
	return s.requests.ExpirePendingBefore(ctx, time.Now().UTC().Add(-maxAge))
}
