package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"startconnect/internal/model"
	"startconnect/internal/repository"
	"startconnect/internal/storage"
)

// GroupService manages groups, their membership and their post feed.
type GroupService interface {
	Create(ctx context.Context, uid string, in model.GroupInput) (*model.Group, error)
	List(ctx context.Context, f model.GroupFilter) (*model.Page[model.Group], error)
	Get(ctx context.Context, id string) (*model.Group, error)
	Update(ctx context.Context, uid, id string, in model.GroupInput) (*model.Group, error)
	// Delete is allowed to the owner and to admins.
	Delete(ctx context.Context, caller model.Identity, id string) error
	SetImage(ctx context.Context, uid, id string, r io.Reader, contentType string, size int64) (*model.Group, error)
	ListForMember(ctx context.Context, uid string) ([]model.Group, error)

	Join(ctx context.Context, uid, id string) (*model.GroupMember, error)
	// Leave removes uid. An owner hands the group to the longest-standing
	// remaining member; a group left empty is deleted.
	Leave(ctx context.Context, uid, id string) error
	Transfer(ctx context.Context, uid, id, newOwnerID string) (*model.Group, error)
	Members(ctx context.Context, id string) ([]model.GroupMember, error)
	RemoveMember(ctx context.Context, uid, id, memberID string) error

	CreatePost(ctx context.Context, uid, id, content string) (*model.GroupPost, error)
	ListPosts(ctx context.Context, uid, id string, limit, offset int) (*model.Page[model.GroupPost], error)
	DeletePost(ctx context.Context, uid, id, postID string) error
}

type groupService struct {
	tx     repository.Transactor
	groups repository.GroupRepository
	posts  repository.PostRepository
	store  storage.Storage
}

func NewGroupService(tx repository.Transactor, groups repository.GroupRepository, posts repository.PostRepository, store storage.Storage) GroupService {
	return &groupService{tx: tx, groups: groups, posts: posts, store: store}
}

func (s *groupService) withImage(ctx context.Context, g *model.Group) *model.Group {
	g.ImageURL = presign(ctx, s.store, g.ImagePath)
	return g
}

func (s *groupService) Create(ctx context.Context, uid string, in model.GroupInput) (*model.Group, error) {
	now := time.Now().UTC()
	g := &model.Group{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		HobbyID:     in.HobbyID,
		City:        in.City,
		OwnerID:     uid,
		IsPrivate:   in.IsPrivate,
		MaxMembers:  in.MaxMembers,
		MemberCount: 1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	var created *model.Group
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.groups.Create(ctx, g)
		if err != nil {
			return err
		}
		return s.groups.AddMember(ctx, model.GroupMember{
			GroupID:  g.ID,
			UserID:   uid,
			Role:     model.RoleOwner,
			JoinedAt: now,
		})
	})
	if err != nil {
		if errors.Is(err, repository.ErrReference) {
			return nil, invalid("unknown hobby %q", in.HobbyID)
		}
		return nil, fmt.Errorf("create group: %w", err)
	}
	return created, nil
}

func (s *groupService) List(ctx context.Context, f model.GroupFilter) (*model.Page[model.Group], error) {
	pq := pageQuery(f.Limit, f.Offset)
	f.Limit, f.Offset = pq.Limit, pq.Offset
	res, err := s.groups.List(ctx, f)
	if err != nil {
		return nil, err
	}
	for i := range res.Items {
		s.withImage(ctx, &res.Items[i])
	}
	return toPage(res), nil
}

func (s *groupService) Get(ctx context.Context, id string) (*model.Group, error) {
	g, err := s.groups.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrGroupNotFound)
	}
	return s.withImage(ctx, g), nil
}

func (s *groupService) ListForMember(ctx context.Context, uid string) ([]model.Group, error) {
	groups, err := s.groups.ListByMember(ctx, uid)
	if err != nil {
		return nil, err
	}
	for i := range groups {
		s.withImage(ctx, &groups[i])
	}
	return groups, nil
}

func (s *groupService) Update(ctx context.Context, uid, id string, in model.GroupInput) (*model.Group, error) {
	var updated *model.Group
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		g, err := s.groups.FindByIDForUpdate(ctx, id)
		if err != nil {
			return notFound(err, ErrGroupNotFound)
		}
		if g.OwnerID != uid {
			return ErrNotOwner
		}
		if in.MaxMembers > 0 && in.MaxMembers < g.MemberCount {
			return invalid("maxMembers cannot be below the current member count (%d)", g.MemberCount)
		}
		g.Name = strings.TrimSpace(in.Name)
		g.Description = in.Description
		g.HobbyID = in.HobbyID
		g.City = in.City
		g.IsPrivate = in.IsPrivate
		g.MaxMembers = in.MaxMembers
		g.UpdatedAt = time.Now().UTC()
		updated, err = s.groups.Update(ctx, g)
		return err
	})
	if err != nil {
		if errors.Is(err, repository.ErrReference) {
			return nil, invalid("unknown hobby %q", in.HobbyID)
		}
		return nil, err
	}
	return s.withImage(ctx, updated), nil
}

func (s *groupService) Delete(ctx context.Context, caller model.Identity, id string) error {
	g, err := s.groups.FindByID(ctx, id)
	if err != nil {
		return notFound(err, ErrGroupNotFound)
	}
	if g.OwnerID != caller.UID && !caller.Admin {
		return ErrNotOwner
	}
	if err := s.groups.Delete(ctx, id); err != nil {
		return notFound(err, ErrGroupNotFound)
	}
	s.dropImage(ctx, g.ImagePath)
	return nil
}

// dropImage removes an orphaned object. Failures leave garbage in the bucket
// but never fail the request.
func (s *groupService) dropImage(ctx context.Context, key string) {
	if key != "" && s.store != nil {
		_ = s.store.Delete(ctx, key)
	}
}

func (s *groupService) SetImage(ctx context.Context, uid, id string, r io.Reader, contentType string, size int64) (*model.Group, error) {
	if r == nil {
		return nil, invalid("file is required")
	}
	g, err := s.groups.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrGroupNotFound)
	}
	if g.OwnerID != uid {
		return nil, ErrNotOwner
	}
	key, err := storage.ImageKey(storage.PrefixGroup, id, contentType)
	if err != nil {
		return nil, invalid("%v", err)
	}
	if _, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{Size: size, ContentType: contentType}); err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	old := g.ImagePath
	g.ImagePath = key
	g.UpdatedAt = time.Now().UTC()
	updated, err := s.groups.Update(ctx, g)
	if err != nil {
		s.dropImage(ctx, key)
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	s.dropImage(ctx, old)
	return s.withImage(ctx, updated), nil
}

func (s *groupService) Join(ctx context.Context, uid, id string) (*model.GroupMember, error) {
	var member model.GroupMember
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		g, err := s.groups.FindByIDForUpdate(ctx, id)
		if err != nil {
			return notFound(err, ErrGroupNotFound)
		}
		switch _, err := s.groups.FindMember(ctx, id, uid); {
		case err == nil:
			return ErrAlreadyMember
		case !errors.Is(err, sql.ErrNoRows):
			return err
		}
		if g.IsPrivate {
			return ErrRequestRequired
		}
		if g.Full() {
			return ErrGroupFull
		}
		member = model.GroupMember{GroupID: id, UserID: uid, Role: model.RoleMember, JoinedAt: time.Now().UTC()}
		if err := s.groups.AddMember(ctx, member); err != nil {
			return err
		}
		return s.groups.AdjustCounters(ctx, id, 1, 0)
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadyMember
		}
		return nil, err
	}
	return &member, nil
}

func (s *groupService) Leave(ctx context.Context, uid, id string) error {
	var orphanImage string
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		orphanImage = ""
		g, err := s.groups.FindByIDForUpdate(ctx, id)
		if err != nil {
			return notFound(err, ErrGroupNotFound)
		}
		if err := s.groups.RemoveMember(ctx, id, uid); err != nil {
			return notFound(err, ErrNotMember)
		}
		if g.OwnerID == uid {
			rest, err := s.groups.ListMembers(ctx, id)
			if err != nil {
				return err
			}
			if len(rest) == 0 {
				orphanImage = g.ImagePath
				return s.groups.Delete(ctx, id)
			}
			if err := s.handOver(ctx, g, rest[0].UserID); err != nil {
				return err
			}
		}
		return s.groups.AdjustCounters(ctx, id, -1, 0)
	})
	if err != nil {
		return err
	}
	s.dropImage(ctx, orphanImage)
	return nil
}

// handOver makes newOwnerID the owner of g. Caller holds the group row lock.
func (s *groupService) handOver(ctx context.Context, g *model.Group, newOwnerID string) error {
	if err := s.groups.SetMemberRole(ctx, g.ID, newOwnerID, model.RoleOwner); err != nil {
		return err
	}
	g.OwnerID = newOwnerID
	g.UpdatedAt = time.Now().UTC()
	_, err := s.groups.Update(ctx, g)
	return err
}

func (s *groupService) Transfer(ctx context.Context, uid, id, newOwnerID string) (*model.Group, error) {
	if newOwnerID == uid {
		return nil, invalid("new owner must be another member")
	}
	var out *model.Group
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		g, err := s.groups.FindByIDForUpdate(ctx, id)
		if err != nil {
			return notFound(err, ErrGroupNotFound)
		}
		if g.OwnerID != uid {
			return ErrNotOwner
		}
		if _, err := s.groups.FindMember(ctx, id, newOwnerID); err != nil {
			return notFound(err, ErrNotMember)
		}
		if err := s.groups.SetMemberRole(ctx, id, uid, model.RoleMember); err != nil {
			return err
		}
		if err := s.handOver(ctx, g, newOwnerID); err != nil {
			return err
		}
		out = g
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.withImage(ctx, out), nil
}

func (s *groupService) Members(ctx context.Context, id string) ([]model.GroupMember, error) {
	if _, err := s.groups.FindByID(ctx, id); err != nil {
		return nil, notFound(err, ErrGroupNotFound)
	}
	return s.groups.ListMembers(ctx, id)
}

func (s *groupService) RemoveMember(ctx context.Context, uid, id, memberID string) error {
	if memberID == uid {
		return invalid("use leave to remove yourself")
	}
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		g, err := s.groups.FindByIDForUpdate(ctx, id)
		if err != nil {
			return notFound(err, ErrGroupNotFound)
		}
		if g.OwnerID != uid {
			return ErrNotOwner
		}
		if err := s.groups.RemoveMember(ctx, id, memberID); err != nil {
			return notFound(err, ErrNotMember)
		}
		return s.groups.AdjustCounters(ctx, id, -1, 0)
	})
}

func (s *groupService) CreatePost(ctx context.Context, uid, id, content string) (*model.GroupPost, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, invalid("content is required")
	}
	var post *model.GroupPost
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.groups.FindByIDForUpdate(ctx, id); err != nil {
			return notFound(err, ErrGroupNotFound)
		}
		if _, err := s.groups.FindMember(ctx, id, uid); err != nil {
			return notFound(err, ErrMembersOnly)
		}
		var err error
		post, err = s.posts.Create(ctx, &model.GroupPost{
			ID:        uuid.NewString(),
			GroupID:   id,
			AuthorID:  uid,
			Content:   content,
			CreatedAt: time.Now().UTC(),
		})
		if err != nil {
			return err
		}
		return s.groups.AdjustCounters(ctx, id, 0, 1)
	})
	if err != nil {
		return nil, err
	}
	return post, nil
}

func (s *groupService) ListPosts(ctx context.Context, uid, id string, limit, offset int) (*model.Page[model.GroupPost], error) {
	g, err := s.groups.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrGroupNotFound)
	}
	if g.IsPrivate {
		if _, err := s.groups.FindMember(ctx, id, uid); err != nil {
			return nil, notFound(err, ErrMembersOnly)
		}
	}
	res, err := s.posts.ListByGroup(ctx, id, pageQuery(limit, offset))
	if err != nil {
		return nil, err
	}
	return toPage(res), nil
}

func (s *groupService) DeletePost(ctx context.Context, uid, id, postID string) error {
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		g, err := s.groups.FindByIDForUpdate(ctx, id)
		if err != nil {
			return notFound(err, ErrGroupNotFound)
		}
		p, err := s.posts.FindByID(ctx, postID)
		if err != nil {
			return notFound(err, ErrPostNotFound)
		}
		if p.GroupID != id {
			return ErrPostNotFound
		}
		if p.AuthorID != uid && g.OwnerID != uid {
			return ErrNotAllowed
		}
		if err := s.posts.Delete(ctx, postID); err != nil {
			return notFound(err, ErrPostNotFound)
		}
		return s.groups.AdjustCounters(ctx, id, 0, -1)
	})
}
