package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"startconnect/internal/identity"
	"startconnect/internal/model"
	"startconnect/internal/repository"
	"startconnect/internal/storage"
)

// UserService manages profiles.
type UserService interface {
	Me(ctx context.Context, uid string) (*model.User, error)
	UpdateMe(ctx context.Context, uid string, in model.UserUpdate) (*model.User, error)
	// DeleteMe leaves every group, removes the profile and then the identity account.
	DeleteMe(ctx context.Context, uid string) error
	SetAvatar(ctx context.Context, uid string, r io.Reader, contentType string, size int64) (*model.User, error)
	// Get returns the public view of another user's profile.
	Get(ctx context.Context, id string) (*model.User, error)
	Search(ctx context.Context, term string, limit, offset int) (*model.Page[model.User], error)
}

type userService struct {
	users  repository.UserRepository
	groups GroupService
	idp    identity.Provider
	store  storage.Storage
}

func NewUserService(users repository.UserRepository, groups GroupService, idp identity.Provider, store storage.Storage) UserService {
	return &userService{users: users, groups: groups, idp: idp, store: store}
}

func (s *userService) withAvatar(ctx context.Context, u *model.User) *model.User {
	u.AvatarURL = presign(ctx, s.store, u.AvatarPath)
	return u
}

func (s *userService) Me(ctx context.Context, uid string) (*model.User, error) {
	u, err := s.users.FindByID(ctx, uid)
	if err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}
	return s.withAvatar(ctx, u), nil
}

func (s *userService) UpdateMe(ctx context.Context, uid string, in model.UserUpdate) (*model.User, error) {
	u, err := s.users.FindByID(ctx, uid)
	if err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}
	if in.DisplayName != nil {
		name := strings.TrimSpace(*in.DisplayName)
		in.DisplayName = &name
	}
	in.Apply(u)
	updated, err := s.users.Update(ctx, u)
	if err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}
	return s.withAvatar(ctx, updated), nil
}

func (s *userService) DeleteMe(ctx context.Context, uid string) error {
	u, err := s.users.FindByID(ctx, uid)
	if err != nil {
		return notFound(err, ErrUserNotFound)
	}
	groups, err := s.groups.ListForMember(ctx, uid)
	if err != nil {
		return fmt.Errorf("list groups: %w", err)
	}
	for _, g := range groups {
		if err := s.groups.Leave(ctx, uid, g.ID); err != nil && !errors.Is(err, ErrNotFound) {
			return fmt.Errorf("leave group %s: %w", g.ID, err)
		}
	}
	if err := s.users.Delete(ctx, uid); err != nil {
		return notFound(err, ErrUserNotFound)
	}
	if u.AvatarPath != "" {
		_ = s.store.Delete(ctx, u.AvatarPath)
	}
	if err := s.idp.DeleteAccount(ctx, uid); err != nil && !errors.Is(err, identity.ErrAccountNotFound) {
		return fmt.Errorf("delete account: %w", err)
	}
	return nil
}

func (s *userService) SetAvatar(ctx context.Context, uid string, r io.Reader, contentType string, size int64) (*model.User, error) {
	if r == nil {
		return nil, invalid("file is required")
	}
	u, err := s.users.FindByID(ctx, uid)
	if err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}
	key, err := storage.ImageKey(storage.PrefixAvatar, uid, contentType)
	if err != nil {
		return nil, invalid("%v", err)
	}
	if _, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{Size: size, ContentType: contentType}); err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	old := u.AvatarPath
	u.AvatarPath = key
	u.UpdatedAt = time.Now().UTC()
	updated, err := s.users.Update(ctx, u)
	if err != nil {
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	if old != "" {
		_ = s.store.Delete(ctx, old)
	}
	return s.withAvatar(ctx, updated), nil
}

func (s *userService) Get(ctx context.Context, id string) (*model.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}
	pub := u.PublicProfile()
	return s.withAvatar(ctx, &pub), nil
}

func (s *userService) Search(ctx context.Context, term string, limit, offset int) (*model.Page[model.User], error) {
	res, err := s.users.Search(ctx, strings.TrimSpace(term), pageQuery(limit, offset))
	if err != nil {
		return nil, err
	}
	for i := range res.Items {
		res.Items[i] = res.Items[i].PublicProfile()
		s.withAvatar(ctx, &res.Items[i])
	}
	return toPage(res), nil
}
