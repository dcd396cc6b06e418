package service

import (
	"context"
	"errors"
	"fmt"

	"startconnect/internal/identity"
	"startconnect/internal/model"
	"startconnect/internal/repository"
)

// AdminService backs the /admin endpoints. Callers are already known to be admins.
type AdminService interface {
	ListUsers(ctx context.Context, term string, limit, offset int) (*model.Page[model.User], error)
	// SetRole sets or clears the admin claim and mirrors it on the profile.
	SetRole(ctx context.Context, uid string, admin bool) (*model.User, error)
	DeleteUser(ctx context.Context, uid string) error
	Stats(ctx context.Context) (*model.Stats, error)
}

type adminService struct {
	users    repository.UserRepository
	groups   repository.GroupRepository
	bookings repository.BookingRepository
	centers  repository.CenterRepository
	accounts UserService
	idp      identity.Provider
}

func NewAdminService(
	users repository.UserRepository,
	groups repository.GroupRepository,
	bookings repository.BookingRepository,
	centers repository.CenterRepository,
	accounts UserService,
	idp identity.Provider,
) AdminService {
	return &adminService{users: users, groups: groups, bookings: bookings, centers: centers, accounts: accounts, idp: idp}
}

func (s *adminService) ListUsers(ctx context.Context, term string, limit, offset int) (*model.Page[model.User], error) {
	res, err := s.users.Search(ctx, term, pageQuery(limit, offset))
	if err != nil {
		return nil, err
	}
	return toPage(res), nil
}

func (s *adminService) SetRole(ctx context.Context, uid string, admin bool) (*model.User, error) {
	if _, err := s.users.FindByID(ctx, uid); err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}
	if err := s.idp.SetAdmin(ctx, uid, admin); err != nil {
		if errors.Is(err, identity.ErrAccountNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("set admin claim: %w", err)
	}
	if err := s.users.SetAdmin(ctx, uid, admin); err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}
	u, err := s.users.FindByID(ctx, uid)
	if err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}
	return u, nil
}

// DeleteUser applies the same cleanup as a self-service account deletion.
func (s *adminService) DeleteUser(ctx context.Context, uid string) error {
	return s.accounts.DeleteMe(ctx, uid)
}

func (s *adminService) Stats(ctx context.Context) (*model.Stats, error) {
	var st model.Stats
	counters := []struct {
		dst   *int
		count func(context.Context) (int, error)
	}{
		{&st.Users, s.users.Count},
		{&st.Groups, s.groups.Count},
		{&st.Bookings, s.bookings.Count},
		{&st.Centers, s.centers.Count},
	}
	for _, c := range counters {
		n, err := c.count(ctx)
		if err != nil {
			return nil, err
		}
		*c.dst = n
	}
	return &st, nil
}
