package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	idpMocks "startconnect/internal/identity/mocks"
	"startconnect/internal/model"
	"startconnect/internal/repository"
	repoMocks "startconnect/internal/repository/mocks"
	"startconnect/internal/storage"
	storeMocks "startconnect/internal/storage/mocks"
)

type userFixture struct {
	users  *repoMocks.MockUserRepository
	groups *repoMocks.MockGroupRepository
	idp    *idpMocks.MockProvider
	store  *storeMocks.MockStorage
	svc    UserService
}

func newUserFixture() *userFixture {
	f := &userFixture{
		users:  new(repoMocks.MockUserRepository),
		groups: new(repoMocks.MockGroupRepository),
		idp:    new(idpMocks.MockProvider),
		store:  new(storeMocks.MockStorage),
	}
	groupSvc := NewGroupService(&repoMocks.Transactor{}, f.groups, new(repoMocks.MockPostRepository), f.store)
	f.svc = NewUserService(f.users, groupSvc, f.idp, f.store)
	return f
}

func TestUserService_SetAvatar(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces previous object", func(t *testing.T) {
		f := newUserFixture()
		r := strings.NewReader("png-bytes")
		f.users.On("FindByID", ctx, "u1").Return(&model.User{ID: "u1", AvatarPath: "avatars/u1/old.png"}, nil)
		f.store.On("Put", ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "avatars/u1/") && strings.HasSuffix(key, ".png")
		}), r, storage.PutObjectOptions{Size: 9, ContentType: "image/png"}).Return(storage.ObjectInfo{}, nil)
		f.users.On("Update", ctx, mock.Anything).Return(&model.User{ID: "u1", AvatarPath: "avatars/u1/new.png"}, nil)
		f.store.On("Delete", ctx, "avatars/u1/old.png").Return(nil)
		f.store.On("PresignGet", ctx, "avatars/u1/new.png", time.Hour).Return("https://cdn/new.png", nil)

		u, err := f.svc.SetAvatar(ctx, "u1", r, "image/png", 9)
		require.NoError(t, err)
		assert.Equal(t, "https://cdn/new.png", u.AvatarURL)
		f.store.AssertExpectations(t)
	})

	t.Run("rejects non image", func(t *testing.T) {
		f := newUserFixture()
		f.users.On("FindByID", ctx, "u1").Return(&model.User{ID: "u1"}, nil)

		_, err := f.svc.SetAvatar(ctx, "u1", strings.NewReader("x"), "application/pdf", 1)
		assert.ErrorIs(t, err, ErrInvalidInput)
		f.store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("db failure removes upload", func(t *testing.T) {
		f := newUserFixture()
		f.users.On("FindByID", ctx, "u1").Return(&model.User{ID: "u1"}, nil)
		f.store.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).Return(storage.ObjectInfo{}, nil)
		f.users.On("Update", ctx, mock.Anything).Return(nil, errors.New("db down"))
		f.store.On("Delete", ctx, mock.MatchedBy(func(key string) bool { return strings.HasPrefix(key, "avatars/u1/") })).Return(nil)

		_, err := f.svc.SetAvatar(ctx, "u1", strings.NewReader("x"), "image/jpeg", 1)
		assert.EqualError(t, err, "db save failed: db down")
		f.store.AssertExpectations(t)
	})
}

func TestUserService_GetHidesPrivateFields(t *testing.T) {
	f := newUserFixture()
	f.users.On("FindByID", mock.Anything, "u2").Return(&model.User{ID: "u2", Email: "x@y.z", Phone: "123", DisplayName: "Bo"}, nil)
	f.users.On("FindByID", mock.Anything, "u404").Return(nil, sql.ErrNoRows)

	u, err := f.svc.Get(context.Background(), "u2")
	require.NoError(t, err)
	assert.Empty(t, u.Email)
	assert.Empty(t, u.Phone)
	assert.Equal(t, "Bo", u.DisplayName)

	_, err = f.svc.Get(context.Background(), "u404")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_DeleteMe(t *testing.T) {
	ctx := context.Background()
	f := newUserFixture()
	f.users.On("FindByID", ctx, "u1").Return(&model.User{ID: "u1", AvatarPath: "avatars/u1/a.png"}, nil)
	f.groups.On("ListByMember", ctx, "u1").Return([]model.Group{{ID: "g1"}}, nil)
	f.groups.On("FindByIDForUpdate", ctx, "g1").Return(&model.Group{ID: "g1", OwnerID: "other"}, nil)
	f.groups.On("RemoveMember", ctx, "g1", "u1").Return(nil)
	f.groups.On("AdjustCounters", ctx, "g1", -1, 0).Return(nil)
	f.users.On("Delete", ctx, "u1").Return(nil)
	f.store.On("Delete", ctx, "avatars/u1/a.png").Return(nil)
	f.idp.On("DeleteAccount", ctx, "u1").Return(nil)

	require.NoError(t, f.svc.DeleteMe(ctx, "u1"))
	f.groups.AssertExpectations(t)
	f.users.AssertExpectations(t)
	f.idp.AssertExpectations(t)
}

func TestUserService_UpdateMe(t *testing.T) {
	ctx := context.Background()
	f := newUserFixture()
	f.users.On("FindByID", ctx, "u1").Return(&model.User{ID: "u1", DisplayName: "Old", City: "Lille"}, nil)
	f.users.On("Update", ctx, mock.MatchedBy(func(u *model.User) bool {
		return u.DisplayName == "New" && u.City == "Lille"
	})).Return(&model.User{ID: "u1", DisplayName: "New", City: "Lille"}, nil)

	name := "  New "
	u, err := f.svc.UpdateMe(ctx, "u1", model.UserUpdate{DisplayName: &name})
	require.NoError(t, err)
	assert.Equal(t, "New", u.DisplayName)
}

func TestAdminService_SetRole(t *testing.T) {
	ctx := context.Background()
	users := new(repoMocks.MockUserRepository)
	idp := new(idpMocks.MockProvider)
	users.On("FindByID", ctx, "u1").Return(&model.User{ID: "u1", IsAdmin: true}, nil)
	idp.On("SetAdmin", ctx, "u1", true).Return(nil)
	users.On("SetAdmin", ctx, "u1", true).Return(nil)

	svc := NewAdminService(users, nil, nil, nil, nil, idp)
	u, err := svc.SetRole(ctx, "u1", true)
	require.NoError(t, err)
	assert.True(t, u.IsAdmin)
	idp.AssertExpectations(t)
	users.AssertExpectations(t)
}

func TestAdminService_Stats(t *testing.T) {
	ctx := context.Background()
	users := new(repoMocks.MockUserRepository)
	groups := new(repoMocks.MockGroupRepository)
	bookings := new(repoMocks.MockBookingRepository)
	centers := new(repoMocks.MockCenterRepository)
	users.On("Count", ctx).Return(10, nil)
	groups.On("Count", ctx).Return(4, nil)
	bookings.On("Count", ctx).Return(25, nil)
	centers.On("Count", ctx).Return(3, nil)

	st, err := NewAdminService(users, groups, bookings, centers, nil, nil).Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.Stats{Users: 10, Groups: 4, Bookings: 25, Centers: 3}, *st)
}

func TestAdminService_ListUsers(t *testing.T) {
	ctx := context.Background()
	users := new(repoMocks.MockUserRepository)
	users.On("Search", ctx, "", repository.PageQuery{Limit: 100, Offset: 0}).
		Return(&repository.PageResult[model.User]{Items: []model.User{{ID: "u1", Email: "a@b.c"}}, Total: 1}, nil)

	page, err := NewAdminService(users, nil, nil, nil, nil, nil).ListUsers(ctx, "", 500, -3)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
	assert.Equal(t, "a@b.c", page.Items[0].Email)
}
