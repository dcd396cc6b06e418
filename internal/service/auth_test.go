package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"startconnect/internal/identity"
	idpMocks "startconnect/internal/identity/mocks"
	"startconnect/internal/model"
	"startconnect/internal/repository"
	repoMocks "startconnect/internal/repository/mocks"
)

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()
	in := model.Registration{Email: " Ann@Example.com ", Password: "secret1", DisplayName: "Ann"}

	tests := []struct {
		name    string
		setup   func(idp *idpMocks.MockProvider, users *repoMocks.MockUserRepository)
		wantErr error
		errMsg  string
	}{
		{
			name: "happy path",
			setup: func(idp *idpMocks.MockProvider, users *repoMocks.MockUserRepository) {
				idp.On("CreateAccount", ctx, "ann@example.com", "secret1", "Ann").Return("uid-1", nil)
				users.On("Create", ctx, mock.MatchedBy(func(u *model.User) bool {
					return u.ID == "uid-1" && u.Email == "ann@example.com" && !u.CreatedAt.IsZero()
				})).Return(&model.User{ID: "uid-1", Email: "ann@example.com"}, nil)
			},
		},
		{
			name: "duplicate email",
			setup: func(idp *idpMocks.MockProvider, users *repoMocks.MockUserRepository) {
				idp.On("CreateAccount", ctx, mock.Anything, mock.Anything, mock.Anything).Return("", identity.ErrEmailExists)
			},
			wantErr: ErrEmailExists,
		},
		{
			name: "profile failure deletes account",
			setup: func(idp *idpMocks.MockProvider, users *repoMocks.MockUserRepository) {
				idp.On("CreateAccount", ctx, mock.Anything, mock.Anything, mock.Anything).Return("uid-2", nil)
				users.On("Create", ctx, mock.Anything).Return(nil, errors.New("db down"))
				idp.On("DeleteAccount", ctx, "uid-2").Return(nil)
			},
			errMsg: "profile save failed: db down",
		},
		{
			name: "rollback failure is reported",
			setup: func(idp *idpMocks.MockProvider, users *repoMocks.MockUserRepository) {
				idp.On("CreateAccount", ctx, mock.Anything, mock.Anything, mock.Anything).Return("uid-3", nil)
				users.On("Create", ctx, mock.Anything).Return(nil, repository.ErrDuplicate)
				idp.On("DeleteAccount", ctx, "uid-3").Return(errors.New("idp down"))
			},
			wantErr: ErrEmailExists,
			errMsg:  "account rollback failed: idp down",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idp := new(idpMocks.MockProvider)
			users := new(repoMocks.MockUserRepository)
			tt.setup(idp, users)

			u, err := NewAuthService(idp, users).Register(ctx, in)
			if tt.wantErr == nil && tt.errMsg == "" {
				require.NoError(t, err)
				assert.Equal(t, "uid-1", u.ID)
			}
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.errMsg != "" {
				assert.ErrorContains(t, err, tt.errMsg)
			}
			idp.AssertExpectations(t)
			users.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		idp := new(idpMocks.MockProvider)
		users := new(repoMocks.MockUserRepository)
		idp.On("SignIn", ctx, "ann@example.com", "secret1").
			Return(&identity.Session{IDToken: "id", RefreshToken: "rt", ExpiresIn: 3600, UID: "u1"}, nil)
		users.On("FindByID", ctx, "u1").Return(&model.User{ID: "u1"}, nil)

		res, err := NewAuthService(idp, users).Login(ctx, model.Credentials{Email: "Ann@example.com", Password: "secret1"})
		require.NoError(t, err)
		assert.Equal(t, "id", res.IDToken)
		assert.Equal(t, 3600, res.ExpiresIn)
		assert.Equal(t, "u1", res.User.ID)
	})

	t.Run("bad credentials", func(t *testing.T) {
		idp := new(idpMocks.MockProvider)
		idp.On("SignIn", ctx, mock.Anything, mock.Anything).Return(nil, identity.ErrInvalidCredentials)

		_, err := NewAuthService(idp, new(repoMocks.MockUserRepository)).Login(ctx, model.Credentials{Email: "a@b.c", Password: "x"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()
	idp := new(idpMocks.MockProvider)
	idp.On("RevokeSessions", ctx, "u1").Return(nil)
	idp.On("RevokeSessions", ctx, "gone").Return(identity.ErrAccountNotFound)

	svc := NewAuthService(idp, new(repoMocks.MockUserRepository))
	assert.NoError(t, svc.Logout(ctx, "u1"))
	assert.ErrorIs(t, svc.Logout(ctx, "gone"), ErrUserNotFound)
}
