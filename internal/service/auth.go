package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"startconnect/internal/identity"
	"startconnect/internal/model"
	"startconnect/internal/repository"
)

// LoginResult is returned by a successful sign-in.
type LoginResult struct {
	IDToken      string      `json:"idToken"`
	RefreshToken string      `json:"refreshToken"`
	ExpiresIn    int         `json:"expiresIn"`
	User         *model.User `json:"user"`
}

// AuthService registers accounts and manages sessions.
type AuthService interface {
	// Register creates the identity account then the profile. A failed
	// profile insert deletes the identity account again.
	Register(ctx context.Context, in model.Registration) (*model.User, error)
	Login(ctx context.Context, in model.Credentials) (*LoginResult, error)
	// Logout revokes every refresh token of uid.
	Logout(ctx context.Context, uid string) error
}

type authService struct {
	idp   identity.Provider
	users repository.UserRepository
}

func NewAuthService(idp identity.Provider, users repository.UserRepository) AuthService {
	return &authService{idp: idp, users: users}
}

func (s *authService) Register(ctx context.Context, in model.Registration) (*model.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	uid, err := s.idp.CreateAccount(ctx, email, in.Password, in.DisplayName)
	if err != nil {
		if errors.Is(err, identity.ErrEmailExists) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("create account: %w", err)
	}

	now := time.Now().UTC()
	u, err := s.users.Create(ctx, &model.User{
		ID:          uid,
		Email:       email,
		DisplayName: strings.TrimSpace(in.DisplayName),
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		City:        in.City,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			err = ErrEmailExists
		} else {
			err = fmt.Errorf("profile save failed: %w", err)
		}
		if delErr := s.idp.DeleteAccount(ctx, uid); delErr != nil {
			return nil, errors.Join(err, fmt.Errorf("account rollback failed: %w", delErr))
		}
		return nil, err
	}
	return u, nil
}

func (s *authService) Login(ctx context.Context, in model.Credentials) (*LoginResult, error) {
	sess, err := s.idp.SignIn(ctx, strings.ToLower(strings.TrimSpace(in.Email)), in.Password)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("sign in: %w", err)
	}
	u, err := s.users.FindByID(ctx, sess.UID)
	if err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}
	return &LoginResult{
		IDToken:      sess.IDToken,
		RefreshToken: sess.RefreshToken,
		ExpiresIn:    sess.ExpiresIn,
		User:         u,
	}, nil
}

func (s *authService) Logout(ctx context.Context, uid string) error {
	if err := s.idp.RevokeSessions(ctx, uid); err != nil {
		if errors.Is(err, identity.ErrAccountNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("revoke sessions: %w", err)
	}
	return nil
}
