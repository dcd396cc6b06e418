// Package identity wraps the managed identity provider: token verification,
// account lifecycle and password sign-in.
package identity

import (
	"context"
	"errors"

	"startconnect/internal/model"
)

var (
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrAccountNotFound    = errors.New("account not found")
)

// Session is the result of a successful password sign-in.
type Session struct {
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int    `json:"expiresIn"`
	UID          string `json:"-"`
	Email        string `json:"-"`
}

// Provider is the subset of identity operations the API needs.
type Provider interface {
	VerifyToken(ctx context.Context, token string) (*model.Identity, error)
	CreateAccount(ctx context.Context, email, password, displayName string) (string, error)
	DeleteAccount(ctx context.Context, uid string) error
	RevokeSessions(ctx context.Context, uid string) error
	SetAdmin(ctx context.Context, uid string, admin bool) error
	SignIn(ctx context.Context, email, password string) (*Session, error)
}
