package identity

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"startconnect/internal/config"
	"startconnect/internal/model"
)

const adminClaim = "admin"

// authClient is the part of *auth.Client used here.
type authClient interface {
	VerifyIDTokenAndCheckRevoked(ctx context.Context, idToken string) (*auth.Token, error)
	CreateUser(ctx context.Context, user *auth.UserToCreate) (*auth.UserRecord, error)
	DeleteUser(ctx context.Context, uid string) error
	RevokeRefreshTokens(ctx context.Context, uid string) error
	SetCustomUserClaims(ctx context.Context, uid string, customClaims map[string]interface{}) error
}

// Firebase implements Provider on top of the Firebase Admin SDK.
type Firebase struct {
	client authClient
	signer *PasswordSigner
}

// NewFirebase initialises the Admin SDK from cfg. Credentials come from
// CredentialsJSON, then CredentialsFile, then application defaults.
func NewFirebase(ctx context.Context, cfg config.FirebaseConfig, signer *PasswordSigner) (*Firebase, error) {
	var opts []option.ClientOption
	switch {
	case cfg.CredentialsJSON != "":
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.CredentialsJSON)))
	case cfg.CredentialsFile != "":
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	appCfg := &firebase.Config{}
	if cfg.ProjectID != "" {
		appCfg.ProjectID = cfg.ProjectID
	}

	app, err := firebase.NewApp(ctx, appCfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("init firebase auth: %w", err)
	}
	return &Firebase{client: client, signer: signer}, nil
}

func (f *Firebase) VerifyToken(ctx context.Context, token string) (*model.Identity, error) {
	tok, err := f.client.VerifyIDTokenAndCheckRevoked(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	id := &model.Identity{UID: tok.UID}
	if email, ok := tok.Claims["email"].(string); ok {
		id.Email = email
	}
	if admin, ok := tok.Claims[adminClaim].(bool); ok {
		id.Admin = admin
	}
	return id, nil
}

func (f *Firebase) CreateAccount(ctx context.Context, email, password, displayName string) (string, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(displayName)
	rec, err := f.client.CreateUser(ctx, params)
	if err != nil {
		if auth.IsEmailAlreadyExists(err) {
			return "", ErrEmailExists
		}
		return "", fmt.Errorf("create account: %w", err)
	}
	return rec.UID, nil
}

func (f *Firebase) DeleteAccount(ctx context.Context, uid string) error {
	if err := f.client.DeleteUser(ctx, uid); err != nil {
		if auth.IsUserNotFound(err) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("delete account: %w", err)
	}
	return nil
}

func (f *Firebase) RevokeSessions(ctx context.Context, uid string) error {
	if err := f.client.RevokeRefreshTokens(ctx, uid); err != nil {
		if auth.IsUserNotFound(err) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("revoke sessions: %w", err)
	}
	return nil
}

// SetAdmin replaces the custom claims of uid with {admin: true} or clears them.
func (f *Firebase) SetAdmin(ctx context.Context, uid string, admin bool) error {
	var claims map[string]interface{}
	if admin {
		claims = map[string]interface{}{adminClaim: true}
	}
	if err := f.client.SetCustomUserClaims(ctx, uid, claims); err != nil {
		if auth.IsUserNotFound(err) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("set admin claim: %w", err)
	}
	return nil
}

func (f *Firebase) SignIn(ctx context.Context, email, password string) (*Session, error) {
	return f.signer.SignIn(ctx, email, password)
}
