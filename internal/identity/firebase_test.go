package identity

import (
	"context"
	"errors"
	"testing"

	"firebase.google.com/go/v4/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuth struct {
	token    *auth.Token
	err      error
	claims   map[string]interface{}
	claimUID string
	revoked  string
}

func (f *fakeAuth) VerifyIDTokenAndCheckRevoked(ctx context.Context, idToken string) (*auth.Token, error) {
	return f.token, f.err
}

func (f *fakeAuth) CreateUser(ctx context.Context, user *auth.UserToCreate) (*auth.UserRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &auth.UserRecord{UserInfo: &auth.UserInfo{UID: "new-uid"}}, nil
}

func (f *fakeAuth) DeleteUser(ctx context.Context, uid string) error { return f.err }

func (f *fakeAuth) RevokeRefreshTokens(ctx context.Context, uid string) error {
	f.revoked = uid
	return f.err
}

func (f *fakeAuth) SetCustomUserClaims(ctx context.Context, uid string, claims map[string]interface{}) error {
	f.claimUID = uid
	f.claims = claims
	return f.err
}

func TestFirebase_VerifyToken(t *testing.T) {
	fa := &fakeAuth{token: &auth.Token{UID: "u1", Claims: map[string]interface{}{"email": "a@b.c", "admin": true}}}
	f := &Firebase{client: fa}

	id, err := f.VerifyToken(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, "u1", id.UID)
	assert.Equal(t, "a@b.c", id.Email)
	assert.True(t, id.Admin)
}

func TestFirebase_VerifyTokenInvalid(t *testing.T) {
	f := &Firebase{client: &fakeAuth{err: errors.New("expired")}}
	_, err := f.VerifyToken(context.Background(), "tok")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestFirebase_CreateAccount(t *testing.T) {
	f := &Firebase{client: &fakeAuth{}}
	uid, err := f.CreateAccount(context.Background(), "a@b.c", "secret1", "Ann")
	require.NoError(t, err)
	assert.Equal(t, "new-uid", uid)
}

func TestFirebase_SetAdmin(t *testing.T) {
	fa := &fakeAuth{}
	f := &Firebase{client: fa}

	require.NoError(t, f.SetAdmin(context.Background(), "u1", true))
	assert.Equal(t, "u1", fa.claimUID)
	assert.Equal(t, true, fa.claims["admin"])

	require.NoError(t, f.SetAdmin(context.Background(), "u1", false))
	assert.Nil(t, fa.claims)
}

func TestFirebase_RevokeSessions(t *testing.T) {
	fa := &fakeAuth{}
	f := &Firebase{client: fa}
	require.NoError(t, f.RevokeSessions(context.Background(), "u9"))
	assert.Equal(t, "u9", fa.revoked)
}
