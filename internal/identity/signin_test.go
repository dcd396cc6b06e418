package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordSigner_SignIn(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/accounts:signInWithPassword", r.URL.Path)
		assert.Equal(t, "web-key", r.URL.Query().Get("key"))

		var req signInRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.True(t, req.ReturnSecureToken)

		if req.Password != "secret1" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":{"code":400,"message":"INVALID_LOGIN_CREDENTIALS"}}`))
			return
		}
		_, _ = w.Write([]byte(`{"idToken":"id","refreshToken":"rt","expiresIn":"3600","localId":"uid-1","email":"a@b.c"}`))
	}))
	defer srv.Close()

	s := NewPasswordSigner(srv.URL+"/v1/", "web-key", srv.Client())

	t.Run("success", func(t *testing.T) {
		sess, err := s.SignIn(context.Background(), "a@b.c", "secret1")
		require.NoError(t, err)
		assert.Equal(t, "id", sess.IDToken)
		assert.Equal(t, "rt", sess.RefreshToken)
		assert.Equal(t, 3600, sess.ExpiresIn)
		assert.Equal(t, "uid-1", sess.UID)
	})

	t.Run("bad credentials", func(t *testing.T) {
		_, err := s.SignIn(context.Background(), "a@b.c", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestPasswordSigner_UpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"code":500,"message":"INTERNAL"}}`))
	}))
	defer srv.Close()

	s := NewPasswordSigner(srv.URL, "k", srv.Client())
	_, err := s.SignIn(context.Background(), "a@b.c", "x")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
	assert.Contains(t, err.Error(), "status 500")
}
