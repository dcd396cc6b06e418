package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// PasswordSigner exchanges email/password for tokens through the Identity
// Toolkit REST API. The Admin SDK has no equivalent call.
type PasswordSigner struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

// NewPasswordSigner builds a signer. A nil client gets a traced default one.
func NewPasswordSigner(endpoint, apiKey string, client *http.Client) *PasswordSigner {
	if client == nil {
		client = &http.Client{
			Timeout:   10 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	return &PasswordSigner{
		endpoint: strings.TrimRight(endpoint, "/"),
		apiKey:   apiKey,
		client:   client,
	}
}

type signInRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type signInResponse struct {
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"`
	LocalID      string `json:"localId"`
	Email        string `json:"email"`
}

type restError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// credential failures reported by the REST API
var credentialErrors = map[string]bool{
	"EMAIL_NOT_FOUND":           true,
	"INVALID_PASSWORD":          true,
	"INVALID_LOGIN_CREDENTIALS": true,
	"INVALID_EMAIL":             true,
	"USER_DISABLED":             true,
}

func (s *PasswordSigner) SignIn(ctx context.Context, email, password string) (*Session, error) {
	body, err := json.Marshal(signInRequest{Email: email, Password: password, ReturnSecureToken: true})
	if err != nil {
		return nil, err
	}
	u := s.endpoint + "/accounts:signInWithPassword?key=" + url.QueryEscape(s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sign in request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var re restError
		_ = json.NewDecoder(resp.Body).Decode(&re)
		// messages may carry a suffix, e.g. "INVALID_PASSWORD : ..."
		code := strings.TrimSpace(strings.SplitN(re.Error.Message, ":", 2)[0])
		if credentialErrors[code] {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("sign in failed: status %d: %s", resp.StatusCode, re.Error.Message)
	}

	var out signInResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode sign in response: %w", err)
	}
	expires, _ := strconv.Atoi(out.ExpiresIn)
	return &Session{
		IDToken:      out.IDToken,
		RefreshToken: out.RefreshToken,
		ExpiresIn:    expires,
		UID:          out.LocalID,
		Email:        out.Email,
	}, nil
}
