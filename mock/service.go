package mock

import (
	"crypto/rand"
	"crypto/rsa"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/viant/sts/internal/collection"
	"github.com/viant/sts/token"
)

// TokenService represents a mock secure token service.
type TokenService struct {
	APIKey     string
	Issuer     string
	PrivateKey *rsa.PrivateKey
	// Lifetime of minted access tokens.
	Lifetime time.Duration

	// TokenHandler and ResourceHandler override the default handlers when set.
	TokenHandler    http.HandlerFunc
	ResourceHandler http.HandlerFunc

	refreshTokens *collection.SyncMap[string, string] // refresh token -> uid
	revoked       *collection.SyncMap[string, string] // refresh token -> error code
	mux           sync.Mutex
	requests      []url.Values
	server        *httptest.Server
}

// NewTokenService creates a token service accepting apiKey.
func NewTokenService(apiKey string) (*TokenService, error) {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, fmt.Errorf("failed to generate key: %w", err)
	}
	return &TokenService{
		APIKey:        apiKey,
		Issuer:        "https://securetoken.mock",
		PrivateKey:    privateKey,
		Lifetime:      time.Hour,
		refreshTokens: collection.NewSyncMap[string, string](),
		revoked:       collection.NewSyncMap[string, string](),
	}, nil
}

// NewHTTPTestTokenService starts a token service on a local httptest server.
func NewHTTPTestTokenService(apiKey string) (*TokenService, error) {
	ret, err := NewTokenService(apiKey)
	if err != nil {
		return nil, err
	}
	ret.server = httptest.NewServer(&Handler{Service: ret})
	ret.Issuer = ret.server.URL
	return ret, nil
}

// URL returns the base URL of the httptest server.
func (m *TokenService) URL() string {
	if m.server == nil {
		return ""
	}
	return m.server.URL
}

// Close stops the httptest server.
func (m *TokenService) Close() {
	if m.server != nil {
		m.server.Close()
	}
}

// IssueRefreshToken registers a new refresh token for uid.
func (m *TokenService) IssueRefreshToken(uid string) string {
	refreshToken := uuid.NewString()
	m.refreshTokens.Put(refreshToken, uid)
	return refreshToken
}

// Revoke makes later refreshes with refreshToken fail with code, e.g. TOKEN_EXPIRED.
func (m *TokenService) Revoke(refreshToken, code string) {
	m.revoked.Put(refreshToken, code)
}

// SignIn returns a sign-in response for uid, the way a password sign-in would.
func (m *TokenService) SignIn(uid string) (*token.Response, error) {
	idToken, err := m.createJWT(uid, m.Lifetime)
	if err != nil {
		return nil, err
	}
	return &token.Response{
		IDToken:      idToken,
		RefreshToken: m.IssueRefreshToken(uid),
		ExpiresIn:    fmt.Sprintf("%d", int(m.Lifetime.Seconds())),
	}, nil
}

// Requests returns the recorded refresh request forms.
func (m *TokenService) Requests() []url.Values {
	m.mux.Lock()
	defer m.mux.Unlock()
	return append([]url.Values(nil), m.requests...)
}

func (m *TokenService) record(form url.Values) {
	m.mux.Lock()
	defer m.mux.Unlock()
	m.requests = append(m.requests, form)
}
