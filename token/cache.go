package token

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/viant/sts/internal/conv"
	"golang.org/x/sync/singleflight"
)

// Cache caches an access token and refreshes it through a Refresher.
// It is safe for concurrent use by multiple goroutines.
type Cache struct {
	mux            sync.RWMutex
	accessToken    string
	refreshToken   string
	expirationTime time.Time

	owner         string
	refreshBuffer time.Duration
	now           func() time.Time
	decoder       ClaimsDecoder
	refresher     Refresher
	inflight      singleflight.Group
}

// maxLifetime is the largest lifetime in seconds representable as time.Duration.
const maxLifetime = math.MaxInt64 / int64(time.Second)

// New creates a cache, empty unless WithCredentials is supplied.
func New(options ...Option) *Cache {
	ret := &Cache{
		refreshBuffer: DefaultRefreshBuffer,
		now:           time.Now,
		decoder:       NewJWTDecoder(),
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

// AccessToken returns the cached access token or empty string.
func (c *Cache) AccessToken() string {
	c.mux.RLock()
	defer c.mux.RUnlock()
	return c.accessToken
}

// RefreshToken returns the refresh token or empty string.
func (c *Cache) RefreshToken() string {
	c.mux.RLock()
	defer c.mux.RUnlock()
	return c.refreshToken
}

// ExpirationTime returns when the access token expires (zero for non-expiring).
func (c *Cache) ExpirationTime() time.Time {
	c.mux.RLock()
	defer c.mux.RUnlock()
	return c.expirationTime
}

// IsExpired reports whether the access token expires within the refresh buffer.
func (c *Cache) IsExpired() bool {
	c.mux.RLock()
	defer c.mux.RUnlock()
	return c.isExpired()
}

func (c *Cache) isExpired() bool {
	if c.expirationTime.IsZero() {
		return false
	}
	return c.expirationTime.Sub(c.now()) <= c.refreshBuffer
}

// UpdateFromServerResponse applies a token endpoint response. The expiration is
// computed from ExpiresIn, or from the token iat/exp claims when ExpiresIn is absent.
// The refresh token is only replaced when the response carries one.
func (c *Cache) UpdateFromServerResponse(response *Response) error {
	if response == nil || response.Token() == "" {
		return internalError(c.owner, "update", "idToken", nil)
	}
	var lifetime int64
	var err error
	if response.ExpiresIn != "" {
		if lifetime, err = conv.ParseInt64(response.ExpiresIn); err != nil {
			return internalError(c.owner, "update", "expiresIn", err)
		}
	} else {
		claims, err := c.decoder.Decode(response.Token())
		if err != nil {
			return internalError(c.owner, "update", "idToken", err)
		}
		lifetime = claims.Lifetime()
	}
	if lifetime <= 0 || lifetime > maxLifetime {
		return internalError(c.owner, "update", "expiresIn", fmt.Errorf("lifetime out of range: %d", lifetime))
	}
	c.mux.Lock()
	defer c.mux.Unlock()
	c.accessToken = response.Token()
	if response.RefreshToken != "" {
		c.refreshToken = response.RefreshToken
	}
	c.expirationTime = c.now().Add(time.Duration(lifetime) * time.Second)
	return nil
}

// Reset drops all credentials; collaborators are kept.
func (c *Cache) Reset() {
	c.mux.Lock()
	defer c.mux.Unlock()
	c.accessToken = ""
	c.refreshToken = ""
	c.expirationTime = time.Time{}
}

// ClearRefreshToken drops the refresh token, e.g. after the server revoked it.
func (c *Cache) ClearRefreshToken() {
	c.mux.Lock()
	defer c.mux.Unlock()
	c.refreshToken = ""
}

// GetToken returns the cached access token, refreshing it when forced, missing or
// expired. Without a refresh token a required refresh fails with ErrCredentialExpired.
// Refresher errors are returned unchanged.
//
// Callers racing on the same refresh token share one refresh request carrying the
// values of the first caller's context; each caller stops waiting when its own
// context is done.
func (c *Cache) GetToken(ctx context.Context, forceRefresh bool) (string, error) {
	c.mux.RLock()
	accessToken, refreshToken, expired := c.accessToken, c.refreshToken, c.isExpired()
	c.mux.RUnlock()
	if !forceRefresh && accessToken != "" && !expired {
		return accessToken, nil
	}
	if refreshToken == "" {
		return "", ErrCredentialExpired
	}
	if c.refresher == nil {
		return "", internalError(c.owner, "refresh", "", fmt.Errorf("refresher was not configured"))
	}
	// a cancelled caller must not fail the other waiters
	refreshCtx := context.WithoutCancel(ctx)
	result := c.inflight.DoChan(refreshToken, func() (interface{}, error) {
		response, err := c.refresher.Refresh(refreshCtx, refreshToken)
		if err != nil {
			return nil, err
		}
		if err = c.UpdateFromServerResponse(response); err != nil {
			return nil, err
		}
		return response.Token(), nil
	})
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case ret := <-result:
		if ret.Err != nil {
			return "", ret.Err
		}
		return ret.Val.(string), nil
	}
}

// Clone returns an independent copy sharing only immutable collaborators.
func (c *Cache) Clone() *Cache {
	c.mux.RLock()
	defer c.mux.RUnlock()
	return &Cache{
		accessToken:    c.accessToken,
		refreshToken:   c.refreshToken,
		expirationTime: c.expirationTime,
		owner:          c.owner,
		refreshBuffer:  c.refreshBuffer,
		now:            c.now,
		decoder:        c.decoder,
		refresher:      c.refresher,
	}
}
