package token

import (
	"time"
)

// DefaultRefreshBuffer is how long before expiry a token is treated as expired.
const DefaultRefreshBuffer = 5 * time.Minute

// Option configures a Cache.
type Option func(*Cache)

// WithRefresher sets the token endpoint client used to refresh access tokens.
func WithRefresher(refresher Refresher) Option {
	return func(c *Cache) {
		c.refresher = refresher
	}
}

// WithClock sets the time source.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		c.now = now
	}
}

// WithRefreshBuffer sets the refresh buffer.
func WithRefreshBuffer(buffer time.Duration) Option {
	return func(c *Cache) {
		c.refreshBuffer = buffer
	}
}

// WithClaimsDecoder sets the decoder used when a response carries no expiresIn.
func WithClaimsDecoder(decoder ClaimsDecoder) Option {
	return func(c *Cache) {
		c.decoder = decoder
	}
}

// WithCredentials seeds the cache state. A zero expiration means the access
// token never expires.
func WithCredentials(accessToken, refreshToken string, expiration time.Time) Option {
	return func(c *Cache) {
		c.accessToken = accessToken
		c.refreshToken = refreshToken
		c.expirationTime = expiration
	}
}

// WithOwner sets the identity used to tag errors.
func WithOwner(owner string) Option {
	return func(c *Cache) {
		c.owner = owner
	}
}
