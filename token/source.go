package token

import (
	"context"

	"golang.org/x/oauth2"
)

type tokenSource struct {
	ctx   context.Context
	cache *Cache
}

// Token returns the current access token as an oauth2 bearer token.
func (s *tokenSource) Token() (*oauth2.Token, error) {
	accessToken, err := s.cache.GetToken(s.ctx, false)
	if err != nil {
		return nil, err
	}
	return &oauth2.Token{
		AccessToken:  accessToken,
		TokenType:    "Bearer",
		RefreshToken: s.cache.RefreshToken(),
		Expiry:       s.cache.ExpirationTime(),
	}, nil
}

// TokenSource adapts the cache to oauth2.TokenSource, e.g. for oauth2.NewClient.
func (c *Cache) TokenSource(ctx context.Context) oauth2.TokenSource {
	return &tokenSource{ctx: ctx, cache: c}
}
