package transport

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
)

// Provider supplies access tokens; both token.Cache and session.Session implement it.
type Provider interface {
	GetToken(ctx context.Context, forceRefresh bool) (string, error)
}

type RoundTripper struct {
	provider  Provider
	transport http.RoundTripper
	logger    zerolog.Logger
}

// New creates a bearer round tripper backed by provider
func New(provider Provider, options ...Option) *RoundTripper {
	ret := &RoundTripper{
		provider:  provider,
		transport: http.DefaultTransport,
		logger:    log.Logger,
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

// Client returns an http.Client using the round tripper
func (r *RoundTripper) Client() *http.Client {
	return &http.Client{Transport: r}
}

func (r *RoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	// keep an untouched copy for the replay
	retry, err := clone(req)
	if err != nil {
		return nil, err
	}
	first, err := r.authorize(ctx, req, false)
	if err != nil {
		return nil, err
	}
	resp, err := r.transport.RoundTrip(first)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}
	resp.Body.Close()
	r.logger.Debug().Str("url", req.URL.String()).Str("challenge", challengeError(resp)).Msg("unauthorized, refreshing token")

	replay, err := r.authorize(ctx, retry, true)
	if err != nil {
		return nil, err
	}
	return r.transport.RoundTrip(replay)
}

func (r *RoundTripper) authorize(ctx context.Context, req *http.Request, forceRefresh bool) (*http.Request, error) {
	accessToken, err := r.provider.GetToken(ctx, forceRefresh)
	if err != nil {
		return nil, err
	}
	ret := req.Clone(ctx)
	ret.Body = req.Body
	tok := &oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"}
	tok.SetAuthHeader(ret)
	return ret, nil
}
