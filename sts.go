package sts

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/viant/sts/endpoint"
	"github.com/viant/sts/session"
	"github.com/viant/sts/store"
	"github.com/viant/sts/token"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// NewSession loads the session persisted for options or creates a new one, seeded
// with options.RefreshToken when set. The returned closer releases the store.
func NewSession(ctx context.Context, options *Options, sessionOptions ...session.Option) (*session.Session, io.Closer, error) {
	options.Init()
	if err := options.Validate(); err != nil {
		return nil, nil, err
	}
	aStore, err := store.New(options.StoreURL)
	if err != nil {
		return nil, nil, err
	}
	var closer io.Closer = nopCloser{}
	if c, ok := aStore.(io.Closer); ok {
		closer = c
	}
	logger := log.Logger
	refresher := endpoint.New(options.APIKey,
		endpoint.WithBaseURL(options.BaseURL()),
		endpoint.WithClientVersion(options.ClientVersion),
		endpoint.WithLogger(logger))
	tokenOptions := []token.Option{
		token.WithRefresher(refresher),
		token.WithRefreshBuffer(options.RefreshBuffer),
	}
	sessionOptions = append([]session.Option{
		session.WithLogger(logger.With().Str("component", "session").Logger()),
	}, sessionOptions...)

	loaded, err := session.Load(ctx, aStore, options.APIKey, options.AppName,
		append(sessionOptions, session.WithTokenOptions(tokenOptions...))...)
	switch {
	case err == nil:
		return loaded, closer, nil
	case !errors.Is(err, session.ErrNotFound):
		_ = closer.Close()
		return nil, nil, err
	}
	if options.RefreshToken != "" {
		tokenOptions = append(tokenOptions, token.WithCredentials("", options.RefreshToken, time.Time{}))
	}
	ret := session.New(options.UID, options.APIKey, options.AppName,
		append(sessionOptions, session.WithStore(aStore), session.WithTokenOptions(tokenOptions...))...)
	logger.Debug().Str("app", options.AppName).Bool("seeded", options.RefreshToken != "").Msg("created session")
	return ret, closer, nil
}
