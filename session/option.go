package session

import (
	"github.com/rs/zerolog"
	"github.com/viant/sts/store"
	"github.com/viant/sts/token"
)

// Option configures a Session.
type Option func(*Session)

// WithStore sets store
func WithStore(aStore store.Store) Option {
	return func(s *Session) {
		s.store = aStore
	}
}

// WithLogger sets logger
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithTokenOptions sets options applied to the credential cache (refresher, clock, buffer).
func WithTokenOptions(options ...token.Option) Option {
	return func(s *Session) {
		s.tokenOptions = append(s.tokenOptions, options...)
	}
}
