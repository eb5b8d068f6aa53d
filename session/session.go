package session

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/viant/sts/store"
	"github.com/viant/sts/token"
)

// ErrNotFound indicates that no session is persisted under the key.
var ErrNotFound = errors.New("session not found")

// Record represents a persisted session.
type Record struct {
	UID             string                 `json:"uid"`
	AppName         string                 `json:"appName"`
	APIKey          string                 `json:"apiKey"`
	StsTokenManager map[string]interface{} `json:"stsTokenManager"`
}

// Session represents a signed-in user of an application.
type Session struct {
	UID     string
	AppName string
	APIKey  string

	tokens       *token.Cache
	tokenOptions []token.Option
	store        store.Store
	logger       zerolog.Logger
}

// Key returns the persistence key of a session.
func Key(apiKey, appName string) string {
	return fmt.Sprintf("sts:authUser:%s:%s", apiKey, appName)
}

// New creates a session with an empty credential cache.
func New(uid, apiKey, appName string, options ...Option) *Session {
	ret := newSession(uid, apiKey, appName, options)
	ret.tokens = token.New(ret.cacheOptions()...)
	return ret
}

func newSession(uid, apiKey, appName string, options []Option) *Session {
	ret := &Session{
		UID:     uid,
		AppName: appName,
		APIKey:  apiKey,
		logger:  log.Logger,
	}
	for _, opt := range options {
		opt(ret)
	}
	ret.logger = ret.logger.With().Str("app", appName).Str("uid", uid).Logger()
	return ret
}

func (s *Session) cacheOptions() []token.Option {
	return append([]token.Option{token.WithOwner(s.AppName)}, s.tokenOptions...)
}

// Key returns the persistence key.
func (s *Session) Key() string {
	return Key(s.APIKey, s.AppName)
}

// Tokens returns the credential cache.
func (s *Session) Tokens() *token.Cache {
	return s.tokens
}

// SignIn applies a sign-in response and persists the session.
func (s *Session) SignIn(ctx context.Context, response *token.Response) error {
	if err := s.tokens.UpdateFromServerResponse(response); err != nil {
		return err
	}
	s.logger.Info().Msg("signed in")
	return s.Save(ctx)
}

// GetToken returns a valid access token, refreshing it when needed. When the
// token service rejects the refresh token it is cleared, so later calls fail fast
// with token.ErrCredentialExpired instead of hitting the service again.
func (s *Session) GetToken(ctx context.Context, forceRefresh bool) (string, error) {
	previousAccess, previousRefresh := s.tokens.AccessToken(), s.tokens.RefreshToken()
	accessToken, err := s.tokens.GetToken(ctx, forceRefresh)
	if err != nil {
		var rejection interface{ Revoked() bool }
		if errors.As(err, &rejection) && rejection.Revoked() {
			s.logger.Warn().Err(err).Msg("refresh token revoked, clearing")
			s.tokens.ClearRefreshToken()
			if saveErr := s.Save(ctx); saveErr != nil {
				s.logger.Error().Err(saveErr).Msg("failed to persist session")
			}
		}
		return "", err
	}
	if accessToken != previousAccess || s.tokens.RefreshToken() != previousRefresh {
		s.logger.Debug().Time("expires", s.tokens.ExpirationTime()).Msg("access token refreshed")
		if err = s.Save(ctx); err != nil {
			return "", err
		}
	}
	return accessToken, nil
}

// ToJSON returns the persisted record.
func (s *Session) ToJSON() *Record {
	return &Record{
		UID:             s.UID,
		AppName:         s.AppName,
		APIKey:          s.APIKey,
		StsTokenManager: s.tokens.ToJSON(),
	}
}

// Save persists the session; it is a no-op without a store.
func (s *Session) Save(ctx context.Context) error {
	if s.store == nil {
		return nil
	}
	data, err := json.Marshal(s.ToJSON())
	if err != nil {
		return err
	}
	if err = s.store.Set(ctx, s.Key(), data); err != nil {
		return fmt.Errorf("failed to save session %v: %w", s.Key(), err)
	}
	return nil
}

// Destroy removes the persisted session and drops its credentials.
func (s *Session) Destroy(ctx context.Context) error {
	s.tokens.Reset()
	if s.store == nil {
		return nil
	}
	s.logger.Info().Msg("session destroyed")
	return s.store.Delete(ctx, s.Key())
}

// Clone returns a copy with an independent credential cache.
func (s *Session) Clone() *Session {
	ret := *s
	ret.tokenOptions = append([]token.Option(nil), s.tokenOptions...)
	ret.tokens = s.tokens.Clone()
	return &ret
}

// Load restores the session persisted for apiKey and appName.
func Load(ctx context.Context, aStore store.Store, apiKey, appName string, options ...Option) (*Session, error) {
	data, ok, err := aStore.Get(ctx, Key(apiKey, appName))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}
	return FromJSON(data, append([]Option{WithStore(aStore)}, options...)...)
}

// FromJSON restores a session from a persisted record.
func FromJSON(data []byte, options ...Option) (*Session, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	record := &Record{}
	if err := decoder.Decode(record); err != nil {
		return nil, fmt.Errorf("%w: invalid session record: %v", token.ErrInternal, err)
	}
	ret := newSession(record.UID, record.APIKey, record.AppName, options)
	tokens, err := token.FromJSON(record.AppName, record.StsTokenManager, ret.cacheOptions()...)
	if err != nil {
		return nil, err
	}
	ret.tokens = tokens
	return ret, nil
}
