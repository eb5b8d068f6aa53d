package sts

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/sts/mock"
	"github.com/viant/sts/session"
	"github.com/viant/sts/token"
)

func TestLoadOptions(t *testing.T) {
	location := filepath.Join(t.TempDir(), "sts.yaml")
	require.NoError(t, os.WriteFile(location, []byte("apiKey: key\nappName: app\nrefreshBuffer: 30s\nstoreURL: /tmp/s.db\n"), 0o600))
	options, err := LoadOptions(context.Background(), location)
	require.NoError(t, err)
	assert.Equal(t, "key", options.APIKey)
	assert.Equal(t, "app", options.AppName)
	assert.Equal(t, 30*time.Second, options.RefreshBuffer)

	options.Init()
	assert.Equal(t, "https://securetoken.googleapis.com", options.BaseURL())

	_, err = LoadOptions(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestOptions(t *testing.T) {
	options := &Options{}
	options.Init()
	assert.Equal(t, DefaultAppName, options.AppName)
	assert.Equal(t, token.DefaultRefreshBuffer, options.RefreshBuffer)
	assert.EqualError(t, options.Validate(), "apiKey was empty")

	options.Merge(&Options{APIKey: "key", TokenHost: "localhost:8080", Scheme: "http"})
	assert.NoError(t, options.Validate())
	assert.Equal(t, "http://localhost:8080", options.BaseURL())
	assert.Equal(t, DefaultAppName, options.AppName)
}

func TestNewSession(t *testing.T) {
	ctx := context.Background()
	service, err := mock.NewHTTPTestTokenService("api-key")
	require.NoError(t, err)
	defer service.Close()

	storeURL := filepath.Join(t.TempDir(), "sessions.db")
	baseOptions := func() *Options {
		return &Options{
			APIKey:    "api-key",
			UID:       "user-1",
			Scheme:    "http",
			TokenHost: service.URL()[len("http://"):],
			StoreURL:  storeURL,
		}
	}
	options := baseOptions()
	options.RefreshToken = service.IssueRefreshToken("user-1")
	aSession, closer, err := NewSession(ctx, options, session.WithLogger(zerolog.Nop()))
	require.NoError(t, err)
	accessToken, err := aSession.GetToken(ctx, false)
	require.NoError(t, err)
	uid, err := service.Verify(accessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", uid)
	require.NoError(t, closer.Close())

	reloaded, closer, err := NewSession(ctx, baseOptions(), session.WithLogger(zerolog.Nop()))
	require.NoError(t, err)
	defer closer.Close()
	cached, err := reloaded.GetToken(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, accessToken, cached)
	assert.Len(t, service.Requests(), 1)
}
