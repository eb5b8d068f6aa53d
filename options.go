package sts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/viant/afs"
	"github.com/viant/sts/endpoint"
	"github.com/viant/sts/token"
	"gopkg.in/yaml.v3"
)

// DefaultAppName identifies the default application
const DefaultAppName = "[DEFAULT]"

// Options defines secure token session options.
type Options struct {
	APIKey        string        `yaml:"apiKey,omitempty" json:"apiKey,omitempty" short:"k" long:"key" description:"token service api key"`
	AppName       string        `yaml:"appName,omitempty" json:"appName,omitempty" short:"a" long:"app" description:"application name"`
	UID           string        `yaml:"uid,omitempty" json:"uid,omitempty" short:"u" long:"uid" description:"user id"`
	Scheme        string        `yaml:"scheme,omitempty" json:"scheme,omitempty" long:"scheme" description:"token service scheme"`
	TokenHost     string        `yaml:"tokenHost,omitempty" json:"tokenHost,omitempty" short:"H" long:"host" description:"token service host"`
	RefreshBuffer time.Duration `yaml:"refreshBuffer,omitempty" json:"refreshBuffer,omitempty" short:"b" long:"buffer" description:"refresh access token this long before it expires"`
	StoreURL      string        `yaml:"storeURL,omitempty" json:"storeURL,omitempty" short:"s" long:"store" description:"session store URL (*.db for sqlite)"`
	RefreshToken  string        `yaml:"refreshToken,omitempty" json:"refreshToken,omitempty" short:"r" long:"refresh" description:"refresh token seeding a new session"`
	ClientVersion string        `yaml:"clientVersion,omitempty" json:"clientVersion,omitempty" long:"client-version" description:"X-Client-Version header"`
}

// Init sets defaults
func (o *Options) Init() {
	if o.AppName == "" {
		o.AppName = DefaultAppName
	}
	if o.Scheme == "" {
		o.Scheme = endpoint.DefaultScheme
	}
	if o.TokenHost == "" {
		o.TokenHost = endpoint.DefaultHost
	}
	if o.RefreshBuffer == 0 {
		o.RefreshBuffer = token.DefaultRefreshBuffer
	}
}

// Validate checks if options are valid
func (o *Options) Validate() error {
	if o.APIKey == "" {
		return errors.New("apiKey was empty")
	}
	if o.RefreshBuffer < 0 {
		return fmt.Errorf("invalid refreshBuffer: %v", o.RefreshBuffer)
	}
	return nil
}

// BaseURL returns the token service base URL
func (o *Options) BaseURL() string {
	return o.Scheme + "://" + o.TokenHost
}

// Merge copies non empty fields of other into o
func (o *Options) Merge(other *Options) {
	if other == nil {
		return
	}
	if other.APIKey != "" {
		o.APIKey = other.APIKey
	}
	if other.AppName != "" {
		o.AppName = other.AppName
	}
	if other.UID != "" {
		o.UID = other.UID
	}
	if other.Scheme != "" {
		o.Scheme = other.Scheme
	}
	if other.TokenHost != "" {
		o.TokenHost = other.TokenHost
	}
	if other.RefreshBuffer != 0 {
		o.RefreshBuffer = other.RefreshBuffer
	}
	if other.StoreURL != "" {
		o.StoreURL = other.StoreURL
	}
	if other.RefreshToken != "" {
		o.RefreshToken = other.RefreshToken
	}
	if other.ClientVersion != "" {
		o.ClientVersion = other.ClientVersion
	}
}

// LoadOptions loads YAML or JSON options from URL
func LoadOptions(ctx context.Context, URL string) (*Options, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load options %v: %w", URL, err)
	}
	ret := &Options{}
	if err = yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("failed to decode options %v: %w", URL, err)
	}
	return ret, nil
}
