package endpoint

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/viant/sts/token"
)

const (
	DefaultScheme = "https"
	DefaultHost   = "securetoken.googleapis.com"
	tokenPath     = "/v1/token"
)

type tokenResponse struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	ExpiresIn    json.Number `json:"expires_in"`
	IDToken      string      `json:"id_token"`
	TokenType    string      `json:"token_type"`
	UserID       string      `json:"user_id"`
	ProjectID    string      `json:"project_id"`
}

// Client refreshes access tokens against the token service.
type Client struct {
	apiKey        string
	baseURL       string
	clientVersion string
	httpClient    *http.Client
	logger        zerolog.Logger
	rest          *resty.Client
}

// New creates a token endpoint client for the supplied API key.
func New(apiKey string, options ...Option) *Client {
	ret := &Client{
		apiKey:  apiKey,
		baseURL: DefaultScheme + "://" + DefaultHost,
		logger:  log.Logger,
	}
	for _, opt := range options {
		opt(ret)
	}
	if ret.httpClient != nil {
		ret.rest = resty.NewWithClient(ret.httpClient)
	} else {
		ret.rest = resty.New()
	}
	ret.rest.SetBaseURL(ret.baseURL).SetHeader("Accept", "application/json")
	if ret.clientVersion != "" {
		ret.rest.SetHeader("X-Client-Version", ret.clientVersion)
	}
	return ret
}

// Refresh exchanges refreshToken for a new access token. Transport failures are
// returned unchanged; server rejections are returned as *Error.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*token.Response, error) {
	if refreshToken == "" {
		return nil, errors.New("refresh token was empty")
	}
	result := &tokenResponse{}
	failure := &errorResponse{}
	res, err := c.rest.R().
		SetContext(ctx).
		SetQueryParam("key", c.apiKey).
		SetFormData(map[string]string{
			"grant_type":    "refresh_token",
			"refresh_token": refreshToken,
		}).
		SetResult(result).
		SetError(failure).
		Post(tokenPath)
	if err != nil {
		return nil, err
	}
	if res.IsError() {
		endpointErr := newError(res.StatusCode(), failure)
		c.logger.Debug().Int("status", res.StatusCode()).Str("code", endpointErr.Code).Msg("token refresh rejected")
		return nil, endpointErr
	}
	if result.AccessToken == "" {
		return nil, fmt.Errorf("%w: token response without access_token", token.ErrInternal)
	}
	c.logger.Debug().Str("userID", result.UserID).Str("expiresIn", result.ExpiresIn.String()).Msg("token refreshed")
	return &token.Response{
		AccessToken:  result.AccessToken,
		IDToken:      result.IDToken,
		RefreshToken: result.RefreshToken,
		ExpiresIn:    result.ExpiresIn.String(),
	}, nil
}
