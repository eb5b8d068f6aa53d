package token

import "context"

// Response represents a token endpoint response (sign-in or refresh).
type Response struct {
	IDToken      string `json:"idToken,omitempty"`
	AccessToken  string `json:"accessToken,omitempty"`
	RefreshToken string `json:"refreshToken,omitempty"`
	// ExpiresIn is the token lifetime in seconds, as sent by the server ("3600").
	ExpiresIn string `json:"expiresIn,omitempty"`
}

// Token returns the bearer credential carried by the response.
func (r *Response) Token() string {
	if r.AccessToken != "" {
		return r.AccessToken
	}
	return r.IDToken
}

// Refresher exchanges a refresh token for a new access token.
type Refresher interface {
	Refresh(ctx context.Context, refreshToken string) (*Response, error)
}

// RefresherFunc adapts a function to the Refresher interface.
type RefresherFunc func(ctx context.Context, refreshToken string) (*Response, error)

// Refresh calls f(ctx, refreshToken).
func (f RefresherFunc) Refresh(ctx context.Context, refreshToken string) (*Response, error) {
	return f(ctx, refreshToken)
}
