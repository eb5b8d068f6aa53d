package token

import (
	"encoding/json"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/viant/sts/internal/conv"
)

// Claims holds the token lifetime claims, in seconds since epoch.
type Claims struct {
	IssuedAt  int64
	ExpiresAt int64
}

// Lifetime returns exp - iat in seconds.
func (c *Claims) Lifetime() int64 {
	return c.ExpiresAt - c.IssuedAt
}

// ClaimsDecoder decodes issued-at and expiry claims from an opaque token string.
type ClaimsDecoder interface {
	Decode(token string) (*Claims, error)
}

// JWTDecoder decodes claims from a JWT without verifying its signature; the token
// was received directly from the token endpoint over TLS.
type JWTDecoder struct {
	parser *jwt.Parser
}

// NewJWTDecoder creates a JWT claims decoder.
func NewJWTDecoder() *JWTDecoder {
	return &JWTDecoder{parser: jwt.NewParser()}
}

// Decode returns the iat and exp claims of the supplied JWT.
func (d *JWTDecoder) Decode(token string) (*Claims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := d.parser.ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	issuedAt, err := numericClaim(claims, "iat")
	if err != nil {
		return nil, err
	}
	expiresAt, err := numericClaim(claims, "exp")
	if err != nil {
		return nil, err
	}
	return &Claims{IssuedAt: issuedAt, ExpiresAt: expiresAt}, nil
}

// numericClaim accepts numbers as well as numeric strings ("180").
func numericClaim(claims jwt.MapClaims, name string) (int64, error) {
	value, ok := claims[name]
	if !ok || value == nil {
		return 0, fmt.Errorf("claim %v not found", name)
	}
	switch actual := value.(type) {
	case float64:
		return int64(actual), nil
	case json.Number:
		return conv.ParseInt64(string(actual))
	case string:
		return conv.ParseInt64(actual)
	}
	return 0, fmt.Errorf("unsupported %v claim type: %T", name, value)
}
