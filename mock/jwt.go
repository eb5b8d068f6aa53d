package mock

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// createJWT creates a signed access token for uid with the given lifetime
func (m *TokenService) createJWT(uid string, lifetime time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"iss":     m.Issuer,
		"aud":     m.APIKey,
		"sub":     uid,
		"user_id": uid,
		"iat":     now.Unix(),
		"exp":     now.Add(lifetime).Unix(),
		"jti":     uuid.NewString(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	return token.SignedString(m.PrivateKey)
}

// Verify validates a minted access token and returns its subject.
func (m *TokenService) Verify(tokenString string) (string, error) {
	parsed, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return &m.PrivateKey.PublicKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}))
	if err != nil {
		return "", fmt.Errorf("failed to parse token: %w", err)
	}
	return parsed.Claims.GetSubject()
}
