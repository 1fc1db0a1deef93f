package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService issues and validates operator tokens for the admin API.
type TokenService interface {
	// GenerateToken signs a token for subject carrying the given roles.
	GenerateToken(subject string, roles []string, ttl time.Duration, secret string) (string, error)

	// ValidateToken parses and verifies a token signed with secret.
	ValidateToken(tokenString, secret string) (*jwt.Token, error)
}
