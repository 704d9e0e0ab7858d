package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenService defines the interface for generating and validating JWTs.
type TokenService interface {
	// GenerateAccessToken creates a signed access token binding a user to
	// the farm they operate.
	GenerateAccessToken(userID, farmID uuid.UUID, ttl time.Duration) (string, error)

	// ValidateToken checks a token string against a secret and returns the
	// parsed token.
	ValidateToken(tokenString string, secret string) (*jwt.Token, error)
}
