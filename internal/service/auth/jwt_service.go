// Package auth provides token-based authentication for the API: HS256 JWT
// generation and validation against the shared signing secret.
package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Claims holds the decoded token claims attached to authenticated requests.
type Claims struct {
	UserID    uuid.UUID
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
	ID        string
}

// JWTService defines the interface for token generation and validation.
// There is no refresh flow: a token is valid until it expires.
type JWTService interface {
	// GenerateToken creates a signed access token for the user.
	GenerateToken(ctx context.Context, userID uuid.UUID) (string, error)

	// ValidateToken verifies a token's signature and time claims.
	// Returns ErrExpiredToken, ErrTokenNotYetValid or ErrInvalidToken on
	// failure.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}
