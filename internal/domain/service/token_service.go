package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the verified content of an access token.
type Claims struct {
	UserID uuid.UUID
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying access tokens.
// Tokens are self-contained: verification needs no state beyond the signing
// secret held by the implementation.
type TokenService interface {
	// Issue creates a signed, time-bounded token for the given user.
	Issue(userID uuid.UUID) (string, error)

	// Verify validates a token's signature, structure and expiry, recovering
	// its claims. All failure modes surface as a single invalid-token error
	// kind; the underlying cause is preserved for logging only.
	Verify(tokenString string) (*Claims, error)

	// AccessTokenTTL returns the configured token lifetime.
	AccessTokenTTL() time.Duration
}
