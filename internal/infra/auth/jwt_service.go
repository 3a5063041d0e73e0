// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"freshmarket/config"
	domainerrors "freshmarket/internal/domain/errors"
	"freshmarket/internal/domain/service"
)

// defaultAccessTokenTTL applies when no lifetime is configured.
const defaultAccessTokenTTL = 24 * time.Hour

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// Tokens are HS256-signed and carry only the subject id and the standard
// time claims, so verification needs nothing but the secret.
type jwtService struct {
	secret string
	ttl    time.Duration
}

// NewJWTService is the constructor for jwtService.
// A missing signing secret is a configuration error that must abort startup.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt signing secret must be provided")
	}

	ttl := defaultAccessTokenTTL
	if cfg.Auth != nil && cfg.Auth.AccessTokenTTL != 0 {
		ttl = cfg.Auth.AccessTokenTTL
	}

	return &jwtService{
		secret: cfg.SecretKey.Access,
		ttl:    ttl,
	}, nil
}

// Issue creates a signed token whose subject is the given user id and whose
// expiry is the configured lifetime from now.
func (s *jwtService) Issue(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Verify validates a token string and recovers its claims.
// Malformed structure, bad signature and elapsed expiry are deliberately
// collapsed into the single invalid-token error kind; the cause stays in the
// wrap message for logs and is never shown to clients.
func (s *jwtService) Verify(tokenString string) (*service.Claims, error) {
	var registered jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(tokenString, &registered, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.secret), nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return nil, domainerrors.ErrInvalidToken.WrapMessage(err.Error())
	}
	if !token.Valid {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("token validation failed")
	}

	userID, err := uuid.Parse(registered.Subject)
	if err != nil {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("malformed subject claim")
	}

	return &service.Claims{
		UserID:           userID,
		RegisteredClaims: registered,
	}, nil
}

// AccessTokenTTL returns the configured token lifetime.
func (s *jwtService) AccessTokenTTL() time.Duration {
	return s.ttl
}
