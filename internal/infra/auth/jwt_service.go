// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"msgboard/config"
	"msgboard/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const defaultAccessTokenTTL = time.Hour

// jwtService is a concrete implementation of the TokenService interface using
// HS256-signed JWTs. The signing secret is captured once at construction;
// an absent secret is a fatal configuration error, surfaced at startup rather
// than discovered per request.
type jwtService struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.JWT == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := defaultAccessTokenTTL
	if cfg.Auth != nil && cfg.Auth.AccessTokenTTL > 0 {
		ttl = cfg.Auth.AccessTokenTTL
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.JWT),
		ttl:    ttl,
	}, nil
}

// Issue creates a new signed token carrying the user's identity and username,
// expiring ttl after issuance.
func (s *jwtService) Issue(userID uuid.UUID, username string) (string, error) {
	now := time.Now()
	claims := service.Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Validate checks the token's signature and expiry and returns its claims.
// golang-jwt enforces exp/iat during parsing; the signing method is pinned to
// HMAC so a token re-signed with "none" or an asymmetric scheme is rejected.
func (s *jwtService) Validate(tokenString string) (*service.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &service.Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}

	claims, ok := token.Claims.(*service.Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(err, "invalid subject in token")
	}
	claims.UserID = userID

	return claims, nil
}
