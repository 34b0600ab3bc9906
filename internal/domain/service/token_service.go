package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by a session token. UserID is
// derived from the registered subject claim during validation and is never
// serialized itself.
type Claims struct {
	UserID   uuid.UUID `json:"-"`
	Username string    `json:"username"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating session tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a new signed, time-limited token for the given user.
	Issue(userID uuid.UUID, username string) (string, error)

	// Validate checks a token string's signature and expiry and returns its
	// claims, or an error describing why the token is not acceptable.
	Validate(tokenString string) (*Claims, error)
}
