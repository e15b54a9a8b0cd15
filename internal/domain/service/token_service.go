package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	UserID uuid.UUID `json:"userId"`
	Email  string    `json:"email"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
type TokenService interface {
	// Issue signs a token for the user and returns it with its expiry.
	Issue(userID uuid.UUID, email string) (token string, expiresAt time.Time, err error)

	// Verify checks signature and expiry and returns the claims.
	Verify(tokenString string) (*Claims, error)
}
