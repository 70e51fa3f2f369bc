// pkg/auth/jwt.go
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims mirrors what the platform puts in its bearer tokens. The client never holds
// the signing secret, so tokens are inspected, not verified.
type Claims struct {
	UserID    string `json:"user_id"`
	UserType  string `json:"user_type,omitempty"`
	AdminRole string `json:"admin_role,omitempty"`
	jwt.RegisteredClaims
}

// Inspect decodes a JWT without verifying its signature. ok is false for opaque tokens.
func Inspect(tokenStr string) (*Claims, bool) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenStr, claims); err != nil {
		return nil, false
	}
	return claims, true
}

// ExpiresAt returns the exp claim if the token is a JWT that carries one.
func ExpiresAt(tokenStr string) (time.Time, bool) {
	claims, ok := Inspect(tokenStr)
	if !ok || claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

// Expired reports whether the token is a JWT whose exp is at or before now.
// Opaque tokens never expire from the client's point of view.
func Expired(tokenStr string, now time.Time) bool {
	exp, ok := ExpiresAt(tokenStr)
	if !ok {
		return false
	}
	return !now.Before(exp)
}

// GenerateToken signs a token with the given secret. Used by tests and local sandboxes
// that stand in for the platform.
func GenerateToken(secret []byte, userID, userType string, ttl time.Duration) (string, error) {
	claims := Claims{
		UserID:   userID,
		UserType: userType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}
