package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrNotJWT = errors.New("token is not a JWT")

// Claims holds what the portal reads from a backend-issued bearer token.
type Claims struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenInspector reads backend tokens without verifying their signature.
// The portal never holds the signing key; the backend stays the authority
// and this is only used to notice an expired session before calling it.
type TokenInspector struct {
	parser *jwt.Parser
	now    func() time.Time
}

func NewTokenInspector() *TokenInspector {
	return &TokenInspector{
		parser: jwt.NewParser(),
		now:    time.Now,
	}
}

func (i *TokenInspector) Inspect(tokenString string) (*Claims, error) {
	var registered jwt.RegisteredClaims
	if _, _, err := i.parser.ParseUnverified(tokenString, &registered); err != nil {
		return nil, ErrNotJWT
	}

	claims := &Claims{Subject: registered.Subject}
	if registered.IssuedAt != nil {
		claims.IssuedAt = registered.IssuedAt.Time
	}
	if registered.ExpiresAt != nil {
		claims.ExpiresAt = registered.ExpiresAt.Time
	}
	return claims, nil
}

// Expired reports whether tokenString is a JWT whose exp lies in the past.
// Opaque tokens are never considered expired.
func (i *TokenInspector) Expired(tokenString string) bool {
	claims, err := i.Inspect(tokenString)
	if err != nil || claims.ExpiresAt.IsZero() {
		return false
	}
	return !i.now().Before(claims.ExpiresAt)
}
