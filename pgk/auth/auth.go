// Package auth inspects the session token issued by the FastFeet API.
// The client never holds the signing secret, so tokens are decoded without
// signature verification: the server stays the authority, the client only
// reads the expiry to notice a dead session before issuing a request.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrMalformedToken = errors.New("malformed session token")

type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId,omitempty"`
}

// Decode parses tokenString without verifying its signature.
func Decode(tokenString string) (*Claims, error) {
	claims := &Claims{}

	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, ErrMalformedToken
	}

	return claims, nil
}

// Expired reports whether tokenString carries an exp claim in the past.
// A token without an exp claim is treated as non-expiring; a token that
// cannot be decoded is treated as expired.
func Expired(tokenString string, now time.Time) bool {
	claims, err := Decode(tokenString)
	if err != nil {
		return true
	}

	if claims.ExpiresAt == nil {
		return false
	}

	return claims.ExpiresAt.Before(now)
}
