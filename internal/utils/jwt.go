package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoExpiry is returned by TokenExpiry for tokens without an exp claim.
var ErrNoExpiry = errors.New("token has no expiry")

// TokenExpiry reads the exp claim of a JWT access token without verifying
// its signature. The client never holds the signing key; the result is only
// used to decide when to refresh proactively.
//
// Example usage:
//
//	exp, err := utils.TokenExpiry(accessToken)
//	if err == nil && time.Until(exp) < time.Minute {
//	    // refresh
//	}
func TokenExpiry(tokenString string) (time.Time, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, fmt.Errorf("parse token: %w", err)
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("read exp claim: %w", err)
	}
	if exp == nil {
		return time.Time{}, ErrNoExpiry
	}
	return exp.Time, nil
}

// TokenExpiresWithin reports whether the token expires before now+window.
// Opaque tokens and tokens without exp are treated as non-expiring.
func TokenExpiresWithin(tokenString string, window time.Duration, now time.Time) bool {
	exp, err := TokenExpiry(tokenString)
	if err != nil {
		return false
	}
	return !exp.After(now.Add(window))
}
