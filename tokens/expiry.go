package tokens

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// NowTimeFunc returns the current time. It can be overridden in tests.
var NowTimeFunc = time.Now

// ExpiresAt decodes the exp claim of a JWT access token without verifying its
// signature. Verification is the backend's job; the client only needs the
// expiry for display and restore heuristics.
func ExpiresAt(rawToken string) (time.Time, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(rawToken, claims); err != nil {
		return time.Time{}, errors.Wrap(err, "[ExpiresAt] parse token")
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, errors.New("[ExpiresAt] token has no exp claim")
	}
	return exp.Time, nil
}

// Expired reports whether the access token's exp claim is in the past. Tokens
// that cannot be decoded count as expired.
func Expired(rawToken string) bool {
	exp, err := ExpiresAt(rawToken)
	if err != nil {
		return true
	}
	return !exp.After(NowTimeFunc())
}
