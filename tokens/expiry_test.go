package tokens_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/MbolafyDev/go-backoffice/tokens"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": 7,
		"exp":     exp.Unix(),
	})
	raw, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return raw
}

func TestExpiresAtReadsTheExpClaim(t *testing.T) {
	exp := time.Now().Add(30 * time.Minute).Truncate(time.Second)
	got, err := tokens.ExpiresAt(signedToken(t, exp))
	require.NoError(t, err)
	require.True(t, got.Equal(exp))
}

func TestExpiresAtRejectsTokensWithoutExp(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"user_id": 7})
	raw, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = tokens.ExpiresAt(raw)
	require.Error(t, err)
}

func TestExpiresAtRejectsGarbage(t *testing.T) {
	_, err := tokens.ExpiresAt("not-a-jwt")
	require.Error(t, err)
}

func TestExpired(t *testing.T) {
	now := time.Now()
	tokens.NowTimeFunc = func() time.Time { return now }
	defer func() { tokens.NowTimeFunc = time.Now }()

	require.False(t, tokens.Expired(signedToken(t, now.Add(time.Minute))))
	require.True(t, tokens.Expired(signedToken(t, now.Add(-time.Minute))))
	require.True(t, tokens.Expired("not-a-jwt"))
}
