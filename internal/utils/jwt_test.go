package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("server-secret"))
	require.NoError(t, err)
	return s
}

func TestTokenExpiry(t *testing.T) {
	exp := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	token := signedToken(t, jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(exp),
	})

	got, err := TokenExpiry(token)
	require.NoError(t, err)
	assert.True(t, exp.Equal(got))
}

func TestTokenExpiry_NoExp(t *testing.T) {
	token := signedToken(t, jwt.RegisteredClaims{Subject: "user-1"})

	_, err := TokenExpiry(token)
	assert.True(t, errors.Is(err, ErrNoExpiry))
}

func TestTokenExpiry_Opaque(t *testing.T) {
	_, err := TokenExpiry("not-a-jwt")
	assert.Error(t, err)
}

func TestTokenExpiresWithin(t *testing.T) {
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	token := signedToken(t, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(2 * time.Minute))})
	expired := signedToken(t, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute))})

	tests := []struct {
		name   string
		token  string
		window time.Duration
		want   bool
	}{
		{name: "outside window", token: token, window: time.Minute, want: false},
		{name: "inside window", token: token, window: 5 * time.Minute, want: true},
		{name: "already expired", token: expired, window: 0, want: true},
		{name: "opaque token never expires", token: "opaque", window: time.Hour, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TokenExpiresWithin(tt.token, tt.window, now))
		})
	}
}
