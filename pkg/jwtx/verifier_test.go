package jwtx

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("unit-test-secret")

func mintToken(t *testing.T, mutate func(*Claims)) string {
	t.Helper()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			Issuer:    "test-issuer",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		Email: "user@example.com",
		Name:  "Test User",
	}
	if mutate != nil {
		mutate(&claims)
	}

	token, err := SignHS256(claims, testSecret)
	require.NoError(t, err)
	return token
}

func TestHS256Verifier(t *testing.T) {
	v := NewHS256(testSecret, "test-issuer")

	t.Run("round trip", func(t *testing.T) {
		claims, err := v.Verify(mintToken(t, nil))
		require.NoError(t, err)
		require.Equal(t, "user-1", claims.Subject)
		require.Equal(t, "user@example.com", claims.Email)
		require.NoError(t, claims.ValidateExpiry())
	})

	t.Run("rejects wrong secret", func(t *testing.T) {
		token, err := SignHS256(Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "user-1",
				Issuer:    "test-issuer",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}, []byte("other-secret"))
		require.NoError(t, err)

		_, err = v.Verify(token)
		require.ErrorIs(t, err, ErrInvalidSig)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		token := mintToken(t, func(c *Claims) {
			c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
		})

		_, err := v.Verify(token)
		require.ErrorIs(t, err, ErrExpired)
	})

	t.Run("rejects wrong issuer", func(t *testing.T) {
		token := mintToken(t, func(c *Claims) {
			c.Issuer = "someone-else"
		})

		_, err := v.Verify(token)
		require.ErrorIs(t, err, ErrIssuer)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := v.Verify("not.a.jwt")
		require.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("rejects unsigned alg", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = v.Verify(token)
		require.Error(t, err)
	})
}
