package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tokenSecret = "token-test-secret-that-is-32-chars!"

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestTokens(t *testing.T) {
	issued := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Sign and verify", func(t *testing.T) {
		tokens := NewTokens([]byte(tokenSecret))
		tokens.now = fixedClock(issued)

		signed, err := tokens.Sign(7, "seven@example.com")
		require.NoError(t, err)

		tokens.now = fixedClock(issued.Add(TokenTTL - time.Second))
		id, err := tokens.Verify(signed)
		require.NoError(t, err)
		assert.Equal(t, Identity{UserID: 7, Email: "seven@example.com"}, id)
	})

	t.Run("Claims layout", func(t *testing.T) {
		tokens := NewTokens([]byte(tokenSecret))
		tokens.now = fixedClock(issued)

		signed, err := tokens.Sign(7, "seven@example.com")
		require.NoError(t, err)

		claims := jwt.MapClaims{}
		_, _, err = jwt.NewParser().ParseUnverified(signed, claims)
		require.NoError(t, err)
		assert.Equal(t, float64(7), claims["sub"])
		assert.Equal(t, float64(issued.Unix()), claims["iat"])
		assert.Equal(t, float64(issued.Add(15*time.Minute).Unix()), claims["exp"])
	})

	t.Run("Expired", func(t *testing.T) {
		tokens := NewTokens([]byte(tokenSecret))
		tokens.now = fixedClock(issued)

		signed, err := tokens.Sign(7, "seven@example.com")
		require.NoError(t, err)

		tokens.now = fixedClock(issued.Add(TokenTTL + time.Minute))
		_, err = tokens.Verify(signed)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("Wrong secret", func(t *testing.T) {
		signed, err := NewTokens([]byte("another-secret-that-is-32-chars-long")).Sign(7, "x@example.com")
		require.NoError(t, err)

		_, err = NewTokens([]byte(tokenSecret)).Verify(signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Other signing method", func(t *testing.T) {
		claims := Claims{
			UserID: 7,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(tokenSecret))
		require.NoError(t, err)

		_, err = NewTokens([]byte(tokenSecret)).Verify(signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Unsigned token", func(t *testing.T) {
		claims := Claims{
			UserID: 7,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = NewTokens([]byte(tokenSecret)).Verify(signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Missing expiry", func(t *testing.T) {
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{UserID: 7}).SignedString([]byte(tokenSecret))
		require.NoError(t, err)

		_, err = NewTokens([]byte(tokenSecret)).Verify(signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Missing subject", func(t *testing.T) {
		claims := Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(tokenSecret))
		require.NoError(t, err)

		_, err = NewTokens([]byte(tokenSecret)).Verify(signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := NewTokens([]byte(tokenSecret)).Verify("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
