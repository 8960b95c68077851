package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_RoundTrip(t *testing.T) {
	svc := NewTokenService("secret", DefaultTTL)

	token, err := svc.Sign("user-1", "jodo")
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.ID)
	assert.Equal(t, "jodo", claims.UserName)
	assert.WithinDuration(t, time.Now().Add(DefaultTTL), claims.ExpiresAt.Time, time.Minute)
}

func TestTokenService_ExpiresAfterOneDay(t *testing.T) {
	issuedAt := time.Now().Add(-25 * time.Hour)
	issuer := NewTokenService("secret", DefaultTTL, WithClock(func() time.Time { return issuedAt }))
	verifier := NewTokenService("secret", DefaultTTL)

	token, err := issuer.Sign("user-1", "jodo")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenService_RejectsForeignSecret(t *testing.T) {
	token, err := NewTokenService("other", DefaultTTL).Sign("user-1", "jodo")
	require.NoError(t, err)

	_, err = NewTokenService("secret", DefaultTTL).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_RejectsUnsignedAndMalformed(t *testing.T) {
	svc := NewTokenService("secret", DefaultTTL)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		ID:               "user-1",
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Verify(unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.Verify("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_RequiresExpiry(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{ID: "user-1"}).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = NewTokenService("secret", DefaultTTL).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
