package jwt

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	s := New("test-secret-123", time.Hour)

	token, err := s.GenerateToken(42, "manager")
	require.NoError(t, err)

	claims, err := s.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "manager", claims.Role)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := New("secret-a", time.Hour).GenerateToken(42, "manager")
	require.NoError(t, err)

	_, err = New("secret-b", time.Hour).ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	s := New("test-secret-123", -time.Minute)

	token, err := s.GenerateToken(42, "manager")
	require.NoError(t, err)

	_, err = s.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_RejectsNoneAlgorithm(t *testing.T) {
	claims := Claims{
		UserID: 42,
		Role:   "manager",
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	unsigned, err := jwtlib.NewWithClaims(jwtlib.SigningMethodNone, claims).
		SignedString(jwtlib.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = New("test-secret-123", time.Hour).ValidateToken(unsigned)
	assert.Error(t, err)
}
