package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vnkhanh/video-catalog-backend/config"
)

var testJWT = config.JWTConfig{
	Secret:    "jwt-test-secret",
	ExpiresIn: time.Hour,
	Audience:  "video-catalog",
	Issuer:    "video-catalog-backend",
}

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(testJWT, "user-id", "role-id")
	require.NoError(t, err)

	claims, err := VerifyToken(testJWT, token)
	require.NoError(t, err)
	assert.Equal(t, "user-id", claims.UserID)
	assert.Equal(t, "role-id", claims.RoleID)
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken(testJWT, "user-id", "role-id")
	require.NoError(t, err)

	other := testJWT
	other.Secret = "secret-khác"
	_, err = VerifyToken(other, token)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindNotAuthorized))
}

func TestVerifyTokenExpired(t *testing.T) {
	expired := testJWT
	expired.ExpiresIn = -time.Minute

	token, err := GenerateToken(expired, "user-id", "role-id")
	require.NoError(t, err)

	_, err = VerifyToken(testJWT, token)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindNotAuthorized))
}

func TestVerifyTokenGarbage(t *testing.T) {
	_, err := VerifyToken(testJWT, "not-a-token")
	require.Error(t, err)
	assert.True(t, IsKind(err, KindNotAuthorized))
}

func TestTokenFromHeader(t *testing.T) {
	token, err := TokenFromHeader("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	// Token trần vẫn chấp nhận
	token, err = TokenFromHeader("abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = TokenFromHeader("")
	require.Error(t, err)
	assert.True(t, IsKind(err, KindNotAuthorized))

	_, err = TokenFromHeader("   ")
	require.Error(t, err)
	assert.True(t, IsKind(err, KindNotAuthorized))
}

func TestSecurePasswordDeterministic(t *testing.T) {
	salt := NewSalt()
	first := SecurePassword(salt, "myPassword")
	assert.Equal(t, first, SecurePassword(salt, "myPassword"))
	assert.NotEqual(t, first, SecurePassword(salt, "otherPassword"))
	assert.NotEqual(t, first, SecurePassword(NewSalt(), "myPassword"))
}
