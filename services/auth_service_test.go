package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vnkhanh/video-catalog-backend/config"
	"github.com/vnkhanh/video-catalog-backend/utils"
)

var testJWT = config.JWTConfig{
	Secret:    "test-secret",
	ExpiresIn: time.Hour,
	Audience:  "video-catalog",
	Issuer:    "video-catalog-api",
}

func TestLoginRoundTrip(t *testing.T) {
	db := newTestDB(t)
	_, userRole := seedRoles(t, db)
	user := seedUser(t, db, "SimpleUser", "userPassword", userRole)

	svc := NewAuthService(db, testJWT)

	token, err := svc.Login("SimpleUser", "userPassword")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := utils.VerifyToken(testJWT, token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, user.RoleID.String(), claims.RoleID)
}

func TestLoginFailuresIndistinguishable(t *testing.T) {
	db := newTestDB(t)
	_, userRole := seedRoles(t, db)
	seedUser(t, db, "SimpleUser", "userPassword", userRole)

	svc := NewAuthService(db, testJWT)

	_, errWrongPassword := svc.Login("SimpleUser", "wrong")
	_, errUnknownUser := svc.Login("NoSuchUser", "userPassword")

	require.Error(t, errWrongPassword)
	require.Error(t, errUnknownUser)
	assert.True(t, utils.IsKind(errWrongPassword, utils.KindNotAuthorized))
	assert.True(t, utils.IsKind(errUnknownUser, utils.KindNotAuthorized))
	// Hai trường hợp phải không phân biệt được
	assert.Equal(t, errWrongPassword.Error(), errUnknownUser.Error())
}

func TestExpiredTokenRejected(t *testing.T) {
	expired := testJWT
	expired.ExpiresIn = -time.Hour

	token, err := utils.GenerateToken(expired, "some-user", "some-role")
	require.NoError(t, err)

	_, err = utils.VerifyToken(testJWT, token)
	require.Error(t, err)
	assert.True(t, utils.IsKind(err, utils.KindNotAuthorized))
}
