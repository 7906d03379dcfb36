package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vnkhanh/video-catalog-backend/models"
	"github.com/vnkhanh/video-catalog-backend/utils"
)

func TestCreateUser(t *testing.T) {
	db := newTestDB(t)
	seedRoles(t, db)

	svc := NewUserService(db, NewRoleService(db))

	user, err := svc.Create(CreateUserData{
		Username: "NewUser",
		Email:    "new@example.com",
		Password: "somePassword",
		Role:     models.RoleUser,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, user.Salt)
	assert.Equal(t, utils.SecurePassword(user.Salt, "somePassword"), user.EncryptPassword)

	// Trùng username
	_, err = svc.Create(CreateUserData{
		Username: "NewUser",
		Email:    "other@example.com",
		Password: "otherPassword",
		Role:     models.RoleUser,
	})
	require.Error(t, err)
	assert.True(t, utils.IsKind(err, utils.KindConflict))
}

func TestDeleteUserSelfForbidden(t *testing.T) {
	db := newTestDB(t)
	adminRole, userRole := seedRoles(t, db)
	admin := seedUser(t, db, "AdminUser", "adminPassword", adminRole)
	user := seedUser(t, db, "SimpleUser", "userPassword", userRole)

	svc := NewUserService(db, NewRoleService(db))

	// Tự xóa chính mình bị chặn dù đã xác thực
	err := svc.Delete(user.ID, user.ID)
	require.Error(t, err)
	assert.True(t, utils.IsKind(err, utils.KindForbidden))

	// Admin xóa người khác thì được
	require.NoError(t, svc.Delete(user.ID, admin.ID))

	err = svc.Delete(user.ID, admin.ID)
	require.Error(t, err)
	assert.True(t, utils.IsKind(err, utils.KindNotFound))
}

func TestUpdateUserRole(t *testing.T) {
	db := newTestDB(t)
	adminRole, userRole := seedRoles(t, db)
	user := seedUser(t, db, "SimpleUser", "userPassword", userRole)

	svc := NewUserService(db, NewRoleService(db))

	role := models.RoleAdmin
	updated, err := svc.Update(user.ID, UpdateUserData{Role: &role})
	require.NoError(t, err)
	assert.Equal(t, adminRole.ID, updated.RoleID)
}

func TestRoleResolverSoftMiss(t *testing.T) {
	db := newTestDB(t)
	seedRoles(t, db)

	svc := NewRoleService(db)

	role, err := svc.GetByName("no-such-role")
	require.NoError(t, err)
	assert.Nil(t, role)
}
