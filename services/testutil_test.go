package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vnkhanh/video-catalog-backend/models"
	"github.com/vnkhanh/video-catalog-backend/utils"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.Video{},
		&models.Topic{},
		&models.VideoTopic{},
		&models.UrlDocument{},
		&models.UserVideo{},
	))
	return db
}

func seedRoles(t *testing.T, db *gorm.DB) (adminRole, userRole models.Role) {
	t.Helper()

	adminRole = models.Role{Name: models.RoleAdmin}
	userRole = models.Role{Name: models.RoleUser}
	require.NoError(t, db.Create(&adminRole).Error)
	require.NoError(t, db.Create(&userRole).Error)
	return adminRole, userRole
}

func seedUser(t *testing.T, db *gorm.DB, username, password string, role models.Role) models.User {
	t.Helper()

	salt := utils.NewSalt()
	user := models.User{
		Username:        username,
		Email:           username + "@example.com",
		EncryptPassword: utils.SecurePassword(salt, password),
		Salt:            salt,
		RoleID:          role.ID,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedTopic(t *testing.T, db *gorm.DB, name string) models.Topic {
	t.Helper()

	topic := models.Topic{
		Name:  name,
		Color: "#6a76e2",
		Thumbnail: models.Thumbnail{
			URL:    "https://example.com/thumb.png",
			Width:  480,
			Height: 640,
		},
	}
	require.NoError(t, db.Create(&topic).Error)
	return topic
}

func videoData(title string, topicID, userID uuid.UUID) CreateVideoData {
	return CreateVideoData{
		Title:           title,
		OriginalTitle:   title,
		OriginURL:       "https://www.youtube.com/watch?v=tSzMZqrAqPc",
		Description:     "mô tả " + title,
		ChannelTitle:    "channel",
		Duration:        "PT23M21S",
		DefaultLanguage: "en-US",
		DataType:        models.DataTypeVideo,
		TopicID:         topicID,
		UserID:          userID,
	}
}
