package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vnkhanh/video-catalog-backend/models"
	"github.com/vnkhanh/video-catalog-backend/utils"
)

func TestCreateTopicDuplicateName(t *testing.T) {
	db := newTestDB(t)
	svc := NewTopicService(db)

	first, err := svc.Create(TopicData{Name: "Math", Color: "#6a76e2"})
	require.NoError(t, err)

	_, err = svc.Create(TopicData{Name: "Math", Color: "#ff0000"})
	require.Error(t, err)
	assert.True(t, utils.IsKind(err, utils.KindConflict))

	// Topic đầu phải còn nguyên
	got, err := svc.Get(first.ID)
	require.NoError(t, err)
	assert.Equal(t, "#6a76e2", got.Color)
}

func TestDeleteTopicBlockedWhileReferenced(t *testing.T) {
	db := newTestDB(t)
	adminRole, _ := seedRoles(t, db)
	admin := seedUser(t, db, "AdminUser", "adminPassword", adminRole)
	topic := seedTopic(t, db, "Math")

	videos := newVideoService(db)
	_, err := videos.Create(videoData("Limits", topic.ID, admin.ID))
	require.NoError(t, err)

	svc := NewTopicService(db)

	err = svc.Delete(topic.ID)
	require.Error(t, err)
	assert.True(t, utils.IsKind(err, utils.KindConflict))

	// Sau khi video (và liên kết) bị xóa thì topic xóa được
	var video models.Video
	require.NoError(t, db.First(&video, "title = ?", "Limits").Error)
	require.NoError(t, videos.Delete(video.ID))
	require.NoError(t, svc.Delete(topic.ID))
}

func TestUpdateTopic(t *testing.T) {
	db := newTestDB(t)
	topic := seedTopic(t, db, "Math")

	svc := NewTopicService(db)

	name := "Mathematics"
	color := "#ff0000"
	updated, err := svc.Update(topic.ID, UpdateTopicData{Name: &name, Color: &color})
	require.NoError(t, err)
	assert.Equal(t, "Mathematics", updated.Name)
	assert.Equal(t, "#ff0000", updated.Color)
}

func TestGetTopicMissing(t *testing.T) {
	db := newTestDB(t)
	topic := seedTopic(t, db, "Math")

	svc := NewTopicService(db)
	require.NoError(t, db.Delete(&models.Topic{}, "id = ?", topic.ID).Error)

	_, err := svc.Get(topic.ID)
	require.Error(t, err)
	assert.True(t, utils.IsKind(err, utils.KindNotFound))
}
