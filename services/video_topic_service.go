package services

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vnkhanh/video-catalog-backend/models"
	"github.com/vnkhanh/video-catalog-backend/utils"
)

// VideoTopicService quản lý liên kết video-topic.
// Các thao tác ở đây là nhiều bước trên nhiều bảng không có transaction,
// bước bù (compensation) được code tường minh.
type VideoTopicService struct {
	db *gorm.DB
}

func NewVideoTopicService(db *gorm.DB) *VideoTopicService {
	return &VideoTopicService{db: db}
}

// Create gắn topic cho video vừa tạo.
// Topic không tồn tại: xóa video vừa tạo (hành động bù) rồi trả Conflict,
// đảm bảo không còn video mồ côi sau khi thao tác thất bại.
func (s *VideoTopicService) Create(videoID, topicID uuid.UUID) error {
	var count int64
	if err := s.db.Model(&models.Topic{}).Where("id = ?", topicID).Count(&count).Error; err != nil {
		return utils.NewInternal()
	}
	if count == 0 {
		if err := s.db.Delete(&models.Video{}, "id = ?", videoID).Error; err != nil {
			return utils.NewInternal()
		}
		return utils.NewConflict("Cannot create video because topic doesn't exists.")
	}

	videoTopic := models.VideoTopic{VideoID: videoID, TopicID: topicID}
	if err := s.db.Create(&videoTopic).Error; err != nil {
		return utils.NewInternal()
	}
	return nil
}

// Replace thay topic của video: kiểm tra topic mới tồn tại trước,
// sau đó xóa toàn bộ liên kết cũ (dọn phòng thủ, dù chỉ nên có một)
// rồi ghi liên kết mới
func (s *VideoTopicService) Replace(videoID, topicID uuid.UUID) error {
	var count int64
	if err := s.db.Model(&models.Topic{}).Where("id = ?", topicID).Count(&count).Error; err != nil {
		return utils.NewInternal()
	}
	if count == 0 {
		return utils.NewConflict("Cannot update video because topic doesn't exists.")
	}

	if err := s.DeleteForVideo(videoID); err != nil {
		return err
	}

	videoTopic := models.VideoTopic{VideoID: videoID, TopicID: topicID}
	if err := s.db.Create(&videoTopic).Error; err != nil {
		return utils.NewInternal()
	}
	return nil
}

// DeleteForVideo xóa mọi liên kết của video
func (s *VideoTopicService) DeleteForVideo(videoID uuid.UUID) error {
	if err := s.db.Delete(&models.VideoTopic{}, "video_id = ?", videoID).Error; err != nil {
		return utils.NewInternal()
	}
	return nil
}
