package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vnkhanh/video-catalog-backend/models"
	"github.com/vnkhanh/video-catalog-backend/utils"
)

type TopicService struct {
	db *gorm.DB
}

func NewTopicService(db *gorm.DB) *TopicService {
	return &TopicService{db: db}
}

type TopicData struct {
	Name      string
	Color     string
	Thumbnail models.Thumbnail
}

// Create tạo topic mới, tên topic là duy nhất toàn hệ thống
func (s *TopicService) Create(data TopicData) (*models.Topic, error) {
	var count int64
	if err := s.db.Model(&models.Topic{}).Where("name = ?", data.Name).Count(&count).Error; err != nil {
		return nil, utils.NewInternal()
	}
	if count > 0 {
		return nil, utils.NewConflict("Topic exists")
	}

	topic := models.Topic{
		Name:      data.Name,
		Color:     data.Color,
		Thumbnail: data.Thumbnail,
	}
	if err := s.db.Create(&topic).Error; err != nil {
		return nil, utils.NewInternal()
	}
	return &topic, nil
}

// Get trả về topic theo id
func (s *TopicService) Get(topicID uuid.UUID) (*models.Topic, error) {
	var topic models.Topic
	if err := s.db.First(&topic, "id = ?", topicID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFound("Topic doesn't exists")
		}
		return nil, utils.NewInternal()
	}
	return &topic, nil
}

// GetWithVideos trả về topic kèm các video thuộc topic.
// Video đã bị xóa giữa chừng (tham chiếu treo) cho ra Video nil,
// không phải lỗi.
func (s *TopicService) GetWithVideos(topicID uuid.UUID) (*models.Topic, error) {
	var topic models.Topic
	err := s.db.
		Preload("Videos").
		Preload("Videos.Video").
		First(&topic, "id = ?", topicID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFound("Topic doesn't exists")
		}
		return nil, utils.NewInternal()
	}
	return &topic, nil
}

// All liệt kê topic có phân trang
func (s *TopicService) All(page, limit int, withVideos bool) ([]models.Topic, int64, error) {
	var topics []models.Topic
	var total int64

	if err := s.db.Model(&models.Topic{}).Count(&total).Error; err != nil {
		return nil, 0, utils.NewInternal()
	}

	query := s.db.Limit(limit).Offset((page - 1) * limit).Order("created_at desc")
	if withVideos {
		query = query.Preload("Videos").Preload("Videos.Video")
	}
	if err := query.Find(&topics).Error; err != nil {
		return nil, 0, utils.NewInternal()
	}
	return topics, total, nil
}

type UpdateTopicData struct {
	Name      *string
	Color     *string
	Thumbnail *models.Thumbnail
}

// Update cập nhật topic
func (s *TopicService) Update(topicID uuid.UUID, data UpdateTopicData) (*models.Topic, error) {
	topic, err := s.Get(topicID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if data.Name != nil {
		var count int64
		if err := s.db.Model(&models.Topic{}).
			Where("name = ? AND id <> ?", *data.Name, topicID).
			Count(&count).Error; err != nil {
			return nil, utils.NewInternal()
		}
		if count > 0 {
			return nil, utils.NewConflict("Topic exists")
		}
		updates["name"] = *data.Name
	}
	if data.Color != nil {
		updates["color"] = *data.Color
	}
	if data.Thumbnail != nil {
		updates["thumbnail_url"] = data.Thumbnail.URL
		updates["thumbnail_width"] = data.Thumbnail.Width
		updates["thumbnail_height"] = data.Thumbnail.Height
	}

	if len(updates) > 0 {
		if err := s.db.Model(topic).Updates(updates).Error; err != nil {
			return nil, utils.NewInternal()
		}
	}
	return s.Get(topicID)
}

// Delete xóa topic. Từ chối khi còn video gắn với topic
// để bất biến "topic của association luôn tồn tại" không bị phá.
func (s *TopicService) Delete(topicID uuid.UUID) error {
	topic, err := s.Get(topicID)
	if err != nil {
		return err
	}

	var refs int64
	if err := s.db.Model(&models.VideoTopic{}).Where("topic_id = ?", topicID).Count(&refs).Error; err != nil {
		return utils.NewInternal()
	}
	if refs > 0 {
		return utils.NewConflict("Cannot delete topic while videos still reference it")
	}

	if err := s.db.Delete(&models.Topic{}, "id = ?", topic.ID).Error; err != nil {
		return utils.NewInternal()
	}
	return nil
}
