package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vnkhanh/video-catalog-backend/models"
	"github.com/vnkhanh/video-catalog-backend/utils"
)

type VideoService struct {
	db     *gorm.DB
	topics *VideoTopicService
}

func NewVideoService(db *gorm.DB, topics *VideoTopicService) *VideoService {
	return &VideoService{db: db, topics: topics}
}

type CreateVideoData struct {
	Title           string
	OriginalTitle   string
	OriginURL       string
	Thumbnail       models.Thumbnail
	Description     string
	ChannelTitle    string
	Duration        string
	DefaultLanguage string
	DataType        models.DataType
	TopicID         uuid.UUID
	UserID          uuid.UUID
}

// Create tạo video kèm liên kết topic.
// Thứ tự: probe trùng title → ghi video → kiểm tra topic
// (topic thiếu thì VideoTopicService xóa video vừa ghi) → ghi liên kết.
// Id video chỉ trả về cho caller khi toàn bộ các bước thành công.
func (s *VideoService) Create(data CreateVideoData) (*models.Video, error) {
	var count int64
	if err := s.db.Model(&models.Video{}).Where("title = ?", data.Title).Count(&count).Error; err != nil {
		return nil, utils.NewInternal()
	}
	if count > 0 {
		return nil, utils.NewConflict("Video exists")
	}

	video := models.Video{
		Title:           data.Title,
		OriginalTitle:   data.OriginalTitle,
		OriginURL:       data.OriginURL,
		Thumbnail:       data.Thumbnail,
		Description:     data.Description,
		ChannelTitle:    data.ChannelTitle,
		Duration:        data.Duration,
		DefaultLanguage: data.DefaultLanguage,
		DataType:        data.DataType,
		UserID:          data.UserID,
	}
	if err := s.db.Create(&video).Error; err != nil {
		// Unique index chặn race hai request cùng title
		// lọt qua probe phía trên
		return nil, utils.NewConflict("Video exists")
	}

	if err := s.topics.Create(video.ID, data.TopicID); err != nil {
		return nil, err
	}
	return &video, nil
}

// Get trả về video kèm user, topic và tài liệu (populated)
func (s *VideoService) Get(videoID uuid.UUID) (*models.Video, error) {
	var video models.Video
	err := s.db.
		Preload("User").
		Preload("Topics").
		Preload("Topics.Topic").
		Preload("Documents").
		First(&video, "id = ?", videoID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFound("Video doesn't exists")
		}
		return nil, utils.NewInternal()
	}
	return &video, nil
}

// All liệt kê video có phân trang, kèm các quan hệ
func (s *VideoService) All(page, limit int) ([]models.Video, int64, error) {
	return s.list(s.db, page, limit)
}

// ForUser liệt kê video thuộc một user
func (s *VideoService) ForUser(userID uuid.UUID, page, limit int) ([]models.Video, int64, error) {
	return s.list(s.db.Where("user_id = ?", userID), page, limit)
}

func (s *VideoService) list(query *gorm.DB, page, limit int) ([]models.Video, int64, error) {
	var videos []models.Video
	var total int64

	if err := query.Model(&models.Video{}).Count(&total).Error; err != nil {
		return nil, 0, utils.NewInternal()
	}

	err := query.
		Preload("User").
		Preload("Topics").
		Preload("Topics.Topic").
		Preload("Documents").
		Limit(limit).
		Offset((page - 1) * limit).
		Order("created_at desc").
		Find(&videos).Error
	if err != nil {
		return nil, 0, utils.NewInternal()
	}
	return videos, total, nil
}

type UpdateVideoData struct {
	Title           *string
	OriginalTitle   *string
	OriginURL       *string
	Thumbnail       *models.Thumbnail
	Description     *string
	ChannelTitle    *string
	Duration        *string
	DefaultLanguage *string
	DataType        *models.DataType
	TopicID         *uuid.UUID
}

// Update cập nhật video. Đổi topic chạy thủ tục thay liên kết
// (topic mới được kiểm tra tồn tại trước khi xóa liên kết cũ).
func (s *VideoService) Update(videoID uuid.UUID, data UpdateVideoData) (*models.Video, error) {
	var video models.Video
	if err := s.db.First(&video, "id = ?", videoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFound("Video doesn't exists")
		}
		return nil, utils.NewInternal()
	}

	if data.TopicID != nil {
		if err := s.topics.Replace(videoID, *data.TopicID); err != nil {
			return nil, err
		}
	}

	updates := map[string]interface{}{}
	if data.Title != nil {
		var count int64
		if err := s.db.Model(&models.Video{}).
			Where("title = ? AND id <> ?", *data.Title, videoID).
			Count(&count).Error; err != nil {
			return nil, utils.NewInternal()
		}
		if count > 0 {
			return nil, utils.NewConflict("Video exists")
		}
		updates["title"] = *data.Title
	}
	if data.OriginalTitle != nil {
		updates["original_title"] = *data.OriginalTitle
	}
	if data.OriginURL != nil {
		updates["origin_url"] = *data.OriginURL
	}
	if data.Thumbnail != nil {
		updates["thumbnail_url"] = data.Thumbnail.URL
		updates["thumbnail_width"] = data.Thumbnail.Width
		updates["thumbnail_height"] = data.Thumbnail.Height
	}
	if data.Description != nil {
		updates["description"] = *data.Description
	}
	if data.ChannelTitle != nil {
		updates["channel_title"] = *data.ChannelTitle
	}
	if data.Duration != nil {
		updates["duration"] = *data.Duration
	}
	if data.DefaultLanguage != nil {
		updates["default_language"] = *data.DefaultLanguage
	}
	if data.DataType != nil {
		updates["data_type"] = *data.DataType
	}

	if len(updates) > 0 {
		if err := s.db.Model(&video).Updates(updates).Error; err != nil {
			return nil, utils.NewInternal()
		}
	}
	return s.Get(videoID)
}

// Delete xóa video và toàn bộ bản ghi phụ thuộc:
// liên kết topic, tài liệu, đánh dấu yêu thích.
// Gọi lần hai trên cùng id trả về NotFound.
func (s *VideoService) Delete(videoID uuid.UUID) error {
	var video models.Video
	if err := s.db.First(&video, "id = ?", videoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NewNotFound("Video doesn't exists")
		}
		return utils.NewInternal()
	}

	if err := s.db.Delete(&models.Video{}, "id = ?", videoID).Error; err != nil {
		return utils.NewInternal()
	}
	if err := s.topics.DeleteForVideo(videoID); err != nil {
		return err
	}
	if err := s.db.Delete(&models.UrlDocument{}, "video_id = ?", videoID).Error; err != nil {
		return utils.NewInternal()
	}
	if err := s.db.Delete(&models.UserVideo{}, "video_id = ?", videoID).Error; err != nil {
		return utils.NewInternal()
	}
	return nil
}
