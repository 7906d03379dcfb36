package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vnkhanh/video-catalog-backend/models"
	"github.com/vnkhanh/video-catalog-backend/utils"
)

type FavoriteService struct {
	db *gorm.DB
}

func NewFavoriteService(db *gorm.DB) *FavoriteService {
	return &FavoriteService{db: db}
}

// Create đánh dấu video yêu thích cho user.
// Video cha phải tồn tại, mỗi cặp (user, video) chỉ một bản ghi.
func (s *FavoriteService) Create(userID, videoID uuid.UUID) (*models.UserVideo, error) {
	var count int64
	if err := s.db.Model(&models.Video{}).Where("id = ?", videoID).Count(&count).Error; err != nil {
		return nil, utils.NewInternal()
	}
	if count == 0 {
		return nil, utils.NewNotFound("Video doesn't exists")
	}

	if err := s.db.Model(&models.UserVideo{}).
		Where("user_id = ? AND video_id = ?", userID, videoID).
		Count(&count).Error; err != nil {
		return nil, utils.NewInternal()
	}
	if count > 0 {
		return nil, utils.NewConflict("Favorite video exists for user")
	}

	favorite := models.UserVideo{
		UserID:   userID,
		VideoID:  videoID,
		Favorite: true,
	}
	if err := s.db.Create(&favorite).Error; err != nil {
		// Unique index (user_id, video_id) chặn race trùng lặp
		return nil, utils.NewConflict("Favorite video exists for user")
	}
	return &favorite, nil
}

// All liệt kê toàn bộ đánh dấu yêu thích
func (s *FavoriteService) All(page, limit int) ([]models.UserVideo, int64, error) {
	return s.list(s.db, page, limit)
}

// ForUser liệt kê video yêu thích của một user
func (s *FavoriteService) ForUser(userID uuid.UUID, page, limit int) ([]models.UserVideo, int64, error) {
	return s.list(s.db.Where("user_id = ?", userID), page, limit)
}

func (s *FavoriteService) list(query *gorm.DB, page, limit int) ([]models.UserVideo, int64, error) {
	var favorites []models.UserVideo
	var total int64

	if err := query.Model(&models.UserVideo{}).Count(&total).Error; err != nil {
		return nil, 0, utils.NewInternal()
	}

	err := query.
		Preload("Video").
		Limit(limit).
		Offset((page - 1) * limit).
		Order("created_at desc").
		Find(&favorites).Error
	if err != nil {
		return nil, 0, utils.NewInternal()
	}
	return favorites, total, nil
}

// Get trả về bản ghi yêu thích của cặp (user, video)
func (s *FavoriteService) Get(userID, videoID uuid.UUID) (*models.UserVideo, error) {
	var favorite models.UserVideo
	err := s.db.
		Preload("Video").
		First(&favorite, "user_id = ? AND video_id = ?", userID, videoID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFound("Favorite video doesn't exists")
		}
		return nil, utils.NewInternal()
	}
	return &favorite, nil
}

// Delete bỏ yêu thích: xóa hẳn bản ghi, không giữ lại với favorite=false
func (s *FavoriteService) Delete(userID, videoID uuid.UUID) error {
	if _, err := s.Get(userID, videoID); err != nil {
		return err
	}
	if err := s.db.Delete(&models.UserVideo{}, "user_id = ? AND video_id = ?", userID, videoID).Error; err != nil {
		return utils.NewInternal()
	}
	return nil
}
