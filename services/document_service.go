package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vnkhanh/video-catalog-backend/models"
	"github.com/vnkhanh/video-catalog-backend/utils"
)

type DocumentService struct {
	db     *gorm.DB
	videos *VideoService
}

func NewDocumentService(db *gorm.DB, videos *VideoService) *DocumentService {
	return &DocumentService{db: db, videos: videos}
}

type DocumentData struct {
	Name    string
	URLLink string
	VideoID uuid.UUID
}

// Create tạo tài liệu cho video. Video cha phải tồn tại,
// tên tài liệu duy nhất toàn hệ thống.
func (s *DocumentService) Create(data DocumentData) (*models.UrlDocument, error) {
	if _, err := s.videos.Get(data.VideoID); err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.Model(&models.UrlDocument{}).Where("name = ?", data.Name).Count(&count).Error; err != nil {
		return nil, utils.NewInternal()
	}
	if count > 0 {
		return nil, utils.NewConflict("Document exists")
	}

	document := models.UrlDocument{
		Name:    data.Name,
		URLLink: data.URLLink,
		VideoID: data.VideoID,
	}
	if err := s.db.Create(&document).Error; err != nil {
		return nil, utils.NewInternal()
	}
	return &document, nil
}

// Get trả về tài liệu theo id
func (s *DocumentService) Get(documentID uuid.UUID) (*models.UrlDocument, error) {
	var document models.UrlDocument
	if err := s.db.First(&document, "id = ?", documentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFound("Document doesn't exists")
		}
		return nil, utils.NewInternal()
	}
	return &document, nil
}

// All liệt kê tài liệu có phân trang
func (s *DocumentService) All(page, limit int) ([]models.UrlDocument, int64, error) {
	return s.list(s.db, page, limit)
}

// ForVideo liệt kê tài liệu của một video
func (s *DocumentService) ForVideo(videoID uuid.UUID, page, limit int) ([]models.UrlDocument, int64, error) {
	return s.list(s.db.Where("video_id = ?", videoID), page, limit)
}

func (s *DocumentService) list(query *gorm.DB, page, limit int) ([]models.UrlDocument, int64, error) {
	var documents []models.UrlDocument
	var total int64

	if err := query.Model(&models.UrlDocument{}).Count(&total).Error; err != nil {
		return nil, 0, utils.NewInternal()
	}

	err := query.
		Limit(limit).
		Offset((page - 1) * limit).
		Order("created_at desc").
		Find(&documents).Error
	if err != nil {
		return nil, 0, utils.NewInternal()
	}
	return documents, total, nil
}

type UpdateDocumentData struct {
	Name    *string
	URLLink *string
}

// Update cập nhật tài liệu
func (s *DocumentService) Update(documentID uuid.UUID, data UpdateDocumentData) (*models.UrlDocument, error) {
	document, err := s.Get(documentID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if data.Name != nil {
		var count int64
		if err := s.db.Model(&models.UrlDocument{}).
			Where("name = ? AND id <> ?", *data.Name, documentID).
			Count(&count).Error; err != nil {
			return nil, utils.NewInternal()
		}
		if count > 0 {
			return nil, utils.NewConflict("Document exists")
		}
		updates["name"] = *data.Name
	}
	if data.URLLink != nil {
		updates["url_link"] = *data.URLLink
	}

	if len(updates) > 0 {
		if err := s.db.Model(document).Updates(updates).Error; err != nil {
			return nil, utils.NewInternal()
		}
	}
	return s.Get(documentID)
}

// Delete xóa cứng tài liệu
func (s *DocumentService) Delete(documentID uuid.UUID) error {
	document, err := s.Get(documentID)
	if err != nil {
		return err
	}
	if err := s.db.Delete(&models.UrlDocument{}, "id = ?", document.ID).Error; err != nil {
		return utils.NewInternal()
	}
	return nil
}
