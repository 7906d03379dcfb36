package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vnkhanh/video-catalog-backend/models"
)

type RoleService struct {
	db *gorm.DB
}

func NewRoleService(db *gorm.DB) *RoleService {
	return &RoleService{db: db}
}

// GetByID tìm role theo id. Không tìm thấy trả về (nil, nil):
// caller phải tự coi role thiếu là không có quyền.
func (s *RoleService) GetByID(id uuid.UUID) (*models.Role, error) {
	var role models.Role
	if err := s.db.First(&role, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &role, nil
}

// GetByName tìm role theo tên, miss trả về (nil, nil)
func (s *RoleService) GetByName(name models.RoleName) (*models.Role, error) {
	var role models.Role
	if err := s.db.First(&role, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &role, nil
}
