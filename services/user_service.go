package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vnkhanh/video-catalog-backend/models"
	"github.com/vnkhanh/video-catalog-backend/utils"
)

type UserService struct {
	db    *gorm.DB
	roles *RoleService
}

func NewUserService(db *gorm.DB, roles *RoleService) *UserService {
	return &UserService{db: db, roles: roles}
}

type CreateUserData struct {
	Username string
	Email    string
	Password string
	Role     models.RoleName
}

// Create tạo user mới với salt riêng và mật khẩu đã băm
func (s *UserService) Create(data CreateUserData) (*models.User, error) {
	var count int64
	if err := s.db.Model(&models.User{}).Where("username = ?", data.Username).Count(&count).Error; err != nil {
		return nil, utils.NewInternal()
	}
	if count > 0 {
		return nil, utils.NewConflict("User exists")
	}

	role, err := s.roles.GetByName(data.Role)
	if err != nil {
		return nil, utils.NewInternal()
	}
	if role == nil {
		return nil, utils.NewNotFound("Role doesn't exists")
	}

	salt := utils.NewSalt()
	user := models.User{
		Username:        data.Username,
		Email:           data.Email,
		EncryptPassword: utils.SecurePassword(salt, data.Password),
		Salt:            salt,
		RoleID:          role.ID,
	}

	if err := s.db.Create(&user).Error; err != nil {
		return nil, utils.NewInternal()
	}
	return &user, nil
}

// Get trả về user kèm role và danh sách yêu thích (populated)
func (s *UserService) Get(userID uuid.UUID) (*models.User, error) {
	var user models.User
	err := s.db.
		Preload("Role").
		Preload("Favorites").
		Preload("Favorites.Video").
		First(&user, "id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFound("User doesn't exists")
		}
		return nil, utils.NewInternal()
	}
	return &user, nil
}

// CurrentUser lấy user từ subject id trong token đã xác thực
func (s *UserService) CurrentUser(userID string) (*models.User, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.NewNotAuthorized()
	}
	return s.Get(id)
}

// All liệt kê user có phân trang
func (s *UserService) All(page, limit int) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	if err := s.db.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, utils.NewInternal()
	}

	err := s.db.
		Preload("Role").
		Limit(limit).
		Offset((page - 1) * limit).
		Order("created_at desc").
		Find(&users).Error
	if err != nil {
		return nil, 0, utils.NewInternal()
	}
	return users, total, nil
}

type UpdateUserData struct {
	Email    *string
	Password *string
	Role     *models.RoleName
}

// Update cập nhật user; đổi role sẽ resolve tên role sang role id
func (s *UserService) Update(userID uuid.UUID, data UpdateUserData) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFound("User doesn't exists")
		}
		return nil, utils.NewInternal()
	}

	updates := map[string]interface{}{}
	if data.Email != nil {
		updates["email"] = *data.Email
	}
	if data.Password != nil {
		salt := utils.NewSalt()
		updates["salt"] = salt
		updates["encrypt_password"] = utils.SecurePassword(salt, *data.Password)
	}
	if data.Role != nil {
		role, err := s.roles.GetByName(*data.Role)
		if err != nil {
			return nil, utils.NewInternal()
		}
		if role == nil {
			return nil, utils.NewNotFound("Role doesn't exists")
		}
		updates["role_id"] = role.ID
	}

	if len(updates) > 0 {
		if err := s.db.Model(&user).Updates(updates).Error; err != nil {
			return nil, utils.NewInternal()
		}
	}
	return s.Get(userID)
}

// Delete xóa cứng user. Người dùng không được tự xóa chính mình.
func (s *UserService) Delete(userID, actorID uuid.UUID) error {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NewNotFound("User doesn't exists")
		}
		return utils.NewInternal()
	}

	if user.ID == actorID {
		return utils.NewForbidden()
	}

	if err := s.db.Delete(&models.User{}, "id = ?", user.ID).Error; err != nil {
		return utils.NewInternal()
	}
	return nil
}
