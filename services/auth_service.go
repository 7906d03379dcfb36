package services

import (
	"gorm.io/gorm"

	"github.com/vnkhanh/video-catalog-backend/config"
	"github.com/vnkhanh/video-catalog-backend/models"
	"github.com/vnkhanh/video-catalog-backend/utils"
)

// AuthService xác thực thông tin đăng nhập và phát hành token.
// Cấu hình JWT được inject khi khởi tạo.
type AuthService struct {
	db  *gorm.DB
	jwt config.JWTConfig
}

func NewAuthService(db *gorm.DB, jwt config.JWTConfig) *AuthService {
	return &AuthService{db: db, jwt: jwt}
}

// Login kiểm tra username + mật khẩu, trả về JWT.
// Sai user hay sai mật khẩu đều trả về cùng một lỗi NotAuthorized,
// không để lộ nguyên nhân.
func (s *AuthService) Login(username, password string) (string, error) {
	var user models.User
	if err := s.db.First(&user, "username = ?", username).Error; err != nil {
		return "", utils.NewNotAuthorized()
	}

	if utils.SecurePassword(user.Salt, password) != user.EncryptPassword {
		return "", utils.NewNotAuthorized()
	}

	token, err := utils.GenerateToken(s.jwt, user.ID.String(), user.RoleID.String())
	if err != nil {
		return "", utils.NewInternal()
	}
	return token, nil
}
