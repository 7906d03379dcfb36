package services

import (
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/vnkhanh/video-catalog-backend/config"
	"github.com/vnkhanh/video-catalog-backend/models"
	"github.com/vnkhanh/video-catalog-backend/utils"
)

type SeederService struct {
	db *gorm.DB
}

func NewSeederService(db *gorm.DB) *SeederService {
	return &SeederService{db: db}
}

// Seed tạo hai role cố định và tài khoản admin đầu tiên khi DB trống.
// Chạy mỗi lần khởi động, đã seed rồi thì bỏ qua.
func (s *SeederService) Seed(cfg *config.Config) error {
	for _, name := range []models.RoleName{models.RoleAdmin, models.RoleUser} {
		role := models.Role{Name: name}
		if err := s.db.FirstOrCreate(&role, models.Role{Name: name}).Error; err != nil {
			return err
		}
	}

	var userCount int64
	if err := s.db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		return err
	}
	if userCount > 0 {
		return nil
	}
	if cfg.SeedAdminPassword == "" {
		logrus.Warn("DB chưa có user nào và SEED_ADMIN_PASSWORD chưa đặt, bỏ qua seed admin")
		return nil
	}

	var adminRole models.Role
	if err := s.db.First(&adminRole, "name = ?", models.RoleAdmin).Error; err != nil {
		return err
	}

	salt := utils.NewSalt()
	admin := models.User{
		Username:        cfg.SeedAdminUsername,
		Email:           cfg.SeedAdminEmail,
		EncryptPassword: utils.SecurePassword(salt, cfg.SeedAdminPassword),
		Salt:            salt,
		RoleID:          adminRole.ID,
	}
	if err := s.db.Create(&admin).Error; err != nil {
		return err
	}

	logrus.WithField("username", admin.Username).Info("đã seed tài khoản admin")
	return nil
}
