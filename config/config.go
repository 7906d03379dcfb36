package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vnkhanh/video-catalog-backend/models"
)

// JWTConfig chứa toàn bộ cấu hình ký token.
// Được truyền tường minh vào AuthService và middleware,
// không đọc env tại thời điểm gọi.
type JWTConfig struct {
	Secret    string        `env:"JWT_SECRET,required"`
	ExpiresIn time.Duration `env:"JWT_EXPIRES_IN" envDefault:"24h"`
	Audience  string        `env:"JWT_AUDIENCE" envDefault:"video-catalog"`
	Issuer    string        `env:"JWT_ISSUER" envDefault:"video-catalog-api"`
}

type Config struct {
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" envDefault:"video_catalog"`

	Port       string `env:"PORT" envDefault:"8080"`
	CORSOrigin string `env:"CORS_ORIGIN" envDefault:"http://localhost:3000"`

	YouTubeAPIKey string `env:"YOUTUBE_API_KEY"`

	// Tài khoản admin khởi tạo khi DB trống
	SeedAdminUsername string `env:"SEED_ADMIN_USERNAME" envDefault:"AdminUser"`
	SeedAdminEmail    string `env:"SEED_ADMIN_EMAIL" envDefault:"admin@localhost"`
	SeedAdminPassword string `env:"SEED_ADMIN_PASSWORD"`

	JWT JWTConfig
}

var DB *gorm.DB

// Load đọc cấu hình từ biến môi trường
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// InitDB kết nối PostgreSQL, cấu hình pool và migrate các models
func InitDB(cfg *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("không thể kết nối database: %w", err)
	}

	DB = db

	// Connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("autoMigrate lỗi: %w", err)
	}

	logrus.Info("postgreSQL connected & migrated successfully!")
	return db, nil
}

// Migrate chạy AutoMigrate cho toàn bộ models.
// Tách riêng để test dùng lại với driver khác.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.Video{},
		&models.Topic{},
		&models.VideoTopic{},
		&models.UrlDocument{},
		&models.UserVideo{},
	)
}
