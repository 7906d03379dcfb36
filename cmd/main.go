package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/vnkhanh/video-catalog-backend/config"
	"github.com/vnkhanh/video-catalog-backend/routes"
	"github.com/vnkhanh/video-catalog-backend/services"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		logrus.Info("Không tìm thấy file .env")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("cấu hình không hợp lệ")
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("không thể khởi tạo database")
	}

	if err := services.NewSeederService(db).Seed(cfg); err != nil {
		logrus.WithError(err).Fatal("seed dữ liệu ban đầu thất bại")
	}

	r := gin.Default()

	// Bật CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r = routes.SetupRouter(r, db, cfg)

	logrus.Info("Server running at Port:" + cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logrus.WithError(err).Fatal("server dừng")
	}
}
