package routes

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/vnkhanh/video-catalog-backend/config"
	"github.com/vnkhanh/video-catalog-backend/controllers"
	"github.com/vnkhanh/video-catalog-backend/middleware"
	"github.com/vnkhanh/video-catalog-backend/services"
)

// SetupRouter dựng services, controllers, middleware và đăng ký route
func SetupRouter(r *gin.Engine, db *gorm.DB, cfg *config.Config) *gin.Engine {
	roleService := services.NewRoleService(db)
	authService := services.NewAuthService(db, cfg.JWT)
	userService := services.NewUserService(db, roleService)
	topicService := services.NewTopicService(db)
	videoTopicService := services.NewVideoTopicService(db)
	videoService := services.NewVideoService(db, videoTopicService)
	documentService := services.NewDocumentService(db, videoService)
	favoriteService := services.NewFavoriteService(db)

	var provider services.VideoInfoProvider
	if cfg.YouTubeAPIKey != "" {
		youtubeService, err := services.NewYouTubeService(context.Background(), cfg.YouTubeAPIKey)
		if err != nil {
			logrus.WithError(err).Warn("không khởi tạo được YouTube client, /video/info sẽ không dùng được")
		} else {
			provider = youtubeService
		}
	}

	auth := middleware.NewAuth(cfg.JWT, roleService, videoService, documentService)

	authCtl := controllers.NewAuthController(authService)
	userCtl := controllers.NewUserController(userService, roleService, cfg.JWT)
	videoCtl := controllers.NewVideoController(videoService, provider)
	topicCtl := controllers.NewTopicController(topicService)
	documentCtl := controllers.NewDocumentController(documentService)
	favoriteCtl := controllers.NewFavoriteController(favoriteService)
	healthCtl := controllers.NewHealthController(db)

	r.GET("/health", healthCtl.HealthCheck)

	api := r.Group("/api")

	// Auth
	api.POST("/auth/login", authCtl.Login)

	// User
	api.POST("/user", userCtl.Register)
	api.GET("/current-user", auth.CheckJWT(), userCtl.CurrentUser)
	api.GET("/users", auth.CheckJWT(), auth.RequireAdmin(), userCtl.GetUsers)
	api.GET("/user/:userId", auth.CheckJWT(), auth.RequireAdmin(), userCtl.GetUser)
	api.PATCH("/user/:userId", auth.CheckJWT(), auth.SelfOrAdmin(), userCtl.UpdateUser)
	api.DELETE("/user/:userId", auth.CheckJWT(), auth.SelfOrAdmin(), userCtl.DeleteUser)

	// Video
	api.POST("/video", auth.CheckJWT(), auth.RequireAdmin(), videoCtl.CreateVideo)
	api.POST("/video/info", auth.CheckJWT(), videoCtl.GetVideoInfo)
	api.GET("/videos", videoCtl.GetVideos)
	api.GET("/videos/user", auth.CheckJWT(), videoCtl.GetUserVideos)
	api.GET("/video/:videoId", videoCtl.GetVideo)
	api.PATCH("/video/:videoId", auth.CheckJWT(), auth.VideoOwner(), videoCtl.UpdateVideo)
	api.DELETE("/video/:videoId", auth.CheckJWT(), auth.VideoOwner(), videoCtl.DeleteVideo)

	// Favorite
	api.POST("/video/favorite/:videoId", auth.CheckJWT(), favoriteCtl.AddFavorite)
	api.GET("/video/favorites", auth.CheckJWT(), auth.RequireAdmin(), favoriteCtl.GetFavorites)
	api.GET("/video/favorite/current-user", auth.CheckJWT(), favoriteCtl.GetCurrentUserFavorites)
	api.GET("/video/favorite/:videoId", auth.CheckJWT(), favoriteCtl.GetFavorite)
	api.DELETE("/video/favorite/:videoId", auth.CheckJWT(), favoriteCtl.RemoveFavorite)

	// Topic
	api.POST("/topic", auth.CheckJWT(), auth.RequireAdmin(), topicCtl.CreateTopic)
	api.GET("/topics", topicCtl.GetTopics)
	api.GET("/topics/videos", topicCtl.GetTopicsWithVideos)
	api.GET("/topic/:topicId", topicCtl.GetTopic)
	api.PATCH("/topic/:topicId", auth.CheckJWT(), auth.RequireAdmin(), topicCtl.UpdateTopic)
	api.DELETE("/topic/:topicId", auth.CheckJWT(), auth.RequireAdmin(), topicCtl.DeleteTopic)

	// Document
	api.POST("/document", auth.CheckJWT(), auth.RequireAdmin(), documentCtl.CreateDocument)
	api.GET("/documents", auth.CheckJWT(), auth.RequireAdmin(), documentCtl.GetDocuments)
	api.GET("/documents/video/:videoId", auth.CheckJWT(), documentCtl.GetVideoDocuments)
	api.GET("/document/:documentId", auth.CheckJWT(), documentCtl.GetDocument)
	api.PATCH("/document/:documentId", auth.CheckJWT(), auth.DocumentOwner(), documentCtl.UpdateDocument)
	api.DELETE("/document/:documentId", auth.CheckJWT(), auth.DocumentOwner(), documentCtl.DeleteDocument)

	return r
}
