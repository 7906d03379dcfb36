package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/vnkhanh/video-catalog-backend/config"
	"github.com/vnkhanh/video-catalog-backend/services"
	"github.com/vnkhanh/video-catalog-backend/utils"
)

// Auth gom toàn bộ middleware xác thực và phân quyền.
// Cấu hình JWT và các service tra cứu được inject khi khởi tạo.
type Auth struct {
	jwt       config.JWTConfig
	roles     *services.RoleService
	videos    *services.VideoService
	documents *services.DocumentService
}

func NewAuth(jwt config.JWTConfig, roles *services.RoleService, videos *services.VideoService, documents *services.DocumentService) *Auth {
	return &Auth{jwt: jwt, roles: roles, videos: videos, documents: documents}
}

// CheckJWT kiểm tra chữ ký và hạn token, lưu claims vào context.
// Header đi qua utils.TokenFromHeader, không parse lại ở nơi khác.
func (a *Auth) CheckJWT() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := utils.TokenFromHeader(c.GetHeader("Authorization"))
		if err != nil {
			abortError(c, err)
			return
		}

		claims, err := utils.VerifyToken(a.jwt, token)
		if err != nil {
			abortError(c, err)
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role_id", claims.RoleID)
		c.Next()
	}
}

// abortError trả lỗi theo Kind rồi dừng chuỗi middleware.
// Lỗi Internal chỉ trả message chung, chi tiết ghi log.
func abortError(c *gin.Context, err error) {
	status := utils.HTTPStatus(err)
	if status >= 500 {
		logrus.WithError(err).Error("middleware error")
		c.AbortWithStatusJSON(status, gin.H{"error": "Something went wrong"})
		return
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}
