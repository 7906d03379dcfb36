package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vnkhanh/video-catalog-backend/models"
	"github.com/vnkhanh/video-catalog-backend/utils"
)

// ResourceLocator ánh xạ params của request sang user id sở hữu resource.
// Các gate owner chỉ khác nhau ở locator.
type ResourceLocator func(c *gin.Context) (uuid.UUID, error)

// isAdmin resolve role từ claims trong context.
// Role không resolve được coi như không có quyền, không phải crash.
func (a *Auth) isAdmin(c *gin.Context) (bool, error) {
	roleID, err := uuid.Parse(c.GetString("role_id"))
	if err != nil {
		return false, nil
	}
	role, err := a.roles.GetByID(roleID)
	if err != nil {
		return false, utils.NewInternal()
	}
	return role != nil && role.Name == models.RoleAdmin, nil
}

// RequireAdmin chỉ cho phép administrator đi tiếp.
// Chạy sau CheckJWT.
func (a *Auth) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		admin, err := a.isAdmin(c)
		if err != nil {
			abortError(c, err)
			return
		}
		if !admin {
			abortError(c, utils.NewNotAuthorized())
			return
		}
		c.Next()
	}
}

// SelfOrAdmin cho phép khi :userId là chính người gọi hoặc người gọi là admin
func (a *Auth) SelfOrAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Param("userId") == c.GetString("user_id") {
			c.Next()
			return
		}

		admin, err := a.isAdmin(c)
		if err != nil {
			abortError(c, err)
			return
		}
		if !admin {
			abortError(c, utils.NewNotAuthorized())
			return
		}
		c.Next()
	}
}

// Owner cho phép khi người gọi sở hữu resource hoặc là admin.
// Resource không tồn tại trả NotFound trước khi xét quyền,
// bất kể vai trò người gọi.
func (a *Auth) Owner(locate ResourceLocator) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, err := locate(c)
		if err != nil {
			abortError(c, err)
			return
		}

		if ownerID.String() == c.GetString("user_id") {
			c.Next()
			return
		}

		admin, err := a.isAdmin(c)
		if err != nil {
			abortError(c, err)
			return
		}
		if !admin {
			abortError(c, utils.NewNotAuthorized())
			return
		}
		c.Next()
	}
}

// VideoOwner gate cho các thao tác trên :videoId
func (a *Auth) VideoOwner() gin.HandlerFunc {
	return a.Owner(func(c *gin.Context) (uuid.UUID, error) {
		videoID, err := uuid.Parse(c.Param("videoId"))
		if err != nil {
			return uuid.Nil, utils.NewBadRequest("Invalid videoId")
		}
		video, err := a.videos.Get(videoID)
		if err != nil {
			return uuid.Nil, err
		}
		return video.UserID, nil
	})
}

// DocumentOwner gate cho các thao tác trên :documentId,
// quyền sở hữu đi qua video cha của tài liệu
func (a *Auth) DocumentOwner() gin.HandlerFunc {
	return a.Owner(func(c *gin.Context) (uuid.UUID, error) {
		documentID, err := uuid.Parse(c.Param("documentId"))
		if err != nil {
			return uuid.Nil, utils.NewBadRequest("Invalid documentId")
		}
		document, err := a.documents.Get(documentID)
		if err != nil {
			return uuid.Nil, err
		}
		video, err := a.videos.Get(document.VideoID)
		if err != nil {
			return uuid.Nil, err
		}
		return video.UserID, nil
	})
}
