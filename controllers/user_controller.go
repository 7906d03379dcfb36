package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vnkhanh/video-catalog-backend/config"
	"github.com/vnkhanh/video-catalog-backend/models"
	"github.com/vnkhanh/video-catalog-backend/services"
	"github.com/vnkhanh/video-catalog-backend/utils"
)

type UserController struct {
	users *services.UserService
	roles *services.RoleService
	jwt   config.JWTConfig
}

func NewUserController(users *services.UserService, roles *services.RoleService, jwt config.JWTConfig) *UserController {
	return &UserController{users: users, roles: roles, jwt: jwt}
}

type RegisterInput struct {
	Username string `json:"username" binding:"required,min=4,max=32"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=4"`
	Role     string `json:"role" binding:"omitempty,oneof=admin user"`
}

// requesterRoleIsAdmin resolve role id trong token sang role admin.
// Dùng cho route đăng ký (không bắt buộc đăng nhập) và đổi role.
func (ctl *UserController) requesterRoleIsAdmin(roleID string) bool {
	id, err := uuid.Parse(roleID)
	if err != nil {
		return false
	}
	role, err := ctl.roles.GetByID(id)
	if err != nil || role == nil {
		return false
	}
	return role.Name == models.RoleAdmin
}

// Register tạo user mới. Role được yêu cầu chỉ có hiệu lực
// khi request mang token hợp lệ của admin, ngược lại ép về user.
func (ctl *UserController) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	requested := models.RoleUser
	if input.Role == string(models.RoleAdmin) {
		requested = models.RoleName(input.Role)
		allowed := false
		if header := c.GetHeader("Authorization"); header != "" {
			if token, err := utils.TokenFromHeader(header); err == nil {
				if claims, err := utils.VerifyToken(ctl.jwt, token); err == nil {
					allowed = ctl.requesterRoleIsAdmin(claims.RoleID)
				}
			}
		}
		if !allowed {
			requested = models.RoleUser
		}
	}

	_, err := ctl.users.Create(services.CreateUserData{
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
		Role:     requested,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User successfully created"})
}

// CurrentUser trả về user của token hiện tại
func (ctl *UserController) CurrentUser(c *gin.Context) {
	user, err := ctl.users.CurrentUser(c.GetString("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetUsers liệt kê user, chỉ admin
func (ctl *UserController) GetUsers(c *gin.Context) {
	page, limit := paginationParams(c)
	users, total, err := ctl.users.All(page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":  users,
		"page":  page,
		"limit": limit,
		"total": total,
	})
}

func (ctl *UserController) GetUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid userId"})
		return
	}
	user, err := ctl.users.Get(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

type UpdateUserInput struct {
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=4"`
	Role     *string `json:"role" binding:"omitempty,oneof=admin user"`
}

// UpdateUser cập nhật thông tin. Đổi role chỉ dành cho admin,
// kể cả khi tự cập nhật chính mình.
func (ctl *UserController) UpdateUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid userId"})
		return
	}

	var input UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	data := services.UpdateUserData{
		Email:    input.Email,
		Password: input.Password,
	}
	if input.Role != nil {
		if !ctl.requesterRoleIsAdmin(c.GetString("role_id")) {
			respondError(c, utils.NewNotAuthorized())
			return
		}
		role := models.RoleName(*input.Role)
		data.Role = &role
	}

	user, err := ctl.users.Update(userID, data)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// DeleteUser xóa user. Tự xóa chính mình bị chặn (Forbidden).
func (ctl *UserController) DeleteUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid userId"})
		return
	}

	actorID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		respondError(c, utils.NewNotAuthorized())
		return
	}

	if err := ctl.users.Delete(userID, actorID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User successfully deleted"})
}
