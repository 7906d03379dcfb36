package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vnkhanh/video-catalog-backend/services"
	"github.com/vnkhanh/video-catalog-backend/utils"
)

type FavoriteController struct {
	favorites *services.FavoriteService
}

func NewFavoriteController(favorites *services.FavoriteService) *FavoriteController {
	return &FavoriteController{favorites: favorites}
}

func currentUserID(c *gin.Context) (uuid.UUID, error) {
	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		return uuid.Nil, utils.NewNotAuthorized()
	}
	return userID, nil
}

// AddFavorite đánh dấu video yêu thích cho người gọi
func (ctl *FavoriteController) AddFavorite(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	videoID, err := uuid.Parse(c.Param("videoId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid videoId"})
		return
	}

	favorite, err := ctl.favorites.Create(userID, videoID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, favorite)
}

// GetFavorites liệt kê toàn bộ yêu thích, chỉ admin
func (ctl *FavoriteController) GetFavorites(c *gin.Context) {
	page, limit := paginationParams(c)
	favorites, total, err := ctl.favorites.All(page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":  favorites,
		"page":  page,
		"limit": limit,
		"total": total,
	})
}

// GetCurrentUserFavorites liệt kê video yêu thích của người gọi
func (ctl *FavoriteController) GetCurrentUserFavorites(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	page, limit := paginationParams(c)
	favorites, total, err := ctl.favorites.ForUser(userID, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":  favorites,
		"page":  page,
		"limit": limit,
		"total": total,
	})
}

// GetFavorite kiểm tra người gọi có yêu thích video không
func (ctl *FavoriteController) GetFavorite(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	videoID, err := uuid.Parse(c.Param("videoId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid videoId"})
		return
	}

	favorite, err := ctl.favorites.Get(userID, videoID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, favorite)
}

// RemoveFavorite bỏ yêu thích
func (ctl *FavoriteController) RemoveFavorite(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	videoID, err := uuid.Parse(c.Param("videoId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid videoId"})
		return
	}

	if err := ctl.favorites.Delete(userID, videoID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusNoContent, nil)
}
