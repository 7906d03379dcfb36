package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vnkhanh/video-catalog-backend/models"
	"github.com/vnkhanh/video-catalog-backend/services"
	"github.com/vnkhanh/video-catalog-backend/utils"
)

type VideoController struct {
	videos   *services.VideoService
	provider services.VideoInfoProvider
}

func NewVideoController(videos *services.VideoService, provider services.VideoInfoProvider) *VideoController {
	return &VideoController{videos: videos, provider: provider}
}

type ThumbnailInput struct {
	URL    string `json:"url" binding:"omitempty,url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type CreateVideoInput struct {
	Title           string         `json:"title" binding:"required,min=4,max=200"`
	OriginalTitle   string         `json:"originalTitle" binding:"required"`
	OriginURL       string         `json:"originURL" binding:"required"`
	Thumbnail       ThumbnailInput `json:"thumbnail"`
	Description     string         `json:"description" binding:"required"`
	ChannelTitle    string         `json:"channelTitle"`
	Duration        string         `json:"duration" binding:"required"`
	DefaultLanguage string         `json:"defaultLanguage" binding:"required,min=2,max=5,bcp47_language_tag"`
	DataType        string         `json:"dataType" binding:"required,oneof=Video Podcast"`
	Topics          string         `json:"topics" binding:"required,uuid"`
}

// CreateVideo tạo video kèm topic, chỉ admin.
// Video thuộc về admin tạo ra nó.
func (ctl *VideoController) CreateVideo(c *gin.Context) {
	var input CreateVideoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		respondError(c, utils.NewNotAuthorized())
		return
	}
	topicID, _ := uuid.Parse(input.Topics)

	video, err := ctl.videos.Create(services.CreateVideoData{
		Title:         input.Title,
		OriginalTitle: input.OriginalTitle,
		OriginURL:     input.OriginURL,
		Thumbnail: models.Thumbnail{
			URL:    input.Thumbnail.URL,
			Width:  input.Thumbnail.Width,
			Height: input.Thumbnail.Height,
		},
		Description:     input.Description,
		ChannelTitle:    input.ChannelTitle,
		Duration:        input.Duration,
		DefaultLanguage: input.DefaultLanguage,
		DataType:        models.DataType(input.DataType),
		TopicID:         topicID,
		UserID:          userID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": video.ID})
}

type VideoInfoInput struct {
	VideoURL string `json:"videoUrl" binding:"required"`
}

// GetVideoInfo lấy metadata từ YouTube cho người dùng đã đăng nhập
func (ctl *VideoController) GetVideoInfo(c *gin.Context) {
	var input VideoInfoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	if !utils.ValidateYouTubeURL(input.VideoURL) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid YouTube link!"})
		return
	}
	videoID := utils.YouTubeGetID(input.VideoURL)
	if videoID == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "YouTube video id not found!"})
		return
	}

	if ctl.provider == nil {
		respondError(c, utils.NewInternal())
		return
	}

	info, err := ctl.provider.GetVideoInfo(c.Request.Context(), videoID, input.VideoURL)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": info})
}

// GetVideos liệt kê video, public
func (ctl *VideoController) GetVideos(c *gin.Context) {
	page, limit := paginationParams(c)
	videos, total, err := ctl.videos.All(page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":  videos,
		"page":  page,
		"limit": limit,
		"total": total,
	})
}

// GetUserVideos liệt kê video của người gọi
func (ctl *VideoController) GetUserVideos(c *gin.Context) {
	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		respondError(c, utils.NewNotAuthorized())
		return
	}

	page, limit := paginationParams(c)
	videos, total, err := ctl.videos.ForUser(userID, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":  videos,
		"page":  page,
		"limit": limit,
		"total": total,
	})
}

func (ctl *VideoController) GetVideo(c *gin.Context) {
	videoID, err := uuid.Parse(c.Param("videoId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid videoId"})
		return
	}
	video, err := ctl.videos.Get(videoID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, video)
}

type UpdateVideoInput struct {
	Title           *string         `json:"title" binding:"omitempty,min=4,max=200"`
	OriginalTitle   *string         `json:"originalTitle"`
	OriginURL       *string         `json:"originURL"`
	Thumbnail       *ThumbnailInput `json:"thumbnail"`
	Description     *string         `json:"description"`
	ChannelTitle    *string         `json:"channelTitle"`
	Duration        *string         `json:"duration"`
	DefaultLanguage *string         `json:"defaultLanguage" binding:"omitempty,min=2,max=5,bcp47_language_tag"`
	DataType        *string         `json:"dataType" binding:"omitempty,oneof=Video Podcast"`
	Topics          *string         `json:"topics" binding:"omitempty,uuid"`
}

// UpdateVideo cập nhật video, chỉ chủ sở hữu hoặc admin (gate ở middleware)
func (ctl *VideoController) UpdateVideo(c *gin.Context) {
	videoID, err := uuid.Parse(c.Param("videoId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid videoId"})
		return
	}

	var input UpdateVideoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	data := services.UpdateVideoData{
		Title:           input.Title,
		OriginalTitle:   input.OriginalTitle,
		OriginURL:       input.OriginURL,
		Description:     input.Description,
		ChannelTitle:    input.ChannelTitle,
		Duration:        input.Duration,
		DefaultLanguage: input.DefaultLanguage,
	}
	if input.Thumbnail != nil {
		data.Thumbnail = &models.Thumbnail{
			URL:    input.Thumbnail.URL,
			Width:  input.Thumbnail.Width,
			Height: input.Thumbnail.Height,
		}
	}
	if input.DataType != nil {
		dataType := models.DataType(*input.DataType)
		data.DataType = &dataType
	}
	if input.Topics != nil {
		topicID, _ := uuid.Parse(*input.Topics)
		data.TopicID = &topicID
	}

	video, err := ctl.videos.Update(videoID, data)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, video)
}

// DeleteVideo xóa video kèm liên kết topic, tài liệu và yêu thích
func (ctl *VideoController) DeleteVideo(c *gin.Context) {
	videoID, err := uuid.Parse(c.Param("videoId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid videoId"})
		return
	}
	if err := ctl.videos.Delete(videoID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Video successfully deleted"})
}
