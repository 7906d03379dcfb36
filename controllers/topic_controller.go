package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vnkhanh/video-catalog-backend/models"
	"github.com/vnkhanh/video-catalog-backend/services"
)

type TopicController struct {
	topics *services.TopicService
}

func NewTopicController(topics *services.TopicService) *TopicController {
	return &TopicController{topics: topics}
}

type CreateTopicInput struct {
	Name      string         `json:"name" binding:"required,min=4,max=50"`
	Color     string         `json:"color" binding:"required,hexcolor"`
	Thumbnail ThumbnailInput `json:"thumbnail" binding:"required"`
}

// CreateTopic tạo chủ đề mới, chỉ admin
func (ctl *TopicController) CreateTopic(c *gin.Context) {
	var input CreateTopicInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	topic, err := ctl.topics.Create(services.TopicData{
		Name:  input.Name,
		Color: input.Color,
		Thumbnail: models.Thumbnail{
			URL:    input.Thumbnail.URL,
			Width:  input.Thumbnail.Width,
			Height: input.Thumbnail.Height,
		},
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": topic.ID})
}

// GetTopics liệt kê chủ đề, public
func (ctl *TopicController) GetTopics(c *gin.Context) {
	page, limit := paginationParams(c)
	topics, total, err := ctl.topics.All(page, limit, false)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":  topics,
		"page":  page,
		"limit": limit,
		"total": total,
	})
}

// GetTopicsWithVideos liệt kê chủ đề kèm video, public
func (ctl *TopicController) GetTopicsWithVideos(c *gin.Context) {
	page, limit := paginationParams(c)
	topics, total, err := ctl.topics.All(page, limit, true)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":  topics,
		"page":  page,
		"limit": limit,
		"total": total,
	})
}

func (ctl *TopicController) GetTopic(c *gin.Context) {
	topicID, err := uuid.Parse(c.Param("topicId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid topicId"})
		return
	}
	topic, err := ctl.topics.GetWithVideos(topicID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, topic)
}

type UpdateTopicInput struct {
	Name      *string         `json:"name" binding:"omitempty,min=4,max=50"`
	Color     *string         `json:"color" binding:"omitempty,hexcolor"`
	Thumbnail *ThumbnailInput `json:"thumbnail"`
}

// UpdateTopic cập nhật chủ đề, chỉ admin
func (ctl *TopicController) UpdateTopic(c *gin.Context) {
	topicID, err := uuid.Parse(c.Param("topicId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid topicId"})
		return
	}

	var input UpdateTopicInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	data := services.UpdateTopicData{
		Name:  input.Name,
		Color: input.Color,
	}
	if input.Thumbnail != nil {
		data.Thumbnail = &models.Thumbnail{
			URL:    input.Thumbnail.URL,
			Width:  input.Thumbnail.Width,
			Height: input.Thumbnail.Height,
		}
	}

	topic, err := ctl.topics.Update(topicID, data)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, topic)
}

// DeleteTopic xóa chủ đề, từ chối khi còn video tham chiếu
func (ctl *TopicController) DeleteTopic(c *gin.Context) {
	topicID, err := uuid.Parse(c.Param("topicId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid topicId"})
		return
	}
	if err := ctl.topics.Delete(topicID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Topic successfully deleted"})
}
