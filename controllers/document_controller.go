package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vnkhanh/video-catalog-backend/services"
)

type DocumentController struct {
	documents *services.DocumentService
}

func NewDocumentController(documents *services.DocumentService) *DocumentController {
	return &DocumentController{documents: documents}
}

type CreateDocumentInput struct {
	Name    string `json:"name" binding:"required,min=4,max=100"`
	URLLink string `json:"urlLink" binding:"required,url"`
	VideoID string `json:"videoId" binding:"required,uuid"`
}

// CreateDocument tạo tài liệu cho video, chỉ admin
func (ctl *DocumentController) CreateDocument(c *gin.Context) {
	var input CreateDocumentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	videoID, _ := uuid.Parse(input.VideoID)
	document, err := ctl.documents.Create(services.DocumentData{
		Name:    input.Name,
		URLLink: input.URLLink,
		VideoID: videoID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": document.ID})
}

// GetDocuments liệt kê tài liệu, chỉ admin
func (ctl *DocumentController) GetDocuments(c *gin.Context) {
	page, limit := paginationParams(c)
	documents, total, err := ctl.documents.All(page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":  documents,
		"page":  page,
		"limit": limit,
		"total": total,
	})
}

// GetVideoDocuments liệt kê tài liệu của một video
func (ctl *DocumentController) GetVideoDocuments(c *gin.Context) {
	videoID, err := uuid.Parse(c.Param("videoId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid videoId"})
		return
	}

	page, limit := paginationParams(c)
	documents, total, err := ctl.documents.ForVideo(videoID, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":  documents,
		"page":  page,
		"limit": limit,
		"total": total,
	})
}

func (ctl *DocumentController) GetDocument(c *gin.Context) {
	documentID, err := uuid.Parse(c.Param("documentId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid documentId"})
		return
	}
	document, err := ctl.documents.Get(documentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, document)
}

type UpdateDocumentInput struct {
	Name    *string `json:"name" binding:"omitempty,min=4,max=100"`
	URLLink *string `json:"urlLink" binding:"omitempty,url"`
}

// UpdateDocument cập nhật tài liệu, quyền qua video cha
func (ctl *DocumentController) UpdateDocument(c *gin.Context) {
	documentID, err := uuid.Parse(c.Param("documentId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid documentId"})
		return
	}

	var input UpdateDocumentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	document, err := ctl.documents.Update(documentID, services.UpdateDocumentData{
		Name:    input.Name,
		URLLink: input.URLLink,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, document)
}

// DeleteDocument xóa tài liệu
func (ctl *DocumentController) DeleteDocument(c *gin.Context) {
	documentID, err := uuid.Parse(c.Param("documentId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid documentId"})
		return
	}
	if err := ctl.documents.Delete(documentID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Document successfully deleted"})
}
