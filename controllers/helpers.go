package controllers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/vnkhanh/video-catalog-backend/utils"
)

// respondError ánh xạ lỗi nghiệp vụ sang HTTP status.
// Lỗi Internal chỉ trả message chung, chi tiết ghi log cho vận hành.
func respondError(c *gin.Context, err error) {
	status := utils.HTTPStatus(err)
	if status >= 500 {
		logrus.WithError(err).WithField("path", c.FullPath()).Error("unexpected error")
		c.JSON(status, gin.H{"error": "Something went wrong"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// paginationParams đọc page/limit từ query string
func paginationParams(c *gin.Context) (int, int) {
	page := 1
	limit := 10
	if p := c.Query("page"); p != "" {
		fmt.Sscanf(p, "%d", &page)
	}
	if l := c.Query("limit"); l != "" {
		fmt.Sscanf(l, "%d", &limit)
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return page, limit
}
