package controllers

import (
	"strconv"

	"decor/config"
	"decor/models"
	"decor/response"

	"github.com/gin-gonic/gin"
)

// GetNotifications trả về thông báo của user, mới nhất trước
func GetNotifications(c *gin.Context) {
	currentUserID := c.GetUint("userID")

	page := 0
	limit := 20
	if pageStr := c.Query("page"); pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	var total int64
	if err := config.DB.Model(&models.Notification{}).
		Where("user_id = ?", currentUserID).
		Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var notifications []models.Notification
	if err := config.DB.Where("user_id = ?", currentUserID).
		Order("created_at DESC").
		Offset(page * limit).
		Limit(limit).
		Find(&notifications).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithPagination(c, notifications, page, limit, int(total))
}

// MarkNotificationRead đánh dấu một thông báo đã đọc
func MarkNotificationRead(c *gin.Context) {
	currentUserID := c.GetUint("userID")

	notificationID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var notification models.Notification
	if err := config.DB.Where("id = ? AND user_id = ?", notificationID, currentUserID).
		First(&notification).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := config.DB.Model(&notification).Update("is_read", true).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, notification)
}
