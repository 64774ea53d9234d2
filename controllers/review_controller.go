package controllers

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"decor/config"
	"decor/constants"
	"decor/dto"
	"decor/models"
	"decor/response"
	"decor/services"

	"github.com/gin-gonic/gin"
)

func convertToReviewResponse(review models.Review) dto.ReviewResponse {
	return dto.ReviewResponse{
		ID:        review.ID,
		ServiceID: review.ServiceID,
		Comment:   review.Comment,
		Star:      review.Star,
		CreatedAt: review.CreateAt,
		UpdatedAt: review.UpdateAt,
		User: dto.UserInfo{
			ID:     review.User.ID,
			Name:   review.User.Name,
			Avatar: review.User.Avatar,
		},
	}
}

// GetReviews trả về đánh giá của một dịch vụ, có cache
func GetReviews(c *gin.Context) {
	serviceID, err := strconv.Atoi(c.Query("serviceId"))
	if err != nil {
		response.BadRequest(c, "serviceId không hợp lệ")
		return
	}

	cacheKey := fmt.Sprintf("reviews:service:%d", serviceID)

	var reviews []models.Review
	if err := services.GetFromRedis(config.Ctx, config.RedisClient, cacheKey, &reviews); err != nil || len(reviews) == 0 {
		if err := config.DB.Preload("User").
			Where("service_id = ?", serviceID).
			Order("created_at DESC").
			Find(&reviews).Error; err != nil {
			response.ServerError(c)
			return
		}

		if err := services.SetToRedis(config.Ctx, config.RedisClient, cacheKey, reviews, 10*time.Minute); err != nil {
			log.Printf("Lỗi khi lưu đánh giá vào Redis: %v", err)
		}
	}

	reviewResponses := make([]dto.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		reviewResponses = append(reviewResponses, convertToReviewResponse(review))
	}

	response.Success(c, reviewResponses)
}

// CreateReview tạo đánh giá mới và tính lại điểm trung bình của dịch vụ.
// Chỉ khách đã có đơn hoàn thành với dịch vụ mới được đánh giá.
func CreateReview(c *gin.Context) {
	currentUserID := c.GetUint("userID")

	var request dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var completedCount int64
	if err := config.DB.Model(&models.Booking{}).
		Where("user_id = ? AND service_id = ? AND status = ?",
			currentUserID, request.ServiceID, int(constants.BookingStatusCompleted)).
		Count(&completedCount).Error; err != nil {
		response.ServerError(c)
		return
	}
	if completedCount == 0 {
		response.BadRequest(c, "Bạn cần hoàn thành đơn trước khi đánh giá")
		return
	}

	review := models.Review{
		UserID:    currentUserID,
		ServiceID: request.ServiceID,
		BookingID: request.BookingID,
		Comment:   request.Comment,
		Star:      request.Star,
	}

	if err := review.Validate(); err != nil {
		response.BadRequest(c, "Dữ liệu đánh giá không hợp lệ")
		return
	}

	if err := config.DB.Create(&review).Error; err != nil {
		response.ServerError(c)
		return
	}

	// Tính lại điểm trung bình của dịch vụ
	var avgStar float64
	if err := config.DB.Model(&models.Review{}).
		Where("service_id = ?", request.ServiceID).
		Select("COALESCE(AVG(star), 0)").
		Scan(&avgStar).Error; err == nil {
		if err := config.DB.Model(&models.DecorService{}).
			Where("id = ?", request.ServiceID).
			Update("star", avgStar).Error; err != nil {
			log.Printf("Lỗi khi cập nhật điểm dịch vụ %d: %v", request.ServiceID, err)
		}
	}

	cacheKey := fmt.Sprintf("reviews:service:%d", request.ServiceID)
	if err := services.DeleteFromRedis(config.Ctx, config.RedisClient, cacheKey); err != nil {
		log.Printf("Lỗi khi xóa cache đánh giá: %v", err)
	}
	if err := services.DeleteFromRedis(config.Ctx, config.RedisClient, "services:all"); err != nil {
		log.Printf("Lỗi khi xóa cache dịch vụ: %v", err)
	}

	response.Success(c, convertToReviewResponse(review))
}
