package dto

import "time"

// ReviewResponse là DTO cho đánh giá dịch vụ
type ReviewResponse struct {
	ID        uint      `json:"id"`
	ServiceID uint      `json:"serviceId"`
	Comment   string    `json:"comment"`
	Star      int       `json:"star"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	User      UserInfo  `json:"user"`
}

// CreateReviewRequest là DTO cho request tạo đánh giá
type CreateReviewRequest struct {
	ServiceID uint   `json:"serviceId" binding:"required"`
	BookingID *uint  `json:"bookingId"`
	Comment   string `json:"comment" binding:"required"`
	Star      int    `json:"star" binding:"required"`
}
