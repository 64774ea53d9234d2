package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

type Review struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"userId" validate:"required"`
	ServiceID uint      `json:"serviceId" validate:"required"`
	BookingID *uint     `json:"bookingId"`
	Comment   string    `json:"comment" validate:"required"` // Bình luận của người dùng
	Star      int       `json:"star" validate:"min=1,max=5"` // Số sao (điểm đánh giá)
	CreateAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdateAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	User      User      `json:"user" gorm:"foreignKey:UserID"`
}

// Validate kiểm tra dữ liệu review trước khi lưu
func (r *Review) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
