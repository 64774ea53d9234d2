package models

import (
	"time"

	"github.com/lib/pq"
)

// DecorService là một dịch vụ trang trí được đăng lên sàn
type DecorService struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	CreatedAt        time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	Name             string         `gorm:"not null" json:"name"`
	Style            string         `json:"style"` // Phong cách: hiện đại, tân cổ điển, tối giản...
	ShortDescription string         `json:"shortDescription"`
	Description      string         `gorm:"type:text" json:"description"`
	Province         string         `json:"province"`
	District         string         `json:"district"`
	Price            int            `json:"price"` // Giá khởi điểm theo m2
	Images           pq.StringArray `json:"images" gorm:"type:text[]"`
	Status           int            `gorm:"default:1" json:"status"`
	Star             float64        `gorm:"default:0" json:"star"` // Điểm đánh giá trung bình
	ProviderID       uint           `json:"providerId"`
	Provider         User           `json:"provider" gorm:"foreignKey:ProviderID"`
	Reviews          []Review       `json:"reviews,omitempty" gorm:"foreignKey:ServiceID"`
}
