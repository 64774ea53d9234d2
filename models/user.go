package models

import (
	"time"

	"github.com/lib/pq"
)

type User struct {
	ID                 uint          `gorm:"primaryKey" json:"id"`
	CreatedAt          time.Time     `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt          time.Time     `gorm:"autoUpdateTime" json:"updatedAt"`
	Name               string        `gorm:"default:New User" json:"name"`
	Email              string        `gorm:"unique" json:"email"`
	Password           string        `json:"password"`
	IsVerified         bool          `gorm:"default:false" json:"is_verified"`
	PhoneNumber        string        `gorm:"unique;type:varchar(11);not null" json:"phoneNumber"`
	Avatar             string        `json:"avatar"`
	Role               int           `gorm:"default:0" json:"role"`
	Status             int           `gorm:"default:1" json:"status"`
	Gender             int           `json:"gender"`
	Address            string        `json:"address"`
	Amount             int64         `gorm:"default:0" json:"amount"` // Số dư ví
	FavoriteServiceIDs pq.Int64Array `json:"favoriteServiceIds" gorm:"type:integer[]"`
	Bookings           []Booking     `json:"bookings,omitempty" gorm:"foreignKey:UserID"`
}
