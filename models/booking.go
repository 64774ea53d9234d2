package models

import (
	"time"

	"decor/constants"
)

// Booking là đơn đặt thi công trang trí.
// Status là snapshot trạng thái theo bảng constants.BookingStatus.
type Booking struct {
	ID            uint         `gorm:"primaryKey" json:"id"`
	UserID        *uint        `json:"userId"`
	User          *User        `json:"user" gorm:"foreignKey:UserID"`
	ServiceID     uint         `json:"serviceId"`
	Service       DecorService `json:"service" gorm:"foreignKey:ServiceID"`
	SurveyDate    string       `json:"surveyDate"` // Ngày hẹn khảo sát, dd/MM/yyyy
	Address       string       `json:"address"`
	Note          string       `gorm:"type:text" json:"note"`
	Status        int          `gorm:"default:0" json:"status"`
	CreatedAt     time.Time    `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time    `gorm:"autoUpdateTime" json:"updatedAt"`
	GuestName     string       `json:"guestName,omitempty"`
	GuestEmail    string       `json:"guestEmail,omitempty"`
	GuestPhone    string       `json:"guestPhone,omitempty"`
	QuotedPrice   float64      `json:"quotedPrice"`   // Giá báo sau khảo sát
	DepositAmount float64      `json:"depositAmount"` // Tiền cọc 30
	TotalPrice    float64      `json:"totalPrice"`    // Tổng giá hợp đồng
	CancelReason  string       `json:"cancelReason,omitempty"`
}

// BookingStatus trả về trạng thái đã ép kiểu của đơn
func (b *Booking) BookingStatus() constants.BookingStatus {
	return constants.BookingStatus(b.Status)
}
