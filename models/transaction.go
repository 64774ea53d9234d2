package models

import "time"

// Transaction là một dòng sổ ví của người dùng
type Transaction struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"userId"`
	BookingID *uint     `json:"bookingId,omitempty"`
	Type      int       `json:"type"`                    // constants.TransactionType*
	Amount    float64   `json:"amount"`                  // Số tiền, âm khi trừ ví
	Status    int       `gorm:"default:1" json:"status"` // constants.TransactionStatus*
	Note      string    `json:"note"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	User      *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
