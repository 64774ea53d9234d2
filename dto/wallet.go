package dto

import "time"

// WalletResponse là DTO cho số dư ví
type WalletResponse struct {
	UserID uint  `json:"userId"`
	Amount int64 `json:"amount"`
}

// TopUpRequest là DTO cho request nạp ví
type TopUpRequest struct {
	Amount float64 `json:"amount" binding:"required"`
}

// TransactionResponse là DTO cho một dòng sổ ví
type TransactionResponse struct {
	ID        uint      `json:"id"`
	BookingID *uint     `json:"bookingId,omitempty"`
	Type      int       `json:"type"`
	Amount    float64   `json:"amount"`
	Status    int       `json:"status"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"createdAt"`
}
