package dto

import (
	"time"

	"decor/models"
)

// ActorResponse là DTO cho thông tin user/khách đặt đơn
type ActorResponse struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

// CreateBookingRequest là DTO cho request tạo đơn đặt thi công
type CreateBookingRequest struct {
	UserID     uint   `json:"userId"`
	ServiceID  uint   `json:"serviceId"`
	SurveyDate string `json:"surveyDate"` // dd/MM/yyyy
	Address    string `json:"address"`
	Note       string `json:"note"`
	GuestName  string `json:"guestName,omitempty"`
	GuestEmail string `json:"guestEmail,omitempty"`
	GuestPhone string `json:"guestPhone,omitempty"`
}

// StatusUpdateRequest là DTO cho request cập nhật trạng thái đơn
type StatusUpdateRequest struct {
	ID          uint    `json:"id"`
	Status      int     `json:"status"`
	QuotedPrice float64 `json:"quotedPrice,omitempty"`
}

// CancelBookingRequest là DTO cho yêu cầu hủy đơn của khách
type CancelBookingRequest struct {
	ID     uint   `json:"id"`
	Reason string `json:"reason"`
}

// BookingServiceResponse là thông tin rút gọn của dịch vụ trong đơn
type BookingServiceResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Style    string `json:"style"`
	Province string `json:"province"`
	Price    int    `json:"price"`
	Avatar   string `json:"avatar"`
}

// BookingResponse là DTO cho đơn đặt thi công kèm dữ liệu hiển thị
// dẫn xuất từ mã trạng thái
type BookingResponse struct {
	ID            uint                   `json:"id"`
	User          ActorResponse          `json:"user"`
	Service       BookingServiceResponse `json:"service"`
	SurveyDate    string                 `json:"surveyDate"`
	Address       string                 `json:"address"`
	Note          string                 `json:"note,omitempty"`
	Status        BookingStatusResponse  `json:"status"`
	CreatedAt     time.Time              `json:"createdAt"`
	UpdatedAt     time.Time              `json:"updatedAt"`
	QuotedPrice   float64                `json:"quotedPrice"`
	DepositAmount float64                `json:"depositAmount"`
	TotalPrice    float64                `json:"totalPrice"`
	CancelReason  string                 `json:"cancelReason,omitempty"`
}

// BookingTimelineEntry là một bước trên thanh tiến trình của đơn
type BookingTimelineEntry struct {
	Stage   string `json:"stage"`
	Color   string `json:"color"`
	Reached bool   `json:"reached"`
	Current bool   `json:"current"`
}

// ConvertToBookingResponse dựng DTO hiển thị từ bản ghi đơn.
// Trường Status luôn được dẫn xuất đầy đủ kể cả khi mã ngoài bảng.
func ConvertToBookingResponse(booking models.Booking) BookingResponse {
	var actor ActorResponse
	if booking.UserID != nil && booking.User != nil {
		actor = ActorResponse{Name: booking.User.Name, Email: booking.User.Email, PhoneNumber: booking.User.PhoneNumber}
	} else {
		actor = ActorResponse{Name: booking.GuestName, Email: booking.GuestEmail, PhoneNumber: booking.GuestPhone}
	}

	var avatar string
	if len(booking.Service.Images) > 0 {
		avatar = booking.Service.Images[0]
	}

	return BookingResponse{
		ID:   booking.ID,
		User: actor,
		Service: BookingServiceResponse{
			ID:       booking.Service.ID,
			Name:     booking.Service.Name,
			Style:    booking.Service.Style,
			Province: booking.Service.Province,
			Price:    booking.Service.Price,
			Avatar:   avatar,
		},
		SurveyDate:    booking.SurveyDate,
		Address:       booking.Address,
		Note:          booking.Note,
		Status:        ConvertToBookingStatusResponse(booking.BookingStatus()),
		CreatedAt:     booking.CreatedAt,
		UpdatedAt:     booking.UpdatedAt,
		QuotedPrice:   booking.QuotedPrice,
		DepositAmount: booking.DepositAmount,
		TotalPrice:    booking.TotalPrice,
		CancelReason:  booking.CancelReason,
	}
}
