package builders

import (
	"decor/constants"
	"decor/models"
)

// BookingBuilder giúp tạo đơn đặt thi công theo từng bước
type BookingBuilder struct {
	booking *models.Booking
}

// NewBookingBuilder tạo instance mới của BookingBuilder
func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		booking: &models.Booking{Status: int(constants.BookingStatusPending)},
	}
}

// WithUser thêm thông tin user
func (b *BookingBuilder) WithUser(userID uint) *BookingBuilder {
	b.booking.UserID = &userID
	return b
}

// WithService thêm dịch vụ được đặt
func (b *BookingBuilder) WithService(serviceID uint) *BookingBuilder {
	b.booking.ServiceID = serviceID
	return b
}

// WithStatus thêm trạng thái
func (b *BookingBuilder) WithStatus(status constants.BookingStatus) *BookingBuilder {
	b.booking.Status = int(status)
	return b
}

// WithGuestInfo thêm thông tin khách vãng lai
func (b *BookingBuilder) WithGuestInfo(guestName, guestPhone, guestEmail string) *BookingBuilder {
	b.booking.GuestName = guestName
	b.booking.GuestPhone = guestPhone
	b.booking.GuestEmail = guestEmail
	return b
}

// WithSurveyDate thêm ngày hẹn khảo sát
func (b *BookingBuilder) WithSurveyDate(surveyDate string) *BookingBuilder {
	b.booking.SurveyDate = surveyDate
	return b
}

// WithAddress thêm địa chỉ thi công
func (b *BookingBuilder) WithAddress(address string) *BookingBuilder {
	b.booking.Address = address
	return b
}

// WithNote thêm ghi chú của khách
func (b *BookingBuilder) WithNote(note string) *BookingBuilder {
	b.booking.Note = note
	return b
}

// WithTotalPrice thêm tổng giá hợp đồng
func (b *BookingBuilder) WithTotalPrice(totalPrice float64) *BookingBuilder {
	b.booking.TotalPrice = totalPrice
	return b
}

// Build tạo đơn hoàn chỉnh
func (b *BookingBuilder) Build() *models.Booking {
	return b.booking
}
