package builders

import (
	"testing"

	"decor/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingBuilder(t *testing.T) {
	booking := NewBookingBuilder().
		WithUser(7).
		WithService(3).
		WithSurveyDate("15/09/2026").
		WithAddress("12 Nguyễn Huệ, Quận 1").
		WithNote("Nhà có trẻ nhỏ").
		Build()

	require.NotNil(t, booking.UserID)
	assert.Equal(t, uint(7), *booking.UserID)
	assert.Equal(t, uint(3), booking.ServiceID)
	assert.Equal(t, "15/09/2026", booking.SurveyDate)
	// Đơn mới luôn bắt đầu ở Pending
	assert.Equal(t, int(constants.BookingStatusPending), booking.Status)
}

func TestBookingBuilderGuest(t *testing.T) {
	booking := NewBookingBuilder().
		WithService(9).
		WithGuestInfo("Hùng", "0912345678", "hung@example.com").
		WithStatus(constants.BookingStatusPlanning).
		Build()

	assert.Nil(t, booking.UserID)
	assert.Equal(t, "Hùng", booking.GuestName)
	assert.Equal(t, int(constants.BookingStatusPlanning), booking.Status)
}
