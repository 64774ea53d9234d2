package dto

import (
	"testing"

	"decor/constants"
	"decor/models"

	"github.com/stretchr/testify/assert"
)

func TestConvertToBookingResponseWithUser(t *testing.T) {
	userID := uint(3)
	booking := models.Booking{
		ID:     10,
		UserID: &userID,
		User:   &models.User{Name: "Lan", Email: "lan@example.com", PhoneNumber: "0901234567"},
		Service: models.DecorService{
			ID:       5,
			Name:     "Trang trí phòng khách tân cổ điển",
			Style:    "tân cổ điển",
			Province: "Hồ Chí Minh",
			Price:    500000,
			Images:   []string{"https://img.example.com/1.jpg", "https://img.example.com/2.jpg"},
		},
		Status:     int(constants.BookingStatusDepositPaid),
		TotalPrice: 12000000,
	}

	resp := ConvertToBookingResponse(booking)
	assert.Equal(t, "Lan", resp.User.Name)
	assert.Equal(t, "https://img.example.com/1.jpg", resp.Service.Avatar)
	assert.Equal(t, "DepositPaid", resp.Status.Name)
	assert.Equal(t, constants.StagePreparation, resp.Status.Stage)
	assert.Equal(t, "#5ac8fa", resp.Status.Color)
	assert.False(t, resp.Status.CanBeCancelled)
}

func TestConvertToBookingResponseGuest(t *testing.T) {
	booking := models.Booking{
		ID:         11,
		GuestName:  "Minh",
		GuestPhone: "0987654321",
		Status:     int(constants.BookingStatusPending),
	}

	resp := ConvertToBookingResponse(booking)
	assert.Equal(t, "Minh", resp.User.Name)
	assert.Equal(t, "", resp.Service.Avatar)
	assert.Equal(t, "Pending", resp.Status.Name)
	assert.True(t, resp.Status.CanBeCancelled)
}

func TestConvertToBookingResponseUnknownStatus(t *testing.T) {
	booking := models.Booking{ID: 12, Status: 77}

	resp := ConvertToBookingResponse(booking)
	assert.Equal(t, "Unknown", resp.Status.Name)
	assert.Equal(t, "#8e8e93", resp.Status.Color)
	assert.Equal(t, "", resp.Status.Stage)
}
