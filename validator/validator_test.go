package validator

import (
	"testing"

	"decor/constants"
	"decor/errors"
	"decor/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateUser(t *testing.T) {
	user := models.User{
		Email:       "khach@example.com",
		Password:    "matkhau123",
		PhoneNumber: "0912345678",
		Role:        constants.RoleCustomer,
	}
	assert.NoError(t, ValidateUser(&user))
}

func TestValidateUserInvalidEmail(t *testing.T) {
	user := models.User{
		Email:       "khong-phai-email",
		Password:    "matkhau123",
		PhoneNumber: "0912345678",
	}
	err := ValidateUser(&user)
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeInvalidEmail, appErr.Code)
}

func TestValidateUserShortPassword(t *testing.T) {
	user := models.User{
		Email:       "khach@example.com",
		Password:    "123",
		PhoneNumber: "0912345678",
	}
	err := ValidateUser(&user)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeValidation, errors.GetAppError(err).Code)
}

func TestValidateBooking(t *testing.T) {
	userID := uint(7)
	booking := models.Booking{
		UserID:     &userID,
		ServiceID:  3,
		SurveyDate: "15/09/2030",
		Address:    "12 Nguyễn Huệ, Quận 1",
	}
	assert.NoError(t, ValidateBooking(&booking))
}

func TestValidateBookingBadSurveyDate(t *testing.T) {
	userID := uint(7)
	booking := models.Booking{
		UserID:     &userID,
		ServiceID:  3,
		SurveyDate: "2030-09-15", // sai định dạng, phải là dd/MM/yyyy
		Address:    "12 Nguyễn Huệ, Quận 1",
	}
	err := ValidateBooking(&booking)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidFormat, errors.GetAppError(err).Code)
}

func TestValidateBookingPastSurveyDate(t *testing.T) {
	userID := uint(7)
	booking := models.Booking{
		UserID:     &userID,
		ServiceID:  3,
		SurveyDate: "01/01/2020",
		Address:    "12 Nguyễn Huệ, Quận 1",
	}
	err := ValidateBooking(&booking)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeValidation, errors.GetAppError(err).Code)
}

func TestValidateBookingGuestRequiresContact(t *testing.T) {
	booking := models.Booking{
		ServiceID:  3,
		SurveyDate: "15/09/2030",
		Address:    "12 Nguyễn Huệ, Quận 1",
	}
	err := ValidateBooking(&booking)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeRequiredField, errors.GetAppError(err).Code)

	booking.GuestName = "Hùng"
	booking.GuestPhone = "0912345678"
	assert.NoError(t, ValidateBooking(&booking))
}

func TestValidateStatusCode(t *testing.T) {
	for _, status := range constants.AllBookingStatuses() {
		assert.NoError(t, ValidateStatusCode(int(status)))
	}

	for _, code := range []int{-1, 14, 99} {
		err := ValidateStatusCode(code)
		require.Error(t, err)
		assert.Equal(t, errors.ErrCodeInvalidStatus, errors.GetAppError(err).Code)
	}
}
