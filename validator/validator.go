package validator

import (
	"regexp"
	"time"

	"decor/constants"
	"decor/errors"
	"decor/models"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^[0-9]{10}$`)
)

// ValidateUser validate thông tin user khi đăng ký
func ValidateUser(user *models.User) error {
	if user.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email không được để trống", nil)
	}

	if !emailRegex.MatchString(user.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}

	if user.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Mật khẩu không được để trống", nil)
	}

	if len(user.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "Mật khẩu phải có ít nhất 6 ký tự", nil)
	}

	if user.PhoneNumber == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Số điện thoại không được để trống", nil)
	}

	if !phoneRegex.MatchString(user.PhoneNumber) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Số điện thoại không hợp lệ", nil)
	}

	if user.Role < constants.RoleCustomer || user.Role > constants.RoleAdmin {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "Role không hợp lệ", nil)
	}

	return nil
}

// ValidateBooking validate đơn đặt thi công trước khi tạo
func ValidateBooking(booking *models.Booking) error {
	if booking.ServiceID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "ID dịch vụ không được để trống", nil)
	}

	if booking.Address == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Địa chỉ thi công không được để trống", nil)
	}

	surveyDate, err := time.Parse("02/01/2006", booking.SurveyDate)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày khảo sát không hợp lệ", err)
	}

	if surveyDate.Before(time.Now()) {
		return errors.NewAppError(errors.ErrCodeValidation, "Ngày khảo sát không được nhỏ hơn ngày hiện tại", nil)
	}

	if booking.UserID == nil {
		if booking.GuestName == "" {
			return errors.NewAppError(errors.ErrCodeRequiredField, "Tên khách không được để trống", nil)
		}
		if booking.GuestPhone == "" {
			return errors.NewAppError(errors.ErrCodeRequiredField, "Số điện thoại khách không được để trống", nil)
		}
		if !phoneRegex.MatchString(booking.GuestPhone) {
			return errors.NewAppError(errors.ErrCodeInvalidPhone, "Số điện thoại khách không hợp lệ", nil)
		}
		if booking.GuestEmail != "" && !emailRegex.MatchString(booking.GuestEmail) {
			return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email khách không hợp lệ", nil)
		}
	}

	return nil
}

// ValidateStatusCode kiểm tra mã trạng thái gửi lên có nằm trong bảng không.
// Các hàm dẫn xuất hiển thị chấp nhận mọi mã, nhưng API cập nhật
// chỉ nhận 14 mã hợp lệ.
func ValidateStatusCode(code int) error {
	if !constants.BookingStatus(code).IsValid() {
		return errors.NewAppError(errors.ErrCodeInvalidStatus, "Trạng thái không hợp lệ", nil)
	}
	return nil
}

// ValidateEmail kiểm tra email hợp lệ
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}
	return nil
}

// ValidatePhone kiểm tra số điện thoại hợp lệ
func ValidatePhone(phone string) error {
	if !phoneRegex.MatchString(phone) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Số điện thoại không hợp lệ", nil)
	}
	return nil
}
