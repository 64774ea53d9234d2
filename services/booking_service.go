package services

import (
	"fmt"
	"time"

	"decor/commands"
	"decor/constants"
	"decor/errors"
	"decor/models"
	"decor/services/notification"
	"decor/utils"

	"github.com/olahol/melody"
	"gorm.io/gorm"
)

// DepositRate là tỷ lệ đặt cọc trên giá báo
const DepositRate = 0.3

// GetBookingByID lấy đơn kèm dịch vụ và người đặt
func GetBookingByID(db *gorm.DB, bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	err := db.Preload("User").
		Preload("Service").
		Preload("Service.Provider").
		First(&booking, bookingID).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeBookingNotFound, "Không tìm thấy đơn", err)
	}
	return &booking, nil
}

// ApplyStatusChange cập nhật trạng thái đơn và xử lý các side effect đi kèm:
// trừ cọc khi vào DepositPaid, trừ tiền thi công khi vào Completed,
// phát thông báo realtime cho mọi thay đổi.
func ApplyStatusChange(db *gorm.DB, m *melody.Melody, booking *models.Booking, newStatus constants.BookingStatus, quotedPrice float64) error {
	oldStatus := booking.BookingStatus()

	if quotedPrice > 0 {
		booking.QuotedPrice = quotedPrice
		booking.TotalPrice = quotedPrice
	}

	// Khách đặt cọc: chỉ trừ ví khi đơn đang ở bước chờ cọc
	if newStatus == constants.BookingStatusDepositPaid && oldStatus.NeedsDeposit() {
		if booking.UserID == nil {
			return errors.NewAppError(errors.ErrCodeNoDepositDue, "Khách vãng lai không có ví để đặt cọc", nil)
		}

		deposit := booking.TotalPrice * DepositRate
		note := fmt.Sprintf("Đặt cọc đơn #%d", booking.ID)
		if _, err := ChargeWallet(db, *booking.UserID, deposit, constants.TransactionTypeDeposit, &booking.ID, note); err != nil {
			return err
		}
		booking.DepositAmount = deposit
	}

	// Hoàn thành: thu phần còn lại của hợp đồng
	if newStatus == constants.BookingStatusCompleted && oldStatus == constants.BookingStatusConstructionPayment {
		if booking.UserID != nil {
			remaining := booking.TotalPrice - booking.DepositAmount
			if remaining > 0 {
				note := fmt.Sprintf("Thanh toán thi công đơn #%d", booking.ID)
				if _, err := ChargeWallet(db, *booking.UserID, remaining, constants.TransactionTypeConstructionPayment, &booking.ID, note); err != nil {
					return err
				}
			}
		}
	}

	booking.Status = int(newStatus)
	booking.UpdatedAt = time.Now()

	if err := commands.NewUpdateBookingCommand(booking, db).Execute(); err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Không cập nhật được đơn", err)
	}

	notifyStatusChange(db, m, booking, newStatus)
	return nil
}

// RequestCancel xử lý yêu cầu hủy của khách.
// Chỉ các đơn chưa ký xong hợp đồng mới được hủy (xem BookingStatus.CanBeCancelled).
func RequestCancel(db *gorm.DB, m *melody.Melody, booking *models.Booking, reason string) error {
	if !booking.BookingStatus().CanBeCancelled() {
		return errors.NewAppError(errors.ErrCodeCannotCancel,
			fmt.Sprintf("Đơn ở trạng thái %s không thể hủy", booking.BookingStatus().Name()), nil)
	}

	booking.CancelReason = reason
	return ApplyStatusChange(db, m, booking, constants.BookingStatusPendingCancellation, 0)
}

func notifyStatusChange(db *gorm.DB, m *melody.Melody, booking *models.Booking, status constants.BookingStatus) {
	message := notification.NewStatusMessageBuilder(booking.ID, status).Build()

	if booking.UserID != nil {
		record := models.Notification{
			UserID:    *booking.UserID,
			BookingID: &booking.ID,
			Message:   message,
		}
		if err := db.Create(&record).Error; err != nil {
			utils.LogError("Lỗi khi lưu thông báo cho đơn %d: %v", booking.ID, err)
		}
	}

	notificationService := notification.NewMelodyService(m)
	if err := notificationService.SendMessage(message); err != nil {
		utils.LogError("Lỗi khi phát thông báo cho đơn %d: %v", booking.ID, err)
	}
}
