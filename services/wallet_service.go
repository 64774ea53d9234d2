package services

import (
	"fmt"

	"decor/constants"
	"decor/errors"
	"decor/models"

	"gorm.io/gorm"
)

// ChargeWallet trừ ví của user và ghi một dòng sổ ví trong transaction DB.
// Trả về lỗi ErrCodeInsufficientFund khi số dư không đủ.
func ChargeWallet(db *gorm.DB, userID uint, amount float64, txType int, bookingID *uint, note string) (*models.Transaction, error) {
	if amount <= 0 {
		return nil, errors.NewAppError(errors.ErrCodeInvalidAmount, "Số tiền phải lớn hơn 0", nil)
	}

	var tx *models.Transaction
	err := db.Transaction(func(dbTx *gorm.DB) error {
		var user models.User
		if err := dbTx.First(&user, userID).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeUserNotFound, "Không tìm thấy người dùng", err)
		}

		if user.Amount < int64(amount) {
			return errors.NewAppError(errors.ErrCodeInsufficientFund, "Số dư ví không đủ", nil)
		}

		if err := dbTx.Model(&user).Update("amount", user.Amount-int64(amount)).Error; err != nil {
			return err
		}

		tx = &models.Transaction{
			UserID:    userID,
			BookingID: bookingID,
			Type:      txType,
			Amount:    -amount,
			Status:    constants.TransactionStatusSuccess,
			Note:      note,
		}
		return dbTx.Create(tx).Error
	})
	if err != nil {
		return nil, err
	}

	return tx, nil
}

// TopUpWallet cộng tiền vào ví và ghi một dòng sổ ví
func TopUpWallet(db *gorm.DB, userID uint, amount float64) (*models.Transaction, error) {
	if amount <= 0 {
		return nil, errors.NewAppError(errors.ErrCodeInvalidAmount, "Số tiền phải lớn hơn 0", nil)
	}

	var tx *models.Transaction
	err := db.Transaction(func(dbTx *gorm.DB) error {
		var user models.User
		if err := dbTx.First(&user, userID).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeUserNotFound, "Không tìm thấy người dùng", err)
		}

		if err := dbTx.Model(&user).Update("amount", user.Amount+int64(amount)).Error; err != nil {
			return err
		}

		tx = &models.Transaction{
			UserID: userID,
			Type:   constants.TransactionTypeTopUp,
			Amount: amount,
			Status: constants.TransactionStatusSuccess,
			Note:   fmt.Sprintf("Nạp %.0f vào ví", amount),
		}
		return dbTx.Create(tx).Error
	})
	if err != nil {
		return nil, err
	}

	return tx, nil
}

// GetTransactions lấy lịch sử sổ ví của user, mới nhất trước
func GetTransactions(db *gorm.DB, userID uint, page, limit int) ([]models.Transaction, int64, error) {
	var total int64
	if err := db.Model(&models.Transaction{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var transactions []models.Transaction
	err := db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(page * limit).
		Limit(limit).
		Find(&transactions).Error
	if err != nil {
		return nil, 0, err
	}

	return transactions, total, nil
}
