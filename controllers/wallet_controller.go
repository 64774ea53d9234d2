package controllers

import (
	"strconv"

	"decor/config"
	"decor/dto"
	"decor/errors"
	"decor/models"
	"decor/response"
	"decor/services"

	"github.com/gin-gonic/gin"
)

// GetWallet trả về số dư ví của user đang đăng nhập
func GetWallet(c *gin.Context) {
	currentUserID := c.GetUint("userID")

	var user models.User
	if err := config.DB.First(&user, currentUserID).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, dto.WalletResponse{
		UserID: user.ID,
		Amount: user.Amount,
	})
}

// TopUpWallet nạp tiền vào ví
func TopUpWallet(c *gin.Context) {
	currentUserID := c.GetUint("userID")

	var request dto.TopUpRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	transaction, err := services.TopUpWallet(config.DB, currentUserID, request.Amount)
	if err != nil {
		if appErr := errors.GetAppError(err); appErr != nil {
			response.BadRequest(c, appErr.Message)
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, convertToTransactionResponse(*transaction))
}

// GetTransactions trả về lịch sử sổ ví, mới nhất trước
func GetTransactions(c *gin.Context) {
	currentUserID := c.GetUint("userID")

	page := 0
	limit := 10
	if pageStr := c.Query("page"); pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	transactions, total, err := services.GetTransactions(config.DB, currentUserID, page, limit)
	if err != nil {
		response.ServerError(c)
		return
	}

	transactionResponses := make([]dto.TransactionResponse, 0, len(transactions))
	for _, transaction := range transactions {
		transactionResponses = append(transactionResponses, convertToTransactionResponse(transaction))
	}

	response.SuccessWithPagination(c, transactionResponses, page, limit, int(total))
}

func convertToTransactionResponse(transaction models.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:        transaction.ID,
		BookingID: transaction.BookingID,
		Type:      transaction.Type,
		Amount:    transaction.Amount,
		Status:    transaction.Status,
		Note:      transaction.Note,
		CreatedAt: transaction.CreatedAt,
	}
}
