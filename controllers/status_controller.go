package controllers

import (
	"strconv"

	"decor/constants"
	"decor/dto"
	"decor/response"

	"github.com/gin-gonic/gin"
)

// GetBookingStatuses trả về bảng metadata của cả 14 trạng thái đơn.
// App dùng bảng này để vẽ tab lọc và chú giải màu.
func GetBookingStatuses(c *gin.Context) {
	response.Success(c, dto.AllBookingStatusResponses())
}

// GetBookingStatusDetail trả về metadata của một mã trạng thái.
// Mã ngoài bảng vẫn trả về bản ghi Unknown thay vì lỗi.
func GetBookingStatusDetail(c *gin.Context) {
	code, err := strconv.Atoi(c.Param("code"))
	if err != nil {
		response.BadRequest(c, "Mã trạng thái không hợp lệ")
		return
	}

	response.Success(c, dto.ConvertToBookingStatusResponse(constants.BookingStatus(code)))
}
