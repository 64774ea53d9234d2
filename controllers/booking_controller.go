package controllers

import (
	"fmt"
	"log"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"decor/builders"
	"decor/commands"
	"decor/config"
	"decor/constants"
	"decor/dto"
	"decor/errors"
	"decor/models"
	"decor/response"
	"decor/services"
	"decor/validator"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// BookingController xử lý các API về đơn đặt thi công
type BookingController struct {
	DB    *gorm.DB
	Redis *redis.Client
	M     *melody.Melody
}

func NewBookingController(db *gorm.DB, rdb *redis.Client, m *melody.Melody) *BookingController {
	return &BookingController{DB: db, Redis: rdb, M: m}
}

// Chuyển chuỗi ngày dd/MM/yyyy thành time.Time
func ConvertDateToISOFormat(dateStr string) (time.Time, error) {
	parsedDate, err := time.Parse("02/01/2006", dateStr)
	if err != nil {
		return time.Time{}, err
	}
	return parsedDate, nil
}

// Cache danh sách đơn được cắt theo người xem nên xóa theo pattern
func (ctrl *BookingController) invalidateBookingCache() {
	if err := services.DeleteKeysByPattern(config.Ctx, ctrl.Redis, "bookings:*"); err != nil {
		log.Printf("Lỗi khi xóa cache đơn: %v", err)
	}
}

// GetBookings trả về danh sách đơn theo quyền của người gọi.
// Customer chỉ thấy đơn của mình, Provider thấy đơn thuộc dịch vụ của mình,
// Admin thấy tất cả.
func (ctrl *BookingController) GetBookings(c *gin.Context) {
	currentUserID := c.GetUint("userID")
	currentUserRole := c.GetInt("userRole")

	cacheKey := fmt.Sprintf("bookings:all:user:%d", currentUserID)

	var allBookings []models.Booking

	// Lấy dữ liệu từ Redis Cache
	if err := services.GetFromRedis(config.Ctx, ctrl.Redis, cacheKey, &allBookings); err != nil || len(allBookings) == 0 {
		// Nếu không có cache hoặc Redis gặp lỗi, truy vấn từ DB
		baseTx := ctrl.DB.Model(&models.Booking{}).
			Preload("Service").
			Preload("Service.Provider").
			Preload("User")

		// Áp dụng quyền truy cập
		if currentUserRole == constants.RoleCustomer {
			baseTx = baseTx.Where("bookings.user_id = ?", currentUserID)
		} else if currentUserRole == constants.RoleProvider {
			baseTx = baseTx.Where("bookings.service_id IN (?)",
				ctrl.DB.Model(&models.DecorService{}).Select("id").Where("provider_id = ?", currentUserID))
		}

		if err := baseTx.Find(&allBookings).Error; err != nil {
			response.ServerError(c)
			return
		}

		// Lưu vào Redis Cache
		if err := services.SetToRedis(config.Ctx, ctrl.Redis, cacheKey, allBookings, 10*time.Minute); err != nil {
			log.Printf("Lỗi khi lưu danh sách đơn vào Redis: %v", err)
		}
	}

	// Lấy các tham số filter từ query
	pageStr := c.Query("page")
	limitStr := c.Query("limit")
	nameFilter := c.Query("name")
	phoneStr := c.Query("phoneNumber")
	fromDateStr := c.Query("fromDate")
	toDateStr := c.Query("toDate")
	statusFilter := c.Query("status")
	categoryFilter := c.Query("category")

	// Xử lý phân trang
	page := 0
	limit := 10
	if pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}
	if limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	// Áp dụng bộ lọc
	filteredBookings := make([]models.Booking, 0)
	for _, booking := range allBookings {
		if nameFilter != "" {
			decodedName, _ := url.QueryUnescape(nameFilter)
			if !strings.Contains(strings.ToLower(booking.Service.Name), strings.ToLower(decodedName)) {
				continue
			}
		}
		if phoneStr != "" {
			if booking.User != nil && !strings.Contains(strings.ToLower(booking.User.PhoneNumber), strings.ToLower(phoneStr)) {
				continue
			}
			if booking.User == nil && !strings.Contains(strings.ToLower(booking.GuestPhone), strings.ToLower(phoneStr)) {
				continue
			}
		}
		if fromDateStr != "" {
			fromDateISO, err := ConvertDateToISOFormat(fromDateStr)
			if err != nil {
				response.BadRequest(c, "Sai định dạng fromDate")
				return
			}
			if booking.CreatedAt.Before(fromDateISO) {
				continue
			}
		}
		if toDateStr != "" {
			toDateISO, err := ConvertDateToISOFormat(toDateStr)
			if err != nil {
				response.BadRequest(c, "Sai định dạng toDate")
				return
			}
			if booking.UpdatedAt.After(toDateISO) {
				continue
			}
		}
		if statusFilter != "" {
			parsedStatusFilter, err := strconv.Atoi(statusFilter)
			if err == nil && booking.Status != parsedStatusFilter {
				continue
			}
		}
		// Lọc theo nhóm trạng thái cho các tab của app
		if categoryFilter != "" && booking.BookingStatus().Category() != categoryFilter {
			continue
		}
		filteredBookings = append(filteredBookings, booking)
	}

	totalFiltered := len(filteredBookings)

	// Xếp theo update mới nhất
	sort.Slice(filteredBookings, func(i, j int) bool {
		return filteredBookings[i].UpdatedAt.After(filteredBookings[j].UpdatedAt)
	})

	// Áp dụng phân trang
	start := page * limit
	end := start + limit
	if start >= totalFiltered {
		filteredBookings = []models.Booking{}
	} else if end > totalFiltered {
		filteredBookings = filteredBookings[start:]
	} else {
		filteredBookings = filteredBookings[start:end]
	}

	bookingResponses := make([]dto.BookingResponse, 0, len(filteredBookings))
	for _, booking := range filteredBookings {
		bookingResponses = append(bookingResponses, dto.ConvertToBookingResponse(booking))
	}

	response.SuccessWithPagination(c, bookingResponses, page, limit, totalFiltered)
}

// CreateBooking tạo đơn đặt thi công mới, cho phép cả khách vãng lai
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")

	var request dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	builder := builders.NewBookingBuilder().
		WithService(request.ServiceID).
		WithSurveyDate(request.SurveyDate).
		WithAddress(request.Address).
		WithNote(request.Note)

	if authHeader != "" {
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		userID, _, err := GetUserIDFromToken(tokenString)
		if err != nil {
			response.Unauthorized(c)
			return
		}
		builder = builder.WithUser(userID)
	} else if request.UserID != 0 {
		var userInfo models.User
		if err := ctrl.DB.First(&userInfo, request.UserID).Error; err != nil {
			response.NotFound(c)
			return
		}
		builder = builder.WithUser(userInfo.ID)
	} else {
		builder = builder.WithGuestInfo(request.GuestName, request.GuestPhone, request.GuestEmail)
	}

	booking := builder.Build()

	if err := validator.ValidateBooking(booking); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var service models.DecorService
	if err := ctrl.DB.First(&service, booking.ServiceID).Error; err != nil {
		response.BadRequest(c, "Dịch vụ không tồn tại")
		return
	}
	if service.Status != constants.ServiceStatusAvailable {
		response.BadRequest(c, "Dịch vụ hiện không nhận đơn")
		return
	}

	if err := commands.NewCreateBookingCommand(booking, ctrl.DB).Execute(); err != nil {
		response.ServerError(c)
		return
	}

	ctrl.invalidateBookingCache()

	booking.Service = service
	response.Success(c, dto.ConvertToBookingResponse(*booking))
}

// GetBookingDetail trả về chi tiết đơn kèm metadata trạng thái
func (ctrl *BookingController) GetBookingDetail(c *gin.Context) {
	bookingID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	booking, err := services.GetBookingByID(ctrl.DB, uint(bookingID))
	if err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, dto.ConvertToBookingResponse(*booking))
}

// GetBookingTimeline trả về thanh tiến trình của đơn
func (ctrl *BookingController) GetBookingTimeline(c *gin.Context) {
	bookingID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	booking, err := services.GetBookingByID(ctrl.DB, uint(bookingID))
	if err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, gin.H{
		"status":   dto.ConvertToBookingStatusResponse(booking.BookingStatus()),
		"timeline": dto.BuildBookingTimeline(booking.BookingStatus()),
	})
}

// ChangeBookingStatus cập nhật trạng thái đơn (Provider hoặc Admin)
func (ctrl *BookingController) ChangeBookingStatus(c *gin.Context) {
	var request dto.StatusUpdateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidateStatusCode(request.Status); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	booking, err := services.GetBookingByID(ctrl.DB, request.ID)
	if err != nil {
		response.NotFound(c)
		return
	}

	// Provider chỉ được cập nhật đơn thuộc dịch vụ của mình
	currentUserID := c.GetUint("userID")
	currentUserRole := c.GetInt("userRole")
	if currentUserRole == constants.RoleProvider && booking.Service.ProviderID != currentUserID {
		response.Forbidden(c)
		return
	}

	newStatus := constants.BookingStatus(request.Status)
	if err := services.ApplyStatusChange(ctrl.DB, ctrl.M, booking, newStatus, request.QuotedPrice); err != nil {
		if appErr := errors.GetAppError(err); appErr != nil {
			response.BadRequest(c, appErr.Message)
			return
		}
		response.ServerError(c)
		return
	}

	ctrl.invalidateBookingCache()

	response.Success(c, dto.ConvertToBookingResponse(*booking))
}

// CancelBooking xử lý yêu cầu hủy đơn của khách
func (ctrl *BookingController) CancelBooking(c *gin.Context) {
	var request dto.CancelBookingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	booking, err := services.GetBookingByID(ctrl.DB, request.ID)
	if err != nil {
		response.NotFound(c)
		return
	}

	// Khách chỉ được hủy đơn của chính mình
	currentUserID := c.GetUint("userID")
	currentUserRole := c.GetInt("userRole")
	if currentUserRole == constants.RoleCustomer {
		if booking.UserID == nil || *booking.UserID != currentUserID {
			response.Forbidden(c)
			return
		}
	}

	if err := services.RequestCancel(ctrl.DB, ctrl.M, booking, request.Reason); err != nil {
		if appErr := errors.GetAppError(err); appErr != nil {
			response.BadRequest(c, appErr.Message)
			return
		}
		response.ServerError(c)
		return
	}

	ctrl.invalidateBookingCache()

	response.Success(c, dto.ConvertToBookingResponse(*booking))
}
