package services

import (
	"context"
	"fmt"
	"time"
	_ "time/tzdata"

	"decor/constants"
	"decor/errors"
	"decor/models"
	"decor/services/logger"
	"decor/services/notification"

	"github.com/olahol/melody"
	"gorm.io/gorm"
)

const DefaultTimezone = "Asia/Ho_Chi_Minh"

// CategoryCount là số đơn trong một nhóm trạng thái
type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// BookingStatsService thống kê đơn theo nhóm trạng thái
type BookingStatsService struct {
	db     *gorm.DB
	logger logger.Logger
}

type BookingStatsServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewBookingStatsService(opts BookingStatsServiceOptions) *BookingStatsService {
	return &BookingStatsService{
		db:     opts.DB,
		logger: opts.Logger,
	}
}

// CountByCategory đếm số đơn theo nhóm trạng thái.
// Đơn mang mã ngoài bảng được gom vào nhóm unknown.
func (s *BookingStatsService) CountByCategory(ctx context.Context) (map[string]int64, error) {
	type statusCount struct {
		Status int
		Count  int64
	}

	var rows []statusCount
	err := s.db.WithContext(ctx).Model(&models.Booking{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "lỗi khi thống kê đơn theo trạng thái", err)
	}

	counts := make(map[string]int64)
	for _, row := range rows {
		counts[constants.BookingStatus(row.Status).Category()] += row.Count
	}
	return counts, nil
}

// BroadcastDailyDigest gửi bản tin thống kê đơn trong ngày lên websocket
func (s *BookingStatsService) BroadcastDailyDigest(ctx context.Context, notificationService notification.Service) error {
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, "timezone không hợp lệ", err)
	}

	counts, err := s.CountByCategory(ctx)
	if err != nil {
		s.logger.Error("❌ Lỗi thống kê đơn: %v", err)
		return err
	}

	today := time.Now().In(loc).Format("02/01/2006")
	message := fmt.Sprintf("📋 Ngày %s: %d đơn chờ xử lý, %d đơn chờ ký, %d đơn đang thi công, %d đơn hoàn thành, %d đơn hủy",
		today,
		counts[constants.CategoryInitial],
		counts[constants.CategoryAgreement],
		counts[constants.CategoryConstruction],
		counts[constants.CategoryCompleted],
		counts[constants.CategoryCancelled])

	if err := notificationService.SendMessage(message); err != nil {
		s.logger.Error("❌ Lỗi gửi bản tin: %v", err)
		return err
	}

	s.logger.Info("✅ Đã gửi bản tin thống kê đơn.")
	return nil
}

// BookingStatsAdapter nối BookingStatsService vào cron jobs
type BookingStatsAdapter struct {
	service *BookingStatsService
}

func NewBookingStatsAdapter(service *BookingStatsService) *BookingStatsAdapter {
	return &BookingStatsAdapter{service: service}
}

func (a *BookingStatsAdapter) BroadcastDailyDigest(m *melody.Melody) error {
	notificationService := notification.NewMelodyService(m)
	return a.service.BroadcastDailyDigest(context.Background(), notificationService)
}
