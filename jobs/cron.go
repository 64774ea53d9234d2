package jobs

import (
	"log"
	"time"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// DailyDigestBroadcaster định nghĩa interface cho việc phát bản tin thống kê đơn
type DailyDigestBroadcaster interface {
	BroadcastDailyDigest(m *melody.Melody) error
}

var dailyDigestBroadcaster DailyDigestBroadcaster

// SetDailyDigestBroadcaster thiết lập implementation cho DailyDigestBroadcaster
func SetDailyDigestBroadcaster(broadcaster DailyDigestBroadcaster) {
	dailyDigestBroadcaster = broadcaster
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	// Cron job chạy lúc 0h mỗi ngày
	_, err := c.AddFunc("0 0 * * *", func() {
		now := time.Now()
		log.Printf("Đang chạy thống kê đơn lúc: %v", now)
		if dailyDigestBroadcaster == nil {
			log.Printf("Lỗi: DailyDigestBroadcaster chưa được thiết lập")
			return
		}
		if err := dailyDigestBroadcaster.BroadcastDailyDigest(m); err != nil {
			log.Printf("Lỗi khi phát bản tin thống kê đơn: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
