package jobs

import (
	"log"
	"time"

	"pineus/commands"
	"pineus/config"
	"pineus/models"

	"github.com/robfig/cron/v3"
)

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron) error {
	// Cron job chạy lúc 0h mỗi ngày
	_, err := c.AddFunc("0 0 * * *", func() {
		now := time.Now()
		log.Printf("Đang dọn các booking chờ quá hạn lúc: %v", now)
		if err := cancelStaleBookings(now); err != nil {
			log.Printf("Lỗi khi hủy booking quá hạn: %v", err)
		}
		if err := clearExpiredLoginOtps(now); err != nil {
			log.Printf("Lỗi khi dọn mã OTP đăng nhập hết hạn: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}

// cancelStaleBookings hủy các booking còn chờ xác nhận khi mã OTP đã hết
// hạn: người đặt không xác nhận thì chỗ phải được trả lại cho người khác.
func cancelStaleBookings(now time.Time) error {
	var stale []models.Booking
	err := config.DB.Select("id").
		Where("status = ? AND otp_expires_at IS NOT NULL AND otp_expires_at <= ?", models.BookingStatusPending, now).
		Find(&stale).Error
	if err != nil {
		return err
	}

	cancelled := 0
	for _, booking := range stale {
		if err := commands.NewCancelBookingCommand(booking.ID, config.DB).Execute(); err != nil {
			log.Printf("Lỗi khi hủy booking %d: %v", booking.ID, err)
			continue
		}
		cancelled++
	}

	if cancelled > 0 {
		log.Printf("Đã hủy %d booking chờ quá hạn", cancelled)
	}
	return nil
}

// clearExpiredLoginOtps xóa các mã OTP đăng nhập đã hết hạn khỏi DB
func clearExpiredLoginOtps(now time.Time) error {
	return config.DB.Model(&models.User{}).
		Where("login_otp <> '' AND login_otp_expires_at IS NOT NULL AND login_otp_expires_at <= ?", now).
		Updates(map[string]interface{}{
			"login_otp":            "",
			"login_otp_expires_at": nil,
		}).Error
}
