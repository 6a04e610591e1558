package services

import (
	"crypto/rand"
	"math/big"
	"time"

	"pineus/config"
	"pineus/models"
)

// CodeSource sinh mã OTP. Tách interface để test thay được nguồn ngẫu nhiên.
type CodeSource interface {
	GenerateCode() (string, error)
}

// CryptoCodeSource sinh từng chữ số từ crypto/rand
type CryptoCodeSource struct{}

func (CryptoCodeSource) GenerateCode() (string, error) {
	code := ""

	for i := 0; i < models.OtpLength; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		code += n.String()
	}

	return code, nil
}

// DefaultCodeSource nguồn mã mặc định của ứng dụng
var DefaultCodeSource CodeSource = CryptoCodeSource{}

// ConsumeLoginOtp xác thực mã OTP đăng nhập bằng một câu UPDATE có điều kiện
// để hai request đồng thời không thể cùng dùng một mã. Thành công thì bật cờ
// đã xác thực và xoá mã (mã đăng nhập chỉ dùng một lần).
func ConsumeLoginOtp(userID uint, code string, now time.Time) (bool, error) {
	result := config.DB.Model(&models.User{}).
		Where("id = ? AND login_otp = ? AND login_otp_expires_at > ?", userID, code, now).
		Updates(map[string]interface{}{
			"is_login_verified":    true,
			"login_otp":            "",
			"login_otp_expires_at": nil,
		})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected == 1, nil
}

// ConsumeBookingOtp xác thực mã OTP xác nhận booking. Điều kiện trạng thái
// trong WHERE giữ cho chuyển trạng thái chỉ đi một chiều pending -> confirmed.
// Mã được giữ lại để đối soát, chỉ cờ và trạng thái thay đổi.
func ConsumeBookingOtp(bookingID uint, code string, now time.Time) (bool, error) {
	result := config.DB.Model(&models.Booking{}).
		Where("id = ? AND otp = ? AND otp_expires_at > ? AND status = ?",
			bookingID, code, now, models.BookingStatusPending).
		Updates(map[string]interface{}{
			"otp_verified": true,
			"status":       models.BookingStatusConfirmed,
		})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected == 1, nil
}

// ConsumePaymentOtp xác thực mã OTP thanh toán, chuyển confirmed -> paid
func ConsumePaymentOtp(bookingID uint, code string, now time.Time) (bool, error) {
	result := config.DB.Model(&models.Booking{}).
		Where("id = ? AND payment_otp = ? AND payment_otp_expires_at > ? AND status = ?",
			bookingID, code, now, models.BookingStatusConfirmed).
		Updates(map[string]interface{}{
			"payment_verified": true,
			"status":           models.BookingStatusPaid,
		})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected == 1, nil
}
