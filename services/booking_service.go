package services

import (
	"errors"
	"fmt"
	"time"

	"pineus/commands"
	"pineus/config"
	apperrors "pineus/errors"
	"pineus/models"

	"gorm.io/gorm"
)

// GetBookingByID lấy booking kèm thông tin chỗ cắm trại và người đặt
func GetBookingByID(id uint) (models.Booking, error) {
	var booking models.Booking
	result := config.DB.Preload("Campsite").Preload("User").First(&booking, id)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return booking, apperrors.ErrBookingNotFound
	}

	if result.Error != nil {
		return booking, result.Error
	}

	return booking, nil
}

// EnsureBookingOwner kiểm tra booking có thuộc về user hiện tại không.
// Sai chủ sở hữu là lỗi truy cập, không phải lỗi chuyển bước.
func EnsureBookingOwner(booking *models.Booking, userID uint) error {
	if booking.UserID != userID {
		return apperrors.ErrBookingNotOwned
	}
	return nil
}

// GenerateAndSendBookingOtp sinh mã OTP xác nhận booking mới, lưu rồi gửi
// email. Mã cũ bị ghi đè nên không còn dùng được.
func GenerateAndSendBookingOtp(booking *models.Booking) error {
	code, err := DefaultCodeSource.GenerateCode()
	if err != nil {
		return fmt.Errorf("không thể tạo mã OTP: %v", err)
	}

	booking.GenerateOtp(code, time.Now())

	if err := commands.NewUpdateBookingCommand(booking, config.DB).Execute(); err != nil {
		return fmt.Errorf("không thể lưu mã OTP: %v", err)
	}

	if err := SendBookingOtpEmail(booking.User.Email, booking.ID, booking.Campsite.Name, code); err != nil {
		return fmt.Errorf("không thể gửi email mã OTP: %v", err)
	}

	return nil
}

// GenerateAndSendPaymentOtp sinh mã OTP thanh toán mới, lưu rồi gửi email
func GenerateAndSendPaymentOtp(booking *models.Booking) error {
	code, err := DefaultCodeSource.GenerateCode()
	if err != nil {
		return fmt.Errorf("không thể tạo mã OTP: %v", err)
	}

	booking.GeneratePaymentOtp(code, time.Now())

	if err := commands.NewUpdateBookingCommand(booking, config.DB).Execute(); err != nil {
		return fmt.Errorf("không thể lưu mã OTP: %v", err)
	}

	if err := SendPaymentOtpEmail(booking.User.Email, booking.ID, booking.TotalPrice, code); err != nil {
		return fmt.Errorf("không thể gửi email mã OTP: %v", err)
	}

	return nil
}

// CreateInvoiceForBooking tạo hóa đơn khi booking đã thanh toán xong
func CreateInvoiceForBooking(booking *models.Booking) (models.Invoice, error) {
	invoice := models.Invoice{
		BookingID:   booking.ID,
		TotalAmount: booking.TotalPrice,
		PaymentDate: time.Now(),
	}

	if err := config.DB.Create(&invoice).Error; err != nil {
		return invoice, err
	}

	return invoice, nil
}
