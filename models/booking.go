package models

import (
	"time"
)

// Booking status constants
const (
	BookingStatusPending   = 0
	BookingStatusConfirmed = 1
	BookingStatusPaid      = 2
	BookingStatusCancelled = 3
)

type Booking struct {
	ID                  uint       `json:"id" gorm:"primaryKey"`
	UserID              uint       `json:"userId"`
	User                *User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	CampsiteID          uint       `json:"campsiteId"`
	Campsite            Campsite   `json:"campsite" gorm:"foreignKey:CampsiteID"`
	CheckIn             time.Time  `json:"checkIn" gorm:"type:date"`
	CheckOut            time.Time  `json:"checkOut" gorm:"type:date"`
	Duration            int        `json:"duration"`
	TotalPrice          float64    `json:"totalPrice"`
	Status              int        `json:"status"`
	Otp                 string     `gorm:"column:otp" json:"-"`
	OtpExpiresAt        *time.Time `gorm:"column:otp_expires_at" json:"-"`
	OtpVerified         bool       `gorm:"column:otp_verified;default:false" json:"otpVerified"`
	PaymentOtp          string     `gorm:"column:payment_otp" json:"-"`
	PaymentOtpExpiresAt *time.Time `gorm:"column:payment_otp_expires_at" json:"-"`
	PaymentVerified     bool       `gorm:"column:payment_verified;default:false" json:"paymentVerified"`
	CreatedAt           time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt           time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

// NightsBetween tính số đêm nguyên giữa ngày nhận và ngày trả chỗ
func NightsBetween(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn).Hours() / 24)
}

// GenerateOtp gán mã OTP xác nhận booking mới với hạn dùng 10 phút.
// Mã cũ (nếu có) bị ghi đè.
func (b *Booking) GenerateOtp(code string, now time.Time) {
	expiresAt := now.Add(OtpExpiryMinutes * time.Minute)
	b.Otp = code
	b.OtpExpiresAt = &expiresAt
}

// VerifyOtp kiểm tra mã OTP xác nhận booking. Thành công thì bật cờ đã xác
// thực và chuyển trạng thái sang đã xác nhận; mã được giữ lại để đối soát.
// Thất bại thì không thay đổi gì.
func (b *Booking) VerifyOtp(code string, now time.Time) bool {
	if b.Otp == "" || b.OtpExpiresAt == nil {
		return false
	}
	if b.Otp != code || !b.OtpExpiresAt.After(now) {
		return false
	}

	b.OtpVerified = true
	b.Status = BookingStatusConfirmed
	return true
}

// HasValidOtp cho biết còn mã OTP xác nhận booking chưa hết hạn hay không
func (b *Booking) HasValidOtp(now time.Time) bool {
	return b.Otp != "" && b.OtpExpiresAt != nil && b.OtpExpiresAt.After(now)
}

// GeneratePaymentOtp gán mã OTP thanh toán mới với hạn dùng 10 phút.
// Mã cũ (nếu có) bị ghi đè.
func (b *Booking) GeneratePaymentOtp(code string, now time.Time) {
	expiresAt := now.Add(OtpExpiryMinutes * time.Minute)
	b.PaymentOtp = code
	b.PaymentOtpExpiresAt = &expiresAt
}

// VerifyPaymentOtp kiểm tra mã OTP thanh toán. Thành công thì bật cờ đã
// thanh toán và chuyển trạng thái sang đã trả tiền. Thất bại thì không
// thay đổi gì, trạng thái giữ nguyên.
func (b *Booking) VerifyPaymentOtp(code string, now time.Time) bool {
	if b.PaymentOtp == "" || b.PaymentOtpExpiresAt == nil {
		return false
	}
	if b.PaymentOtp != code || !b.PaymentOtpExpiresAt.After(now) {
		return false
	}

	b.PaymentVerified = true
	b.Status = BookingStatusPaid
	return true
}

// HasValidPaymentOtp cho biết còn mã OTP thanh toán chưa hết hạn hay không
func (b *Booking) HasValidPaymentOtp(now time.Time) bool {
	return b.PaymentOtp != "" && b.PaymentOtpExpiresAt != nil && b.PaymentOtpExpiresAt.After(now)
}
