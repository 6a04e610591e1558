package models

import (
	"time"
)

const (
	// OtpLength độ dài mã OTP
	OtpLength = 6
	// OtpExpiryMinutes thời gian hiệu lực của mã OTP (phút)
	OtpExpiryMinutes = 10
)

type User struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	CreatedAt         time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt         time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
	Name              string     `gorm:"default:New User" json:"name"`
	Email             string     `gorm:"unique" json:"email"`
	Password          string     `json:"-"`
	Avatar            string     `json:"avatar"`
	Role              int        `gorm:"default:0" json:"role"`
	Status            int        `gorm:"default:0" json:"status"`
	LoginOtp          string     `gorm:"column:login_otp" json:"-"`
	LoginOtpExpiresAt *time.Time `gorm:"column:login_otp_expires_at" json:"-"`
	IsLoginVerified   bool       `gorm:"column:is_login_verified;default:false" json:"isLoginVerified"`
	Bookings          []Booking  `json:"bookings,omitempty" gorm:"foreignKey:UserID"`
}

// GenerateLoginOtp gán mã OTP đăng nhập mới với hạn dùng 10 phút.
// Mã cũ (nếu có) bị ghi đè nên không còn xác thực được nữa.
func (u *User) GenerateLoginOtp(code string, now time.Time) {
	expiresAt := now.Add(OtpExpiryMinutes * time.Minute)
	u.LoginOtp = code
	u.LoginOtpExpiresAt = &expiresAt
	u.IsLoginVerified = false
}

// VerifyLoginOtp kiểm tra mã OTP đăng nhập. Thành công thì đánh dấu đã xác
// thực và xoá mã (mã chỉ dùng một lần); thất bại thì không thay đổi gì để
// người dùng thử lại trong thời gian hiệu lực.
func (u *User) VerifyLoginOtp(code string, now time.Time) bool {
	if u.LoginOtp == "" || u.LoginOtpExpiresAt == nil {
		return false
	}
	if u.LoginOtp != code || !u.LoginOtpExpiresAt.After(now) {
		return false
	}

	u.IsLoginVerified = true
	u.LoginOtp = ""
	u.LoginOtpExpiresAt = nil
	return true
}

// HasValidLoginOtp cho biết còn mã OTP đăng nhập chưa hết hạn hay không
func (u *User) HasValidLoginOtp(now time.Time) bool {
	return u.LoginOtp != "" && u.LoginOtpExpiresAt != nil && u.LoginOtpExpiresAt.After(now)
}
