package dto

import (
	"time"
)

type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Định dạng mã được kiểm tra bằng validator.ValidateOtpCode
type VerifyOtpInput struct {
	Otp string `json:"otp" binding:"required"`
}

type UserLoginResponse struct {
	UserID        uint      `json:"id"`
	UserName      string    `json:"name"`
	UserEmail     string    `json:"email"`
	LoginVerified bool      `json:"loginVerified"`
	UserRole      int       `json:"role"`
	UserStatus    int       `json:"status"`
	UserAvatar    string    `json:"avatar"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type GoogleUser struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verifiedEmail"`
	Picture       string `json:"picture"`
}
