package dto

import (
	"time"
)

// CreateBookingRequest là DTO cho request tạo booking (ngày theo định dạng 02/01/2006)
type CreateBookingRequest struct {
	CampsiteID   uint   `json:"campsiteId" binding:"required"`
	CheckInDate  string `json:"checkInDate" binding:"required"`
	CheckOutDate string `json:"checkOutDate" binding:"required"`
}

// VerifyBookingOtpRequest là DTO cho request xác thực OTP booking.
// Định dạng mã được kiểm tra bằng validator.ValidateOtpCode.
type VerifyBookingOtpRequest struct {
	Otp string `json:"otp" binding:"required"`
}

// VerifyPaymentOtpRequest là DTO cho request xác thực OTP thanh toán
type VerifyPaymentOtpRequest struct {
	PaymentOtp string `json:"paymentOtp" binding:"required"`
}

// ActorResponse là DTO cho thông tin user/actor
type ActorResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// BookingResponse là DTO cho response của booking
type BookingResponse struct {
	ID              uint             `json:"id"`
	User            ActorResponse    `json:"user"`
	Campsite        CampsiteResponse `json:"campsite"`
	CheckInDate     string           `json:"checkInDate"`
	CheckOutDate    string           `json:"checkOutDate"`
	Duration        int              `json:"duration"`
	TotalPrice      float64          `json:"totalPrice"`
	Status          int              `json:"status"`
	OtpVerified     bool             `json:"otpVerified"`
	PaymentVerified bool             `json:"paymentVerified"`
	InvoiceCode     string           `json:"invoiceCode,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

// PaymentStateResponse là DTO cho trạng thái bước thanh toán
type PaymentStateResponse struct {
	BookingID       uint    `json:"bookingId"`
	Status          int     `json:"status"`
	TotalPrice      float64 `json:"totalPrice"`
	OtpOutstanding  bool    `json:"otpOutstanding"` // còn mã OTP thanh toán hiệu lực hay không
	PaymentVerified bool    `json:"paymentVerified"`
}
