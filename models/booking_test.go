package models

import (
	"testing"
	"time"
)

func TestNightsBetween(t *testing.T) {
	checkIn := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC)

	if nights := NightsBetween(checkIn, checkOut); nights != 3 {
		t.Errorf("NightsBetween = %d, muốn 3", nights)
	}

	oneNight := NightsBetween(checkIn, checkIn.AddDate(0, 0, 1))
	if oneNight != 1 {
		t.Errorf("NightsBetween một đêm = %d, muốn 1", oneNight)
	}
}

func TestBookingTotalPriceScenario(t *testing.T) {
	// 10/01 -> 13/01 với giá 100000/đêm: 3 đêm, tổng 300000
	checkIn := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC)
	pricePerNight := 100000

	nights := NightsBetween(checkIn, checkOut)
	total := float64(pricePerNight) * float64(nights)

	if nights != 3 {
		t.Errorf("số đêm = %d, muốn 3", nights)
	}
	if total != 300000 {
		t.Errorf("tổng tiền = %v, muốn 300000", total)
	}
}

func TestVerifyOtpConfirmsBooking(t *testing.T) {
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	booking := Booking{Status: BookingStatusPending}
	booking.GenerateOtp("123456", now)

	if !booking.VerifyOtp("123456", now.Add(5*time.Minute)) {
		t.Fatal("mã đúng trong thời gian hiệu lực phải được chấp nhận")
	}
	if booking.Status != BookingStatusConfirmed {
		t.Errorf("Status = %d, muốn %d", booking.Status, BookingStatusConfirmed)
	}
	if !booking.OtpVerified {
		t.Error("OtpVerified phải là true")
	}
	// Mã xác nhận được giữ lại để đối soát
	if booking.Otp != "123456" {
		t.Error("mã xác nhận không bị xóa sau khi dùng")
	}
}

func TestVerifyOtpFailureKeepsPending(t *testing.T) {
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	booking := Booking{Status: BookingStatusPending}
	booking.GenerateOtp("123456", now)

	if booking.VerifyOtp("000000", now) {
		t.Fatal("mã sai không được chấp nhận")
	}
	if booking.Status != BookingStatusPending {
		t.Error("xác thực thất bại không được đổi trạng thái")
	}
	if booking.OtpVerified {
		t.Error("OtpVerified phải giữ nguyên false")
	}
}

func TestVerifyOtpExpiredAtExactInstant(t *testing.T) {
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	booking := Booking{Status: BookingStatusPending}
	booking.GenerateOtp("123456", now)

	if booking.VerifyOtp("123456", now.Add(10*time.Minute)) {
		t.Error("mã tại đúng thời điểm hết hạn phải bị từ chối")
	}
}

func TestVerifyOtpNoCodeFailsClosed(t *testing.T) {
	booking := Booking{Status: BookingStatusPending}

	if booking.VerifyOtp("", time.Now()) {
		t.Error("chưa có mã thì mọi xác thực phải thất bại")
	}
	if booking.VerifyOtp("123456", time.Now()) {
		t.Error("chưa có mã thì mọi xác thực phải thất bại")
	}
}

func TestVerifyPaymentOtpMarksPaid(t *testing.T) {
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	booking := Booking{Status: BookingStatusConfirmed, OtpVerified: true}
	booking.GeneratePaymentOtp("654321", now)

	if !booking.VerifyPaymentOtp("654321", now.Add(time.Minute)) {
		t.Fatal("mã thanh toán đúng phải được chấp nhận")
	}
	if booking.Status != BookingStatusPaid {
		t.Errorf("Status = %d, muốn %d", booking.Status, BookingStatusPaid)
	}
	if !booking.PaymentVerified {
		t.Error("PaymentVerified phải là true")
	}
}

func TestVerifyPaymentOtpExpiredKeepsConfirmed(t *testing.T) {
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	booking := Booking{Status: BookingStatusConfirmed, OtpVerified: true}
	booking.GeneratePaymentOtp("654321", now)

	if booking.VerifyPaymentOtp("654321", now.Add(15*time.Minute)) {
		t.Fatal("mã thanh toán quá hạn phải bị từ chối")
	}
	if booking.Status != BookingStatusConfirmed {
		t.Error("thanh toán thất bại thì booking vẫn ở trạng thái đã xác nhận")
	}
	if booking.PaymentVerified {
		t.Error("PaymentVerified phải giữ nguyên false")
	}
}

func TestGeneratePaymentOtpOverwritesOldCode(t *testing.T) {
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	booking := Booking{Status: BookingStatusConfirmed, OtpVerified: true}
	booking.GeneratePaymentOtp("111111", now)
	booking.GeneratePaymentOtp("222222", now.Add(time.Minute))

	if booking.VerifyPaymentOtp("111111", now.Add(2*time.Minute)) {
		t.Error("mã cũ bị ghi đè không được xác thực nữa")
	}
	if !booking.VerifyPaymentOtp("222222", now.Add(2*time.Minute)) {
		t.Error("mã mới nhất phải xác thực được")
	}
}

func TestHasValidPaymentOtp(t *testing.T) {
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	booking := Booking{}

	if booking.HasValidPaymentOtp(now) {
		t.Error("chưa có mã thì không có mã hiệu lực")
	}

	booking.GeneratePaymentOtp("654321", now)
	if !booking.HasValidPaymentOtp(now.Add(9 * time.Minute)) {
		t.Error("mã trong hạn phải được coi là hiệu lực")
	}
	if booking.HasValidPaymentOtp(now.Add(10 * time.Minute)) {
		t.Error("mã tại đúng thời điểm hết hạn không còn hiệu lực")
	}
}
