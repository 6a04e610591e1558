package validator

import (
	"testing"
	"time"

	"pineus/models"
)

func TestValidateBookingDates(t *testing.T) {
	now := time.Date(2025, 1, 10, 15, 30, 0, 0, time.UTC)

	checkIn, checkOut, err := ValidateBookingDates("10/01/2025", "13/01/2025", now)
	if err != nil {
		t.Fatalf("khoảng ngày hợp lệ bị từ chối: %v", err)
	}
	if checkIn.Day() != 10 || checkOut.Day() != 13 {
		t.Errorf("parse sai: checkIn=%v checkOut=%v", checkIn, checkOut)
	}
	if models.NightsBetween(checkIn, checkOut) != 3 {
		t.Errorf("số đêm = %d, muốn 3", models.NightsBetween(checkIn, checkOut))
	}
}

func TestValidateBookingDatesPastCheckIn(t *testing.T) {
	now := time.Date(2025, 1, 10, 15, 30, 0, 0, time.UTC)

	if _, _, err := ValidateBookingDates("09/01/2025", "13/01/2025", now); err == nil {
		t.Error("ngày nhận chỗ trong quá khứ phải bị từ chối")
	}

	// Nhận chỗ đúng hôm nay vẫn hợp lệ dù now đã qua nửa ngày
	if _, _, err := ValidateBookingDates("10/01/2025", "11/01/2025", now); err != nil {
		t.Errorf("nhận chỗ hôm nay phải hợp lệ: %v", err)
	}
}

func TestValidateBookingDatesOrdering(t *testing.T) {
	now := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	if _, _, err := ValidateBookingDates("13/01/2025", "13/01/2025", now); err == nil {
		t.Error("trả chỗ cùng ngày nhận chỗ phải bị từ chối")
	}
	if _, _, err := ValidateBookingDates("13/01/2025", "12/01/2025", now); err == nil {
		t.Error("trả chỗ trước ngày nhận chỗ phải bị từ chối")
	}
}

func TestValidateBookingDatesFormat(t *testing.T) {
	now := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	badInputs := [][2]string{
		{"2025-01-10", "13/01/2025"},
		{"10/01/2025", "2025-01-13"},
		{"", "13/01/2025"},
		{"32/01/2025", "13/02/2025"},
	}
	for _, pair := range badInputs {
		if _, _, err := ValidateBookingDates(pair[0], pair[1], now); err == nil {
			t.Errorf("định dạng sai %q/%q phải bị từ chối", pair[0], pair[1])
		}
	}
}

func TestValidateOtpCode(t *testing.T) {
	if err := ValidateOtpCode("012345"); err != nil {
		t.Errorf("mã 6 chữ số hợp lệ bị từ chối: %v", err)
	}

	for _, code := range []string{"", "12345", "1234567", "12345a", "abcdef"} {
		if err := ValidateOtpCode(code); err == nil {
			t.Errorf("mã %q phải bị từ chối", code)
		}
	}
}

func TestValidateUser(t *testing.T) {
	user := models.User{Name: "Nguyen Van A", Email: "a@example.com", Password: "matkhau123"}
	if err := ValidateUser(&user); err != nil {
		t.Errorf("user hợp lệ bị từ chối: %v", err)
	}

	short := models.User{Name: "B", Email: "b@example.com", Password: "ngan"}
	if err := ValidateUser(&short); err == nil {
		t.Error("mật khẩu dưới 8 ký tự phải bị từ chối")
	}

	badEmail := models.User{Name: "C", Email: "khong-phai-email", Password: "matkhau123"}
	if err := ValidateUser(&badEmail); err == nil {
		t.Error("email sai định dạng phải bị từ chối")
	}
}
