package validator

import (
	"regexp"
	"time"

	"pineus/errors"
	"pineus/models"
)

// DateLayout định dạng ngày dùng trong request đặt chỗ
const DateLayout = "02/01/2006"

// ValidateUser validate thông tin user khi đăng ký
func ValidateUser(user *models.User) error {
	if user.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên không được để trống", nil)
	}

	if user.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email không được để trống", nil)
	}

	if !isValidEmail(user.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}

	if user.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Mật khẩu không được để trống", nil)
	}

	if len(user.Password) < 8 {
		return errors.NewAppError(errors.ErrCodeValidation, "Mật khẩu phải có ít nhất 8 ký tự", nil)
	}

	if user.Role < 0 || user.Role > 2 {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "Role không hợp lệ", nil)
	}

	return nil
}

// ValidateBookingDates kiểm tra và parse khoảng ngày đặt chỗ.
// Ngày nhận chỗ không được trước hôm nay, ngày trả chỗ phải sau ngày nhận chỗ.
func ValidateBookingDates(checkInStr, checkOutStr string, now time.Time) (time.Time, time.Time, error) {
	checkIn, err := time.Parse(DateLayout, checkInStr)
	if err != nil {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày nhận chỗ không hợp lệ", err)
	}

	checkOut, err := time.Parse(DateLayout, checkOutStr)
	if err != nil {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày trả chỗ không hợp lệ", err)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if checkIn.Before(today) {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeValidation, "Ngày nhận chỗ không được nhỏ hơn ngày hiện tại", nil)
	}

	if !checkOut.After(checkIn) {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeValidation, "Ngày trả chỗ phải sau ngày nhận chỗ", nil)
	}

	return checkIn, checkOut, nil
}

// ValidateCampsite validate thông tin chỗ cắm trại
func ValidateCampsite(campsite *models.Campsite) error {
	if campsite.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên chỗ cắm trại không được để trống", nil)
	}

	if campsite.Price < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Giá không được âm", nil)
	}

	if campsite.Capacity < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Sức chứa không được âm", nil)
	}

	return nil
}

// ValidateOtpCode kiểm tra định dạng mã OTP (đúng 6 chữ số)
func ValidateOtpCode(code string) error {
	if !otpRegex.MatchString(code) {
		return errors.NewAppError(errors.ErrCodeInvalidCode, "Mã OTP phải gồm đúng 6 chữ số", nil)
	}
	return nil
}

// ValidateEmail kiểm tra email hợp lệ
func ValidateEmail(email string) error {
	if !isValidEmail(email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}
	return nil
}

// ValidatePassword kiểm tra mật khẩu hợp lệ
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return errors.NewAppError(errors.ErrCodeInvalidPassword, "Mật khẩu phải có ít nhất 8 ký tự", nil)
	}
	return nil
}

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	otpRegex   = regexp.MustCompile(`^[0-9]{6}$`)
)

// isValidEmail kiểm tra email hợp lệ
func isValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}
