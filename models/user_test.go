package models

import (
	"testing"
	"time"
)

func TestGenerateLoginOtp(t *testing.T) {
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	user := User{}

	user.GenerateLoginOtp("123456", now)

	if user.LoginOtp != "123456" {
		t.Errorf("LoginOtp = %q, muốn %q", user.LoginOtp, "123456")
	}
	if user.LoginOtpExpiresAt == nil {
		t.Fatal("LoginOtpExpiresAt không được nil")
	}
	wantExpiry := now.Add(10 * time.Minute)
	if !user.LoginOtpExpiresAt.Equal(wantExpiry) {
		t.Errorf("LoginOtpExpiresAt = %v, muốn %v", user.LoginOtpExpiresAt, wantExpiry)
	}
	if user.IsLoginVerified {
		t.Error("IsLoginVerified phải là false sau khi sinh mã mới")
	}
}

func TestVerifyLoginOtpSuccessClearsCode(t *testing.T) {
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	user := User{}
	user.GenerateLoginOtp("123456", now)

	if !user.VerifyLoginOtp("123456", now.Add(5*time.Minute)) {
		t.Fatal("mã đúng trong thời gian hiệu lực phải được chấp nhận")
	}
	if !user.IsLoginVerified {
		t.Error("IsLoginVerified phải là true sau khi xác thực")
	}
	if user.LoginOtp != "" || user.LoginOtpExpiresAt != nil {
		t.Error("mã phải bị xóa sau khi dùng")
	}

	// Mã chỉ dùng được một lần
	if user.VerifyLoginOtp("123456", now.Add(6*time.Minute)) {
		t.Error("mã đã dùng không được xác thực lại")
	}
}

func TestVerifyLoginOtpWrongCode(t *testing.T) {
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	user := User{}
	user.GenerateLoginOtp("123456", now)

	if user.VerifyLoginOtp("654321", now) {
		t.Error("mã sai không được chấp nhận")
	}
	if user.IsLoginVerified {
		t.Error("xác thực thất bại không được đổi trạng thái")
	}
	if user.LoginOtp != "123456" {
		t.Error("xác thực thất bại không được xóa mã, người dùng còn thử lại được")
	}
}

func TestVerifyLoginOtpExpiry(t *testing.T) {
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	user := User{}
	user.GenerateLoginOtp("123456", now)

	// Đúng thời điểm hết hạn thì coi như đã hết hạn
	if user.VerifyLoginOtp("123456", now.Add(10*time.Minute)) {
		t.Error("mã tại đúng thời điểm hết hạn phải bị từ chối")
	}
	if user.VerifyLoginOtp("123456", now.Add(11*time.Minute)) {
		t.Error("mã quá hạn phải bị từ chối")
	}
}

func TestVerifyLoginOtpNoCode(t *testing.T) {
	now := time.Now()
	user := User{}

	if user.VerifyLoginOtp("", now) {
		t.Error("chưa có mã thì mọi xác thực phải thất bại")
	}
	if user.VerifyLoginOtp("123456", now) {
		t.Error("chưa có mã thì mọi xác thực phải thất bại")
	}
}

func TestGenerateLoginOtpOverwritesOldCode(t *testing.T) {
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	user := User{}
	user.GenerateLoginOtp("111111", now)
	user.GenerateLoginOtp("222222", now.Add(time.Minute))

	if user.VerifyLoginOtp("111111", now.Add(2*time.Minute)) {
		t.Error("mã cũ bị ghi đè không được xác thực nữa")
	}
	if !user.VerifyLoginOtp("222222", now.Add(2*time.Minute)) {
		t.Error("mã mới nhất phải xác thực được")
	}
}

func TestHasValidLoginOtp(t *testing.T) {
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	user := User{}

	if user.HasValidLoginOtp(now) {
		t.Error("chưa có mã thì không có mã hiệu lực")
	}

	user.GenerateLoginOtp("123456", now)
	if !user.HasValidLoginOtp(now.Add(9 * time.Minute)) {
		t.Error("mã trong hạn phải được coi là hiệu lực")
	}
	if user.HasValidLoginOtp(now.Add(10 * time.Minute)) {
		t.Error("mã tại đúng thời điểm hết hạn không còn hiệu lực")
	}
}
