package services

import (
	"regexp"
	"testing"
	"time"

	"pineus/models"
)

func TestCryptoCodeSourceFormat(t *testing.T) {
	source := CryptoCodeSource{}
	pattern := regexp.MustCompile(`^[0-9]{6}$`)

	for i := 0; i < 200; i++ {
		code, err := source.GenerateCode()
		if err != nil {
			t.Fatalf("GenerateCode lỗi: %v", err)
		}
		if !pattern.MatchString(code) {
			t.Fatalf("mã %q không đúng định dạng 6 chữ số", code)
		}
	}
}

// fakeCodeSource trả về một mã cố định, dùng để kiểm tra luồng sinh mã
type fakeCodeSource struct {
	code string
}

func (f fakeCodeSource) GenerateCode() (string, error) {
	return f.code, nil
}

func TestCodeSourceSwappable(t *testing.T) {
	original := DefaultCodeSource
	defer func() { DefaultCodeSource = original }()

	DefaultCodeSource = fakeCodeSource{code: "000042"}

	code, err := DefaultCodeSource.GenerateCode()
	if err != nil {
		t.Fatalf("GenerateCode lỗi: %v", err)
	}
	if code != "000042" {
		t.Errorf("code = %q, muốn %q", code, "000042")
	}

	// Mã cố định vẫn đi qua đúng chu kỳ sinh/xác thực của model
	user := models.User{}
	now := time.Now()
	user.GenerateLoginOtp(code, now)
	if !user.VerifyLoginOtp("000042", now.Add(time.Minute)) {
		t.Error("mã từ nguồn thay thế phải xác thực được")
	}
}
