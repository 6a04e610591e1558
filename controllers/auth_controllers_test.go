package controllers

import (
	"testing"
)

func TestGoogleUserFromClaims(t *testing.T) {
	claims := map[string]interface{}{
		"name":           "Nguyen Van A",
		"email":          "a@example.com",
		"email_verified": true,
		"picture":        "https://example.com/a.png",
	}

	user, err := googleUserFromClaims(claims)
	if err != nil {
		t.Fatalf("claims đầy đủ phải đọc được: %v", err)
	}
	if user.Name != "Nguyen Van A" || user.Email != "a@example.com" {
		t.Errorf("đọc sai thông tin user: %+v", user)
	}
	if !user.VerifiedEmail {
		t.Error("VerifiedEmail phải là true")
	}
	if user.Picture != "https://example.com/a.png" {
		t.Errorf("Picture = %q", user.Picture)
	}
}

func TestGoogleUserFromClaimsMissingOptional(t *testing.T) {
	// Google không phải lúc nào cũng trả name/picture/email_verified
	claims := map[string]interface{}{
		"email": "b@example.com",
	}

	user, err := googleUserFromClaims(claims)
	if err != nil {
		t.Fatalf("thiếu trường tùy chọn không được là lỗi: %v", err)
	}
	if user.Name != "b@example.com" {
		t.Errorf("thiếu name thì dùng email thay thế, nhận %q", user.Name)
	}
	if user.VerifiedEmail {
		t.Error("thiếu email_verified thì coi như chưa xác thực")
	}
	if user.Picture != "" {
		t.Errorf("Picture = %q, muốn rỗng", user.Picture)
	}
}

func TestGoogleUserFromClaimsMissingEmail(t *testing.T) {
	cases := []map[string]interface{}{
		{},
		{"email": ""},
		{"email": 12345},
		{"name": "C", "email_verified": true},
	}

	for _, claims := range cases {
		if _, err := googleUserFromClaims(claims); err == nil {
			t.Errorf("claims %v thiếu email hợp lệ phải bị từ chối", claims)
		}
	}
}
