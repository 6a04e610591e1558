package controllers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"pineus/config"
	"pineus/dto"
	"pineus/models"
	"pineus/response"
	"pineus/services"
	"pineus/validator"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
	"gorm.io/gorm"
)

func RegisterUser(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	newUser := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
	}

	if err := validator.ValidateUser(&newUser); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := services.CreateUser(newUser)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	// Đăng ký xong đăng nhập luôn, không bắt người dùng login lại
	userInfo := services.UserInfo{
		UserId: user.ID,
		Role:   user.Role,
	}

	accessToken, err := services.GenerateToken(userInfo, 60*24*3)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	services.SetTokenCookies(c, accessToken)

	response.Success(c, gin.H{
		"user_info":   toUserResponse(user),
		"accessToken": accessToken,
	})
}

// Login bước 1: kiểm tra email/mật khẩu rồi gửi mã OTP qua email.
// Token chỉ được cấp sau khi xác thực OTP ở bước 2.
func Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	input.Email = strings.ToLower(input.Email)

	var user models.User
	if err := config.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		response.BadRequest(c, "Email hoặc mật khẩu không hợp lệ")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		response.BadRequest(c, "Email hoặc mật khẩu không hợp lệ")
		return
	}

	if err := services.GenerateAndSendLoginOtp(&user); err != nil {
		log.Println("Lỗi khi gửi mã OTP đăng nhập:", err)
		response.Error(c, 0, "Không thể gửi mã OTP. Vui lòng thử lại.")
		return
	}

	sessionId := c.GetString("sessionId")
	if err := services.SaveLoginSession(config.Ctx, config.RedisClient, sessionId, user.ID); err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithMessage(c, "Mã OTP đã được gửi đến email của bạn", gin.H{
		"sessionId": sessionId,
	})
}

// VerifyLoginOtp bước 2: xác thực mã OTP của phiên đăng nhập đang chờ.
// Mã đúng thì cấp token và xóa phiên chờ; mã chỉ dùng được một lần.
func VerifyLoginOtp(c *gin.Context) {
	var input dto.VerifyOtpInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidateOtpCode(input.Otp); err != nil {
		response.BadRequest(c, "Mã OTP phải gồm đúng 6 chữ số")
		return
	}

	sessionId := c.GetString("sessionId")
	userID, err := services.GetLoginSession(config.Ctx, config.RedisClient, sessionId)
	if err != nil {
		response.BadRequest(c, "Phiên đăng nhập đã hết hạn. Vui lòng đăng nhập lại.")
		return
	}

	ok, err := services.ConsumeLoginOtp(userID, input.Otp, time.Now())
	if err != nil {
		response.ServerError(c)
		return
	}
	if !ok {
		response.BadRequest(c, "Mã OTP không đúng hoặc đã hết hạn")
		return
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		response.ServerError(c)
		return
	}

	userInfo := services.UserInfo{
		UserId: user.ID,
		Role:   user.Role,
	}

	accessToken, err := services.GenerateToken(userInfo, 60*24*3)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	services.SetTokenCookies(c, accessToken)

	if err := services.ClearLoginSession(config.Ctx, config.RedisClient, sessionId); err != nil {
		log.Println("Lỗi khi xóa phiên đăng nhập:", err)
	}

	response.Success(c, gin.H{
		"user_info":   toUserResponse(user),
		"accessToken": accessToken,
	})
}

// ResendLoginOtp gửi lại mã OTP đăng nhập. Mã mới ghi đè mã cũ.
func ResendLoginOtp(c *gin.Context) {
	sessionId := c.GetString("sessionId")
	userID, err := services.GetLoginSession(config.Ctx, config.RedisClient, sessionId)
	if err != nil {
		response.BadRequest(c, "Phiên đăng nhập đã hết hạn. Vui lòng đăng nhập lại.")
		return
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		response.ServerError(c)
		return
	}

	if err := services.GenerateAndSendLoginOtp(&user); err != nil {
		log.Println("Lỗi khi gửi lại mã OTP đăng nhập:", err)
		response.Error(c, 0, "Không thể gửi mã OTP. Vui lòng thử lại.")
		return
	}

	response.SuccessWithMessage(c, "Mã OTP mới đã được gửi đến email của bạn", nil)
}

func Logout(c *gin.Context) {
	cookies := c.Request.Cookies()
	for _, cookie := range cookies {
		c.SetCookie(cookie.Name, "", -1, "/", "", cookie.Secure, cookie.HttpOnly)
	}

	response.Success(c, nil)
}

// AuthGoogle function để xử lý yêu cầu xác thực từ Google
func AuthGoogle(c *gin.Context) {
	var token struct {
		TokenId string `json:"tokenId"`
	}

	// Bind dữ liệu token từ request
	if err := c.ShouldBindJSON(&token); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	// Xác minh tokenId từ Google
	payload, err := verifyGoogleIDToken(token.TokenId)
	if err != nil {
		response.Unauthorized(c)
		return
	}
	// Lấy thông tin người dùng từ payload
	googleUser, err := googleUserFromClaims(payload.Claims)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	// Kiểm tra nếu email chưa được xác thực
	if !googleUser.VerifiedEmail {
		response.BadRequest(c, "Email has not been verified")
		return
	}

	var user models.User
	result := config.DB.Where("email = ?", googleUser.Email).First(&user)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		// Nếu chưa có tài khoản thì tạo tài khoản mới
		user, err = services.CreateGoogleUser(googleUser.Name, googleUser.Email, googleUser.Picture)
		if err != nil {
			response.ServerError(c)
			return
		}
	} else if result.Error != nil {
		// Nếu có lỗi khi tìm kiếm người dùng
		response.ServerError(c)
		return
	}

	userInfo := services.UserInfo{
		UserId: user.ID,
		Role:   user.Role,
	}

	accessToken, err := services.GenerateToken(userInfo, 60*24*3)
	if err != nil {
		log.Println("Error generating access token:", err)
		response.BadRequest(c, err.Error())
		return
	}

	services.SetTokenCookies(c, accessToken)

	response.Success(c, gin.H{
		"user_info":   toUserResponse(user),
		"accessToken": accessToken,
	})
}

// googleUserFromClaims đọc thông tin user từ claims của Google.
// Claims thiếu hoặc sai kiểu trả lỗi thay vì panic.
func googleUserFromClaims(claims map[string]interface{}) (dto.GoogleUser, error) {
	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return dto.GoogleUser{}, fmt.Errorf("không tìm thấy email trong token Google")
	}

	name, _ := claims["name"].(string)
	if name == "" {
		name = email
	}
	verified, _ := claims["email_verified"].(bool)
	picture, _ := claims["picture"].(string)

	return dto.GoogleUser{
		Name:          name,
		Email:         email,
		VerifiedEmail: verified,
		Picture:       picture,
	}, nil
}

// verifyGoogleIDToken function - Xác thực ID token từ Google
func verifyGoogleIDToken(tokenId string) (*idtoken.Payload, error) {
	clientID := os.Getenv("GOOGLE_CLIENT_ID")
	payload, err := idtoken.Validate(context.Background(), tokenId, clientID)
	if err != nil {
		return nil, err
	}
	return payload, nil
}

func toUserResponse(user models.User) dto.UserLoginResponse {
	return dto.UserLoginResponse{
		UserID:        user.ID,
		UserName:      user.Name,
		UserEmail:     user.Email,
		LoginVerified: user.IsLoginVerified,
		UserRole:      user.Role,
		UserStatus:    user.Status,
		UserAvatar:    user.Avatar,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}
}
