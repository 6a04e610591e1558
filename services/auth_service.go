package services

import (
	"errors"
	"fmt"
	"net/smtp"
	"time"

	"pineus/config"
	"pineus/models"
	"pineus/validator"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserInfo struct {
	UserId uint `json:"userid"`
	Role   int  `json:"role"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

func smtpAuth() (from string, auth smtp.Auth, addr string) {
	from = config.GetEnv("SMTP_FROM")
	password := config.GetEnv("SMTP_PASSWORD")
	host := config.GetEnv("SMTP_HOST")
	port := config.GetEnv("SMTP_PORT")

	auth = smtp.PlainAuth("", from, password, host)
	addr = host + ":" + port
	return from, auth, addr
}

// SendLoginOtpEmail gửi mã OTP đăng nhập qua email
func SendLoginOtpEmail(email string, code string) error {
	from, auth, addr := smtpAuth()

	to := []string{email}
	subject := "Subject: Mã đăng nhập của bạn\n"
	body := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<title>Mã xác thực đăng nhập</title>
		</head>
		<body>
			<p>Xin chào %s,</p>
			<p>Chúng tôi đã nhận yêu cầu đăng nhập vào tài khoản của bạn.</p>
			<p>Mã đăng nhập của bạn là: <strong>%s</strong></p>
			<p>Mã có hiệu lực trong 10 phút.</p>
			<p>Nếu không yêu cầu mã này thì bạn có thể bỏ qua email này một cách an toàn. Có thể ai đó khác đã nhập địa chỉ email của bạn do nhầm lẫn.</p>
			<p>Xin cám ơn,<br>Nhóm tài khoản</p>
		</body>
		</html>
	`, email, code)

	msg := []byte("MIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n" + subject + "\n" + body)

	return smtp.SendMail(addr, auth, from, to, msg)
}

// SendBookingOtpEmail gửi mã OTP xác nhận booking qua email
func SendBookingOtpEmail(email string, bookingID uint, campsiteName string, code string) error {
	from, auth, addr := smtpAuth()

	to := []string{email}
	subject := "Subject: Mã xác nhận booking\n"
	body := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<title>Mã xác nhận booking</title>
		</head>
		<body>
			<p>Xin chào,</p>
			<p>Bạn vừa tạo booking <strong>#%d</strong> cho chỗ cắm trại <strong>%s</strong>.</p>
			<p>Mã xác nhận của bạn là: <strong>%s</strong></p>
			<p>Mã có hiệu lực trong 10 phút. Vui lòng nhập mã để xác nhận booking.</p>
			<p>Nếu không yêu cầu mã này thì bạn có thể bỏ qua email này một cách an toàn.</p>
			<p>Xin cám ơn,<br>Nhóm hỗ trợ</p>
		</body>
		</html>
	`, bookingID, campsiteName, code)

	msg := []byte("MIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n" + subject + "\n" + body)

	return smtp.SendMail(addr, auth, from, to, msg)
}

// SendPaymentOtpEmail gửi mã OTP thanh toán qua email
func SendPaymentOtpEmail(email string, bookingID uint, totalPrice float64, code string) error {
	from, auth, addr := smtpAuth()

	to := []string{email}
	subject := "Subject: Mã xác nhận thanh toán\n"

	priceFormatted := formatCurrency(totalPrice)

	body := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<title>Mã xác nhận thanh toán</title>
		</head>
		<body>
			<p>Xin chào,</p>
			<p>Bạn đang thanh toán cho booking <strong>#%d</strong>.</p>
			<p>Tổng số tiền: <strong>%s</strong></p>
			<p>Mã xác nhận thanh toán của bạn là: <strong>%s</strong></p>
			<p>Mã có hiệu lực trong 10 phút.</p>
			<p>Nếu không yêu cầu mã này thì bạn có thể bỏ qua email này một cách an toàn.</p>
			<p>Xin cám ơn,<br>Nhóm hỗ trợ</p>
		</body>
		</html>
	`, bookingID, priceFormatted, code)

	msg := []byte("MIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n" + subject + "\n" + body)

	return smtp.SendMail(addr, auth, from, to, msg)
}

// sendWelcomeEmail gửi email chào mừng sau khi đăng ký
func sendWelcomeEmail(email string, name string) error {
	from, auth, addr := smtpAuth()

	to := []string{email}
	subject := "Subject: Bạn đã tạo tài khoản mới\n"
	body := fmt.Sprintf(`<!DOCTYPE html>
	<html>
	<head>
		<meta charset="UTF-8">
		<title>Tạo tài khoản thành công</title>
	</head>
	<body>
		<p>Xin chào %s,</p>
		<p>Chúc mừng! Bạn đã tạo tài khoản thành công với email <strong>%s</strong>.</p>
		<p>Từ giờ bạn có thể đặt chỗ cắm trại ngay trên hệ thống.</p>
		<p>Nếu không yêu cầu tạo tài khoản này thì bạn có thể bỏ qua email này một cách an toàn. Có thể ai đó khác đã nhập địa chỉ email của bạn do nhầm lẫn.</p>
		<p>Xin cảm ơn,<br>Nhóm tài khoản</p>
	</body>
	</html>`, name, email)

	msg := []byte("MIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n" + subject + "\n" + body)

	return smtp.SendMail(addr, auth, from, to, msg)
}

func formatCurrency(amount float64) string {
	return fmt.Sprintf("%0.2f", amount)
}

func GetUserByEmail(email string) (models.User, error) {
	var user models.User
	result := config.DB.Where("email = ?", email).First(&user)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return user, fmt.Errorf("không tìm thấy người dùng với email %s", email)
	}

	if result.Error != nil {
		return user, result.Error
	}

	return user, nil
}

func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

var secretKey = []byte(config.GetEnv("SECRET_KEY_ACCESS_TOKEN"))

func GenerateToken(userInfo UserInfo, expiryMinutes int) (string, error) {
	claims := &Claims{
		UserInfo: userInfo,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Minute * time.Duration(expiryMinutes)).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(secretKey)
}

func SetTokenCookies(c *gin.Context, accessToken string) {
	c.SetCookie(
		"access_token",
		accessToken,
		3*24*60*60,
		"/",
		"",
		true,
		false,
	)
}

// CreateUser tạo tài khoản mới. Mật khẩu được băm bcrypt trước khi lưu.
func CreateUser(input models.User) (models.User, error) {
	if input.Email == "" || input.Password == "" {
		return models.User{}, errors.New("không được để trống email, password")
	}

	existingEmail, err := GetUserByEmail(input.Email)
	if err == nil {
		return models.User{}, fmt.Errorf("email %s đã được sử dụng", existingEmail.Email)
	}

	hashedPassword, err := HashPassword(input.Password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Name:            input.Name,
		Email:           input.Email,
		Password:        hashedPassword,
		Role:            input.Role,
		IsLoginVerified: false,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	result := config.DB.Create(&user)
	if result.Error != nil {
		return user, result.Error
	}

	if err := sendWelcomeEmail(user.Email, user.Name); err != nil {
		// Email chào mừng không chặn việc đăng ký
		fmt.Println("không thể gửi email chào mừng:", err)
	}

	return user, nil
}

// GenerateAndSendLoginOtp sinh mã OTP đăng nhập mới, lưu rồi gửi email.
// Gửi thất bại thì trả lỗi: mã chưa đến tay người dùng nên thao tác coi như
// chưa hoàn thành; resend sẽ ghi đè mã đang lưu.
func GenerateAndSendLoginOtp(user *models.User) error {
	code, err := DefaultCodeSource.GenerateCode()
	if err != nil {
		return fmt.Errorf("không thể tạo mã OTP: %v", err)
	}

	user.GenerateLoginOtp(code, time.Now())

	if err := config.DB.Save(user).Error; err != nil {
		return fmt.Errorf("không thể lưu mã OTP: %v", err)
	}

	if err := SendLoginOtpEmail(user.Email, code); err != nil {
		return fmt.Errorf("không thể gửi email mã OTP: %v", err)
	}

	return nil
}

// CreateGoogleUser tạo tài khoản từ Google. Email đã được Google xác thực
// nên tài khoản được đánh dấu login verified ngay.
func CreateGoogleUser(name, email, avatar string) (models.User, error) {
	if err := validator.ValidateEmail(email); err != nil {
		return models.User{}, err
	}

	existingEmail, err := GetUserByEmail(email)
	if err == nil {
		return models.User{}, fmt.Errorf("email %s đã được sử dụng", existingEmail.Email)
	}

	user := models.User{
		Name:            name,
		Email:           email,
		Password:        "",
		Avatar:          avatar,
		IsLoginVerified: true,
		Role:            0,
	}

	result := config.DB.Create(&user)
	if result.Error != nil {
		return user, result.Error
	}

	return user, nil
}
