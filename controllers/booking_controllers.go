package controllers

import (
	"errors"
	"strconv"
	"time"

	"pineus/builders"
	"pineus/commands"
	"pineus/constants"
	"pineus/dto"
	apperrors "pineus/errors"
	"pineus/models"
	"pineus/response"
	"pineus/services"
	"pineus/services/logger"
	"pineus/services/notification"
	"pineus/types"
	"pineus/validator"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"gorm.io/gorm"
)

// BookingController xử lý luồng đặt chỗ: tạo booking, xác nhận bằng OTP,
// rồi thanh toán cũng xác nhận bằng OTP. Mỗi bước chỉ mở khi bước trước xong.
type BookingController struct {
	db     *gorm.DB
	logger logger.Logger
	melody *melody.Melody
}

func NewBookingController(db *gorm.DB, m *melody.Melody, log logger.Logger) *BookingController {
	return &BookingController{
		db:     db,
		logger: log,
		melody: m,
	}
}

// currentUserID lấy userID do AuthMiddleware gán vào context
func currentUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get("userID")
	if !exists {
		return 0, false
	}
	userID, ok := value.(uint)
	return userID, ok
}

// loadOwnedBooking lấy booking theo param id và kiểm tra chủ sở hữu.
// Trả về false nếu đã ghi response lỗi.
func (ctrl *BookingController) loadOwnedBooking(c *gin.Context) (models.Booking, bool) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return models.Booking{}, false
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID booking không hợp lệ")
		return models.Booking{}, false
	}

	booking, err := services.GetBookingByID(uint(id))
	if err != nil {
		if errors.Is(err, apperrors.ErrBookingNotFound) {
			response.NotFound(c)
		} else {
			response.ServerError(c)
		}
		return models.Booking{}, false
	}

	if err := services.EnsureBookingOwner(&booking, userID); err != nil {
		response.Forbidden(c)
		return models.Booking{}, false
	}

	return booking, true
}

// CreateBooking tạo booking mới ở trạng thái chờ xác nhận và gửi mã OTP
// xác nhận qua email. Tổng tiền = giá mỗi đêm x số đêm.
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	checkIn, checkOut, err := validator.ValidateBookingDates(req.CheckInDate, req.CheckOutDate, time.Now())
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	campsite, err := services.GetCampsiteByID(req.CampsiteID)
	if err != nil {
		if errors.Is(err, apperrors.ErrCampsiteNotFound) {
			response.BadRequest(c, "Không tìm thấy chỗ cắm trại")
		} else {
			response.ServerError(c)
		}
		return
	}

	if campsite.Status != constants.CampsiteStatusAvailable {
		response.BadRequest(c, "Chỗ cắm trại hiện không nhận đặt chỗ")
		return
	}

	var user models.User
	if err := ctrl.db.First(&user, userID).Error; err != nil {
		response.ServerError(c)
		return
	}

	nights := models.NightsBetween(checkIn, checkOut)
	totalPrice := float64(campsite.Price) * float64(nights)

	booking := builders.NewBookingBuilder().
		WithUser(userID).
		WithCampsite(campsite.ID).
		WithDates(checkIn, checkOut).
		WithStatus(models.BookingStatusPending).
		WithTotalPrice(totalPrice).
		Build()

	if err := commands.NewCreateBookingCommand(booking, ctrl.db).Execute(); err != nil {
		ctrl.logger.Error("Lỗi khi tạo booking: %v", err)
		response.ServerError(c)
		return
	}

	booking.User = &user
	booking.Campsite = campsite

	if err := services.GenerateAndSendBookingOtp(booking); err != nil {
		ctrl.logger.Error("Lỗi khi gửi mã OTP xác nhận booking %d: %v", booking.ID, err)
		response.Error(c, 0, "Không thể gửi mã OTP. Vui lòng thử lại.")
		return
	}

	response.SuccessWithMessage(c, "Mã OTP xác nhận đã được gửi đến email của bạn", toBookingResponse(*booking, ""))
}

// GetBookingDetail trả về chi tiết một booking của chính user
func (ctrl *BookingController) GetBookingDetail(c *gin.Context) {
	booking, ok := ctrl.loadOwnedBooking(c)
	if !ok {
		return
	}

	response.Success(c, toBookingResponse(booking, ctrl.invoiceCodeFor(booking)))
}

// VerifyBookingOtp xác thực mã OTP xác nhận booking. Mã đúng và còn hạn thì
// booking chuyển sang trạng thái đã xác nhận.
func (ctrl *BookingController) VerifyBookingOtp(c *gin.Context) {
	booking, ok := ctrl.loadOwnedBooking(c)
	if !ok {
		return
	}

	var req dto.VerifyBookingOtpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidateOtpCode(req.Otp); err != nil {
		response.BadRequest(c, "Mã OTP phải gồm đúng 6 chữ số")
		return
	}

	if booking.Status != models.BookingStatusPending {
		response.BadRequest(c, "Booking không ở trạng thái chờ xác nhận")
		return
	}

	verified, err := services.ConsumeBookingOtp(booking.ID, req.Otp, time.Now())
	if err != nil {
		response.ServerError(c)
		return
	}
	if !verified {
		response.BadRequest(c, "Mã OTP không đúng hoặc đã hết hạn")
		return
	}

	booking.OtpVerified = true
	booking.Status = models.BookingStatusConfirmed

	response.SuccessWithMessage(c, "Booking đã được xác nhận", toBookingResponse(booking, ""))
}

// ResendBookingOtp gửi lại mã OTP xác nhận. Mã mới ghi đè mã cũ.
func (ctrl *BookingController) ResendBookingOtp(c *gin.Context) {
	booking, ok := ctrl.loadOwnedBooking(c)
	if !ok {
		return
	}

	if booking.Status != models.BookingStatusPending {
		response.BadRequest(c, "Booking không ở trạng thái chờ xác nhận")
		return
	}

	if err := services.GenerateAndSendBookingOtp(&booking); err != nil {
		ctrl.logger.Error("Lỗi khi gửi lại mã OTP xác nhận booking %d: %v", booking.ID, err)
		response.Error(c, 0, "Không thể gửi mã OTP. Vui lòng thử lại.")
		return
	}

	response.SuccessWithMessage(c, "Mã OTP mới đã được gửi đến email của bạn", nil)
}

// ProcessPayment bắt đầu bước thanh toán: chỉ mở khi booking đã được xác
// nhận, và gửi mã OTP thanh toán qua email.
func (ctrl *BookingController) ProcessPayment(c *gin.Context) {
	booking, ok := ctrl.loadOwnedBooking(c)
	if !ok {
		return
	}

	if booking.Status != models.BookingStatusConfirmed || !booking.OtpVerified {
		response.BadRequest(c, "Booking chưa được xác nhận. Vui lòng xác thực mã OTP trước.")
		return
	}

	if err := services.GenerateAndSendPaymentOtp(&booking); err != nil {
		ctrl.logger.Error("Lỗi khi gửi mã OTP thanh toán booking %d: %v", booking.ID, err)
		response.Error(c, 0, "Không thể gửi mã OTP. Vui lòng thử lại.")
		return
	}

	response.SuccessWithMessage(c, "Mã OTP thanh toán đã được gửi đến email của bạn", dto.PaymentStateResponse{
		BookingID:       booking.ID,
		Status:          booking.Status,
		TotalPrice:      booking.TotalPrice,
		OtpOutstanding:  booking.HasValidPaymentOtp(time.Now()),
		PaymentVerified: booking.PaymentVerified,
	})
}

// GetPaymentState trả về trạng thái bước thanh toán hiện tại
func (ctrl *BookingController) GetPaymentState(c *gin.Context) {
	booking, ok := ctrl.loadOwnedBooking(c)
	if !ok {
		return
	}

	if booking.Status != models.BookingStatusConfirmed && booking.Status != models.BookingStatusPaid {
		response.BadRequest(c, "Booking chưa được xác nhận. Vui lòng xác thực mã OTP trước.")
		return
	}

	response.Success(c, dto.PaymentStateResponse{
		BookingID:       booking.ID,
		Status:          booking.Status,
		TotalPrice:      booking.TotalPrice,
		OtpOutstanding:  booking.HasValidPaymentOtp(time.Now()),
		PaymentVerified: booking.PaymentVerified,
	})
}

// VerifyPaymentOtp xác thực mã OTP thanh toán. Mã đúng và còn hạn thì
// booking chuyển sang đã thanh toán, hóa đơn được tạo và hệ thống phát
// thông báo realtime.
func (ctrl *BookingController) VerifyPaymentOtp(c *gin.Context) {
	booking, ok := ctrl.loadOwnedBooking(c)
	if !ok {
		return
	}

	var req dto.VerifyPaymentOtpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidateOtpCode(req.PaymentOtp); err != nil {
		response.BadRequest(c, "Mã OTP phải gồm đúng 6 chữ số")
		return
	}

	if booking.Status != models.BookingStatusConfirmed {
		response.BadRequest(c, "Booking chưa sẵn sàng thanh toán")
		return
	}

	verified, err := services.ConsumePaymentOtp(booking.ID, req.PaymentOtp, time.Now())
	if err != nil {
		response.ServerError(c)
		return
	}
	if !verified {
		response.BadRequest(c, "Mã OTP không đúng hoặc đã hết hạn")
		return
	}

	booking.PaymentVerified = true
	booking.Status = models.BookingStatusPaid

	invoice, err := services.CreateInvoiceForBooking(&booking)
	if err != nil {
		ctrl.logger.Error("Lỗi khi tạo hóa đơn cho booking %d: %v", booking.ID, err)
		response.ServerError(c)
		return
	}

	message := notification.NewBookingPaidBuilder(booking.ID, booking.Campsite.Name, booking.TotalPrice).Build()
	if err := notification.NewMelodyService(ctrl.melody).SendMessage(message); err != nil {
		// Thông báo realtime không chặn việc thanh toán
		ctrl.logger.Warn("Lỗi khi phát thông báo thanh toán booking %d: %v", booking.ID, err)
	}

	response.SuccessWithMessage(c, "Thanh toán thành công", toBookingResponse(booking, invoice.InvoiceCode))
}

// ResendPaymentOtp gửi lại mã OTP thanh toán. Mã mới ghi đè mã cũ.
func (ctrl *BookingController) ResendPaymentOtp(c *gin.Context) {
	booking, ok := ctrl.loadOwnedBooking(c)
	if !ok {
		return
	}

	if booking.Status != models.BookingStatusConfirmed || !booking.OtpVerified {
		response.BadRequest(c, "Booking chưa được xác nhận. Vui lòng xác thực mã OTP trước.")
		return
	}

	if err := services.GenerateAndSendPaymentOtp(&booking); err != nil {
		ctrl.logger.Error("Lỗi khi gửi lại mã OTP thanh toán booking %d: %v", booking.ID, err)
		response.Error(c, 0, "Không thể gửi mã OTP. Vui lòng thử lại.")
		return
	}

	response.SuccessWithMessage(c, "Mã OTP mới đã được gửi đến email của bạn", nil)
}

// GetMyBookings trả về danh sách booking của user hiện tại, mới nhất trước
func (ctrl *BookingController) GetMyBookings(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	var total int64
	if err := ctrl.db.Model(&models.Booking{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var bookings []models.Booking
	err := ctrl.db.Preload("Campsite").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&bookings).Error
	if err != nil {
		response.ServerError(c)
		return
	}

	results := make([]dto.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		results = append(results, toBookingResponse(booking, ctrl.invoiceCodeFor(booking)))
	}

	response.SuccessWithPagination(c, results, page, limit, int(total))
}

// GetBookingInvoice trả về hóa đơn của một booking đã thanh toán
func (ctrl *BookingController) GetBookingInvoice(c *gin.Context) {
	booking, ok := ctrl.loadOwnedBooking(c)
	if !ok {
		return
	}

	if booking.Status != models.BookingStatusPaid {
		response.BadRequest(c, "Booking chưa được thanh toán")
		return
	}

	var invoice models.Invoice
	if err := ctrl.db.Where("booking_id = ?", booking.ID).First(&invoice).Error; err != nil {
		response.NotFound(c)
		return
	}

	resp := dto.InvoiceResponse{
		ID:          invoice.ID,
		InvoiceCode: invoice.InvoiceCode,
		BookingID:   invoice.BookingID,
		TotalAmount: invoice.TotalAmount,
		PaymentDate: invoice.PaymentDate.Format(validator.DateLayout),
		CreatedAt:   invoice.CreatedAt.Format(validator.DateLayout),
	}
	if booking.User != nil {
		resp.User = types.InvoiceUserResponse{
			ID:    booking.User.ID,
			Name:  booking.User.Name,
			Email: booking.User.Email,
		}
	}

	response.Success(c, resp)
}

// invoiceCodeFor lấy mã hóa đơn nếu booking đã thanh toán
func (ctrl *BookingController) invoiceCodeFor(booking models.Booking) string {
	if booking.Status != models.BookingStatusPaid {
		return ""
	}

	var invoice models.Invoice
	if err := ctrl.db.Where("booking_id = ?", booking.ID).First(&invoice).Error; err != nil {
		return ""
	}
	return invoice.InvoiceCode
}

func toBookingResponse(booking models.Booking, invoiceCode string) dto.BookingResponse {
	resp := dto.BookingResponse{
		ID:              booking.ID,
		Campsite:        toCampsiteResponse(booking.Campsite),
		CheckInDate:     booking.CheckIn.Format(validator.DateLayout),
		CheckOutDate:    booking.CheckOut.Format(validator.DateLayout),
		Duration:        booking.Duration,
		TotalPrice:      booking.TotalPrice,
		Status:          booking.Status,
		OtpVerified:     booking.OtpVerified,
		PaymentVerified: booking.PaymentVerified,
		InvoiceCode:     invoiceCode,
		CreatedAt:       booking.CreatedAt,
		UpdatedAt:       booking.UpdatedAt,
	}

	if booking.User != nil {
		resp.User = dto.ActorResponse{
			Name:  booking.User.Name,
			Email: booking.User.Email,
		}
	}

	return resp
}
