package routes

import (
	"context"
	"fmt"
	"net/http"

	"pineus/constants"
	"pineus/controllers"
	middlewares "pineus/middleware"
	"pineus/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, cld *cloudinary.Cloudinary, m *melody.Melody) {

	bookingController := controllers.NewBookingController(db, m, logger.NewDefaultLogger(logger.InfoLevel))

	router.Use(middlewares.ErrorHandler())

	v1 := router.Group("/api/v1")

	// Hai bước đăng nhập dùng chung sessionId qua header X-Session-ID
	auth := v1.Group("/auth")
	auth.Use(middlewares.SessionMiddleware())
	auth.POST("/register", controllers.RegisterUser)
	auth.POST("/login", controllers.Login)
	auth.POST("/verifyOtp", controllers.VerifyLoginOtp)
	auth.POST("/resendOtp", controllers.ResendLoginOtp)
	auth.POST("/google", controllers.AuthGoogle)
	auth.DELETE("/logout", controllers.Logout)

	v1.POST("/booking", middlewares.AuthMiddleware(), bookingController.CreateBooking)
	v1.GET("/booking/:id", middlewares.AuthMiddleware(), bookingController.GetBookingDetail)
	v1.POST("/booking/:id/verifyOtp", middlewares.AuthMiddleware(), bookingController.VerifyBookingOtp)
	v1.POST("/booking/:id/resendOtp", middlewares.AuthMiddleware(), bookingController.ResendBookingOtp)
	v1.POST("/booking/:id/processPayment", middlewares.AuthMiddleware(), bookingController.ProcessPayment)
	v1.GET("/booking/:id/payment", middlewares.AuthMiddleware(), bookingController.GetPaymentState)
	v1.POST("/booking/:id/verifyPaymentOtp", middlewares.AuthMiddleware(), bookingController.VerifyPaymentOtp)
	v1.POST("/booking/:id/resendPaymentOtp", middlewares.AuthMiddleware(), bookingController.ResendPaymentOtp)
	v1.GET("/booking/:id/invoice", middlewares.AuthMiddleware(), bookingController.GetBookingInvoice)
	v1.GET("/myBookings", middlewares.AuthMiddleware(), bookingController.GetMyBookings)

	v1.GET("/campsites", controllers.GetAllCampsites)
	v1.GET("/campsite/:id", controllers.GetCampsiteDetail)
	v1.POST("/campsite", middlewares.AuthMiddleware(), middlewares.RoleMiddleware(constants.RoleAdmin), controllers.CreateCampsite)
	v1.PUT("/campsiteUpdate", middlewares.AuthMiddleware(), middlewares.RoleMiddleware(constants.RoleAdmin), controllers.UpdateCampsite)
	v1.PUT("/campsiteStatus", middlewares.AuthMiddleware(), middlewares.RoleMiddleware(constants.RoleAdmin), controllers.ChangeCampsiteStatus)

	v1.POST("/img/upload", func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Lỗi khi mở file"})
			return
		}
		defer src.Close()

		ctx := context.Background()
		resp, err := cld.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "campsites"})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload thất bại"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload thành công",
			"url":     resp.SecureURL,
		})
	})

	//ws
	v1.GET("/test-broadcast", func(c *gin.Context) {
		message := []byte("Thông báo từ backend: Tin nhắn mới!")
		fmt.Println("Broadcasting message:", string(message))
		m.Broadcast(message)
		c.String(200, "Broadcast message sent!")
	})

}
