package routes

import (
	"context"
	"net/http"

	"stayhub/controllers"
	middlewares "stayhub/middleware"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"

	"github.com/redis/go-redis/v9"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "stayhub/docs"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary, m *melody.Melody) {

	bookingController := controllers.NewBookingController(db, redisCli, m)
	unavailabilityController := controllers.NewUnavailabilityController(db, redisCli)
	paymentController := controllers.NewPaymentController(db, redisCli, m)

	v1 := router.Group("/api/v1")

	v1.POST("/auth/register", controllers.RegisterUser)
	v1.POST("/auth/login", controllers.Login)
	v1.DELETE("/auth/logout", controllers.Logout)
	v1.POST("/auth/google", controllers.AuthGoogle)
	v1.GET("/verify-email", controllers.VerifyEmail)
	v1.POST("/resendCode", controllers.ResendVerificationCode)
	v1.POST("/forgetPassword", controllers.ForgetPassword)
	v1.POST("/newPassword", controllers.ResetPassword)
	v1.POST("/verifyCode", controllers.VerifyCode)

	v1.GET("/property", middlewares.AuthMiddleware(1, 2), controllers.GetAllProperties)
	v1.GET("/propertySearch", middlewares.SessionMiddleware(), controllers.SearchProperties)
	v1.POST("/property", middlewares.AuthMiddleware(1, 2), controllers.CreateProperty)
	v1.GET("/property/:id", controllers.GetPropertyDetail)
	v1.PUT("/propertyUpdate", middlewares.AuthMiddleware(1, 2), controllers.UpdateProperty)
	v1.PUT("/propertyStatus", middlewares.AuthMiddleware(1, 2), controllers.ChangePropertyStatus)
	v1.DELETE("/property/:id", middlewares.AuthMiddleware(1, 2), controllers.DeleteProperty)
	v1.GET("/countryCounts", controllers.GetCountryCounts)

	v1.GET("/room", controllers.GetAllRooms)
	v1.POST("/room", middlewares.AuthMiddleware(1, 2), controllers.CreateRoom)
	v1.GET("/room/:id", controllers.GetRoomDetail)
	v1.PUT("/roomUpdate", middlewares.AuthMiddleware(1, 2), controllers.UpdateRoom)
	v1.DELETE("/room/:id", middlewares.AuthMiddleware(1, 2), controllers.DeleteRoom)
	v1.GET("/availableRooms", middlewares.AuthMiddleware(1, 2), controllers.GetAvailableRoomNumbers)

	v1.GET("/bookingSearch", controllers.GetBookingSearch)

	v1.POST("/booking", middlewares.AuthMiddleware(0, 1, 2), bookingController.CreateBooking)
	v1.GET("/booking", middlewares.AuthMiddleware(0, 1, 2), bookingController.GetBookings)
	v1.GET("/booking/:id", middlewares.AuthMiddleware(0, 1, 2), bookingController.GetBookingDetail)
	v1.PUT("/booking/:id", middlewares.AuthMiddleware(0, 1, 2), bookingController.UpdateBooking)
	v1.PUT("/booking/:id/extend", middlewares.AuthMiddleware(0, 1, 2), bookingController.ExtendCheckout)
	v1.PUT("/booking/:id/cancel", middlewares.AuthMiddleware(0, 1, 2), bookingController.CancelBooking)
	v1.DELETE("/booking/:id", middlewares.AuthMiddleware(1, 2), bookingController.DeleteBooking)

	v1.POST("/unavailability", middlewares.AuthMiddleware(1, 2), unavailabilityController.CreateUnavailability)
	v1.GET("/unavailability", middlewares.AuthMiddleware(1, 2), unavailabilityController.GetUnavailabilities)
	v1.PUT("/unavailabilityUpdate", middlewares.AuthMiddleware(1, 2), unavailabilityController.UpdateUnavailability)
	v1.DELETE("/unavailability/:id", middlewares.AuthMiddleware(1, 2), unavailabilityController.DeleteUnavailability)

	v1.POST("/pricing", middlewares.AuthMiddleware(1, 2), controllers.CreatePricing)
	v1.GET("/pricing", controllers.GetPricings)
	v1.PUT("/pricingUpdate", middlewares.AuthMiddleware(1, 2), controllers.UpdatePricing)
	v1.DELETE("/pricing/:id", middlewares.AuthMiddleware(1, 2), controllers.DeletePricing)
	v1.GET("/priceCalendar", controllers.GetMonthCalendar)

	v1.POST("/specialDeal", middlewares.AuthMiddleware(1, 2), controllers.CreateSpecialDeal)
	v1.GET("/specialDeal", controllers.GetSpecialDeals)
	v1.DELETE("/specialDeal/:id", middlewares.AuthMiddleware(1, 2), controllers.DeleteSpecialDeal)

	v1.POST("/package", middlewares.AuthMiddleware(1, 2), controllers.CreatePackage)
	v1.GET("/package", controllers.GetPackages)
	v1.GET("/package/:id", controllers.GetPackageDetail)
	v1.PUT("/packageUpdate", middlewares.AuthMiddleware(1, 2), controllers.UpdatePackage)
	v1.DELETE("/package/:id", middlewares.AuthMiddleware(1, 2), controllers.DeletePackage)
	v1.POST("/packageBooking", middlewares.AuthMiddleware(0, 1, 2), controllers.CreatePackageBooking)
	v1.GET("/packageBooking", middlewares.AuthMiddleware(1, 2), controllers.GetPackageBookings)
	v1.PUT("/packageBooking/:id/cancel", middlewares.AuthMiddleware(0, 1, 2), controllers.CancelPackageBooking)
	v1.PUT("/packageBooking/:id/payment", middlewares.AuthMiddleware(1, 2), controllers.UpdatePackageBookingPayment)

	v1.POST("/transaction", middlewares.AuthMiddleware(0, 1, 2), paymentController.CreateTransaction)
	v1.GET("/transaction", middlewares.AuthMiddleware(1, 2), paymentController.GetTransactions)
	v1.GET("/transaction/:id", middlewares.AuthMiddleware(1, 2), paymentController.GetTransactionDetail)
	v1.PUT("/paymentStatus", middlewares.AuthMiddleware(1, 2), paymentController.UpdatePaymentStatus)

	v1.POST("/rating", middlewares.AuthMiddleware(0, 1, 2), controllers.CreateRating)
	v1.GET("/rating", controllers.GetPropertyRatings)
	v1.PUT("/ratingUpdate", middlewares.AuthMiddleware(0, 1, 2), controllers.UpdateRating)
	v1.DELETE("/rating/:id", middlewares.AuthMiddleware(0, 1, 2), controllers.DeleteRating)
	v1.POST("/ratingReply", middlewares.AuthMiddleware(1, 2), controllers.ReplyToRating)
	v1.DELETE("/ratingReply/:id", middlewares.AuthMiddleware(1, 2), controllers.DeleteRatingReply)

	v1.GET("/referrals", middlewares.AuthMiddleware(0, 1, 2), controllers.GetReferrals)
	v1.GET("/referralPoints", middlewares.AuthMiddleware(0, 1, 2), controllers.GetReferralPointStats)

	v1.GET("/dashboard/totals", middlewares.AuthMiddleware(1, 2), controllers.GetDashboardTotals)
	v1.GET("/dashboard/revenue", middlewares.AuthMiddleware(1, 2), controllers.GetMonthlyRevenue)
	v1.GET("/dashboard/arrivals", middlewares.AuthMiddleware(1, 2), controllers.GetTodayArrivals)
	v1.POST("/dashboard/audit", middlewares.AuthMiddleware(2), controllers.RunAvailabilityAudit)

	v1.POST("/img/multi-upload", middlewares.AuthMiddleware(1, 2), func(c *gin.Context) {
		form, er := c.MultipartForm()
		if er != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
			return
		}
		files := form.File["files"]
		if len(files) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
			return
		}

		var urls []string
		for _, file := range files {
			src, err := file.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Error opening file"})
				return
			}
			defer src.Close()

			ctx := context.Background()
			resp, err := cld.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "uploads"})
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
				return
			}
			urls = append(urls, resp.SecureURL)
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload successful",
			"urls":    urls,
		})
	})

	v1.POST("/img/upload", middlewares.AuthMiddleware(0, 1, 2), func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Error opening file"})
			return
		}
		defer src.Close()

		ctx := context.Background()
		resp, err := cld.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "avatars"})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Avatar upload successful",
			"url":     resp.SecureURL,
		})
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
