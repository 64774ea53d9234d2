package routes

import (
	"decor/constants"
	"decor/controllers"
	middlewares "decor/middleware"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, m *melody.Melody) {

	bookingController := controllers.NewBookingController(db, redisCli, m)

	v1 := router.Group("/api/v1")

	v1.POST("/auth/register", controllers.RegisterUser)
	v1.POST("/auth/login", controllers.Login)
	v1.DELETE("/auth/logout", controllers.Logout)
	v1.GET("/profile", middlewares.AuthMiddleware(), controllers.GetProfile)

	// Bảng trạng thái đơn cho app vẽ tab lọc và chú giải màu
	v1.GET("/bookingStatuses", controllers.GetBookingStatuses)
	v1.GET("/bookingStatuses/:code", controllers.GetBookingStatusDetail)

	v1.GET("/booking", middlewares.AuthMiddleware(), bookingController.GetBookings)
	v1.POST("/booking", bookingController.CreateBooking)
	v1.GET("/booking/:id", bookingController.GetBookingDetail)
	v1.GET("/booking/:id/timeline", bookingController.GetBookingTimeline)
	v1.PUT("/bookingStatus", middlewares.AuthMiddleware(constants.RoleProvider, constants.RoleAdmin), bookingController.ChangeBookingStatus)
	v1.PUT("/bookingCancel", middlewares.AuthMiddleware(), bookingController.CancelBooking)

	v1.GET("/service", controllers.GetServices)
	v1.GET("/service/:id", controllers.GetServiceDetail)
	v1.POST("/service", middlewares.AuthMiddleware(constants.RoleProvider, constants.RoleAdmin), controllers.CreateService)
	v1.GET("/suggest", controllers.SuggestServices)

	v1.PUT("/favorites/:id", middlewares.AuthMiddleware(), controllers.ToggleFavoriteService)
	v1.GET("/favorites", middlewares.AuthMiddleware(), controllers.GetFavoriteServices)

	v1.GET("/reviews", controllers.GetReviews)
	v1.POST("/reviews", middlewares.AuthMiddleware(constants.RoleCustomer), controllers.CreateReview)

	v1.GET("/wallet", middlewares.AuthMiddleware(), controllers.GetWallet)
	v1.POST("/wallet/topup", middlewares.AuthMiddleware(), controllers.TopUpWallet)
	v1.GET("/wallet/transactions", middlewares.AuthMiddleware(), controllers.GetTransactions)

	v1.GET("/notifications", middlewares.AuthMiddleware(), controllers.GetNotifications)
	v1.PUT("/notifications/:id", middlewares.AuthMiddleware(), controllers.MarkNotificationRead)

	//ws
	v1.GET("/test-broadcast", func(c *gin.Context) {
		message := []byte("Thông báo từ backend: Tin nhắn mới!")
		m.Broadcast(message)
		c.String(200, "Broadcast message sent!")
	})
}
