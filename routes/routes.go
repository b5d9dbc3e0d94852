package routes

import (
	"time"

	"voyago/config"
	"voyago/controllers"
	"voyago/middlewares"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.RequestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middlewares.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Disposition", middlewares.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	authLimiter := middlewares.NewRateLimiter(1, 5)

	// Public API Routes

	api := r.Group("/api")
	{
		// Auth routes
		api.POST("/signup", authLimiter.Limit(), controllers.SignupHandler)
		api.POST("/login", authLimiter.Limit(), controllers.LoginHandler)
		api.POST("/refresh", controllers.RefreshTokenHandler)
		api.POST("/logout", controllers.LogoutHandler)

		// Public catalog routes
		api.GET("/home", controllers.FeaturedTravelOptions(config.DB))
		api.GET("/travel-options", controllers.ListTravelOptions(config.DB))
		api.GET("/travel-options/:id", controllers.GetTravelOptionDetails(config.DB))
	}

	// Protected User Routes (Require Login)

	user := r.Group("/api/user").Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile(config.DB))
		user.PUT("/profile", controllers.UpdateProfile(config.DB))

		user.POST("/bookings", controllers.CreateBooking(config.DB))
		user.GET("/bookings", controllers.GetUserBookings(config.DB))
		user.GET("/bookings/:id", controllers.GetBookingDetails(config.DB))
		user.POST("/bookings/:id/cancel", controllers.CancelBooking(config.DB))
		user.GET("/bookings/:id/receipt", controllers.DownloadBookingReceipt(config.DB))
	}

	// Admin Routes (Require Admin Access)

	admin := r.Group("/api/admin")
	admin.Use(middlewares.AdminMiddleware())
	{
		admin.GET("/travel-options", controllers.AdminListTravelOptions(config.DB))
		admin.POST("/travel-options", controllers.AdminAddTravelOption(config.DB))
		admin.PUT("/travel-options/:id", controllers.AdminUpdateTravelOption(config.DB))
		admin.DELETE("/travel-options/:id", controllers.AdminDeleteTravelOption(config.DB))
		admin.GET("/bookings", controllers.GetAllBookings(config.DB))
		admin.GET("/dashboard", controllers.AdminDashboard(config.DB))
		admin.GET("/users", controllers.GetAllUsers(config.DB))
		admin.DELETE("/users/:id", controllers.DeleteUser(config.DB))
	}

	// Fallback for Unknown Routes

	r.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"error": "page not found"})
	})

	return r
}
