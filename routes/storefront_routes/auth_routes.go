package storefront_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Desertfoxking25/szakdoga-viragweb/controllers/storefront/auth_controller"
	"github.com/Desertfoxking25/szakdoga-viragweb/middleware"
)

// SetupAuthRoutes sets up all authentication routes
func SetupAuthRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", auth_controller.Register)
		auth.POST("/login", auth_controller.Login)
		auth.POST("/logout", auth_controller.Logout)
		auth.GET("/me", middleware.AuthMiddleware(), auth_controller.GetMe)

		// Google OAuth routes
		auth.GET("/google/login", auth_controller.GoogleLogin)
		auth.GET("/google/callback", auth_controller.GoogleCallback)
		auth.POST("/google/onetap", auth_controller.GoogleOneTap)
	}
}
