package storefront_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Desertfoxking25/szakdoga-viragweb/controllers/storefront/user_controller/cart_controller"
	"github.com/Desertfoxking25/szakdoga-viragweb/controllers/storefront/user_controller/order_controller"
	"github.com/Desertfoxking25/szakdoga-viragweb/controllers/storefront/user_controller/profile_controller"
	"github.com/Desertfoxking25/szakdoga-viragweb/middleware"
)

// SetupUserRoutes sets up all user profile routes
func SetupUserRoutes(router *gin.RouterGroup) {
	user := router.Group("/user")
	user.Use(middleware.AuthMiddleware()) // All routes require auth
	{
		// Profile
		user.GET("/profile", profile_controller.GetProfile)
		user.PATCH("/profile", profile_controller.UpdateProfile)
		user.POST("/profile/avatar", profile_controller.UploadAvatar)

		// Cart
		user.GET("/cart", cart_controller.GetCart)
		user.DELETE("/cart", cart_controller.ClearCart)
		user.POST("/cart/items", cart_controller.AddItem)
		user.PATCH("/cart/items/:productId", cart_controller.SetQuantity)
		user.DELETE("/cart/items/:productId", cart_controller.RemoveItem)

		// Orders
		user.GET("/orders", order_controller.GetOrders)
		user.POST("/orders", order_controller.CreateOrder)
	}
}
