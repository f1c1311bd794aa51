package storefront_routes

import (
	"github.com/gin-gonic/gin"

	store_chat "github.com/Desertfoxking25/szakdoga-viragweb/controllers/storefront/chat_controller"
	store_faq "github.com/Desertfoxking25/szakdoga-viragweb/controllers/storefront/faq_controller"
	store_filter "github.com/Desertfoxking25/szakdoga-viragweb/controllers/storefront/filter_controller"
	store_product "github.com/Desertfoxking25/szakdoga-viragweb/controllers/storefront/product_controller"
	store_rating "github.com/Desertfoxking25/szakdoga-viragweb/controllers/storefront/rating_controller"
	store_tip "github.com/Desertfoxking25/szakdoga-viragweb/controllers/storefront/tip_controller"
	"github.com/Desertfoxking25/szakdoga-viragweb/middleware"
)

func SetupStorefrontRoutes(router *gin.RouterGroup) {
	// Storefront routes (public, no auth required)
	store := router.Group("/store")

	// Product routes
	products := store.Group("/products")
	{
		products.GET("", store_product.GetProducts) // List with filters + pagination

		products.GET("/slug/:slug", store_product.GetProductBySlug)
		products.GET("/:id", store_product.GetProductByID)

		// Ratings: reads public, writes authenticated
		products.GET("/:id/ratings", store_rating.GetRatings)
		products.PUT("/:id/ratings", middleware.AuthMiddleware(), store_rating.UpsertRating)
		products.DELETE("/:id/ratings", middleware.AuthMiddleware(), store_rating.DeleteRating)
	}

	store.GET("/filters/metadata", store_filter.GetFilterMetadata)

	store.GET("/tips", store_tip.GetTips)
	store.GET("/faqs", store_faq.GetFaqs)

	// Assistant proxy
	router.POST("/chat", store_chat.ChatCompletion)
}
