package admin_routes

import (
	"github.com/gin-gonic/gin"

	admin_faq "github.com/Desertfoxking25/szakdoga-viragweb/controllers/admin/faq_controller"
	admin_order "github.com/Desertfoxking25/szakdoga-viragweb/controllers/admin/order_controller"
	admin_product "github.com/Desertfoxking25/szakdoga-viragweb/controllers/admin/product_controller"
	admin_tip "github.com/Desertfoxking25/szakdoga-viragweb/controllers/admin/tip_controller"
	"github.com/Desertfoxking25/szakdoga-viragweb/middleware"
)

// SetupAdminRoutes registers the back-office surface. Every route
// requires an authenticated admin.
func SetupAdminRoutes(router *gin.RouterGroup) {
	router.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())

	// Products
	products := router.Group("/products")
	{
		products.GET("", admin_product.GetProducts)
		products.POST("", admin_product.CreateProduct)
		products.POST("/image", admin_product.UploadImage)
		products.PATCH("/:id", admin_product.UpdateProduct)
		products.DELETE("/:id", admin_product.DeleteProduct)
	}

	// Orders
	orders := router.Group("/orders")
	{
		orders.GET("", admin_order.GetOrders)
		orders.PATCH("/:id/status", admin_order.UpdateOrderStatus)
		orders.GET("/:id/invoice", admin_order.DownloadInvoice)
		orders.POST("/:id/send-invoice", admin_order.SendInvoice)
	}

	// Tips
	tips := router.Group("/tips")
	{
		tips.POST("", admin_tip.CreateTip)
		tips.DELETE("/:id", admin_tip.DeleteTip)
	}

	// FAQ
	faqs := router.Group("/faqs")
	{
		faqs.POST("", admin_faq.CreateFaq)
		faqs.DELETE("/:id", admin_faq.DeleteFaq)
	}
}
