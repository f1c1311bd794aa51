package order_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Desertfoxking25/szakdoga-viragweb/config"
	"github.com/Desertfoxking25/szakdoga-viragweb/models"
)

// GetOrders godoc
// @Summary List all orders (admin)
// @Description Returns all orders, newest first, optionally filtered by status.
// @Tags Admin - Orders
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status (new | processing | fulfilled)"
// @Success 200 {object} models.ApiResponse "Orders fetched successfully"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /admin/orders [get]
func GetOrders(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := config.Gorm.WithContext(ctx).Order("created_at DESC")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	orders := make([]models.Order, 0)
	if err := query.Find(&orders).Error; err != nil {
		log.Printf("[admin.order] failed to fetch orders: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch orders"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Orders fetched successfully", orders))
}
