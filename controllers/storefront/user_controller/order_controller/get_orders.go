package order_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Desertfoxking25/szakdoga-viragweb/config"
	"github.com/Desertfoxking25/szakdoga-viragweb/middleware"
	"github.com/Desertfoxking25/szakdoga-viragweb/models"
)

// GetOrders godoc
// @Summary List the current user's orders
// @Description Returns the user's own orders, newest first.
// @Tags Storefront - Orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse "Orders fetched successfully"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /user/orders [get]
func GetOrders(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	orders := make([]models.Order, 0)
	if err := config.Gorm.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		log.Printf("[order] failed to fetch orders for %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch orders"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Orders fetched successfully", orders))
}
