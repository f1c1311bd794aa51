package order_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Desertfoxking25/szakdoga-viragweb/config"
	"github.com/Desertfoxking25/szakdoga-viragweb/models"
)

// UpdateOrderStatus godoc
// @Summary Advance an order's status
// @Description Statuses only move forward: new to processing, processing to fulfilled. Any other transition is rejected with 409.
// @Tags Admin - Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body models.UpdateOrderStatusRequest true "Target status"
// @Success 200 {object} models.ApiResponse "Order status updated"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 404 {object} models.ApiResponse "Order not found"
// @Failure 409 {object} models.ApiResponse "Illegal status transition"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /admin/orders/{id}/status [patch]
func UpdateOrderStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order ID"))
		return
	}

	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var order models.Order
	if err := config.Gorm.WithContext(ctx).
		Where("id = ?", id).
		First(&order).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
			return
		}
		log.Printf("[admin.order] failed to fetch order %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update order"))
		return
	}

	if !models.NextOrderStatus(order.Status, req.Status) {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Illegal status transition: "+order.Status+" -> "+req.Status))
		return
	}

	if err := config.Gorm.WithContext(ctx).
		Model(&order).
		Update("status", req.Status).Error; err != nil {
		log.Printf("[admin.order] failed to update order %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update order"))
		return
	}

	order.Status = req.Status
	log.Printf("[admin.order] order %s moved to %s", id, req.Status)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order status updated", order))
}
