package product_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Desertfoxking25/szakdoga-viragweb/config"
	"github.com/Desertfoxking25/szakdoga-viragweb/models"
)

// GetProducts godoc
// @Summary List all products (admin)
// @Description Returns the full product table in insertion order, no filtering.
// @Tags Admin - Products
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse "Products fetched successfully"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /admin/products [get]
func GetProducts(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	products := make([]models.Product, 0)
	if err := config.Gorm.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Find(&products).Error; err != nil {
		log.Printf("[admin.product] failed to fetch products: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Products fetched successfully", products))
}
