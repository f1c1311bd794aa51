package product_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Desertfoxking25/szakdoga-viragweb/catalog"
	"github.com/Desertfoxking25/szakdoga-viragweb/config"
	"github.com/Desertfoxking25/szakdoga-viragweb/models"
)

// DeleteProduct godoc
// @Summary Delete a product
// @Tags Admin - Products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse "Product deleted successfully"
// @Failure 400 {object} models.ApiResponse "Invalid product ID"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /admin/products/{id} [delete]
func DeleteProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	result := config.Gorm.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Product{})
	if result.Error != nil {
		log.Printf("[admin.product] failed to delete product %s: %v", id, result.Error)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete product"))
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	catalog.PublishInvalidation(config.Ctx, config.RedisClient, "product deleted: "+id.String())

	log.Printf("[admin.product] product deleted: %s", id)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product deleted successfully", nil))
}
