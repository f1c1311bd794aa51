package rating_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Desertfoxking25/szakdoga-viragweb/config"
	"github.com/Desertfoxking25/szakdoga-viragweb/middleware"
	"github.com/Desertfoxking25/szakdoga-viragweb/models"
)

// DeleteRating godoc
// @Summary Delete own rating
// @Description Removes the current user's rating of the product.
// @Tags Storefront - Ratings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse "Rating deleted"
// @Failure 404 {object} models.ApiResponse "Rating not found"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /store/products/{id}/ratings [delete]
func DeleteRating(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	result := config.Gorm.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.Rating{})
	if result.Error != nil {
		log.Printf("[rating] failed to delete rating: %v", result.Error)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete rating"))
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Rating not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Rating deleted", nil))
}
