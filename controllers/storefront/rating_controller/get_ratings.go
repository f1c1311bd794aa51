package rating_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Desertfoxking25/szakdoga-viragweb/config"
	"github.com/Desertfoxking25/szakdoga-viragweb/models"
)

// GetRatings godoc
// @Summary List ratings for a product
// @Description Returns every rating of the product plus the computed average and count.
// @Tags Storefront - Ratings
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse "Ratings fetched successfully"
// @Failure 400 {object} models.ApiResponse "Invalid product ID"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /store/products/{id}/ratings [get]
func GetRatings(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	ratings := make([]models.Rating, 0)
	if err := config.Gorm.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&ratings).Error; err != nil {
		log.Printf("[rating] failed to fetch ratings for %s: %v", productID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch ratings"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Ratings fetched successfully", gin.H{
		"ratings": ratings,
		"summary": models.Summarize(ratings),
	}))
}
