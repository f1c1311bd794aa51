package rating_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Desertfoxking25/szakdoga-viragweb/config"
	"github.com/Desertfoxking25/szakdoga-viragweb/middleware"
	"github.com/Desertfoxking25/szakdoga-viragweb/models"
)

// UpsertRating godoc
// @Summary Rate a product
// @Description Creates the user's rating for the product, or overwrites the existing one. One rating per user per product.
// @Tags Storefront - Ratings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body models.RatingRequest true "Stars and optional review text"
// @Success 200 {object} models.ApiResponse "Rating saved"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /store/products/{id}/ratings [put]
func UpsertRating(c *gin.Context) {
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

	var req models.RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var rating models.Rating
	result := config.Gorm.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&rating)

	if result.Error != nil {
		if result.Error != gorm.ErrRecordNotFound {
			log.Printf("[rating] failed to fetch rating: %v", result.Error)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save rating"))
			return
		}
		rating = models.Rating{
			ProductID:  productID,
			UserID:     userID,
			Stars:      req.Stars,
			ReviewText: req.ReviewText,
		}
		if err := config.Gorm.WithContext(ctx).Create(&rating).Error; err != nil {
			log.Printf("[rating] failed to create rating: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save rating"))
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Rating saved", rating))
		return
	}

	rating.Stars = req.Stars
	rating.ReviewText = req.ReviewText
	if err := config.Gorm.WithContext(ctx).Save(&rating).Error; err != nil {
		log.Printf("[rating] failed to update rating: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save rating"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Rating saved", rating))
}
