package cart_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Desertfoxking25/szakdoga-viragweb/config"
	"github.com/Desertfoxking25/szakdoga-viragweb/middleware"
	"github.com/Desertfoxking25/szakdoga-viragweb/models"
)

// GetCart godoc
// @Summary Get the current user's cart
// @Description Returns the cart items and the computed total. Users without a cart row get an empty cart.
// @Tags Storefront - Cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse "Cart fetched successfully"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /user/cart [get]
func GetCart(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var cart models.Cart
	if err := config.Gorm.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&cart).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			cart = models.Cart{UserID: userID, Items: models.CartItemList{}}
		} else {
			log.Printf("[cart] failed to fetch cart for %s: %v", userID, err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch cart"))
			return
		}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart fetched successfully", gin.H{
		"items":      cart.Items,
		"totalPrice": cart.TotalPrice(),
	}))
}
