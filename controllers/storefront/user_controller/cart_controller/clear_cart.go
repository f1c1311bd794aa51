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

// ClearCart godoc
// @Summary Empty the cart
// @Tags Storefront - Cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse "Cart cleared"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /user/cart [delete]
func ClearCart(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	err := config.Gorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cart, txErr := lockCart(tx, userID)
		if txErr != nil {
			return txErr
		}
		cart.Clear()
		return saveCart(tx, cart)
	})
	if err != nil {
		log.Printf("[cart] failed to clear cart for %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to clear cart"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart cleared", gin.H{
		"items":      models.CartItemList{},
		"totalPrice": 0,
	}))
}
