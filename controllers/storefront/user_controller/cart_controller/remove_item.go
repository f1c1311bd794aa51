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

// RemoveItem godoc
// @Summary Remove a product from the cart
// @Description Drops the cart line for the given product. Removing a product that is not in the cart is a no-op.
// @Tags Storefront - Cart
// @Produce json
// @Security BearerAuth
// @Param productId path string true "Product ID"
// @Success 200 {object} models.ApiResponse "Item removed from cart"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /user/cart/items/{productId} [delete]
func RemoveItem(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	productID := c.Param("productId")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var cart *models.Cart
	err := config.Gorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var txErr error
		cart, txErr = lockCart(tx, userID)
		if txErr != nil {
			return txErr
		}
		cart.RemoveItem(productID)
		return saveCart(tx, cart)
	})
	if err != nil {
		log.Printf("[cart] failed to remove item for %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update cart"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Item removed from cart", gin.H{
		"items":      cart.Items,
		"totalPrice": cart.TotalPrice(),
	}))
}
