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

// SetQuantity godoc
// @Summary Set the quantity of a cart line
// @Description Overwrites the quantity of an existing cart line. Unknown product IDs return 404.
// @Tags Storefront - Cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param productId path string true "Product ID"
// @Param request body models.SetQuantityRequest true "New quantity"
// @Success 200 {object} models.ApiResponse "Cart updated"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 404 {object} models.ApiResponse "Product not in cart"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /user/cart/items/{productId} [patch]
func SetQuantity(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	productID := c.Param("productId")

	var req models.SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var cart *models.Cart
	found := false
	err := config.Gorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var txErr error
		cart, txErr = lockCart(tx, userID)
		if txErr != nil {
			return txErr
		}
		found = cart.SetQuantity(productID, req.Quantity)
		if !found {
			return nil
		}
		return saveCart(tx, cart)
	})
	if err != nil {
		log.Printf("[cart] failed to set quantity for %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update cart"))
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not in cart"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart updated", gin.H{
		"items":      cart.Items,
		"totalPrice": cart.TotalPrice(),
	}))
}
