package cart_controller

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

// AddItem godoc
// @Summary Add a product to the cart
// @Description Adds the product, or bumps the quantity if it is already in the cart. Name, price and image are taken from the current catalog.
// @Tags Storefront - Cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.AddToCartRequest true "Product and quantity"
// @Success 200 {object} models.ApiResponse "Item added to cart"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /user/cart/items [post]
func AddItem(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	productID := uuid.MustParse(req.ProductID)
	var product *models.Product
	for _, p := range config.Catalog.Snapshot() {
		if p.ID == productID {
			product = &p
			break
		}
	}
	if product == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var cart *models.Cart
	err := config.Gorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var txErr error
		cart, txErr = lockCart(tx, userID)
		if txErr != nil {
			return txErr
		}
		cart.AddItem(models.CartItem{
			ProductID: product.ID.String(),
			Name:      product.Name,
			Price:     product.Price,
			ImgURL:    product.ImgURL,
			Quantity:  req.Quantity,
		})
		return saveCart(tx, cart)
	})
	if err != nil {
		log.Printf("[cart] failed to add item for %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update cart"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Item added to cart", gin.H{
		"items":      cart.Items,
		"totalPrice": cart.TotalPrice(),
	}))
}
