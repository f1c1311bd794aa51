package order_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Desertfoxking25/szakdoga-viragweb/config"
	"github.com/Desertfoxking25/szakdoga-viragweb/middleware"
	"github.com/Desertfoxking25/szakdoga-viragweb/models"
)

var errEmptyCart = errors.New("cart is empty")

// CreateOrder godoc
// @Summary Place an order from the cart
// @Description Snapshots the cart lines into a new order with status "new" and clears the cart. Cart read, order insert and cart clear run in one transaction.
// @Tags Storefront - Orders
// @Produce json
// @Security BearerAuth
// @Success 201 {object} models.ApiResponse "Order created successfully"
// @Failure 400 {object} models.ApiResponse "Cart is empty"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /user/orders [post]
func CreateOrder(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var order models.Order
	err := config.Gorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", userID).
			First(&cart).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errEmptyCart
			}
			return err
		}
		if len(cart.Items) == 0 {
			return errEmptyCart
		}

		order = models.Order{
			UserID:     userID,
			Items:      cart.Items,
			TotalPrice: cart.TotalPrice(),
			Status:     models.OrderStatusNew,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		cart.Clear()
		return tx.Model(&models.Cart{}).
			Where("user_id = ?", userID).
			Update("items", cart.Items).Error
	})
	if err != nil {
		if errors.Is(err, errEmptyCart) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Cart is empty"))
			return
		}
		log.Printf("[order] failed to create order for %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create order"))
		return
	}

	log.Printf("[order] order %s created for %s (%d Ft)", order.ID, userID, order.TotalPrice)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Order created successfully", order))
}
