package order_controller

import (
	"context"

	"github.com/google/uuid"

	"github.com/Desertfoxking25/szakdoga-viragweb/config"
	"github.com/Desertfoxking25/szakdoga-viragweb/models"
)

type customerInfo struct {
	Name  string
	Email string
}

// fetchOrderWithCustomer loads the order and its customer's display
// name and email.
func fetchOrderWithCustomer(ctx context.Context, orderID uuid.UUID) (*models.Order, *customerInfo, error) {
	var order models.Order
	if err := config.Gorm.WithContext(ctx).
		Where("id = ?", orderID).
		First(&order).Error; err != nil {
		return nil, nil, err
	}

	var user models.User
	if err := config.Gorm.WithContext(ctx).
		Select("email, firstname, lastname").
		Where("id = ?", order.UserID).
		First(&user).Error; err != nil {
		return nil, nil, err
	}

	return &order, &customerInfo{Name: user.Name(), Email: user.Email}, nil
}
