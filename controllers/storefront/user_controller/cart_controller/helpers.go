package cart_controller

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/google/uuid"

	"github.com/Desertfoxking25/szakdoga-viragweb/models"
)

// lockCart fetches the user's cart row FOR UPDATE inside tx, creating an
// empty row on first touch. Concurrent mutations of the same cart
// serialize on the row lock instead of overwriting each other.
func lockCart(tx *gorm.DB, userID uuid.UUID) (*models.Cart, error) {
	var cart models.Cart
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).
		First(&cart).Error
	if err == nil {
		return &cart, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	cart = models.Cart{UserID: userID, Items: models.CartItemList{}}
	if err := tx.Create(&cart).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

// saveCart writes the mutated items column back.
func saveCart(tx *gorm.DB, cart *models.Cart) error {
	return tx.Model(&models.Cart{}).
		Where("user_id = ?", cart.UserID).
		Update("items", cart.Items).Error
}
