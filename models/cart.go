package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
)

// CartItem is a single product line in a user's cart. Name, price and
// image are denormalized at add time so the cart renders without extra
// product lookups.
type CartItem struct {
	ProductID string `json:"productId" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Price     int    `json:"price" binding:"min=0"`
	ImgURL    string `json:"imgUrl"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// CartItemList is the jsonb items column.
type CartItemList []CartItem

// Cart is the per-user cart document. One row per user.
type Cart struct {
	UserID uuid.UUID    `json:"userId" gorm:"type:uuid;primaryKey"`
	Items  CartItemList `json:"items" gorm:"type:jsonb;not null;default:'[]'"`
}

func (Cart) TableName() string {
	return "carts"
}

// AddItem appends the item, or bumps the quantity if the product is
// already in the cart.
func (c *Cart) AddItem(item CartItem) {
	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID {
			c.Items[i].Quantity += item.Quantity
			return
		}
	}
	c.Items = append(c.Items, item)
}

// SetQuantity overwrites the quantity of an existing line. Unknown
// product IDs are a no-op, mirroring the storefront behavior.
func (c *Cart) SetQuantity(productID string, quantity int) bool {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = quantity
			return true
		}
	}
	return false
}

// RemoveItem drops the line for the given product ID.
func (c *Cart) RemoveItem(productID string) {
	filtered := c.Items[:0]
	for _, item := range c.Items {
		if item.ProductID != productID {
			filtered = append(filtered, item)
		}
	}
	c.Items = filtered
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = CartItemList{}
}

// TotalPrice sums price * quantity over all lines.
func (c *Cart) TotalPrice() int {
	total := 0
	for _, item := range c.Items {
		total += item.Price * item.Quantity
	}
	return total
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

// AddToCartRequest references the product by ID; name, price and image
// are denormalized server-side from the catalog snapshot.
type AddToCartRequest struct {
	ProductID string `json:"productId" binding:"required,uuid"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type SetQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// ═══════════════════════════════════════════════════════════
// JSONB Scanner/Valuer for GORM
// ═══════════════════════════════════════════════════════════

func (l *CartItemList) Scan(value interface{}) error {
	if value == nil {
		*l = make(CartItemList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan CartItemList")
	}
	return json.Unmarshal(bytes, l)
}

func (l CartItemList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]CartItem{})
	}
	return json.Marshal(l)
}
