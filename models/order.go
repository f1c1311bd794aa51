package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order statuses. Transitions only move forward:
// new -> processing -> fulfilled.
const (
	OrderStatusNew        = "new"
	OrderStatusProcessing = "processing"
	OrderStatusFulfilled  = "fulfilled"
)

// Order is an append-only record of a checkout. Items are a jsonb copy
// of the cart lines at purchase time.
type Order struct {
	ID         uuid.UUID    `json:"id" gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID    `json:"userId" gorm:"type:uuid;not null;index"`
	Items      CartItemList `json:"items" gorm:"type:jsonb;not null;default:'[]'"`
	TotalPrice int          `json:"totalPrice" gorm:"not null;check:total_price >= 0"`
	Status     string       `json:"status" gorm:"not null;default:'new';check:status IN ('new', 'processing', 'fulfilled');index"`
	CreatedAt  time.Time    `json:"createdAt" gorm:"autoCreateTime;index"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Order) TableName() string {
	return "orders"
}

// NextOrderStatus reports whether to is a legal transition from from.
func NextOrderStatus(from, to string) bool {
	switch from {
	case OrderStatusNew:
		return to == OrderStatusProcessing
	case OrderStatusProcessing:
		return to == OrderStatusFulfilled
	default:
		return false
	}
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=new processing fulfilled"`
}
