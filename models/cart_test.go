package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCartAddItem(t *testing.T) {
	cart := Cart{Items: CartItemList{}}

	cart.AddItem(CartItem{ProductID: "p1", Name: "Aloe Vera", Price: 3490, Quantity: 1})
	cart.AddItem(CartItem{ProductID: "p2", Name: "Bazsalikom", Price: 990, Quantity: 2})
	assert.Len(t, cart.Items, 2)

	t.Run("adding an existing product bumps the quantity", func(t *testing.T) {
		cart.AddItem(CartItem{ProductID: "p1", Name: "Aloe Vera", Price: 3490, Quantity: 3})
		assert.Len(t, cart.Items, 2)
		assert.Equal(t, 4, cart.Items[0].Quantity)
	})
}

func TestCartSetQuantity(t *testing.T) {
	cart := Cart{Items: CartItemList{
		{ProductID: "p1", Name: "Aloe Vera", Price: 3490, Quantity: 2},
	}}

	t.Run("existing line is overwritten", func(t *testing.T) {
		ok := cart.SetQuantity("p1", 5)
		assert.True(t, ok)
		assert.Equal(t, 5, cart.Items[0].Quantity)
	})

	t.Run("unknown product is a no-op", func(t *testing.T) {
		ok := cart.SetQuantity("missing", 3)
		assert.False(t, ok)
		assert.Len(t, cart.Items, 1)
		assert.Equal(t, 5, cart.Items[0].Quantity)
	})
}

func TestCartRemoveItem(t *testing.T) {
	cart := Cart{Items: CartItemList{
		{ProductID: "p1", Quantity: 1},
		{ProductID: "p2", Quantity: 2},
	}}

	cart.RemoveItem("p1")
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, "p2", cart.Items[0].ProductID)

	// removing an absent product changes nothing
	cart.RemoveItem("p1")
	assert.Len(t, cart.Items, 1)
}

func TestCartTotalPrice(t *testing.T) {
	cart := Cart{Items: CartItemList{
		{ProductID: "p1", Price: 3490, Quantity: 2},
		{ProductID: "p2", Price: 990, Quantity: 3},
	}}
	assert.Equal(t, 2*3490+3*990, cart.TotalPrice())

	cart.Clear()
	assert.Empty(t, cart.Items)
	assert.Equal(t, 0, cart.TotalPrice())
}
