package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextOrderStatus(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{OrderStatusNew, OrderStatusProcessing, true},
		{OrderStatusProcessing, OrderStatusFulfilled, true},
		{OrderStatusNew, OrderStatusFulfilled, false}, // no skipping
		{OrderStatusProcessing, OrderStatusNew, false},
		{OrderStatusFulfilled, OrderStatusProcessing, false},
		{OrderStatusFulfilled, OrderStatusFulfilled, false},
		{OrderStatusNew, OrderStatusNew, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NextOrderStatus(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}
