package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	t.Run("empty list yields zero summary", func(t *testing.T) {
		summary := Summarize(nil)
		assert.Equal(t, 0, summary.Count)
		assert.Zero(t, summary.Average)
	})

	t.Run("average over all ratings", func(t *testing.T) {
		summary := Summarize([]Rating{
			{Stars: 5},
			{Stars: 4},
			{Stars: 3},
		})
		assert.Equal(t, 3, summary.Count)
		assert.InDelta(t, 4.0, summary.Average, 0.0001)
	})
}
