package product_controller

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Desertfoxking25/szakdoga-viragweb/catalog"
)

func TestParsePresets(t *testing.T) {
	t.Run("valid values become checked presets", func(t *testing.T) {
		presets := parsePresets([]string{"0-2000", "5000-10000"})
		assert.Len(t, presets, 2)
		assert.Equal(t, catalog.PriceRange{Min: 0, Max: 2000}, presets[0].Range)
		assert.Equal(t, catalog.PriceRange{Min: 5000, Max: 10000}, presets[1].Range)
		assert.True(t, presets[0].Checked)
		assert.True(t, presets[1].Checked)
	})

	t.Run("malformed values are dropped", func(t *testing.T) {
		presets := parsePresets([]string{"abc", "100", "1000-", "-500", "2000-5000"})
		assert.Len(t, presets, 1)
		assert.Equal(t, catalog.PriceRange{Min: 2000, Max: 5000}, presets[0].Range)
	})

	t.Run("empty input yields no presets", func(t *testing.T) {
		assert.Empty(t, parsePresets(nil))
	})
}
