package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSlug(t *testing.T) {
	t.Run("lowercases and trims", func(t *testing.T) {
		slug, err := NormalizeSlug("  Aloe-Vera  ")
		require.NoError(t, err)
		assert.Equal(t, "aloe-vera", slug)
	})

	t.Run("accepts digits", func(t *testing.T) {
		slug, err := NormalizeSlug("rose-bouquet-12")
		require.NoError(t, err)
		assert.Equal(t, "rose-bouquet-12", slug)
	})

	t.Run("rejects empty", func(t *testing.T) {
		_, err := NormalizeSlug("   ")
		assert.Error(t, err)
	})

	t.Run("rejects spaces and symbols", func(t *testing.T) {
		for _, bad := range []string{"aloe vera", "aloe_vera", "-aloe", "aloe-", "aloe--vera", "virág"} {
			_, err := NormalizeSlug(bad)
			assert.Error(t, err, bad)
		}
	})
}
