package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestView_PageReset(t *testing.T) {
	v := NewView(makeCatalog(40))
	v.SetPriceRange(0, 20000)

	t.Run("any filter change resets the page to 1", func(t *testing.T) {
		v.GoToPage(3)
		require.Equal(t, 3, v.CurrentPage())

		// Even though the new filtered set would still hold page 3.
		v.SetKeywords("p")
		assert.Equal(t, 1, v.CurrentPage())
		assert.Equal(t, 5, v.TotalPages())

		v.GoToPage(4)
		v.SetSalesOnly(false)
		assert.Equal(t, 1, v.CurrentPage())

		v.GoToPage(2)
		v.SetPriceRange(0, 15000)
		assert.Equal(t, 1, v.CurrentPage())

		v.GoToPage(2)
		v.TogglePreset("missing", true)
		assert.Equal(t, 1, v.CurrentPage())
	})

	t.Run("snapshot refresh also resets the page", func(t *testing.T) {
		v.GoToPage(3)
		v.SetSnapshot(makeCatalog(32))
		assert.Equal(t, 1, v.CurrentPage())
	})

	t.Run("direct navigation does not re-filter", func(t *testing.T) {
		before := v.Filtered()
		v.GoToPage(2)
		assert.Equal(t, before, v.Filtered())
		assert.Equal(t, 2, v.CurrentPage())
	})
}

func TestView_Meta(t *testing.T) {
	v := NewView(makeCatalog(20))
	v.SetPriceRange(0, 20000)
	v.GoToPage(2)

	meta := v.Meta()
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 8, meta.Limit)
	assert.Equal(t, 20, meta.Total)
	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, []int{1, 2, 3}, meta.VisiblePages)

	page := v.Page()
	require.Len(t, page, 8)
	assert.Equal(t, "p08", page[0].Name)
}

func TestView_EmptyCatalog(t *testing.T) {
	v := NewView(nil)
	v.SetKeywords("anything")

	assert.Empty(t, v.Filtered())
	assert.Empty(t, v.Page())
	assert.Equal(t, 0, v.TotalPages())
}
