package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Desertfoxking25/szakdoga-viragweb/models"
)

func makeCatalog(n int) []models.Product {
	products := make([]models.Product, n)
	for i := range products {
		products[i] = plant(fmt.Sprintf("p%02d", i), 1000)
	}
	return products
}

func TestPager_Slice(t *testing.T) {
	filtered := makeCatalog(20)

	t.Run("twenty products over page size eight give three pages", func(t *testing.T) {
		pg := NewPager()
		assert.Equal(t, 3, pg.TotalPages(len(filtered)))
	})

	t.Run("page two is items 8..15", func(t *testing.T) {
		pg := Pager{PageSize: 8, CurrentPage: 2}
		got := pg.Slice(filtered)
		require.Len(t, got, 8)
		assert.Equal(t, "p08", got[0].Name)
		assert.Equal(t, "p15", got[7].Name)
	})

	t.Run("last page is short", func(t *testing.T) {
		pg := Pager{PageSize: 8, CurrentPage: 3}
		got := pg.Slice(filtered)
		require.Len(t, got, 4)
		assert.Equal(t, "p16", got[0].Name)
		assert.Equal(t, "p19", got[3].Name)
	})

	t.Run("page past the end is empty, not clamped", func(t *testing.T) {
		pg := Pager{PageSize: 8, CurrentPage: 4}
		assert.Empty(t, pg.Slice(filtered))
	})

	t.Run("empty filtered list", func(t *testing.T) {
		pg := NewPager()
		assert.Empty(t, pg.Slice(nil))
		assert.Equal(t, 0, pg.TotalPages(0))
	})
}

func TestPager_VisiblePages(t *testing.T) {
	cases := []struct {
		totalPages  int
		currentPage int
		want        []int
	}{
		{totalPages: 5, currentPage: 1, want: []int{1, 2}},
		{totalPages: 5, currentPage: 3, want: []int{2, 3, 4}},
		{totalPages: 5, currentPage: 5, want: []int{4, 5}},
		{totalPages: 2, currentPage: 1, want: []int{1, 2}},
		{totalPages: 2, currentPage: 2, want: []int{1, 2}},
		{totalPages: 3, currentPage: 2, want: []int{1, 2, 3}},
		{totalPages: 1, currentPage: 1, want: []int{1}},
		{totalPages: 0, currentPage: 1, want: []int{}},
		{totalPages: 4, currentPage: 2, want: []int{1, 2, 3}},
		{totalPages: 4, currentPage: 4, want: []int{3, 4}},
	}

	for _, tc := range cases {
		name := fmt.Sprintf("total=%d current=%d", tc.totalPages, tc.currentPage)
		t.Run(name, func(t *testing.T) {
			pg := Pager{PageSize: 8, CurrentPage: tc.currentPage}
			assert.Equal(t, tc.want, pg.VisiblePages(tc.totalPages))
		})
	}
}
