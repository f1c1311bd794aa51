package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Desertfoxking25/szakdoga-viragweb/models"
)

func plant(name string, price int, categories ...string) models.Product {
	return models.Product{
		Name:     name,
		Price:    price,
		Category: models.CategoryList(categories),
	}
}

func names(products []models.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Name)
	}
	return out
}

func TestFilterState_Keywords(t *testing.T) {
	catalogList := []models.Product{
		plant("Aloe Vera", 2500, "Succulent"),
		plant("Basil", 900, "Herb"),
		plant("Orchid", 6500, "Flowering"),
	}

	t.Run("OR semantics across keywords", func(t *testing.T) {
		f := NewFilterState()
		f.SetKeywords("basil vera")

		got := f.Apply(catalogList)
		assert.Equal(t, []string{"Aloe Vera", "Basil"}, names(got))
	})

	t.Run("keyword matches category labels too", func(t *testing.T) {
		f := NewFilterState()
		f.SetKeywords("herb")

		got := f.Apply(catalogList)
		assert.Equal(t, []string{"Basil"}, names(got))
	})

	t.Run("keywords are lowercased and de-duplicated", func(t *testing.T) {
		f := NewFilterState()
		f.SetKeywords("  BASIL   basil ")

		require.Len(t, f.keywords, 1)
		assert.Equal(t, "basil", f.keywords[0])
	})

	t.Run("empty keyword list matches everything", func(t *testing.T) {
		f := NewFilterState()
		f.SetKeywords("")

		assert.Len(t, f.Apply(catalogList), len(catalogList))
	})
}

func TestFilterState_Category(t *testing.T) {
	catalogList := []models.Product{
		plant("Monstera", 8900, "Houseplants"),
		plant("Tulip", 1200, "Cut flowers"),
	}

	t.Run("substring match against category labels", func(t *testing.T) {
		f := NewFilterState()
		f.SetCategory("plant")

		got := f.Apply(catalogList)
		assert.Equal(t, []string{"Monstera"}, names(got))
	})

	t.Run("match is case-insensitive", func(t *testing.T) {
		f := NewFilterState()
		f.SetCategory("CUT FLOWERS")

		got := f.Apply(catalogList)
		assert.Equal(t, []string{"Tulip"}, names(got))
	})

	t.Run("no matching category yields empty result, not an error", func(t *testing.T) {
		f := NewFilterState()
		f.SetCategory("bonsai")

		assert.Empty(t, f.Apply(catalogList))
	})

	t.Run("empty category set never matches an active filter", func(t *testing.T) {
		f := NewFilterState()
		f.SetCategory("plant")

		got := f.Apply([]models.Product{plant("Mystery", 500)})
		assert.Empty(t, got)

		f.SetCategory("")
		got = f.Apply([]models.Product{plant("Mystery", 500)})
		assert.Len(t, got, 1)
	})
}

func TestFilterState_Flags(t *testing.T) {
	onSale := plant("Rose bouquet", 4500, "Cut flowers")
	onSale.Sales = true
	highlight := plant("Ficus", 12000, "Houseplants")
	highlight.Featured = true
	catalogList := []models.Product{onSale, highlight, plant("Cactus", 1500, "Succulent")}

	t.Run("salesOnly keeps discounted products", func(t *testing.T) {
		f := NewFilterState()
		f.SetPriceRange(0, 20000)
		f.SetSalesOnly(true)

		assert.Equal(t, []string{"Rose bouquet"}, names(f.Apply(catalogList)))
	})

	t.Run("featuredOnly keeps highlighted products", func(t *testing.T) {
		f := NewFilterState()
		f.SetPriceRange(0, 20000)
		f.SetFeaturedOnly(true)

		assert.Equal(t, []string{"Ficus"}, names(f.Apply(catalogList)))
	})

	t.Run("flags off keep everything", func(t *testing.T) {
		f := NewFilterState()
		f.SetPriceRange(0, 20000)

		assert.Len(t, f.Apply(catalogList), 3)
	})
}

func TestFilterState_Price(t *testing.T) {
	catalogList := []models.Product{
		plant("Cheap", 1500),
		plant("Mid", 3000),
		plant("Dear", 7000),
	}

	t.Run("slider range is inclusive on both ends", func(t *testing.T) {
		f := NewFilterState()
		f.SetPriceRange(1500, 3000)

		assert.Equal(t, []string{"Cheap", "Mid"}, names(f.Apply(catalogList)))
	})

	t.Run("min above max raises max to min", func(t *testing.T) {
		f := NewFilterState()
		f.SetPriceRange(5000, 100)

		assert.Equal(t, PriceRange{Min: 5000, Max: 5000}, f.priceRange)
	})

	t.Run("checked preset union replaces the slider range", func(t *testing.T) {
		f := NewFilterState()
		f.SetPriceRange(2000, 4999)
		f.SetPresets([]PricePreset{
			{Name: "budget", Range: PriceRange{Min: 0, Max: 2000}, Checked: true},
			{Name: "premium", Range: PriceRange{Min: 5000, Max: 10000}, Checked: true},
		})

		// 1500 falls in the budget preset, 3000 only in the ignored slider.
		assert.Equal(t, []string{"Cheap", "Dear"}, names(f.Apply(catalogList)))
	})

	t.Run("unchecked presets leave the slider in charge", func(t *testing.T) {
		f := NewFilterState()
		f.SetPriceRange(2000, 4999)
		f.SetPresets([]PricePreset{
			{Name: "budget", Range: PriceRange{Min: 0, Max: 2000}},
		})

		assert.Equal(t, []string{"Mid"}, names(f.Apply(catalogList)))
	})

	t.Run("toggling a preset on and off", func(t *testing.T) {
		f := NewFilterState()
		f.SetPriceRange(2000, 4999)
		f.SetPresets([]PricePreset{
			{Name: "budget", Range: PriceRange{Min: 0, Max: 2000}},
		})

		f.TogglePreset("budget", true)
		assert.Equal(t, []string{"Cheap"}, names(f.Apply(catalogList)))

		f.TogglePreset("budget", false)
		assert.Equal(t, []string{"Mid"}, names(f.Apply(catalogList)))
	})
}

func TestFilterState_Apply(t *testing.T) {
	catalogList := []models.Product{
		plant("Zinnia", 700, "Cut flowers"),
		plant("Aloe Vera", 2500, "Succulent"),
		plant("Yucca", 9000, "Houseplants"),
		plant("Azalea", 3500, "Flowering"),
	}

	t.Run("filtering preserves catalog order", func(t *testing.T) {
		f := NewFilterState()
		f.SetKeywords("a")

		got := names(f.Apply(catalogList))
		assert.Equal(t, []string{"Zinnia", "Aloe Vera", "Yucca", "Azalea"}, got)
	})

	t.Run("applying twice is idempotent", func(t *testing.T) {
		f := NewFilterState()
		f.SetKeywords("aloe azalea")

		once := f.Apply(catalogList)
		twice := f.Apply(catalogList)
		assert.Equal(t, once, twice)
	})

	t.Run("predicates compose with AND", func(t *testing.T) {
		f := NewFilterState()
		f.SetCategory("flower")
		f.SetKeywords("azalea zinnia")
		f.SetPriceRange(1000, 10000)

		// Zinnia matches category and keyword but fails the price range.
		got := names(f.Apply(catalogList))
		assert.Equal(t, []string{"Azalea"}, got)
	})

	t.Run("empty catalog yields empty result", func(t *testing.T) {
		f := NewFilterState()
		assert.Empty(t, f.Apply(nil))
	})

	t.Run("source slice is not mutated", func(t *testing.T) {
		f := NewFilterState()
		f.SetKeywords("yucca")

		before := names(catalogList)
		_ = f.Apply(catalogList)
		assert.Equal(t, before, names(catalogList))
	})
}
