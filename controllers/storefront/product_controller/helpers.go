package product_controller

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Desertfoxking25/szakdoga-viragweb/catalog"
	"github.com/Desertfoxking25/szakdoga-viragweb/config"
)

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

// buildViewFromQuery assembles one catalog view from the request's query
// string. Filters are applied before the page number on purpose: every
// filter mutation resets the view to page 1, and only the final GoToPage
// moves it.
func buildViewFromQuery(c *gin.Context) *catalog.View {
	view := catalog.NewView(config.Catalog.Snapshot())

	if q := c.Query("q"); q != "" {
		view.SetKeywords(q)
	}
	if category := c.Query("category"); category != "" {
		view.SetCategory(category)
	}
	if c.Query("sales") == "true" {
		view.SetSalesOnly(true)
	}
	if c.Query("featured") == "true" {
		view.SetFeaturedOnly(true)
	}

	// Slider range, both ends optional
	minPrice, maxPrice := catalog.DefaultMinPrice, catalog.DefaultMaxPrice
	hasRange := false
	if raw := c.Query("minPrice"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			minPrice = v
			hasRange = true
		}
	}
	if raw := c.Query("maxPrice"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			maxPrice = v
			hasRange = true
		}
	}
	if hasRange {
		view.SetPriceRange(minPrice, maxPrice)
	}

	// Checked price presets override the slider while any is present
	if presets := parsePresets(c.QueryArray("preset")); len(presets) > 0 {
		view.SetPresets(presets)
	}

	if page, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
		view.GoToPage(page)
	}

	return view
}

// parsePresets turns repeated "min-max" query values into checked price
// presets. Malformed values are dropped.
func parsePresets(raw []string) []catalog.PricePreset {
	presets := make([]catalog.PricePreset, 0, len(raw))
	for _, value := range raw {
		parts := strings.SplitN(value, "-", 2)
		if len(parts) != 2 {
			continue
		}
		minPrice, errMin := strconv.Atoi(strings.TrimSpace(parts[0]))
		maxPrice, errMax := strconv.Atoi(strings.TrimSpace(parts[1]))
		if errMin != nil || errMax != nil {
			continue
		}
		presets = append(presets, catalog.PricePreset{
			Name:    value,
			Range:   catalog.PriceRange{Min: minPrice, Max: maxPrice},
			Checked: true,
		})
	}
	return presets
}
