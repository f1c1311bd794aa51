package filter_controller

import (
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Desertfoxking25/szakdoga-viragweb/catalog"
	"github.com/Desertfoxking25/szakdoga-viragweb/config"
	"github.com/Desertfoxking25/szakdoga-viragweb/models"
)

type filterMetadata struct {
	Categories []string              `json:"categories"`
	PriceMin   int                   `json:"priceMin"`
	PriceMax   int                   `json:"priceMax"`
	Presets    []catalog.PricePreset `json:"presets"`
}

// GetFilterMetadata godoc
// @Summary Get filter metadata
// @Description Returns the distinct category labels, the slider bounds and the checkable price presets for the storefront filter panel.
// @Tags Storefront - Filters
// @Produce json
// @Success 200 {object} models.ApiResponse "Filter metadata fetched successfully"
// @Router /store/filters/metadata [get]
func GetFilterMetadata(c *gin.Context) {
	snapshot := config.Catalog.Snapshot()

	// Distinct category labels, case-insensitive, sorted for stable output
	seen := make(map[string]string)
	for _, product := range snapshot {
		for _, label := range product.Category {
			key := strings.ToLower(label)
			if _, ok := seen[key]; !ok {
				seen[key] = label
			}
		}
	}
	categories := make([]string, 0, len(seen))
	for _, label := range seen {
		categories = append(categories, label)
	}
	sort.Strings(categories)

	meta := filterMetadata{
		Categories: categories,
		PriceMin:   catalog.DefaultMinPrice,
		PriceMax:   catalog.DefaultMaxPrice,
		Presets:    catalog.DefaultPresets(),
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched successfully", meta))
}
