package catalog

import (
	"strings"

	"github.com/Desertfoxking25/szakdoga-viragweb/models"
)

// Default slider bounds. Earlier revisions of the storefront disagreed on
// the upper bound (10000 / 20000 / 30000 HUF); 10000 is the canonical
// default now.
const (
	DefaultMinPrice = 0
	DefaultMaxPrice = 10000
)

// PriceRange is a closed interval, inclusive on both ends.
type PriceRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

func (r PriceRange) Contains(price int) bool {
	return price >= r.Min && price <= r.Max
}

// PricePreset is a named, checkable price range. Checked presets replace
// the slider range: the product matches if it falls in ANY checked
// preset's interval.
type PricePreset struct {
	Name    string     `json:"name"`
	Range   PriceRange `json:"range"`
	Checked bool       `json:"checked"`
}

// DefaultPresets returns the checkable price bands offered next to the
// slider, all unchecked.
func DefaultPresets() []PricePreset {
	return []PricePreset{
		{Name: "0 - 2000 Ft", Range: PriceRange{Min: 0, Max: 2000}},
		{Name: "2000 - 5000 Ft", Range: PriceRange{Min: 2000, Max: 5000}},
		{Name: "5000 - 10000 Ft", Range: PriceRange{Min: 5000, Max: 10000}},
	}
}

// FilterState holds the active predicate inputs of one catalog view.
// Mutation goes through the setters so normalization happens in one
// place; zero value means "no filter" for every predicate.
type FilterState struct {
	category     string
	keywords     []string
	salesOnly    bool
	featuredOnly bool
	priceRange   PriceRange
	presets      []PricePreset
}

// NewFilterState returns a state with every predicate inactive and the
// slider at its default bounds.
func NewFilterState() *FilterState {
	return &FilterState{
		priceRange: PriceRange{Min: DefaultMinPrice, Max: DefaultMaxPrice},
	}
}

// SetCategory sets the single optional category filter. Empty clears it.
func (f *FilterState) SetCategory(category string) {
	f.category = strings.TrimSpace(category)
}

// SetKeywords parses a raw search string into the keyword list:
// whitespace-separated, lowercased, trimmed, de-duplicated.
func (f *FilterState) SetKeywords(raw string) {
	f.keywords = f.keywords[:0]
	seen := make(map[string]bool)
	for _, word := range strings.Fields(strings.ToLower(raw)) {
		if !seen[word] {
			seen[word] = true
			f.keywords = append(f.keywords, word)
		}
	}
}

func (f *FilterState) SetSalesOnly(on bool)    { f.salesOnly = on }
func (f *FilterState) SetFeaturedOnly(on bool) { f.featuredOnly = on }

// SetPriceRange updates the slider interval. If min exceeds max, max is
// raised to min; it is never clamped the other way.
func (f *FilterState) SetPriceRange(min, max int) {
	if min > max {
		max = min
	}
	f.priceRange = PriceRange{Min: min, Max: max}
}

// SetPresets replaces the preset list wholesale.
func (f *FilterState) SetPresets(presets []PricePreset) {
	f.presets = append(f.presets[:0], presets...)
}

// TogglePreset checks or unchecks the named preset. Unknown names are a
// no-op.
func (f *FilterState) TogglePreset(name string, checked bool) {
	for i := range f.presets {
		if f.presets[i].Name == name {
			f.presets[i].Checked = checked
			return
		}
	}
}

func (f *FilterState) checkedPresets() []PricePreset {
	var checked []PricePreset
	for _, p := range f.presets {
		if p.Checked {
			checked = append(checked, p)
		}
	}
	return checked
}

// ─────────────────────────────────────────────────────────────
// Predicates
// ─────────────────────────────────────────────────────────────

// matchesCategory: no filter matches everything; otherwise substring
// match (case-insensitive) against any of the product's category labels,
// so the "plant" filter also covers grouped names like "Houseplants".
func (f *FilterState) matchesCategory(p *models.Product) bool {
	if f.category == "" {
		return true
	}
	want := strings.ToLower(f.category)
	for _, cat := range p.Category {
		if strings.Contains(strings.ToLower(cat), want) {
			return true
		}
	}
	return false
}

// matchesKeywords: OR across keywords — one hit on the name or any
// category label includes the product.
func (f *FilterState) matchesKeywords(p *models.Product) bool {
	if len(f.keywords) == 0 {
		return true
	}
	name := strings.ToLower(p.Name)
	for _, kw := range f.keywords {
		if strings.Contains(name, kw) {
			return true
		}
		for _, cat := range p.Category {
			if strings.Contains(strings.ToLower(cat), kw) {
				return true
			}
		}
	}
	return false
}

func (f *FilterState) matchesFlags(p *models.Product) bool {
	if f.salesOnly && !p.Sales {
		return false
	}
	if f.featuredOnly && !p.Featured {
		return false
	}
	return true
}

// matchesPrice: the union of checked presets replaces the slider range
// while any preset is checked.
func (f *FilterState) matchesPrice(p *models.Product) bool {
	if checked := f.checkedPresets(); len(checked) > 0 {
		for _, preset := range checked {
			if preset.Range.Contains(p.Price) {
				return true
			}
		}
		return false
	}
	return f.priceRange.Contains(p.Price)
}

// Matches is the conjunction of all active predicates.
func (f *FilterState) Matches(p *models.Product) bool {
	return f.matchesCategory(p) &&
		f.matchesKeywords(p) &&
		f.matchesFlags(p) &&
		f.matchesPrice(p)
}

// Apply filters the catalog snapshot into a fresh slice, preserving the
// snapshot's relative order. The input is never mutated.
func (f *FilterState) Apply(products []models.Product) []models.Product {
	filtered := make([]models.Product, 0, len(products))
	for i := range products {
		if f.Matches(&products[i]) {
			filtered = append(filtered, products[i])
		}
	}
	return filtered
}
