package catalog

import "github.com/Desertfoxking25/szakdoga-viragweb/models"

// View binds one catalog snapshot, one FilterState and one Pager into a
// single view session. Every filter mutation and every snapshot refresh
// re-runs the evaluator synchronously and resets the page to 1: a filter
// change is a new query, the old pagination position is discarded on
// purpose. Only direct navigation moves the page.
//
// A View has a single mutator (the request or UI session that owns it)
// and needs no locking of its own.
type View struct {
	snapshot []models.Product
	filter   *FilterState
	pager    Pager
	filtered []models.Product
}

func NewView(snapshot []models.Product) *View {
	v := &View{
		snapshot: snapshot,
		filter:   NewFilterState(),
		pager:    NewPager(),
	}
	v.recompute()
	return v
}

// recompute re-runs the filter conjunction over the snapshot and resets
// the pagination position.
func (v *View) recompute() {
	v.filtered = v.filter.Apply(v.snapshot)
	v.pager.CurrentPage = 1
}

// SetSnapshot replaces the catalog snapshot (store refresh).
func (v *View) SetSnapshot(snapshot []models.Product) {
	v.snapshot = snapshot
	v.recompute()
}

func (v *View) SetCategory(category string) {
	v.filter.SetCategory(category)
	v.recompute()
}

func (v *View) SetKeywords(raw string) {
	v.filter.SetKeywords(raw)
	v.recompute()
}

func (v *View) SetSalesOnly(on bool) {
	v.filter.SetSalesOnly(on)
	v.recompute()
}

func (v *View) SetFeaturedOnly(on bool) {
	v.filter.SetFeaturedOnly(on)
	v.recompute()
}

func (v *View) SetPriceRange(min, max int) {
	v.filter.SetPriceRange(min, max)
	v.recompute()
}

func (v *View) SetPresets(presets []PricePreset) {
	v.filter.SetPresets(presets)
	v.recompute()
}

func (v *View) TogglePreset(name string, checked bool) {
	v.filter.TogglePreset(name, checked)
	v.recompute()
}

// GoToPage is direct user navigation; it does not re-filter and does not
// clamp past the last page.
func (v *View) GoToPage(page int) {
	if page < 1 {
		page = 1
	}
	v.pager.CurrentPage = page
}

// Filtered returns the full filtered list in catalog order.
func (v *View) Filtered() []models.Product {
	return v.filtered
}

// Page returns the visible slice of the filtered list.
func (v *View) Page() []models.Product {
	return v.pager.Slice(v.filtered)
}

func (v *View) CurrentPage() int {
	return v.pager.CurrentPage
}

func (v *View) TotalPages() int {
	return v.pager.TotalPages(len(v.filtered))
}

// Meta assembles the pagination envelope for API responses.
func (v *View) Meta() *models.Pagination {
	totalPages := v.TotalPages()
	return &models.Pagination{
		Page:         v.pager.CurrentPage,
		Limit:        v.pager.PageSize,
		Total:        len(v.filtered),
		TotalPages:   totalPages,
		VisiblePages: v.pager.VisiblePages(totalPages),
	}
}
