package catalog

import "github.com/Desertfoxking25/szakdoga-viragweb/models"

// DefaultPageSize is the fixed storefront page size.
const DefaultPageSize = 8

// Pager slices a filtered product list into fixed-size pages and derives
// the page-window navigation metadata. CurrentPage is 1-indexed.
type Pager struct {
	PageSize    int
	CurrentPage int
}

func NewPager() Pager {
	return Pager{PageSize: DefaultPageSize, CurrentPage: 1}
}

// TotalPages is ceil(total / PageSize).
func (pg Pager) TotalPages(total int) int {
	if total <= 0 {
		return 0
	}
	return (total + pg.PageSize - 1) / pg.PageSize
}

// Slice returns the current page of the filtered list: items
// [PageSize*(CurrentPage-1), PageSize*CurrentPage). The last page may be
// short; a page past the end is empty, not clamped.
func (pg Pager) Slice(filtered []models.Product) []models.Product {
	start := pg.PageSize * (pg.CurrentPage - 1)
	if start < 0 || start >= len(filtered) {
		return []models.Product{}
	}
	end := start + pg.PageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}

// VisiblePages is the bounded page-number window the UI renders: every
// page when there are at most three, otherwise a sliding window of the
// first two, the last two, or the current page with its neighbours.
func (pg Pager) VisiblePages(totalPages int) []int {
	if totalPages <= 3 {
		pages := make([]int, 0, totalPages)
		for p := 1; p <= totalPages; p++ {
			pages = append(pages, p)
		}
		return pages
	}

	switch pg.CurrentPage {
	case 1:
		return []int{1, 2}
	case totalPages:
		return []int{totalPages - 1, totalPages}
	default:
		return []int{pg.CurrentPage - 1, pg.CurrentPage, pg.CurrentPage + 1}
	}
}
