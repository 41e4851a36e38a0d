package filters

import "github.com/cyrano21/ewebsite2-sub000/models"

// Page is one slice of a filtered result plus the display metadata the
// storefront shows ("Showing 13 to 24 of 42 results").
type Page struct {
	Items      []models.Product
	TotalCount int
	PageCount  int
	FirstIndex int
	LastIndex  int
}

// Paginate slices the ordered result for a 1-based page number. It does not
// clamp an out-of-range page: that yields an empty slice with FirstIndex 0.
// Keeping criteria in range is the job of the reset-page-on-filter-change
// rule, not the paginator.
func Paginate(results []models.Product, page, pageSize int) Page {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = PageSize
	}
	total := len(results)
	p := Page{
		TotalCount: total,
		PageCount:  (total + pageSize - 1) / pageSize,
	}

	start := (page - 1) * pageSize
	end := page * pageSize
	if end > total {
		end = total
	}
	if start < total {
		p.Items = results[start:end]
	} else {
		p.Items = []models.Product{}
	}

	if len(p.Items) > 0 {
		p.FirstIndex = start + 1
	}
	p.LastIndex = end
	return p
}
