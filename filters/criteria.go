package filters

import (
	"sort"
	"strconv"
)

// CategoryAll is the sentinel meaning "no category filter".
const CategoryAll = "All"

// SortOption selects the comparator applied after filtering.
type SortOption string

const (
	SortDefault    SortOption = "default"
	SortNewest     SortOption = "newest"
	SortPopularity SortOption = "popularity"
	SortRating     SortOption = "rating"
	SortPriceAsc   SortOption = "price-asc"
	SortPriceDesc  SortOption = "price-desc"
)

var sortOptions = []SortOption{
	SortDefault, SortNewest, SortPopularity, SortRating, SortPriceAsc, SortPriceDesc,
}

// PriceRange bounds the effective price, inclusive on both ends.
type PriceRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Criteria is one complete query state: every active facet selection plus
// search, price bounds, sort order and page. It is constructed by decoding
// the query string, mutated only through the toggle/set operations below
// (each returns a new value), and read-only input to the pipeline.
type Criteria struct {
	Category      string     `json:"category"`
	Tag           string     `json:"tag,omitempty"`
	SearchTerm    string     `json:"search,omitempty"`
	Color         string     `json:"color,omitempty"`
	Size          string     `json:"size,omitempty"`
	Availability  string     `json:"availability,omitempty"`
	Brand         string     `json:"brand,omitempty"`
	DisplayType   string     `json:"display_type,omitempty"`
	Delivery      []string   `json:"delivery,omitempty"`
	Campaign      string     `json:"campaign,omitempty"`
	Warranty      string     `json:"warranty,omitempty"`
	WarrantyType  string     `json:"warranty_type,omitempty"`
	Certification string     `json:"certification,omitempty"`
	Rating        int        `json:"rating,omitempty"`
	PriceRange    PriceRange `json:"price_range"`
	Sort          SortOption `json:"sort"`
	Page          int        `json:"page"`
}

// DefaultCriteria is the canonical "no filters" state for a catalog whose
// maximum effective price is catalogMaxPrice. It encodes to an empty query.
func DefaultCriteria(catalogMaxPrice int) Criteria {
	return Criteria{
		Category:   CategoryAll,
		PriceRange: PriceRange{Min: 0, Max: catalogMaxPrice},
		Sort:       SortDefault,
		Page:       1,
	}
}

// toggleSingleValue implements toggle semantics for single-valued facets:
// clicking the active value clears it, anything else selects it.
func toggleSingleValue(current, clicked string) string {
	if current == clicked {
		return ""
	}
	return clicked
}

// toggleSetMember adds or removes clicked from the set, keeping it sorted so
// the encoded form is canonical. Returns nil when the set empties.
func toggleSetMember(set []string, clicked string) []string {
	next := make([]string, 0, len(set)+1)
	removed := false
	for _, v := range set {
		if v == clicked {
			removed = true
			continue
		}
		next = append(next, v)
	}
	if !removed {
		next = append(next, clicked)
	}
	if len(next) == 0 {
		return nil
	}
	sort.Strings(next)
	return next
}

// Toggled returns the criteria after toggling one facet value, addressed by
// its query key. Every toggle resets the page to 1 so a narrowed result set
// never strands the user on an out-of-range page. Unknown keys are a no-op.
func (c Criteria) Toggled(key, value string) Criteria {
	switch key {
	case "tag":
		c.Tag = toggleSingleValue(c.Tag, value)
	case "color":
		c.Color = toggleSingleValue(c.Color, value)
	case "size":
		c.Size = toggleSingleValue(c.Size, value)
	case "availability":
		c.Availability = toggleSingleValue(c.Availability, value)
	case "brand":
		c.Brand = toggleSingleValue(c.Brand, value)
	case "displayType":
		c.DisplayType = toggleSingleValue(c.DisplayType, value)
	case "delivery":
		c.Delivery = toggleSetMember(c.Delivery, value)
	case "campaign":
		c.Campaign = toggleSingleValue(c.Campaign, value)
	case "warranty":
		c.Warranty = toggleSingleValue(c.Warranty, value)
	case "warrantyType":
		c.WarrantyType = toggleSingleValue(c.WarrantyType, value)
	case "certification":
		c.Certification = toggleSingleValue(c.Certification, value)
	case "rating":
		floor, err := strconv.Atoi(value)
		if err != nil || floor < 1 || floor > 5 {
			return c
		}
		if c.Rating == floor {
			c.Rating = 0
		} else {
			c.Rating = floor
		}
	default:
		return c
	}
	c.Page = 1
	return c
}

// WithCategory selects a category (or the "All" sentinel) and resets paging.
func (c Criteria) WithCategory(category string) Criteria {
	if category == "" {
		category = CategoryAll
	}
	c.Category = category
	c.Page = 1
	return c
}

// WithSearch replaces the free-text search term and resets paging.
func (c Criteria) WithSearch(term string) Criteria {
	c.SearchTerm = term
	c.Page = 1
	return c
}

// WithSort replaces the sort option and resets paging. Unknown options fall
// back to the default order.
func (c Criteria) WithSort(opt SortOption) Criteria {
	c.Sort = SortDefault
	for _, known := range sortOptions {
		if known == opt {
			c.Sort = opt
			break
		}
	}
	c.Page = 1
	return c
}

// WithPriceRange replaces the price bounds, clamped to [0, catalogMaxPrice]
// with min <= max, and resets paging.
func (c Criteria) WithPriceRange(min, max, catalogMaxPrice int) Criteria {
	if max < 0 || max > catalogMaxPrice {
		max = catalogMaxPrice
	}
	if min < 0 || min > max {
		min = 0
	}
	c.PriceRange = PriceRange{Min: min, Max: max}
	c.Page = 1
	return c
}

// WithPage moves to another page without touching any filter. This is the
// one mutation that does not reset paging.
func (c Criteria) WithPage(page int) Criteria {
	if page < 1 {
		page = 1
	}
	c.Page = page
	return c
}

// Reset returns the fully-default criteria, equivalent to navigating to the
// bare catalog URL.
func (c Criteria) Reset(catalogMaxPrice int) Criteria {
	return DefaultCriteria(catalogMaxPrice)
}
