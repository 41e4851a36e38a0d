// models/filter_models.go
package models

// FilterMetadata represents all filter data for the storefront
type FilterMetadata struct {
	Availability *AvailabilityData `json:"availability"`
	Facets       []FacetData       `json:"facets"`
	Categories   []CategoryData    `json:"categories"`
	Tags         []string          `json:"tags"`
	PriceRange   *PriceRangeData   `json:"priceRange"`
}

// AvailabilityData represents product availability counts
type AvailabilityData struct {
	InStock    int `json:"inStock"`
	PreBook    int `json:"preBook"`
	OutOfStock int `json:"outOfStock"`
}

// FacetData represents one filterable dimension with per-value counts
type FacetData struct {
	Key    string         `json:"key"`
	Label  string         `json:"label"`
	Multi  bool           `json:"multi"`
	Values []FilterOption `json:"values"`
}

// FilterOption represents a single selectable filter value
type FilterOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// CategoryData represents a category entry in the filter metadata
type CategoryData struct {
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	ProductCount int    `json:"product_count"`
}

// PriceRangeData represents the minimum and maximum price in the store
type PriceRangeData struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}
