package models

// CategoryRef is the storefront view of a category: a display name plus the
// URL-safe slug used for category navigation. It is the shape returned by the
// external category provider and by the local derivation fallback.
type CategoryRef struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// CategoryWithCount extends CategoryRef with the number of products currently
// in the category, for the storefront category list.
type CategoryWithCount struct {
	CategoryRef
	ProductCount int `json:"product_count"`
}
