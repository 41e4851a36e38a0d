package filters

import (
	"math"
	"sort"
	"strings"

	"github.com/cyrano21/ewebsite2-sub000/models"
)

// Apply runs the full filter chain over a catalog snapshot and returns the
// filtered, sorted products. It is a pure function: the input slice and the
// criteria are never mutated, and with the default sort the catalog order is
// preserved. Predicates are conjunctive; their order only matters for early
// exit, not for the result set.
func Apply(products []models.Product, c Criteria) []models.Product {
	result := make([]models.Product, 0, len(products))
	for i := range products {
		if matches(&products[i], c) {
			result = append(result, products[i])
		}
	}
	sortProducts(result, c.Sort)
	return result
}

func matches(p *models.Product, c Criteria) bool {
	if c.Category != "" && c.Category != CategoryAll && p.Category != c.Category {
		return false
	}
	if c.Tag != "" && !containsString(p.Tags, c.Tag) {
		return false
	}
	if c.Color != "" && !containsString(p.Colors, c.Color) {
		return false
	}
	if c.Size != "" && !containsString(p.Sizes, c.Size) {
		return false
	}
	if c.Availability != "" && p.Availability != c.Availability {
		return false
	}
	if c.Brand != "" && p.Brand != c.Brand {
		return false
	}
	if c.DisplayType != "" && p.DisplayType != c.DisplayType {
		return false
	}
	if c.Campaign != "" && !containsString(p.Campaign, c.Campaign) {
		return false
	}
	if c.Warranty != "" && p.Warranty != c.Warranty {
		return false
	}
	if c.WarrantyType != "" && !containsString(p.WarrantyType, c.WarrantyType) {
		return false
	}
	if c.Certification != "" && !containsString(p.Certification, c.Certification) {
		return false
	}
	// Delivery is stricter than the other multi-valued facets: every selected
	// option must be offered by the product, not just one of them.
	for _, want := range c.Delivery {
		if !containsString(p.Delivery, want) {
			return false
		}
	}
	if c.Rating > 0 && math.Round(p.Rating) < float64(c.Rating) {
		return false
	}
	if c.SearchTerm != "" && !matchesSearch(p, c.SearchTerm) {
		return false
	}
	ep := p.EffectivePrice()
	if ep < float64(c.PriceRange.Min) || ep > float64(c.PriceRange.Max) {
		return false
	}
	return true
}

// matchesSearch does a case-insensitive substring match against name,
// description, category and tags; a hit on any one field suffices.
func matchesSearch(p *models.Product, term string) bool {
	needle := strings.ToLower(term)
	if strings.Contains(strings.ToLower(p.Name), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Category), needle) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

// containsString reports membership; a nil slice (malformed record with a
// missing collection field) simply never matches.
func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// sortProducts orders items in place according to opt. All sorts are stable
// so ties preserve catalog order. The "newest" sort is skipped entirely when
// the lead record carries no usable timestamp; callers relying on recency
// ordering for undated catalogs get catalog order instead of an error.
func sortProducts(items []models.Product, opt SortOption) {
	if len(items) == 0 {
		return
	}
	switch opt {
	case SortPriceAsc:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].EffectivePrice() < items[j].EffectivePrice()
		})
	case SortPriceDesc:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].EffectivePrice() > items[j].EffectivePrice()
		})
	case SortPopularity:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Popularity > items[j].Popularity
		})
	case SortRating:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Rating > items[j].Rating
		})
	case SortNewest:
		if items[0].CreatedAt.IsZero() {
			return
		}
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		})
	}
}
