package filters

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// PageSize is the number of products per page, shared by the codec, the
// paginator and the storefront controllers.
const PageSize = 12

// Encode serializes criteria into the flat query representation. Fields at
// their default value are omitted, so the canonical "no filters" state
// encodes to an empty query and shared URLs stay short and stable.
func Encode(c Criteria, catalogMaxPrice int) url.Values {
	q := url.Values{}

	if c.Category != "" && c.Category != CategoryAll {
		q.Set("category", c.Category)
	}
	if c.Tag != "" {
		q.Set("tag", c.Tag)
	}
	if c.SearchTerm != "" {
		q.Set("search", c.SearchTerm)
	}
	if c.Color != "" {
		q.Set("color", c.Color)
	}
	if c.Size != "" {
		q.Set("size", c.Size)
	}
	if c.Availability != "" {
		q.Set("availability", c.Availability)
	}
	if c.Brand != "" {
		q.Set("brand", c.Brand)
	}
	if c.DisplayType != "" {
		q.Set("displayType", c.DisplayType)
	}
	if len(c.Delivery) > 0 {
		q.Set("delivery", strings.Join(c.Delivery, ","))
	}
	if c.Campaign != "" {
		q.Set("campaign", c.Campaign)
	}
	if c.Warranty != "" {
		q.Set("warranty", c.Warranty)
	}
	if c.WarrantyType != "" {
		q.Set("warrantyType", c.WarrantyType)
	}
	if c.Certification != "" {
		q.Set("certification", c.Certification)
	}
	if c.Rating != 0 {
		q.Set("rating", strconv.Itoa(c.Rating))
	}
	if c.PriceRange.Min != 0 {
		q.Set("minp", strconv.Itoa(c.PriceRange.Min))
	}
	if c.PriceRange.Max != catalogMaxPrice {
		q.Set("maxp", strconv.Itoa(c.PriceRange.Max))
	}
	if c.Sort != "" && c.Sort != SortDefault {
		q.Set("sort", string(c.Sort))
	}
	if c.Page > 1 {
		q.Set("page", strconv.Itoa(c.Page))
	}

	return q
}

// Decode is the exact inverse of Encode: missing keys resolve to defaults and
// malformed values (bad numbers, unknown enum members) fall back silently:
// a bookmarked URL with junk in it must never error, only lose the junk.
func Decode(q url.Values, catalogMaxPrice int) Criteria {
	c := DefaultCriteria(catalogMaxPrice)

	if v := q.Get("category"); v != "" {
		c.Category = v
	}
	c.Tag = q.Get("tag")
	c.SearchTerm = q.Get("search")
	c.Color = facetValue("color", q.Get("color"))
	c.Size = facetValue("size", q.Get("size"))
	c.Availability = facetValue("availability", q.Get("availability"))
	c.Brand = facetValue("brand", q.Get("brand"))
	c.DisplayType = facetValue("displayType", q.Get("displayType"))
	c.Delivery = decodeDelivery(q.Get("delivery"))
	c.Campaign = facetValue("campaign", q.Get("campaign"))
	c.Warranty = facetValue("warranty", q.Get("warranty"))
	c.WarrantyType = facetValue("warrantyType", q.Get("warrantyType"))
	c.Certification = facetValue("certification", q.Get("certification"))
	c.Rating = parseBoundedInt(q.Get("rating"), 1, 5, 0)

	// Bound max first, then bound min by it, so min <= max always holds.
	c.PriceRange.Max = parseBoundedInt(q.Get("maxp"), 0, catalogMaxPrice, catalogMaxPrice)
	c.PriceRange.Min = parseBoundedInt(q.Get("minp"), 0, c.PriceRange.Max, 0)

	if v := q.Get("sort"); v != "" {
		for _, known := range sortOptions {
			if string(known) == v {
				c.Sort = known
				break
			}
		}
	}
	c.Page = parseBoundedInt(q.Get("page"), 1, maxPage, 1)

	return c
}

// maxPage keeps absurd page numbers from propagating; no catalog the engine
// serves comes anywhere near this many pages.
const maxPage = 100000

// facetValue validates a raw query value against the facet registry. Unknown
// values decode to "no selection".
func facetValue(key, raw string) string {
	if raw == "" {
		return ""
	}
	f, ok := LookupFacet(key)
	if !ok || !f.Allows(raw) {
		return ""
	}
	return raw
}

// decodeDelivery parses the comma-joined multi-select, dropping unknown
// values and duplicates. The result is sorted so it matches what Encode
// emits (canonical form for the round-trip law).
func decodeDelivery(raw string) []string {
	if raw == "" {
		return nil
	}
	f, _ := LookupFacet("delivery")
	seen := map[string]bool{}
	var values []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" || seen[part] || !f.Allows(part) {
			continue
		}
		seen[part] = true
		values = append(values, part)
	}
	if len(values) == 0 {
		return nil
	}
	sort.Strings(values)
	return values
}

// parseBoundedInt is the single numeric coercion point for query fields:
// a non-numeric, negative or out-of-bounds value yields def, never an error.
func parseBoundedInt(raw string, min, max, def int) int {
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < min || n > max {
		return def
	}
	return n
}
