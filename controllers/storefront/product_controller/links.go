package product_controller

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cyrano21/ewebsite2-sub000/filters"
	"github.com/cyrano21/ewebsite2-sub000/models"
	"github.com/cyrano21/ewebsite2-sub000/services"
)

// ValueLink is one selectable value with the query string the storefront
// navigates to when it is clicked. Clicking an active value clears it
// (toggle semantics), which is already baked into the href.
type ValueLink struct {
	Value  string `json:"value"`
	Active bool   `json:"active"`
	Href   string `json:"href"`
}

// FacetLinks groups the value links of one facet dimension.
type FacetLinks struct {
	Key    string      `json:"key"`
	Label  string      `json:"label"`
	Multi  bool        `json:"multi"`
	Values []ValueLink `json:"values"`
}

// ListingLinks carries every navigation target reachable from the current
// criteria. The renderer owns no filter logic: it only follows hrefs.
type ListingLinks struct {
	Reset      string            `json:"reset"`
	Sort       map[string]string `json:"sort"`
	PrevPage   string            `json:"prev_page,omitempty"`
	NextPage   string            `json:"next_page,omitempty"`
	Categories []ValueLink       `json:"categories"`
	Tags       []ValueLink       `json:"tags"`
	Rating     []ValueLink       `json:"rating"`
	Facets     []FacetLinks      `json:"facets"`
}

func href(criteria filters.Criteria, maxPrice int) string {
	return "?" + filters.Encode(criteria, maxPrice).Encode()
}

func buildListingLinks(c *gin.Context, criteria filters.Criteria, maxPrice, pageCount int, products []models.Product) ListingLinks {
	links := ListingLinks{
		Reset: href(criteria.Reset(maxPrice), maxPrice),
		Sort:  make(map[string]string, 6),
	}

	for _, opt := range []filters.SortOption{
		filters.SortDefault, filters.SortNewest, filters.SortPopularity,
		filters.SortRating, filters.SortPriceAsc, filters.SortPriceDesc,
	} {
		links.Sort[string(opt)] = href(criteria.WithSort(opt), maxPrice)
	}

	if criteria.Page > 1 {
		links.PrevPage = href(criteria.WithPage(criteria.Page-1), maxPrice)
	}
	if criteria.Page < pageCount {
		links.NextPage = href(criteria.WithPage(criteria.Page+1), maxPrice)
	}

	// Category links are selections, not toggles: "All" clears.
	links.Categories = append(links.Categories, ValueLink{
		Value:  filters.CategoryAll,
		Active: criteria.Category == filters.CategoryAll,
		Href:   href(criteria.WithCategory(filters.CategoryAll), maxPrice),
	})
	for _, cat := range categorySvc.Categories(c.Request.Context()) {
		links.Categories = append(links.Categories, ValueLink{
			Value:  cat.Name,
			Active: criteria.Category == cat.Name,
			Href:   href(criteria.WithCategory(cat.Name), maxPrice),
		})
	}

	for _, tag := range services.DeriveTags(products) {
		links.Tags = append(links.Tags, ValueLink{
			Value:  tag,
			Active: criteria.Tag == tag,
			Href:   href(criteria.Toggled("tag", tag), maxPrice),
		})
	}

	for floor := 1; floor <= 5; floor++ {
		raw := strconv.Itoa(floor)
		links.Rating = append(links.Rating, ValueLink{
			Value:  raw,
			Active: criteria.Rating == floor,
			Href:   href(criteria.Toggled("rating", raw), maxPrice),
		})
	}

	for _, facet := range filters.Registry {
		group := FacetLinks{Key: facet.Key, Label: facet.Label, Multi: facet.Multi}
		for _, value := range facet.Values {
			group.Values = append(group.Values, ValueLink{
				Value:  value,
				Active: facetValueActive(criteria, facet.Key, value),
				Href:   href(criteria.Toggled(facet.Key, value), maxPrice),
			})
		}
		links.Facets = append(links.Facets, group)
	}

	return links
}

func facetValueActive(c filters.Criteria, key, value string) bool {
	switch key {
	case "color":
		return c.Color == value
	case "size":
		return c.Size == value
	case "availability":
		return c.Availability == value
	case "brand":
		return c.Brand == value
	case "displayType":
		return c.DisplayType == value
	case "delivery":
		for _, v := range c.Delivery {
			if v == value {
				return true
			}
		}
		return false
	case "campaign":
		return c.Campaign == value
	case "warranty":
		return c.Warranty == value
	case "warrantyType":
		return c.WarrantyType == value
	case "certification":
		return c.Certification == value
	}
	return false
}
