package product_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cyrano21/ewebsite2-sub000/filters"
	"github.com/cyrano21/ewebsite2-sub000/models"
)

// StorefrontListing is the payload the rendering collaborator receives: the
// page slice, the active criteria (for selection chips), the canonical query
// string for the address bar, and the navigation links for every possible
// next interaction.
type StorefrontListing struct {
	Products []models.Product `json:"products"`
	Applied  filters.Criteria `json:"applied"`
	Query    string           `json:"query"`
	Links    ListingLinks     `json:"links"`
}

// GetStorefrontProducts godoc
// @Summary Get storefront products with filters
// @Description Retrieve storefront products filtered, sorted and paginated according to the query string. Unknown or malformed query values fall back to defaults silently. The response carries the canonical query encoding plus toggle links for every facet value.
// @Tags Storefront - Products
// @Produce json
// @Param category query string false "Category name (omit or 'All' for every category)"
// @Param tag query string false "Tag filter"
// @Param search query string false "Search query (name, description, category, tags)"
// @Param color query string false "Colour filter"
// @Param size query string false "Size filter"
// @Param availability query string false "Availability filter (in_stock | pre_book | out_of_stock)"
// @Param brand query string false "Brand filter"
// @Param displayType query string false "Display type filter"
// @Param delivery query string false "Delivery options, comma-joined; a product must offer every one"
// @Param campaign query string false "Campaign filter"
// @Param warranty query string false "Warranty filter"
// @Param warrantyType query string false "Warranty type filter"
// @Param certification query string false "Certification filter"
// @Param rating query int false "Minimum rating (1-5)"
// @Param minp query int false "Minimum price"
// @Param maxp query int false "Maximum price"
// @Param sort query string false "Sort option (default | newest | popularity | rating | price-asc | price-desc)"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} models.ApiResponse{data=StorefrontListing}
// @Router /store/products [get]
func GetStorefrontProducts(c *gin.Context) {
	products, version, maxPrice := catalogSvc.Snapshot()

	criteria := filters.Decode(c.Request.URL.Query(), maxPrice)
	canonical := filters.Encode(criteria, maxPrice).Encode()

	// An empty snapshot means one of two very different things: a catalog
	// that is genuinely empty (a normal zero-result listing) or a catalog
	// that was never loaded because every fetch failed. The second is an
	// error state the shopper has to see, not a quiet "0 products".
	if len(products) == 0 {
		if ready, fetchErr := catalogSvc.Ready(); !ready {
			log.Printf("❌ serving listing with no catalog loaded: %v", fetchErr)
			respondListingError(c, criteria, canonical,
				"The product catalog is currently unavailable, please try again shortly")
			return
		}
	}

	ordered, failed := filteredProducts(c, products, version, canonical, criteria)
	if failed {
		// A pipeline failure must never take the page down: surface an empty
		// result with the error flag set and a way back to the bare catalog.
		respondListingError(c, criteria, canonical, "Filtering failed, please reset your filters")
		return
	}

	page := filters.Paginate(ordered, criteria.Page, filters.PageSize)

	listing := StorefrontListing{
		Products: page.Items,
		Applied:  criteria,
		Query:    canonical,
		Links:    buildListingLinks(c, criteria, maxPrice, page.PageCount, products),
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(
		c,
		"Products with filters fetched successfully",
		listing,
		&models.Pagination{
			Page:       criteria.Page,
			Limit:      filters.PageSize,
			Total:      page.TotalCount,
			TotalPages: page.PageCount,
			FirstIndex: page.FirstIndex,
			LastIndex:  page.LastIndex,
		},
	))
}

// respondListingError renders the inline error state of the listing: an
// empty page, the error flag set, and a reset link back to the bare catalog.
// It still answers 200 so the storefront shell renders around it.
func respondListingError(c *gin.Context, criteria filters.Criteria, canonical, message string) {
	listing := StorefrontListing{
		Products: []models.Product{},
		Applied:  criteria,
		Query:    canonical,
		Links:    ListingLinks{Reset: "?"},
	}
	resp := models.PaginatedResponse(c, message, listing, &models.Pagination{
		Page:  criteria.Page,
		Limit: filters.PageSize,
	})
	resp.Error = true
	c.JSON(http.StatusOK, resp)
}

// filteredProducts runs the pipeline behind the result memo: on a memo hit
// the ordered result is rebuilt from the snapshot by ID, otherwise the
// pipeline runs and its ID order is stored. The snapshot version in the memo
// key guarantees a hit can never describe a different catalog.
func filteredProducts(c *gin.Context, products []models.Product, version uint64, canonical string, criteria filters.Criteria) ([]models.Product, bool) {
	ctx := c.Request.Context()

	if resultCache != nil {
		if ids, ok := resultCache.Get(ctx, version, canonical); ok {
			if ordered, ok := productsByID(products, ids); ok {
				return ordered, false
			}
		}
	}

	ordered, failed := applyFilters(products, criteria)
	if failed {
		return nil, true
	}

	if resultCache != nil {
		ids := make([]string, len(ordered))
		for i := range ordered {
			ids[i] = ordered[i].ID.String()
		}
		resultCache.Set(ctx, version, canonical, ids)
	}
	return ordered, false
}

// applyFilters is the containment boundary for pipeline execution: a panic
// caused by a malformed record becomes "no results + error flag", never a
// crash of the storefront.
func applyFilters(products []models.Product, criteria filters.Criteria) (result []models.Product, failed bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("❌ filter pipeline panicked, serving empty result: %v", r)
			result = nil
			failed = true
		}
	}()
	return filters.Apply(products, criteria), false
}

func productsByID(products []models.Product, ids []string) ([]models.Product, bool) {
	byID := make(map[string]*models.Product, len(products))
	for i := range products {
		byID[products[i].ID.String()] = &products[i]
	}
	ordered := make([]models.Product, 0, len(ids))
	for _, id := range ids {
		p, ok := byID[id]
		if !ok {
			return nil, false
		}
		ordered = append(ordered, *p)
	}
	return ordered, true
}
