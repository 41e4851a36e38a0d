package filter_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cyrano21/ewebsite2-sub000/filters"
	"github.com/cyrano21/ewebsite2-sub000/models"
	"github.com/cyrano21/ewebsite2-sub000/services"
)

var (
	catalogSvc  *services.CatalogService
	categorySvc *services.CategoryService
)

// Init wires the shared services into the controller package.
func Init(catalog *services.CatalogService, categories *services.CategoryService) {
	catalogSvc = catalog
	categorySvc = categories
}

// GetFilterMetadata godoc
// @Summary Get all filter metadata
// @Description Returns availability counts, facet value counts, categories, tags and the price range for the storefront filter panel
// @Tags Storefront - Filters
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.FilterMetadata}
// @Router /store/filters/metadata [get]
func GetFilterMetadata(c *gin.Context) {
	products, _, _ := catalogSvc.Snapshot()

	metadata := &models.FilterMetadata{
		Availability: availabilityCounts(products),
		Facets:       facetCounts(products),
		Categories:   categoriesWithCounts(c, products),
		Tags:         services.DeriveTags(products),
		PriceRange:   priceRange(products),
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched", metadata))
}

func availabilityCounts(products []models.Product) *models.AvailabilityData {
	data := &models.AvailabilityData{}
	for i := range products {
		switch products[i].Availability {
		case models.AvailabilityInStock:
			data.InStock++
		case models.AvailabilityPreBook:
			data.PreBook++
		case models.AvailabilityOutOfStock:
			data.OutOfStock++
		}
	}
	return data
}

func facetCounts(products []models.Product) []models.FacetData {
	facets := make([]models.FacetData, 0, len(filters.Registry))
	for _, facet := range filters.Registry {
		data := models.FacetData{Key: facet.Key, Label: facet.Label, Multi: facet.Multi}
		for _, value := range facet.Values {
			count := 0
			for i := range products {
				if productHasFacetValue(&products[i], facet.Key, value) {
					count++
				}
			}
			data.Values = append(data.Values, models.FilterOption{
				Value: value,
				Label: value,
				Count: count,
			})
		}
		facets = append(facets, data)
	}
	return facets
}

func productHasFacetValue(p *models.Product, key, value string) bool {
	switch key {
	case "availability":
		return p.Availability == value
	case "color":
		return contains(p.Colors, value)
	case "size":
		return contains(p.Sizes, value)
	case "brand":
		return p.Brand == value
	case "displayType":
		return p.DisplayType == value
	case "delivery":
		return contains(p.Delivery, value)
	case "campaign":
		return contains(p.Campaign, value)
	case "warranty":
		return p.Warranty == value
	case "warrantyType":
		return contains(p.WarrantyType, value)
	case "certification":
		return contains(p.Certification, value)
	}
	return false
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func categoriesWithCounts(c *gin.Context, products []models.Product) []models.CategoryData {
	counts := map[string]int{}
	for i := range products {
		counts[products[i].Category]++
	}

	categories := categorySvc.Categories(c.Request.Context())
	data := make([]models.CategoryData, 0, len(categories))
	for _, cat := range categories {
		data = append(data, models.CategoryData{
			Name:         cat.Name,
			Slug:         cat.Slug,
			ProductCount: counts[cat.Name],
		})
	}
	return data
}

func priceRange(products []models.Product) *models.PriceRangeData {
	pr := &models.PriceRangeData{}
	for i := range products {
		ep := products[i].EffectivePrice()
		if i == 0 || ep < pr.Min {
			pr.Min = ep
		}
		if ep > pr.Max {
			pr.Max = ep
		}
	}
	return pr
}
