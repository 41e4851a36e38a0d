package product_controller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	result_cache "github.com/cyrano21/ewebsite2-sub000/cache"
	"github.com/cyrano21/ewebsite2-sub000/filters"
	"github.com/cyrano21/ewebsite2-sub000/models"
	"github.com/cyrano21/ewebsite2-sub000/services"
)

type listingEnvelope struct {
	Message string `json:"message"`
	Error   bool   `json:"error"`
	Data    struct {
		Products []models.Product `json:"products"`
		Applied  filters.Criteria `json:"applied"`
		Query    string           `json:"query"`
		Links    ListingLinks     `json:"links"`
	} `json:"data"`
	Meta *models.Pagination `json:"meta"`
}

func testCatalog() []models.Product {
	products := make([]models.Product, 0, 30)
	for i := 0; i < 30; i++ {
		p := models.Product{
			ID:           uuid.New(),
			Name:         fmt.Sprintf("Hub Pro %d", i),
			Category:     "Accessories",
			Price:        float64(10 + i*10),
			Availability: models.AvailabilityInStock,
			Brand:        "Aurora",
			Colors:       []string{"Black"},
			Rating:       4,
		}
		if i%2 == 0 {
			p.Category = "Audio"
			p.Colors = []string{"Red"}
			p.Tags = []string{"summer"}
		}
		products = append(products, p)
	}
	return products
}

func setupRouter(t *testing.T, products []models.Product) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	catalog := services.NewCatalogService(nil)
	catalog.Replace(products)
	Init(catalog, services.NewCategoryService(nil, catalog), result_cache.New(nil))

	router := gin.New()
	router.GET("/api/v1/store/products", GetStorefrontProducts)
	router.GET("/api/v1/store/products/:id", GetStorefrontProductByID)
	return router
}

func get(t *testing.T, router *gin.Engine, target string) (*httptest.ResponseRecorder, listingEnvelope) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	router.ServeHTTP(w, req)

	var envelope listingEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return w, envelope
}

func TestListingDefaultState(t *testing.T) {
	router := setupRouter(t, testCatalog())

	w, envelope := get(t, router, "/api/v1/store/products")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, envelope.Error)
	assert.Len(t, envelope.Data.Products, filters.PageSize)
	assert.Empty(t, envelope.Data.Query, "no filters encodes to an empty canonical query")

	require.NotNil(t, envelope.Meta)
	assert.Equal(t, 1, envelope.Meta.Page)
	assert.Equal(t, 30, envelope.Meta.Total)
	assert.Equal(t, 3, envelope.Meta.TotalPages)
	assert.Equal(t, 1, envelope.Meta.FirstIndex)
	assert.Equal(t, filters.PageSize, envelope.Meta.LastIndex)
}

func TestListingAppliesFacets(t *testing.T) {
	router := setupRouter(t, testCatalog())

	_, envelope := get(t, router, "/api/v1/store/products?color=Red&category=Audio")

	assert.Equal(t, 15, envelope.Meta.Total)
	for _, p := range envelope.Data.Products {
		assert.Equal(t, "Audio", p.Category)
		assert.Contains(t, p.Colors, "Red")
	}
	assert.Equal(t, "Red", envelope.Data.Applied.Color)
}

func TestListingCanonicalQueryDropsJunk(t *testing.T) {
	router := setupRouter(t, testCatalog())

	_, envelope := get(t, router, "/api/v1/store/products?color=Red&sparkle=yes&page=banana&rating=99")

	assert.Equal(t, "color=Red", envelope.Data.Query,
		"unknown keys and malformed values must not survive into the canonical query")
	assert.Equal(t, 1, envelope.Data.Applied.Page)
	assert.Zero(t, envelope.Data.Applied.Rating)
}

func TestListingOutOfRangePage(t *testing.T) {
	router := setupRouter(t, testCatalog())

	w, envelope := get(t, router, "/api/v1/store/products?page=9")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, envelope.Data.Products)
	assert.Zero(t, envelope.Meta.FirstIndex)
	assert.Equal(t, 30, envelope.Meta.LastIndex)
}

func TestListingSearch(t *testing.T) {
	router := setupRouter(t, testCatalog())

	_, envelope := get(t, router, "/api/v1/store/products?search=hub+pro+2")

	require.NotEmpty(t, envelope.Data.Products)
	for _, p := range envelope.Data.Products {
		assert.Contains(t, p.Name, "Hub Pro 2")
	}
}

func TestListingLinksToggleSemantics(t *testing.T) {
	router := setupRouter(t, testCatalog())

	_, envelope := get(t, router, "/api/v1/store/products?color=Red")

	links := envelope.Data.Links
	assert.Equal(t, "?", links.Reset)

	var colorLinks []ValueLink
	for _, facet := range links.Facets {
		if facet.Key == "color" {
			colorLinks = facet.Values
		}
	}
	require.NotEmpty(t, colorLinks)
	for _, link := range colorLinks {
		if link.Value == "Red" {
			assert.True(t, link.Active)
			assert.Equal(t, "?", link.Href, "clicking the active value clears it")
		} else {
			assert.False(t, link.Active)
			expected := url.Values{"color": {link.Value}}.Encode()
			assert.Contains(t, link.Href, expected)
		}
	}
}

func TestListingPageLinks(t *testing.T) {
	router := setupRouter(t, testCatalog())

	_, first := get(t, router, "/api/v1/store/products")
	assert.Empty(t, first.Data.Links.PrevPage)
	assert.Equal(t, "?page=2", first.Data.Links.NextPage)

	_, second := get(t, router, "/api/v1/store/products?page=2")
	assert.Equal(t, "?", second.Data.Links.PrevPage, "page 1 is the default and encodes away")
	assert.Equal(t, "?page=3", second.Data.Links.NextPage)
}

func TestListingMemoizedResultMatchesRecompute(t *testing.T) {
	router := setupRouter(t, testCatalog())

	_, cold := get(t, router, "/api/v1/store/products?category=Audio&sort=price-desc")
	_, warm := get(t, router, "/api/v1/store/products?category=Audio&sort=price-desc")

	assert.Equal(t, names(cold.Data.Products), names(warm.Data.Products),
		"memo hit must reproduce the exact ordered result")
}

func TestListingEmptyCatalogIsZeroResultsNotError(t *testing.T) {
	router := setupRouter(t, nil)

	w, envelope := get(t, router, "/api/v1/store/products")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, envelope.Error)
	assert.Empty(t, envelope.Data.Products)
	assert.Zero(t, envelope.Meta.Total)
}

type downCatalogProvider struct{}

func (p *downCatalogProvider) Fetch(ctx context.Context) ([]models.Product, error) {
	return nil, errors.New("upstream down")
}

func TestListingUnloadedCatalogSurfacesError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// Every fetch fails, so no snapshot is ever installed. That is an error
	// state the shopper must see, unlike a catalog that is genuinely empty.
	catalog := services.NewCatalogService(&downCatalogProvider{})
	require.Error(t, catalog.Refresh(context.Background()))
	Init(catalog, services.NewCategoryService(nil, catalog), result_cache.New(nil))

	router := gin.New()
	router.GET("/api/v1/store/products", GetStorefrontProducts)

	w, envelope := get(t, router, "/api/v1/store/products")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, envelope.Error)
	assert.Contains(t, envelope.Message, "unavailable")
	assert.Empty(t, envelope.Data.Products)
	assert.Equal(t, "?", envelope.Data.Links.Reset)
}

func TestGetProductByID(t *testing.T) {
	catalog := testCatalog()
	router := setupRouter(t, catalog)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/store/products/"+catalog[0].ID.String(), nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/store/products/"+uuid.NewString(), nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/store/products/not-a-uuid", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func names(products []models.Product) []string {
	out := make([]string, len(products))
	for i := range products {
		out[i] = products[i].Name
	}
	return out
}
