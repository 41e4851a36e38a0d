package filters

import (
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyrano21/ewebsite2-sub000/models"
)

func product(name string, price float64, mutate ...func(*models.Product)) models.Product {
	p := models.Product{
		ID:       uuid.New(),
		Name:     name,
		Category: "Laptops",
		Price:    price,
	}
	for _, m := range mutate {
		m(&p)
	}
	return p
}

func names(products []models.Product) []string {
	out := make([]string, len(products))
	for i := range products {
		out[i] = products[i].Name
	}
	return out
}

func TestPriceRangeFilterPreservesOrder(t *testing.T) {
	catalog := []models.Product{
		product("a", 10),
		product("b", 50),
		product("c", 90),
	}
	c := DefaultCriteria(testMaxPrice).WithPriceRange(20, 100, testMaxPrice)

	result := Apply(catalog, c)

	assert.Equal(t, []string{"b", "c"}, names(result), "products priced 50 and 90, in catalog order")
}

func TestRatingFloorRoundsProductRating(t *testing.T) {
	catalog := []models.Product{
		product("low", 10, func(p *models.Product) { p.Rating = 3.4 }),
		product("mid", 10, func(p *models.Product) { p.Rating = 4.2 }),
		product("high", 10, func(p *models.Product) { p.Rating = 4.9 }),
	}
	c := DefaultCriteria(testMaxPrice).Toggled("rating", "4")

	result := Apply(catalog, c)

	assert.Equal(t, []string{"mid", "high"}, names(result), "ratings rounding to >= 4 pass the floor")
}

func TestDeliveryRequiresEveryValue(t *testing.T) {
	catalog := []models.Product{
		product("partial", 10, func(p *models.Product) {
			p.Delivery = []string{"free_shipping"}
		}),
		product("full", 10, func(p *models.Product) {
			p.Delivery = []string{"free_shipping", "cash_on_delivery", "one-day_shipping"}
		}),
		product("none", 10),
	}
	c := DefaultCriteria(testMaxPrice).
		Toggled("delivery", "free_shipping").
		Toggled("delivery", "cash_on_delivery")

	result := Apply(catalog, c)

	assert.Equal(t, []string{"full"}, names(result),
		"a product missing any selected delivery option must be excluded")
}

func TestEffectivePriceUsesSalePrice(t *testing.T) {
	sale := 30.0
	catalog := []models.Product{
		product("onsale", 200, func(p *models.Product) { p.SalePrice = &sale }),
		product("full", 200),
	}
	c := DefaultCriteria(testMaxPrice).WithPriceRange(0, 100, testMaxPrice)

	result := Apply(catalog, c)

	assert.Equal(t, []string{"onsale"}, names(result))
}

func TestSearchIsCaseInsensitiveAcrossFields(t *testing.T) {
	catalog := []models.Product{
		product("Gaming Hub", 10),
		product("Dock", 10, func(p *models.Product) { p.Description = "The best GAMING dock" }),
		product("Pad", 10, func(p *models.Product) { p.Tags = []string{"gaming", "travel"} }),
		product("Watch", 10),
	}
	c := DefaultCriteria(testMaxPrice).WithSearch("gaming")

	result := Apply(catalog, c)

	assert.Equal(t, []string{"Gaming Hub", "Dock", "Pad"}, names(result))
}

func TestCategoryAllSkipsCategoryPredicate(t *testing.T) {
	catalog := []models.Product{
		product("a", 10, func(p *models.Product) { p.Category = "Audio" }),
		product("b", 10),
	}
	assert.Len(t, Apply(catalog, DefaultCriteria(testMaxPrice)), 2)
	assert.Equal(t, []string{"a"}, names(Apply(catalog, DefaultCriteria(testMaxPrice).WithCategory("Audio"))))
}

func TestMalformedRecordsNeverMatchPositively(t *testing.T) {
	// A record with missing collection fields is filtered out by membership
	// predicates, not a reason to panic.
	catalog := []models.Product{
		product("bare", 10, func(p *models.Product) {
			p.Tags = nil
			p.Colors = nil
			p.Delivery = nil
		}),
	}

	assert.Empty(t, Apply(catalog, DefaultCriteria(testMaxPrice).Toggled("tag", "summer")))
	assert.Empty(t, Apply(catalog, DefaultCriteria(testMaxPrice).Toggled("color", "Red")))
	assert.Empty(t, Apply(catalog, DefaultCriteria(testMaxPrice).Toggled("delivery", "free_shipping")))
	assert.Len(t, Apply(catalog, DefaultCriteria(testMaxPrice)), 1, "no active facet, record passes")
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	catalog := []models.Product{
		product("b", 50),
		product("a", 10),
	}
	c := DefaultCriteria(testMaxPrice).WithSort(SortPriceAsc)

	_ = Apply(catalog, c)

	assert.Equal(t, []string{"b", "a"}, names(catalog), "sorting must happen on a copy")
}

func TestSortPriceAscending(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	catalog := make([]models.Product, 50)
	for i := range catalog {
		catalog[i] = product("p", float64(rng.Intn(900)))
		if rng.Intn(2) == 0 {
			sale := catalog[i].Price / 2
			catalog[i].SalePrice = &sale
		}
	}

	result := Apply(catalog, DefaultCriteria(testMaxPrice).WithSort(SortPriceAsc))

	require.Len(t, result, 50)
	for i := 1; i < len(result); i++ {
		assert.LessOrEqual(t, result[i-1].EffectivePrice(), result[i].EffectivePrice())
	}
}

func TestSortPriceDescending(t *testing.T) {
	catalog := []models.Product{product("a", 10), product("b", 90), product("c", 50)}
	result := Apply(catalog, DefaultCriteria(testMaxPrice).WithSort(SortPriceDesc))
	assert.Equal(t, []string{"b", "c", "a"}, names(result))
}

func TestSortPopularityAndRatingDescending(t *testing.T) {
	catalog := []models.Product{
		product("a", 10, func(p *models.Product) { p.Popularity = 5; p.Rating = 2 }),
		product("b", 10, func(p *models.Product) { p.Popularity = 50; p.Rating = 4.5 }),
		product("c", 10), // missing scores treated as 0
	}

	assert.Equal(t, []string{"b", "a", "c"}, names(Apply(catalog, DefaultCriteria(testMaxPrice).WithSort(SortPopularity))))
	assert.Equal(t, []string{"b", "a", "c"}, names(Apply(catalog, DefaultCriteria(testMaxPrice).WithSort(SortRating))))
}

func TestSortNewest(t *testing.T) {
	now := time.Now()
	catalog := []models.Product{
		product("old", 10, func(p *models.Product) { p.CreatedAt = now.Add(-48 * time.Hour) }),
		product("new", 10, func(p *models.Product) { p.CreatedAt = now }),
	}
	assert.Equal(t, []string{"new", "old"}, names(Apply(catalog, DefaultCriteria(testMaxPrice).WithSort(SortNewest))))
}

func TestSortNewestSkippedWhenLeadUndated(t *testing.T) {
	now := time.Now()
	catalog := []models.Product{
		product("undated", 10),
		product("dated", 10, func(p *models.Product) { p.CreatedAt = now }),
	}
	result := Apply(catalog, DefaultCriteria(testMaxPrice).WithSort(SortNewest))
	assert.Equal(t, []string{"undated", "dated"}, names(result),
		"no usable timestamp on the lead record leaves catalog order untouched")
}

func TestSortStableTiesKeepCatalogOrder(t *testing.T) {
	catalog := []models.Product{
		product("first", 50),
		product("second", 50),
		product("third", 50),
	}
	result := Apply(catalog, DefaultCriteria(testMaxPrice).WithSort(SortPriceAsc))
	assert.Equal(t, []string{"first", "second", "third"}, names(result))
}

func TestFilterMonotonicity(t *testing.T) {
	// Adding any facet can only shrink or preserve the result set.
	rng := rand.New(rand.NewSource(11))
	catalog := make([]models.Product, 200)
	for i := range catalog {
		catalog[i] = product("p", float64(rng.Intn(1000)), func(p *models.Product) {
			p.Category = []string{"Laptops", "Audio", "Wearables"}[rng.Intn(3)]
			p.Brand = []string{"Aurora", "Kivo", "Hexon"}[rng.Intn(3)]
			p.Colors = []string{[]string{"Black", "Red", "Blue"}[rng.Intn(3)]}
			p.Availability = []string{"in_stock", "pre_book", "out_of_stock"}[rng.Intn(3)]
			p.Delivery = []string{"free_shipping", "cash_on_delivery"}[:1+rng.Intn(2)]
			p.Rating = float64(rng.Intn(51)) / 10
			p.Tags = []string{[]string{"summer", "gift", "office"}[rng.Intn(3)]}
		})
	}

	narrowings := []func(Criteria) Criteria{
		func(c Criteria) Criteria { return c.WithCategory("Audio") },
		func(c Criteria) Criteria { return c.Toggled("brand", "Kivo") },
		func(c Criteria) Criteria { return c.Toggled("color", "Red") },
		func(c Criteria) Criteria { return c.Toggled("availability", "in_stock") },
		func(c Criteria) Criteria { return c.Toggled("delivery", "cash_on_delivery") },
		func(c Criteria) Criteria { return c.Toggled("rating", "3") },
		func(c Criteria) Criteria { return c.Toggled("tag", "gift") },
		func(c Criteria) Criteria { return c.WithSearch("p") },
		func(c Criteria) Criteria { return c.WithPriceRange(100, 800, testMaxPrice) },
	}

	for trial := 0; trial < 50; trial++ {
		base := randomCriteria(rng)
		// The property is about adding an absent facet; clear the dimensions
		// the narrowings touch so a toggle can never act as a clear.
		base.Category = CategoryAll
		base.Brand = ""
		base.Color = ""
		base.Availability = ""
		base.Delivery = nil
		base.Rating = 0
		base.Tag = ""
		base.SearchTerm = ""
		base.PriceRange = PriceRange{Min: 0, Max: testMaxPrice}
		baseCount := len(Apply(catalog, base))
		for _, narrow := range narrowings {
			narrowed := len(Apply(catalog, narrow(base)))
			assert.LessOrEqual(t, narrowed, baseCount)
		}
	}
}
