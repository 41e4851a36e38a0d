package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sort"

	"github.com/cyrano21/ewebsite2-sub000/models"
	"github.com/cyrano21/ewebsite2-sub000/utils"
)

// CategoryProvider fetches the category list from the external category
// service.
type CategoryProvider interface {
	Fetch(ctx context.Context) ([]models.CategoryRef, error)
}

// HTTPCategoryProvider pulls categories from an upstream JSON endpoint.
type HTTPCategoryProvider struct {
	URL    string
	Client *http.Client
}

func (p *HTTPCategoryProvider) Fetch(ctx context.Context) ([]models.CategoryRef, error) {
	client := p.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build category request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch categories: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch categories: upstream returned %s", resp.Status)
	}

	var categories []models.CategoryRef
	if err := json.NewDecoder(resp.Body).Decode(&categories); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}
	return categories, nil
}

// CategoryService resolves the category facet. The upstream provider takes
// precedence; on any failure categories are derived locally from the catalog
// snapshot. Categories never errors; worst case is an empty list, which the
// storefront renders as an empty facet, not an error state.
type CategoryService struct {
	provider CategoryProvider
	catalog  *CatalogService
}

func NewCategoryService(provider CategoryProvider, catalog *CatalogService) *CategoryService {
	return &CategoryService{provider: provider, catalog: catalog}
}

func (s *CategoryService) Categories(ctx context.Context) []models.CategoryRef {
	if s.provider != nil {
		categories, err := s.provider.Fetch(ctx)
		if err == nil {
			return categories
		}
		log.Printf("⚠️  category provider failed, deriving from catalog: %v", err)
	}
	if s.catalog == nil {
		return []models.CategoryRef{}
	}
	products, _, _ := s.catalog.Snapshot()
	return DeriveCategories(products)
}

// BySlug resolves a category slug to its ref. A missing or unknown slug is
// a no-op for navigation, reported via ok.
func (s *CategoryService) BySlug(ctx context.Context, slug string) (models.CategoryRef, bool) {
	if slug == "" {
		return models.CategoryRef{}, false
	}
	for _, cat := range s.Categories(ctx) {
		if cat.Slug == slug {
			return cat, true
		}
	}
	return models.CategoryRef{}, false
}

// DeriveCategories builds the unique category set from the product
// collection, slugged and sorted by name.
func DeriveCategories(products []models.Product) []models.CategoryRef {
	seen := map[string]bool{}
	categories := make([]models.CategoryRef, 0)
	for i := range products {
		name := products[i].Category
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		categories = append(categories, models.CategoryRef{
			Name: name,
			Slug: utils.Slugify(name),
		})
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Name < categories[j].Name })
	return categories
}

// DeriveTags flattens the unique tag set over the whole collection, sorted.
// An empty result is valid, not an error.
func DeriveTags(products []models.Product) []string {
	seen := map[string]bool{}
	tags := make([]string, 0)
	for i := range products {
		for _, tag := range products[i].Tags {
			if tag == "" || seen[tag] {
				continue
			}
			seen[tag] = true
			tags = append(tags, tag)
		}
	}
	sort.Strings(tags)
	return tags
}
