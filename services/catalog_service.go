package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/cyrano21/ewebsite2-sub000/config"
	"github.com/cyrano21/ewebsite2-sub000/models"
)

// defaultMaxPrice keeps the price-range bounds decodable while the catalog is
// empty (before the first successful fetch).
const defaultMaxPrice = 10000

// CatalogProvider fetches the product collection from wherever it lives.
// The engine only depends on the resulting slice shape, never on transport.
type CatalogProvider interface {
	Fetch(ctx context.Context) ([]models.Product, error)
}

// HTTPCatalogProvider pulls the catalog from an upstream JSON endpoint.
type HTTPCatalogProvider struct {
	URL    string
	Client *http.Client
}

func (p *HTTPCatalogProvider) Fetch(ctx context.Context) ([]models.Product, error) {
	client := p.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch catalog: upstream returned %s", resp.Status)
	}

	var products []models.Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return products, nil
}

// FileCatalogProvider loads the catalog from a JSON fixture on disk
// (see cmd/seed, which generates one).
type FileCatalogProvider struct {
	Path string
}

func (p *FileCatalogProvider) Fetch(ctx context.Context) ([]models.Product, error) {
	raw, err := os.ReadFile(p.Path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	var products []models.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, fmt.Errorf("decode catalog file: %w", err)
	}
	return products, nil
}

// CatalogService holds the versioned in-memory snapshot the filter pipeline
// runs against. Replace swaps the whole snapshot at once (last-write-wins:
// a stale fetch resolving late just overwrites and triggers one harmless
// recompute), and the version in every Snapshot keys the result cache.
type CatalogService struct {
	mu       sync.RWMutex
	products []models.Product
	version  uint64
	maxPrice int
	fetched  bool
	lastErr  error

	provider CatalogProvider
	validate *validator.Validate
}

func NewCatalogService(provider CatalogProvider) *CatalogService {
	return &CatalogService{
		provider: provider,
		maxPrice: defaultMaxPrice,
		validate: validator.New(),
	}
}

// Snapshot returns the current catalog, its version, and the derived maximum
// effective price (the upper bound of the price facet). The slice must be
// treated as read-only.
func (s *CatalogService) Snapshot() ([]models.Product, uint64, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.products, s.version, s.maxPrice
}

// Ready reports whether a snapshot has ever been installed. When it has not,
// the second return carries the error from the last failed fetch so callers
// can surface it instead of passing an empty catalog off as a real result.
func (s *CatalogService) Ready() (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.fetched {
		return true, nil
	}
	return false, s.lastErr
}

// Replace installs a new snapshot and bumps the version.
func (s *CatalogService) Replace(products []models.Product) {
	maxPrice := defaultMaxPrice
	var seen float64
	for i := range products {
		if ep := products[i].EffectivePrice(); ep > seen {
			seen = ep
		}
	}
	if seen > 0 {
		maxPrice = int(math.Ceil(seen))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = products
	s.maxPrice = maxPrice
	s.version++
	s.fetched = true
	s.lastErr = nil
}

// Refresh fetches the catalog from the provider, drops records that fail
// validation, and installs the rest. On fetch failure the previous snapshot
// stays in place; the error is returned and recorded so Ready can report it
// until a fetch succeeds.
func (s *CatalogService) Refresh(ctx context.Context) error {
	if s.provider == nil {
		err := fmt.Errorf("no catalog provider configured")
		s.mu.Lock()
		s.lastErr = err
		s.mu.Unlock()
		return err
	}

	fetched, err := s.provider.Fetch(ctx)
	if err != nil {
		s.mu.Lock()
		s.lastErr = err
		s.mu.Unlock()
		return err
	}

	valid := make([]models.Product, 0, len(fetched))
	for i := range fetched {
		if err := s.validate.Struct(&fetched[i]); err != nil {
			log.Printf("⚠️  dropping invalid product %q: %v", fetched[i].Name, err)
			continue
		}
		valid = append(valid, fetched[i])
	}

	s.Replace(valid)
	return nil
}

// StartRefreshing re-fetches the catalog on an interval until ctx is done.
// Each fetch is bounded by the interval so a hung upstream cannot stack
// refreshes. Failures are logged and the stale snapshot keeps serving.
func (s *CatalogService) StartRefreshing(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				tickCtx, cancel := config.WithCustomTimeout(interval)
				err := s.Refresh(tickCtx)
				cancel()
				if err != nil {
					log.Printf("⚠️  catalog refresh failed, keeping previous snapshot: %v", err)
				}
			}
		}
	}()
}
