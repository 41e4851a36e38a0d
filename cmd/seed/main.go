package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/cyrano21/ewebsite2-sub000/filters"
	"github.com/cyrano21/ewebsite2-sub000/models"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

var (
	categories = []string{"Smartphones", "Laptops", "Monitors", "Audio", "Wearables", "Accessories"}
	adjectives = []string{"Pro", "Lite", "Max", "Air", "Ultra", "Neo", "Prime", "Mini"}
	nouns      = []string{"Phone", "Book", "Pad", "Watch", "Buds", "Display", "Hub", "Dock"}
	tagPool    = []string{"summer", "bestseller", "gift", "office", "gaming", "travel", "eco", "limited"}
)

// main generates a demo catalog fixture for the FileCatalogProvider.
// Usage: go run cmd/seed/main.go -count 120 -out catalog.json
// This is a standalone CLI tool, not part of the main application
func main() {
	count := flag.Int("count", 120, "number of products to generate")
	out := flag.String("out", "catalog.json", "output file")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	flag.Parse()

	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("STOREFRONT CATALOG - Demo Catalog Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	rng := rand.New(rand.NewSource(*seed))

	products := make([]models.Product, 0, *count)
	for i := 0; i < *count; i++ {
		products = append(products, randomProduct(rng, i))
	}

	raw, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode catalog: %v", err)
	}
	if err := os.WriteFile(*out, raw, 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", *out, err)
	}

	fmt.Printf("✅ Wrote %d products to %s\n", len(products), *out)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Printf("1. Start the server: CATALOG_FILE=%s go run main.go\n", *out)
	fmt.Println("2. Browse http://localhost:8081/api/v1/store/products")
}

func randomProduct(rng *rand.Rand, i int) models.Product {
	price := float64(20 + rng.Intn(980))
	p := models.Product{
		ID:           uuid.Must(uuid.NewV7()),
		Name:         fmt.Sprintf("%s %s %d", pick(rng, nouns), pick(rng, adjectives), i+1),
		Description:  "Demo catalog item for local development",
		Category:     pick(rng, categories),
		Tags:         pickSome(rng, tagPool, 1+rng.Intn(3)),
		Price:        price,
		Availability: pick(rng, facetValues("availability")),
		Brand:        pick(rng, facetValues("brand")),
		Colors:       pickSome(rng, facetValues("color"), 1+rng.Intn(3)),
		Sizes:        pickSome(rng, facetValues("size"), 1+rng.Intn(3)),
		Delivery:     pickSome(rng, facetValues("delivery"), 1+rng.Intn(3)),
		Campaign:     pickSome(rng, facetValues("campaign"), rng.Intn(2)),
		Warranty:     pick(rng, facetValues("warranty")),
		WarrantyType: pickSome(rng, facetValues("warrantyType"), 1),
		Rating:       float64(rng.Intn(51)) / 10,
		Popularity:   float64(rng.Intn(1000)),
		CreatedAt:    time.Now().Add(-time.Duration(rng.Intn(365*24)) * time.Hour).UTC(),
	}
	if rng.Intn(3) == 0 {
		sale := price * (0.5 + rng.Float64()*0.4)
		p.SalePrice = &sale
	}
	if rng.Intn(2) == 0 {
		p.DisplayType = pick(rng, facetValues("displayType"))
	}
	if rng.Intn(2) == 0 {
		p.Certification = pickSome(rng, facetValues("certification"), 1+rng.Intn(2))
	}
	return p
}

func facetValues(key string) []string {
	f, _ := filters.LookupFacet(key)
	return f.Values
}

func pick(rng *rand.Rand, values []string) string {
	return values[rng.Intn(len(values))]
}

func pickSome(rng *rand.Rand, values []string, n int) []string {
	if n <= 0 {
		return nil
	}
	shuffled := append([]string(nil), values...)
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}
