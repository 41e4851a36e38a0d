package models

import (
	"time"

	"github.com/google/uuid"
)

// Availability states a product can be in.
const (
	AvailabilityInStock    = "in_stock"
	AvailabilityPreBook    = "pre_book"
	AvailabilityOutOfStock = "out_of_stock"
)

// Product represents one catalog item as delivered by the catalog provider.
// The engine treats the collection as a read-only snapshot per request; no
// field is ever mutated after the snapshot is installed.
type Product struct {
	ID            uuid.UUID `json:"id" validate:"required"`
	Name          string    `json:"name" validate:"required"`
	Description   string    `json:"description"`
	Category      string    `json:"category" validate:"required"`
	Tags          []string  `json:"tags"`
	Price         float64   `json:"price" validate:"gte=0"`
	SalePrice     *float64  `json:"sale_price,omitempty" validate:"omitempty,gte=0"`
	Colors        []string  `json:"colors"`
	Sizes         []string  `json:"sizes"`
	Availability  string    `json:"availability" validate:"omitempty,oneof=in_stock pre_book out_of_stock"`
	Brand         string    `json:"brand"`
	DisplayType   string    `json:"display_type,omitempty"`
	Delivery      []string  `json:"delivery"`
	Campaign      []string  `json:"campaign"`
	Warranty      string    `json:"warranty,omitempty"`
	WarrantyType  []string  `json:"warranty_type"`
	Certification []string  `json:"certification"`
	Rating        float64   `json:"rating" validate:"gte=0,lte=5"`
	Popularity    float64   `json:"popularity" validate:"gte=0"`
	CreatedAt     time.Time `json:"created_at"`
}

// EffectivePrice is the price used for filtering and price sorting:
// the sale price when one is set, the list price otherwise. A sale price
// above the list price is tolerated (provider data is not trusted here).
func (p *Product) EffectivePrice() float64 {
	if p.SalePrice != nil {
		return *p.SalePrice
	}
	return p.Price
}
