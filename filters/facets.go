package filters

// Facet describes one filterable dimension: the query-string key it is
// addressed by and the enumerated set of legal values. The registry is static
// for the life of the process; decode validation and the storefront's filter
// metadata both read from it.
type Facet struct {
	Key    string   `json:"key"`
	Label  string   `json:"label"`
	Values []string `json:"values"`
	Multi  bool     `json:"multi"`
}

// Registry lists every enumerated facet dimension in display order. Rating is
// handled separately (numeric floor, not an enum) and tags/categories are
// derived from the catalog rather than declared here.
var Registry = []Facet{
	{
		Key:    "availability",
		Label:  "Availability",
		Values: []string{"in_stock", "pre_book", "out_of_stock"},
	},
	{
		Key:    "color",
		Label:  "Color",
		Values: []string{"Black", "White", "Silver", "Red", "Blue", "Green", "Gold", "Rose Gold"},
	},
	{
		Key:    "size",
		Label:  "Size",
		Values: []string{"XS", "S", "M", "L", "XL", "XXL"},
	},
	{
		Key:    "brand",
		Label:  "Brand",
		Values: []string{"Aurora", "Northline", "Veltro", "Kivo", "Hexon", "Polarex"},
	},
	{
		Key:    "displayType",
		Label:  "Display Type",
		Values: []string{"LED", "LCD", "OLED", "AMOLED", "E-Ink"},
	},
	{
		Key:    "delivery",
		Label:  "Delivery",
		Multi:  true,
		Values: []string{"free_shipping", "cash_on_delivery", "one-day_shipping", "express_delivery"},
	},
	{
		Key:    "campaign",
		Label:  "Campaign",
		Values: []string{"flash_sale", "clearance", "new_arrival", "mega_deal"},
	},
	{
		Key:    "warranty",
		Label:  "Warranty",
		Values: []string{"6_months", "1_year", "2_years", "lifetime"},
	},
	{
		Key:    "warrantyType",
		Label:  "Warranty Type",
		Values: []string{"brand_warranty", "seller_warranty", "international_warranty"},
	},
	{
		Key:    "certification",
		Label:  "Certification",
		Values: []string{"ce", "rohs", "iso_9001", "energy_star"},
	},
}

// LookupFacet returns the registry entry for a query key.
func LookupFacet(key string) (Facet, bool) {
	for _, f := range Registry {
		if f.Key == key {
			return f, true
		}
	}
	return Facet{}, false
}

// Allows reports whether v is a legal value for the facet.
func (f Facet) Allows(v string) bool {
	for _, allowed := range f.Values {
		if allowed == v {
			return true
		}
	}
	return false
}
