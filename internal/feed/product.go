package feed

// Product is the canonical catalog entity. It is rebuilt in full on every
// fetch; nothing is persisted between requests. JSON tags follow the camelCase
// convention used by the storefront.
type Product struct {
	ID               string   `json:"id"`
	SKU              string   `json:"sku"`
	Name             string   `json:"name"`
	Description      string   `json:"description,omitempty"`
	Manufacturer     string   `json:"manufacturer,omitempty"`
	Categories       []string `json:"categories"`
	PriceNet         string   `json:"priceNet"`
	PriceGross       string   `json:"priceGross,omitempty"`
	DefaultPriceNet  string   `json:"defaultPriceNet,omitempty"`
	StockQuantity    string   `json:"stockQuantity"`
	Active           bool     `json:"active"`
	Images           []string `json:"images,omitempty"`
	Weight           string   `json:"weight,omitempty"`
	Unit             string   `json:"unit,omitempty"`
	EAN              string   `json:"ean,omitempty"`
	MinOrderQuantity string   `json:"minOrderQuantity,omitempty"`
}

// PrimaryImage returns the first image URL, or "" when the product has none.
func (p Product) PrimaryImage() string {
	if len(p.Images) > 0 {
		return p.Images[0]
	}
	return ""
}

// StockRecord is one entry of the secondary stock/price feed, keyed by SKU.
type StockRecord struct {
	SKU              string
	PriceNet         string
	StockQuantity    string
	Active           bool
	MinOrderQuantity string
}
