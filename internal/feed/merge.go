package feed

// MergeStock overlays stock records onto the parsed catalog, keyed strictly by
// SKU. Only priceNet (and the derived priceGross), stockQuantity, active and
// minOrderQuantity change; every other field and every unmatched product stays
// exactly as parsed. Overlay records with no matching product are dropped.
func MergeStock(products []Product, records []StockRecord) []Product {
	if len(records) == 0 {
		return products
	}

	bySKU := make(map[string]StockRecord, len(records))
	for _, r := range records {
		if r.SKU != "" {
			bySKU[r.SKU] = r
		}
	}

	out := make([]Product, len(products))
	for i, p := range products {
		if r, ok := bySKU[p.SKU]; ok {
			// unparsable overlay amounts keep the base value instead of
			// corrupting the record
			if validAmount(r.PriceNet) {
				p.PriceNet = r.PriceNet
				p.PriceGross = GrossPrice(r.PriceNet)
			}
			if validAmount(r.StockQuantity) {
				p.StockQuantity = r.StockQuantity
			}
			p.Active = r.Active
			if r.MinOrderQuantity != "" {
				p.MinOrderQuantity = r.MinOrderQuantity
			}
		}
		out[i] = p
	}
	return out
}
