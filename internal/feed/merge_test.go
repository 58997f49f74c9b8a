package feed

import (
	"reflect"
	"testing"
)

func baseProducts() []Product {
	return []Product{
		{
			ID: "101", SKU: "A1", Name: "Karma sucha premium",
			Categories: []string{"Psy / Sucha karma"},
			PriceNet:   "10.00", PriceGross: "12.30", StockQuantity: "3",
			Active: true, MinOrderQuantity: "1",
		},
		{
			ID: "103", SKU: "B2", Name: "Mokra karma dla kota",
			Categories: []string{"Koty / Mokra karma"},
			PriceNet:   "20.00", PriceGross: "24.60", StockQuantity: "7",
			Active: true, MinOrderQuantity: "1",
		},
	}
}

func TestMergeStockOverlaysMatchedFieldsOnly(t *testing.T) {
	records := []StockRecord{
		{SKU: "A1", PriceNet: "11.50", StockQuantity: "5", Active: true, MinOrderQuantity: "2"},
		{SKU: "UNKNOWN", PriceNet: "99.99", StockQuantity: "1", Active: true},
	}

	merged := MergeStock(baseProducts(), records)
	if len(merged) != 2 {
		t.Fatalf("expected 2 products, got %d", len(merged))
	}

	a1 := merged[0]
	if a1.PriceNet != "11.50" || a1.StockQuantity != "5" || a1.MinOrderQuantity != "2" || !a1.Active {
		t.Fatalf("overlay fields not applied: %+v", a1)
	}
	if a1.PriceGross != "14.15" {
		t.Errorf("gross price not re-derived: %q", a1.PriceGross)
	}
	if a1.Name != "Karma sucha premium" || a1.ID != "101" || len(a1.Categories) != 1 {
		t.Errorf("non-overlay fields changed: %+v", a1)
	}

	// B2 has no overlay record: byte-identical to the base
	if !reflect.DeepEqual(merged[1], baseProducts()[1]) {
		t.Errorf("unmatched product changed: %+v", merged[1])
	}
}

func TestMergeStockIdempotent(t *testing.T) {
	records := []StockRecord{{SKU: "A1", PriceNet: "11.50", StockQuantity: "5", Active: true, MinOrderQuantity: "2"}}

	once := MergeStock(baseProducts(), records)
	twice := MergeStock(once, records)
	if !reflect.DeepEqual(once, twice) {
		t.Fatal("merge is not idempotent")
	}
}

func TestMergeStockKeepsBaseOnUnparsableAmounts(t *testing.T) {
	records := []StockRecord{{SKU: "A1", PriceNet: "n/a", StockQuantity: "brak", Active: true}}

	merged := MergeStock(baseProducts(), records)
	if merged[0].PriceNet != "10.00" || merged[0].StockQuantity != "3" {
		t.Fatalf("unparsable overlay amounts corrupted the record: %+v", merged[0])
	}
}

func TestMergeStockNoRecords(t *testing.T) {
	base := baseProducts()
	if !reflect.DeepEqual(MergeStock(base, nil), base) {
		t.Fatal("empty overlay must leave the catalog untouched")
	}
}
