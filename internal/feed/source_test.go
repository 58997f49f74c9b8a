package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const dualCatalogXML = `<products>
<product>
	<id>1</id><code>A1</code><name>Karma A</name><active>1</active>
	<category><![CDATA[Psy / Sucha karma]]></category>
	<price_netto>10.00</price_netto><quantity>3</quantity>
</product>
<product>
	<id>2</id><code>B2</code><name>Karma B</name><active>1</active>
	<category><![CDATA[Koty / Mokra karma]]></category>
	<price_netto>20.00</price_netto><quantity>7</quantity>
</product>
</products>`

const dualStockXML = `<products>
<product><code>A1</code><quantity>5</quantity><price_netto>11.50</price_netto><active>1</active><min_order>2</min_order></product>
</products>`

func newDualServer(t *testing.T, stockStatus int) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/catalog.xml", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(dualCatalogXML))
	})
	mux.HandleFunc("/stock.xml", func(w http.ResponseWriter, r *http.Request) {
		if stockStatus != http.StatusOK {
			http.Error(w, "stock feed down", stockStatus)
			return
		}
		w.Write([]byte(dualStockXML))
	})
	return httptest.NewServer(mux)
}

func TestDualSourceMergesStock(t *testing.T) {
	srv := newDualServer(t, http.StatusOK)
	defer srv.Close()

	source := NewDualSource(NewClient(5*time.Second), srv.URL+"/catalog.xml", srv.URL+"/stock.xml")
	products, err := source.Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}

	a1 := products[0]
	if a1.SKU != "A1" || a1.StockQuantity != "5" || a1.PriceNet != "11.50" || a1.MinOrderQuantity != "2" {
		t.Fatalf("stock overlay not merged: %+v", a1)
	}
	// the other product keeps its catalog values
	if products[1].StockQuantity != "7" || products[1].PriceNet != "20.00" {
		t.Fatalf("unmatched product changed: %+v", products[1])
	}
}

func TestDualSourceAbortsWhenStockFeedFails(t *testing.T) {
	srv := newDualServer(t, http.StatusInternalServerError)
	defer srv.Close()

	source := NewDualSource(NewClient(5*time.Second), srv.URL+"/catalog.xml", srv.URL+"/stock.xml")
	if _, err := source.Fetch(context.Background()); err == nil {
		t.Fatal("expected error when the stock feed fails, got none")
	}
}

func TestXMLSource(t *testing.T) {
	srv := newDualServer(t, http.StatusOK)
	defer srv.Close()

	source := NewXMLSource(NewClient(5*time.Second), srv.URL+"/catalog.xml")
	products, err := source.Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 2 || products[0].StockQuantity != "3" {
		t.Fatalf("unexpected products: %+v", products)
	}
}
