package feed

import (
	"context"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Source produces one full catalog snapshot per call. Every call fetches and
// parses the upstream feed from scratch; nothing is cached between calls.
type Source interface {
	Fetch(ctx context.Context) ([]Product, error)
}

// XMLSource reads the catalog from a single XML document.
type XMLSource struct {
	client *Client
	url    string
}

func NewXMLSource(client *Client, url string) *XMLSource {
	return &XMLSource{client: client, url: url}
}

func (s *XMLSource) Fetch(ctx context.Context) ([]Product, error) {
	doc, err := s.client.FetchDocument(ctx, s.url)
	if err != nil {
		return nil, err
	}

	products, err := ParseCatalog(doc)
	if err != nil {
		return nil, err
	}

	log.Debugf("feed: parsed %d products from %s", len(products), s.url)
	return products, nil
}

// DualSource reads a slow-changing catalog document and a fast-changing
// stock/price document, fetched concurrently, and merges the stock overlay
// onto the catalog. A failure of either document aborts the whole fetch; there
// is no partial-result fallback.
type DualSource struct {
	client     *Client
	catalogURL string
	stockURL   string
}

func NewDualSource(client *Client, catalogURL, stockURL string) *DualSource {
	return &DualSource{client: client, catalogURL: catalogURL, stockURL: stockURL}
}

func (s *DualSource) Fetch(ctx context.Context) ([]Product, error) {
	var (
		products []Product
		records  []StockRecord
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		doc, err := s.client.FetchDocument(ctx, s.catalogURL)
		if err != nil {
			return err
		}
		products, err = ParseCatalog(doc)
		return err
	})
	g.Go(func() error {
		doc, err := s.client.FetchDocument(ctx, s.stockURL)
		if err != nil {
			return err
		}
		records, err = ParseStock(doc)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Debugf("feed: merged %d stock records into %d products", len(records), len(products))
	return MergeStock(products, records), nil
}
