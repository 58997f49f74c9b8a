package catalog

import (
	"context"

	"github.com/samber/lo"

	"github.com/miskazdrowia/shop-backend/internal/category"
	"github.com/miskazdrowia/shop-backend/internal/feed"
)

// Service is the externally-facing catalog read operation. It owns no state:
// every call fetches, parses and merges the upstream feed from scratch, so
// repeated calls impose repeated upstream load.
type Service struct {
	source feed.Source
}

func NewService(source feed.Source) *Service {
	return &Service{source: source}
}

// BySKU returns the product with the given SKU, or nil when no product
// matches; a missing SKU is never an error. Inactive products stay resolvable
// here so an existing cart line keeps rendering after its product is
// deactivated.
func (s *Service) BySKU(ctx context.Context, sku string) (*feed.Product, error) {
	products, err := s.source.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].SKU == sku {
			return &products[i], nil
		}
	}
	return nil, nil
}

// ByCategory returns the active products matching a URL category path, in
// feed order.
func (s *Service) ByCategory(ctx context.Context, urlPath string) ([]feed.Product, error) {
	products, err := s.source.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	prefix := category.PathToPrefix(urlPath)
	return lo.Filter(products, func(p feed.Product, _ int) bool {
		return p.Active && category.Matches(p, prefix)
	}), nil
}

// List returns the full merged catalog without inactive products, in feed
// order.
func (s *Service) List(ctx context.Context) ([]feed.Product, error) {
	products, err := s.source.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Filter(products, func(p feed.Product, _ int) bool { return p.Active }), nil
}

// CategoryTree builds the navigation tree for one top-level group from the
// categories of the active products.
func (s *Service) CategoryTree(ctx context.Context, topLevel string) ([]*category.Node, error) {
	products, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return category.BuildTree(products, topLevel), nil
}
