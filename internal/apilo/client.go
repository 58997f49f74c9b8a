// Package apilo implements the ERP REST backend of the catalog: an
// OAuth2-style token exchange plus a paginated warehouse-product listing,
// mapped onto the same Product records the XML feeds produce.
package apilo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
	"resty.dev/v3"

	"github.com/miskazdrowia/shop-backend/internal/feed"
)

type Config struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	AuthCode     string
	RefreshToken string
	PageLimit    int
}

// Client satisfies feed.Source against the ERP REST API.
type Client struct {
	cfg  Config
	http *resty.Client

	mu  sync.Mutex
	tok Token
	sf  singleflight.Group
}

func New(cfg Config, timeout time.Duration) *Client {
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &Client{cfg: cfg, http: client}
}

type apiloImage struct {
	URL string `json:"url"`
}

// category entries arrive either as objects with a name or as bare strings
type apiloCategory struct {
	Name string `json:"name"`
}

func (c *apiloCategory) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		c.Name = s
		return nil
	}
	type alias apiloCategory
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	c.Name = a.Name
	return nil
}

type apiloProduct struct {
	ID              json.Number     `json:"id"`
	SKU             string          `json:"sku"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	EAN             string          `json:"ean"`
	Unit            string          `json:"unit"`
	Weight          json.Number     `json:"weight"`
	Quantity        json.Number     `json:"quantity"`
	PriceWithoutTax json.Number     `json:"priceWithoutTax"`
	PriceWithTax    json.Number     `json:"priceWithTax"`
	Status          int             `json:"status"`
	Images          []apiloImage    `json:"images"`
	Categories      []apiloCategory `json:"categories"`
}

type productPage struct {
	Products   []apiloProduct `json:"products"`
	TotalCount int            `json:"totalCount"`
}

// Fetch pages through the warehouse product listing until totalCount is
// reached and maps the result to catalog products.
func (c *Client) Fetch(ctx context.Context) ([]feed.Product, error) {
	limit := c.cfg.PageLimit
	if limit <= 0 {
		limit = 100
	}

	var out []feed.Product
	for offset := 0; ; offset += limit {
		page, err := c.fetchPage(ctx, limit, offset)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Products {
			if p, ok := raw.toProduct(); ok {
				out = append(out, p)
			}
		}
		if len(page.Products) < limit {
			break
		}
		if page.TotalCount > 0 && offset+limit >= page.TotalCount {
			break
		}
	}

	log.Debugf("apilo: fetched %d products", len(out))
	return out, nil
}

// fetchPage requests one page. On a 401 it refreshes the token and retries
// exactly once; if the retry fails too, the original auth error surfaces.
func (c *Client) fetchPage(ctx context.Context, limit, offset int) (*productPage, error) {
	tok, err := c.token(ctx, false)
	if err != nil {
		return nil, err
	}

	resp, err := c.getPage(ctx, tok, limit, offset)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode() == http.StatusUnauthorized {
		orig := &feed.AuthError{Status: resp.StatusCode(), Body: truncate(resp.String(), 512)}

		tok, err = c.token(ctx, true)
		if err != nil {
			return nil, orig
		}
		retry, err := c.getPage(ctx, tok, limit, offset)
		if err != nil || retry.IsError() {
			return nil, orig
		}
		resp = retry
	} else if resp.IsError() {
		return nil, &feed.FetchError{
			URL:    c.productURL(limit, offset),
			Status: resp.StatusCode(),
			Body:   truncate(resp.String(), 512),
		}
	}

	var page productPage
	if err := json.Unmarshal([]byte(resp.String()), &page); err != nil {
		return nil, &feed.ParseError{Err: err}
	}
	return &page, nil
}

func (c *Client) getPage(ctx context.Context, token string, limit, offset int) (*resty.Response, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		Get(c.productURL(limit, offset))
	if err != nil {
		return nil, &feed.FetchError{URL: c.productURL(limit, offset), Err: err}
	}
	return resp, nil
}

func (c *Client) productURL(limit, offset int) string {
	return fmt.Sprintf("%s/rest/api/warehouse/product/?limit=%d&offset=%d", c.cfg.BaseURL, limit, offset)
}

func (raw apiloProduct) toProduct() (feed.Product, bool) {
	id := raw.ID.String()
	sku := raw.SKU
	if sku == "" {
		sku = id
	}
	if id == "" || sku == "" || raw.Name == "" {
		return feed.Product{}, false
	}

	var categories []string
	for _, cat := range raw.Categories {
		if cat.Name != "" {
			categories = append(categories, cat.Name)
		}
	}

	var images []string
	for _, img := range raw.Images {
		if img.URL != "" {
			images = append(images, img.URL)
		}
	}

	net := raw.PriceWithoutTax.String()
	if net == "" {
		net = "0"
	}
	gross := raw.PriceWithTax.String()
	if gross == "" {
		gross = feed.GrossPrice(net)
	}

	quantity := raw.Quantity.String()
	if quantity == "" {
		quantity = "0"
	}

	return feed.Product{
		ID:               id,
		SKU:              sku,
		Name:             raw.Name,
		Description:      raw.Description,
		Categories:       categories,
		PriceNet:         net,
		PriceGross:       gross,
		DefaultPriceNet:  net,
		StockQuantity:    quantity,
		Active:           raw.Status == 1,
		Images:           images,
		Weight:           raw.Weight.String(),
		Unit:             raw.Unit,
		EAN:              raw.EAN,
		MinOrderQuantity: "1",
	}, true
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}
