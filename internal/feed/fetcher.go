package feed

import (
	"context"
	"time"

	"resty.dev/v3"
)

// Client fetches raw feed documents over HTTP. No retry policy: upstream
// failures propagate directly to the caller as FetchError.
type Client struct {
	http *resty.Client
}

func NewClient(timeout time.Duration) *Client {
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "application/xml, text/xml;q=0.9, */*;q=0.8").
		SetHeader("User-Agent", "miskazdrowia-storefront/1.0")

	return &Client{http: client}
}

// FetchDocument retrieves one full document body. Non-2xx responses surface
// the status and a slice of the body for diagnostics.
func (c *Client) FetchDocument(ctx context.Context, url string) ([]byte, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	if resp.IsError() {
		return nil, &FetchError{URL: url, Status: resp.StatusCode(), Body: truncate(resp.String(), 512)}
	}
	return []byte(resp.String()), nil
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}
