package source

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const httpFetchTimeout = 30 * time.Second

// HTTPSource fetches the catalog from an HTTP or HTTPS endpoint.
type HTTPSource struct {
	client *resty.Client
	url    string
}

func newHTTPSource(url string) *HTTPSource {
	return &HTTPSource{
		client: resty.New().SetTimeout(httpFetchTimeout),
		url:    url,
	}
}

// Fetch downloads the catalog. Any non-2xx status is an error.
func (s *HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	resp, err := s.client.R().SetContext(ctx).Get(s.url)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", s.url, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetching %s: %s", s.url, resp.Status())
	}
	return resp.Body(), nil
}

// Location returns the catalog URL.
func (s *HTTPSource) Location() string { return s.url }
