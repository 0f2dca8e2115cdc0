package glossary

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

type ClientConfig struct {
	URL       string
	UserAgent string
	Timeout   time.Duration
}

// Client fetches the raw glossary page.
type Client struct {
	http *resty.Client
	url  string
}

// StatusError is returned when the upstream answers with a non-success status.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.Code)
}

func NewClient(cfg ClientConfig) *Client {
	c := resty.New().
		SetTimeout(cfg.Timeout).
		SetHeader("User-Agent", cfg.UserAgent).
		SetHeader("Accept", "text/html")

	return &Client{http: c, url: cfg.URL}
}

// Fetch downloads the glossary page. It does not retry.
func (c *Client) Fetch(ctx context.Context) ([]byte, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		Get(c.url)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", c.url, err)
	}
	if resp.IsError() || resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return nil, fmt.Errorf("get %s: %w", c.url, &StatusError{Code: resp.StatusCode()})
	}

	return resp.Body(), nil
}
