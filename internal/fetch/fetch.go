package fetch

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"resty.dev/v3"
)

// Client downloads image bytes over HTTP.
type Client struct {
	client *resty.Client
}

func NewClient(timeout time.Duration) *Client {
	client := resty.New()
	client.SetTimeout(timeout)
	client.SetHeader("User-Agent", "slidepager")
	client.SetHeader("Accept", "image/*")
	return &Client{client: client}
}

func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	res, err := c.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, fmt.Errorf("error fetching %s: %w", url, err)
	}
	if res.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("error fetching %s: %s", url, res.Status())
	}
	return res.Bytes(), nil
}

func (c *Client) Close() error {
	return c.client.Close()
}

// Fetcher is what Assets needs from a Client.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Assets lazily downloads the default before and after images and keeps
// them for every later request. A failed download is retried on the next
// call.
type Assets struct {
	mu        sync.Mutex
	fetcher   Fetcher
	beforeURL string
	afterURL  string
	before    []byte
	after     []byte
}

func NewAssets(fetcher Fetcher, beforeURL, afterURL string) *Assets {
	return &Assets{
		fetcher:   fetcher,
		beforeURL: beforeURL,
		afterURL:  afterURL,
	}
}

func (a *Assets) Load(ctx context.Context) (before, after []byte, err error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.before == nil {
		log.Infof("fetching default image %s", a.beforeURL)
		b, err := a.fetcher.Fetch(ctx, a.beforeURL)
		if err != nil {
			return nil, nil, err
		}
		a.before = b
	}
	if a.after == nil {
		log.Infof("fetching default image %s", a.afterURL)
		b, err := a.fetcher.Fetch(ctx, a.afterURL)
		if err != nil {
			return nil, nil, err
		}
		a.after = b
	}
	return a.before, a.after, nil
}
