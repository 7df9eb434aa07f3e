package ratelimit

import (
	"context"
	"io"
	"net/http"

	"github.com/dright/marketplace/internal/adapter"
)

// limitedHTTPClient decorates an HTTP client so every request first takes a
// token for one named provider. Mirror node, pinning, and FX rate traffic
// each get their own provider budget.
type limitedHTTPClient struct {
	inner    adapter.HTTPClient
	proxy    Proxy
	provider string
}

// NewHTTPClient wraps an HTTP client with the proxy's limit for provider.
// A nil proxy returns the inner client unchanged.
func NewHTTPClient(inner adapter.HTTPClient, proxy Proxy, provider string) adapter.HTTPClient {
	if proxy == nil {
		return inner
	}
	return &limitedHTTPClient{
		inner:    inner,
		proxy:    proxy,
		provider: provider,
	}
}

func (c *limitedHTTPClient) Get(ctx context.Context, url string, result interface{}) error {
	_, err := c.proxy.Request(ctx, c.provider, func(ctx context.Context) (interface{}, error) {
		return nil, c.inner.Get(ctx, url, result)
	})
	return err
}

func (c *limitedHTTPClient) GetWithHeaders(ctx context.Context, url string, headers map[string]string, result interface{}) error {
	_, err := c.proxy.Request(ctx, c.provider, func(ctx context.Context) (interface{}, error) {
		return nil, c.inner.GetWithHeaders(ctx, url, headers, result)
	})
	return err
}

func (c *limitedHTTPClient) GetResponse(ctx context.Context, url string, headers map[string]string) (*http.Response, error) {
	return Request(ctx, c.proxy, c.provider, func(ctx context.Context) (*http.Response, error) {
		return c.inner.GetResponse(ctx, url, headers)
	})
}

func (c *limitedHTTPClient) Post(ctx context.Context, url string, contentType string, body io.Reader) ([]byte, error) {
	return Request(ctx, c.proxy, c.provider, func(ctx context.Context) ([]byte, error) {
		return c.inner.Post(ctx, url, contentType, body)
	})
}

func (c *limitedHTTPClient) PostWithHeadersNoRetry(ctx context.Context, url string, headers map[string]string, body io.Reader) (*http.Response, error) {
	return Request(ctx, c.proxy, c.provider, func(ctx context.Context) (*http.Response, error) {
		return c.inner.PostWithHeadersNoRetry(ctx, url, headers, body)
	})
}

func (c *limitedHTTPClient) Head(ctx context.Context, url string) (*http.Response, error) {
	return Request(ctx, c.proxy, c.provider, func(ctx context.Context) (*http.Response, error) {
		return c.inner.Head(ctx, url)
	})
}

func (c *limitedHTTPClient) GetPartialContent(ctx context.Context, url string, maxBytes int64) ([]byte, error) {
	return Request(ctx, c.proxy, c.provider, func(ctx context.Context) ([]byte, error) {
		return c.inner.GetPartialContent(ctx, url, maxBytes)
	})
}
