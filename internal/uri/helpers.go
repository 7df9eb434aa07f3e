package uri

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/dright/marketplace/internal/adapter"
	"github.com/dright/marketplace/internal/domain"
	"github.com/dright/marketplace/internal/logger"
)

// FindWorkingIPFSGateway finds a working IPFS gateway for the given CID
// It tries all gateways in parallel and returns the first working one
func FindWorkingIPFSGateway(ctx context.Context, httpClient adapter.HTTPClient, cid string, gateways []string) (string, error) {
	if len(gateways) == 0 {
		return "", fmt.Errorf("no IPFS gateways configured")
	}

	logger.InfoCtx(ctx, "Finding working IPFS gateway", zap.String("cid", cid), zap.Int("gateways", len(gateways)))

	// Try all gateways in parallel
	type result struct {
		url string
		err error
	}

	resultCh := make(chan result, len(gateways))
	var wg sync.WaitGroup

	// Test each gateway with HEAD request
	for _, gateway := range gateways {
		wg.Add(1)
		go func(gw string) {
			defer wg.Done()

			url := fmt.Sprintf("%s/ipfs/%s", gw, cid)
			resp, err := httpClient.Head(ctx, url)
			if err != nil {
				resultCh <- result{err: err}
				return
			}
			if err := resp.Body.Close(); err != nil {
				logger.WarnCtx(ctx, "failed to close response body", zap.Error(err), zap.String("url", url))
			}

			if resp.StatusCode == http.StatusOK {
				resultCh <- result{url: url}
			} else {
				resultCh <- result{err: fmt.Errorf("gateway returned status %d", resp.StatusCode)}
			}
		}(gateway)
	}

	// Wait for all goroutines in a separate goroutine
	go func() {
		wg.Wait()
		close(resultCh)
	}()

	// Return the first successful result
	for res := range resultCh {
		if res.err == nil {
			logger.InfoCtx(ctx, "Found working IPFS gateway", zap.String("url", res.url))
			return res.url, nil
		}
	}

	return "", fmt.Errorf("no working IPFS gateway found for CID: %s", cid)
}

// ImageURLWithFallback maps a stored image URI to the primary display URL
// plus the ordered fallback URLs a client should try next
// IPFS URIs fan out across the configured gateways; everything else passes
// through with no fallbacks
func ImageURLWithFallback(uri string, gateways []string) (string, []string) {
	if uri == "" {
		return "", nil
	}

	cid := ""
	if c, ok := strings.CutPrefix(uri, "ipfs://"); ok {
		cid = c
	} else if strings.Contains(uri, "/ipfs/") {
		parts := strings.Split(uri, "/ipfs/")
		if len(parts) >= 2 && parts[1] != "" {
			cid = parts[1]
		}
	}

	if cid == "" {
		// data: URIs and plain HTTP(S) URLs have nothing to fall back to
		return uri, nil
	}

	if len(gateways) == 0 {
		gateways = []string{domain.DEFAULT_IPFS_GATEWAY}
	}

	urls := make([]string, 0, len(gateways))
	for _, gw := range gateways {
		urls = append(urls, fmt.Sprintf("%s/ipfs/%s", strings.TrimSuffix(gw, "/"), cid))
	}

	return urls[0], urls[1:]
}
