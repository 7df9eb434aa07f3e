package uri

import (
	"context"
	"fmt"
	"strings"

	"github.com/dright/marketplace/internal/adapter"
)

// Config holds configuration for the URI resolver
type Config struct {
	// IPFSGateways is the list of IPFS gateways to try
	IPFSGateways []string
}

// Resolver defines the interface for resolving URIs
//
//go:generate mockgen -source=resolver.go -destination=../mocks/uri_resolver.go -package=mocks -mock_names=Resolver=MockURIResolver
type Resolver interface {
	// Resolve resolves the URI to a canonical URL
	// It handles the ipfs:// scheme and gateway-pinned /ipfs/ paths by racing
	// the configured gateways and returning the first that answers
	// data: URIs and regular HTTP(S) URLs pass through unchanged
	Resolve(ctx context.Context, uri string) (string, error)
}

type resolver struct {
	httpClient adapter.HTTPClient
	config     *Config
}

func NewResolver(httpClient adapter.HTTPClient, config *Config) Resolver {
	return &resolver{
		httpClient: httpClient,
		config:     config,
	}
}

func (r *resolver) Resolve(ctx context.Context, uri string) (string, error) {
	// Handle IPFS URLs
	if cid, ok := strings.CutPrefix(uri, "ipfs://"); ok {
		return FindWorkingIPFSGateway(ctx, r.httpClient, cid, r.config.IPFSGateways)
	}

	// Data URIs are self-contained
	if strings.HasPrefix(uri, "data:") {
		return uri, nil
	}

	// Handle IPFS gateway URLs (e.g., https://example.com/ipfs/QmXxx)
	// Re-resolve across our own gateways so a single dead gateway does not
	// break the asset
	if strings.Contains(uri, "/ipfs/") {
		parts := strings.Split(uri, "/ipfs/")
		if len(parts) >= 2 && parts[1] != "" {
			return FindWorkingIPFSGateway(ctx, r.httpClient, parts[1], r.config.IPFSGateways)
		}
	}

	if !strings.HasPrefix(uri, "http://") && !strings.HasPrefix(uri, "https://") {
		return "", fmt.Errorf("unsupported URI scheme: %s", uri)
	}

	// Regular HTTP(S) URL
	return uri, nil
}
