package metadata

import (
	"context"
	"fmt"

	"github.com/dright/marketplace/internal/adapter"
	"github.com/dright/marketplace/internal/store/schema"
	"github.com/dright/marketplace/internal/types"
	"github.com/dright/marketplace/internal/uri"
)

// DisplayMetadata carries the render-ready fields for a right: the primary
// display URL, the ordered gateway fallbacks a client should try next, and
// the detected content type
type DisplayMetadata struct {
	ImageURL       string
	ImageFallbacks []string
	MimeType       *string
}

// Enhancer decorates stored rights with display URLs resolved from their
// pinned metadata
//
//go:generate mockgen -source=display.go -destination=../mocks/metadata_enhancer.go -package=mocks -mock_names=Enhancer=MockMetadataEnhancer
type Enhancer interface {
	// Enhance resolves the display image for a right and detects its mime type
	Enhance(ctx context.Context, right *schema.Right) (*DisplayMetadata, error)
}

type enhancer struct {
	resolver     Resolver
	uriResolver  uri.Resolver
	httpClient   adapter.HTTPClient
	ipfsGateways []string
}

func NewEnhancer(resolver Resolver, uriResolver uri.Resolver, httpClient adapter.HTTPClient, ipfsGateways []string) Enhancer {
	return &enhancer{
		resolver:     resolver,
		uriResolver:  uriResolver,
		httpClient:   httpClient,
		ipfsGateways: ipfsGateways,
	}
}

// Enhance resolves the display image for a right and detects its mime type
func (e *enhancer) Enhance(ctx context.Context, right *schema.Right) (*DisplayMetadata, error) {
	imageURI := types.SafeString(right.PreviewURL)

	// Fall back to the image recorded in the pinned metadata document
	if imageURI == "" && !types.StringNilOrEmpty(right.MetadataURI) {
		normalized, err := e.resolver.Resolve(ctx, *right.MetadataURI)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve metadata for right %s: %w", right.ID, err)
		}
		imageURI = normalized.Image
	}

	if imageURI == "" {
		return &DisplayMetadata{}, nil
	}

	primary, fallbacks := uri.ImageURLWithFallback(imageURI, e.ipfsGateways)

	display := &DisplayMetadata{
		ImageURL:       primary,
		ImageFallbacks: fallbacks,
	}
	display.MimeType = detectMimeType(ctx, e.httpClient, e.uriResolver, nil, &primary)

	return display, nil
}
