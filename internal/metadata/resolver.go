package metadata

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gowebpki/jcs"

	"github.com/dright/marketplace/internal/adapter"
	"github.com/dright/marketplace/internal/types"
	"github.com/dright/marketplace/internal/uri"
)

const (
	// MaxMetadataBytes caps the size of a metadata document fetched back from IPFS
	MaxMetadataBytes = 1 << 20 // 1 MiB
	// MaxNameLength caps the name field of a metadata document
	MaxNameLength = 256
)

// NormalizedMetadata represents a metadata document fetched back from storage
type NormalizedMetadata struct {
	Raw         map[string]interface{} `json:"raw"`
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Image       string                 `json:"image"`
	ExternalURL string                 `json:"external_url"`
	RightType   string                 `json:"right_type"`
}

// RawHash returns the SHA-256 of the canonicalized raw metadata and the raw metadata JSON itself
func (n *NormalizedMetadata) RawHash() ([]byte, []byte, error) {
	metadataJSON, err := json.Marshal(n.Raw)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal metadata: %w", err)
	}

	canonicalizedMetadata, err := jcs.Transform(metadataJSON)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to canonicalize metadata: %w", err)
	}
	hash := sha256.Sum256(canonicalizedMetadata)
	return hash[:], metadataJSON, nil
}

// Resolver fetches a pinned metadata document back from its URI and validates it
//
//go:generate mockgen -source=resolver.go -destination=../mocks/metadata_resolver.go -package=mocks -mock_names=Resolver=MockMetadataResolver
type Resolver interface {
	// Resolve fetches and normalizes the metadata document behind a URI
	Resolve(ctx context.Context, metadataURI string) (*NormalizedMetadata, error)

	// Verify fetches the document and checks its canonical hash against the expected hex digest
	Verify(ctx context.Context, metadataURI, expectedHash string) (bool, error)
}

type resolver struct {
	uriResolver uri.Resolver
	httpClient  adapter.HTTPClient
	json        adapter.JSON
}

func NewResolver(uriResolver uri.Resolver, httpClient adapter.HTTPClient, json adapter.JSON) Resolver {
	return &resolver{
		uriResolver: uriResolver,
		httpClient:  httpClient,
		json:        json,
	}
}

func (r *resolver) Resolve(ctx context.Context, metadataURI string) (*NormalizedMetadata, error) {
	raw, err := r.fetchMetadataFromURI(ctx, metadataURI)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch metadata from URI %s: %w", metadataURI, err)
	}

	normalized := normalizeMetadata(raw)
	if err := validateMetadata(normalized); err != nil {
		return nil, fmt.Errorf("invalid metadata at %s: %w", metadataURI, err)
	}

	return normalized, nil
}

// Verify fetches the document and checks its canonical hash against the expected hex digest
func (r *resolver) Verify(ctx context.Context, metadataURI, expectedHash string) (bool, error) {
	normalized, err := r.Resolve(ctx, metadataURI)
	if err != nil {
		return false, err
	}

	hash, _, err := normalized.RawHash()
	if err != nil {
		return false, err
	}

	return strings.EqualFold(hex.EncodeToString(hash), expectedHash), nil
}

// fetchMetadataFromURI fetches metadata from a given URI, handling different schemes
func (r *resolver) fetchMetadataFromURI(ctx context.Context, metadataURI string) (map[string]interface{}, error) {
	if strings.HasPrefix(metadataURI, "data:") {
		return r.parseDataURI(metadataURI)
	}

	// ipfs:// and gateway-pinned URLs resolve to a live gateway first
	resolvedURL, err := r.uriResolver.Resolve(ctx, metadataURI)
	if err != nil {
		return nil, err
	}

	content, err := r.httpClient.GetPartialContent(ctx, resolvedURL, MaxMetadataBytes+1)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch URL: %w", err)
	}
	if len(content) > MaxMetadataBytes {
		return nil, fmt.Errorf("metadata document exceeds %d bytes", MaxMetadataBytes)
	}

	var metadata map[string]interface{}
	if err := r.json.Unmarshal(content, &metadata); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	return metadata, nil
}

// parseDataURI parses an inline data URI carrying a JSON document
func (r *resolver) parseDataURI(metadataURI string) (map[string]interface{}, error) {
	parsed, err := types.ParseDataURI(metadataURI)
	if err != nil {
		return nil, err
	}

	if len(parsed.DecodedData) > MaxMetadataBytes {
		return nil, fmt.Errorf("metadata document exceeds %d bytes", MaxMetadataBytes)
	}

	var metadata map[string]interface{}
	if err := r.json.Unmarshal(parsed.DecodedData, &metadata); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	return metadata, nil
}

// normalizeMetadata maps the raw document onto the fields the marketplace cares about
func normalizeMetadata(metadata map[string]interface{}) *NormalizedMetadata {
	normalized := &NormalizedMetadata{Raw: metadata}

	if n, ok := metadata["name"].(string); ok {
		normalized.Name = n
	}
	if d, ok := metadata["description"].(string); ok {
		normalized.Description = d
	}
	if i, ok := metadata["image"].(string); ok {
		normalized.Image = i
	}
	if e, ok := metadata["external_url"].(string); ok {
		normalized.ExternalURL = e
	}

	// The right type travels as a standard attribute
	if attrs, ok := metadata["attributes"].([]interface{}); ok {
		for _, attr := range attrs {
			attrMap, ok := attr.(map[string]interface{})
			if !ok {
				continue
			}
			traitType, ok := attrMap["trait_type"].(string)
			if !ok || !strings.EqualFold(traitType, "Right Type") {
				continue
			}
			if v, ok := attrMap["value"].(string); ok {
				normalized.RightType = v
			}
		}
	}

	return normalized
}

// validateMetadata enforces the name and size guards on a fetched document
func validateMetadata(normalized *NormalizedMetadata) error {
	name := strings.TrimSpace(normalized.Name)
	if name == "" {
		return fmt.Errorf("metadata name is empty")
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return fmt.Errorf("metadata name exceeds %d characters", MaxNameLength)
	}
	return nil
}
