package metadata

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/dright/marketplace/internal/adapter"
	"github.com/dright/marketplace/internal/store/schema"
	"github.com/dright/marketplace/internal/types"
)

// Attribute is a single trait in the standard NFT metadata attribute list
type Attribute struct {
	TraitType string      `json:"trait_type"`
	Value     interface{} `json:"value"`
}

// RightMetadata is the canonical metadata document pinned to IPFS for a
// tokenized right, following the common NFT metadata shape
type RightMetadata struct {
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Image       string      `json:"image,omitempty"`
	ExternalURL string      `json:"external_url,omitempty"`
	Attributes  []Attribute `json:"attributes"`
}

// Builder builds the canonical metadata JSON for a right and hashes it
//
//go:generate mockgen -source=builder.go -destination=../mocks/metadata_builder.go -package=mocks -mock_names=Builder=MockMetadataBuilder
type Builder interface {
	// Build produces the metadata JSON document for a right
	Build(right *schema.Right, creator *schema.User) ([]byte, error)

	// Hash returns the hex-encoded SHA-256 of the canonicalized metadata JSON
	Hash(metadataJSON []byte) (string, error)
}

type builder struct {
	siteURL string
	json    adapter.JSON
	jcs     adapter.JCS
}

// NewBuilder creates a metadata builder
// siteURL is the public marketplace base URL used for external_url links
func NewBuilder(siteURL string, json adapter.JSON, jcs adapter.JCS) Builder {
	return &builder{siteURL: siteURL, json: json, jcs: jcs}
}

// Build produces the metadata JSON document for a right
func (b *builder) Build(right *schema.Right, creator *schema.User) ([]byte, error) {
	if right.Title == "" {
		return nil, fmt.Errorf("right %s has no title", right.ID)
	}

	meta := RightMetadata{
		Name:        right.Title,
		Description: right.Description,
		Image:       types.SafeString(right.PreviewURL),
		Attributes: []Attribute{
			{TraitType: "Right Type", Value: string(right.RightType)},
			{TraitType: "Creator", Value: creator.Address},
			{TraitType: "Chain", Value: string(right.Chain)},
			{TraitType: "Royalty (bps)", Value: right.RoyaltyBps},
			{TraitType: "Pays Dividends", Value: right.PaysDividends},
		},
	}

	if b.siteURL != "" {
		meta.ExternalURL = fmt.Sprintf("%s/rights/%s", b.siteURL, right.Slug)
	}

	metadataJSON, err := b.json.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal right metadata: %w", err)
	}

	return metadataJSON, nil
}

// Hash returns the hex-encoded SHA-256 of the canonicalized metadata JSON
func (b *builder) Hash(metadataJSON []byte) (string, error) {
	canonicalized, err := b.jcs.Transform(metadataJSON)
	if err != nil {
		return "", fmt.Errorf("failed to canonicalize metadata: %w", err)
	}
	hash := sha256.Sum256(canonicalized)
	return hex.EncodeToString(hash[:]), nil
}
