package metadata_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dright/marketplace/internal/adapter"
	"github.com/dright/marketplace/internal/domain"
	"github.com/dright/marketplace/internal/metadata"
	"github.com/dright/marketplace/internal/store/schema"
	"github.com/dright/marketplace/internal/types"
)

func TestBuilder_Build(t *testing.T) {
	builder := metadata.NewBuilder("https://dright.example", adapter.NewJSON(), adapter.NewJCS())

	right := &schema.Right{
		ID:            "9c5f2b6e-8a64-4f8e-9d20-51f3a1b7c001",
		Slug:          "film-score-royalty",
		Title:         "Film Score Royalty Share",
		Description:   "25% royalty share of streaming revenue",
		RightType:     domain.RightTypeRoyalty,
		Chain:         domain.BlockchainHedera,
		RoyaltyBps:    500,
		PaysDividends: true,
		PreviewURL:    types.StringPtr("ipfs://QmPreview"),
	}
	creator := &schema.User{Address: "0.0.12345", Chain: domain.BlockchainHedera}

	metadataJSON, err := builder.Build(right, creator)
	require.NoError(t, err)

	var doc metadata.RightMetadata
	require.NoError(t, json.Unmarshal(metadataJSON, &doc))

	assert.Equal(t, "Film Score Royalty Share", doc.Name)
	assert.Equal(t, "25% royalty share of streaming revenue", doc.Description)
	assert.Equal(t, "ipfs://QmPreview", doc.Image)
	assert.Equal(t, "https://dright.example/rights/film-score-royalty", doc.ExternalURL)

	attrs := map[string]interface{}{}
	for _, a := range doc.Attributes {
		attrs[a.TraitType] = a.Value
	}
	assert.Equal(t, "royalty", attrs["Right Type"])
	assert.Equal(t, "0.0.12345", attrs["Creator"])
	assert.Equal(t, "hedera", attrs["Chain"])
	assert.Equal(t, float64(500), attrs["Royalty (bps)"])
	assert.Equal(t, true, attrs["Pays Dividends"])
}

func TestBuilder_Build_MissingTitle(t *testing.T) {
	builder := metadata.NewBuilder("https://dright.example", adapter.NewJSON(), adapter.NewJCS())

	right := &schema.Right{ID: "9c5f2b6e-8a64-4f8e-9d20-51f3a1b7c002"}
	creator := &schema.User{Address: "0.0.12345"}

	_, err := builder.Build(right, creator)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no title")
}

func TestBuilder_Hash_Deterministic(t *testing.T) {
	builder := metadata.NewBuilder("", adapter.NewJSON(), adapter.NewJCS())

	// Differently ordered keys canonicalize to the same digest
	hashA, err := builder.Hash([]byte(`{"name":"Right","attributes":[]}`))
	require.NoError(t, err)
	hashB, err := builder.Hash([]byte(`{"attributes":[],"name":"Right"}`))
	require.NoError(t, err)

	assert.Equal(t, hashA, hashB)
	assert.Len(t, hashA, 64) // hex-encoded SHA-256

	hashC, err := builder.Hash([]byte(`{"name":"Other","attributes":[]}`))
	require.NoError(t, err)
	assert.NotEqual(t, hashA, hashC)
}
