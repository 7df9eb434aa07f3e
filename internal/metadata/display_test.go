package metadata_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dright/marketplace/internal/metadata"
	"github.com/dright/marketplace/internal/mocks"
	"github.com/dright/marketplace/internal/store/schema"
	"github.com/dright/marketplace/internal/types"
)

func TestEnhancer_Enhance_PreviewURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockResolver := mocks.NewMockMetadataResolver(ctrl)
	mockURIResolver := mocks.NewMockURIResolver(ctrl)
	mockHTTP := mocks.NewMockHTTPClient(ctrl)

	gateways := []string{"https://ipfs.io", "https://gateway.pinata.cloud"}
	enhancer := metadata.NewEnhancer(mockResolver, mockURIResolver, mockHTTP, gateways)

	right := &schema.Right{
		ID:         "9c5f2b6e-8a64-4f8e-9d20-51f3a1b7c003",
		PreviewURL: types.StringPtr("ipfs://QmPreview"),
	}

	primary := "https://ipfs.io/ipfs/QmPreview"

	// Mime sniffing resolves and samples the primary URL
	mockURIResolver.
		EXPECT().
		Resolve(gomock.Any(), primary).
		Return(primary, nil)
	mockHTTP.
		EXPECT().
		GetPartialContent(gomock.Any(), primary, int64(512)).
		Return([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, nil)

	display, err := enhancer.Enhance(context.Background(), right)
	require.NoError(t, err)

	assert.Equal(t, primary, display.ImageURL)
	assert.Equal(t, []string{"https://gateway.pinata.cloud/ipfs/QmPreview"}, display.ImageFallbacks)
	require.NotNil(t, display.MimeType)
	assert.Equal(t, "image/png", *display.MimeType)
}

func TestEnhancer_Enhance_FallsBackToMetadataImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockResolver := mocks.NewMockMetadataResolver(ctrl)
	mockURIResolver := mocks.NewMockURIResolver(ctrl)
	mockHTTP := mocks.NewMockHTTPClient(ctrl)

	enhancer := metadata.NewEnhancer(mockResolver, mockURIResolver, mockHTTP, []string{"https://ipfs.io"})

	right := &schema.Right{
		ID:          "9c5f2b6e-8a64-4f8e-9d20-51f3a1b7c004",
		MetadataURI: types.StringPtr("ipfs://QmMeta"),
	}

	mockResolver.
		EXPECT().
		Resolve(gomock.Any(), "ipfs://QmMeta").
		Return(&metadata.NormalizedMetadata{Name: "Right", Image: "https://cdn.example/image.png"}, nil)

	// Plain HTTPS image: no gateway fallbacks, sniffing hits it directly
	mockURIResolver.
		EXPECT().
		Resolve(gomock.Any(), "https://cdn.example/image.png").
		Return("https://cdn.example/image.png", nil)
	mockHTTP.
		EXPECT().
		GetPartialContent(gomock.Any(), "https://cdn.example/image.png", int64(512)).
		Return(nil, assert.AnError)

	display, err := enhancer.Enhance(context.Background(), right)
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example/image.png", display.ImageURL)
	assert.Nil(t, display.ImageFallbacks)
	assert.Nil(t, display.MimeType) // sniffing failure is non-fatal
}

func TestEnhancer_Enhance_NothingToDisplay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockResolver := mocks.NewMockMetadataResolver(ctrl)
	mockURIResolver := mocks.NewMockURIResolver(ctrl)
	mockHTTP := mocks.NewMockHTTPClient(ctrl)

	enhancer := metadata.NewEnhancer(mockResolver, mockURIResolver, mockHTTP, nil)

	display, err := enhancer.Enhance(context.Background(), &schema.Right{ID: "9c5f2b6e-8a64-4f8e-9d20-51f3a1b7c005"})
	require.NoError(t, err)

	assert.Empty(t, display.ImageURL)
	assert.Nil(t, display.MimeType)
}
