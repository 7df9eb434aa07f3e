//go:build cgo

package preview

import (
	"bytes"
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/dright/marketplace/internal/adapter"
	"github.com/dright/marketplace/internal/logger"
)

// RasterizerConfig holds configuration for the SVG rasterizer
type RasterizerConfig struct {
	// Width is the target width for rasterization (0 = use SVG natural size).
	// Height follows the SVG aspect ratio.
	Width int
}

type rasterizer struct {
	resvgClient  adapter.ResvgClient
	imageEncoder adapter.ImageEncoder
	width        int
}

// NewRasterizer creates an SVG rasterizer backed by resvg
func NewRasterizer(resvgClient adapter.ResvgClient, imageEncoder adapter.ImageEncoder, cfg *RasterizerConfig) Rasterizer {
	if cfg == nil {
		cfg = &RasterizerConfig{}
	}

	return &rasterizer{
		resvgClient:  resvgClient,
		imageEncoder: imageEncoder,
		width:        cfg.Width,
	}
}

// Rasterize converts SVG data to PNG format
func (r *rasterizer) Rasterize(ctx context.Context, svgData []byte) ([]byte, error) {
	img, err := r.resvgClient.Render(svgData, r.width)
	if err != nil {
		return nil, fmt.Errorf("failed to render SVG: %w", err)
	}

	bounds := img.Bounds()
	logger.DebugCtx(ctx, "SVG rendered",
		zap.Int("width", bounds.Dx()),
		zap.Int("height", bounds.Dy()),
	)

	var buf bytes.Buffer
	if err := r.imageEncoder.EncodePNG(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}

	return buf.Bytes(), nil
}
