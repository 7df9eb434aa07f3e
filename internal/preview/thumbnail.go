//go:build cgo

package preview

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/alitto/pond/v2"
	"github.com/cshum/vipsgen/vips"

	"github.com/dright/marketplace/internal/adapter"
)

// ThumbnailConfig bounds the thumbnail output and render concurrency
type ThumbnailConfig struct {
	// MaxDimension caps the longer edge of the output in pixels
	MaxDimension int
	// Quality is the JPEG quality (1-100)
	Quality int
	// WorkerConcurrency bounds concurrent vips operations
	WorkerConcurrency int
}

type thumbnailer struct {
	config     ThumbnailConfig
	pool       pond.ResultPool[[]byte]
	vipsClient adapter.VipsClient
}

// NewThumbnailer creates a vips-backed thumbnailer with a bounded worker
// pool. Vips is initialized once here and released by Close.
func NewThumbnailer(cfg ThumbnailConfig, vipsClient adapter.VipsClient) Thumbnailer {
	if cfg.MaxDimension <= 0 {
		cfg.MaxDimension = 1024
	}
	if cfg.Quality <= 0 {
		cfg.Quality = 85
	}
	if cfg.WorkerConcurrency <= 0 {
		cfg.WorkerConcurrency = 2
	}

	vipsClient.Startup(&vips.Config{
		ConcurrencyLevel: cfg.WorkerConcurrency,
		MaxCacheMem:      100 * 1024 * 1024,
		MaxCacheSize:     500,
	})

	return &thumbnailer{
		config:     cfg,
		pool:       pond.NewResultPool[[]byte](cfg.WorkerConcurrency),
		vipsClient: vipsClient,
	}
}

// Thumbnail re-encodes the image as a JPEG bounded to MaxDimension
func (t *thumbnailer) Thumbnail(ctx context.Context, data []byte) ([]byte, string, error) {
	task := t.pool.SubmitErr(func() ([]byte, error) {
		return t.render(data)
	})

	result, err := task.Wait()
	if err != nil {
		return nil, "", err
	}
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}
	return result, "image/jpeg", nil
}

func (t *thumbnailer) render(data []byte) ([]byte, error) {
	source := t.vipsClient.NewSource(io.NopCloser(bytes.NewReader(data)))
	defer source.Close()

	img, err := t.vipsClient.NewImageFromSource(source, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decode artwork: %w", err)
	}
	defer img.Close()

	width, height := img.Width(), img.Height()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("artwork has invalid dimensions %dx%d", width, height)
	}

	longest := width
	if height > longest {
		longest = height
	}
	if longest > t.config.MaxDimension {
		scale := float64(t.config.MaxDimension) / float64(longest)
		if err := img.Resize(scale, nil); err != nil {
			return nil, fmt.Errorf("failed to resize artwork: %w", err)
		}
	}

	out, err := img.JpegsaveBuffer(&vips.JpegsaveBufferOptions{Q: t.config.Quality})
	if err != nil {
		return nil, fmt.Errorf("failed to encode thumbnail: %w", err)
	}
	return out, nil
}

// Close releases the vips resources
func (t *thumbnailer) Close() error {
	_ = t.pool.Stop()
	t.vipsClient.Shutdown()
	return nil
}
