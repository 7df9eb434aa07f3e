package preview

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"

	"github.com/dright/marketplace/internal/adapter"
	"github.com/dright/marketplace/internal/logger"
	"github.com/dright/marketplace/internal/uri"
)

// UploadResult carries the provider-side identity of an uploaded preview
type UploadResult struct {
	// ProviderAssetID is the provider-specific identifier (e.g., Cloudflare image ID)
	ProviderAssetID string
	// URL is the public delivery URL of the preview
	URL string
	// VariantURLs maps variant names to their URLs
	VariantURLs map[string]string
}

// Uploader stores rendered previews with a hosting provider
//
//go:generate mockgen -source=preview.go -destination=../mocks/preview.go -package=mocks -mock_names=Uploader=MockPreviewUploader,Rasterizer=MockRasterizer,Thumbnailer=MockThumbnailer,Generator=MockPreviewGenerator
type Uploader interface {
	// UploadImage uploads an image from a reader
	UploadImage(ctx context.Context, reader io.Reader, filename, contentType string, metadata map[string]interface{}) (*UploadResult, error)

	// UploadVideoFromURL hands a video off to the provider by URL
	UploadVideoFromURL(ctx context.Context, sourceURL string, metadata map[string]interface{}) (*UploadResult, error)

	// Name returns the provider name
	Name() string
}

// Rasterizer converts SVG artwork to PNG
type Rasterizer interface {
	Rasterize(ctx context.Context, svgData []byte) ([]byte, error)
}

// Thumbnailer shrinks raster artwork to preview dimensions
type Thumbnailer interface {
	// Thumbnail re-encodes the image as a JPEG bounded to the configured
	// maximum dimension. Returns the encoded bytes and their content type.
	Thumbnail(ctx context.Context, data []byte) ([]byte, string, error)

	// Close releases the image library resources
	Close() error
}

// Generator renders the marketplace preview for a right's artwork
type Generator interface {
	// Generate downloads the artwork behind sourceURL, renders a preview,
	// and returns its public URL. When rendering or uploading fails, the
	// resolved artwork URL itself is returned so listings stay displayable.
	Generate(ctx context.Context, rightID string, sourceURL string) (string, error)
}

// Config bounds the artwork downloads
type Config struct {
	// MaxImageBytes caps the downloaded artwork size
	MaxImageBytes int64
}

type generator struct {
	resolver    uri.Resolver
	httpClient  adapter.HTTPClient
	rasterizer  Rasterizer
	thumbnailer Thumbnailer
	uploader    Uploader
	config      Config
}

// NewGenerator creates a preview generator over the given render and upload
// pipeline.
func NewGenerator(
	resolver uri.Resolver,
	httpClient adapter.HTTPClient,
	rasterizer Rasterizer,
	thumbnailer Thumbnailer,
	uploader Uploader,
	config Config,
) Generator {
	return &generator{
		resolver:    resolver,
		httpClient:  httpClient,
		rasterizer:  rasterizer,
		thumbnailer: thumbnailer,
		uploader:    uploader,
		config:      config,
	}
}

func (g *generator) Generate(ctx context.Context, rightID string, sourceURL string) (string, error) {
	resolved, err := g.resolver.Resolve(ctx, sourceURL)
	if err != nil {
		return "", fmt.Errorf("failed to resolve artwork URL: %w", err)
	}

	url, err := g.render(ctx, rightID, resolved)
	if err != nil {
		// Degrade to the resolved artwork URL; a missing thumbnail must
		// not take the listing down with it.
		logger.WarnCtx(ctx, "Preview rendering failed, falling back to artwork URL",
			zap.String("right_id", rightID),
			zap.String("source_url", sourceURL),
			zap.Error(err))
		return resolved, nil
	}
	return url, nil
}

func (g *generator) render(ctx context.Context, rightID string, resolved string) (string, error) {
	metadata := map[string]interface{}{
		"right_id":   rightID,
		"source_url": resolved,
	}

	data, contentType, err := g.download(ctx, resolved)
	if err != nil {
		return "", err
	}

	if strings.HasPrefix(contentType, "video/") {
		result, err := g.uploader.UploadVideoFromURL(ctx, resolved, metadata)
		if err != nil {
			return "", fmt.Errorf("failed to upload video preview: %w", err)
		}
		return result.URL, nil
	}

	if strings.HasPrefix(contentType, "image/svg") {
		data, err = g.rasterizer.Rasterize(ctx, data)
		if err != nil {
			return "", fmt.Errorf("failed to rasterize SVG artwork: %w", err)
		}
	} else if !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("unsupported artwork type: %s", contentType)
	}

	thumb, thumbType, err := g.thumbnailer.Thumbnail(ctx, data)
	if err != nil {
		return "", fmt.Errorf("failed to thumbnail artwork: %w", err)
	}

	result, err := g.uploader.UploadImage(ctx, bytes.NewReader(thumb), rightID+".jpg", thumbType, metadata)
	if err != nil {
		return "", fmt.Errorf("failed to upload image preview: %w", err)
	}

	logger.InfoCtx(ctx, "Preview generated",
		zap.String("right_id", rightID),
		zap.String("provider", g.uploader.Name()),
		zap.String("asset_id", result.ProviderAssetID))

	return result.URL, nil
}

// download fetches the artwork with the configured size cap and sniffs its
// real content type, ignoring whatever the server claims.
func (g *generator) download(ctx context.Context, url string) ([]byte, string, error) {
	resp, err := g.httpClient.GetResponse(ctx, url, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to download artwork: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Warn("failed to close artwork response body", zap.Error(err))
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, "", fmt.Errorf("artwork download returned status %d", resp.StatusCode)
	}

	max := g.config.MaxImageBytes
	if max <= 0 {
		max = 32 << 20
	}
	if resp.ContentLength > max {
		return nil, "", fmt.Errorf("artwork exceeds size limit: %d > %d", resp.ContentLength, max)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, max+1))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read artwork: %w", err)
	}
	if int64(len(data)) > max {
		return nil, "", fmt.Errorf("artwork exceeds size limit: %d", max)
	}

	return data, mimetype.Detect(data).String(), nil
}
