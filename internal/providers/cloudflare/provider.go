package cloudflare

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/cloudflare/cloudflare-go"
	"go.uber.org/zap"

	"github.com/dright/marketplace/internal/adapter"
	"github.com/dright/marketplace/internal/logger"
	"github.com/dright/marketplace/internal/preview"
)

const PROVIDER_NAME = "cloudflare"

// Config holds configuration for Cloudflare Images and Stream
type Config struct {
	// AccountID is the Cloudflare account ID
	AccountID string
	// APIToken is the API token for authentication
	APIToken string
	// ImageVariant picks which delivery variant URL to return (default "public")
	ImageVariant string
}

// uploader implements preview.Uploader over Cloudflare Images and Stream
type uploader struct {
	cfClient adapter.CloudflareClient
	config   Config
	rc       *cloudflare.ResourceContainer
}

// NewUploader creates a Cloudflare-backed preview uploader
func NewUploader(cfClient adapter.CloudflareClient, config Config) preview.Uploader {
	if config.ImageVariant == "" {
		config.ImageVariant = "public"
	}
	return &uploader{
		cfClient: cfClient,
		config:   config,
		rc: &cloudflare.ResourceContainer{
			Level:      cloudflare.AccountRouteLevel,
			Identifier: config.AccountID,
		},
	}
}

// UploadImage uploads a rendered preview image to Cloudflare Images
func (p *uploader) UploadImage(ctx context.Context, reader io.Reader, filename, contentType string, metadata map[string]interface{}) (*preview.UploadResult, error) {
	logger.DebugCtx(ctx, "Uploading preview to Cloudflare Images",
		zap.String("filename", filename),
		zap.String("content_type", contentType))

	image, err := p.cfClient.UploadImage(ctx, p.rc, cloudflare.UploadImageParams{
		File:     io.NopCloser(reader),
		Name:     filename,
		Metadata: metadata,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}

	variantURLs := make(map[string]string, len(image.Variants))
	for _, variantURL := range image.Variants {
		if name := path.Base(variantURL); name != "" {
			variantURLs[name] = variantURL
		}
	}

	url := variantURLs[p.config.ImageVariant]
	if url == "" {
		for _, variantURL := range image.Variants {
			url = variantURL
			break
		}
	}
	if url == "" {
		return nil, fmt.Errorf("image %s has no delivery variants", image.ID)
	}

	logger.InfoCtx(ctx, "Uploaded preview to Cloudflare Images",
		zap.String("image_id", image.ID),
		zap.Int("variants", len(variantURLs)))

	return &preview.UploadResult{
		ProviderAssetID: image.ID,
		URL:             url,
		VariantURLs:     variantURLs,
	}, nil
}

// UploadVideoFromURL hands a video off to Cloudflare Stream by URL and waits
// for it to become playable
func (p *uploader) UploadVideoFromURL(ctx context.Context, sourceURL string, metadata map[string]interface{}) (*preview.UploadResult, error) {
	if isCloudflareStreamURL(sourceURL) {
		return nil, fmt.Errorf("refusing to re-ingest a Cloudflare Stream URL: %s", sourceURL)
	}

	logger.InfoCtx(ctx, "Uploading video to Cloudflare Stream", zap.String("url", sourceURL))

	video, err := p.cfClient.UploadVideoFromURL(ctx, cloudflare.StreamUploadFromURLParameters{
		AccountID: p.config.AccountID,
		URL:       sourceURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload video: %w", err)
	}

	details, err := p.waitForVideoReady(ctx, video.UID)
	if err != nil {
		// Keep the basic upload info; playback URLs may appear later
		logger.WarnCtx(ctx, "Video not ready in time, using initial details",
			zap.String("video_id", video.UID),
			zap.Error(err))
		details = video
	}

	variantURLs := make(map[string]string)
	if details.Playback.HLS != "" {
		variantURLs["hls"] = details.Playback.HLS
	}
	if details.Playback.Dash != "" {
		variantURLs["dash"] = details.Playback.Dash
	}
	if details.Thumbnail != "" {
		variantURLs["thumbnail"] = details.Thumbnail
	}
	if details.Preview != "" {
		variantURLs["preview"] = details.Preview
	}

	url := details.Preview
	if url == "" {
		url = details.Playback.HLS
	}
	if url == "" {
		return nil, fmt.Errorf("video %s has no playback URL", details.UID)
	}

	return &preview.UploadResult{
		ProviderAssetID: details.UID,
		URL:             url,
		VariantURLs:     variantURLs,
	}, nil
}

// waitForVideoReady polls Cloudflare Stream with exponential backoff until
// the video is playable
func (p *uploader) waitForVideoReady(ctx context.Context, videoID string) (cloudflare.StreamVideo, error) {
	var details cloudflare.StreamVideo

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 2 * time.Second
	b.MaxInterval = 30 * time.Second
	b.MaxElapsedTime = 5 * time.Minute
	b.Multiplier = 1.5
	b.RandomizationFactor = 0.5

	operation := func() error {
		video, err := p.cfClient.GetVideo(ctx, cloudflare.StreamParameters{
			AccountID: p.config.AccountID,
			VideoID:   videoID,
		})
		if err != nil {
			return fmt.Errorf("failed to get video: %w", err)
		}
		details = video

		switch video.Status.State {
		case "ready":
			return nil
		case "error", "failed":
			return backoff.Permanent(fmt.Errorf("video processing failed: %s", video.Status.ErrorReasonText))
		default:
			return fmt.Errorf("video not ready yet: %s", video.Status.State)
		}
	}

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return details, err
	}
	return details, nil
}

// Name returns the provider name
func (p *uploader) Name() string {
	return PROVIDER_NAME
}

func isCloudflareStreamURL(url string) bool {
	return strings.Contains(url, ".cloudflarestream.com/")
}
