package uri_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/dright/marketplace/internal/mocks"
	"github.com/dright/marketplace/internal/uri"
)

func TestURLChecker_Check(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		setupMocks     func(*mocks.MockHTTPClient, *mocks.MockIO)
		expectedStatus uri.HealthStatus
		expectedURL    *string
	}{
		{
			name: "healthy URL via HEAD",
			url:  "https://example.com/image.png",
			setupMocks: func(mockHTTP *mocks.MockHTTPClient, mockIO *mocks.MockIO) {
				mockHTTP.
					EXPECT().
					Head(gomock.Any(), "https://example.com/image.png").
					Return(&http.Response{
						StatusCode: http.StatusOK,
						Body:       io.NopCloser(bytes.NewReader(nil)),
					}, nil)
			},
			expectedStatus: uri.HealthStatusHealthy,
		},
		{
			name: "HEAD fails, GET with Range succeeds with 206",
			url:  "https://example.com/video.mp4",
			setupMocks: func(mockHTTP *mocks.MockHTTPClient, mockIO *mocks.MockIO) {
				mockHTTP.
					EXPECT().
					Head(gomock.Any(), "https://example.com/video.mp4").
					Return(&http.Response{
						StatusCode: http.StatusMethodNotAllowed,
						Body:       io.NopCloser(bytes.NewReader(nil)),
					}, nil)

				mockHTTP.
					EXPECT().
					GetResponse(gomock.Any(), "https://example.com/video.mp4", map[string]string{"Range": "bytes=0-1023"}).
					Return(&http.Response{
						StatusCode: http.StatusPartialContent,
						Body:       io.NopCloser(bytes.NewReader([]byte("data"))),
					}, nil)

				mockIO.
					EXPECT().
					Discard(gomock.Any()).
					Return(nil)
			},
			expectedStatus: uri.HealthStatusHealthy,
		},
		{
			name: "HEAD fails, GET with Range returns 200",
			url:  "https://example.com/file.bin",
			setupMocks: func(mockHTTP *mocks.MockHTTPClient, mockIO *mocks.MockIO) {
				mockHTTP.
					EXPECT().
					Head(gomock.Any(), "https://example.com/file.bin").
					Return(nil, fmt.Errorf("connection refused"))

				mockHTTP.
					EXPECT().
					GetResponse(gomock.Any(), "https://example.com/file.bin", map[string]string{"Range": "bytes=0-1023"}).
					Return(&http.Response{
						StatusCode: http.StatusOK,
						Body:       io.NopCloser(bytes.NewReader([]byte("data"))),
					}, nil)

				mockIO.
					EXPECT().
					Discard(gomock.Any()).
					Return(nil)
			},
			expectedStatus: uri.HealthStatusHealthy,
		},
		{
			name: "range not satisfiable falls back to plain GET",
			url:  "https://example.com/tiny.txt",
			setupMocks: func(mockHTTP *mocks.MockHTTPClient, mockIO *mocks.MockIO) {
				mockHTTP.
					EXPECT().
					Head(gomock.Any(), "https://example.com/tiny.txt").
					Return(&http.Response{
						StatusCode: http.StatusForbidden,
						Body:       io.NopCloser(bytes.NewReader(nil)),
					}, nil)

				mockHTTP.
					EXPECT().
					GetResponse(gomock.Any(), "https://example.com/tiny.txt", map[string]string{"Range": "bytes=0-1023"}).
					Return(&http.Response{
						StatusCode: http.StatusRequestedRangeNotSatisfiable,
						Body:       io.NopCloser(bytes.NewReader(nil)),
					}, nil)

				mockHTTP.
					EXPECT().
					GetResponse(gomock.Any(), "https://example.com/tiny.txt", nil).
					Return(&http.Response{
						StatusCode: http.StatusOK,
						Body:       io.NopCloser(bytes.NewReader([]byte("ok"))),
					}, nil)

				mockIO.
					EXPECT().
					Discard(gomock.Any()).
					Return(nil).
					Times(2)
			},
			expectedStatus: uri.HealthStatusHealthy,
		},
		{
			name: "broken URL",
			url:  "https://example.com/gone.png",
			setupMocks: func(mockHTTP *mocks.MockHTTPClient, mockIO *mocks.MockIO) {
				mockHTTP.
					EXPECT().
					Head(gomock.Any(), "https://example.com/gone.png").
					Return(&http.Response{
						StatusCode: http.StatusNotFound,
						Body:       io.NopCloser(bytes.NewReader(nil)),
					}, nil)

				mockHTTP.
					EXPECT().
					GetResponse(gomock.Any(), "https://example.com/gone.png", map[string]string{"Range": "bytes=0-1023"}).
					Return(&http.Response{
						StatusCode: http.StatusNotFound,
						Body:       io.NopCloser(bytes.NewReader(nil)),
					}, nil)

				mockHTTP.
					EXPECT().
					GetResponse(gomock.Any(), "https://example.com/gone.png", nil).
					Return(&http.Response{
						StatusCode: http.StatusNotFound,
						Body:       io.NopCloser(bytes.NewReader(nil)),
					}, nil)

				mockIO.
					EXPECT().
					Discard(gomock.Any()).
					Return(nil).
					Times(2)
			},
			expectedStatus: uri.HealthStatusBroken,
		},
		{
			name: "transient network error",
			url:  "https://example.com/slow.png",
			setupMocks: func(mockHTTP *mocks.MockHTTPClient, mockIO *mocks.MockIO) {
				mockHTTP.
					EXPECT().
					Head(gomock.Any(), "https://example.com/slow.png").
					Return(nil, context.DeadlineExceeded)

				mockHTTP.
					EXPECT().
					GetResponse(gomock.Any(), "https://example.com/slow.png", map[string]string{"Range": "bytes=0-1023"}).
					Return(nil, fmt.Errorf("request failed: %w", context.DeadlineExceeded))
			},
			expectedStatus: uri.HealthStatusTransientError,
		},
		{
			name: "dead IPFS gateway URL resolves through configured gateways",
			url:  "https://dead.example/ipfs/QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG",
			setupMocks: func(mockHTTP *mocks.MockHTTPClient, mockIO *mocks.MockIO) {
				// Direct URL is broken
				mockHTTP.
					EXPECT().
					Head(gomock.Any(), "https://dead.example/ipfs/QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG").
					Return(&http.Response{
						StatusCode: http.StatusBadGateway,
						Body:       io.NopCloser(bytes.NewReader(nil)),
					}, nil)

				mockHTTP.
					EXPECT().
					GetResponse(gomock.Any(), "https://dead.example/ipfs/QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG", map[string]string{"Range": "bytes=0-1023"}).
					Return(&http.Response{
						StatusCode: http.StatusBadGateway,
						Body:       io.NopCloser(bytes.NewReader(nil)),
					}, nil)

				mockHTTP.
					EXPECT().
					GetResponse(gomock.Any(), "https://dead.example/ipfs/QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG", nil).
					Return(&http.Response{
						StatusCode: http.StatusBadGateway,
						Body:       io.NopCloser(bytes.NewReader(nil)),
					}, nil)

				mockIO.
					EXPECT().
					Discard(gomock.Any()).
					Return(nil).
					Times(2)

				// Gateway re-resolution succeeds
				mockHTTP.
					EXPECT().
					Head(gomock.Any(), "https://ipfs.io/ipfs/QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG").
					Return(&http.Response{
						StatusCode: http.StatusOK,
						Body:       io.NopCloser(bytes.NewReader(nil)),
					}, nil)
			},
			expectedStatus: uri.HealthStatusHealthy,
			expectedURL:    strPtr("https://ipfs.io/ipfs/QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG"),
		},
		{
			name:           "invalid URL format",
			url:            "not-a-url",
			expectedStatus: uri.HealthStatusBroken,
		},
		{
			name:           "unsupported scheme",
			url:            "ipfs://QmXxx",
			expectedStatus: uri.HealthStatusBroken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockHTTP := mocks.NewMockHTTPClient(ctrl)
			mockIO := mocks.NewMockIO(ctrl)
			if tt.setupMocks != nil {
				tt.setupMocks(mockHTTP, mockIO)
			}

			checker := uri.NewURLChecker(mockHTTP, mockIO, &uri.Config{
				IPFSGateways: []string{"https://ipfs.io"},
			})

			result := checker.Check(context.Background(), tt.url)

			assert.Equal(t, tt.expectedStatus, result.Status)
			if tt.expectedURL != nil {
				assert.NotNil(t, result.WorkingURL)
				assert.Equal(t, *tt.expectedURL, *result.WorkingURL)
			}
			if tt.expectedStatus != uri.HealthStatusHealthy {
				assert.NotNil(t, result.Error)
			}
		})
	}
}

func strPtr(s string) *string {
	return &s
}
