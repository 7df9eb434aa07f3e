package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stringPtr(s string) *string {
	return &s
}

func TestStringPtr(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: stringPtr(""),
		},
		{
			name:     "non-empty string",
			input:    "test",
			expected: stringPtr("test"),
		},
		{
			name:     "unicode string",
			input:    "测试",
			expected: stringPtr("测试"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := StringPtr(tt.input)
			assert.NotNil(t, result)
			assert.Equal(t, *tt.expected, *result)
			assert.Equal(t, tt.input, *result)
		})
	}
}

func TestStringNilOrEmpty(t *testing.T) {
	tests := []struct {
		name     string
		input    *string
		expected bool
	}{
		{
			name:     "nil pointer",
			input:    nil,
			expected: true,
		},
		{
			name:     "empty string",
			input:    stringPtr(""),
			expected: true,
		},
		{
			name:     "non-empty string",
			input:    stringPtr("test"),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := StringNilOrEmpty(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestSafeString(t *testing.T) {
	tests := []struct {
		name     string
		input    *string
		expected string
	}{
		{
			name:     "nil pointer",
			input:    nil,
			expected: "",
		},
		{
			name:     "empty string",
			input:    stringPtr(""),
			expected: "",
		},
		{
			name:     "non-empty string",
			input:    stringPtr("value"),
			expected: "value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SafeString(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestIsPositiveNumeric(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{
			name:     "positive integer",
			input:    "42",
			expected: true,
		},
		{
			name:     "large integer",
			input:    "123456789012345678901234567890",
			expected: true,
		},
		{
			name:     "zero",
			input:    "0",
			expected: false,
		},
		{
			name:     "leading zero",
			input:    "042",
			expected: false,
		},
		{
			name:     "negative integer",
			input:    "-42",
			expected: false,
		},
		{
			name:     "decimal",
			input:    "4.2",
			expected: false,
		},
		{
			name:     "empty string",
			input:    "",
			expected: false,
		},
		{
			name:     "non-numeric",
			input:    "abc",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsPositiveNumeric(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestIsEthereumAddress(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{
			name:     "valid checksummed address",
			input:    "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
			expected: true,
		},
		{
			name:     "valid lowercase address",
			input:    "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed",
			expected: true,
		},
		{
			name:     "missing 0x prefix",
			input:    "5aaeb6053f3e94c9b9a09f33669435e7ef1beaed",
			expected: true,
		},
		{
			name:     "too short",
			input:    "0x5aaeb6053f3e94c9",
			expected: false,
		},
		{
			name:     "hedera account id",
			input:    "0.0.12345",
			expected: false,
		},
		{
			name:     "empty string",
			input:    "",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsEthereumAddress(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestIsValidURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{
			name:     "https URL",
			input:    "https://example.com/path",
			expected: true,
		},
		{
			name:     "http URL",
			input:    "http://example.com",
			expected: true,
		},
		{
			name:     "missing scheme",
			input:    "example.com/path",
			expected: false,
		},
		{
			name:     "missing host",
			input:    "https://",
			expected: false,
		},
		{
			name:     "relative path",
			input:    "/ipfs/QmXxx",
			expected: false,
		},
		{
			name:     "empty string",
			input:    "",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsValidURL(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestIsIPFSGatewayURL(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    bool
		expectedCID string
	}{
		{
			name:        "ipfs.io gateway URL",
			input:       "https://ipfs.io/ipfs/QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG",
			expected:    true,
			expectedCID: "QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG",
		},
		{
			name:        "gateway URL with subpath",
			input:       "https://cloudflare-ipfs.com/ipfs/QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG/metadata.json",
			expected:    true,
			expectedCID: "QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG/metadata.json",
		},
		{
			name:     "regular https URL",
			input:    "https://example.com/image.png",
			expected: false,
		},
		{
			name:     "ipfs path with no CID",
			input:    "https://ipfs.io/ipfs/",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, cid := IsIPFSGatewayURL(tt.input)
			assert.Equal(t, tt.expected, ok)
			assert.Equal(t, tt.expectedCID, cid)
		})
	}
}

func TestParseDataURI(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		expectedMime string
		expectedData []byte
	}{
		{
			name:         "base64 payload",
			input:        "data:image/png;base64,aGVsbG8=",
			expectedMime: "image/png",
			expectedData: []byte("hello"),
		},
		{
			name:         "plain text with default mime type",
			input:        "data:,hello",
			expectedMime: "text/plain",
			expectedData: []byte("hello"),
		},
		{
			name:         "percent-encoded svg",
			input:        "data:image/svg+xml,%3Csvg%3E%3C%2Fsvg%3E",
			expectedMime: "image/svg+xml",
			expectedData: []byte("<svg></svg>"),
		},
		{
			name:        "missing prefix",
			input:       "image/png;base64,aGVsbG8=",
			expectError: true,
		},
		{
			name:        "missing comma",
			input:       "data:image/png;base64",
			expectError: true,
		},
		{
			name:        "malformed base64",
			input:       "data:image/png;base64,!!!not-base64!!!",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseDataURI(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedMime, result.MimeType)
			assert.Equal(t, tt.expectedData, result.DecodedData)
		})
	}
}
