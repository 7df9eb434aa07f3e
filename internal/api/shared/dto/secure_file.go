package dto

import (
	"time"

	"github.com/dright/marketplace/internal/store/schema"
)

// SecureFileResponse represents an encrypted legal document's metadata.
// Storage details (key, nonce, key ID) never leave the server.
type SecureFileResponse struct {
	ID               int64     `json:"id"`
	Filename         string    `json:"filename"`
	DetectedMimeType string    `json:"mime_type"`
	SizeBytes        int64     `json:"size_bytes"`
	SHA256           string    `json:"sha256"`
	CreatedAt        time.Time `json:"created_at"`
}

// SecureFileListResponse represents a paginated list of secure files
type SecureFileListResponse struct {
	Files  []SecureFileResponse `json:"items"`
	Offset *uint64              `json:"offset,omitempty"`
	Total  uint64               `json:"total"`
}

// MapSecureFileToDTO maps a schema.SecureFile to SecureFileResponse
func MapSecureFileToDTO(file *schema.SecureFile) *SecureFileResponse {
	if file == nil {
		return nil
	}
	return &SecureFileResponse{
		ID:               file.ID,
		Filename:         file.Filename,
		DetectedMimeType: file.DetectedMimeType,
		SizeBytes:        file.SizeBytes,
		SHA256:           file.SHA256,
		CreatedAt:        file.CreatedAt,
	}
}
