package schema

import (
	"time"
)

// SecureFileStatus is the lifecycle state of an encrypted file
type SecureFileStatus string

const (
	// SecureFileStatusStored means the encrypted payload is persisted and downloadable
	SecureFileStatusStored SecureFileStatus = "stored"
	// SecureFileStatusDeleted means the payload was removed from storage
	SecureFileStatusDeleted SecureFileStatus = "deleted"
)

// SecureFile represents the secure_files table - metadata for encrypted legal documents.
// The payload itself lives in object storage under StorageKey, AES-256-GCM encrypted.
type SecureFile struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// OwnerID references the uploading user
	OwnerID int64 `gorm:"column:owner_id;not null;index"`
	// Filename is the original client-supplied file name
	Filename string `gorm:"column:filename;not null;type:text"`
	// DeclaredMimeType is the Content-Type the client sent with the upload
	DeclaredMimeType string `gorm:"column:declared_mime_type;not null;type:text"`
	// DetectedMimeType is the MIME type sniffed from the file content
	DetectedMimeType string `gorm:"column:detected_mime_type;not null;type:text"`
	// SizeBytes is the plaintext size
	SizeBytes int64 `gorm:"column:size_bytes;not null"`
	// SHA256 is the hex digest of the plaintext
	SHA256 string `gorm:"column:sha256;not null;type:text"`
	// StorageKey is the object key of the encrypted payload
	StorageKey string `gorm:"column:storage_key;not null;uniqueIndex;type:text"`
	// Nonce is the AES-GCM nonce used for this payload, hex encoded
	Nonce string `gorm:"column:nonce;not null;type:text"`
	// KeyID identifies which configured vault key encrypted the payload
	KeyID string `gorm:"column:key_id;not null;type:text"`
	// Status tracks the file lifecycle (stored, deleted)
	Status SecureFileStatus `gorm:"column:status;not null;default:stored;type:text"`
	// CreatedAt is the timestamp when the file was uploaded
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`

	// Associations
	Owner User `gorm:"foreignKey:OwnerID"`
}

// TableName specifies the table name for the SecureFile model
func (SecureFile) TableName() string {
	return "secure_files"
}
