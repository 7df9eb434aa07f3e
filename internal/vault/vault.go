package vault

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dright/marketplace/internal/domain"
	"github.com/dright/marketplace/internal/logger"
)

// storageKeyPrefix namespaces vault objects in the bucket.
const storageKeyPrefix = "secure-files"

// encryptedContentType is what the bucket sees; the real type is only
// recorded in the database row.
const encryptedContentType = "application/octet-stream"

// Upload is a client file heading into the vault.
type Upload struct {
	Filename         string
	DeclaredMimeType string
	Data             []byte
}

// StoredFile describes an encrypted payload at rest, ready to persist as a
// SecureFile row.
type StoredFile struct {
	StorageKey       string
	DetectedMimeType string
	SizeBytes        int64
	SHA256           string
	Nonce            string // hex
	KeyID            string
}

// Service encrypts uploads into object storage and decrypts them back
//
//go:generate mockgen -source=vault.go -destination=../mocks/vault.go -package=mocks -mock_names=Service=MockVaultService
type Service interface {
	// Store gates, sniffs, hashes, encrypts, and uploads the payload.
	Store(ctx context.Context, upload Upload) (*StoredFile, error)
	// Open fetches and decrypts a stored payload.
	Open(ctx context.Context, storageKey string, keyID string, nonceHex string) ([]byte, error)
	// Remove deletes the encrypted payload from storage.
	Remove(ctx context.Context, storageKey string) error
}

// Config holds vault behavior configuration
type Config struct {
	MaxUploadBytes int64
	AllowedTypes   []string // MIME type prefixes
}

type service struct {
	storage ObjectStorage
	keys    *KeySet
	config  Config
}

// NewService creates a vault service over the given storage and key set.
func NewService(storage ObjectStorage, keys *KeySet, cfg Config) Service {
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = domain.MAX_SECURE_FILE_BYTES
	}
	return &service{
		storage: storage,
		keys:    keys,
		config:  cfg,
	}
}

func (s *service) Store(ctx context.Context, upload Upload) (*StoredFile, error) {
	if len(upload.Data) == 0 {
		return nil, fmt.Errorf("empty upload")
	}
	if int64(len(upload.Data)) > s.config.MaxUploadBytes {
		return nil, domain.ErrFileTooLarge
	}

	detected := mimetype.Detect(upload.Data).String()
	if !s.typeAllowed(detected) {
		logger.WarnCtx(ctx, "Rejected secure file upload",
			zap.String("filename", upload.Filename),
			zap.String("declared_mime_type", upload.DeclaredMimeType),
			zap.String("detected_mime_type", detected),
		)
		return nil, domain.ErrUnsupportedFileType
	}

	digest := sha256.Sum256(upload.Data)

	keyID, nonce, ciphertext, err := s.keys.Encrypt(upload.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt payload: %w", err)
	}

	storageKey := fmt.Sprintf("%s/%s", storageKeyPrefix, uuid.NewString())
	if err := s.storage.Put(ctx, storageKey, ciphertext, encryptedContentType); err != nil {
		return nil, fmt.Errorf("failed to store payload: %w", err)
	}

	logger.InfoCtx(ctx, "Stored secure file",
		zap.String("storage_key", storageKey),
		zap.String("detected_mime_type", detected),
		zap.Int("size", len(upload.Data)),
		zap.String("key_id", keyID),
	)

	return &StoredFile{
		StorageKey:       storageKey,
		DetectedMimeType: detected,
		SizeBytes:        int64(len(upload.Data)),
		SHA256:           hex.EncodeToString(digest[:]),
		Nonce:            hex.EncodeToString(nonce),
		KeyID:            keyID,
	}, nil
}

func (s *service) Open(ctx context.Context, storageKey string, keyID string, nonceHex string) ([]byte, error) {
	nonce, err := hex.DecodeString(nonceHex)
	if err != nil {
		return nil, fmt.Errorf("malformed nonce for %s: %w", storageKey, err)
	}

	ciphertext, err := s.storage.Get(ctx, storageKey)
	if err != nil {
		return nil, err
	}

	plaintext, err := s.keys.Decrypt(keyID, nonce, ciphertext)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", storageKey, err)
	}
	return plaintext, nil
}

func (s *service) Remove(ctx context.Context, storageKey string) error {
	return s.storage.Delete(ctx, storageKey)
}

// typeAllowed matches the sniffed type against configured prefixes, so
// "image/" allows every image subtype while "application/pdf" is exact.
func (s *service) typeAllowed(detected string) bool {
	for _, allowed := range s.config.AllowedTypes {
		if allowed == "" {
			continue
		}
		if strings.HasPrefix(detected, allowed) {
			return true
		}
	}
	return false
}
