package vault

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// KeySet holds the AES-256-GCM keys the vault encrypts and decrypts with.
// Every configured key can decrypt; only the active key encrypts, so keys
// rotate by adding a new entry and switching the active ID.
type KeySet struct {
	activeID string
	aeads    map[string]cipher.AEAD
}

// NewKeySet parses "keyID:base64Key" entries. Keys must decode to exactly
// 32 bytes. Error messages never echo key material.
func NewKeySet(activeKeyID string, entries []string) (*KeySet, error) {
	if len(entries) == 0 {
		return nil, errors.New("no vault keys configured")
	}

	aeads := make(map[string]cipher.AEAD, len(entries))
	for i, entry := range entries {
		id, encoded, ok := strings.Cut(entry, ":")
		if !ok || id == "" {
			return nil, fmt.Errorf("vault key entry %d is malformed: want keyID:base64Key", i)
		}
		if _, exists := aeads[id]; exists {
			return nil, fmt.Errorf("duplicate vault key ID %q", id)
		}

		key, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return nil, fmt.Errorf("vault key %q is not valid base64", id)
		}
		if len(key) != 32 {
			return nil, fmt.Errorf("vault key %q must be 32 bytes for AES-256, got %d", id, len(key))
		}

		block, err := aes.NewCipher(key)
		if err != nil {
			return nil, fmt.Errorf("vault key %q: %w", id, err)
		}
		aead, err := cipher.NewGCM(block)
		if err != nil {
			return nil, fmt.Errorf("vault key %q: %w", id, err)
		}
		aeads[id] = aead
	}

	if activeKeyID == "" && len(aeads) == 1 {
		for id := range aeads {
			activeKeyID = id
		}
	}
	if _, ok := aeads[activeKeyID]; !ok {
		return nil, fmt.Errorf("active vault key %q is not in the key set", activeKeyID)
	}

	return &KeySet{activeID: activeKeyID, aeads: aeads}, nil
}

// Encrypt seals plaintext under the active key with a fresh random nonce.
func (k *KeySet) Encrypt(plaintext []byte) (keyID string, nonce []byte, ciphertext []byte, err error) {
	aead := k.aeads[k.activeID]

	nonce = make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", nil, nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	return k.activeID, nonce, aead.Seal(nil, nonce, plaintext, nil), nil
}

// Decrypt opens a payload sealed by any key in the set.
func (k *KeySet) Decrypt(keyID string, nonce []byte, ciphertext []byte) ([]byte, error) {
	aead, ok := k.aeads[keyID]
	if !ok {
		return nil, fmt.Errorf("unknown vault key %q", keyID)
	}
	if len(nonce) != aead.NonceSize() {
		return nil, fmt.Errorf("nonce must be %d bytes, got %d", aead.NonceSize(), len(nonce))
	}

	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt payload: %w", err)
	}
	return plaintext, nil
}

// ActiveKeyID returns the ID new payloads are encrypted under.
func (k *KeySet) ActiveKeyID() string {
	return k.activeID
}
