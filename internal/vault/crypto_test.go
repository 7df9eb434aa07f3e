package vault_test

import (
	"crypto/rand"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dright/marketplace/internal/vault"
)

func testKeyEntry(t *testing.T, id string) string {
	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err)
	return id + ":" + base64.StdEncoding.EncodeToString(key)
}

func TestKeySet_EncryptDecryptRoundTrip(t *testing.T) {
	keys, err := vault.NewKeySet("k1", []string{testKeyEntry(t, "k1")})
	require.NoError(t, err)

	plaintext := []byte("confidential license agreement")
	keyID, nonce, ciphertext, err := keys.Encrypt(plaintext)
	require.NoError(t, err)
	assert.Equal(t, "k1", keyID)
	assert.NotEqual(t, plaintext, ciphertext)

	decrypted, err := keys.Decrypt(keyID, nonce, ciphertext)
	require.NoError(t, err)
	assert.Equal(t, plaintext, decrypted)
}

func TestKeySet_FreshNoncePerEncryption(t *testing.T) {
	keys, err := vault.NewKeySet("k1", []string{testKeyEntry(t, "k1")})
	require.NoError(t, err)

	_, nonce1, ct1, err := keys.Encrypt([]byte("same content"))
	require.NoError(t, err)
	_, nonce2, ct2, err := keys.Encrypt([]byte("same content"))
	require.NoError(t, err)

	assert.NotEqual(t, nonce1, nonce2)
	assert.NotEqual(t, ct1, ct2)
}

func TestKeySet_Rotation(t *testing.T) {
	oldEntry := testKeyEntry(t, "2024")
	newEntry := testKeyEntry(t, "2025")

	oldSet, err := vault.NewKeySet("2024", []string{oldEntry})
	require.NoError(t, err)
	keyID, nonce, ciphertext, err := oldSet.Encrypt([]byte("sealed under the old key"))
	require.NoError(t, err)

	// Rotated set encrypts under the new key but still opens old payloads.
	rotated, err := vault.NewKeySet("2025", []string{oldEntry, newEntry})
	require.NoError(t, err)
	assert.Equal(t, "2025", rotated.ActiveKeyID())

	decrypted, err := rotated.Decrypt(keyID, nonce, ciphertext)
	require.NoError(t, err)
	assert.Equal(t, []byte("sealed under the old key"), decrypted)
}

func TestKeySet_DecryptErrors(t *testing.T) {
	keys, err := vault.NewKeySet("k1", []string{testKeyEntry(t, "k1")})
	require.NoError(t, err)

	keyID, nonce, ciphertext, err := keys.Encrypt([]byte("payload"))
	require.NoError(t, err)

	t.Run("unknown key", func(t *testing.T) {
		_, err := keys.Decrypt("missing", nonce, ciphertext)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown vault key")
	})

	t.Run("tampered ciphertext", func(t *testing.T) {
		tampered := append([]byte{}, ciphertext...)
		tampered[0] ^= 0xFF
		_, err := keys.Decrypt(keyID, nonce, tampered)
		require.Error(t, err)
	})

	t.Run("wrong nonce size", func(t *testing.T) {
		_, err := keys.Decrypt(keyID, nonce[:4], ciphertext)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "nonce must be")
	})
}

func TestNewKeySet_Validation(t *testing.T) {
	valid := testKeyEntry(t, "k1")

	tests := []struct {
		name        string
		activeKeyID string
		entries     []string
		expectedErr string
	}{
		{
			name:        "no keys",
			activeKeyID: "k1",
			entries:     nil,
			expectedErr: "no vault keys configured",
		},
		{
			name:        "missing separator",
			activeKeyID: "k1",
			entries:     []string{"justakeyblob"},
			expectedErr: "malformed",
		},
		{
			name:        "bad base64",
			activeKeyID: "k1",
			entries:     []string{"k1:%%%%"},
			expectedErr: "not valid base64",
		},
		{
			name:        "wrong key length",
			activeKeyID: "k1",
			entries:     []string{"k1:" + base64.StdEncoding.EncodeToString([]byte("short"))},
			expectedErr: "must be 32 bytes",
		},
		{
			name:        "duplicate key ID",
			activeKeyID: "k1",
			entries:     []string{valid, valid},
			expectedErr: "duplicate vault key ID",
		},
		{
			name:        "active key not in set",
			activeKeyID: "other",
			entries:     []string{valid},
			expectedErr: "not in the key set",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := vault.NewKeySet(tt.activeKeyID, tt.entries)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedErr)
		})
	}
}

func TestNewKeySet_SingleKeyImpliesActive(t *testing.T) {
	keys, err := vault.NewKeySet("", []string{testKeyEntry(t, "only")})
	require.NoError(t, err)
	assert.Equal(t, "only", keys.ActiveKeyID())
}
