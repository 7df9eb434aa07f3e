package wallet

import (
	"context"
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/dright/marketplace/internal/adapter"
	"github.com/dright/marketplace/internal/domain"
)

// ed25519DERPrefix is the ASN.1 header Hedera tooling prepends to raw
// ed25519 public keys (RFC 8410 SubjectPublicKeyInfo)
const ed25519DERPrefix = "302a300506032b6570032100"

// hederaProvider implements signature verification shared by the Hedera
// wallets; HashPack and Blade differ only in kind and status endpoint
type hederaProvider struct {
	kind       domain.WalletKind
	statusURL  string
	httpClient adapter.HTTPClient
	keys       AccountKeyLookup
}

// NewHashPackProvider creates the HashPack wallet provider
func NewHashPackProvider(statusURL string, httpClient adapter.HTTPClient, keys AccountKeyLookup) Provider {
	return &hederaProvider{
		kind:       domain.WalletHashPack,
		statusURL:  statusURL,
		httpClient: httpClient,
		keys:       keys,
	}
}

// NewBladeProvider creates the Blade wallet provider
func NewBladeProvider(statusURL string, httpClient adapter.HTTPClient, keys AccountKeyLookup) Provider {
	return &hederaProvider{
		kind:       domain.WalletBlade,
		statusURL:  statusURL,
		httpClient: httpClient,
		keys:       keys,
	}
}

func (p *hederaProvider) Kind() domain.WalletKind {
	return p.kind
}

func (p *hederaProvider) Chain() domain.Blockchain {
	return domain.BlockchainHedera
}

// Detect probes the vendor status endpoint
func (p *hederaProvider) Detect(ctx context.Context) error {
	if p.statusURL == "" {
		return fmt.Errorf("%s: no status endpoint configured", p.kind)
	}

	resp, err := p.httpClient.Head(ctx, p.statusURL)
	if err != nil {
		return fmt.Errorf("%s service unreachable: %w", p.kind, err)
	}
	if resp.Body != nil {
		_ = resp.Body.Close()
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%s service returned status %d", p.kind, resp.StatusCode)
	}

	return nil
}

// VerifySignature checks the ed25519 signature over the challenge and
// cross-checks the supplied key against the mirror-node record for the account
func (p *hederaProvider) VerifySignature(ctx context.Context, address, message, signature, publicKey string) error {
	if !domain.IsHederaAccountID(address) {
		return fmt.Errorf("invalid hedera account id: %s", address)
	}
	if publicKey == "" {
		return domain.ErrInvalidSignature
	}

	pubBytes, err := decodeHederaPublicKey(publicKey)
	if err != nil {
		return err
	}

	sigBytes, err := hex.DecodeString(strings.TrimPrefix(signature, "0x"))
	if err != nil {
		return fmt.Errorf("malformed signature: %w", err)
	}
	if len(sigBytes) != ed25519.SignatureSize {
		return fmt.Errorf("malformed signature: expected %d bytes, got %d", ed25519.SignatureSize, len(sigBytes))
	}

	if !ed25519.Verify(pubBytes, []byte(message), sigBytes) {
		return domain.ErrInvalidSignature
	}

	// The signature proves possession of the key; the mirror record proves
	// the key belongs to the claimed account
	recordedKey, err := p.keys.AccountPublicKey(ctx, address)
	if err != nil {
		return fmt.Errorf("failed to look up account key for %s: %w", address, err)
	}

	recordedBytes, err := decodeHederaPublicKey(recordedKey)
	if err != nil {
		return fmt.Errorf("mirror node returned unusable key for %s: %w", address, err)
	}

	if !pubBytes.Equal(ed25519.PublicKey(recordedBytes)) {
		return domain.ErrInvalidSignature
	}

	return nil
}

// decodeHederaPublicKey decodes a hex ed25519 public key, accepting both the
// raw 32-byte form and the DER-wrapped form Hedera SDKs emit
func decodeHederaPublicKey(key string) (ed25519.PublicKey, error) {
	normalized := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(key), "0x"))
	normalized = strings.TrimPrefix(normalized, ed25519DERPrefix)

	raw, err := hex.DecodeString(normalized)
	if err != nil {
		return nil, fmt.Errorf("malformed public key: %w", err)
	}
	if len(raw) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("malformed public key: expected %d bytes, got %d", ed25519.PublicKeySize, len(raw))
	}

	return ed25519.PublicKey(raw), nil
}
