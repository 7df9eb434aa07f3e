package wallet

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/dright/marketplace/internal/adapter"
	"github.com/dright/marketplace/internal/domain"
	"github.com/dright/marketplace/internal/types"
)

// ethereumProvider implements personal_sign verification shared by the
// Ethereum wallets; MetaMask and WalletConnect differ only in detection
type ethereumProvider struct {
	kind       domain.WalletKind
	relayURL   string
	httpClient adapter.HTTPClient
}

// NewMetaMaskProvider creates the MetaMask wallet provider. MetaMask lives in
// the user's browser, so detection has nothing server-side to probe.
func NewMetaMaskProvider() Provider {
	return &ethereumProvider{kind: domain.WalletMetaMask}
}

// NewWalletConnectProvider creates the WalletConnect wallet provider
func NewWalletConnectProvider(relayURL string, httpClient adapter.HTTPClient) Provider {
	return &ethereumProvider{
		kind:       domain.WalletWalletConnect,
		relayURL:   relayURL,
		httpClient: httpClient,
	}
}

func (p *ethereumProvider) Kind() domain.WalletKind {
	return p.kind
}

func (p *ethereumProvider) Chain() domain.Blockchain {
	return domain.BlockchainEthereum
}

// Detect probes the WalletConnect relay; MetaMask always reports available
func (p *ethereumProvider) Detect(ctx context.Context) error {
	if p.kind == domain.WalletMetaMask {
		return nil
	}

	if p.relayURL == "" {
		return fmt.Errorf("%s: no relay endpoint configured", p.kind)
	}

	resp, err := p.httpClient.Head(ctx, p.relayURL)
	if err != nil {
		return fmt.Errorf("%s relay unreachable: %w", p.kind, err)
	}
	if resp.Body != nil {
		_ = resp.Body.Close()
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%s relay returned status %d", p.kind, resp.StatusCode)
	}

	return nil
}

// VerifySignature recovers the signer of a personal_sign signature and
// requires it to match the claimed address. The public key parameter is
// unused: secp256k1 recovery yields the key from the signature itself.
func (p *ethereumProvider) VerifySignature(_ context.Context, address, message, signature, _ string) error {
	if !types.IsEthereumAddress(address) {
		return fmt.Errorf("invalid ethereum address: %s", address)
	}

	sigBytes, err := hex.DecodeString(strings.TrimPrefix(signature, "0x"))
	if err != nil {
		return fmt.Errorf("malformed signature: %w", err)
	}
	if len(sigBytes) != crypto.SignatureLength {
		return fmt.Errorf("malformed signature: expected %d bytes, got %d", crypto.SignatureLength, len(sigBytes))
	}

	// personal_sign encodes the recovery id as 27/28
	if sigBytes[crypto.RecoveryIDOffset] >= 27 {
		sigBytes[crypto.RecoveryIDOffset] -= 27
	}

	pub, err := crypto.SigToPub(accounts.TextHash([]byte(message)), sigBytes)
	if err != nil {
		return fmt.Errorf("failed to recover signer: %w", err)
	}

	recovered := crypto.PubkeyToAddress(*pub)
	if !strings.EqualFold(recovered.Hex(), address) {
		return domain.ErrInvalidSignature
	}

	return nil
}
