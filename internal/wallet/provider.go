package wallet

import (
	"context"

	"github.com/dright/marketplace/internal/domain"
)

// Provider is one wallet integration: it knows which chain it serves, how to
// probe whether its vendor service is reachable, and how to verify a
// challenge signature produced by the wallet
//
//go:generate mockgen -source=provider.go -destination=../mocks/wallet_provider.go -package=mocks -mock_names=Provider=MockWalletProvider,AccountKeyLookup=MockAccountKeyLookup
type Provider interface {
	// Kind returns the wallet application this provider serves
	Kind() domain.WalletKind

	// Chain returns the blockchain this provider's wallets hold accounts on
	Chain() domain.Blockchain

	// Detect probes the provider's service and returns nil when it is reachable
	Detect(ctx context.Context) error

	// VerifySignature checks that signature was produced over message by the
	// wallet holding address. publicKey is required for Hedera wallets (the
	// signing key is not recoverable from an ed25519 signature) and ignored
	// for Ethereum wallets
	VerifySignature(ctx context.Context, address, message, signature, publicKey string) error
}

// AccountKeyLookup resolves the on-record public key for a Hedera account,
// letting providers cross-check a caller-supplied key against the network
type AccountKeyLookup interface {
	// AccountPublicKey returns the hex-encoded ed25519 public key on record
	// for an account (shard.realm.num)
	AccountPublicKey(ctx context.Context, accountID string) (string, error)
}
