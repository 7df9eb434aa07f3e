package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dright/marketplace/internal/adapter"
	"github.com/dright/marketplace/internal/domain"
	"github.com/dright/marketplace/internal/store"
)

// nonceKeyPrefix namespaces login nonces in the key-value store.
const nonceKeyPrefix = "auth:nonce"

// Challenge is a one-time login challenge the wallet must sign.
type Challenge struct {
	Nonce     string    `json:"nonce"`
	Message   string    `json:"message"`
	ExpiresAt time.Time `json:"expires_at"`
}

// NonceService mints and consumes one-time login nonces backed by the
// key-value store. Nonces are bound to a (blockchain, address) pair so a
// challenge issued for one wallet cannot authenticate another.
type NonceService struct {
	store store.Store
	clock adapter.Clock
	ttl   time.Duration
}

// NewNonceService creates a nonce service with the given TTL.
func NewNonceService(s store.Store, clock adapter.Clock, ttl time.Duration) *NonceService {
	return &NonceService{
		store: s,
		clock: clock,
		ttl:   ttl,
	}
}

// Issue mints a fresh UUID nonce for the given wallet and stores its issue
// time. The returned message is the exact text the wallet must sign.
func (s *NonceService) Issue(ctx context.Context, blockchain domain.Blockchain, address string) (*Challenge, error) {
	nonce := uuid.NewString()
	issuedAt := s.clock.Now().UTC()

	key := nonceKey(blockchain, address, nonce)
	if err := s.store.SetKeyValue(ctx, key, issuedAt.Format(time.RFC3339Nano)); err != nil {
		return nil, fmt.Errorf("failed to store nonce: %w", err)
	}

	return &Challenge{
		Nonce:     nonce,
		Message:   ChallengeMessage(address, nonce, issuedAt),
		ExpiresAt: issuedAt.Add(s.ttl),
	}, nil
}

// Consume atomically deletes the nonce and returns the challenge message the
// wallet was asked to sign. Unknown, reused, or expired nonces return
// domain.ErrInvalidNonce. A nonce is consumed even when it turns out to be
// expired, so a failed login never leaves a replayable nonce behind.
func (s *NonceService) Consume(ctx context.Context, blockchain domain.Blockchain, address string, nonce string) (string, error) {
	key := nonceKey(blockchain, address, nonce)
	value, err := s.store.ConsumeKeyValue(ctx, key)
	if err != nil {
		return "", fmt.Errorf("failed to consume nonce: %w", err)
	}
	if value == "" {
		return "", domain.ErrInvalidNonce
	}

	issuedAt, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return "", domain.ErrInvalidNonce
	}
	if s.clock.Now().After(issuedAt.Add(s.ttl)) {
		return "", domain.ErrInvalidNonce
	}

	return ChallengeMessage(address, nonce, issuedAt), nil
}

// ChallengeMessage renders the text a wallet signs to prove ownership of an
// address. The nonce and issue time make every challenge unique.
func ChallengeMessage(address string, nonce string, issuedAt time.Time) string {
	return fmt.Sprintf(
		"Sign this message to authenticate with Dright.\n\nAddress: %s\nNonce: %s\nIssued At: %s",
		address, nonce, issuedAt.UTC().Format(time.RFC3339Nano),
	)
}

func nonceKey(blockchain domain.Blockchain, address string, nonce string) string {
	return fmt.Sprintf("%s:%s:%s:%s", nonceKeyPrefix, blockchain, domain.NormalizeAddress(address), nonce)
}
