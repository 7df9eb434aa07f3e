package wallet

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/dright/marketplace/internal/domain"
	"github.com/dright/marketplace/internal/logger"
)

// DetectResult reports one provider's availability after a probe
type DetectResult struct {
	Kind      domain.WalletKind `json:"kind"`
	Chain     domain.Blockchain `json:"chain"`
	Available bool              `json:"available"`
	Error     *string           `json:"error,omitempty"`
}

// Registry holds the wallet providers and fans operations out to them
type Registry struct {
	providers map[domain.WalletKind]Provider
	order     []domain.WalletKind
}

// NewRegistry creates a registry over the given providers
// Registration order is preserved in Detect results
func NewRegistry(providers ...Provider) *Registry {
	r := &Registry{
		providers: make(map[domain.WalletKind]Provider, len(providers)),
	}
	for _, p := range providers {
		if _, dup := r.providers[p.Kind()]; dup {
			continue
		}
		r.providers[p.Kind()] = p
		r.order = append(r.order, p.Kind())
	}
	return r
}

// For returns the provider for a wallet kind
func (r *Registry) For(kind domain.WalletKind) (Provider, error) {
	p, ok := r.providers[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrProviderUnavailable, kind)
	}
	return p, nil
}

// Detect probes every provider in parallel and reports per-provider
// availability. One provider failing never blocks the others.
func (r *Registry) Detect(ctx context.Context) []DetectResult {
	type probe struct {
		kind domain.WalletKind
		err  error
	}

	probeCh := make(chan probe, len(r.order))
	var wg sync.WaitGroup

	for _, kind := range r.order {
		wg.Add(1)
		go func(p Provider) {
			defer wg.Done()
			probeCh <- probe{kind: p.Kind(), err: p.Detect(ctx)}
		}(r.providers[kind])
	}

	go func() {
		wg.Wait()
		close(probeCh)
	}()

	outcomes := make(map[domain.WalletKind]error, len(r.order))
	for res := range probeCh {
		outcomes[res.kind] = res.err
	}

	results := make([]DetectResult, 0, len(r.order))
	for _, kind := range r.order {
		err, probed := outcomes[kind]
		result := DetectResult{
			Kind:      kind,
			Chain:     r.providers[kind].Chain(),
			Available: probed && err == nil,
		}
		if err != nil {
			msg := err.Error()
			result.Error = &msg
			logger.WarnCtx(ctx, "wallet provider unavailable",
				zap.String("kind", string(kind)),
				zap.Error(err))
		}
		results = append(results, result)
	}

	return results
}

// VerifyConnection is the connect() operation: it verifies the challenge
// signature through the named provider and returns the canonical form of the
// address on success
func (r *Registry) VerifyConnection(ctx context.Context, kind domain.WalletKind, address, message, signature, publicKey string) (string, error) {
	p, err := r.For(kind)
	if err != nil {
		return "", err
	}

	if err := p.VerifySignature(ctx, address, message, signature, publicKey); err != nil {
		return "", err
	}

	return domain.NormalizeAddress(address), nil
}
