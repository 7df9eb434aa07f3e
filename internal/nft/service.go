package nft

import (
	"context"
	"fmt"

	"github.com/dright/marketplace/internal/domain"
)

// MintRequest asks a chain service to mint one right token.
type MintRequest struct {
	// To is the wallet that receives the minted token.
	To string
	// MetadataCID is the IPFS CID of the pinned metadata document. The
	// token's URI becomes ipfs://<CID>.
	MetadataCID string
}

// MintResult carries the SDK-reported identifiers of a completed mint.
// TxHash always comes from a receipt, never synthesized.
type MintResult struct {
	TxHash string
	Ref    domain.NFTRef

	// Hedera identifiers
	TokenID     *string
	TokenSerial *int64

	// Ethereum identifiers
	ContractAddress *string
	TokenNumber     *string
}

// TransferRequest moves a minted token between wallets.
type TransferRequest struct {
	Ref  domain.NFTRef
	From string
	To   string
}

// TransferResult carries the receipt of a completed transfer.
type TransferResult struct {
	TxHash string
}

// ChainStatus reports a chain service's view of its network.
type ChainStatus struct {
	Chain       domain.Blockchain `json:"chain"`
	Network     string            `json:"network"`
	Healthy     bool              `json:"healthy"`
	LatestBlock uint64            `json:"latest_block"`
	GasPrice    *string           `json:"gas_price,omitempty"` // wei, Ethereum only
}

// Service mints and transfers right tokens on one blockchain
//
//go:generate mockgen -source=service.go -destination=../mocks/nft.go -package=mocks -mock_names=Service=MockNFTService
type Service interface {
	Chain() domain.Blockchain
	Mint(ctx context.Context, req MintRequest) (*MintResult, error)
	Transfer(ctx context.Context, req TransferRequest) (*TransferResult, error)
	Status(ctx context.Context) (*ChainStatus, error)
}

// Router picks the chain service for a blockchain.
type Router struct {
	services map[domain.Blockchain]Service
}

// NewRouter indexes services by their chain. Later registrations for the
// same chain replace earlier ones.
func NewRouter(services ...Service) *Router {
	byChain := make(map[domain.Blockchain]Service, len(services))
	for _, svc := range services {
		byChain[svc.Chain()] = svc
	}
	return &Router{services: byChain}
}

// For returns the service handling the given blockchain.
func (r *Router) For(chain domain.Blockchain) (Service, error) {
	svc, ok := r.services[chain]
	if !ok {
		return nil, fmt.Errorf("no NFT service registered for chain %q", chain)
	}
	return svc, nil
}

// Chains lists the registered blockchains.
func (r *Router) Chains() []domain.Blockchain {
	chains := make([]domain.Blockchain, 0, len(r.services))
	for chain := range r.services {
		chains = append(chains, chain)
	}
	return chains
}

// TokenURI renders the token URI for a metadata CID.
func TokenURI(metadataCID string) string {
	return "ipfs://" + metadataCID
}

func validateMintRequest(req MintRequest, chain domain.Blockchain) error {
	if req.MetadataCID == "" {
		return fmt.Errorf("metadata CID is required")
	}
	if !domain.IsValidAddress(req.To, chain) {
		return fmt.Errorf("invalid %s recipient address: %s", chain, req.To)
	}
	return nil
}

func validateTransferRequest(req TransferRequest, chain domain.Blockchain) error {
	if !req.Ref.Valid() {
		return fmt.Errorf("invalid token reference: %s", req.Ref)
	}
	if !domain.IsValidAddress(req.From, chain) {
		return fmt.Errorf("invalid %s sender address: %s", chain, req.From)
	}
	if !domain.IsValidAddress(req.To, chain) {
		return fmt.Errorf("invalid %s recipient address: %s", chain, req.To)
	}
	return nil
}
