package nft

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dright/marketplace/internal/domain"
	"github.com/dright/marketplace/internal/providers/hedera"
)

// HederaConfig holds the collection token and network identity for the
// Hedera chain service.
type HederaConfig struct {
	// ChainID is the CAIP-2 chain ID, e.g. hedera:testnet
	ChainID domain.Chain
	// Network is the Hedera network name (mainnet, testnet)
	Network string
	// CollectionTokenID is the HTS token all rights are minted under
	CollectionTokenID string
}

type hederaService struct {
	config HederaConfig
	sdk    hedera.SDKClient
	mirror hedera.MirrorClient
}

// NewHederaService builds the Hedera chain service. Mints create serials
// under the collection token; the token URI is stored as serial metadata.
func NewHederaService(cfg HederaConfig, sdk hedera.SDKClient, mirror hedera.MirrorClient) Service {
	return &hederaService{
		config: cfg,
		sdk:    sdk,
		mirror: mirror,
	}
}

func (s *hederaService) Chain() domain.Blockchain {
	return domain.BlockchainHedera
}

func (s *hederaService) Mint(ctx context.Context, req MintRequest) (*MintResult, error) {
	if err := validateMintRequest(req, domain.BlockchainHedera); err != nil {
		return nil, err
	}

	// HTS metadata is capped at 100 bytes, so the serial carries the
	// ipfs:// URI rather than the metadata document itself.
	receipt, err := s.sdk.MintNFT(ctx, s.config.CollectionTokenID, []byte(TokenURI(req.MetadataCID)))
	if err != nil {
		return nil, fmt.Errorf("hedera mint failed: %w", err)
	}

	// Serials mint to the treasury; move the token to the creator unless
	// the creator is the treasury itself.
	if req.To != s.sdk.OperatorID() {
		if _, err := s.sdk.TransferNFT(ctx, s.config.CollectionTokenID, receipt.Serial, s.sdk.OperatorID(), req.To); err != nil {
			return nil, fmt.Errorf("hedera mint delivery failed: serial %d stuck in treasury: %w", receipt.Serial, err)
		}
	}

	serial := strconv.FormatInt(receipt.Serial, 10)
	tokenID := s.config.CollectionTokenID
	serialNum := receipt.Serial
	return &MintResult{
		TxHash:      receipt.TransactionID,
		Ref:         domain.NewNFTRef(s.config.ChainID, tokenID, serial),
		TokenID:     &tokenID,
		TokenSerial: &serialNum,
	}, nil
}

func (s *hederaService) Transfer(ctx context.Context, req TransferRequest) (*TransferResult, error) {
	if err := validateTransferRequest(req, domain.BlockchainHedera); err != nil {
		return nil, err
	}

	_, tokenID, serialStr := req.Ref.Parse()
	serial, err := strconv.ParseInt(serialStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid serial in token reference %s: %w", req.Ref, err)
	}

	txID, err := s.sdk.TransferNFT(ctx, tokenID, serial, req.From, req.To)
	if err != nil {
		return nil, fmt.Errorf("hedera transfer failed: %w", err)
	}

	return &TransferResult{TxHash: txID}, nil
}

func (s *hederaService) Status(ctx context.Context) (*ChainStatus, error) {
	status := &ChainStatus{
		Chain:   domain.BlockchainHedera,
		Network: s.config.Network,
	}

	block, err := s.mirror.LatestBlock(ctx)
	if err != nil {
		return status, nil
	}
	status.Healthy = true
	status.LatestBlock = block
	return status, nil
}
