package nft

import (
	"context"
	"fmt"

	"github.com/dright/marketplace/internal/domain"
	"github.com/dright/marketplace/internal/providers/ethereum"
)

// EthereumConfig holds the network identity for the Ethereum chain service.
type EthereumConfig struct {
	// ChainID is the CAIP-2 chain ID, e.g. eip155:11155111
	ChainID domain.Chain
	// Network is a human-readable network name for status reporting
	Network string
}

type ethereumService struct {
	config EthereumConfig
	client ethereum.EthereumClient
}

// NewEthereumService builds the Ethereum chain service over the rights
// ERC-721 contract client.
func NewEthereumService(cfg EthereumConfig, client ethereum.EthereumClient) Service {
	return &ethereumService{
		config: cfg,
		client: client,
	}
}

func (s *ethereumService) Chain() domain.Blockchain {
	return domain.BlockchainEthereum
}

func (s *ethereumService) Mint(ctx context.Context, req MintRequest) (*MintResult, error) {
	if err := validateMintRequest(req, domain.BlockchainEthereum); err != nil {
		return nil, err
	}

	receipt, err := s.client.MintRight(ctx, req.To, TokenURI(req.MetadataCID))
	if err != nil {
		return nil, fmt.Errorf("ethereum mint failed: %w", err)
	}

	contract := s.client.ContractAddress()
	tokenNumber := receipt.TokenNumber
	return &MintResult{
		TxHash:          receipt.TxHash,
		Ref:             domain.NewNFTRef(s.config.ChainID, contract, tokenNumber),
		ContractAddress: &contract,
		TokenNumber:     &tokenNumber,
	}, nil
}

func (s *ethereumService) Transfer(ctx context.Context, req TransferRequest) (*TransferResult, error) {
	if err := validateTransferRequest(req, domain.BlockchainEthereum); err != nil {
		return nil, err
	}

	_, _, tokenNumber := req.Ref.Parse()
	txHash, err := s.client.TransferRight(ctx, req.From, req.To, tokenNumber)
	if err != nil {
		return nil, fmt.Errorf("ethereum transfer failed: %w", err)
	}

	return &TransferResult{TxHash: txHash}, nil
}

func (s *ethereumService) Status(ctx context.Context) (*ChainStatus, error) {
	status := &ChainStatus{
		Chain:   domain.BlockchainEthereum,
		Network: s.config.Network,
	}

	st, err := s.client.Status(ctx)
	if err != nil {
		return status, nil
	}
	status.Healthy = st.Synced
	status.LatestBlock = st.LatestBlock
	status.GasPrice = &st.GasPriceWei
	return status, nil
}
