package ethereum

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/dright/marketplace/internal/block"
	"github.com/dright/marketplace/internal/domain"
	"github.com/dright/marketplace/internal/logger"
	"github.com/dright/marketplace/internal/messaging"
)

// Config holds the configuration for Ethereum subscription
type Config struct {
	WebSocketURL string       // WebSocket URL (e.g., wss://sepolia.infura.io/ws/v3/YOUR_PROJECT_ID)
	ChainID      domain.Chain // e.g., "eip155:11155111" for Sepolia
}

type ethSubscriber struct {
	client  EthereumClient
	blocks  block.BlockProvider
	chainID domain.Chain
}

// NewSubscriber creates a new Ethereum transfer subscriber for the rights
// contract. Transfers observed before fromBlock are backfilled via log
// filtering before the live subscription takes over. Head lookups go
// through the block provider so repeated calls hit its cache.
func NewSubscriber(cfg Config, ethereumClient EthereumClient, blocks block.BlockProvider) messaging.Subscriber {
	return &ethSubscriber{
		client:  ethereumClient,
		blocks:  blocks,
		chainID: cfg.ChainID,
	}
}

// SubscribeEvents subscribes to Transfer events of the rights contract
func (s *ethSubscriber) SubscribeEvents(ctx context.Context, fromBlock uint64, handler messaging.EventHandler) error {
	// Backfill the gap between the saved cursor and the chain head first,
	// then follow the live stream
	head, err := s.GetLatestBlock(ctx)
	if err != nil {
		return err
	}
	if fromBlock > 0 && fromBlock <= head {
		if err := s.backfill(ctx, fromBlock, head, handler); err != nil {
			return err
		}
	}

	logs := make(chan types.Log)
	sub, err := s.client.SubscribeTransfers(ctx, logs)
	if err != nil {
		return fmt.Errorf("failed to subscribe to transfer logs: %w", err)
	}
	defer func() {
		logger.InfoCtx(ctx, "Unsubscribing from ethereum transfer logs")
		sub.Unsubscribe()
		logger.InfoCtx(ctx, "Unsubscribed from ethereum transfer logs")
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-sub.Err():
			return fmt.Errorf("subscription error: %w", err)
		case vLog := <-logs:
			if err := s.handleLog(ctx, vLog, handler); err != nil {
				logger.ErrorCtx(ctx, err, zap.String("message", "Error handling transfer log"))
			}
		}
	}
}

// backfill replays the contract's Transfer logs between two blocks
func (s *ethSubscriber) backfill(ctx context.Context, fromBlock, toBlock uint64, handler messaging.EventHandler) error {
	logger.InfoCtx(ctx, "Backfilling transfer logs",
		zap.Uint64("from_block", fromBlock),
		zap.Uint64("to_block", toBlock),
	)

	logs, err := s.client.FilterTransfers(ctx, fromBlock, toBlock)
	if err != nil {
		return fmt.Errorf("failed to backfill transfer logs: %w", err)
	}

	for _, vLog := range logs {
		if err := s.handleLog(ctx, vLog, handler); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("message", "Error handling backfilled log"))
		}
	}
	return nil
}

// handleLog parses one Transfer log and hands it to the event handler
func (s *ethSubscriber) handleLog(ctx context.Context, vLog types.Log, handler messaging.EventHandler) error {
	event, err := s.client.ParseTransferLog(ctx, vLog)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return fmt.Errorf("failed to parse transfer log: %w", err)
	}

	if event == nil {
		// Log from another contract
		return nil
	}

	return handler(event, vLog.BlockNumber)
}

// GetLatestBlock returns the latest block number
func (s *ethSubscriber) GetLatestBlock(ctx context.Context) (uint64, error) {
	head, err := s.blocks.GetLatestBlock(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get latest block: %w", err)
	}
	return head, nil
}

// Close closes the connection
func (s *ethSubscriber) Close() {
	if s.client == nil {
		return
	}

	s.client.Close()
	logger.Info("Ethereum WebSocket connection closed")
}
