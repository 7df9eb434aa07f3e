package emitter

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/dright/marketplace/internal/adapter"
	"github.com/dright/marketplace/internal/domain"
	"github.com/dright/marketplace/internal/logger"
	"github.com/dright/marketplace/internal/messaging"
	"github.com/dright/marketplace/internal/store"
)

// Config holds the configuration for the event emitter
type Config struct {
	ChainID         domain.Chain
	StartBlock      uint64
	CursorSaveFreq  uint64        // Save cursor every N blocks
	CursorSaveDelay time.Duration // Or save cursor every N seconds
}

// Emitter defines the interface for the event emitter
//
//go:generate mockgen -source=emitter.go -destination=../mocks/emitter.go -package=mocks -mock_names=Emitter=MockEmitter
type Emitter interface {
	// Run starts the event emitter
	Run(ctx context.Context) error
	// Close closes the emitter and cleans up resources
	Close()
}

// Emitter watches on-chain transfers of marketplace tokens and publishes
// them to NATS
type emitter struct {
	subscriber messaging.Subscriber
	publisher  messaging.Publisher
	store      store.Store
	config     Config
	clock      adapter.Clock
}

// NewEmitter creates a new event emitter
func NewEmitter(
	sub messaging.Subscriber,
	pub messaging.Publisher,
	st store.Store,
	cfg Config,
	clock adapter.Clock,
) Emitter {
	return &emitter{
		subscriber: sub,
		publisher:  pub,
		store:      st,
		config:     cfg,
		clock:      clock,
	}
}

// Run starts the event emitter
func (e *emitter) Run(ctx context.Context) error {
	// Determine starting position
	startBlock := e.config.StartBlock
	if startBlock == 0 {
		// Get last processed position from store
		lastBlock, err := e.store.GetBlockCursor(ctx, string(e.config.ChainID))
		if err != nil {
			return fmt.Errorf("failed to get block cursor: %w", err)
		}

		if lastBlock > 0 {
			startBlock = lastBlock + 1
			logger.InfoCtx(ctx, "Resuming from last processed position", zap.String("chain", string(e.config.ChainID)), zap.Uint64("cursor", startBlock))
		} else {
			// Start from the chain head
			latestBlock, err := e.subscriber.GetLatestBlock(ctx)
			if err != nil {
				return fmt.Errorf("failed to get latest block number: %w", err)
			}
			startBlock = latestBlock
			logger.InfoCtx(ctx, "Starting from chain head", zap.String("chain", string(e.config.ChainID)), zap.Uint64("cursor", startBlock))
		}
	} else {
		logger.InfoCtx(ctx, "Starting from configured position", zap.String("chain", string(e.config.ChainID)), zap.Uint64("cursor", startBlock))
	}

	errCh := make(chan error, 1)

	// Start subscribing to events
	go func() {
		logger.InfoCtx(ctx, "Starting transfer subscription", zap.String("chain", string(e.config.ChainID)))

		lastSavedCursor := uint64(0)
		lastSaveTime := e.clock.Now()

		handler := func(event *domain.MarketplaceEvent, cursor uint64) error {
			// Publish to NATS
			if err := e.publisher.PublishEvent(ctx, event); err != nil {
				return fmt.Errorf("failed to publish event %s: %w", event.TxHash, err)
			}

			// Save cursor periodically (every N blocks or N seconds)
			shouldSave := cursor-lastSavedCursor >= e.config.CursorSaveFreq ||
				e.clock.Since(lastSaveTime) >= e.config.CursorSaveDelay

			if shouldSave {
				if err := e.store.SetBlockCursor(ctx, string(e.config.ChainID), cursor); err != nil {
					logger.WarnCtx(ctx, "Failed to save block cursor", zap.Error(err), zap.String("chain", string(e.config.ChainID)))
				} else {
					lastSavedCursor = cursor
					lastSaveTime = e.clock.Now()
				}
			}

			return nil
		}

		err := e.subscriber.SubscribeEvents(ctx, startBlock, handler)
		if err != nil {
			errCh <- err
		}
	}()

	// Wait for error or context cancellation
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close closes the emitter and cleans up resources
func (e *emitter) Close() {
	e.subscriber.Close()
}
