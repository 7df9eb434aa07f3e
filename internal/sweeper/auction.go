package sweeper

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go.temporal.io/api/enums/v1"
	"go.temporal.io/sdk/client"
	"go.uber.org/zap"

	"github.com/dright/marketplace/internal/adapter"
	"github.com/dright/marketplace/internal/logger"
	"github.com/dright/marketplace/internal/providers/temporal"
	"github.com/dright/marketplace/internal/store"
	"github.com/dright/marketplace/internal/workflows"
)

// AuctionSweeperConfig holds configuration for the auction settlement sweeper
type AuctionSweeperConfig struct {
	SweepInterval time.Duration // Time to sleep between sweep cycles
	BatchSize     int           // Ended auctions to settle per cycle
	TaskQueue     string        // Temporal task queue the settlement workflows run on
}

// auctionSweeper finds auctions whose end time has passed and starts a
// settlement workflow for each
type auctionSweeper struct {
	config    *AuctionSweeperConfig
	store     store.Store
	clock     adapter.Clock
	temporal  temporal.TemporalOrchestrator
	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewAuctionSweeper creates a new auction settlement sweeper
func NewAuctionSweeper(
	config *AuctionSweeperConfig,
	st store.Store,
	clock adapter.Clock,
	orchestrator temporal.TemporalOrchestrator,
) Sweeper {
	return &auctionSweeper{
		config:    config,
		store:     st,
		clock:     clock,
		temporal:  orchestrator,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (s *auctionSweeper) Name() string {
	return "auction-sweeper"
}

// Start begins the sweeper's main loop
func (s *auctionSweeper) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh)
	}()

	logger.InfoCtx(ctx, "Starting auction sweeper",
		zap.Duration("sweep_interval", s.config.SweepInterval),
		zap.Int("batch_size", s.config.BatchSize),
	)

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Auction sweeper stopping due to context cancellation", zap.Error(ctx.Err()))
			return nil
		case <-s.stopChan:
			logger.InfoCtx(ctx, "Auction sweeper stop requested")
			return nil
		default:
			if err := s.runSweepCycle(ctx); err != nil {
				if !errors.Is(err, context.Canceled) {
					logger.ErrorCtx(ctx, err)
				}
			}
			if !s.sleep(ctx, s.config.SweepInterval) {
				return nil
			}
		}
	}
}

// Stop gracefully stops the sweeper with timeout support
func (s *auctionSweeper) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil // Already stopped
	}

	logger.InfoCtx(ctx, "Stopping auction sweeper")
	close(s.stopChan)

	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Auction sweeper stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Auction sweeper stop interrupted by context timeout")
		return ctx.Err()
	}
}

// runSweepCycle starts a settlement workflow for each ended auction
func (s *auctionSweeper) runSweepCycle(ctx context.Context) error {
	now := s.clock.Now().UTC()

	ended, err := s.store.GetEndedAuctions(ctx, now, s.config.BatchSize)
	if err != nil {
		return fmt.Errorf("failed to get ended auctions: %w", err)
	}
	if len(ended) == 0 {
		return nil
	}

	logger.InfoCtx(ctx, "Found ended auctions to settle", zap.Int("count", len(ended)))

	w := workflows.NewWorkerCore(nil, workflows.WorkerCoreConfig{})
	for _, right := range ended {
		// The id pins one settlement run per auction end; a completed
		// settlement is never repeated, a failed one may be retried
		workflowOptions := client.StartWorkflowOptions{
			ID:                    fmt.Sprintf("settle-auction-%s-%d", right.ID, right.AuctionEnd.Unix()),
			TaskQueue:             s.config.TaskQueue,
			WorkflowRunTimeout:    30 * time.Minute,
			WorkflowIDReusePolicy: enums.WORKFLOW_ID_REUSE_POLICY_ALLOW_DUPLICATE_FAILED_ONLY,
		}

		run, err := s.temporal.ExecuteWorkflow(ctx, workflowOptions, w.SettleAuction, right.ID)
		if err != nil {
			logger.ErrorCtx(ctx, fmt.Errorf("failed to start settlement workflow: %w", err),
				zap.String("right_id", right.ID),
			)
			continue
		}

		if run != nil {
			logger.InfoCtx(ctx, "Settlement workflow started",
				zap.String("right_id", right.ID),
				zap.String("workflow_id", run.GetID()),
				zap.String("run_id", run.GetRunID()),
			)
		}
	}

	return nil
}

// sleep sleeps for the given duration but can be interrupted by context
// cancellation or a stop request
func (s *auctionSweeper) sleep(ctx context.Context, duration time.Duration) bool {
	select {
	case <-s.clock.After(duration):
		return true
	case <-ctx.Done():
		return false
	case <-s.stopChan:
		return false
	}
}
