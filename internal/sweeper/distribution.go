package sweeper

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.temporal.io/api/enums/v1"
	"go.temporal.io/sdk/client"
	"go.uber.org/zap"

	"github.com/dright/marketplace/internal/adapter"
	"github.com/dright/marketplace/internal/domain"
	"github.com/dright/marketplace/internal/logger"
	"github.com/dright/marketplace/internal/providers/temporal"
	"github.com/dright/marketplace/internal/store"
	"github.com/dright/marketplace/internal/workflows"
)

// DistributionSchedulerConfig holds configuration for the revenue
// distribution scheduler
type DistributionSchedulerConfig struct {
	CheckInterval time.Duration // How often to look for work
	Period        time.Duration // Revenue period length per distribution
	BatchSize     int           // Due distributions to dispatch per cycle
	TaskQueue     string        // Temporal task queue the payout workflows run on
}

// distributionScheduler periodically schedules revenue distributions for
// dividend-paying rights and dispatches the due ones to payout workflows
type distributionScheduler struct {
	config    *DistributionSchedulerConfig
	store     store.Store
	clock     adapter.Clock
	temporal  temporal.TemporalOrchestrator
	scheduler gocron.Scheduler
	running   atomic.Bool
	stoppedCh chan struct{}
}

// NewDistributionScheduler creates a new revenue distribution scheduler
func NewDistributionScheduler(
	config *DistributionSchedulerConfig,
	st store.Store,
	clock adapter.Clock,
	orchestrator temporal.TemporalOrchestrator,
) Sweeper {
	return &distributionScheduler{
		config:    config,
		store:     st,
		clock:     clock,
		temporal:  orchestrator,
		stoppedCh: make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (s *distributionScheduler) Name() string {
	return "distribution-scheduler"
}

// Start runs the scheduler until the context is canceled
func (s *distributionScheduler) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("scheduler already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh)
	}()

	logger.InfoCtx(ctx, "Starting distribution scheduler",
		zap.Duration("check_interval", s.config.CheckInterval),
		zap.Duration("period", s.config.Period),
	)

	sched, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}
	s.scheduler = sched

	_, err = sched.NewJob(
		gocron.DurationJob(s.config.CheckInterval),
		gocron.NewTask(func() {
			s.runCycle(ctx)
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule distribution job: %w", err)
	}

	sched.Start()
	<-ctx.Done()

	if err := sched.Shutdown(); err != nil {
		logger.WarnCtx(ctx, "Distribution scheduler shutdown error", zap.Error(err))
	}
	return nil
}

// Stop gracefully stops the scheduler with timeout support
func (s *distributionScheduler) Stop(ctx context.Context) error {
	if !s.running.Load() {
		return nil
	}

	logger.InfoCtx(ctx, "Stopping distribution scheduler")
	if s.scheduler != nil {
		if err := s.scheduler.Shutdown(); err != nil {
			return err
		}
	}

	select {
	case <-s.stoppedCh:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// runCycle schedules new distributions and dispatches the due ones
func (s *distributionScheduler) runCycle(ctx context.Context) {
	if err := s.scheduleDistributions(ctx); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to schedule distributions: %w", err))
	}
	if err := s.dispatchDueDistributions(ctx); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to dispatch due distributions: %w", err))
	}
}

// scheduleDistributions creates the next distribution row for every
// dividend-paying right whose revenue period has closed
func (s *distributionScheduler) scheduleDistributions(ctx context.Context) error {
	now := s.clock.Now().UTC()
	paysDividends := true

	rights, _, err := s.store.GetRightsByFilter(ctx, store.RightQueryFilter{
		Statuses:      []domain.RightStatus{domain.RightStatusActive},
		PaysDividends: &paysDividends,
		Limit:         s.config.BatchSize,
	})
	if err != nil {
		return fmt.Errorf("failed to list dividend rights: %w", err)
	}

	for _, right := range rights {
		periodStart := right.CreatedAt.UTC()

		// The newest distribution marks where the last period ended
		latest, _, err := s.store.ListDistributionsByRight(ctx, right.ID, 1, 0)
		if err != nil {
			logger.ErrorCtx(ctx, err, zap.String("right_id", right.ID))
			continue
		}
		if len(latest) > 0 {
			periodStart = latest[0].PeriodEnd.UTC()
		}

		periodEnd := periodStart.Add(s.config.Period)
		if periodEnd.After(now) {
			continue // Period still open
		}

		revenue, err := s.store.GetRightRevenueInPeriod(ctx, right.ID, periodStart, periodEnd)
		if err != nil {
			logger.ErrorCtx(ctx, err, zap.String("right_id", right.ID))
			continue
		}
		if revenue == "" {
			// Record empty periods too so the next one starts from here
			revenue = "0"
		}

		dist, err := s.store.CreateScheduledDistribution(ctx, store.CreateDistributionInput{
			RightID:      right.ID,
			PeriodStart:  periodStart,
			PeriodEnd:    periodEnd,
			TotalRevenue: revenue,
		})
		if err != nil {
			logger.ErrorCtx(ctx, err, zap.String("right_id", right.ID))
			continue
		}
		if dist != nil {
			logger.InfoCtx(ctx, "Scheduled revenue distribution",
				zap.String("right_id", right.ID),
				zap.Int64("distribution_id", dist.ID),
				zap.Time("period_start", periodStart),
				zap.Time("period_end", periodEnd),
				zap.String("total_revenue", revenue),
			)
		}
	}

	return nil
}

// dispatchDueDistributions starts a payout workflow for every scheduled
// distribution whose period has closed
func (s *distributionScheduler) dispatchDueDistributions(ctx context.Context) error {
	now := s.clock.Now().UTC()

	due, err := s.store.GetDueDistributions(ctx, now, s.config.BatchSize)
	if err != nil {
		return fmt.Errorf("failed to get due distributions: %w", err)
	}
	if len(due) == 0 {
		return nil
	}

	logger.InfoCtx(ctx, "Found due distributions", zap.Int("count", len(due)))

	w := workflows.NewWorkerCore(nil, workflows.WorkerCoreConfig{})
	for _, dist := range due {
		workflowOptions := client.StartWorkflowOptions{
			ID:                    fmt.Sprintf("distribute-revenue-%d", dist.ID),
			TaskQueue:             s.config.TaskQueue,
			WorkflowRunTimeout:    30 * time.Minute,
			WorkflowIDReusePolicy: enums.WORKFLOW_ID_REUSE_POLICY_ALLOW_DUPLICATE_FAILED_ONLY,
		}

		run, err := s.temporal.ExecuteWorkflow(ctx, workflowOptions, w.DistributeRevenue, dist.ID)
		if err != nil {
			logger.ErrorCtx(ctx, fmt.Errorf("failed to start distribution workflow: %w", err),
				zap.Int64("distribution_id", dist.ID),
			)
			continue
		}

		if run != nil {
			logger.InfoCtx(ctx, "Distribution workflow started",
				zap.Int64("distribution_id", dist.ID),
				zap.String("workflow_id", run.GetID()),
			)
		}
	}

	return nil
}
