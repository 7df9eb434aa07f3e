package sweeper_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/client"

	"github.com/dright/marketplace/internal/domain"
	"github.com/dright/marketplace/internal/logger"
	"github.com/dright/marketplace/internal/mocks"
	"github.com/dright/marketplace/internal/store"
	"github.com/dright/marketplace/internal/store/schema"
	"github.com/dright/marketplace/internal/sweeper"
)

// testSchedulerMocks contains all the mocks needed for testing the scheduler
type testSchedulerMocks struct {
	ctrl         *gomock.Controller
	store        *mocks.MockStore
	clock        *mocks.MockClock
	orchestrator *mocks.MockTemporalOrchestrator
	scheduler    sweeper.Sweeper
}

// setupScheduler creates all the mocks and scheduler for testing
func setupScheduler(t *testing.T) *testSchedulerMocks {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: true,
	})
	if err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	ctrl := gomock.NewController(t)

	tm := &testSchedulerMocks{
		ctrl:         ctrl,
		store:        mocks.NewMockStore(ctrl),
		clock:        mocks.NewMockClock(ctrl),
		orchestrator: mocks.NewMockTemporalOrchestrator(ctrl),
	}

	config := &sweeper.DistributionSchedulerConfig{
		// Long enough that the immediate run is the only one during a test
		CheckInterval: time.Minute,
		Period:        30 * 24 * time.Hour,
		BatchSize:     10,
		TaskQueue:     "test-task-queue",
	}

	tm.scheduler = sweeper.NewDistributionScheduler(
		config,
		tm.store,
		tm.clock,
		tm.orchestrator,
	)

	return tm
}

// tearDownScheduler cleans up the test mocks
func tearDownScheduler(mocks *testSchedulerMocks) {
	mocks.ctrl.Finish()
}

// runSchedulerCycle starts the scheduler, lets the immediate job run once,
// then cancels the context
func runSchedulerCycle(t *testing.T, tm *testSchedulerMocks) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- tm.scheduler.Start(ctx)
	}()

	time.Sleep(300 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("scheduler did not stop")
	}
}

func dividendRightRow(id string, createdAt time.Time) *schema.Right {
	return &schema.Right{
		ID:            id,
		Status:        domain.RightStatusActive,
		PaysDividends: true,
		CreatedAt:     createdAt,
	}
}

func TestDistributionScheduler_Name(t *testing.T) {
	tm := setupScheduler(t)
	defer tearDownScheduler(tm)

	assert.Equal(t, "distribution-scheduler", tm.scheduler.Name())
}

func TestDistributionScheduler_SchedulesClosedPeriod(t *testing.T) {
	tm := setupScheduler(t)
	defer tearDownScheduler(tm)

	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	createdAt := now.Add(-45 * 24 * time.Hour)
	periodEnd := createdAt.Add(30 * 24 * time.Hour)

	tm.clock.EXPECT().Now().Return(now).AnyTimes()

	paysDividends := true
	tm.store.EXPECT().
		GetRightsByFilter(gomock.Any(), store.RightQueryFilter{
			Statuses:      []domain.RightStatus{domain.RightStatusActive},
			PaysDividends: &paysDividends,
			Limit:         10,
		}).
		Return([]*schema.Right{dividendRightRow("right-1", createdAt)}, uint64(1), nil).
		Times(1)

	// No prior distributions, the period starts at creation time
	tm.store.EXPECT().
		ListDistributionsByRight(gomock.Any(), "right-1", 1, uint64(0)).
		Return([]*schema.RevenueDistribution{}, uint64(0), nil).
		Times(1)

	tm.store.EXPECT().
		GetRightRevenueInPeriod(gomock.Any(), "right-1", createdAt, periodEnd).
		Return("5000000", nil).
		Times(1)

	tm.store.EXPECT().
		CreateScheduledDistribution(gomock.Any(), store.CreateDistributionInput{
			RightID:      "right-1",
			PeriodStart:  createdAt,
			PeriodEnd:    periodEnd,
			TotalRevenue: "5000000",
		}).
		Return(&schema.RevenueDistribution{ID: 7, RightID: "right-1"}, nil).
		Times(1)

	tm.store.EXPECT().
		GetDueDistributions(gomock.Any(), now, 10).
		Return([]*schema.RevenueDistribution{}, nil).
		Times(1)

	runSchedulerCycle(t, tm)
}

func TestDistributionScheduler_PeriodStartsAtLastPeriodEnd(t *testing.T) {
	tm := setupScheduler(t)
	defer tearDownScheduler(tm)

	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	createdAt := now.Add(-90 * 24 * time.Hour)
	lastEnd := createdAt.Add(30 * 24 * time.Hour)
	nextEnd := lastEnd.Add(30 * 24 * time.Hour)

	tm.clock.EXPECT().Now().Return(now).AnyTimes()

	tm.store.EXPECT().
		GetRightsByFilter(gomock.Any(), gomock.Any()).
		Return([]*schema.Right{dividendRightRow("right-1", createdAt)}, uint64(1), nil).
		Times(1)

	tm.store.EXPECT().
		ListDistributionsByRight(gomock.Any(), "right-1", 1, uint64(0)).
		Return([]*schema.RevenueDistribution{
			{ID: 3, RightID: "right-1", PeriodStart: createdAt, PeriodEnd: lastEnd},
		}, uint64(1), nil).
		Times(1)

	tm.store.EXPECT().
		GetRightRevenueInPeriod(gomock.Any(), "right-1", lastEnd, nextEnd).
		Return("", nil).
		Times(1)

	// Empty revenue is recorded as zero so the next period still advances
	tm.store.EXPECT().
		CreateScheduledDistribution(gomock.Any(), store.CreateDistributionInput{
			RightID:      "right-1",
			PeriodStart:  lastEnd,
			PeriodEnd:    nextEnd,
			TotalRevenue: "0",
		}).
		Return(&schema.RevenueDistribution{ID: 4, RightID: "right-1"}, nil).
		Times(1)

	tm.store.EXPECT().
		GetDueDistributions(gomock.Any(), now, 10).
		Return([]*schema.RevenueDistribution{}, nil).
		Times(1)

	runSchedulerCycle(t, tm)
}

func TestDistributionScheduler_SkipsOpenPeriod(t *testing.T) {
	tm := setupScheduler(t)
	defer tearDownScheduler(tm)

	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	createdAt := now.Add(-10 * 24 * time.Hour)

	tm.clock.EXPECT().Now().Return(now).AnyTimes()

	tm.store.EXPECT().
		GetRightsByFilter(gomock.Any(), gomock.Any()).
		Return([]*schema.Right{dividendRightRow("right-1", createdAt)}, uint64(1), nil).
		Times(1)

	tm.store.EXPECT().
		ListDistributionsByRight(gomock.Any(), "right-1", 1, uint64(0)).
		Return([]*schema.RevenueDistribution{}, uint64(0), nil).
		Times(1)

	// Period still open, nothing is scheduled

	tm.store.EXPECT().
		GetDueDistributions(gomock.Any(), now, 10).
		Return([]*schema.RevenueDistribution{}, nil).
		Times(1)

	runSchedulerCycle(t, tm)
}

func TestDistributionScheduler_DispatchesDueDistributions(t *testing.T) {
	tm := setupScheduler(t)
	defer tearDownScheduler(tm)

	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	tm.clock.EXPECT().Now().Return(now).AnyTimes()

	tm.store.EXPECT().
		GetRightsByFilter(gomock.Any(), gomock.Any()).
		Return([]*schema.Right{}, uint64(0), nil).
		Times(1)

	tm.store.EXPECT().
		GetDueDistributions(gomock.Any(), now, 10).
		Return([]*schema.RevenueDistribution{
			{ID: 42, RightID: "right-1", Status: schema.DistributionStatusScheduled},
		}, nil).
		Times(1)

	tm.orchestrator.EXPECT().
		ExecuteWorkflow(gomock.Any(), gomock.Any(), gomock.Any(), int64(42)).
		DoAndReturn(func(_ context.Context, options client.StartWorkflowOptions, _ interface{}, _ ...interface{}) (client.WorkflowRun, error) {
			assert.Equal(t, "distribute-revenue-42", options.ID)
			assert.Equal(t, "test-task-queue", options.TaskQueue)
			return client.WorkflowRun(nil), nil
		}).
		Times(1)

	runSchedulerCycle(t, tm)
}

func TestDistributionScheduler_ContinuesWhenWorkflowStartFails(t *testing.T) {
	tm := setupScheduler(t)
	defer tearDownScheduler(tm)

	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	tm.clock.EXPECT().Now().Return(now).AnyTimes()

	tm.store.EXPECT().
		GetRightsByFilter(gomock.Any(), gomock.Any()).
		Return([]*schema.Right{}, uint64(0), nil).
		Times(1)

	tm.store.EXPECT().
		GetDueDistributions(gomock.Any(), now, 10).
		Return([]*schema.RevenueDistribution{
			{ID: 1, RightID: "right-1"},
			{ID: 2, RightID: "right-2"},
		}, nil).
		Times(1)

	tm.orchestrator.EXPECT().
		ExecuteWorkflow(gomock.Any(), gomock.Any(), gomock.Any(), int64(1)).
		Return(client.WorkflowRun(nil), errors.New("temporal unavailable")).
		Times(1)
	tm.orchestrator.EXPECT().
		ExecuteWorkflow(gomock.Any(), gomock.Any(), gomock.Any(), int64(2)).
		Return(client.WorkflowRun(nil), nil).
		Times(1)

	runSchedulerCycle(t, tm)
}
