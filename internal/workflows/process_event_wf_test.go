package workflows_test

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.temporal.io/sdk/testsuite"

	"github.com/dright/marketplace/internal/domain"
	"github.com/dright/marketplace/internal/logger"
	"github.com/dright/marketplace/internal/mocks"
	"github.com/dright/marketplace/internal/store"
	"github.com/dright/marketplace/internal/store/schema"
	"github.com/dright/marketplace/internal/workflows"
)

// ProcessEventWorkflowTestSuite is the test suite for the event fanout workflow
type ProcessEventWorkflowTestSuite struct {
	suite.Suite
	testsuite.WorkflowTestSuite

	env        *testsuite.TestWorkflowEnvironment
	ctrl       *gomock.Controller
	executor   *mocks.MockCoreExecutor
	workerCore workflows.WorkerCore
}

// SetupTest is called before each test
func (s *ProcessEventWorkflowTestSuite) SetupTest() {
	_ = logger.Initialize(logger.Config{
		Debug: true,
	})

	s.env = s.NewTestWorkflowEnvironment()
	s.ctrl = gomock.NewController(s.T())
	s.executor = mocks.NewMockCoreExecutor(s.ctrl)
	s.workerCore = workflows.NewWorkerCore(s.executor, workflows.WorkerCoreConfig{
		HederaChainID:   domain.ChainHederaTestnet,
		EthereumChainID: domain.ChainEthereumSepolia,
		MarketTaskQueue: "market-task-queue",
	})
}

// TearDownTest is called after each test
func (s *ProcessEventWorkflowTestSuite) TearDownTest() {
	s.env.AssertExpectations(s.T())
	s.ctrl.Finish()
}

// TestProcessEventWorkflowTestSuite runs the test suite
func TestProcessEventWorkflowTestSuite(t *testing.T) {
	suite.Run(t, new(ProcessEventWorkflowTestSuite))
}

func (s *ProcessEventWorkflowTestSuite) TestProcessMarketplaceEvent_SaleEvent() {
	event := &domain.MarketplaceEvent{
		EventID:      "01JG8XAMPLE1234567890123456",
		EventType:    domain.EventRightSold,
		Chain:        domain.ChainHederaTestnet,
		RightID:      "b5f8a1c2-3d4e-5f60-7182-93a4b5c6d7e8",
		Actor:        "0.0.1001",
		Counterparty: "0.0.2002",
		Amount:       "250000000",
		Timestamp:    time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}

	s.env.OnActivity(s.executor.CreateEventNotifications, mock.Anything, mock.MatchedBy(func(e *domain.MarketplaceEvent) bool {
		return e.EventID == event.EventID
	})).Return(1, nil)

	s.env.OnWorkflow(s.workerCore.NotifyWebhookClients, mock.Anything, mock.MatchedBy(func(e *domain.MarketplaceEvent) bool {
		return e.EventID == event.EventID
	})).Return(nil)

	s.env.ExecuteWorkflow(s.workerCore.ProcessMarketplaceEvent, event)

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}

func (s *ProcessEventWorkflowTestSuite) TestProcessMarketplaceEvent_TransferReconcilesOwnership() {
	ref := domain.NewNFTRef(domain.ChainHederaTestnet, "0.0.5005", "7")
	event := &domain.MarketplaceEvent{
		EventID:      "01JG8XAMPLE1234567890123457",
		EventType:    domain.EventRightTransferred,
		Chain:        domain.ChainHederaTestnet,
		Ref:          ref,
		Actor:        "0.0.1001",
		Counterparty: "0.0.3003",
		TxHash:       "0.0.9@1700000000.000000003",
		Timestamp:    time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC),
	}

	right := &schema.Right{
		ID:      "b5f8a1c2-3d4e-5f60-7182-93a4b5c6d7e8",
		OwnerID: 33,
		Chain:   domain.BlockchainHedera,
	}

	s.env.OnActivity(s.executor.ReconcileTransfer, mock.Anything, store.TransferRightByRefInput{
		NFTRef:    ref.String(),
		ToAddress: "0.0.3003",
		ToChain:   domain.BlockchainHedera,
	}).Return(right, nil)

	s.env.OnActivity(s.executor.CreateEventNotifications, mock.Anything, mock.Anything).Return(0, nil)
	s.env.OnWorkflow(s.workerCore.NotifyWebhookClients, mock.Anything, mock.Anything).Return(nil)

	s.env.ExecuteWorkflow(s.workerCore.ProcessMarketplaceEvent, event)

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}

func (s *ProcessEventWorkflowTestSuite) TestProcessMarketplaceEvent_UntrackedTokenSkipsFanout() {
	ref := domain.NewNFTRef(domain.ChainHederaTestnet, "0.0.9999", "1")
	event := &domain.MarketplaceEvent{
		EventID:      "01JG8XAMPLE1234567890123458",
		EventType:    domain.EventRightTransferred,
		Chain:        domain.ChainHederaTestnet,
		Ref:          ref,
		Actor:        "0.0.1001",
		Counterparty: "0.0.3003",
		Timestamp:    time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC),
	}

	// Token unknown to the marketplace; no notifications, no webhooks
	s.env.OnActivity(s.executor.ReconcileTransfer, mock.Anything, mock.AnythingOfType("store.TransferRightByRefInput")).
		Return(nil, nil)

	s.env.ExecuteWorkflow(s.workerCore.ProcessMarketplaceEvent, event)

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}

func (s *ProcessEventWorkflowTestSuite) TestProcessMarketplaceEvent_MalformedEventSkipped() {
	event := &domain.MarketplaceEvent{
		EventID:   "01JG8XAMPLE1234567890123459",
		EventType: domain.EventRightSold,
		Chain:     domain.ChainHederaTestnet,
		// A sale without actor, counterparty, or amount is malformed
		RightID:   "b5f8a1c2-3d4e-5f60-7182-93a4b5c6d7e8",
		Timestamp: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	s.env.ExecuteWorkflow(s.workerCore.ProcessMarketplaceEvent, event)

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}

func (s *ProcessEventWorkflowTestSuite) TestProcessMarketplaceEvent_NotificationFailureIsNotFatal() {
	event := &domain.MarketplaceEvent{
		EventID:   "01JG8XAMPLE1234567890123460",
		EventType: domain.EventRightListed,
		Chain:     domain.ChainHederaTestnet,
		RightID:   "b5f8a1c2-3d4e-5f60-7182-93a4b5c6d7e8",
		Timestamp: time.Date(2026, 3, 1, 13, 0, 0, 0, time.UTC),
	}

	s.env.OnActivity(s.executor.CreateEventNotifications, mock.Anything, mock.Anything).
		Return(0, errors.New("database error"))
	s.env.OnWorkflow(s.workerCore.NotifyWebhookClients, mock.Anything, mock.Anything).Return(nil)

	s.env.ExecuteWorkflow(s.workerCore.ProcessMarketplaceEvent, event)

	// Webhook delivery still happens when notifications fail
	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}
