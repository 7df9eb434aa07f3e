package workflows_test

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.temporal.io/sdk/testsuite"

	"github.com/dright/marketplace/internal/domain"
	"github.com/dright/marketplace/internal/logger"
	"github.com/dright/marketplace/internal/mocks"
	"github.com/dright/marketplace/internal/workflows"
)

// TransferRightWorkflowTestSuite is the test suite for the transfer workflow
type TransferRightWorkflowTestSuite struct {
	suite.Suite
	testsuite.WorkflowTestSuite

	env        *testsuite.TestWorkflowEnvironment
	ctrl       *gomock.Controller
	executor   *mocks.MockCoreExecutor
	workerCore workflows.WorkerCore
}

// SetupTest is called before each test
func (s *TransferRightWorkflowTestSuite) SetupTest() {
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
func (s *TransferRightWorkflowTestSuite) TearDownTest() {
	s.env.AssertExpectations(s.T())
	s.ctrl.Finish()
}

// TestTransferRightWorkflowTestSuite runs the test suite
func TestTransferRightWorkflowTestSuite(t *testing.T) {
	suite.Run(t, new(TransferRightWorkflowTestSuite))
}

func transferInput() workflows.TransferRightInput {
	return workflows.TransferRightInput{
		RightID:     "b5f8a1c2-3d4e-5f60-7182-93a4b5c6d7e8",
		Ref:         domain.NewNFTRef(domain.ChainHederaTestnet, "0.0.5005", "7"),
		FromAddress: "0.0.1001",
		ToAddress:   "0.0.2002",
		PurchaseRef: "01JG8XPURCHASE123456789012",
		RoyaltyRef:  "01JG8XROYALTY1234567890123",
		Price:       "250000000",
	}
}

func (s *TransferRightWorkflowTestSuite) TestTransferRight_Success() {
	input := transferInput()
	txHash := "0.0.9@1700000000.000000002"

	s.env.OnActivity(s.executor.TransferNFT, mock.Anything, workflows.TransferNFTInput{
		Ref:  input.Ref,
		From: input.FromAddress,
		To:   input.ToAddress,
	}).Return(txHash, nil)

	// Both ledger entries are confirmed with the transfer hash
	s.env.OnActivity(s.executor.UpdateTransactionStatus, mock.Anything, mock.MatchedBy(func(u workflows.UpdateTransactionStatusInput) bool {
		return u.Reference == input.PurchaseRef && u.Status == domain.TxStatusConfirmed && u.TxHash != nil && *u.TxHash == txHash
	})).Return(nil)
	s.env.OnActivity(s.executor.UpdateTransactionStatus, mock.Anything, mock.MatchedBy(func(u workflows.UpdateTransactionStatusInput) bool {
		return u.Reference == input.RoyaltyRef && u.Status == domain.TxStatusConfirmed
	})).Return(nil)

	s.env.OnActivity(s.executor.PublishEvent, mock.Anything, mock.MatchedBy(func(event *domain.MarketplaceEvent) bool {
		return event.EventType == domain.EventRightSold &&
			event.RightID == input.RightID &&
			event.Actor == input.FromAddress &&
			event.Counterparty == input.ToAddress &&
			event.TxHash == txHash
	})).Return(nil)

	s.env.ExecuteWorkflow(s.workerCore.TransferRight, input)

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}

func (s *TransferRightWorkflowTestSuite) TestTransferRight_SettlementPublishesAuctionSettled() {
	input := transferInput()
	input.RoyaltyRef = ""
	input.Settlement = true
	txHash := "0.0.9@1700000000.000000002"

	s.env.OnActivity(s.executor.TransferNFT, mock.Anything, mock.AnythingOfType("workflows.TransferNFTInput")).
		Return(txHash, nil)
	s.env.OnActivity(s.executor.UpdateTransactionStatus, mock.Anything, mock.MatchedBy(func(u workflows.UpdateTransactionStatusInput) bool {
		return u.Reference == input.PurchaseRef && u.Status == domain.TxStatusConfirmed
	})).Return(nil)

	s.env.OnActivity(s.executor.PublishEvent, mock.Anything, mock.MatchedBy(func(event *domain.MarketplaceEvent) bool {
		return event.EventType == domain.EventRightSold
	})).Return(nil)
	s.env.OnActivity(s.executor.PublishEvent, mock.Anything, mock.MatchedBy(func(event *domain.MarketplaceEvent) bool {
		return event.EventType == domain.EventAuctionSettled
	})).Return(nil)

	s.env.ExecuteWorkflow(s.workerCore.TransferRight, input)

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}

func (s *TransferRightWorkflowTestSuite) TestTransferRight_ChainTransferFails() {
	input := transferInput()

	s.env.OnActivity(s.executor.TransferNFT, mock.Anything, mock.AnythingOfType("workflows.TransferNFTInput")).
		Return("", errors.New("TOKEN_NOT_ASSOCIATED_TO_ACCOUNT"))

	// Both pending entries are marked failed
	s.env.OnActivity(s.executor.UpdateTransactionStatus, mock.Anything, mock.MatchedBy(func(u workflows.UpdateTransactionStatusInput) bool {
		return u.Reference == input.PurchaseRef && u.Status == domain.TxStatusFailed
	})).Return(nil)
	s.env.OnActivity(s.executor.UpdateTransactionStatus, mock.Anything, mock.MatchedBy(func(u workflows.UpdateTransactionStatusInput) bool {
		return u.Reference == input.RoyaltyRef && u.Status == domain.TxStatusFailed
	})).Return(nil)

	s.env.ExecuteWorkflow(s.workerCore.TransferRight, input)

	s.True(s.env.IsWorkflowCompleted())
	s.Error(s.env.GetWorkflowError())
}
