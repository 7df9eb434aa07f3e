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
	"github.com/dright/marketplace/internal/nft"
	"github.com/dright/marketplace/internal/store"
	"github.com/dright/marketplace/internal/store/schema"
	"github.com/dright/marketplace/internal/workflows"
)

// MintRightWorkflowTestSuite is the test suite for the mint workflow
type MintRightWorkflowTestSuite struct {
	suite.Suite
	testsuite.WorkflowTestSuite

	env        *testsuite.TestWorkflowEnvironment
	ctrl       *gomock.Controller
	executor   *mocks.MockCoreExecutor
	workerCore workflows.WorkerCore
}

// SetupTest is called before each test
func (s *MintRightWorkflowTestSuite) SetupTest() {
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
func (s *MintRightWorkflowTestSuite) TearDownTest() {
	s.env.AssertExpectations(s.T())
	s.ctrl.Finish()
}

// TestMintRightWorkflowTestSuite runs the test suite
func TestMintRightWorkflowTestSuite(t *testing.T) {
	suite.Run(t, new(MintRightWorkflowTestSuite))
}

const mintRightID = "b5f8a1c2-3d4e-5f60-7182-93a4b5c6d7e8"

func draftRight() *schema.Right {
	return &schema.Right{
		ID:        mintRightID,
		Title:     "Sunrise License",
		CreatorID: 11,
		OwnerID:   11,
		Chain:     domain.BlockchainHedera,
		Price:     "100000000",
		Currency:  "HBAR",
		Status:    domain.RightStatusDraft,
	}
}

func mintCreator() *schema.User {
	return &schema.User{
		ID:      11,
		Address: "0.0.1001",
		Chain:   domain.BlockchainHedera,
	}
}

func (s *MintRightWorkflowTestSuite) TestMintRight_Success() {
	right := draftRight()
	creator := mintCreator()
	tokenID := "0.0.5005"
	serial := int64(7)
	ref := domain.NewNFTRef(domain.ChainHederaTestnet, tokenID, "7")

	s.env.OnActivity(s.executor.GetRight, mock.Anything, mintRightID).Return(right, nil)
	s.env.OnActivity(s.executor.GetUser, mock.Anything, right.CreatorID).Return(creator, nil)
	s.env.OnActivity(s.executor.UpdateRightStatus, mock.Anything, mintRightID, domain.RightStatusMinting).Return(nil)
	s.env.OnActivity(s.executor.PinRightMetadata, mock.Anything, mintRightID).
		Return(&workflows.PinnedMetadata{
			CID:  "bafybeigdyrzt5example",
			URI:  "ipfs://bafybeigdyrzt5example",
			Hash: "ab12cd34",
		}, nil)
	s.env.OnActivity(s.executor.MintNFT, mock.Anything, workflows.MintNFTInput{
		RightID:     mintRightID,
		Chain:       domain.BlockchainHedera,
		ToAddress:   creator.Address,
		MetadataCID: "bafybeigdyrzt5example",
	}).Return(&nft.MintResult{
		TxHash:      "0.0.9@1700000000.000000001",
		Ref:         ref,
		TokenID:     &tokenID,
		TokenSerial: &serial,
	}, nil)
	s.env.OnActivity(s.executor.MarkRightMinted, mock.Anything, mock.MatchedBy(func(input store.MarkRightMintedInput) bool {
		return input.RightID == mintRightID &&
			input.NFTRef == ref.String() &&
			input.MetadataURI == "ipfs://bafybeigdyrzt5example" &&
			input.MintTxHash == "0.0.9@1700000000.000000001"
	})).Return(nil)
	s.env.OnActivity(s.executor.GeneratePreview, mock.Anything, mintRightID).
		Return("https://imagedelivery.net/acct/preview/public", nil)

	// Mint and listing events are both published
	s.env.OnActivity(s.executor.PublishEvent, mock.Anything, mock.MatchedBy(func(event *domain.MarketplaceEvent) bool {
		return event.EventType == domain.EventRightMinted && event.RightID == mintRightID
	})).Return(nil)
	s.env.OnActivity(s.executor.PublishEvent, mock.Anything, mock.MatchedBy(func(event *domain.MarketplaceEvent) bool {
		return event.EventType == domain.EventRightListed && event.RightID == mintRightID
	})).Return(nil)

	s.env.ExecuteWorkflow(s.workerCore.MintRight, mintRightID)

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}

func (s *MintRightWorkflowTestSuite) TestMintRight_AlreadyActive() {
	right := draftRight()
	right.Status = domain.RightStatusActive

	s.env.OnActivity(s.executor.GetRight, mock.Anything, mintRightID).Return(right, nil)

	s.env.ExecuteWorkflow(s.workerCore.MintRight, mintRightID)

	// An already minted right is skipped, not an error
	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}

func (s *MintRightWorkflowTestSuite) TestMintRight_PinFails() {
	right := draftRight()
	creator := mintCreator()

	s.env.OnActivity(s.executor.GetRight, mock.Anything, mintRightID).Return(right, nil)
	s.env.OnActivity(s.executor.GetUser, mock.Anything, right.CreatorID).Return(creator, nil)
	s.env.OnActivity(s.executor.UpdateRightStatus, mock.Anything, mintRightID, domain.RightStatusMinting).Return(nil)
	s.env.OnActivity(s.executor.PinRightMetadata, mock.Anything, mintRightID).
		Return(nil, errors.New("ipfs node unreachable"))
	s.env.OnActivity(s.executor.UpdateRightStatus, mock.Anything, mintRightID, domain.RightStatusFailed).Return(nil)

	s.env.ExecuteWorkflow(s.workerCore.MintRight, mintRightID)

	s.True(s.env.IsWorkflowCompleted())
	s.Error(s.env.GetWorkflowError())
}

func (s *MintRightWorkflowTestSuite) TestMintRight_MintFails() {
	right := draftRight()
	creator := mintCreator()

	s.env.OnActivity(s.executor.GetRight, mock.Anything, mintRightID).Return(right, nil)
	s.env.OnActivity(s.executor.GetUser, mock.Anything, right.CreatorID).Return(creator, nil)
	s.env.OnActivity(s.executor.UpdateRightStatus, mock.Anything, mintRightID, domain.RightStatusMinting).Return(nil)
	s.env.OnActivity(s.executor.PinRightMetadata, mock.Anything, mintRightID).
		Return(&workflows.PinnedMetadata{
			CID:  "bafybeigdyrzt5example",
			URI:  "ipfs://bafybeigdyrzt5example",
			Hash: "ab12cd34",
		}, nil)
	s.env.OnActivity(s.executor.MintNFT, mock.Anything, mock.AnythingOfType("workflows.MintNFTInput")).
		Return(nil, errors.New("INSUFFICIENT_PAYER_BALANCE"))
	s.env.OnActivity(s.executor.UpdateRightStatus, mock.Anything, mintRightID, domain.RightStatusFailed).Return(nil)

	s.env.ExecuteWorkflow(s.workerCore.MintRight, mintRightID)

	// The right is marked failed and the workflow surfaces the mint error
	s.True(s.env.IsWorkflowCompleted())
	s.Error(s.env.GetWorkflowError())
}

func (s *MintRightWorkflowTestSuite) TestMintRight_PreviewFailureIsNotFatal() {
	right := draftRight()
	creator := mintCreator()
	tokenID := "0.0.5005"
	serial := int64(7)
	ref := domain.NewNFTRef(domain.ChainHederaTestnet, tokenID, "7")

	s.env.OnActivity(s.executor.GetRight, mock.Anything, mintRightID).Return(right, nil)
	s.env.OnActivity(s.executor.GetUser, mock.Anything, right.CreatorID).Return(creator, nil)
	s.env.OnActivity(s.executor.UpdateRightStatus, mock.Anything, mintRightID, domain.RightStatusMinting).Return(nil)
	s.env.OnActivity(s.executor.PinRightMetadata, mock.Anything, mintRightID).
		Return(&workflows.PinnedMetadata{
			CID:  "bafybeigdyrzt5example",
			URI:  "ipfs://bafybeigdyrzt5example",
			Hash: "ab12cd34",
		}, nil)
	s.env.OnActivity(s.executor.MintNFT, mock.Anything, mock.AnythingOfType("workflows.MintNFTInput")).
		Return(&nft.MintResult{
			TxHash:      "0.0.9@1700000000.000000001",
			Ref:         ref,
			TokenID:     &tokenID,
			TokenSerial: &serial,
		}, nil)
	s.env.OnActivity(s.executor.MarkRightMinted, mock.Anything, mock.AnythingOfType("store.MarkRightMintedInput")).Return(nil)
	s.env.OnActivity(s.executor.GeneratePreview, mock.Anything, mintRightID).
		Return("", errors.New("artwork download failed"))
	s.env.OnActivity(s.executor.PublishEvent, mock.Anything, mock.Anything).Return(nil).Times(2)

	s.env.ExecuteWorkflow(s.workerCore.MintRight, mintRightID)

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}
