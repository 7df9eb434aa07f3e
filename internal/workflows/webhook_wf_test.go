package workflows_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.temporal.io/sdk/testsuite"
	"gorm.io/datatypes"

	"github.com/dright/marketplace/internal/domain"
	"github.com/dright/marketplace/internal/logger"
	"github.com/dright/marketplace/internal/mocks"
	"github.com/dright/marketplace/internal/store/schema"
	"github.com/dright/marketplace/internal/webhook"
	"github.com/dright/marketplace/internal/workflows"
)

// WebhookWorkflowTestSuite is the test suite for webhook workflow tests
type WebhookWorkflowTestSuite struct {
	suite.Suite
	testsuite.WorkflowTestSuite

	env        *testsuite.TestWorkflowEnvironment
	ctrl       *gomock.Controller
	executor   *mocks.MockCoreExecutor
	workerCore workflows.WorkerCore
}

// SetupTest is called before each test
func (s *WebhookWorkflowTestSuite) SetupTest() {
	// Initialize logger for tests
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
func (s *WebhookWorkflowTestSuite) TearDownTest() {
	s.env.AssertExpectations(s.T())
	s.ctrl.Finish()
}

// TestWebhookWorkflowTestSuite runs the test suite
func TestWebhookWorkflowTestSuite(t *testing.T) {
	suite.Run(t, new(WebhookWorkflowTestSuite))
}

func saleEvent() *domain.MarketplaceEvent {
	return &domain.MarketplaceEvent{
		EventID:      "01JG8XAMPLE1234567890123456",
		EventType:    domain.EventRightSold,
		Chain:        domain.ChainHederaTestnet,
		RightID:      "b5f8a1c2-3d4e-5f60-7182-93a4b5c6d7e8",
		Actor:        "0.0.1001",
		Counterparty: "0.0.2002",
		Amount:       "100000000",
		Timestamp:    time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

// ====================================================================================
// NotifyWebhookClients Tests
// ====================================================================================

func (s *WebhookWorkflowTestSuite) TestNotifyWebhookClients_NoClients() {
	event := saleEvent()

	// Mock GetActiveWebhookClientsByEventType activity - no clients
	s.env.OnActivity(s.executor.GetActiveWebhookClientsByEventType, mock.Anything, string(event.EventType)).
		Return([]*schema.WebhookClient{}, nil)

	// Execute the workflow
	s.env.ExecuteWorkflow(s.workerCore.NotifyWebhookClients, event)

	// Verify workflow completed successfully (even with no clients)
	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}

func (s *WebhookWorkflowTestSuite) TestNotifyWebhookClients_GetClientsError() {
	event := saleEvent()

	// Mock GetActiveWebhookClientsByEventType activity - database error
	s.env.OnActivity(s.executor.GetActiveWebhookClientsByEventType, mock.Anything, string(event.EventType)).
		Return(nil, errors.New("database error"))

	// Execute the workflow
	s.env.ExecuteWorkflow(s.workerCore.NotifyWebhookClients, event)

	// Verify workflow failed
	s.True(s.env.IsWorkflowCompleted())
	s.Error(s.env.GetWorkflowError())
}

func (s *WebhookWorkflowTestSuite) TestNotifyWebhookClients_SingleClient() {
	event := saleEvent()

	eventFilters, _ := json.Marshal([]string{"*"})
	clients := []*schema.WebhookClient{
		{
			ClientID:         "client-123",
			WebhookURL:       "https://webhook.example.com/endpoint",
			WebhookSecret:    "secret123",
			EventFilters:     datatypes.JSON(eventFilters),
			IsActive:         true,
			RetryMaxAttempts: 5,
		},
	}

	// Mock GetActiveWebhookClientsByEventType activity
	s.env.OnActivity(s.executor.GetActiveWebhookClientsByEventType, mock.Anything, string(event.EventType)).
		Return(clients, nil)

	// Mock DeliverWebhook child workflow
	s.env.OnWorkflow(s.workerCore.DeliverWebhook, mock.Anything, mock.MatchedBy(func(input workflows.DeliverWebhookInput) bool {
		return input.ClientID == "client-123" && input.Event.EventID == event.EventID
	})).Return(nil)

	// Execute the workflow
	s.env.ExecuteWorkflow(s.workerCore.NotifyWebhookClients, event)

	// Verify workflow completed successfully
	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}

func (s *WebhookWorkflowTestSuite) TestNotifyWebhookClients_MultipleClients() {
	event := saleEvent()

	eventFilters1, _ := json.Marshal([]string{"*"})
	eventFilters2, _ := json.Marshal([]string{"right.sold"})
	clients := []*schema.WebhookClient{
		{
			ClientID:         "client-123",
			WebhookURL:       "https://webhook1.example.com/endpoint",
			WebhookSecret:    "secret123",
			EventFilters:     datatypes.JSON(eventFilters1),
			IsActive:         true,
			RetryMaxAttempts: 5,
		},
		{
			ClientID:         "client-456",
			WebhookURL:       "https://webhook2.example.com/endpoint",
			WebhookSecret:    "secret456",
			EventFilters:     datatypes.JSON(eventFilters2),
			IsActive:         true,
			RetryMaxAttempts: 3,
		},
	}

	// Mock GetActiveWebhookClientsByEventType activity
	s.env.OnActivity(s.executor.GetActiveWebhookClientsByEventType, mock.Anything, string(event.EventType)).
		Return(clients, nil)

	// Mock DeliverWebhook child workflows for both clients
	s.env.OnWorkflow(s.workerCore.DeliverWebhook, mock.Anything, mock.MatchedBy(func(input workflows.DeliverWebhookInput) bool {
		return input.ClientID == "client-123"
	})).Return(nil)
	s.env.OnWorkflow(s.workerCore.DeliverWebhook, mock.Anything, mock.MatchedBy(func(input workflows.DeliverWebhookInput) bool {
		return input.ClientID == "client-456"
	})).Return(nil)

	// Execute the workflow
	s.env.ExecuteWorkflow(s.workerCore.NotifyWebhookClients, event)

	// Verify workflow completed successfully
	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}

// ====================================================================================
// DeliverWebhook Tests
// ====================================================================================

func (s *WebhookWorkflowTestSuite) TestDeliverWebhook_Success() {
	event := saleEvent()
	input := workflows.DeliverWebhookInput{ClientID: "client-123", Event: *event}

	eventFilters, _ := json.Marshal([]string{"*"})
	client := &schema.WebhookClient{
		ClientID:         input.ClientID,
		WebhookURL:       "https://webhook.example.com/endpoint",
		WebhookSecret:    "secret123",
		EventFilters:     datatypes.JSON(eventFilters),
		IsActive:         true,
		RetryMaxAttempts: 5,
	}

	// Mock GetWebhookClientByID activity
	s.env.OnActivity(s.executor.GetWebhookClientByID, mock.Anything, input.ClientID).
		Return(client, nil)

	// Mock CreateWebhookDeliveryRecord activity
	s.env.OnActivity(s.executor.CreateWebhookDeliveryRecord, mock.Anything, mock.AnythingOfType("*schema.WebhookDelivery"), mock.Anything).
		Return(uint64(1), nil)

	// Mock DeliverWebhookHTTP activity - successful delivery
	s.env.OnActivity(s.executor.DeliverWebhookHTTP, mock.Anything, client, mock.Anything, uint64(1)).
		Return(webhook.DeliveryResult{Success: true, StatusCode: 200, Body: `{"status":"received"}`}, nil)

	// Execute the workflow
	s.env.ExecuteWorkflow(s.workerCore.DeliverWebhook, input)

	// Verify workflow completed successfully
	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}

func (s *WebhookWorkflowTestSuite) TestDeliverWebhook_ClientNotFound() {
	event := saleEvent()
	input := workflows.DeliverWebhookInput{ClientID: "non-existent-client", Event: *event}

	// Mock GetWebhookClientByID activity - client not found
	s.env.OnActivity(s.executor.GetWebhookClientByID, mock.Anything, input.ClientID).
		Return(nil, nil)

	// Execute the workflow
	s.env.ExecuteWorkflow(s.workerCore.DeliverWebhook, input)

	// Verify workflow completed successfully (skipped delivery)
	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}

func (s *WebhookWorkflowTestSuite) TestDeliverWebhook_InactiveClient() {
	event := saleEvent()
	input := workflows.DeliverWebhookInput{ClientID: "client-123", Event: *event}

	eventFilters, _ := json.Marshal([]string{"*"})
	client := &schema.WebhookClient{
		ClientID:         input.ClientID,
		WebhookURL:       "https://webhook.example.com/endpoint",
		WebhookSecret:    "secret123",
		EventFilters:     datatypes.JSON(eventFilters),
		IsActive:         false,
		RetryMaxAttempts: 5,
	}

	// Mock GetWebhookClientByID activity - inactive client
	s.env.OnActivity(s.executor.GetWebhookClientByID, mock.Anything, input.ClientID).
		Return(client, nil)

	// Execute the workflow
	s.env.ExecuteWorkflow(s.workerCore.DeliverWebhook, input)

	// Verify workflow completed successfully (skipped delivery)
	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}

func (s *WebhookWorkflowTestSuite) TestDeliverWebhook_DeliveryFails() {
	event := saleEvent()
	input := workflows.DeliverWebhookInput{ClientID: "client-123", Event: *event}

	eventFilters, _ := json.Marshal([]string{"*"})
	client := &schema.WebhookClient{
		ClientID:         input.ClientID,
		WebhookURL:       "https://webhook.example.com/endpoint",
		WebhookSecret:    "secret123",
		EventFilters:     datatypes.JSON(eventFilters),
		IsActive:         true,
		RetryMaxAttempts: 1,
	}

	// Mock GetWebhookClientByID activity
	s.env.OnActivity(s.executor.GetWebhookClientByID, mock.Anything, input.ClientID).
		Return(client, nil)

	// Mock CreateWebhookDeliveryRecord activity
	s.env.OnActivity(s.executor.CreateWebhookDeliveryRecord, mock.Anything, mock.AnythingOfType("*schema.WebhookDelivery"), mock.Anything).
		Return(uint64(7), nil)

	// Mock DeliverWebhookHTTP activity - endpoint rejects the payload
	s.env.OnActivity(s.executor.DeliverWebhookHTTP, mock.Anything, client, mock.Anything, uint64(7)).
		Return(webhook.DeliveryResult{Success: false, StatusCode: 500}, errors.New("webhook endpoint returned status 500"))

	// Execute the workflow
	s.env.ExecuteWorkflow(s.workerCore.DeliverWebhook, input)

	// Verify workflow failed after exhausting retries
	s.True(s.env.IsWorkflowCompleted())
	s.Error(s.env.GetWorkflowError())
}
