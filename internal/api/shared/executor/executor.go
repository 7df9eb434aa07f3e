package executor

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/oklog/ulid/v2"
	"go.temporal.io/sdk/client"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/dright/marketplace/internal/adapter"
	"github.com/dright/marketplace/internal/api/shared/constants"
	"github.com/dright/marketplace/internal/api/shared/dto"
	apierrors "github.com/dright/marketplace/internal/api/shared/errors"
	"github.com/dright/marketplace/internal/api/shared/types"
	"github.com/dright/marketplace/internal/auth"
	"github.com/dright/marketplace/internal/domain"
	"github.com/dright/marketplace/internal/logger"
	"github.com/dright/marketplace/internal/messaging"
	"github.com/dright/marketplace/internal/metadata"
	"github.com/dright/marketplace/internal/nft"
	"github.com/dright/marketplace/internal/pricing"
	"github.com/dright/marketplace/internal/providers/rates"
	"github.com/dright/marketplace/internal/providers/temporal"
	"github.com/dright/marketplace/internal/registry"
	"github.com/dright/marketplace/internal/store"
	"github.com/dright/marketplace/internal/store/schema"
	"github.com/dright/marketplace/internal/vault"
	"github.com/dright/marketplace/internal/wallet"
	"github.com/dright/marketplace/internal/workflows"
)

// SecureFileContent carries a decrypted vault payload back to the handler
type SecureFileContent struct {
	Filename string
	MimeType string
	Data     []byte
}

// Config holds the executor's behavioral knobs
type Config struct {
	// MarketTaskQueue is the Temporal task queue workflows are started on
	MarketTaskQueue string
	// HederaChainID is the CAIP-2 chain ID for the Hedera network in use
	HederaChainID domain.Chain
	// EthereumChainID is the CAIP-2 chain ID for the Ethereum network in use
	EthereumChainID domain.Chain
	// MinBidIncrementBps is the required step over the highest bid
	MinBidIncrementBps int64
	// Debug relaxes webhook URL validation to plain HTTP
	Debug bool
}

// Executor is the interface for the API executor
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/mock_api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// RequestNonce mints a one-time login challenge for a wallet
	RequestNonce(ctx context.Context, blockchain domain.Blockchain, address string) (*dto.NonceResponse, error)

	// WalletLogin verifies a signed challenge and issues a session token
	WalletLogin(ctx context.Context, req *dto.WalletLoginRequest) (*dto.AuthResponse, error)

	// DetectWalletProviders probes every registered wallet provider
	DetectWalletProviders(ctx context.Context) *dto.WalletProvidersResponse

	// CreateRight creates a draft right and starts its mint workflow
	CreateRight(ctx context.Context, creatorID int64, req *dto.CreateRightRequest) (*dto.MintStartedResponse, error)

	// GetRight retrieves a right by UUID or slug, optionally counting the view
	GetRight(ctx context.Context, idOrSlug string, countView bool) (*dto.RightResponse, error)

	// GetRights retrieves rights matching the browse filter
	GetRights(ctx context.Context, filter store.RightQueryFilter) (*dto.RightListResponse, error)

	// UpdateRight updates the owner-mutable fields of a right
	UpdateRight(ctx context.Context, callerID int64, rightID string, req *dto.UpdateRightRequest) (*dto.RightResponse, error)

	// DeleteDraftRight deletes a right while it is still a draft
	DeleteDraftRight(ctx context.Context, callerID int64, rightID string) error

	// GetBreakdown computes the purchase price breakdown for a right
	GetBreakdown(ctx context.Context, rightID string) (*dto.BreakdownResponse, error)

	// Purchase executes a fixed-price purchase and starts the transfer workflow
	Purchase(ctx context.Context, buyerID int64, rightID string) (*dto.PurchaseResponse, error)

	// PlaceBid places a bid on an open auction
	PlaceBid(ctx context.Context, bidderID int64, rightID string, req *dto.PlaceBidRequest) (*dto.BidResponse, error)

	// GetBids retrieves an auction's bids, newest first
	GetBids(ctx context.Context, rightID string, limit *int, offset *uint64) (*dto.BidListResponse, error)

	// Stake stakes on a dividends-enabled right
	Stake(ctx context.Context, userID int64, rightID string, req *dto.StakeRequest) (*dto.StakeResponse, error)

	// Unstake releases the caller's active stake on a right
	Unstake(ctx context.Context, userID int64, rightID string) (*dto.StakeResponse, error)

	// GetDistributions retrieves a right's revenue distributions
	GetDistributions(ctx context.Context, rightID string, limit *int, offset *uint64) (*dto.DistributionListResponse, error)

	// GetRightTransactions retrieves a right's ledger, newest first
	GetRightTransactions(ctx context.Context, rightID string, limit *int, offset *uint64) (*dto.TransactionListResponse, error)

	// ToggleFavorite flips the caller's favorite on a right
	ToggleFavorite(ctx context.Context, userID int64, rightID string) (*dto.FavoriteToggleResponse, error)

	// GetFavorites retrieves the rights the caller favorited
	GetFavorites(ctx context.Context, userID int64, limit *int, offset *uint64) (*dto.RightListResponse, error)

	// GetUser retrieves a user profile by wallet address
	GetUser(ctx context.Context, address string) (*dto.UserResponse, error)

	// UpdateProfile updates the caller's profile fields
	UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)

	// GetUserRights retrieves the rights a user created or owns
	GetUserRights(ctx context.Context, address string, role types.Role, limit *int, offset *uint64) (*dto.RightListResponse, error)

	// ToggleFollow flips the caller's follow on the user behind an address
	ToggleFollow(ctx context.Context, followerID int64, address string) (*dto.FollowToggleResponse, error)

	// GetFollowers retrieves the users following an address
	GetFollowers(ctx context.Context, address string, limit *int, offset *uint64) (*dto.UserListResponse, error)

	// GetFollowing retrieves the users an address follows
	GetFollowing(ctx context.Context, address string, limit *int, offset *uint64) (*dto.UserListResponse, error)

	// GetNotifications retrieves the caller's notifications, newest first
	GetNotifications(ctx context.Context, userID int64, unreadOnly bool, limit *int, offset *uint64) (*dto.NotificationListResponse, error)

	// MarkNotificationsRead marks the given notifications read; empty marks all
	MarkNotificationsRead(ctx context.Context, userID int64, req *dto.MarkNotificationsReadRequest) (*dto.MarkReadResponse, error)

	// UploadSecureFile encrypts an upload into the vault
	UploadSecureFile(ctx context.Context, ownerID int64, upload vault.Upload) (*dto.SecureFileResponse, error)

	// ListSecureFiles retrieves the caller's vault files, newest first
	ListSecureFiles(ctx context.Context, ownerID int64, limit *int, offset *uint64) (*dto.SecureFileListResponse, error)

	// DownloadSecureFile decrypts a vault file for its owner or an admin
	DownloadSecureFile(ctx context.Context, callerID int64, isAdmin bool, fileID int64) (*SecureFileContent, error)

	// GetCategories retrieves the active browse categories
	GetCategories(ctx context.Context) (*dto.CategoryListResponse, error)

	// GetChainStatus reports a chain service's network status
	GetChainStatus(ctx context.Context, blockchain domain.Blockchain) (*dto.ChainStatusResponse, error)

	// GetOverview aggregates the admin dashboard numbers
	GetOverview(ctx context.Context) (*dto.OverviewResponse, error)

	// GetTopCreators reports creators by confirmed sale volume
	GetTopCreators(ctx context.Context, limit *int) (*dto.TopCreatorsResponse, error)

	// GetVerificationQueue retrieves rights awaiting review, oldest first
	GetVerificationQueue(ctx context.Context, limit *int, offset *uint64) (*dto.RightListResponse, error)

	// VerifyRight records an admin verification decision
	VerifyRight(ctx context.Context, reviewer string, rightID string, req *dto.VerifyRightRequest) (*dto.RightResponse, error)

	// BanUser bans or unbans the user behind an address
	BanUser(ctx context.Context, address string, req *dto.BanUserRequest) (*dto.UserResponse, error)

	// CreateWebhookClient registers a webhook consumer and returns its secret once
	CreateWebhookClient(ctx context.Context, req *dto.CreateWebhookClientRequest) (*dto.WebhookClientResponse, error)

	// ListWebhookClients retrieves all registered webhook clients
	ListWebhookClients(ctx context.Context) (*dto.WebhookClientListResponse, error)

	// DeleteWebhookClient removes a webhook client
	DeleteWebhookClient(ctx context.Context, clientID string) error
}

type executor struct {
	store        store.Store
	orchestrator temporal.TemporalOrchestrator
	publisher    messaging.Publisher
	wallets      *wallet.Registry
	nonces       *auth.NonceService
	jwt          *auth.JWTService
	chains       *nft.Router
	pricer       *pricing.Calculator
	rates        rates.Client
	vault        vault.Service
	moderation   registry.Moderation
	resolver     metadata.Resolver
	enhancer     metadata.Enhancer
	clock        adapter.Clock
	config       Config
}

func NewExecutor(
	s store.Store,
	orchestrator temporal.TemporalOrchestrator,
	publisher messaging.Publisher,
	wallets *wallet.Registry,
	nonces *auth.NonceService,
	jwtService *auth.JWTService,
	chains *nft.Router,
	pricer *pricing.Calculator,
	ratesClient rates.Client,
	vaultService vault.Service,
	moderation registry.Moderation,
	resolver metadata.Resolver,
	enhancer metadata.Enhancer,
	clock adapter.Clock,
	config Config,
) Executor {
	return &executor{
		store:        s,
		orchestrator: orchestrator,
		publisher:    publisher,
		wallets:      wallets,
		nonces:       nonces,
		jwt:          jwtService,
		chains:       chains,
		pricer:       pricer,
		rates:        ratesClient,
		vault:        vaultService,
		moderation:   moderation,
		resolver:     resolver,
		enhancer:     enhancer,
		clock:        clock,
		config:       config,
	}
}

// chainID maps a blockchain to the configured CAIP-2 network identifier
func (e *executor) chainID(b domain.Blockchain) domain.Chain {
	if b == domain.BlockchainHedera {
		return e.config.HederaChainID
	}
	return e.config.EthereumChainID
}

// publish fires an event at the bus; publish failures never fail the request
func (e *executor) publish(ctx context.Context, event *domain.MarketplaceEvent) {
	if e.publisher == nil {
		return
	}
	if err := e.publisher.PublishEvent(ctx, event); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to publish event: %w", err),
			zap.String("event_type", string(event.EventType)),
			zap.String("right_id", event.RightID))
	}
}

// blockchainOfAddress infers the blockchain from an address's shape
func blockchainOfAddress(address string) (domain.Blockchain, error) {
	switch {
	case domain.IsValidAddress(address, domain.BlockchainEthereum):
		return domain.BlockchainEthereum, nil
	case domain.IsValidAddress(address, domain.BlockchainHedera):
		return domain.BlockchainHedera, nil
	default:
		return "", apierrors.NewValidationError(fmt.Sprintf("invalid address: %s", address))
	}
}

func (e *executor) userByAddress(ctx context.Context, address string) (*schema.User, error) {
	blockchain, err := blockchainOfAddress(address)
	if err != nil {
		return nil, err
	}
	user, err := e.store.GetUserByAddress(ctx, blockchain, address)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get user: %v", err))
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func pageParams(limit *int, offset *uint64, defaultLimit uint8) (int, uint64) {
	l := int(defaultLimit)
	if limit != nil && *limit > 0 {
		l = *limit
	}
	if l > int(constants.MAX_PAGE_SIZE) {
		l = int(constants.MAX_PAGE_SIZE)
	}
	var o uint64
	if offset != nil {
		o = *offset
	}
	return l, o
}

func nextOffset(offset uint64, fetched int, total uint64) *uint64 {
	if offset+uint64(fetched) < total { //nolint:gosec,G115
		v := offset + uint64(fetched)
		return &v
	}
	return nil
}

// --- Auth ---

func (e *executor) RequestNonce(ctx context.Context, blockchain domain.Blockchain, address string) (*dto.NonceResponse, error) {
	if e.moderation != nil && e.moderation.IsAddressBlocked(blockchain, address) {
		return nil, domain.ErrAddressBanned
	}

	challenge, err := e.nonces.Issue(ctx, blockchain, address)
	if err != nil {
		return nil, apierrors.NewServiceError(fmt.Sprintf("Failed to issue nonce: %v", err))
	}

	return &dto.NonceResponse{
		Nonce:     challenge.Nonce,
		Message:   challenge.Message,
		ExpiresAt: challenge.ExpiresAt,
	}, nil
}

func (e *executor) WalletLogin(ctx context.Context, req *dto.WalletLoginRequest) (*dto.AuthResponse, error) {
	message, err := e.nonces.Consume(ctx, req.Blockchain, req.Address, req.Nonce)
	if err != nil {
		return nil, err
	}

	normalized, err := e.wallets.VerifyConnection(ctx, req.Wallet, req.Address, message, req.Signature, req.PublicKey)
	if err != nil {
		return nil, err
	}

	if e.moderation != nil && e.moderation.IsAddressBlocked(req.Blockchain, normalized) {
		return nil, domain.ErrAddressBanned
	}

	now := e.clock.Now().UTC()
	user, err := e.store.UpsertUserByAddress(ctx, store.UpsertUserInput{
		Address:     normalized,
		Chain:       req.Blockchain,
		LastLoginAt: &now,
	})
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to upsert user: %v", err))
	}
	if user.IsBanned {
		return nil, domain.ErrAddressBanned
	}

	token, err := e.jwt.Issue(strconv.FormatInt(user.ID, 10), user.Address)
	if err != nil {
		return nil, apierrors.NewInternalError(fmt.Sprintf("Failed to issue token: %v", err))
	}

	return &dto.AuthResponse{
		Token:     token.Value,
		ExpiresAt: token.ExpiresAt,
		User:      dto.MapUserToDTO(user),
	}, nil
}

func (e *executor) DetectWalletProviders(ctx context.Context) *dto.WalletProvidersResponse {
	return &dto.WalletProvidersResponse{Providers: e.wallets.Detect(ctx)}
}

// --- Rights ---

func (e *executor) CreateRight(ctx context.Context, creatorID int64, req *dto.CreateRightRequest) (*dto.MintStartedResponse, error) {
	creator, err := e.store.GetUserByID(ctx, creatorID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get user: %v", err))
	}
	if creator == nil {
		return nil, domain.ErrUserNotFound
	}
	if creator.IsBanned {
		return nil, domain.ErrAddressBanned
	}
	if creator.Chain != req.Chain {
		return nil, apierrors.NewValidationError(fmt.Sprintf("wallet is on %s, cannot mint on %s", creator.Chain, req.Chain))
	}

	var categoryID *int64
	if req.CategorySlug != nil {
		category, err := e.store.GetCategoryBySlug(ctx, *req.CategorySlug)
		if err != nil {
			return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get category: %v", err))
		}
		if category == nil {
			return nil, apierrors.NewValidationError(fmt.Sprintf("unknown category: %s", *req.CategorySlug))
		}
		categoryID = &category.ID
	}

	rightID := uuid.NewString()
	// Slug collisions resolve through the ULID suffix
	rightSlug := fmt.Sprintf("%s-%s", slug.Make(req.Title), shortSuffix(ulid.Make().String()))

	right, err := e.store.CreateRight(ctx, store.CreateRightInput{
		ID:            rightID,
		Slug:          rightSlug,
		Title:         req.Title,
		Description:   req.Description,
		RightType:     req.RightType,
		CategoryID:    categoryID,
		CreatorID:     creator.ID,
		Chain:         req.Chain,
		Price:         req.Price,
		Currency:      domain.CurrencySymbol(req.Chain),
		ListingType:   req.ListingType,
		AuctionEnd:    req.AuctionEnd,
		PaysDividends: req.PaysDividends,
		RoyaltyBps:    req.RoyaltyBps,
		LegalFileID:   req.LegalFileID,
		ImageURL:      req.ImageURL,
	})
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to create right: %v", err))
	}

	if err := e.store.UpdateRightStatus(ctx, right.ID, domain.RightStatusMinting); err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to transition right: %v", err))
	}
	right.Status = domain.RightStatusMinting

	w := workflows.NewWorkerCore(nil, workflows.WorkerCoreConfig{})
	options := client.StartWorkflowOptions{
		ID:                       fmt.Sprintf("mint-right-%s", right.ID),
		TaskQueue:                e.config.MarketTaskQueue,
		WorkflowExecutionTimeout: 30 * time.Minute,
	}
	wfRun, err := e.orchestrator.ExecuteWorkflow(ctx, options, w.MintRight, right.ID)
	if err != nil {
		// The draft survives; marking it failed lets the creator retry
		if stErr := e.store.UpdateRightStatus(ctx, right.ID, domain.RightStatusFailed); stErr != nil {
			logger.ErrorCtx(ctx, fmt.Errorf("failed to mark right failed: %w", stErr), zap.String("right_id", right.ID))
		}
		return nil, apierrors.NewServiceError(fmt.Sprintf("Failed to start mint workflow: %v", err))
	}

	e.publish(ctx, &domain.MarketplaceEvent{
		EventType: domain.EventRightCreated,
		Chain:     e.chainID(right.Chain),
		RightID:   right.ID,
		Actor:     creator.Address,
		Timestamp: e.clock.Now().UTC(),
	})

	return &dto.MintStartedResponse{
		Right:      dto.MapRightToDTO(right),
		WorkflowID: wfRun.GetID(),
		RunID:      wfRun.GetRunID(),
	}, nil
}

func (e *executor) GetRight(ctx context.Context, idOrSlug string, countView bool) (*dto.RightResponse, error) {
	right, err := e.lookupRight(ctx, idOrSlug, countView)
	if err != nil {
		return nil, err
	}

	resp := dto.MapRightToDTO(right)

	// A broken gateway must not take the detail page down with it
	if e.enhancer != nil {
		display, err := e.enhancer.Enhance(ctx, right)
		if err != nil {
			logger.WarnCtx(ctx, "Failed to resolve display metadata",
				zap.String("right_id", right.ID),
				zap.Error(err))
		} else if display != nil {
			resp.ImageURL = display.ImageURL
			resp.ImageFallbacks = display.ImageFallbacks
			resp.MimeType = display.MimeType
		}
	}

	return resp, nil
}

func (e *executor) lookupRight(ctx context.Context, idOrSlug string, countView bool) (*schema.Right, error) {
	var right *schema.Right
	var err error
	if isRightID(idOrSlug) {
		right, err = e.store.GetRightByID(ctx, idOrSlug, countView)
	} else {
		right, err = e.store.GetRightBySlug(ctx, idOrSlug)
	}
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get right: %v", err))
	}
	if right == nil {
		return nil, domain.ErrRightNotFound
	}
	return right, nil
}

func (e *executor) GetRights(ctx context.Context, filter store.RightQueryFilter) (*dto.RightListResponse, error) {
	if filter.Limit <= 0 {
		filter.Limit = int(constants.DEFAULT_RIGHTS_LIMIT)
	}
	if filter.Limit > int(constants.MAX_PAGE_SIZE) {
		filter.Limit = int(constants.MAX_PAGE_SIZE)
	}

	rights, total, err := e.store.GetRightsByFilter(ctx, filter)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get rights: %v", err))
	}

	return dto.MapRightsToDTO(rights, nextOffset(filter.Offset, len(rights), total), total), nil
}

func (e *executor) UpdateRight(ctx context.Context, callerID int64, rightID string, req *dto.UpdateRightRequest) (*dto.RightResponse, error) {
	right, err := e.lookupRight(ctx, rightID, false)
	if err != nil {
		return nil, err
	}
	if right.OwnerID != callerID {
		return nil, domain.ErrNotOwner
	}

	var categoryID *int64
	if req.CategorySlug != nil {
		category, err := e.store.GetCategoryBySlug(ctx, *req.CategorySlug)
		if err != nil {
			return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get category: %v", err))
		}
		if category == nil {
			return nil, apierrors.NewValidationError(fmt.Sprintf("unknown category: %s", *req.CategorySlug))
		}
		categoryID = &category.ID
	}

	updated, err := e.store.UpdateRight(ctx, right.ID, store.UpdateRightInput{
		Title:       req.Title,
		Description: req.Description,
		CategoryID:  categoryID,
		Price:       req.Price,
		ListingType: req.ListingType,
		AuctionEnd:  req.AuctionEnd,
		IsListed:    req.IsListed,
	})
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to update right: %v", err))
	}

	if req.IsListed != nil && *req.IsListed {
		e.publish(ctx, &domain.MarketplaceEvent{
			EventType: domain.EventRightListed,
			Chain:     e.chainID(updated.Chain),
			RightID:   updated.ID,
			Amount:    domain.Amount(updated.Price),
			Timestamp: e.clock.Now().UTC(),
		})
	}

	return dto.MapRightToDTO(updated), nil
}

func (e *executor) DeleteDraftRight(ctx context.Context, callerID int64, rightID string) error {
	return e.store.DeleteDraftRight(ctx, rightID, callerID)
}

// --- Trading ---

func (e *executor) GetBreakdown(ctx context.Context, rightID string) (*dto.BreakdownResponse, error) {
	right, err := e.lookupRight(ctx, rightID, false)
	if err != nil {
		return nil, err
	}

	breakdown, err := e.pricer.Breakdown(
		domain.Amount(right.Price), right.Chain, int64(right.RoyaltyBps), right.OwnerID != right.CreatorID)
	if err != nil {
		return nil, apierrors.NewInternalError(fmt.Sprintf("Failed to compute breakdown: %v", err))
	}

	resp := &dto.BreakdownResponse{RightID: right.ID, Breakdown: breakdown}

	// Display-only estimate; a rates outage never fails the breakdown
	if e.rates != nil {
		usd, err := e.rates.EstimateUSD(ctx, right.Chain.Blockchain(), domain.Amount(right.Price))
		if err != nil {
			logger.WarnCtx(ctx, "Failed to estimate USD price",
				zap.String("right_id", right.ID), zap.Error(err))
		} else {
			resp.UsdEstimate = usd
		}
	}

	return resp, nil
}

func (e *executor) Purchase(ctx context.Context, buyerID int64, rightID string) (*dto.PurchaseResponse, error) {
	right, err := e.lookupRight(ctx, rightID, false)
	if err != nil {
		return nil, err
	}

	if right.Status != domain.RightStatusActive || !right.IsListed || right.NFTRef == nil {
		return nil, domain.ErrNotForSale
	}
	if right.ListingType != domain.ListingFixed {
		return nil, domain.ErrNotForSale
	}
	if right.OwnerID == buyerID {
		return nil, domain.ErrSelfPurchase
	}
	if e.moderation != nil && e.moderation.IsRefBlocked(domain.NFTRef(*right.NFTRef)) {
		return nil, domain.ErrNotForSale
	}

	buyer, err := e.store.GetUserByID(ctx, buyerID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get user: %v", err))
	}
	if buyer == nil {
		return nil, domain.ErrUserNotFound
	}
	if buyer.IsBanned {
		return nil, domain.ErrAddressBanned
	}
	if buyer.Chain != right.Chain {
		return nil, apierrors.NewConflictError(fmt.Sprintf("wallet is on %s, right is on %s", buyer.Chain, right.Chain))
	}

	isResale := right.OwnerID != right.CreatorID
	breakdown, err := e.pricer.Breakdown(domain.Amount(right.Price), right.Chain, int64(right.RoyaltyBps), isResale)
	if err != nil {
		return nil, apierrors.NewInternalError(fmt.Sprintf("Failed to compute breakdown: %v", err))
	}
	breakdownJSON, err := json.Marshal(breakdown)
	if err != nil {
		return nil, apierrors.NewInternalError(fmt.Sprintf("Failed to encode breakdown: %v", err))
	}

	purchaseRef := ulid.Make().String()
	royaltyRef := ""
	if !breakdown.CreatorRoyalty.IsZero() {
		royaltyRef = ulid.Make().String()
	}

	result, err := e.store.ExecuteTrade(ctx, store.TradeInput{
		RightID:       right.ID,
		BuyerID:       buyer.ID,
		Settlement:    false,
		Price:         right.Price,
		RoyaltyAmount: breakdown.CreatorRoyalty.String(),
		Breakdown:     datatypes.JSON(breakdownJSON),
		PurchaseRef:   purchaseRef,
		RoyaltyRef:    royaltyRef,
	})
	if err != nil {
		return nil, err
	}

	w := workflows.NewWorkerCore(nil, workflows.WorkerCoreConfig{})
	options := client.StartWorkflowOptions{
		ID:                       fmt.Sprintf("transfer-right-%s-%s", right.ID, purchaseRef),
		TaskQueue:                e.config.MarketTaskQueue,
		WorkflowExecutionTimeout: 30 * time.Minute,
	}
	input := workflows.TransferRightInput{
		RightID:     right.ID,
		Ref:         domain.NFTRef(*right.NFTRef),
		FromAddress: result.Seller.Address,
		ToAddress:   result.Buyer.Address,
		PurchaseRef: result.PurchaseRef,
		RoyaltyRef:  result.RoyaltyRef,
		Price:       right.Price,
		Settlement:  false,
	}

	resp := &dto.PurchaseResponse{
		Right:       dto.MapRightToDTO(result.Right),
		Breakdown:   breakdown,
		PurchaseRef: result.PurchaseRef,
	}

	wfRun, err := e.orchestrator.ExecuteWorkflow(ctx, options, w.TransferRight, input)
	if err != nil {
		// The trade is committed; the sweeper will retry the on-chain leg
		logger.ErrorCtx(ctx, fmt.Errorf("failed to start transfer workflow: %w", err),
			zap.String("right_id", right.ID), zap.String("purchase_ref", purchaseRef))
		return resp, nil
	}
	resp.WorkflowID = wfRun.GetID()
	resp.RunID = wfRun.GetRunID()

	return resp, nil
}

func (e *executor) PlaceBid(ctx context.Context, bidderID int64, rightID string, req *dto.PlaceBidRequest) (*dto.BidResponse, error) {
	right, err := e.lookupRight(ctx, rightID, false)
	if err != nil {
		return nil, err
	}
	if right.OwnerID == bidderID {
		return nil, domain.ErrSelfPurchase
	}

	bidder, err := e.store.GetUserByID(ctx, bidderID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get user: %v", err))
	}
	if bidder == nil {
		return nil, domain.ErrUserNotFound
	}
	if bidder.IsBanned {
		return nil, domain.ErrAddressBanned
	}

	bid, err := e.store.PlaceBid(ctx, store.PlaceBidInput{
		RightID:         right.ID,
		BidderID:        bidder.ID,
		Amount:          req.Amount,
		MinIncrementBps: e.config.MinBidIncrementBps,
	})
	if err != nil {
		return nil, err
	}

	e.publish(ctx, &domain.MarketplaceEvent{
		EventType: domain.EventBidPlaced,
		Chain:     e.chainID(right.Chain),
		RightID:   right.ID,
		Actor:     bidder.Address,
		Amount:    domain.Amount(bid.Amount),
		Timestamp: e.clock.Now().UTC(),
	})

	return dto.MapBidToDTO(bid), nil
}

func (e *executor) GetBids(ctx context.Context, rightID string, limit *int, offset *uint64) (*dto.BidListResponse, error) {
	right, err := e.lookupRight(ctx, rightID, false)
	if err != nil {
		return nil, err
	}

	l, o := pageParams(limit, offset, constants.DEFAULT_BIDS_LIMIT)
	bids, total, err := e.store.ListBidsByRight(ctx, right.ID, l, o)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get bids: %v", err))
	}

	return dto.MapBidsToDTO(bids, nextOffset(o, len(bids), total), total), nil
}

// --- Staking ---

func (e *executor) Stake(ctx context.Context, userID int64, rightID string, req *dto.StakeRequest) (*dto.StakeResponse, error) {
	stake, err := e.store.CreateStake(ctx, store.CreateStakeInput{
		UserID:  userID,
		RightID: rightID,
		Amount:  req.Amount,
	})
	if err != nil {
		return nil, err
	}
	return dto.MapStakeToDTO(stake), nil
}

func (e *executor) Unstake(ctx context.Context, userID int64, rightID string) (*dto.StakeResponse, error) {
	stake, err := e.store.ReleaseStake(ctx, userID, rightID)
	if err != nil {
		return nil, err
	}
	return dto.MapStakeToDTO(stake), nil
}

func (e *executor) GetDistributions(ctx context.Context, rightID string, limit *int, offset *uint64) (*dto.DistributionListResponse, error) {
	right, err := e.lookupRight(ctx, rightID, false)
	if err != nil {
		return nil, err
	}

	l, o := pageParams(limit, offset, constants.DEFAULT_DISTRIBUTIONS_LIMIT)
	ds, total, err := e.store.ListDistributionsByRight(ctx, right.ID, l, o)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get distributions: %v", err))
	}

	return dto.MapDistributionsToDTO(ds, nextOffset(o, len(ds), total), total), nil
}

func (e *executor) GetRightTransactions(ctx context.Context, rightID string, limit *int, offset *uint64) (*dto.TransactionListResponse, error) {
	right, err := e.lookupRight(ctx, rightID, false)
	if err != nil {
		return nil, err
	}

	l, o := pageParams(limit, offset, constants.DEFAULT_TRANSACTIONS_LIMIT)
	txs, total, err := e.store.ListTransactionsByRight(ctx, right.ID, l, o)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get transactions: %v", err))
	}

	return dto.MapTransactionsToDTO(txs, nextOffset(o, len(txs), total), total), nil
}

// --- Social ---

func (e *executor) ToggleFavorite(ctx context.Context, userID int64, rightID string) (*dto.FavoriteToggleResponse, error) {
	right, err := e.lookupRight(ctx, rightID, false)
	if err != nil {
		return nil, err
	}

	favorited, err := e.store.ToggleFavorite(ctx, userID, right.ID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to toggle favorite: %v", err))
	}

	return &dto.FavoriteToggleResponse{RightID: right.ID, Favorited: favorited}, nil
}

func (e *executor) GetFavorites(ctx context.Context, userID int64, limit *int, offset *uint64) (*dto.RightListResponse, error) {
	l, o := pageParams(limit, offset, constants.DEFAULT_FAVORITES_LIMIT)
	rights, total, err := e.store.ListUserFavorites(ctx, userID, l, o)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get favorites: %v", err))
	}
	return dto.MapRightsToDTO(rights, nextOffset(o, len(rights), total), total), nil
}

func (e *executor) GetUser(ctx context.Context, address string) (*dto.UserResponse, error) {
	user, err := e.userByAddress(ctx, address)
	if err != nil {
		return nil, err
	}
	return dto.MapUserToDTO(user), nil
}

func (e *executor) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	if req.Username != nil {
		existing, err := e.store.GetUserByUsername(ctx, *req.Username)
		if err != nil {
			return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to check username: %v", err))
		}
		if existing != nil && existing.ID != userID {
			return nil, apierrors.NewConflictError(fmt.Sprintf("username %q is taken", *req.Username))
		}
	}

	user, err := e.store.UpdateUserProfile(ctx, userID, store.UpdateUserProfileInput{
		Username:  req.Username,
		Bio:       req.Bio,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to update profile: %v", err))
	}

	return dto.MapUserToDTO(user), nil
}

func (e *executor) GetUserRights(ctx context.Context, address string, role types.Role, limit *int, offset *uint64) (*dto.RightListResponse, error) {
	user, err := e.userByAddress(ctx, address)
	if err != nil {
		return nil, err
	}

	l, o := pageParams(limit, offset, constants.DEFAULT_RIGHTS_LIMIT)
	filter := store.RightQueryFilter{Limit: l, Offset: o}
	if role == types.RoleCreated {
		filter.CreatorID = &user.ID
	} else {
		filter.OwnerID = &user.ID
	}

	rights, total, err := e.store.GetRightsByFilter(ctx, filter)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get rights: %v", err))
	}

	return dto.MapRightsToDTO(rights, nextOffset(o, len(rights), total), total), nil
}

func (e *executor) ToggleFollow(ctx context.Context, followerID int64, address string) (*dto.FollowToggleResponse, error) {
	followee, err := e.userByAddress(ctx, address)
	if err != nil {
		return nil, err
	}

	following, err := e.store.ToggleFollow(ctx, followerID, followee.ID)
	if err != nil {
		return nil, err
	}

	if following {
		follower, err := e.store.GetUserByID(ctx, followerID)
		if err == nil && follower != nil {
			e.publish(ctx, &domain.MarketplaceEvent{
				EventType:    domain.EventUserFollowed,
				Chain:        e.chainID(followee.Chain),
				Actor:        follower.Address,
				Counterparty: followee.Address,
				Timestamp:    e.clock.Now().UTC(),
			})
		}
	}

	return &dto.FollowToggleResponse{Address: followee.Address, Following: following}, nil
}

func (e *executor) GetFollowers(ctx context.Context, address string, limit *int, offset *uint64) (*dto.UserListResponse, error) {
	user, err := e.userByAddress(ctx, address)
	if err != nil {
		return nil, err
	}

	l, o := pageParams(limit, offset, constants.DEFAULT_FOLLOWS_LIMIT)
	users, total, err := e.store.ListFollowers(ctx, user.ID, l, o)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get followers: %v", err))
	}

	return dto.MapUsersToDTO(users, nextOffset(o, len(users), total), total), nil
}

func (e *executor) GetFollowing(ctx context.Context, address string, limit *int, offset *uint64) (*dto.UserListResponse, error) {
	user, err := e.userByAddress(ctx, address)
	if err != nil {
		return nil, err
	}

	l, o := pageParams(limit, offset, constants.DEFAULT_FOLLOWS_LIMIT)
	users, total, err := e.store.ListFollowing(ctx, user.ID, l, o)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get following: %v", err))
	}

	return dto.MapUsersToDTO(users, nextOffset(o, len(users), total), total), nil
}

func (e *executor) GetNotifications(ctx context.Context, userID int64, unreadOnly bool, limit *int, offset *uint64) (*dto.NotificationListResponse, error) {
	l, o := pageParams(limit, offset, constants.DEFAULT_NOTIFICATIONS_LIMIT)
	ns, total, err := e.store.ListNotifications(ctx, userID, unreadOnly, l, o)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get notifications: %v", err))
	}
	return dto.MapNotificationsToDTO(ns, nextOffset(o, len(ns), total), total), nil
}

func (e *executor) MarkNotificationsRead(ctx context.Context, userID int64, req *dto.MarkNotificationsReadRequest) (*dto.MarkReadResponse, error) {
	updated, err := e.store.MarkNotificationsRead(ctx, userID, req.IDs)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to mark notifications read: %v", err))
	}
	return &dto.MarkReadResponse{Updated: updated}, nil
}

// --- Vault ---

func (e *executor) UploadSecureFile(ctx context.Context, ownerID int64, upload vault.Upload) (*dto.SecureFileResponse, error) {
	stored, err := e.vault.Store(ctx, upload)
	if err != nil {
		return nil, err
	}

	file, err := e.store.CreateSecureFile(ctx, store.CreateSecureFileInput{
		OwnerID:          ownerID,
		Filename:         upload.Filename,
		DeclaredMimeType: upload.DeclaredMimeType,
		DetectedMimeType: stored.DetectedMimeType,
		SizeBytes:        stored.SizeBytes,
		SHA256:           stored.SHA256,
		StorageKey:       stored.StorageKey,
		Nonce:            stored.Nonce,
		KeyID:            stored.KeyID,
	})
	if err != nil {
		// Orphaned ciphertext is cleaned up immediately, not left for a sweep
		if rmErr := e.vault.Remove(ctx, stored.StorageKey); rmErr != nil {
			logger.ErrorCtx(ctx, fmt.Errorf("failed to remove orphaned object: %w", rmErr),
				zap.String("storage_key", stored.StorageKey))
		}
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to record file: %v", err))
	}

	return dto.MapSecureFileToDTO(file), nil
}

func (e *executor) ListSecureFiles(ctx context.Context, ownerID int64, limit *int, offset *uint64) (*dto.SecureFileListResponse, error) {
	l, o := pageParams(limit, offset, constants.DEFAULT_FILES_LIMIT)
	files, total, err := e.store.ListSecureFilesByOwner(ctx, ownerID, l, o)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get files: %v", err))
	}

	fileDTOs := make([]dto.SecureFileResponse, len(files))
	for i := range files {
		fileDTOs[i] = *dto.MapSecureFileToDTO(files[i])
	}

	return &dto.SecureFileListResponse{
		Files:  fileDTOs,
		Offset: nextOffset(o, len(files), total),
		Total:  total,
	}, nil
}

func (e *executor) DownloadSecureFile(ctx context.Context, callerID int64, isAdmin bool, fileID int64) (*SecureFileContent, error) {
	file, err := e.store.GetSecureFileByID(ctx, fileID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get file: %v", err))
	}
	if file == nil {
		return nil, apierrors.NewNotFoundError("File not found")
	}
	if file.OwnerID != callerID && !isAdmin {
		return nil, domain.ErrNotOwner
	}

	data, err := e.vault.Open(ctx, file.StorageKey, file.KeyID, file.Nonce)
	if err != nil {
		return nil, apierrors.NewInternalError(fmt.Sprintf("Failed to decrypt file: %v", err))
	}

	return &SecureFileContent{
		Filename: file.Filename,
		MimeType: file.DetectedMimeType,
		Data:     data,
	}, nil
}

// --- Misc ---

func (e *executor) GetCategories(ctx context.Context) (*dto.CategoryListResponse, error) {
	categories, err := e.store.ListCategories(ctx, false)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get categories: %v", err))
	}

	categoryDTOs := make([]dto.CategoryResponse, len(categories))
	for i := range categories {
		categoryDTOs[i] = *dto.MapCategoryToDTO(categories[i])
	}

	return &dto.CategoryListResponse{Categories: categoryDTOs}, nil
}

func (e *executor) GetChainStatus(ctx context.Context, blockchain domain.Blockchain) (*dto.ChainStatusResponse, error) {
	service, err := e.chains.For(blockchain)
	if err != nil {
		return nil, apierrors.NewServiceError(err.Error())
	}

	status, err := service.Status(ctx)
	if err != nil {
		return nil, apierrors.NewServiceError(fmt.Sprintf("Failed to get chain status: %v", err))
	}

	return &dto.ChainStatusResponse{Status: status}, nil
}

// --- Admin ---

func (e *executor) GetOverview(ctx context.Context) (*dto.OverviewResponse, error) {
	overview, err := e.store.GetMarketplaceOverview(ctx)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get overview: %v", err))
	}
	return dto.MapOverviewToDTO(overview), nil
}

func (e *executor) GetTopCreators(ctx context.Context, limit *int) (*dto.TopCreatorsResponse, error) {
	l := constants.DEFAULT_TOP_CREATORS_LIMIT
	if limit != nil && *limit > 0 && *limit <= int(constants.MAX_PAGE_SIZE) {
		l = *limit
	}

	creators, err := e.store.GetTopCreators(ctx, l)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get top creators: %v", err))
	}

	return dto.MapTopCreatorsToDTO(creators), nil
}

func (e *executor) GetVerificationQueue(ctx context.Context, limit *int, offset *uint64) (*dto.RightListResponse, error) {
	l, o := pageParams(limit, offset, constants.DEFAULT_RIGHTS_LIMIT)
	rights, total, err := e.store.GetVerificationQueue(ctx, l, o)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get verification queue: %v", err))
	}
	return dto.MapRightsToDTO(rights, nextOffset(o, len(rights), total), total), nil
}

func (e *executor) VerifyRight(ctx context.Context, reviewer string, rightID string, req *dto.VerifyRightRequest) (*dto.RightResponse, error) {
	right, err := e.lookupRight(ctx, rightID, false)
	if err != nil {
		return nil, err
	}

	// Verification attests to the pinned document, so a drifted hash blocks it
	if req.Decision == domain.VerificationVerified && e.resolver != nil &&
		right.MetadataURI != nil && right.MetadataHash != nil {
		ok, err := e.resolver.Verify(ctx, *right.MetadataURI, *right.MetadataHash)
		if err != nil {
			return nil, apierrors.NewInternalError(fmt.Sprintf("Failed to verify metadata: %v", err))
		}
		if !ok {
			return nil, apierrors.NewValidationError("Metadata document no longer matches its recorded hash")
		}
	}

	if err := e.store.SetRightVerification(ctx, store.SetRightVerificationInput{
		RightID:  right.ID,
		Status:   req.Decision,
		Reviewer: reviewer,
		Notes:    req.Notes,
	}); err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to record decision: %v", err))
	}

	if req.Decision == domain.VerificationVerified {
		e.publish(ctx, &domain.MarketplaceEvent{
			EventType: domain.EventRightVerified,
			Chain:     e.chainID(right.Chain),
			RightID:   right.ID,
			Timestamp: e.clock.Now().UTC(),
		})
	}

	return e.GetRight(ctx, right.ID, false)
}

func (e *executor) BanUser(ctx context.Context, address string, req *dto.BanUserRequest) (*dto.UserResponse, error) {
	user, err := e.userByAddress(ctx, address)
	if err != nil {
		return nil, err
	}

	if err := e.store.SetUserBanned(ctx, user.ID, req.Banned); err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to set ban flag: %v", err))
	}
	user.IsBanned = req.Banned

	// Feed the moderation blocklist so emitters and the bridge drop the
	// address without a redeploy
	if err := registry.PublishBan(ctx, e.store, user.Chain, user.Address, req.Banned); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to publish ban: %w", err),
			zap.String("address", user.Address))
	}

	return dto.MapUserToDTO(user), nil
}

func (e *executor) CreateWebhookClient(ctx context.Context, req *dto.CreateWebhookClientRequest) (*dto.WebhookClientResponse, error) {
	secret, err := newWebhookSecret()
	if err != nil {
		return nil, apierrors.NewInternalError(fmt.Sprintf("Failed to generate secret: %v", err))
	}

	filtersJSON, err := json.Marshal(req.EventFilters)
	if err != nil {
		return nil, apierrors.NewInternalError(fmt.Sprintf("Failed to encode filters: %v", err))
	}

	attempts := constants.DEFAULT_WEBHOOK_ATTEMPTS
	if req.RetryMaxAttempts != nil {
		attempts = *req.RetryMaxAttempts
	}

	webhookClient, err := e.store.CreateWebhookClient(ctx, store.CreateWebhookClientInput{
		ClientID:         ulid.Make().String(),
		WebhookURL:       req.WebhookURL,
		WebhookSecret:    secret,
		EventFilters:     datatypes.JSON(filtersJSON),
		IsActive:         true,
		RetryMaxAttempts: attempts,
	})
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to create webhook client: %v", err))
	}

	// The secret is shown exactly once, at registration
	return dto.MapWebhookClientToDTO(webhookClient, true), nil
}

func (e *executor) ListWebhookClients(ctx context.Context) (*dto.WebhookClientListResponse, error) {
	clients, err := e.store.ListWebhookClients(ctx)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list webhook clients: %v", err))
	}
	return dto.MapWebhookClientsToDTO(clients), nil
}

func (e *executor) DeleteWebhookClient(ctx context.Context, clientID string) error {
	if err := e.store.DeleteWebhookClient(ctx, clientID); err != nil {
		return apierrors.NewDatabaseError(fmt.Sprintf("Failed to delete webhook client: %v", err))
	}
	return nil
}

// newWebhookSecret returns a 256-bit random secret, hex encoded
func newWebhookSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// isRightID reports whether the path parameter is a UUID rather than a slug
func isRightID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

// shortSuffix keeps slugs readable while making them collision free
func shortSuffix(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[len(id)-8:]
}
