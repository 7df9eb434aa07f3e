package workflows

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/dright/marketplace/internal/adapter"
	"github.com/dright/marketplace/internal/domain"
	"github.com/dright/marketplace/internal/ipfs"
	"github.com/dright/marketplace/internal/logger"
	"github.com/dright/marketplace/internal/messaging"
	"github.com/dright/marketplace/internal/metadata"
	"github.com/dright/marketplace/internal/nft"
	"github.com/dright/marketplace/internal/preview"
	"github.com/dright/marketplace/internal/pricing"
	"github.com/dright/marketplace/internal/store"
	"github.com/dright/marketplace/internal/store/schema"
	"github.com/dright/marketplace/internal/webhook"
)

// PinnedMetadata carries the IPFS identity of a right's metadata document
type PinnedMetadata struct {
	// CID is the IPFS content identifier of the pinned document
	CID string
	// URI is the ipfs:// URI derived from the CID
	URI string
	// Hash is the hex SHA-256 of the canonicalized document
	Hash string
}

// MintNFTInput asks the chain service to mint a right's token
type MintNFTInput struct {
	RightID     string
	Chain       domain.Blockchain
	ToAddress   string
	MetadataCID string
}

// TransferNFTInput moves a minted token between wallets
type TransferNFTInput struct {
	Ref  domain.NFTRef
	From string
	To   string
}

// UpdateTransactionStatusInput settles or fails a pending ledger entry
type UpdateTransactionStatusInput struct {
	Reference string
	Status    domain.TxStatus
	TxHash    *string
}

// SettleAuctionTradeInput executes the winning bid of an ended auction
type SettleAuctionTradeInput struct {
	RightID  string
	WinnerID int64
	// Amount is the winning bid in base units
	Amount string
}

// SettledTrade reports an executed auction trade with everything the
// transfer workflow needs afterwards
type SettledTrade struct {
	RightID       string
	Ref           domain.NFTRef
	SellerID      int64
	SellerAddress string
	BuyerID       int64
	BuyerAddress  string
	Chain         domain.Blockchain
	Price         string
	PurchaseRef   string
	RoyaltyRef    string
}

// StakePayout is one staker's share of a revenue distribution
type StakePayout struct {
	StakeID int64  `json:"stake_id"`
	UserID  int64  `json:"user_id"`
	Staked  string `json:"staked"`
	Payout  string `json:"payout"`
}

// CompletePayoutsInput records the outcome of a revenue distribution
type CompletePayoutsInput struct {
	DistributionID int64
	RightID        string
	Chain          domain.Blockchain
	Payouts        []StakePayout
	TotalRevenue   string
}

// Executor defines the interface for executing activities
//
//go:generate mockgen -source=executor.go -destination=../mocks/executor_core.go -package=mocks -mock_names=Executor=MockCoreExecutor
type Executor interface {
	// GetRight retrieves a right by ID
	GetRight(ctx context.Context, rightID string) (*schema.Right, error)

	// GetUser retrieves a user by ID
	GetUser(ctx context.Context, userID int64) (*schema.User, error)

	// PinRightMetadata builds the right's canonical metadata document,
	// pins it to IPFS, and returns its identity
	PinRightMetadata(ctx context.Context, rightID string) (*PinnedMetadata, error)

	// MintNFT mints the right's token on its chain
	MintNFT(ctx context.Context, input MintNFTInput) (*nft.MintResult, error)

	// MarkRightMinted records token identifiers and activates the listing
	MarkRightMinted(ctx context.Context, input store.MarkRightMintedInput) error

	// UpdateRightStatus transitions a right's lifecycle status
	UpdateRightStatus(ctx context.Context, rightID string, status domain.RightStatus) error

	// AppendTransaction appends a ledger entry and returns its reference
	AppendTransaction(ctx context.Context, input store.AppendTransactionInput) (string, error)

	// GeneratePreview renders and stores the right's preview image;
	// returns the preview URL (empty when the right has no artwork)
	GeneratePreview(ctx context.Context, rightID string) (string, error)

	// TransferNFT moves a token between wallets and returns the tx hash
	TransferNFT(ctx context.Context, input TransferNFTInput) (string, error)

	// UpdateTransactionStatus settles or fails a pending ledger entry
	UpdateTransactionStatus(ctx context.Context, input UpdateTransactionStatusInput) error

	// GetHighestActiveBid returns the current highest active bid, nil when none
	GetHighestActiveBid(ctx context.Context, rightID string) (*schema.Bid, error)

	// DeactivateBids deactivates a right's active bids
	DeactivateBids(ctx context.Context, rightID string) (int64, error)

	// RevertAuctionToFixed turns an ended zero-bid auction back into a fixed listing
	RevertAuctionToFixed(ctx context.Context, rightID string) error

	// SettleAuctionTrade executes the winning bid as a trade
	SettleAuctionTrade(ctx context.Context, input SettleAuctionTradeInput) (*SettledTrade, error)

	// GetDistribution retrieves a revenue distribution by ID
	GetDistribution(ctx context.Context, distributionID int64) (*schema.RevenueDistribution, error)

	// UpdateDistributionStatus transitions a distribution's lifecycle status
	UpdateDistributionStatus(ctx context.Context, distributionID int64, status schema.DistributionStatus) error

	// GetActiveStakes retrieves a right's active stakes, oldest first
	GetActiveStakes(ctx context.Context, rightID string) ([]*schema.Stake, error)

	// CompleteDistributionPayouts writes the payout ledger entries,
	// notifications, and the completed distribution snapshot
	CompleteDistributionPayouts(ctx context.Context, input CompletePayoutsInput) error

	// ReconcileTransfer updates ownership after an on-chain transfer
	// observed by an emitter; returns nil when the token is unknown
	ReconcileTransfer(ctx context.Context, input store.TransferRightByRefInput) (*schema.Right, error)

	// CreateEventNotifications fans a marketplace event out to in-app
	// notifications; returns the number created
	CreateEventNotifications(ctx context.Context, event *domain.MarketplaceEvent) (int, error)

	// PublishEvent publishes a marketplace event to the bus
	PublishEvent(ctx context.Context, event *domain.MarketplaceEvent) error

	// GetActiveWebhookClientsByEventType retrieves active webhook clients matching the event type
	GetActiveWebhookClientsByEventType(ctx context.Context, eventType string) ([]*schema.WebhookClient, error)

	// GetWebhookClientByID retrieves a webhook client by client ID
	GetWebhookClientByID(ctx context.Context, clientID string) (*schema.WebhookClient, error)

	// CreateWebhookDeliveryRecord creates a new webhook delivery record
	CreateWebhookDeliveryRecord(ctx context.Context, delivery *schema.WebhookDelivery, event domain.MarketplaceEvent) (uint64, error)

	// DeliverWebhookHTTP performs the signed HTTP delivery of a webhook
	DeliverWebhookHTTP(ctx context.Context, client *schema.WebhookClient, event domain.MarketplaceEvent, deliveryID uint64) (webhook.DeliveryResult, error)
}

// executor is the concrete implementation of Executor
type executor struct {
	store            store.Store
	chains           *nft.Router
	pricer           *pricing.Calculator
	builder          metadata.Builder
	ipfsClient       ipfs.Client
	publisher        messaging.Publisher
	previewer        preview.Generator
	httpClient       adapter.HTTPClient
	json             adapter.JSON
	clock            adapter.Clock
	temporalActivity adapter.Activity
}

// NewExecutor creates a new executor instance
func NewExecutor(
	s store.Store,
	chains *nft.Router,
	pricer *pricing.Calculator,
	builder metadata.Builder,
	ipfsClient ipfs.Client,
	publisher messaging.Publisher,
	previewer preview.Generator,
	httpClient adapter.HTTPClient,
	jsonAdapter adapter.JSON,
	clock adapter.Clock,
	temporalActivity adapter.Activity,
) Executor {
	return &executor{
		store:            s,
		chains:           chains,
		pricer:           pricer,
		builder:          builder,
		ipfsClient:       ipfsClient,
		publisher:        publisher,
		previewer:        previewer,
		httpClient:       httpClient,
		json:             jsonAdapter,
		clock:            clock,
		temporalActivity: temporalActivity,
	}
}

// GetRight retrieves a right by ID
func (e *executor) GetRight(ctx context.Context, rightID string) (*schema.Right, error) {
	right, err := e.store.GetRightByID(ctx, rightID, false)
	if err != nil {
		return nil, err
	}
	if right == nil {
		return nil, domain.ErrRightNotFound
	}
	return right, nil
}

// GetUser retrieves a user by ID
func (e *executor) GetUser(ctx context.Context, userID int64) (*schema.User, error) {
	user, err := e.store.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

// PinRightMetadata builds, pins, and hashes the right's metadata document
func (e *executor) PinRightMetadata(ctx context.Context, rightID string) (*PinnedMetadata, error) {
	right, err := e.GetRight(ctx, rightID)
	if err != nil {
		return nil, err
	}
	creator, err := e.GetUser(ctx, right.CreatorID)
	if err != nil {
		return nil, err
	}

	doc, err := e.builder.Build(right, creator)
	if err != nil {
		return nil, fmt.Errorf("failed to build metadata: %w", err)
	}
	hash, err := e.builder.Hash(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to hash metadata: %w", err)
	}

	cid, err := e.ipfsClient.PinFile(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to pin metadata: %w", err)
	}

	logger.InfoCtx(ctx, "Pinned right metadata",
		zap.String("right_id", rightID),
		zap.String("cid", cid))

	return &PinnedMetadata{
		CID:  cid,
		URI:  nft.TokenURI(cid),
		Hash: hash,
	}, nil
}

// MintNFT mints the right's token on its chain
func (e *executor) MintNFT(ctx context.Context, input MintNFTInput) (*nft.MintResult, error) {
	svc, err := e.chains.For(input.Chain)
	if err != nil {
		return nil, err
	}

	result, err := svc.Mint(ctx, nft.MintRequest{
		To:          input.ToAddress,
		MetadataCID: input.MetadataCID,
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Minted right token",
		zap.String("right_id", input.RightID),
		zap.String("ref", result.Ref.String()),
		zap.String("tx_hash", result.TxHash))

	return result, nil
}

// MarkRightMinted records token identifiers and activates the listing
func (e *executor) MarkRightMinted(ctx context.Context, input store.MarkRightMintedInput) error {
	return e.store.MarkRightMinted(ctx, input)
}

// UpdateRightStatus transitions a right's lifecycle status
func (e *executor) UpdateRightStatus(ctx context.Context, rightID string, status domain.RightStatus) error {
	return e.store.UpdateRightStatus(ctx, rightID, status)
}

// AppendTransaction appends a ledger entry and returns its reference
func (e *executor) AppendTransaction(ctx context.Context, input store.AppendTransactionInput) (string, error) {
	if input.Reference == "" {
		input.Reference = ulid.Make().String()
	}
	tx, err := e.store.AppendTransaction(ctx, input)
	if err != nil {
		return "", err
	}
	return tx.Reference, nil
}

// GeneratePreview renders and stores the right's preview image
func (e *executor) GeneratePreview(ctx context.Context, rightID string) (string, error) {
	right, err := e.GetRight(ctx, rightID)
	if err != nil {
		return "", err
	}
	if right.PreviewURL == nil || *right.PreviewURL == "" {
		return "", nil
	}

	url, err := e.previewer.Generate(ctx, rightID, *right.PreviewURL)
	if err != nil {
		return "", err
	}
	if url == *right.PreviewURL {
		return url, nil
	}

	if err := e.store.SetRightPreviewURL(ctx, rightID, url); err != nil {
		return "", err
	}
	return url, nil
}

// TransferNFT moves a token between wallets and returns the tx hash
func (e *executor) TransferNFT(ctx context.Context, input TransferNFTInput) (string, error) {
	chain, _, _ := input.Ref.Parse()
	svc, err := e.chains.For(chain.Blockchain())
	if err != nil {
		return "", err
	}

	result, err := svc.Transfer(ctx, nft.TransferRequest{
		Ref:  input.Ref,
		From: input.From,
		To:   input.To,
	})
	if err != nil {
		return "", err
	}
	return result.TxHash, nil
}

// UpdateTransactionStatus settles or fails a pending ledger entry
func (e *executor) UpdateTransactionStatus(ctx context.Context, input UpdateTransactionStatusInput) error {
	return e.store.UpdateTransactionStatus(ctx, input.Reference, input.Status, input.TxHash)
}

// GetHighestActiveBid returns the current highest active bid, nil when none
func (e *executor) GetHighestActiveBid(ctx context.Context, rightID string) (*schema.Bid, error) {
	return e.store.GetHighestActiveBid(ctx, rightID)
}

// DeactivateBids deactivates a right's active bids
func (e *executor) DeactivateBids(ctx context.Context, rightID string) (int64, error) {
	return e.store.DeactivateBids(ctx, rightID)
}

// RevertAuctionToFixed turns an ended zero-bid auction back into a fixed listing
func (e *executor) RevertAuctionToFixed(ctx context.Context, rightID string) error {
	return e.store.RevertAuctionToFixed(ctx, rightID)
}

// SettleAuctionTrade executes the winning bid as a trade
func (e *executor) SettleAuctionTrade(ctx context.Context, input SettleAuctionTradeInput) (*SettledTrade, error) {
	right, err := e.GetRight(ctx, input.RightID)
	if err != nil {
		return nil, err
	}
	if right.NFTRef == nil {
		return nil, fmt.Errorf("right %s has no minted token", input.RightID)
	}

	isResale := right.OwnerID != right.CreatorID
	breakdown, err := e.pricer.Breakdown(domain.Amount(input.Amount), right.Chain, int64(right.RoyaltyBps), isResale)
	if err != nil {
		return nil, fmt.Errorf("failed to compute fee breakdown: %w", err)
	}

	breakdownJSON, err := e.json.Marshal(breakdown)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal fee breakdown: %w", err)
	}

	purchaseRef := ulid.Make().String()
	royaltyRef := ""
	if !breakdown.CreatorRoyalty.IsZero() {
		royaltyRef = ulid.Make().String()
	}

	trade, err := e.store.ExecuteTrade(ctx, store.TradeInput{
		RightID:       input.RightID,
		BuyerID:       input.WinnerID,
		Settlement:    true,
		Price:         input.Amount,
		RoyaltyAmount: breakdown.CreatorRoyalty.String(),
		Breakdown:     datatypes.JSON(breakdownJSON),
		PurchaseRef:   purchaseRef,
		RoyaltyRef:    royaltyRef,
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Settled auction trade",
		zap.String("right_id", input.RightID),
		zap.Int64("winner_id", input.WinnerID),
		zap.String("amount", input.Amount),
		zap.Int64("deactivated_bids", trade.DeactivatedBids))

	return &SettledTrade{
		RightID:       input.RightID,
		Ref:           domain.NFTRef(*right.NFTRef),
		SellerID:      trade.Seller.ID,
		SellerAddress: trade.Seller.Address,
		BuyerID:       trade.Buyer.ID,
		BuyerAddress:  trade.Buyer.Address,
		Chain:         right.Chain,
		Price:         input.Amount,
		PurchaseRef:   trade.PurchaseRef,
		RoyaltyRef:    trade.RoyaltyRef,
	}, nil
}

// GetDistribution retrieves a revenue distribution by ID
func (e *executor) GetDistribution(ctx context.Context, distributionID int64) (*schema.RevenueDistribution, error) {
	dist, err := e.store.GetDistributionByID(ctx, distributionID)
	if err != nil {
		return nil, err
	}
	if dist == nil {
		return nil, fmt.Errorf("distribution %d not found", distributionID)
	}
	return dist, nil
}

// UpdateDistributionStatus transitions a distribution's lifecycle status
func (e *executor) UpdateDistributionStatus(ctx context.Context, distributionID int64, status schema.DistributionStatus) error {
	return e.store.UpdateDistributionStatus(ctx, distributionID, status)
}

// GetActiveStakes retrieves a right's active stakes, oldest first
func (e *executor) GetActiveStakes(ctx context.Context, rightID string) ([]*schema.Stake, error) {
	return e.store.GetActiveStakesByRight(ctx, rightID)
}

// CompleteDistributionPayouts writes the payout ledger entries,
// notifications, and the completed distribution snapshot
func (e *executor) CompleteDistributionPayouts(ctx context.Context, input CompletePayoutsInput) error {
	currency := domain.CurrencySymbol(input.Chain)

	txHashes := make(map[string]string, len(input.Payouts))
	notifications := make([]store.CreateNotificationInput, 0, len(input.Payouts))
	for _, payout := range input.Payouts {
		if domain.Amount(payout.Payout).IsZero() {
			continue
		}

		ref := ulid.Make().String()
		rightID := input.RightID
		if _, err := e.store.AppendTransaction(ctx, store.AppendTransactionInput{
			Reference: ref,
			Type:      domain.TxTypeDividend,
			RightID:   &rightID,
			ToUserID:  &payout.UserID,
			Amount:    payout.Payout,
			Currency:  currency,
			Chain:     input.Chain,
			Status:    domain.TxStatusConfirmed,
		}); err != nil {
			return fmt.Errorf("failed to append dividend entry: %w", err)
		}
		txHashes[ref] = ""

		notifications = append(notifications, store.CreateNotificationInput{
			UserID:  payout.UserID,
			Type:    schema.NotificationTypeDividendPaid,
			Title:   "Dividend paid",
			Body:    fmt.Sprintf("You received %s %s from a revenue distribution", payout.Payout, currency),
			RightID: &rightID,
		})
	}

	payoutsJSON, err := e.json.Marshal(input.Payouts)
	if err != nil {
		return fmt.Errorf("failed to marshal payouts: %w", err)
	}
	hashesJSON, err := e.json.Marshal(txHashes)
	if err != nil {
		return fmt.Errorf("failed to marshal tx hashes: %w", err)
	}

	if err := e.store.CompleteDistribution(ctx, input.DistributionID, datatypes.JSON(payoutsJSON), datatypes.JSON(hashesJSON)); err != nil {
		return err
	}

	if len(notifications) > 0 {
		if err := e.store.CreateNotifications(ctx, notifications); err != nil {
			// The distribution itself settled; notifications are best-effort
			logger.WarnCtx(ctx, "Failed to create dividend notifications",
				zap.Int64("distribution_id", input.DistributionID),
				zap.Error(err))
		}
	}

	return nil
}

// ReconcileTransfer updates ownership after an on-chain transfer observed
// by an emitter
func (e *executor) ReconcileTransfer(ctx context.Context, input store.TransferRightByRefInput) (*schema.Right, error) {
	right, err := e.store.TransferRightByRef(ctx, input)
	if err != nil {
		return nil, err
	}
	if right == nil {
		// Token not tracked by the marketplace; nothing to reconcile
		return nil, nil
	}

	logger.InfoCtx(ctx, "Reconciled on-chain transfer",
		zap.String("right_id", right.ID),
		zap.String("nft_ref", input.NFTRef),
		zap.String("to", input.ToAddress))

	return right, nil
}

// CreateEventNotifications fans a marketplace event out to in-app notifications
func (e *executor) CreateEventNotifications(ctx context.Context, event *domain.MarketplaceEvent) (int, error) {
	inputs, err := e.notificationsForEvent(ctx, event)
	if err != nil {
		return 0, err
	}
	if len(inputs) == 0 {
		return 0, nil
	}
	if err := e.store.CreateNotifications(ctx, inputs); err != nil {
		return 0, err
	}
	return len(inputs), nil
}

func (e *executor) notificationsForEvent(ctx context.Context, event *domain.MarketplaceEvent) ([]store.CreateNotificationInput, error) {
	switch event.EventType {
	case domain.EventRightSold, domain.EventAuctionSettled:
		return e.saleNotifications(ctx, event)
	case domain.EventBidPlaced:
		return e.bidNotifications(ctx, event)
	case domain.EventRightVerified:
		return e.verificationNotifications(ctx, event)
	case domain.EventRightListed:
		return e.listingNotifications(ctx, event)
	case domain.EventUserFollowed:
		return e.followNotifications(ctx, event)
	default:
		return nil, nil
	}
}

// saleNotifications notifies the seller, and the winner for settlements
func (e *executor) saleNotifications(ctx context.Context, event *domain.MarketplaceEvent) ([]store.CreateNotificationInput, error) {
	right, err := e.GetRight(ctx, event.RightID)
	if err != nil {
		return nil, err
	}

	blockchain := event.Chain.Blockchain()
	seller, err := e.store.GetUserByAddress(ctx, blockchain, event.Actor)
	if err != nil {
		return nil, err
	}
	buyer, err := e.store.GetUserByAddress(ctx, blockchain, event.Counterparty)
	if err != nil {
		return nil, err
	}

	rightID := right.ID
	var inputs []store.CreateNotificationInput
	if seller != nil {
		var actorID *int64
		if buyer != nil {
			actorID = &buyer.ID
		}
		inputs = append(inputs, store.CreateNotificationInput{
			UserID:  seller.ID,
			Type:    schema.NotificationTypeRightSold,
			Title:   "Right sold",
			Body:    fmt.Sprintf("%q sold for %s %s", right.Title, event.Amount, right.Currency),
			RightID: &rightID,
			ActorID: actorID,
		})
	}
	if event.EventType == domain.EventAuctionSettled && buyer != nil {
		inputs = append(inputs, store.CreateNotificationInput{
			UserID:  buyer.ID,
			Type:    schema.NotificationTypeAuctionWon,
			Title:   "Auction won",
			Body:    fmt.Sprintf("You won the auction for %q at %s %s", right.Title, event.Amount, right.Currency),
			RightID: &rightID,
		})
	}
	return inputs, nil
}

// bidNotifications notifies the right's owner about a new bid
func (e *executor) bidNotifications(ctx context.Context, event *domain.MarketplaceEvent) ([]store.CreateNotificationInput, error) {
	right, err := e.GetRight(ctx, event.RightID)
	if err != nil {
		return nil, err
	}

	bidder, err := e.store.GetUserByAddress(ctx, event.Chain.Blockchain(), event.Actor)
	if err != nil {
		return nil, err
	}

	rightID := right.ID
	var actorID *int64
	if bidder != nil {
		actorID = &bidder.ID
	}
	return []store.CreateNotificationInput{{
		UserID:  right.OwnerID,
		Type:    schema.NotificationTypeBidPlaced,
		Title:   "New bid",
		Body:    fmt.Sprintf("%q received a bid of %s %s", right.Title, event.Amount, right.Currency),
		RightID: &rightID,
		ActorID: actorID,
	}}, nil
}

// verificationNotifications notifies the owner about a verification decision
func (e *executor) verificationNotifications(ctx context.Context, event *domain.MarketplaceEvent) ([]store.CreateNotificationInput, error) {
	right, err := e.GetRight(ctx, event.RightID)
	if err != nil {
		return nil, err
	}

	rightID := right.ID
	return []store.CreateNotificationInput{{
		UserID:  right.OwnerID,
		Type:    schema.NotificationTypeRightVerified,
		Title:   "Right verified",
		Body:    fmt.Sprintf("%q passed verification", right.Title),
		RightID: &rightID,
	}}, nil
}

// listingNotifications notifies the creator's followers about a new listing
func (e *executor) listingNotifications(ctx context.Context, event *domain.MarketplaceEvent) ([]store.CreateNotificationInput, error) {
	right, err := e.GetRight(ctx, event.RightID)
	if err != nil {
		return nil, err
	}

	followerIDs, err := e.store.GetFollowerIDs(ctx, right.OwnerID)
	if err != nil {
		return nil, err
	}

	rightID := right.ID
	ownerID := right.OwnerID
	inputs := make([]store.CreateNotificationInput, 0, len(followerIDs))
	for _, followerID := range followerIDs {
		inputs = append(inputs, store.CreateNotificationInput{
			UserID:  followerID,
			Type:    schema.NotificationTypeRightListed,
			Title:   "New listing",
			Body:    fmt.Sprintf("%q is now listed for %s %s", right.Title, right.Price, right.Currency),
			RightID: &rightID,
			ActorID: &ownerID,
		})
	}
	return inputs, nil
}

// followNotifications notifies a user about their new follower
func (e *executor) followNotifications(ctx context.Context, event *domain.MarketplaceEvent) ([]store.CreateNotificationInput, error) {
	blockchain := event.Chain.Blockchain()
	follower, err := e.store.GetUserByAddress(ctx, blockchain, event.Actor)
	if err != nil {
		return nil, err
	}
	followee, err := e.store.GetUserByAddress(ctx, blockchain, event.Counterparty)
	if err != nil {
		return nil, err
	}
	if follower == nil || followee == nil {
		return nil, nil
	}

	name := follower.Address
	if follower.Username != nil && *follower.Username != "" {
		name = *follower.Username
	}
	return []store.CreateNotificationInput{{
		UserID:  followee.ID,
		Type:    schema.NotificationTypeNewFollower,
		Title:   "New follower",
		Body:    fmt.Sprintf("%s started following you", name),
		ActorID: &follower.ID,
	}}, nil
}

// PublishEvent publishes a marketplace event to the bus
func (e *executor) PublishEvent(ctx context.Context, event *domain.MarketplaceEvent) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = e.clock.Now().UTC()
	}
	return e.publisher.PublishEvent(ctx, event)
}

// GetActiveWebhookClientsByEventType retrieves active webhook clients matching the event type
func (e *executor) GetActiveWebhookClientsByEventType(ctx context.Context, eventType string) ([]*schema.WebhookClient, error) {
	return e.store.GetActiveWebhookClientsByEventType(ctx, eventType)
}

// GetWebhookClientByID retrieves a webhook client by client ID
func (e *executor) GetWebhookClientByID(ctx context.Context, clientID string) (*schema.WebhookClient, error) {
	return e.store.GetWebhookClientByID(ctx, clientID)
}

// CreateWebhookDeliveryRecord creates a new webhook delivery record
func (e *executor) CreateWebhookDeliveryRecord(ctx context.Context, delivery *schema.WebhookDelivery, event domain.MarketplaceEvent) (uint64, error) {
	payload, err := e.json.Marshal(event)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal event payload: %w", err)
	}
	delivery.Payload = datatypes.JSON(payload)
	delivery.DeliveryStatus = schema.WebhookDeliveryStatusPending

	if err := e.store.CreateWebhookDelivery(ctx, delivery); err != nil {
		return 0, err
	}
	return delivery.ID, nil
}

// DeliverWebhookHTTP performs the signed HTTP delivery of a webhook.
// Failures update the delivery record and return an error so Temporal's
// retry policy drives the redelivery schedule.
func (e *executor) DeliverWebhookHTTP(ctx context.Context, client *schema.WebhookClient, event domain.MarketplaceEvent, deliveryID uint64) (webhook.DeliveryResult, error) {
	attempt := int(e.temporalActivity.GetInfo(ctx).Attempt)

	payload, signature, timestamp, err := webhook.GenerateSignedPayload(client.WebhookSecret, event)
	if err != nil {
		return webhook.DeliveryResult{}, fmt.Errorf("failed to sign payload: %w", err)
	}

	headers := map[string]string{
		"Content-Type":        "application/json",
		"X-Webhook-Signature": signature,
		"X-Webhook-Timestamp": fmt.Sprintf("%d", timestamp),
		"X-Webhook-Event-Id":  event.EventID,
	}

	resp, err := e.httpClient.PostWithHeadersNoRetry(ctx, client.WebhookURL, headers, bytes.NewReader(payload))
	if err != nil {
		result := webhook.DeliveryResult{Error: err.Error()}
		e.recordDeliveryAttempt(ctx, deliveryID, attempt, result)
		return result, fmt.Errorf("webhook delivery failed: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.WarnCtx(ctx, "failed to close webhook response body", zap.Error(err))
		}
	}()

	// Response bodies are capped at 4KB in the delivery record
	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		body = nil
	}

	result := webhook.DeliveryResult{
		Success:    resp.StatusCode >= 200 && resp.StatusCode < 300,
		StatusCode: resp.StatusCode,
		Body:       string(body),
	}

	if !result.Success {
		result.Error = fmt.Sprintf("endpoint returned status %d", resp.StatusCode)
		e.recordDeliveryAttempt(ctx, deliveryID, attempt, result)
		return result, fmt.Errorf("webhook endpoint returned status %d", resp.StatusCode)
	}

	e.recordDeliveryAttempt(ctx, deliveryID, attempt, result)

	logger.InfoCtx(ctx, "Webhook delivered",
		zap.String("client_id", client.ClientID),
		zap.String("event_id", event.EventID),
		zap.Int("status", resp.StatusCode))

	return result, nil
}

// recordDeliveryAttempt persists the outcome of one delivery attempt
func (e *executor) recordDeliveryAttempt(ctx context.Context, deliveryID uint64, attempt int, result webhook.DeliveryResult) {
	status := schema.WebhookDeliveryStatusFailed
	if result.Success {
		status = schema.WebhookDeliveryStatusSuccess
	}

	var responseStatus *int
	if result.StatusCode != 0 {
		responseStatus = &result.StatusCode
	}

	if err := e.store.UpdateWebhookDeliveryStatus(ctx, deliveryID, status, attempt, responseStatus, result.Body, result.Error); err != nil {
		logger.WarnCtx(ctx, "Failed to update webhook delivery status",
			zap.Uint64("delivery_id", deliveryID),
			zap.Error(err))
	}
}
