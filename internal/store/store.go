package store

import (
	"context"
	"time"

	"gorm.io/datatypes"

	"github.com/dright/marketplace/internal/domain"
	"github.com/dright/marketplace/internal/store/schema"
)

//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore

// RightSort enumerates the supported orderings for right listings
type RightSort string

const (
	// RightSortNewest orders by creation time, newest first (default)
	RightSortNewest RightSort = "newest"
	// RightSortOldest orders by creation time, oldest first
	RightSortOldest RightSort = "oldest"
	// RightSortPriceAsc orders by price, cheapest first
	RightSortPriceAsc RightSort = "price_asc"
	// RightSortPriceDesc orders by price, most expensive first
	RightSortPriceDesc RightSort = "price_desc"
	// RightSortTrending orders by weighted view/favorite activity
	RightSortTrending RightSort = "trending"
	// RightSortEndingSoon orders auctions by closing time, soonest first
	RightSortEndingSoon RightSort = "ending_soon"
)

// UpsertUserInput carries the fields for creating or refreshing a user by wallet address
type UpsertUserInput struct {
	Address     string
	Chain       domain.Blockchain
	LastLoginAt *time.Time
}

// UpdateUserProfileInput carries the mutable profile fields; nil fields are left unchanged
type UpdateUserProfileInput struct {
	Username  *string
	Bio       *string
	AvatarURL *string
}

// CreateRightInput carries a new draft right
type CreateRightInput struct {
	ID            string
	Slug          string
	Title         string
	Description   string
	RightType     domain.RightType
	CategoryID    *int64
	CreatorID     int64
	Chain         domain.Blockchain
	Price         string
	Currency      string
	ListingType   domain.ListingType
	AuctionEnd    *time.Time
	PaysDividends bool
	RoyaltyBps    int32
	LegalFileID   *int64
	// ImageURL seeds the preview URL with the creator-supplied artwork
	// location; preview generation replaces it after the mint
	ImageURL *string
}

// UpdateRightInput carries the owner-mutable fields; nil fields are left unchanged
type UpdateRightInput struct {
	Title       *string
	Description *string
	CategoryID  *int64
	Price       *string
	ListingType *domain.ListingType
	AuctionEnd  *time.Time
	IsListed    *bool
}

// MarkRightMintedInput records the on-chain identity of a freshly minted right
type MarkRightMintedInput struct {
	RightID         string
	NFTRef          string
	TokenID         *string
	TokenSerial     *int64
	ContractAddress *string
	TokenNumber     *string
	MetadataURI     string
	MetadataHash    string
	MintTxHash      string
}

// SetRightVerificationInput records an admin verification decision
type SetRightVerificationInput struct {
	RightID  string
	Status   domain.VerificationStatus
	Reviewer string
	Notes    *string
}

// TransferRightByRefInput reconciles ownership after an on-chain transfer observed by an emitter
type TransferRightByRefInput struct {
	NFTRef    string
	ToAddress string
	ToChain   domain.Blockchain
}

// RightQueryFilter describes the marketplace browse/search query
type RightQueryFilter struct {
	CategorySlug  string
	RightTypes    []domain.RightType
	ListingTypes  []domain.ListingType
	Chains        []domain.Blockchain
	Statuses      []domain.RightStatus
	CreatorID     *int64
	OwnerID       *int64
	VerifiedOnly  bool
	ListedOnly    bool
	PaysDividends *bool
	// MinPrice/MaxPrice are base-unit decimal strings; empty means unbounded
	MinPrice string
	MaxPrice string
	// ActiveAuction keeps only auctions whose end time is in the future
	ActiveAuction bool
	// Search matches case-insensitively against the title
	Search string
	Sort   RightSort
	Limit  int
	Offset uint64
}

// PlaceBidInput carries a new auction bid
type PlaceBidInput struct {
	RightID  string
	BidderID int64
	// Amount is the bid in base units
	Amount string
	// MinIncrementBps is the required step over the current highest bid, in basis points
	MinIncrementBps int64
}

// TradeInput executes a purchase or an auction settlement atomically
type TradeInput struct {
	RightID string
	BuyerID int64
	// Settlement is true when the trade settles an ended auction rather than a fixed listing
	Settlement bool
	// Price is the agreed amount in base units (listing price or winning bid)
	Price string
	// RoyaltyAmount is the creator's cut in base units ("0" when no royalty applies)
	RoyaltyAmount string
	// Breakdown is the fee breakdown snapshot stored on the ledger rows
	Breakdown datatypes.JSON
	// PurchaseRef is the ledger reference (ULID) for the purchase entry
	PurchaseRef string
	// RoyaltyRef is the ledger reference for the royalty entry; empty skips the entry
	RoyaltyRef string
}

// TradeResult reports the outcome of an executed trade
type TradeResult struct {
	Right           *schema.Right
	Seller          *schema.User
	Buyer           *schema.User
	PurchaseRef     string
	RoyaltyRef      string
	DeactivatedBids int64
}

// AppendTransactionInput appends a row to the money ledger
type AppendTransactionInput struct {
	Reference  string
	Type       domain.TxType
	RightID    *string
	FromUserID *int64
	ToUserID   *int64
	Amount     string
	Currency   string
	Breakdown  datatypes.JSON
	TxHash     *string
	Chain      domain.Blockchain
	Status     domain.TxStatus
}

// CreateStakeInput places a stake on a dividends-enabled right
type CreateStakeInput struct {
	UserID  int64
	RightID string
	Amount  string
}

// CreateDistributionInput schedules a revenue distribution for a period
type CreateDistributionInput struct {
	RightID      string
	PeriodStart  time.Time
	PeriodEnd    time.Time
	TotalRevenue string
}

// CreateSecureFileInput records an encrypted file's metadata
type CreateSecureFileInput struct {
	OwnerID          int64
	Filename         string
	DeclaredMimeType string
	DetectedMimeType string
	SizeBytes        int64
	SHA256           string
	StorageKey       string
	Nonce            string
	KeyID            string
}

// CreateNotificationInput creates an in-app notification
type CreateNotificationInput struct {
	UserID  int64
	Type    schema.NotificationType
	Title   string
	Body    string
	RightID *string
	ActorID *int64
}

// CreateWebhookClientInput registers a webhook consumer
type CreateWebhookClientInput struct {
	ClientID         string
	WebhookURL       string
	WebhookSecret    string
	EventFilters     datatypes.JSON
	IsActive         bool
	RetryMaxAttempts int
}

// DailySaleStat is one day of the admin overview sale trend
type DailySaleStat struct {
	Day    time.Time `gorm:"column:day"`
	Sales  int64     `gorm:"column:sales"`
	Volume string    `gorm:"column:volume"`
}

// MarketplaceOverview aggregates the admin dashboard numbers
type MarketplaceOverview struct {
	TotalUsers     int64
	TotalRights    int64
	RightsByType   map[string]int64
	RightsByStatus map[string]int64
	// VolumeByTxType maps ledger type to the confirmed base-unit sum
	VolumeByTxType map[string]string
	// SaleTrend covers the trailing seven days, oldest first
	SaleTrend []DailySaleStat
}

// CreatorVolume is one row of the top-creators report
type CreatorVolume struct {
	UserID     int64   `gorm:"column:user_id"`
	Address    string  `gorm:"column:address"`
	Username   *string `gorm:"column:username"`
	SalesCount int64   `gorm:"column:sales_count"`
	Volume     string  `gorm:"column:volume"`
}

// Store defines the interface for database operations
type Store interface {
	// UpsertUserByAddress creates the user for a wallet address or refreshes its last login
	UpsertUserByAddress(ctx context.Context, input UpsertUserInput) (*schema.User, error)
	// GetUserByID retrieves a user by primary key
	GetUserByID(ctx context.Context, id int64) (*schema.User, error)
	// GetUserByAddress retrieves a user by chain and normalized address
	GetUserByAddress(ctx context.Context, chain domain.Blockchain, address string) (*schema.User, error)
	// GetUserByUsername retrieves a user by unique username
	GetUserByUsername(ctx context.Context, username string) (*schema.User, error)
	// UpdateUserProfile updates the mutable profile fields and returns the fresh row
	UpdateUserProfile(ctx context.Context, userID int64, input UpdateUserProfileInput) (*schema.User, error)
	// SetUserBanned flips the ban flag for a user
	SetUserBanned(ctx context.Context, userID int64, banned bool) error

	// CreateRight creates a draft right
	CreateRight(ctx context.Context, input CreateRightInput) (*schema.Right, error)
	// GetRightByID retrieves a right with its associations, optionally incrementing
	// the view counter atomically in the same statement
	GetRightByID(ctx context.Context, id string, incrementViews bool) (*schema.Right, error)
	// GetRightBySlug retrieves a right by its unique slug
	GetRightBySlug(ctx context.Context, slug string) (*schema.Right, error)
	// GetRightByNFTRef retrieves a right by its canonical token reference
	GetRightByNFTRef(ctx context.Context, ref string) (*schema.Right, error)
	// GetRightsByFilter retrieves rights matching the filter plus the total count
	GetRightsByFilter(ctx context.Context, filter RightQueryFilter) ([]*schema.Right, uint64, error)
	// UpdateRight updates the owner-mutable fields and returns the fresh row
	UpdateRight(ctx context.Context, id string, input UpdateRightInput) (*schema.Right, error)
	// MarkRightMinted records token identifiers and activates the listing
	MarkRightMinted(ctx context.Context, input MarkRightMintedInput) error
	// UpdateRightStatus transitions the lifecycle status
	UpdateRightStatus(ctx context.Context, id string, status domain.RightStatus) error
	// SetRightPreviewURL stores the generated preview URL
	SetRightPreviewURL(ctx context.Context, id string, previewURL string) error
	// SetRightVerification records an admin verification decision
	SetRightVerification(ctx context.Context, input SetRightVerificationInput) error
	// DeleteDraftRight deletes a right while it is still a draft owned by the caller
	DeleteDraftRight(ctx context.Context, id string, ownerID int64) error
	// TransferRightByRef reconciles ownership after an on-chain transfer and unlists the right
	TransferRightByRef(ctx context.Context, input TransferRightByRefInput) (*schema.Right, error)

	// ToggleFavorite flips a user's favorite on a right, maintaining the counter atomically;
	// returns whether the right is favorited after the call
	ToggleFavorite(ctx context.Context, userID int64, rightID string) (bool, error)
	// IsFavorited checks whether a user favorited a right
	IsFavorited(ctx context.Context, userID int64, rightID string) (bool, error)
	// ListUserFavorites retrieves the rights a user favorited, newest favorite first
	ListUserFavorites(ctx context.Context, userID int64, limit int, offset uint64) ([]*schema.Right, uint64, error)

	// ToggleFollow flips the follow edge, maintaining both counters; self-follow is rejected;
	// returns whether the follower follows the followee after the call
	ToggleFollow(ctx context.Context, followerID, followeeID int64) (bool, error)
	// ListFollowers retrieves the users following a user
	ListFollowers(ctx context.Context, userID int64, limit int, offset uint64) ([]*schema.User, uint64, error)
	// ListFollowing retrieves the users a user follows
	ListFollowing(ctx context.Context, userID int64, limit int, offset uint64) ([]*schema.User, uint64, error)
	// GetFollowerIDs retrieves all follower IDs of a user, used for notification fanout
	GetFollowerIDs(ctx context.Context, userID int64) ([]int64, error)

	// PlaceBid validates and inserts a bid under a row lock on the right,
	// flagging the previous highest bid as outbid
	PlaceBid(ctx context.Context, input PlaceBidInput) (*schema.Bid, error)
	// GetHighestActiveBid retrieves the current winning bid of an auction
	GetHighestActiveBid(ctx context.Context, rightID string) (*schema.Bid, error)
	// ListBidsByRight retrieves an auction's bids, newest first
	ListBidsByRight(ctx context.Context, rightID string, limit int, offset uint64) ([]*schema.Bid, uint64, error)
	// DeactivateBids deactivates all bids of a right in one statement
	DeactivateBids(ctx context.Context, rightID string) (int64, error)
	// RevertAuctionToFixed turns an ended auction with no bids back into a fixed listing
	RevertAuctionToFixed(ctx context.Context, rightID string) error
	// GetEndedAuctions retrieves active auction rights whose end time has passed
	GetEndedAuctions(ctx context.Context, asOf time.Time, limit int) ([]*schema.Right, error)

	// ExecuteTrade atomically transfers ownership, appends the purchase and royalty
	// ledger entries, and deactivates the right's bids
	ExecuteTrade(ctx context.Context, input TradeInput) (*TradeResult, error)

	// AppendTransaction appends a ledger row
	AppendTransaction(ctx context.Context, input AppendTransactionInput) (*schema.Transaction, error)
	// UpdateTransactionStatus transitions a pending ledger row by its reference
	UpdateTransactionStatus(ctx context.Context, reference string, status domain.TxStatus, txHash *string) error
	// ListTransactionsByRight retrieves a right's ledger, newest first
	ListTransactionsByRight(ctx context.Context, rightID string, limit int, offset uint64) ([]*schema.Transaction, uint64, error)
	// ListTransactionsByUser retrieves the ledger rows a user participated in, newest first
	ListTransactionsByUser(ctx context.Context, userID int64, limit int, offset uint64) ([]*schema.Transaction, uint64, error)

	// CreateStake stakes on a dividends-enabled right
	CreateStake(ctx context.Context, input CreateStakeInput) (*schema.Stake, error)
	// ReleaseStake soft-releases a user's active stake on a right
	ReleaseStake(ctx context.Context, userID int64, rightID string) (*schema.Stake, error)
	// GetActiveStakesByRight retrieves all active stakes of a right
	GetActiveStakesByRight(ctx context.Context, rightID string) ([]*schema.Stake, error)
	// GetActiveStakeTotal sums the active staked amount of a right in base units
	GetActiveStakeTotal(ctx context.Context, rightID string) (string, error)

	// CreateScheduledDistribution schedules a distribution; duplicates for the same period are ignored
	CreateScheduledDistribution(ctx context.Context, input CreateDistributionInput) (*schema.RevenueDistribution, error)
	// GetDistributionByID retrieves a distribution by its primary key
	GetDistributionByID(ctx context.Context, id int64) (*schema.RevenueDistribution, error)
	// GetDueDistributions retrieves scheduled distributions whose period has closed
	GetDueDistributions(ctx context.Context, asOf time.Time, limit int) ([]*schema.RevenueDistribution, error)
	// UpdateDistributionStatus transitions a distribution's lifecycle status
	UpdateDistributionStatus(ctx context.Context, id int64, status schema.DistributionStatus) error
	// CompleteDistribution stores payout and hash snapshots and marks the distribution completed
	CompleteDistribution(ctx context.Context, id int64, payouts datatypes.JSON, txHashes datatypes.JSON) error
	// ListDistributionsByRight retrieves a right's distributions, newest period first
	ListDistributionsByRight(ctx context.Context, rightID string, limit int, offset uint64) ([]*schema.RevenueDistribution, uint64, error)
	// GetRightRevenueInPeriod sums the confirmed purchase revenue of a right over a period
	GetRightRevenueInPeriod(ctx context.Context, rightID string, from, to time.Time) (string, error)

	// CreateSecureFile records an encrypted file's metadata
	CreateSecureFile(ctx context.Context, input CreateSecureFileInput) (*schema.SecureFile, error)
	// GetSecureFileByID retrieves a secure file by primary key
	GetSecureFileByID(ctx context.Context, id int64) (*schema.SecureFile, error)
	// ListSecureFilesByOwner retrieves a user's secure files, newest first
	ListSecureFilesByOwner(ctx context.Context, ownerID int64, limit int, offset uint64) ([]*schema.SecureFile, uint64, error)

	// CreateNotifications inserts notifications in one batch
	CreateNotifications(ctx context.Context, inputs []CreateNotificationInput) error
	// ListNotifications retrieves a user's notifications, newest first
	ListNotifications(ctx context.Context, userID int64, unreadOnly bool, limit int, offset uint64) ([]*schema.Notification, uint64, error)
	// MarkNotificationsRead marks the given notifications read; empty ids marks all
	MarkNotificationsRead(ctx context.Context, userID int64, ids []int64) (int64, error)

	// ListCategories retrieves categories ordered by sort order
	ListCategories(ctx context.Context, includeInactive bool) ([]*schema.Category, error)
	// GetCategoryByID retrieves a category by primary key
	GetCategoryByID(ctx context.Context, id int64) (*schema.Category, error)
	// GetCategoryBySlug retrieves a category by slug
	GetCategoryBySlug(ctx context.Context, slug string) (*schema.Category, error)

	// SetKeyValue stores a key-value pair (upsert)
	SetKeyValue(ctx context.Context, key string, value string) error
	// GetKeyValue retrieves a value by key; missing keys return ""
	GetKeyValue(ctx context.Context, key string) (string, error)
	// ConsumeKeyValue atomically deletes a key and returns its value; missing keys return ""
	ConsumeKeyValue(ctx context.Context, key string) (string, error)
	// GetAllKeyValuesByPrefix retrieves all key-value pairs with a specific prefix
	GetAllKeyValuesByPrefix(ctx context.Context, prefix string) (map[string]string, error)
	// GetBlockCursor retrieves the last processed block number for a chain
	GetBlockCursor(ctx context.Context, chain string) (uint64, error)
	// SetBlockCursor stores the last processed block number for a chain
	SetBlockCursor(ctx context.Context, chain string, blockNumber uint64) error

	// GetActiveWebhookClientsByEventType retrieves active webhook clients matching an event type
	GetActiveWebhookClientsByEventType(ctx context.Context, eventType string) ([]*schema.WebhookClient, error)
	// GetWebhookClientByID retrieves a webhook client by client ID
	GetWebhookClientByID(ctx context.Context, clientID string) (*schema.WebhookClient, error)
	// CreateWebhookClient registers a webhook consumer
	CreateWebhookClient(ctx context.Context, input CreateWebhookClientInput) (*schema.WebhookClient, error)
	// ListWebhookClients retrieves all registered webhook clients
	ListWebhookClients(ctx context.Context) ([]*schema.WebhookClient, error)
	// DeleteWebhookClient removes a webhook client by client ID
	DeleteWebhookClient(ctx context.Context, clientID string) error
	// CreateWebhookDelivery creates a delivery audit row
	CreateWebhookDelivery(ctx context.Context, delivery *schema.WebhookDelivery) error
	// UpdateWebhookDeliveryStatus updates the status and result of a webhook delivery
	UpdateWebhookDeliveryStatus(ctx context.Context, deliveryID uint64, status schema.WebhookDeliveryStatus, attempts int, responseStatus *int, responseBody, errorMessage string) error

	// GetMarketplaceOverview aggregates the admin dashboard numbers
	GetMarketplaceOverview(ctx context.Context) (*MarketplaceOverview, error)
	// GetTopCreators reports creators by confirmed sale volume
	GetTopCreators(ctx context.Context, limit int) ([]*CreatorVolume, error)
	// GetVerificationQueue retrieves rights awaiting verification review, oldest first
	GetVerificationQueue(ctx context.Context, limit int, offset uint64) ([]*schema.Right, uint64, error)
}
