package schema

import (
	"time"

	"github.com/dright/marketplace/internal/domain"
)

// Right represents the rights table - the primary entity for tokenized rights listed on the marketplace
type Right struct {
	// ID is the right's UUID, assigned at creation time
	ID string `gorm:"column:id;primaryKey;type:uuid"`
	// Slug is the URL-safe unique identifier derived from the title
	Slug string `gorm:"column:slug;not null;uniqueIndex;type:text"`
	// Title is the listing title
	Title string `gorm:"column:title;not null;type:text"`
	// Description is the free-form listing description
	Description string `gorm:"column:description;type:text"`
	// RightType identifies what kind of right is being sold (copyright, royalty, access, ownership, license)
	RightType domain.RightType `gorm:"column:right_type;not null;type:text;index"`
	// CategoryID references the browse category (nil for uncategorized rights)
	CategoryID *int64 `gorm:"column:category_id;index"`
	// CreatorID references the user who created the right (royalty recipient)
	CreatorID int64 `gorm:"column:creator_id;not null;index"`
	// OwnerID references the current owner
	OwnerID int64 `gorm:"column:owner_id;not null;index"`
	// Chain identifies the blockchain the right is minted on
	Chain domain.Blockchain `gorm:"column:chain;not null;type:text;index"`
	// Price is the listing price in base units (tinybars/wei, up to 78 digits)
	Price string `gorm:"column:price;not null;type:numeric(78,0)"`
	// Currency is the display symbol for the price (HBAR, ETH)
	Currency string `gorm:"column:currency;not null;type:text"`
	// ListingType is fixed or auction
	ListingType domain.ListingType `gorm:"column:listing_type;not null;type:text;index:idx_rights_auction_sweep,priority:1"`
	// Status tracks the listing lifecycle (draft, minting, active, failed)
	Status domain.RightStatus `gorm:"column:status;not null;default:draft;type:text;index;index:idx_rights_auction_sweep,priority:2"`
	// IsListed is true while the right is purchasable; cleared on sale and external transfer
	IsListed bool `gorm:"column:is_listed;not null;default:false;index"`
	// AuctionEnd is the auction close time (nil for fixed listings)
	AuctionEnd *time.Time `gorm:"column:auction_end;type:timestamptz;index:idx_rights_auction_sweep,priority:3"`
	// PaysDividends marks rights whose revenue is shared with stakers
	PaysDividends bool `gorm:"column:pays_dividends;not null;default:false"`
	// RoyaltyBps is the creator royalty on resales, in basis points
	RoyaltyBps int32 `gorm:"column:royalty_bps;not null;default:0"`
	// VerificationStatus tracks the admin review state (unverified, pending, verified, rejected)
	VerificationStatus domain.VerificationStatus `gorm:"column:verification_status;not null;default:unverified;type:text;index"`
	// VerificationReviewer records which admin decided the verification
	VerificationReviewer *string `gorm:"column:verification_reviewer;type:text"`
	// VerificationNotes holds the reviewer's notes
	VerificationNotes *string `gorm:"column:verification_notes;type:text"`
	// NFTRef is the canonical token identifier in format chain:contract:serial (nil until minted)
	NFTRef *string `gorm:"column:nft_ref;uniqueIndex;type:text"`
	// TokenID is the Hedera token ID (e.g. "0.0.1234", nil for Ethereum rights)
	TokenID *string `gorm:"column:token_id;type:text"`
	// TokenSerial is the Hedera NFT serial number within the collection token
	TokenSerial *int64 `gorm:"column:token_serial"`
	// ContractAddress is the Ethereum contract the right is minted under (nil for Hedera rights)
	ContractAddress *string `gorm:"column:contract_address;type:text"`
	// TokenNumber is the Ethereum token ID within the contract (string to support very large numbers)
	TokenNumber *string `gorm:"column:token_number;type:text"`
	// MetadataURI is the ipfs:// URI of the pinned metadata document
	MetadataURI *string `gorm:"column:metadata_uri;type:text"`
	// MetadataHash is the SHA-256 of the canonicalized metadata JSON
	MetadataHash *string `gorm:"column:metadata_hash;type:text"`
	// PreviewURL is the generated preview image/stream URL
	PreviewURL *string `gorm:"column:preview_url;type:text"`
	// LegalFileID references the encrypted legal document backing this right
	LegalFileID *int64 `gorm:"column:legal_file_id"`
	// ViewsCount is incremented atomically on detail reads
	ViewsCount int64 `gorm:"column:views_count;not null;default:0"`
	// FavoritesCount is maintained atomically alongside favorite toggles
	FavoritesCount int64 `gorm:"column:favorites_count;not null;default:0"`
	// MintTxHash is the on-chain transaction hash of the mint (nil until minted)
	MintTxHash *string `gorm:"column:mint_tx_hash;type:text"`
	// CreatedAt is the timestamp when this right was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this right was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	Category  *Category  `gorm:"foreignKey:CategoryID"`
	Creator   User       `gorm:"foreignKey:CreatorID"`
	Owner     User       `gorm:"foreignKey:OwnerID"`
	LegalFile *SecureFile `gorm:"foreignKey:LegalFileID"`
	Bids      []Bid      `gorm:"foreignKey:RightID;constraint:OnDelete:CASCADE"`
	Stakes    []Stake    `gorm:"foreignKey:RightID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Right model
func (Right) TableName() string {
	return "rights"
}
