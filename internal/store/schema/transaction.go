package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/dright/marketplace/internal/domain"
)

// Transaction represents the transactions table - the append-only money ledger.
// Confirmed rows are never updated beyond the pending -> confirmed/failed transition.
type Transaction struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Reference is the ULID assigned when the entry is appended, used for status updates
	Reference string `gorm:"column:reference;not null;uniqueIndex;type:text"`
	// Type identifies the ledger entry kind (mint, purchase, sale, bid_refund, royalty, stake, unstake, dividend)
	Type domain.TxType `gorm:"column:type;not null;type:text;index"`
	// RightID references the right this entry concerns (nil for entries not tied to a right)
	RightID *string `gorm:"column:right_id;type:uuid;index"`
	// FromUserID is the paying side (nil for mints)
	FromUserID *int64 `gorm:"column:from_user_id;index"`
	// ToUserID is the receiving side (nil for burns/fees)
	ToUserID *int64 `gorm:"column:to_user_id;index"`
	// Amount is the transferred value in base units
	Amount string `gorm:"column:amount;not null;type:numeric(78,0)"`
	// Currency is the display symbol for the amount (HBAR, ETH)
	Currency string `gorm:"column:currency;not null;type:text"`
	// Breakdown is the fee breakdown snapshot at execution time (price, fee, royalty, net)
	Breakdown datatypes.JSON `gorm:"column:breakdown;type:jsonb"`
	// TxHash is the on-chain transaction hash (nil until submitted)
	TxHash *string `gorm:"column:tx_hash;type:text;index"`
	// Chain identifies the blockchain the entry settles on
	Chain domain.Blockchain `gorm:"column:chain;not null;type:text"`
	// Status tracks settlement (pending, confirmed, failed)
	Status domain.TxStatus `gorm:"column:status;not null;default:pending;type:text;index"`
	// CreatedAt is the timestamp when this entry was appended
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz;index"`
	// ConfirmedAt is the timestamp when the entry reached a terminal status
	ConfirmedAt *time.Time `gorm:"column:confirmed_at;type:timestamptz"`

	// Associations
	Right    *Right `gorm:"foreignKey:RightID;constraint:OnDelete:SET NULL"`
	FromUser *User  `gorm:"foreignKey:FromUserID"`
	ToUser   *User  `gorm:"foreignKey:ToUserID"`
}

// TableName specifies the table name for the Transaction model
func (Transaction) TableName() string {
	return "transactions"
}
