package schema

import (
	"time"
)

// Bid represents the bids table - auction bids placed on rights
type Bid struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// RightID references the right being bid on
	RightID string `gorm:"column:right_id;not null;type:uuid;index:idx_bids_right_active,priority:1"`
	// BidderID references the bidding user
	BidderID int64 `gorm:"column:bidder_id;not null;index"`
	// Amount is the bid amount in base units
	Amount string `gorm:"column:amount;not null;type:numeric(78,0)"`
	// IsActive is false once the bid is outbid, refunded, or the auction settles
	IsActive bool `gorm:"column:is_active;not null;default:true;index:idx_bids_right_active,priority:2"`
	// IsOutbid marks bids that were surpassed by a higher one
	IsOutbid bool `gorm:"column:is_outbid;not null;default:false"`
	// CreatedAt is the timestamp when this bid was placed
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this bid was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	Right  Right `gorm:"foreignKey:RightID;constraint:OnDelete:CASCADE"`
	Bidder User  `gorm:"foreignKey:BidderID"`
}

// TableName specifies the table name for the Bid model
func (Bid) TableName() string {
	return "bids"
}
