package schema

import (
	"time"
)

// NotificationType identifies what a notification is about
type NotificationType string

const (
	// NotificationTypeRightSold tells a seller their right was purchased
	NotificationTypeRightSold NotificationType = "right_sold"
	// NotificationTypeRightListed tells followers a creator listed a new right
	NotificationTypeRightListed NotificationType = "right_listed"
	// NotificationTypeRightVerified tells a creator the verification decision
	NotificationTypeRightVerified NotificationType = "right_verified"
	// NotificationTypeBidPlaced tells an owner a bid arrived on their auction
	NotificationTypeBidPlaced NotificationType = "bid_placed"
	// NotificationTypeOutbid tells a bidder their bid was surpassed
	NotificationTypeOutbid NotificationType = "outbid"
	// NotificationTypeAuctionWon tells the winning bidder the auction settled
	NotificationTypeAuctionWon NotificationType = "auction_won"
	// NotificationTypeDividendPaid tells a staker a distribution paid out
	NotificationTypeDividendPaid NotificationType = "dividend_paid"
	// NotificationTypeNewFollower tells a user someone followed them
	NotificationTypeNewFollower NotificationType = "new_follower"
)

// Notification represents the notifications table - per-user in-app notifications
type Notification struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// UserID references the recipient
	UserID int64 `gorm:"column:user_id;not null;index:idx_notifications_user_read,priority:1"`
	// Type identifies what the notification is about
	Type NotificationType `gorm:"column:type;not null;type:text"`
	// Title is the short headline
	Title string `gorm:"column:title;not null;type:text"`
	// Body is the notification text
	Body string `gorm:"column:body;type:text"`
	// RightID references the related right, if any
	RightID *string `gorm:"column:right_id;type:uuid"`
	// ActorID references the related user (buyer, bidder, follower), if any
	ActorID *int64 `gorm:"column:actor_id"`
	// IsRead is set once the recipient reads the notification
	IsRead bool `gorm:"column:is_read;not null;default:false;index:idx_notifications_user_read,priority:2"`
	// CreatedAt is the timestamp when the notification was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`

	// Associations
	User  User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Right *Right `gorm:"foreignKey:RightID;constraint:OnDelete:CASCADE"`
	Actor *User  `gorm:"foreignKey:ActorID"`
}

// TableName specifies the table name for the Notification model
func (Notification) TableName() string {
	return "notifications"
}
