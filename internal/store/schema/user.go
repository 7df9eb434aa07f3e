package schema

import (
	"time"

	"github.com/dright/marketplace/internal/domain"
)

// User represents the users table - wallet-backed accounts on the marketplace
type User struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Address is the normalized wallet address (EIP-55 for Ethereum, shard.realm.num for Hedera)
	Address string `gorm:"column:address;not null;type:text;uniqueIndex:idx_users_chain_address,priority:2"`
	// Chain identifies which blockchain the address belongs to
	Chain domain.Blockchain `gorm:"column:chain;not null;type:text;uniqueIndex:idx_users_chain_address,priority:1"`
	// Username is the user-chosen display handle (nil until the profile is completed)
	Username *string `gorm:"column:username;uniqueIndex;type:text"`
	// Bio is the free-form profile description
	Bio *string `gorm:"column:bio;type:text"`
	// AvatarURL points at the user's avatar image
	AvatarURL *string `gorm:"column:avatar_url;type:text"`
	// IsAdmin grants access to the admin API surface
	IsAdmin bool `gorm:"column:is_admin;not null;default:false"`
	// IsBanned blocks the address from authenticating and trading
	IsBanned bool `gorm:"column:is_banned;not null;default:false"`
	// FollowersCount is maintained atomically alongside follow toggles
	FollowersCount int64 `gorm:"column:followers_count;not null;default:0"`
	// FollowingCount is maintained atomically alongside follow toggles
	FollowingCount int64 `gorm:"column:following_count;not null;default:0"`
	// LastLoginAt records the most recent successful wallet login
	LastLoginAt *time.Time `gorm:"column:last_login_at;type:timestamptz"`
	// CreatedAt is the timestamp when this user was first seen
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this user was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}
