package schema

import (
	"time"
)

// Stake represents the stakes table - user stakes on dividends-enabled rights
type Stake struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// UserID references the staking user
	UserID int64 `gorm:"column:user_id;not null;index:idx_stakes_user_right,priority:1"`
	// RightID references the staked right
	RightID string `gorm:"column:right_id;not null;type:uuid;index:idx_stakes_user_right,priority:2;index:idx_stakes_right_active,priority:1"`
	// Amount is the staked value in base units
	Amount string `gorm:"column:amount;not null;type:numeric(78,0)"`
	// IsActive is false once the stake is withdrawn; the row is kept for history
	IsActive bool `gorm:"column:is_active;not null;default:true;index:idx_stakes_right_active,priority:2"`
	// StakedAt is the timestamp when the stake was placed
	StakedAt time.Time `gorm:"column:staked_at;not null;default:now();type:timestamptz"`
	// UnstakedAt is the timestamp when the stake was withdrawn (nil while active)
	UnstakedAt *time.Time `gorm:"column:unstaked_at;type:timestamptz"`

	// Associations
	User  User  `gorm:"foreignKey:UserID"`
	Right Right `gorm:"foreignKey:RightID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Stake model
func (Stake) TableName() string {
	return "stakes"
}
