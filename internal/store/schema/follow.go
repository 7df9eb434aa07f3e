package schema

import (
	"time"
)

// Follow represents the follows table - (follower, followee) social graph edges
type Follow struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// FollowerID references the user doing the following
	FollowerID int64 `gorm:"column:follower_id;not null;uniqueIndex:idx_follows_follower_followee,priority:1"`
	// FolloweeID references the user being followed
	FolloweeID int64 `gorm:"column:followee_id;not null;uniqueIndex:idx_follows_follower_followee,priority:2;index"`
	// CreatedAt is the timestamp when the follow was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`

	// Associations
	Follower User `gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE"`
	Followee User `gorm:"foreignKey:FolloweeID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Follow model
func (Follow) TableName() string {
	return "follows"
}
