package schema

import (
	"time"
)

// Favorite represents the favorites table - (user, right) bookmarks.
// Toggling a favorite off deletes the row.
type Favorite struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// UserID references the favoriting user
	UserID int64 `gorm:"column:user_id;not null;uniqueIndex:idx_favorites_user_right,priority:1"`
	// RightID references the favorited right
	RightID string `gorm:"column:right_id;not null;type:uuid;uniqueIndex:idx_favorites_user_right,priority:2;index"`
	// CreatedAt is the timestamp when the favorite was added
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`

	// Associations
	User  User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Right Right `gorm:"foreignKey:RightID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Favorite model
func (Favorite) TableName() string {
	return "favorites"
}
