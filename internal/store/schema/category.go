package schema

import (
	"time"
)

// Category represents the categories table - curated browse groupings for rights
type Category struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Slug is the URL-safe unique identifier (e.g. "music", "film")
	Slug string `gorm:"column:slug;not null;uniqueIndex;type:text"`
	// Name is the human-readable category name
	Name string `gorm:"column:name;not null;type:text"`
	// Description explains what belongs in this category
	Description string `gorm:"column:description;type:text"`
	// IsActive hides the category from browse surfaces without deleting it
	IsActive bool `gorm:"column:is_active;not null;default:true"`
	// SortOrder controls display ordering (ascending)
	SortOrder int `gorm:"column:sort_order;not null;default:0"`
	// CreatedAt is the timestamp when this category was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Category model
func (Category) TableName() string {
	return "categories"
}
