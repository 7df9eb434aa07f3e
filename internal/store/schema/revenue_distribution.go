package schema

import (
	"time"

	"gorm.io/datatypes"
)

// DistributionStatus is the lifecycle state of a revenue distribution
type DistributionStatus string

const (
	// DistributionStatusScheduled means the distribution is waiting for its period to close
	DistributionStatusScheduled DistributionStatus = "scheduled"
	// DistributionStatusRunning means the payout workflow is executing
	DistributionStatusRunning DistributionStatus = "running"
	// DistributionStatusCompleted means all payouts settled
	DistributionStatusCompleted DistributionStatus = "completed"
	// DistributionStatusFailed means the payout workflow gave up
	DistributionStatusFailed DistributionStatus = "failed"
)

// RevenueDistribution represents the revenue_distributions table - periodic dividend
// payouts of a right's revenue to its active stakers
type RevenueDistribution struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// RightID references the right whose revenue is distributed
	RightID string `gorm:"column:right_id;not null;type:uuid;uniqueIndex:idx_distributions_right_period,priority:1"`
	// PeriodStart is the inclusive start of the revenue period
	PeriodStart time.Time `gorm:"column:period_start;not null;type:timestamptz;uniqueIndex:idx_distributions_right_period,priority:2"`
	// PeriodEnd is the exclusive end of the revenue period
	PeriodEnd time.Time `gorm:"column:period_end;not null;type:timestamptz"`
	// TotalRevenue is the revenue accrued over the period in base units
	TotalRevenue string `gorm:"column:total_revenue;not null;type:numeric(78,0)"`
	// Payouts is the per-stake payout snapshot written when the distribution runs
	Payouts datatypes.JSON `gorm:"column:payouts;type:jsonb"`
	// Status tracks the distribution lifecycle (scheduled, running, completed, failed)
	Status DistributionStatus `gorm:"column:status;not null;default:scheduled;type:text;index"`
	// TxHashes holds the on-chain transfer hashes of the payouts
	TxHashes datatypes.JSON `gorm:"column:tx_hashes;type:jsonb"`
	// CreatedAt is the timestamp when this distribution was scheduled
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this distribution was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	Right Right `gorm:"foreignKey:RightID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the RevenueDistribution model
func (RevenueDistribution) TableName() string {
	return "revenue_distributions"
}
