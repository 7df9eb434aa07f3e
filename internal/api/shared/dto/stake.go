package dto

import (
	"time"

	"github.com/dright/marketplace/internal/store/schema"
)

// StakeResponse represents a stake on a dividends-enabled right
type StakeResponse struct {
	ID         int64      `json:"id"`
	RightID    string     `json:"right_id"`
	UserID     int64      `json:"user_id"`
	Amount     string     `json:"amount"`
	IsActive   bool       `json:"is_active"`
	StakedAt   time.Time  `json:"staked_at"`
	UnstakedAt *time.Time `json:"unstaked_at,omitempty"`
}

// MapStakeToDTO maps a schema.Stake to StakeResponse
func MapStakeToDTO(stake *schema.Stake) *StakeResponse {
	if stake == nil {
		return nil
	}
	return &StakeResponse{
		ID:         stake.ID,
		RightID:    stake.RightID,
		UserID:     stake.UserID,
		Amount:     stake.Amount,
		IsActive:   stake.IsActive,
		StakedAt:   stake.StakedAt,
		UnstakedAt: stake.UnstakedAt,
	}
}
