package dto

import (
	"encoding/json"
	"time"

	"github.com/dright/marketplace/internal/store/schema"
)

// DistributionResponse represents a revenue distribution round
type DistributionResponse struct {
	ID           int64                     `json:"id"`
	RightID      string                    `json:"right_id"`
	PeriodStart  time.Time                 `json:"period_start"`
	PeriodEnd    time.Time                 `json:"period_end"`
	TotalRevenue string                    `json:"total_revenue"`
	Payouts      json.RawMessage           `json:"payouts,omitempty"`
	Status       schema.DistributionStatus `json:"status"`
	TxHashes     json.RawMessage           `json:"tx_hashes,omitempty"`
	CreatedAt    time.Time                 `json:"created_at"`
	UpdatedAt    time.Time                 `json:"updated_at"`
}

// DistributionListResponse represents a paginated list of distributions
type DistributionListResponse struct {
	Distributions []DistributionResponse `json:"items"`
	Offset        *uint64                `json:"offset,omitempty"`
	Total         uint64                 `json:"total"`
}

// MapDistributionToDTO maps a schema.RevenueDistribution to DistributionResponse
func MapDistributionToDTO(d *schema.RevenueDistribution) *DistributionResponse {
	if d == nil {
		return nil
	}
	return &DistributionResponse{
		ID:           d.ID,
		RightID:      d.RightID,
		PeriodStart:  d.PeriodStart,
		PeriodEnd:    d.PeriodEnd,
		TotalRevenue: d.TotalRevenue,
		Payouts:      json.RawMessage(d.Payouts),
		Status:       d.Status,
		TxHashes:     json.RawMessage(d.TxHashes),
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// MapDistributionsToDTO maps a slice of distributions to a paginated list response
func MapDistributionsToDTO(ds []*schema.RevenueDistribution, offset *uint64, total uint64) *DistributionListResponse {
	items := make([]DistributionResponse, 0, len(ds))
	for _, d := range ds {
		if mapped := MapDistributionToDTO(d); mapped != nil {
			items = append(items, *mapped)
		}
	}
	return &DistributionListResponse{
		Distributions: items,
		Offset:        offset,
		Total:         total,
	}
}
