package dto

import (
	"time"

	"github.com/dright/marketplace/internal/store"
)

// SaleTrendPoint is one day of the overview's sale trend
type SaleTrendPoint struct {
	Day    time.Time `json:"day"`
	Sales  int64     `json:"sales"`
	Volume string    `json:"volume"`
}

// OverviewResponse represents the marketplace-wide aggregate report
type OverviewResponse struct {
	TotalUsers     int64             `json:"total_users"`
	TotalRights    int64             `json:"total_rights"`
	RightsByType   map[string]int64  `json:"rights_by_type"`
	RightsByStatus map[string]int64  `json:"rights_by_status"`
	VolumeByTxType map[string]string `json:"volume_by_tx_type"`
	SaleTrend      []SaleTrendPoint  `json:"sale_trend"`
}

// TopCreatorResponse represents one creator in the volume leaderboard
type TopCreatorResponse struct {
	UserID     int64   `json:"user_id"`
	Address    string  `json:"address"`
	Username   *string `json:"username,omitempty"`
	SalesCount int64   `json:"sales_count"`
	Volume     string  `json:"volume"`
}

// TopCreatorsResponse represents the volume leaderboard
type TopCreatorsResponse struct {
	Creators []TopCreatorResponse `json:"items"`
}

// MapOverviewToDTO maps a store.MarketplaceOverview to OverviewResponse
func MapOverviewToDTO(overview *store.MarketplaceOverview) *OverviewResponse {
	if overview == nil {
		return nil
	}

	trend := make([]SaleTrendPoint, 0, len(overview.SaleTrend))
	for _, point := range overview.SaleTrend {
		trend = append(trend, SaleTrendPoint{
			Day:    point.Day,
			Sales:  point.Sales,
			Volume: point.Volume,
		})
	}

	return &OverviewResponse{
		TotalUsers:     overview.TotalUsers,
		TotalRights:    overview.TotalRights,
		RightsByType:   overview.RightsByType,
		RightsByStatus: overview.RightsByStatus,
		VolumeByTxType: overview.VolumeByTxType,
		SaleTrend:      trend,
	}
}

// MapTopCreatorsToDTO maps store.CreatorVolume rows to the leaderboard response
func MapTopCreatorsToDTO(creators []*store.CreatorVolume) *TopCreatorsResponse {
	items := make([]TopCreatorResponse, 0, len(creators))
	for _, creator := range creators {
		if creator == nil {
			continue
		}
		items = append(items, TopCreatorResponse{
			UserID:     creator.UserID,
			Address:    creator.Address,
			Username:   creator.Username,
			SalesCount: creator.SalesCount,
			Volume:     creator.Volume,
		})
	}
	return &TopCreatorsResponse{Creators: items}
}
