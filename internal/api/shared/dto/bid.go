package dto

import (
	"time"

	"github.com/dright/marketplace/internal/store/schema"
)

// BidResponse represents an auction bid
type BidResponse struct {
	ID        int64     `json:"id"`
	RightID   string    `json:"right_id"`
	Amount    string    `json:"amount"`
	IsActive  bool      `json:"is_active"`
	IsOutbid  bool      `json:"is_outbid"`
	CreatedAt time.Time `json:"created_at"`

	// Bidder is populated when preloaded
	Bidder *UserResponse `json:"bidder,omitempty"`
}

// BidListResponse represents a paginated list of bids
type BidListResponse struct {
	Bids   []BidResponse `json:"items"`
	Offset *uint64       `json:"offset,omitempty"`
	Total  uint64        `json:"total"`
}

// MapBidToDTO maps a schema.Bid to BidResponse
func MapBidToDTO(bid *schema.Bid) *BidResponse {
	if bid == nil {
		return nil
	}
	resp := &BidResponse{
		ID:        bid.ID,
		RightID:   bid.RightID,
		Amount:    bid.Amount,
		IsActive:  bid.IsActive,
		IsOutbid:  bid.IsOutbid,
		CreatedAt: bid.CreatedAt,
	}
	if bid.Bidder.ID != 0 {
		resp.Bidder = MapUserToDTO(&bid.Bidder)
	}
	return resp
}

// MapBidsToDTO maps a slice of bids to a paginated list response
func MapBidsToDTO(bids []*schema.Bid, offset *uint64, total uint64) *BidListResponse {
	items := make([]BidResponse, 0, len(bids))
	for _, bid := range bids {
		if mapped := MapBidToDTO(bid); mapped != nil {
			items = append(items, *mapped)
		}
	}
	return &BidListResponse{
		Bids:   items,
		Offset: offset,
		Total:  total,
	}
}
