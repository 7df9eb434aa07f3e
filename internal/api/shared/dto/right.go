package dto

import (
	"time"

	"github.com/dright/marketplace/internal/domain"
	"github.com/dright/marketplace/internal/store/schema"
)

// RightResponse represents a tokenized right with optional associations
type RightResponse struct {
	ID                 string                    `json:"id"`
	Slug               string                    `json:"slug"`
	Title              string                    `json:"title"`
	Description        string                    `json:"description"`
	RightType          domain.RightType          `json:"right_type"`
	Chain              domain.Blockchain         `json:"chain"`
	Price              string                    `json:"price"`
	Currency           string                    `json:"currency"`
	ListingType        domain.ListingType        `json:"listing_type"`
	Status             domain.RightStatus        `json:"status"`
	IsListed           bool                      `json:"is_listed"`
	AuctionEnd         *time.Time                `json:"auction_end,omitempty"`
	PaysDividends      bool                      `json:"pays_dividends"`
	RoyaltyBps         int32                     `json:"royalty_bps"`
	VerificationStatus domain.VerificationStatus `json:"verification_status"`
	VerificationNotes  *string                   `json:"verification_notes,omitempty"`
	NFTRef             *string                   `json:"nft_ref,omitempty"`
	TokenID            *string                   `json:"token_id,omitempty"`
	TokenSerial        *int64                    `json:"token_serial,omitempty"`
	ContractAddress    *string                   `json:"contract_address,omitempty"`
	TokenNumber        *string                   `json:"token_number,omitempty"`
	MetadataURI        *string                   `json:"metadata_uri,omitempty"`
	PreviewURL         *string                   `json:"preview_url,omitempty"`
	ImageURL           string                    `json:"image_url,omitempty"`
	ImageFallbacks     []string                  `json:"image_fallbacks,omitempty"`
	MimeType           *string                   `json:"mime_type,omitempty"`
	HasLegalFile       bool                      `json:"has_legal_file"`
	ViewsCount         int64                     `json:"views_count"`
	FavoritesCount     int64                     `json:"favorites_count"`
	MintTxHash         *string                   `json:"mint_tx_hash,omitempty"`
	CreatedAt          time.Time                 `json:"created_at"`
	UpdatedAt          time.Time                 `json:"updated_at"`

	// Associations (populated when preloaded)
	Category *CategoryResponse `json:"category,omitempty"`
	Creator  *UserResponse     `json:"creator,omitempty"`
	Owner    *UserResponse     `json:"owner,omitempty"`
}

// RightListResponse represents a paginated list of rights
type RightListResponse struct {
	Rights []RightResponse `json:"items"`
	Offset *uint64         `json:"offset,omitempty"`
	Total  uint64          `json:"total"`
}

// CategoryResponse represents a browse category
type CategoryResponse struct {
	ID          int64  `json:"id"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	SortOrder   int    `json:"sort_order"`
}

// CategoryListResponse represents the full category list
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"items"`
}

// MapRightToDTO maps a schema.Right to RightResponse
func MapRightToDTO(right *schema.Right) *RightResponse {
	if right == nil {
		return nil
	}

	resp := &RightResponse{
		ID:                 right.ID,
		Slug:               right.Slug,
		Title:              right.Title,
		Description:        right.Description,
		RightType:          right.RightType,
		Chain:              right.Chain,
		Price:              right.Price,
		Currency:           right.Currency,
		ListingType:        right.ListingType,
		Status:             right.Status,
		IsListed:           right.IsListed,
		AuctionEnd:         right.AuctionEnd,
		PaysDividends:      right.PaysDividends,
		RoyaltyBps:         right.RoyaltyBps,
		VerificationStatus: right.VerificationStatus,
		VerificationNotes:  right.VerificationNotes,
		NFTRef:             right.NFTRef,
		TokenID:            right.TokenID,
		TokenSerial:        right.TokenSerial,
		ContractAddress:    right.ContractAddress,
		TokenNumber:        right.TokenNumber,
		MetadataURI:        right.MetadataURI,
		PreviewURL:         right.PreviewURL,
		HasLegalFile:       right.LegalFileID != nil,
		ViewsCount:         right.ViewsCount,
		FavoritesCount:     right.FavoritesCount,
		MintTxHash:         right.MintTxHash,
		CreatedAt:          right.CreatedAt,
		UpdatedAt:          right.UpdatedAt,
	}

	if right.Category != nil {
		resp.Category = MapCategoryToDTO(right.Category)
	}
	if right.Creator.ID != 0 {
		resp.Creator = MapUserToDTO(&right.Creator)
	}
	if right.Owner.ID != 0 {
		resp.Owner = MapUserToDTO(&right.Owner)
	}

	return resp
}

// MapRightsToDTO maps a slice of rights to a paginated list response
func MapRightsToDTO(rights []*schema.Right, offset *uint64, total uint64) *RightListResponse {
	items := make([]RightResponse, 0, len(rights))
	for _, right := range rights {
		if mapped := MapRightToDTO(right); mapped != nil {
			items = append(items, *mapped)
		}
	}
	return &RightListResponse{
		Rights: items,
		Offset: offset,
		Total:  total,
	}
}

// MapCategoryToDTO maps a schema.Category to CategoryResponse
func MapCategoryToDTO(category *schema.Category) *CategoryResponse {
	if category == nil {
		return nil
	}
	return &CategoryResponse{
		ID:          category.ID,
		Slug:        category.Slug,
		Name:        category.Name,
		Description: category.Description,
		SortOrder:   category.SortOrder,
	}
}
