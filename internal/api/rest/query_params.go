package rest

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/dright/marketplace/internal/api/shared/constants"
	"github.com/dright/marketplace/internal/api/shared/types"
	"github.com/dright/marketplace/internal/domain"
	"github.com/dright/marketplace/internal/store"
)

// PageQueryParams holds the shared pagination query parameters
type PageQueryParams struct {
	Limit  *int    `form:"limit"`
	Offset *uint64 `form:"offset"`
}

// ParsePageQuery parses pagination parameters, capping the limit
func ParsePageQuery(c *gin.Context) (*PageQueryParams, error) {
	var params PageQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	if params.Limit != nil {
		if *params.Limit <= 0 {
			return nil, fmt.Errorf("limit must be positive")
		}
		if *params.Limit > int(constants.MAX_PAGE_SIZE) {
			capped := int(constants.MAX_PAGE_SIZE)
			params.Limit = &capped
		}
	}
	return &params, nil
}

// ListRightsQueryParams holds query parameters for GET /api/rights
type ListRightsQueryParams struct {
	// Filters
	Category      string   `form:"category"`
	RightTypes    []string `form:"right_type"`
	ListingTypes  []string `form:"listing_type"`
	Chains        []string `form:"chain"`
	Statuses      []string `form:"status"`
	Verified      bool     `form:"verified"`
	Listed        bool     `form:"listed"`
	PaysDividends *bool    `form:"pays_dividends"`
	MinPrice      string   `form:"min_price"`
	MaxPrice      string   `form:"max_price"`
	ActiveAuction bool     `form:"active_auction"`
	Search        string   `form:"q"`

	// Ordering and pagination
	Sort   types.RightSort `form:"sort,default=newest"`
	Limit  int             `form:"limit,default=20"`
	Offset uint64          `form:"offset,default=0"`
}

// ParseListRightsQuery parses query parameters for GET /api/rights
func ParseListRightsQuery(c *gin.Context) (*ListRightsQueryParams, error) {
	var params ListRightsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	if params.Limit > int(constants.MAX_PAGE_SIZE) {
		params.Limit = int(constants.MAX_PAGE_SIZE)
	}
	if !params.Sort.Valid() {
		params.Sort = types.RightSortNewest
	}

	return &params, nil
}

// Validate checks the enum and amount filters
func (p *ListRightsQueryParams) Validate() error {
	for _, t := range p.RightTypes {
		if !domain.IsValidRightType(domain.RightType(t)) {
			return fmt.Errorf("unsupported right type: %s", t)
		}
	}
	for _, t := range p.ListingTypes {
		if !domain.IsValidListingType(domain.ListingType(t)) {
			return fmt.Errorf("unsupported listing type: %s", t)
		}
	}
	for _, chain := range p.Chains {
		if !domain.IsValidBlockchain(domain.Blockchain(chain)) {
			return fmt.Errorf("unsupported chain: %s", chain)
		}
	}
	for _, s := range p.Statuses {
		if !domain.IsValidRightStatus(domain.RightStatus(s)) {
			return fmt.Errorf("unsupported status: %s", s)
		}
	}
	if p.MinPrice != "" && !domain.Amount(p.MinPrice).Valid() {
		return fmt.Errorf("min_price must be a base-unit integer")
	}
	if p.MaxPrice != "" && !domain.Amount(p.MaxPrice).Valid() {
		return fmt.Errorf("max_price must be a base-unit integer")
	}
	return nil
}

// ToFilter converts the parsed query into the store browse filter
func (p *ListRightsQueryParams) ToFilter() store.RightQueryFilter {
	filter := store.RightQueryFilter{
		CategorySlug:  p.Category,
		VerifiedOnly:  p.Verified,
		ListedOnly:    p.Listed,
		PaysDividends: p.PaysDividends,
		MinPrice:      p.MinPrice,
		MaxPrice:      p.MaxPrice,
		ActiveAuction: p.ActiveAuction,
		Search:        p.Search,
		Sort:          types.ToStoreRightSort(p.Sort),
		Limit:         p.Limit,
		Offset:        p.Offset,
	}
	for _, t := range p.RightTypes {
		filter.RightTypes = append(filter.RightTypes, domain.RightType(t))
	}
	for _, t := range p.ListingTypes {
		filter.ListingTypes = append(filter.ListingTypes, domain.ListingType(t))
	}
	for _, chain := range p.Chains {
		filter.Chains = append(filter.Chains, domain.Blockchain(chain))
	}
	for _, s := range p.Statuses {
		filter.Statuses = append(filter.Statuses, domain.RightStatus(s))
	}
	return filter
}

// UserRightsQueryParams holds query parameters for GET /api/users/:address/rights
type UserRightsQueryParams struct {
	Role   types.Role `form:"role,default=created"`
	Limit  *int       `form:"limit"`
	Offset *uint64    `form:"offset"`
}

// ParseUserRightsQuery parses query parameters for GET /api/users/:address/rights
func ParseUserRightsQuery(c *gin.Context) (*UserRightsQueryParams, error) {
	var params UserRightsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	if !params.Role.Valid() {
		return nil, fmt.Errorf("role must be %q or %q", types.RoleCreated, types.RoleOwned)
	}
	if params.Limit != nil && *params.Limit > int(constants.MAX_PAGE_SIZE) {
		capped := int(constants.MAX_PAGE_SIZE)
		params.Limit = &capped
	}
	return &params, nil
}

// NotificationsQueryParams holds query parameters for GET /api/users/me/notifications
type NotificationsQueryParams struct {
	Unread bool    `form:"unread"`
	Limit  *int    `form:"limit"`
	Offset *uint64 `form:"offset"`
}

// ParseNotificationsQuery parses query parameters for GET /api/users/me/notifications
func ParseNotificationsQuery(c *gin.Context) (*NotificationsQueryParams, error) {
	var params NotificationsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	if params.Limit != nil && *params.Limit > int(constants.MAX_PAGE_SIZE) {
		capped := int(constants.MAX_PAGE_SIZE)
		params.Limit = &capped
	}
	return &params, nil
}
