package types

// Order enumeration for sorting
type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

func (o Order) Desc() bool {
	return o == OrderDesc
}

func (o Order) Asc() bool {
	return o == OrderAsc
}

// Valid checks if an order is valid
func (o Order) Valid() bool {
	return o == OrderAsc || o == OrderDesc
}

// Role enumeration for user right listings
type Role string

const (
	RoleCreated Role = "created"
	RoleOwned   Role = "owned"
)

// Valid checks if a role is valid
func (r Role) Valid() bool {
	return r == RoleCreated || r == RoleOwned
}

// RightSort enumeration for browse ordering
type RightSort string

const (
	RightSortNewest     RightSort = "newest"
	RightSortOldest     RightSort = "oldest"
	RightSortPriceAsc   RightSort = "price_asc"
	RightSortPriceDesc  RightSort = "price_desc"
	RightSortTrending   RightSort = "trending"
	RightSortEndingSoon RightSort = "ending_soon"
)

// Valid checks if a right sort is valid
func (s RightSort) Valid() bool {
	switch s {
	case RightSortNewest, RightSortOldest, RightSortPriceAsc,
		RightSortPriceDesc, RightSortTrending, RightSortEndingSoon:
		return true
	}
	return false
}
