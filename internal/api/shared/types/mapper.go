package types

import (
	"github.com/dright/marketplace/internal/store"
)

// ToStoreRightSort converts API RightSort to store RightSort
func ToStoreRightSort(sort RightSort) store.RightSort {
	switch sort {
	case RightSortOldest:
		return store.RightSortOldest
	case RightSortPriceAsc:
		return store.RightSortPriceAsc
	case RightSortPriceDesc:
		return store.RightSortPriceDesc
	case RightSortTrending:
		return store.RightSortTrending
	case RightSortEndingSoon:
		return store.RightSortEndingSoon
	default:
		return store.RightSortNewest
	}
}
