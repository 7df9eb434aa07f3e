package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/dright/marketplace/internal/domain"
	"github.com/dright/marketplace/internal/store/schema"
)

// StoreTestSuite provides the interface for running store tests against different implementations
type StoreTestSuite struct {
	Store Store
	// InitDB should be called before each test to initialize the database
	InitDB func(t *testing.T) Store
	// CleanupDB should be called after each test to clean up the database
	CleanupDB func(t *testing.T)
}

// =============================================================================
// Test Data Builders
// =============================================================================

var testAddressSeq int

// nextEthAddress fabricates a unique, checksummable Ethereum address
func nextEthAddress() string {
	testAddressSeq++
	return fmt.Sprintf("0x%040x", testAddressSeq)
}

// nextHederaAddress fabricates a unique Hedera account ID
func nextHederaAddress() string {
	testAddressSeq++
	return fmt.Sprintf("0.0.%d", 10000+testAddressSeq)
}

// seedUser creates a user through the upsert path
func seedUser(t *testing.T, store Store, chain domain.Blockchain) *schema.User {
	t.Helper()

	var address string
	if chain == domain.BlockchainHedera {
		address = nextHederaAddress()
	} else {
		address = nextEthAddress()
	}

	now := time.Now().UTC()
	user, err := store.UpsertUserByAddress(context.Background(), UpsertUserInput{
		Address:     address,
		Chain:       chain,
		LastLoginAt: &now,
	})
	require.NoError(t, err)
	require.NotNil(t, user)
	return user
}

// buildRightInput creates a draft right input owned by the given creator
func buildRightInput(creator *schema.User, title string) CreateRightInput {
	id := uuid.NewString()
	return CreateRightInput{
		ID:          id,
		Slug:        fmt.Sprintf("%s-%s", title, id[:8]),
		Title:       title,
		Description: "test right",
		RightType:   domain.RightTypeRoyalty,
		CreatorID:   creator.ID,
		Chain:       creator.Chain,
		Price:       "1000000000",
		Currency:    "HBAR",
		ListingType: domain.ListingFixed,
		RoyaltyBps:  500,
	}
}

// seedDraftRight creates a draft right
func seedDraftRight(t *testing.T, store Store, creator *schema.User) *schema.Right {
	t.Helper()

	right, err := store.CreateRight(context.Background(), buildRightInput(creator, "draft-right"))
	require.NoError(t, err)
	require.NotNil(t, right)
	return right
}

// seedActiveRight creates a right and walks it to the active, listed state
func seedActiveRight(t *testing.T, store Store, creator *schema.User, mutate func(*CreateRightInput)) *schema.Right {
	t.Helper()
	ctx := context.Background()

	input := buildRightInput(creator, "active-right")
	if mutate != nil {
		mutate(&input)
	}

	right, err := store.CreateRight(ctx, input)
	require.NoError(t, err)

	serial := int64(1)
	tokenID := "0.0.5005"
	err = store.MarkRightMinted(ctx, MarkRightMintedInput{
		RightID:      right.ID,
		NFTRef:       fmt.Sprintf("hedera:testnet:0.0.5005:%s", right.ID[:8]),
		TokenID:      &tokenID,
		TokenSerial:  &serial,
		MetadataURI:  "ipfs://bafytest",
		MetadataHash: "deadbeef",
		MintTxHash:   "0.0.2@123.456",
	})
	require.NoError(t, err)

	minted, err := store.GetRightByID(ctx, right.ID, false)
	require.NoError(t, err)
	require.NotNil(t, minted)
	return minted
}

// seedAuction creates an active auction ending at the given time
func seedAuction(t *testing.T, store Store, creator *schema.User, end time.Time) *schema.Right {
	t.Helper()
	return seedActiveRight(t, store, creator, func(input *CreateRightInput) {
		input.ListingType = domain.ListingAuction
		input.AuctionEnd = &end
	})
}

// =============================================================================
// Test: Users
// =============================================================================

func testUpsertUserByAddress(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("creates a new user on first login", func(t *testing.T) {
		now := time.Now().UTC()
		address := nextEthAddress()

		user, err := store.UpsertUserByAddress(ctx, UpsertUserInput{
			Address:     address,
			Chain:       domain.BlockchainEthereum,
			LastLoginAt: &now,
		})
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.NotZero(t, user.ID)
		assert.Equal(t, domain.BlockchainEthereum, user.Chain)
		assert.Equal(t, domain.NormalizeAddress(address), user.Address)
		require.NotNil(t, user.LastLoginAt)
	})

	t.Run("second login refreshes last_login_at without creating a duplicate", func(t *testing.T) {
		first := time.Now().UTC().Add(-time.Hour)
		address := nextEthAddress()

		user1, err := store.UpsertUserByAddress(ctx, UpsertUserInput{
			Address:     address,
			Chain:       domain.BlockchainEthereum,
			LastLoginAt: &first,
		})
		require.NoError(t, err)

		second := time.Now().UTC()
		user2, err := store.UpsertUserByAddress(ctx, UpsertUserInput{
			Address:     address,
			Chain:       domain.BlockchainEthereum,
			LastLoginAt: &second,
		})
		require.NoError(t, err)

		assert.Equal(t, user1.ID, user2.ID)
		require.NotNil(t, user2.LastLoginAt)
		assert.True(t, user2.LastLoginAt.After(*user1.LastLoginAt))
	})

	t.Run("same address on different chains yields distinct users", func(t *testing.T) {
		address := "0.0.777777"

		hederaUser, err := store.UpsertUserByAddress(ctx, UpsertUserInput{
			Address: address,
			Chain:   domain.BlockchainHedera,
		})
		require.NoError(t, err)

		ethUser, err := store.UpsertUserByAddress(ctx, UpsertUserInput{
			Address: address,
			Chain:   domain.BlockchainEthereum,
		})
		require.NoError(t, err)

		assert.NotEqual(t, hederaUser.ID, ethUser.ID)
	})

	t.Run("lookup by address normalizes casing", func(t *testing.T) {
		address := nextEthAddress()

		created, err := store.UpsertUserByAddress(ctx, UpsertUserInput{
			Address: address,
			Chain:   domain.BlockchainEthereum,
		})
		require.NoError(t, err)

		found, err := store.GetUserByAddress(ctx, domain.BlockchainEthereum, address)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, created.ID, found.ID)
	})

	t.Run("get non-existent user returns nil", func(t *testing.T) {
		user, err := store.GetUserByID(ctx, 99999999)
		require.NoError(t, err)
		assert.Nil(t, user)
	})
}

func testUserProfile(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("updates profile fields independently", func(t *testing.T) {
		user := seedUser(t, store, domain.BlockchainEthereum)

		username := fmt.Sprintf("alice-%d", user.ID)
		bio := "rights collector"
		updated, err := store.UpdateUserProfile(ctx, user.ID, UpdateUserProfileInput{
			Username: &username,
			Bio:      &bio,
		})
		require.NoError(t, err)
		require.NotNil(t, updated.Username)
		assert.Equal(t, username, *updated.Username)
		require.NotNil(t, updated.Bio)
		assert.Equal(t, bio, *updated.Bio)

		avatar := "https://cdn.example.com/a.png"
		updated, err = store.UpdateUserProfile(ctx, user.ID, UpdateUserProfileInput{
			AvatarURL: &avatar,
		})
		require.NoError(t, err)
		require.NotNil(t, updated.Username)
		assert.Equal(t, username, *updated.Username, "username should survive a partial update")
		require.NotNil(t, updated.AvatarURL)
		assert.Equal(t, avatar, *updated.AvatarURL)
	})

	t.Run("username lookup finds the user", func(t *testing.T) {
		user := seedUser(t, store, domain.BlockchainHedera)
		username := fmt.Sprintf("bob-%d", user.ID)

		_, err := store.UpdateUserProfile(ctx, user.ID, UpdateUserProfileInput{Username: &username})
		require.NoError(t, err)

		found, err := store.GetUserByUsername(ctx, username)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, user.ID, found.ID)

		missing, err := store.GetUserByUsername(ctx, "nobody-here")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("update of missing user returns not found", func(t *testing.T) {
		username := "ghost"
		_, err := store.UpdateUserProfile(ctx, 99999999, UpdateUserProfileInput{Username: &username})
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("ban flag round trip", func(t *testing.T) {
		user := seedUser(t, store, domain.BlockchainEthereum)

		require.NoError(t, store.SetUserBanned(ctx, user.ID, true))
		banned, err := store.GetUserByID(ctx, user.ID)
		require.NoError(t, err)
		assert.True(t, banned.IsBanned)

		require.NoError(t, store.SetUserBanned(ctx, user.ID, false))
		unbanned, err := store.GetUserByID(ctx, user.ID)
		require.NoError(t, err)
		assert.False(t, unbanned.IsBanned)
	})
}

// =============================================================================
// Test: Rights lifecycle
// =============================================================================

func testRightLifecycle(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("create starts as unlisted draft owned by the creator", func(t *testing.T) {
		creator := seedUser(t, store, domain.BlockchainHedera)
		right := seedDraftRight(t, store, creator)

		assert.Equal(t, domain.RightStatusDraft, right.Status)
		assert.False(t, right.IsListed)
		assert.Equal(t, creator.ID, right.CreatorID)
		assert.Equal(t, creator.ID, right.OwnerID)
		assert.Nil(t, right.NFTRef)
		assert.Equal(t, domain.VerificationUnverified, right.VerificationStatus)
		require.NotNil(t, right.Creator)
		assert.Equal(t, creator.Address, right.Creator.Address)
	})

	t.Run("detail read increments the view counter", func(t *testing.T) {
		creator := seedUser(t, store, domain.BlockchainHedera)
		right := seedDraftRight(t, store, creator)

		viewed, err := store.GetRightByID(ctx, right.ID, true)
		require.NoError(t, err)
		assert.Equal(t, int64(1), viewed.ViewsCount)

		viewed, err = store.GetRightByID(ctx, right.ID, true)
		require.NoError(t, err)
		assert.Equal(t, int64(2), viewed.ViewsCount)

		// Plain read leaves the counter alone
		plain, err := store.GetRightByID(ctx, right.ID, false)
		require.NoError(t, err)
		assert.Equal(t, int64(2), plain.ViewsCount)
	})

	t.Run("slug lookup round trip", func(t *testing.T) {
		creator := seedUser(t, store, domain.BlockchainHedera)
		right := seedDraftRight(t, store, creator)

		found, err := store.GetRightBySlug(ctx, right.Slug)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, right.ID, found.ID)

		missing, err := store.GetRightBySlug(ctx, "no-such-slug")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("mint activates and lists the right", func(t *testing.T) {
		creator := seedUser(t, store, domain.BlockchainHedera)
		right := seedActiveRight(t, store, creator, nil)

		assert.Equal(t, domain.RightStatusActive, right.Status)
		assert.True(t, right.IsListed)
		require.NotNil(t, right.NFTRef)
		require.NotNil(t, right.MetadataURI)
		assert.Equal(t, "ipfs://bafytest", *right.MetadataURI)
		require.NotNil(t, right.MintTxHash)

		byRef, err := store.GetRightByNFTRef(ctx, *right.NFTRef)
		require.NoError(t, err)
		require.NotNil(t, byRef)
		assert.Equal(t, right.ID, byRef.ID)
	})

	t.Run("update mutates only provided fields", func(t *testing.T) {
		creator := seedUser(t, store, domain.BlockchainHedera)
		right := seedDraftRight(t, store, creator)

		newTitle := "renamed right"
		newPrice := "2500000000"
		updated, err := store.UpdateRight(ctx, right.ID, UpdateRightInput{
			Title: &newTitle,
			Price: &newPrice,
		})
		require.NoError(t, err)
		assert.Equal(t, newTitle, updated.Title)
		assert.Equal(t, newPrice, updated.Price)
		assert.Equal(t, right.Description, updated.Description)
	})

	t.Run("verification decision is recorded", func(t *testing.T) {
		creator := seedUser(t, store, domain.BlockchainHedera)
		right := seedActiveRight(t, store, creator, nil)

		notes := "documents check out"
		err := store.SetRightVerification(ctx, SetRightVerificationInput{
			RightID:  right.ID,
			Status:   domain.VerificationVerified,
			Reviewer: "admin@dright",
			Notes:    &notes,
		})
		require.NoError(t, err)

		verified, err := store.GetRightByID(ctx, right.ID, false)
		require.NoError(t, err)
		assert.Equal(t, domain.VerificationVerified, verified.VerificationStatus)
		require.NotNil(t, verified.VerificationReviewer)
		assert.Equal(t, "admin@dright", *verified.VerificationReviewer)
	})

	t.Run("draft delete enforces ownership and draft state", func(t *testing.T) {
		creator := seedUser(t, store, domain.BlockchainHedera)
		stranger := seedUser(t, store, domain.BlockchainHedera)
		right := seedDraftRight(t, store, creator)

		err := store.DeleteDraftRight(ctx, right.ID, stranger.ID)
		assert.ErrorIs(t, err, domain.ErrNotOwner)

		active := seedActiveRight(t, store, creator, nil)
		err = store.DeleteDraftRight(ctx, active.ID, creator.ID)
		assert.ErrorIs(t, err, domain.ErrNotDraft)

		err = store.DeleteDraftRight(ctx, right.ID, creator.ID)
		require.NoError(t, err)

		gone, err := store.GetRightByID(ctx, right.ID, false)
		require.NoError(t, err)
		assert.Nil(t, gone)
	})

	t.Run("status transition on missing right returns not found", func(t *testing.T) {
		err := store.UpdateRightStatus(ctx, uuid.NewString(), domain.RightStatusFailed)
		assert.ErrorIs(t, err, domain.ErrRightNotFound)
	})
}

func testTransferRightByRef(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("external transfer moves ownership, unlists, and voids bids", func(t *testing.T) {
		creator := seedUser(t, store, domain.BlockchainHedera)
		bidder := seedUser(t, store, domain.BlockchainHedera)
		right := seedAuction(t, store, creator, time.Now().Add(time.Hour))

		_, err := store.PlaceBid(ctx, PlaceBidInput{
			RightID:         right.ID,
			BidderID:        bidder.ID,
			Amount:          "1000000000",
			MinIncrementBps: 500,
		})
		require.NoError(t, err)

		newOwnerAddress := nextHederaAddress()
		transferred, err := store.TransferRightByRef(ctx, TransferRightByRefInput{
			NFTRef:    *right.NFTRef,
			ToAddress: newOwnerAddress,
			ToChain:   domain.BlockchainHedera,
		})
		require.NoError(t, err)
		assert.False(t, transferred.IsListed)
		assert.NotEqual(t, creator.ID, transferred.OwnerID)
		assert.Equal(t, newOwnerAddress, transferred.Owner.Address)

		highest, err := store.GetHighestActiveBid(ctx, right.ID)
		require.NoError(t, err)
		assert.Nil(t, highest, "transfer should void open bids")
	})

	t.Run("transfer to an existing user reuses the account", func(t *testing.T) {
		creator := seedUser(t, store, domain.BlockchainHedera)
		recipient := seedUser(t, store, domain.BlockchainHedera)
		right := seedActiveRight(t, store, creator, nil)

		transferred, err := store.TransferRightByRef(ctx, TransferRightByRefInput{
			NFTRef:    *right.NFTRef,
			ToAddress: recipient.Address,
			ToChain:   recipient.Chain,
		})
		require.NoError(t, err)
		assert.Equal(t, recipient.ID, transferred.OwnerID)
	})

	t.Run("transfer of unknown ref returns not found", func(t *testing.T) {
		_, err := store.TransferRightByRef(ctx, TransferRightByRefInput{
			NFTRef:    "hedera:testnet:0.0.1:999999",
			ToAddress: nextHederaAddress(),
			ToChain:   domain.BlockchainHedera,
		})
		assert.ErrorIs(t, err, domain.ErrRightNotFound)
	})
}

// =============================================================================
// Test: Rights browse/search
// =============================================================================

func testGetRightsByFilter(t *testing.T, store Store) {
	ctx := context.Background()

	creator := seedUser(t, store, domain.BlockchainHedera)
	other := seedUser(t, store, domain.BlockchainEthereum)

	cheap := seedActiveRight(t, store, creator, func(input *CreateRightInput) {
		input.Title = "cheap melody rights"
		input.Price = "100"
		input.RightType = domain.RightTypeRoyalty
	})
	expensive := seedActiveRight(t, store, creator, func(input *CreateRightInput) {
		input.Title = "expensive film rights"
		input.Price = "100000"
		input.RightType = domain.RightTypeCopyright
	})
	ethRight := seedActiveRight(t, store, other, func(input *CreateRightInput) {
		input.Title = "ethereum access pass"
		input.Chain = domain.BlockchainEthereum
		input.Currency = "ETH"
		input.Price = "5000"
		input.RightType = domain.RightTypeAccess
	})
	draft := seedDraftRight(t, store, creator)

	t.Run("filter by creator includes drafts", func(t *testing.T) {
		rights, total, err := store.GetRightsByFilter(ctx, RightQueryFilter{
			CreatorID: &creator.ID,
			Limit:     10,
		})
		require.NoError(t, err)
		assert.Equal(t, uint64(3), total)
		ids := make([]string, 0, len(rights))
		for _, r := range rights {
			ids = append(ids, r.ID)
		}
		assert.Contains(t, ids, draft.ID)
	})

	t.Run("listed-only excludes drafts", func(t *testing.T) {
		rights, total, err := store.GetRightsByFilter(ctx, RightQueryFilter{
			CreatorID:  &creator.ID,
			ListedOnly: true,
			Limit:      10,
		})
		require.NoError(t, err)
		assert.Equal(t, uint64(2), total)
		for _, r := range rights {
			assert.True(t, r.IsListed)
		}
	})

	t.Run("filter by right type", func(t *testing.T) {
		_, total, err := store.GetRightsByFilter(ctx, RightQueryFilter{
			RightTypes: []domain.RightType{domain.RightTypeAccess},
			Limit:      10,
		})
		require.NoError(t, err)
		assert.Equal(t, uint64(1), total)
	})

	t.Run("filter by chain", func(t *testing.T) {
		rights, _, err := store.GetRightsByFilter(ctx, RightQueryFilter{
			Chains: []domain.Blockchain{domain.BlockchainEthereum},
			Limit:  10,
		})
		require.NoError(t, err)
		require.Len(t, rights, 1)
		assert.Equal(t, ethRight.ID, rights[0].ID)
	})

	t.Run("price bounds", func(t *testing.T) {
		rights, _, err := store.GetRightsByFilter(ctx, RightQueryFilter{
			MinPrice: "1000",
			MaxPrice: "50000",
			Limit:    10,
		})
		require.NoError(t, err)
		require.Len(t, rights, 1)
		assert.Equal(t, ethRight.ID, rights[0].ID)
	})

	t.Run("price sort ascending", func(t *testing.T) {
		rights, _, err := store.GetRightsByFilter(ctx, RightQueryFilter{
			Statuses: []domain.RightStatus{domain.RightStatusActive},
			Sort:     RightSortPriceAsc,
			Limit:    10,
		})
		require.NoError(t, err)
		require.Len(t, rights, 3)
		assert.Equal(t, cheap.ID, rights[0].ID)
		assert.Equal(t, expensive.ID, rights[2].ID)
	})

	t.Run("title search is case-insensitive", func(t *testing.T) {
		rights, total, err := store.GetRightsByFilter(ctx, RightQueryFilter{
			Search: "FILM",
			Limit:  10,
		})
		require.NoError(t, err)
		assert.Equal(t, uint64(1), total)
		require.Len(t, rights, 1)
		assert.Equal(t, expensive.ID, rights[0].ID)
	})

	t.Run("search with LIKE metacharacters matches literally", func(t *testing.T) {
		_, total, err := store.GetRightsByFilter(ctx, RightQueryFilter{
			Search: "100%",
			Limit:  10,
		})
		require.NoError(t, err)
		assert.Zero(t, total)
	})

	t.Run("trending weighs favorites over views", func(t *testing.T) {
		viewer := seedUser(t, store, domain.BlockchainHedera)

		// cheap gets 3 views, expensive gets 1 favorite (weight 5)
		for i := 0; i < 3; i++ {
			_, err := store.GetRightByID(ctx, cheap.ID, true)
			require.NoError(t, err)
		}
		_, err := store.ToggleFavorite(ctx, viewer.ID, expensive.ID)
		require.NoError(t, err)

		rights, _, err := store.GetRightsByFilter(ctx, RightQueryFilter{
			CreatorID: &creator.ID,
			Statuses:  []domain.RightStatus{domain.RightStatusActive},
			Sort:      RightSortTrending,
			Limit:     10,
		})
		require.NoError(t, err)
		require.NotEmpty(t, rights)
		assert.Equal(t, expensive.ID, rights[0].ID)
	})

	t.Run("pagination returns stable pages and total", func(t *testing.T) {
		page1, total, err := store.GetRightsByFilter(ctx, RightQueryFilter{
			Statuses: []domain.RightStatus{domain.RightStatusActive},
			Sort:     RightSortPriceAsc,
			Limit:    2,
		})
		require.NoError(t, err)
		assert.Equal(t, uint64(3), total)
		require.Len(t, page1, 2)

		page2, total, err := store.GetRightsByFilter(ctx, RightQueryFilter{
			Statuses: []domain.RightStatus{domain.RightStatusActive},
			Sort:     RightSortPriceAsc,
			Limit:    2,
			Offset:   2,
		})
		require.NoError(t, err)
		assert.Equal(t, uint64(3), total)
		require.Len(t, page2, 1)
		assert.NotEqual(t, page1[0].ID, page2[0].ID)
	})

	t.Run("active auction filter excludes ended auctions", func(t *testing.T) {
		open := seedAuction(t, store, creator, time.Now().Add(time.Hour))
		_ = seedAuction(t, store, creator, time.Now().Add(-time.Hour))

		rights, _, err := store.GetRightsByFilter(ctx, RightQueryFilter{
			ActiveAuction: true,
			Limit:         10,
		})
		require.NoError(t, err)
		require.Len(t, rights, 1)
		assert.Equal(t, open.ID, rights[0].ID)
	})
}

// =============================================================================
// Test: Favorites
// =============================================================================

func testFavorites(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("toggle maintains the counter in both directions", func(t *testing.T) {
		creator := seedUser(t, store, domain.BlockchainHedera)
		fan := seedUser(t, store, domain.BlockchainHedera)
		right := seedActiveRight(t, store, creator, nil)

		favorited, err := store.ToggleFavorite(ctx, fan.ID, right.ID)
		require.NoError(t, err)
		assert.True(t, favorited)

		isFav, err := store.IsFavorited(ctx, fan.ID, right.ID)
		require.NoError(t, err)
		assert.True(t, isFav)

		afterOn, err := store.GetRightByID(ctx, right.ID, false)
		require.NoError(t, err)
		assert.Equal(t, int64(1), afterOn.FavoritesCount)

		favorited, err = store.ToggleFavorite(ctx, fan.ID, right.ID)
		require.NoError(t, err)
		assert.False(t, favorited)

		afterOff, err := store.GetRightByID(ctx, right.ID, false)
		require.NoError(t, err)
		assert.Zero(t, afterOff.FavoritesCount)
	})

	t.Run("list returns newest favorite first", func(t *testing.T) {
		creator := seedUser(t, store, domain.BlockchainHedera)
		fan := seedUser(t, store, domain.BlockchainHedera)
		first := seedActiveRight(t, store, creator, nil)
		second := seedActiveRight(t, store, creator, nil)

		_, err := store.ToggleFavorite(ctx, fan.ID, first.ID)
		require.NoError(t, err)
		_, err = store.ToggleFavorite(ctx, fan.ID, second.ID)
		require.NoError(t, err)

		favorites, total, err := store.ListUserFavorites(ctx, fan.ID, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, uint64(2), total)
		require.Len(t, favorites, 2)
	})
}

// =============================================================================
// Test: Follows
// =============================================================================

func testFollows(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("self follow is rejected", func(t *testing.T) {
		user := seedUser(t, store, domain.BlockchainHedera)
		_, err := store.ToggleFollow(ctx, user.ID, user.ID)
		assert.ErrorIs(t, err, domain.ErrSelfFollow)
	})

	t.Run("toggle maintains both counters", func(t *testing.T) {
		follower := seedUser(t, store, domain.BlockchainHedera)
		followee := seedUser(t, store, domain.BlockchainHedera)

		following, err := store.ToggleFollow(ctx, follower.ID, followee.ID)
		require.NoError(t, err)
		assert.True(t, following)

		followeeRow, err := store.GetUserByID(ctx, followee.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), followeeRow.FollowersCount)

		followerRow, err := store.GetUserByID(ctx, follower.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), followerRow.FollowingCount)

		following, err = store.ToggleFollow(ctx, follower.ID, followee.ID)
		require.NoError(t, err)
		assert.False(t, following)

		followeeRow, err = store.GetUserByID(ctx, followee.ID)
		require.NoError(t, err)
		assert.Zero(t, followeeRow.FollowersCount)
	})

	t.Run("lists and fanout ids agree", func(t *testing.T) {
		celebrity := seedUser(t, store, domain.BlockchainHedera)
		fan1 := seedUser(t, store, domain.BlockchainHedera)
		fan2 := seedUser(t, store, domain.BlockchainEthereum)

		_, err := store.ToggleFollow(ctx, fan1.ID, celebrity.ID)
		require.NoError(t, err)
		_, err = store.ToggleFollow(ctx, fan2.ID, celebrity.ID)
		require.NoError(t, err)

		followers, total, err := store.ListFollowers(ctx, celebrity.ID, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, uint64(2), total)
		assert.Len(t, followers, 2)

		ids, err := store.GetFollowerIDs(ctx, celebrity.ID)
		require.NoError(t, err)
		assert.ElementsMatch(t, []int64{fan1.ID, fan2.ID}, ids)

		following, total, err := store.ListFollowing(ctx, fan1.ID, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), total)
		require.Len(t, following, 1)
		assert.Equal(t, celebrity.ID, following[0].ID)
	})
}

// =============================================================================
// Test: Bids
// =============================================================================

func testPlaceBid(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("bidding on a fixed listing is rejected", func(t *testing.T) {
		creator := seedUser(t, store, domain.BlockchainHedera)
		bidder := seedUser(t, store, domain.BlockchainHedera)
		right := seedActiveRight(t, store, creator, nil)

		_, err := store.PlaceBid(ctx, PlaceBidInput{
			RightID:         right.ID,
			BidderID:        bidder.ID,
			Amount:          "2000000000",
			MinIncrementBps: 500,
		})
		assert.ErrorIs(t, err, domain.ErrAuctionNotOpen)
	})

	t.Run("bidding after the auction end is rejected", func(t *testing.T) {
		creator := seedUser(t, store, domain.BlockchainHedera)
		bidder := seedUser(t, store, domain.BlockchainHedera)
		right := seedAuction(t, store, creator, time.Now().Add(-time.Minute))

		_, err := store.PlaceBid(ctx, PlaceBidInput{
			RightID:         right.ID,
			BidderID:        bidder.ID,
			Amount:          "2000000000",
			MinIncrementBps: 500,
		})
		assert.ErrorIs(t, err, domain.ErrAuctionClosed)
	})

	t.Run("owner cannot bid on own auction", func(t *testing.T) {
		creator := seedUser(t, store, domain.BlockchainHedera)
		right := seedAuction(t, store, creator, time.Now().Add(time.Hour))

		_, err := store.PlaceBid(ctx, PlaceBidInput{
			RightID:         right.ID,
			BidderID:        creator.ID,
			Amount:          "2000000000",
			MinIncrementBps: 500,
		})
		assert.ErrorIs(t, err, domain.ErrSelfPurchase)
	})

	t.Run("first bid must meet the reserve", func(t *testing.T) {
		creator := seedUser(t, store, domain.BlockchainHedera)
		bidder := seedUser(t, store, domain.BlockchainHedera)
		// Reserve is 1_000_000_000 from the builder
		right := seedAuction(t, store, creator, time.Now().Add(time.Hour))

		_, err := store.PlaceBid(ctx, PlaceBidInput{
			RightID:         right.ID,
			BidderID:        bidder.ID,
			Amount:          "999999999",
			MinIncrementBps: 500,
		})
		assert.ErrorIs(t, err, domain.ErrBidTooLow)

		bid, err := store.PlaceBid(ctx, PlaceBidInput{
			RightID:         right.ID,
			BidderID:        bidder.ID,
			Amount:          "1000000000",
			MinIncrementBps: 500,
		})
		require.NoError(t, err)
		assert.True(t, bid.IsActive)
		assert.False(t, bid.IsOutbid)
	})

	t.Run("subsequent bids must clear the increment and outbid the previous", func(t *testing.T) {
		creator := seedUser(t, store, domain.BlockchainHedera)
		alice := seedUser(t, store, domain.BlockchainHedera)
		bob := seedUser(t, store, domain.BlockchainHedera)
		right := seedAuction(t, store, creator, time.Now().Add(time.Hour))

		first, err := store.PlaceBid(ctx, PlaceBidInput{
			RightID:         right.ID,
			BidderID:        alice.ID,
			Amount:          "1000000000",
			MinIncrementBps: 500,
		})
		require.NoError(t, err)

		// 5% over 1_000_000_000 requires at least 1_050_000_000
		_, err = store.PlaceBid(ctx, PlaceBidInput{
			RightID:         right.ID,
			BidderID:        bob.ID,
			Amount:          "1049999999",
			MinIncrementBps: 500,
		})
		assert.ErrorIs(t, err, domain.ErrBidTooLow)

		second, err := store.PlaceBid(ctx, PlaceBidInput{
			RightID:         right.ID,
			BidderID:        bob.ID,
			Amount:          "1050000000",
			MinIncrementBps: 500,
		})
		require.NoError(t, err)
		assert.True(t, second.IsActive)

		highest, err := store.GetHighestActiveBid(ctx, right.ID)
		require.NoError(t, err)
		require.NotNil(t, highest)
		assert.Equal(t, second.ID, highest.ID)
		require.NotNil(t, highest.Bidder)
		assert.Equal(t, bob.ID, highest.Bidder.ID)

		bids, total, err := store.ListBidsByRight(ctx, right.ID, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, uint64(2), total)
		require.Len(t, bids, 2)
		for _, b := range bids {
			if b.ID == first.ID {
				assert.False(t, b.IsActive)
				assert.True(t, b.IsOutbid)
			}
		}
	})

	t.Run("deactivate closes every open bid", func(t *testing.T) {
		creator := seedUser(t, store, domain.BlockchainHedera)
		alice := seedUser(t, store, domain.BlockchainHedera)
		bob := seedUser(t, store, domain.BlockchainHedera)
		right := seedAuction(t, store, creator, time.Now().Add(time.Hour))

		_, err := store.PlaceBid(ctx, PlaceBidInput{
			RightID: right.ID, BidderID: alice.ID, Amount: "1000000000", MinIncrementBps: 500,
		})
		require.NoError(t, err)
		_, err = store.PlaceBid(ctx, PlaceBidInput{
			RightID: right.ID, BidderID: bob.ID, Amount: "1100000000", MinIncrementBps: 500,
		})
		require.NoError(t, err)

		// Only the winning bid is still active; the outbid one is already closed
		affected, err := store.DeactivateBids(ctx, right.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), affected)

		highest, err := store.GetHighestActiveBid(ctx, right.ID)
		require.NoError(t, err)
		assert.Nil(t, highest)
	})
}

// =============================================================================
// Test: Trades
// =============================================================================

func testExecuteTrade(t *testing.T, store Store) {
	ctx := context.Background()

	breakdown := datatypes.JSON([]byte(`{"price":"1000000000","platform_fee":"25000000","royalty":"50000000","seller_net":"925000000"}`))

	t.Run("fixed purchase transfers ownership and writes the ledger", func(t *testing.T) {
		creator := seedUser(t, store, domain.BlockchainHedera)
		buyer := seedUser(t, store, domain.BlockchainHedera)
		right := seedActiveRight(t, store, creator, nil)

		result, err := store.ExecuteTrade(ctx, TradeInput{
			RightID:       right.ID,
			BuyerID:       buyer.ID,
			Price:         "1000000000",
			RoyaltyAmount: "50000000",
			Breakdown:     breakdown,
			PurchaseRef:   "01JTRADE0001",
			RoyaltyRef:    "01JTRADE0002",
		})
		require.NoError(t, err)
		assert.Equal(t, buyer.ID, result.Right.OwnerID)
		assert.False(t, result.Right.IsListed)
		assert.Equal(t, creator.ID, result.Seller.ID)

		entries, total, err := store.ListTransactionsByRight(ctx, right.ID, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, uint64(2), total)

		var purchase, royalty *schema.Transaction
		for _, e := range entries {
			switch e.Type {
			case domain.TxTypePurchase:
				purchase = e
			case domain.TxTypeRoyalty:
				royalty = e
			}
		}
		require.NotNil(t, purchase)
		assert.Equal(t, "1000000000", purchase.Amount)
		assert.Equal(t, domain.TxStatusConfirmed, purchase.Status)
		require.NotNil(t, purchase.FromUserID)
		assert.Equal(t, buyer.ID, *purchase.FromUserID)
		require.NotNil(t, purchase.ToUserID)
		assert.Equal(t, creator.ID, *purchase.ToUserID)
		assert.JSONEq(t, string(breakdown), string(purchase.Breakdown))

		require.NotNil(t, royalty)
		assert.Equal(t, "50000000", royalty.Amount)
		require.NotNil(t, royalty.ToUserID)
		assert.Equal(t, creator.ID, *royalty.ToUserID)
	})

	t.Run("sold rights cannot be purchased again", func(t *testing.T) {
		creator := seedUser(t, store, domain.BlockchainHedera)
		buyer := seedUser(t, store, domain.BlockchainHedera)
		latecomer := seedUser(t, store, domain.BlockchainHedera)
		right := seedActiveRight(t, store, creator, nil)

		_, err := store.ExecuteTrade(ctx, TradeInput{
			RightID:     right.ID,
			BuyerID:     buyer.ID,
			Price:       "1000000000",
			Breakdown:   breakdown,
			PurchaseRef: "01JTRADE0003",
		})
		require.NoError(t, err)

		_, err = store.ExecuteTrade(ctx, TradeInput{
			RightID:     right.ID,
			BuyerID:     latecomer.ID,
			Price:       "1000000000",
			Breakdown:   breakdown,
			PurchaseRef: "01JTRADE0004",
		})
		assert.ErrorIs(t, err, domain.ErrNotForSale)
	})

	t.Run("owner cannot buy own right", func(t *testing.T) {
		creator := seedUser(t, store, domain.BlockchainHedera)
		right := seedActiveRight(t, store, creator, nil)

		_, err := store.ExecuteTrade(ctx, TradeInput{
			RightID:     right.ID,
			BuyerID:     creator.ID,
			Price:       "1000000000",
			Breakdown:   breakdown,
			PurchaseRef: "01JTRADE0005",
		})
		assert.ErrorIs(t, err, domain.ErrSelfPurchase)
	})

	t.Run("banned buyers are rejected", func(t *testing.T) {
		creator := seedUser(t, store, domain.BlockchainHedera)
		buyer := seedUser(t, store, domain.BlockchainHedera)
		right := seedActiveRight(t, store, creator, nil)

		require.NoError(t, store.SetUserBanned(ctx, buyer.ID, true))

		_, err := store.ExecuteTrade(ctx, TradeInput{
			RightID:     right.ID,
			BuyerID:     buyer.ID,
			Price:       "1000000000",
			Breakdown:   breakdown,
			PurchaseRef: "01JTRADE0006",
		})
		assert.ErrorIs(t, err, domain.ErrAddressBanned)
	})

	t.Run("direct purchase of an auction is rejected but settlement is allowed", func(t *testing.T) {
		creator := seedUser(t, store, domain.BlockchainHedera)
		bidder := seedUser(t, store, domain.BlockchainHedera)
		right := seedAuction(t, store, creator, time.Now().Add(time.Hour))

		_, err := store.PlaceBid(ctx, PlaceBidInput{
			RightID: right.ID, BidderID: bidder.ID, Amount: "1200000000", MinIncrementBps: 500,
		})
		require.NoError(t, err)

		_, err = store.ExecuteTrade(ctx, TradeInput{
			RightID:     right.ID,
			BuyerID:     bidder.ID,
			Price:       "1200000000",
			Breakdown:   breakdown,
			PurchaseRef: "01JTRADE0007",
		})
		assert.ErrorIs(t, err, domain.ErrNotForSale)

		result, err := store.ExecuteTrade(ctx, TradeInput{
			RightID:     right.ID,
			BuyerID:     bidder.ID,
			Settlement:  true,
			Price:       "1200000000",
			Breakdown:   breakdown,
			PurchaseRef: "01JTRADE0008",
		})
		require.NoError(t, err)
		assert.Equal(t, bidder.ID, result.Right.OwnerID)
		assert.Equal(t, int64(1), result.DeactivatedBids)

		highest, err := store.GetHighestActiveBid(ctx, right.ID)
		require.NoError(t, err)
		assert.Nil(t, highest, "settlement should close every bid")
	})
}

// =============================================================================
// Test: Ledger
// =============================================================================

func testTransactions(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("append and confirm a pending entry", func(t *testing.T) {
		creator := seedUser(t, store, domain.BlockchainHedera)
		right := seedActiveRight(t, store, creator, nil)

		entry, err := store.AppendTransaction(ctx, AppendTransactionInput{
			Reference: "01JLEDGER0001",
			Type:      domain.TxTypeMint,
			RightID:   &right.ID,
			ToUserID:  &creator.ID,
			Amount:    "0",
			Currency:  "HBAR",
			Chain:     domain.BlockchainHedera,
			Status:    domain.TxStatusPending,
		})
		require.NoError(t, err)
		assert.NotZero(t, entry.ID)
		assert.Nil(t, entry.ConfirmedAt)

		txHash := "0.0.2@1700000000.000000001"
		err = store.UpdateTransactionStatus(ctx, "01JLEDGER0001", domain.TxStatusConfirmed, &txHash)
		require.NoError(t, err)

		entries, _, err := store.ListTransactionsByRight(ctx, right.ID, 10, 0)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, domain.TxStatusConfirmed, entries[0].Status)
		require.NotNil(t, entries[0].ConfirmedAt)
		require.NotNil(t, entries[0].TxHash)
		assert.Equal(t, txHash, *entries[0].TxHash)
	})

	t.Run("confirmed entries cannot transition again", func(t *testing.T) {
		creator := seedUser(t, store, domain.BlockchainHedera)

		_, err := store.AppendTransaction(ctx, AppendTransactionInput{
			Reference: "01JLEDGER0002",
			Type:      domain.TxTypeStake,
			ToUserID:  &creator.ID,
			Amount:    "500",
			Currency:  "HBAR",
			Chain:     domain.BlockchainHedera,
			Status:    domain.TxStatusPending,
		})
		require.NoError(t, err)

		require.NoError(t, store.UpdateTransactionStatus(ctx, "01JLEDGER0002", domain.TxStatusConfirmed, nil))
		err = store.UpdateTransactionStatus(ctx, "01JLEDGER0002", domain.TxStatusFailed, nil)
		assert.Error(t, err, "terminal entries must stay terminal")
	})

	t.Run("user history covers both sides", func(t *testing.T) {
		payer := seedUser(t, store, domain.BlockchainHedera)
		payee := seedUser(t, store, domain.BlockchainHedera)

		_, err := store.AppendTransaction(ctx, AppendTransactionInput{
			Reference:  "01JLEDGER0003",
			Type:       domain.TxTypeDividend,
			FromUserID: &payer.ID,
			ToUserID:   &payee.ID,
			Amount:     "42",
			Currency:   "HBAR",
			Chain:      domain.BlockchainHedera,
			Status:     domain.TxStatusConfirmed,
		})
		require.NoError(t, err)

		forPayer, total, err := store.ListTransactionsByUser(ctx, payer.ID, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), total)
		require.Len(t, forPayer, 1)

		forPayee, total, err := store.ListTransactionsByUser(ctx, payee.ID, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), total)
		require.Len(t, forPayee, 1)
		assert.Equal(t, forPayer[0].ID, forPayee[0].ID)
	})
}

// =============================================================================
// Test: Stakes
// =============================================================================

func testStakes(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("staking requires dividends enabled", func(t *testing.T) {
		creator := seedUser(t, store, domain.BlockchainHedera)
		staker := seedUser(t, store, domain.BlockchainHedera)
		right := seedActiveRight(t, store, creator, nil)

		_, err := store.CreateStake(ctx, CreateStakeInput{
			UserID:  staker.ID,
			RightID: right.ID,
			Amount:  "1000",
		})
		assert.ErrorIs(t, err, domain.ErrNoDividends)
	})

	t.Run("one active stake per user and right", func(t *testing.T) {
		creator := seedUser(t, store, domain.BlockchainHedera)
		staker := seedUser(t, store, domain.BlockchainHedera)
		right := seedActiveRight(t, store, creator, func(input *CreateRightInput) {
			input.PaysDividends = true
		})

		stake, err := store.CreateStake(ctx, CreateStakeInput{
			UserID:  staker.ID,
			RightID: right.ID,
			Amount:  "1000",
		})
		require.NoError(t, err)
		assert.True(t, stake.IsActive)

		_, err = store.CreateStake(ctx, CreateStakeInput{
			UserID:  staker.ID,
			RightID: right.ID,
			Amount:  "2000",
		})
		assert.ErrorIs(t, err, domain.ErrAlreadyStaked)

		// Release, then a new stake is allowed
		released, err := store.ReleaseStake(ctx, staker.ID, right.ID)
		require.NoError(t, err)
		assert.False(t, released.IsActive)
		require.NotNil(t, released.UnstakedAt)

		_, err = store.CreateStake(ctx, CreateStakeInput{
			UserID:  staker.ID,
			RightID: right.ID,
			Amount:  "2000",
		})
		require.NoError(t, err)
	})

	t.Run("release without an active stake fails", func(t *testing.T) {
		creator := seedUser(t, store, domain.BlockchainHedera)
		staker := seedUser(t, store, domain.BlockchainHedera)
		right := seedActiveRight(t, store, creator, func(input *CreateRightInput) {
			input.PaysDividends = true
		})

		_, err := store.ReleaseStake(ctx, staker.ID, right.ID)
		assert.ErrorIs(t, err, domain.ErrStakeNotFound)
	})

	t.Run("total sums only active stakes", func(t *testing.T) {
		creator := seedUser(t, store, domain.BlockchainHedera)
		alice := seedUser(t, store, domain.BlockchainHedera)
		bob := seedUser(t, store, domain.BlockchainHedera)
		carol := seedUser(t, store, domain.BlockchainHedera)
		right := seedActiveRight(t, store, creator, func(input *CreateRightInput) {
			input.PaysDividends = true
		})

		for user, amount := range map[*schema.User]string{alice: "1000", bob: "2000", carol: "3000"} {
			_, err := store.CreateStake(ctx, CreateStakeInput{
				UserID:  user.ID,
				RightID: right.ID,
				Amount:  amount,
			})
			require.NoError(t, err)
		}

		_, err := store.ReleaseStake(ctx, carol.ID, right.ID)
		require.NoError(t, err)

		total, err := store.GetActiveStakeTotal(ctx, right.ID)
		require.NoError(t, err)
		assert.Equal(t, "3000", total)

		stakes, err := store.GetActiveStakesByRight(ctx, right.ID)
		require.NoError(t, err)
		assert.Len(t, stakes, 2)
	})
}

// =============================================================================
// Test: Revenue distributions
// =============================================================================

func testDistributions(t *testing.T, store Store) {
	ctx := context.Background()

	periodStart := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	periodEnd := periodStart.AddDate(0, 1, 0)

	t.Run("scheduling the same period twice returns the original", func(t *testing.T) {
		creator := seedUser(t, store, domain.BlockchainHedera)
		right := seedActiveRight(t, store, creator, func(input *CreateRightInput) {
			input.PaysDividends = true
		})

		first, err := store.CreateScheduledDistribution(ctx, CreateDistributionInput{
			RightID:      right.ID,
			PeriodStart:  periodStart,
			PeriodEnd:    periodEnd,
			TotalRevenue: "0",
		})
		require.NoError(t, err)
		assert.Equal(t, schema.DistributionStatusScheduled, first.Status)

		second, err := store.CreateScheduledDistribution(ctx, CreateDistributionInput{
			RightID:      right.ID,
			PeriodStart:  periodStart,
			PeriodEnd:    periodEnd,
			TotalRevenue: "999",
		})
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, "0", second.TotalRevenue, "re-scheduling must not overwrite")
	})

	t.Run("due query respects the as-of time", func(t *testing.T) {
		creator := seedUser(t, store, domain.BlockchainHedera)
		right := seedActiveRight(t, store, creator, func(input *CreateRightInput) {
			input.PaysDividends = true
		})

		dist, err := store.CreateScheduledDistribution(ctx, CreateDistributionInput{
			RightID:      right.ID,
			PeriodStart:  periodStart,
			PeriodEnd:    periodEnd,
			TotalRevenue: "0",
		})
		require.NoError(t, err)

		before, err := store.GetDueDistributions(ctx, periodEnd.Add(-time.Second), 10)
		require.NoError(t, err)
		for _, d := range before {
			assert.NotEqual(t, dist.ID, d.ID)
		}

		after, err := store.GetDueDistributions(ctx, periodEnd, 10)
		require.NoError(t, err)
		found := false
		for _, d := range after {
			if d.ID == dist.ID {
				found = true
			}
		}
		assert.True(t, found)
	})

	t.Run("completion stores payouts and hashes", func(t *testing.T) {
		creator := seedUser(t, store, domain.BlockchainHedera)
		right := seedActiveRight(t, store, creator, func(input *CreateRightInput) {
			input.PaysDividends = true
		})

		dist, err := store.CreateScheduledDistribution(ctx, CreateDistributionInput{
			RightID:      right.ID,
			PeriodStart:  periodStart,
			PeriodEnd:    periodEnd,
			TotalRevenue: "6000",
		})
		require.NoError(t, err)

		require.NoError(t, store.UpdateDistributionStatus(ctx, dist.ID, schema.DistributionStatusRunning))

		payouts := datatypes.JSON([]byte(`[{"user_id":1,"amount":"6000"}]`))
		hashes := datatypes.JSON([]byte(`["0.0.2@1700000000.1"]`))
		require.NoError(t, store.CompleteDistribution(ctx, dist.ID, payouts, hashes))

		dists, total, err := store.ListDistributionsByRight(ctx, right.ID, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), total)
		require.Len(t, dists, 1)
		assert.Equal(t, schema.DistributionStatusCompleted, dists[0].Status)
		assert.JSONEq(t, string(payouts), string(dists[0].Payouts))
	})

	t.Run("period revenue sums only confirmed purchases inside the window", func(t *testing.T) {
		creator := seedUser(t, store, domain.BlockchainHedera)
		buyer := seedUser(t, store, domain.BlockchainHedera)
		right := seedActiveRight(t, store, creator, func(input *CreateRightInput) {
			input.PaysDividends = true
		})

		// Confirmed purchase inside the window (created_at defaults to now)
		_, err := store.AppendTransaction(ctx, AppendTransactionInput{
			Reference:  fmt.Sprintf("01JREV%s", right.ID[:8]),
			Type:       domain.TxTypePurchase,
			RightID:    &right.ID,
			FromUserID: &buyer.ID,
			ToUserID:   &creator.ID,
			Amount:     "7000",
			Currency:   "HBAR",
			Chain:      domain.BlockchainHedera,
			Status:     domain.TxStatusConfirmed,
		})
		require.NoError(t, err)

		// Pending purchase must not count
		_, err = store.AppendTransaction(ctx, AppendTransactionInput{
			Reference:  fmt.Sprintf("01JPEND%s", right.ID[:8]),
			Type:       domain.TxTypePurchase,
			RightID:    &right.ID,
			FromUserID: &buyer.ID,
			ToUserID:   &creator.ID,
			Amount:     "5000",
			Currency:   "HBAR",
			Chain:      domain.BlockchainHedera,
			Status:     domain.TxStatusPending,
		})
		require.NoError(t, err)

		now := time.Now()
		revenue, err := store.GetRightRevenueInPeriod(ctx, right.ID, now.Add(-time.Hour), now.Add(time.Hour))
		require.NoError(t, err)
		assert.Equal(t, "7000", revenue)

		past, err := store.GetRightRevenueInPeriod(ctx, right.ID, now.Add(-2*time.Hour), now.Add(-time.Hour))
		require.NoError(t, err)
		assert.Equal(t, "0", past)
	})
}

// =============================================================================
// Test: Secure files
// =============================================================================

func testSecureFiles(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("create and read back", func(t *testing.T) {
		owner := seedUser(t, store, domain.BlockchainHedera)

		file, err := store.CreateSecureFile(ctx, CreateSecureFileInput{
			OwnerID:          owner.ID,
			Filename:         "license-agreement.pdf",
			DeclaredMimeType: "application/pdf",
			DetectedMimeType: "application/pdf",
			SizeBytes:        123456,
			SHA256:           "ab12cd34",
			StorageKey:       fmt.Sprintf("vault/%d/license.pdf.enc", owner.ID),
			Nonce:            "0102030405060708090a0b0c",
			KeyID:            "primary",
		})
		require.NoError(t, err)
		assert.Equal(t, schema.SecureFileStatusStored, file.Status)

		found, err := store.GetSecureFileByID(ctx, file.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "license-agreement.pdf", found.Filename)
		assert.Equal(t, int64(123456), found.SizeBytes)

		missing, err := store.GetSecureFileByID(ctx, 99999999)
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("owner listing is scoped and newest first", func(t *testing.T) {
		owner := seedUser(t, store, domain.BlockchainHedera)
		other := seedUser(t, store, domain.BlockchainHedera)

		for i := 0; i < 3; i++ {
			_, err := store.CreateSecureFile(ctx, CreateSecureFileInput{
				OwnerID:          owner.ID,
				Filename:         fmt.Sprintf("doc-%d.pdf", i),
				DeclaredMimeType: "application/pdf",
				DetectedMimeType: "application/pdf",
				SizeBytes:        100,
				SHA256:           fmt.Sprintf("hash-%d", i),
				StorageKey:       fmt.Sprintf("vault/%d/doc-%d.enc", owner.ID, i),
				Nonce:            "aa",
				KeyID:            "primary",
			})
			require.NoError(t, err)
		}

		files, total, err := store.ListSecureFilesByOwner(ctx, owner.ID, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, uint64(3), total)
		assert.Len(t, files, 3)

		none, total, err := store.ListSecureFilesByOwner(ctx, other.ID, 10, 0)
		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, none)
	})
}

// =============================================================================
// Test: Notifications
// =============================================================================

func testNotifications(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("batch create and filtered listing", func(t *testing.T) {
		recipient := seedUser(t, store, domain.BlockchainHedera)
		actor := seedUser(t, store, domain.BlockchainHedera)

		inputs := []CreateNotificationInput{
			{UserID: recipient.ID, Type: schema.NotificationTypeNewFollower, Title: "New follower", ActorID: &actor.ID},
			{UserID: recipient.ID, Type: schema.NotificationTypeRightSold, Title: "Right sold", Body: "Your right sold for 10 HBAR"},
			{UserID: recipient.ID, Type: schema.NotificationTypeOutbid, Title: "You were outbid"},
		}
		require.NoError(t, store.CreateNotifications(ctx, inputs))

		all, total, err := store.ListNotifications(ctx, recipient.ID, false, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, uint64(3), total)
		assert.Len(t, all, 3)

		marked, err := store.MarkNotificationsRead(ctx, recipient.ID, []int64{all[0].ID})
		require.NoError(t, err)
		assert.Equal(t, int64(1), marked)

		unread, total, err := store.ListNotifications(ctx, recipient.ID, true, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, uint64(2), total)
		assert.Len(t, unread, 2)

		// Empty ids marks everything remaining
		marked, err = store.MarkNotificationsRead(ctx, recipient.ID, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(2), marked)

		_, total, err = store.ListNotifications(ctx, recipient.ID, true, 10, 0)
		require.NoError(t, err)
		assert.Zero(t, total)
	})

	t.Run("empty batch is a no-op", func(t *testing.T) {
		require.NoError(t, store.CreateNotifications(ctx, nil))
	})

	t.Run("large batch insert stays under the parameter limit", func(t *testing.T) {
		recipient := seedUser(t, store, domain.BlockchainHedera)

		inputs := make([]CreateNotificationInput, 0, 12000)
		for i := 0; i < 12000; i++ {
			inputs = append(inputs, CreateNotificationInput{
				UserID: recipient.ID,
				Type:   schema.NotificationTypeDividendPaid,
				Title:  fmt.Sprintf("Dividend %d", i),
			})
		}
		require.NoError(t, store.CreateNotifications(ctx, inputs))

		_, total, err := store.ListNotifications(ctx, recipient.ID, false, 1, 0)
		require.NoError(t, err)
		assert.Equal(t, uint64(12000), total)
	})
}

// =============================================================================
// Test: Categories
// =============================================================================

func testCategories(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("seeded categories are ordered and active", func(t *testing.T) {
		categories, err := store.ListCategories(ctx, false)
		require.NoError(t, err)
		require.NotEmpty(t, categories)

		for i := 1; i < len(categories); i++ {
			assert.LessOrEqual(t, categories[i-1].SortOrder, categories[i].SortOrder)
		}
		for _, c := range categories {
			assert.True(t, c.IsActive)
		}
	})

	t.Run("slug and id lookups agree", func(t *testing.T) {
		bySlug, err := store.GetCategoryBySlug(ctx, "music")
		require.NoError(t, err)
		require.NotNil(t, bySlug)

		byID, err := store.GetCategoryByID(ctx, bySlug.ID)
		require.NoError(t, err)
		require.NotNil(t, byID)
		assert.Equal(t, bySlug.Slug, byID.Slug)

		missing, err := store.GetCategoryBySlug(ctx, "does-not-exist")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})
}

// =============================================================================
// Test: Key-value store
// =============================================================================

func testKeyValueStore(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("set, get, overwrite", func(t *testing.T) {
		require.NoError(t, store.SetKeyValue(ctx, "test:alpha", "one"))

		value, err := store.GetKeyValue(ctx, "test:alpha")
		require.NoError(t, err)
		assert.Equal(t, "one", value)

		require.NoError(t, store.SetKeyValue(ctx, "test:alpha", "two"))
		value, err = store.GetKeyValue(ctx, "test:alpha")
		require.NoError(t, err)
		assert.Equal(t, "two", value)

		missing, err := store.GetKeyValue(ctx, "test:missing")
		require.NoError(t, err)
		assert.Empty(t, missing)
	})

	t.Run("consume is single use", func(t *testing.T) {
		require.NoError(t, store.SetKeyValue(ctx, "nonce:abc", "challenge-text"))

		value, err := store.ConsumeKeyValue(ctx, "nonce:abc")
		require.NoError(t, err)
		assert.Equal(t, "challenge-text", value)

		again, err := store.ConsumeKeyValue(ctx, "nonce:abc")
		require.NoError(t, err)
		assert.Empty(t, again, "consumed keys must not be replayable")
	})

	t.Run("prefix scan", func(t *testing.T) {
		require.NoError(t, store.SetKeyValue(ctx, "scan:a", "1"))
		require.NoError(t, store.SetKeyValue(ctx, "scan:b", "2"))
		require.NoError(t, store.SetKeyValue(ctx, "other:c", "3"))

		values, err := store.GetAllKeyValuesByPrefix(ctx, "scan:")
		require.NoError(t, err)
		assert.Len(t, values, 2)
		assert.Equal(t, "1", values["scan:a"])
		assert.Equal(t, "2", values["scan:b"])
	})
}

func testBlockCursor(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("missing cursor reads as zero", func(t *testing.T) {
		cursor, err := store.GetBlockCursor(ctx, "eip155:11155111")
		require.NoError(t, err)
		assert.Zero(t, cursor)
	})

	t.Run("set and advance", func(t *testing.T) {
		require.NoError(t, store.SetBlockCursor(ctx, "hedera:testnet", 1000))

		cursor, err := store.GetBlockCursor(ctx, "hedera:testnet")
		require.NoError(t, err)
		assert.Equal(t, uint64(1000), cursor)

		require.NoError(t, store.SetBlockCursor(ctx, "hedera:testnet", 1250))
		cursor, err = store.GetBlockCursor(ctx, "hedera:testnet")
		require.NoError(t, err)
		assert.Equal(t, uint64(1250), cursor)
	})

	t.Run("cursors are per chain", func(t *testing.T) {
		require.NoError(t, store.SetBlockCursor(ctx, "eip155:1", 500))
		require.NoError(t, store.SetBlockCursor(ctx, "hedera:mainnet", 900))

		eth, err := store.GetBlockCursor(ctx, "eip155:1")
		require.NoError(t, err)
		assert.Equal(t, uint64(500), eth)

		hedera, err := store.GetBlockCursor(ctx, "hedera:mainnet")
		require.NoError(t, err)
		assert.Equal(t, uint64(900), hedera)
	})
}

// =============================================================================
// Test: Webhook clients and deliveries
// =============================================================================

func testWebhookClients(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("event type filtering honors explicit filters and wildcard", func(t *testing.T) {
		sold, err := store.CreateWebhookClient(ctx, CreateWebhookClientInput{
			ClientID:         uuid.NewString(),
			WebhookURL:       "https://example.com/hooks/sold",
			WebhookSecret:    "secret-1",
			EventFilters:     datatypes.JSON([]byte(`["right.sold", "auction.settled"]`)),
			IsActive:         true,
			RetryMaxAttempts: 5,
		})
		require.NoError(t, err)

		wildcard, err := store.CreateWebhookClient(ctx, CreateWebhookClientInput{
			ClientID:         uuid.NewString(),
			WebhookURL:       "https://example.com/hooks/all",
			WebhookSecret:    "secret-2",
			EventFilters:     datatypes.JSON([]byte(`["*"]`)),
			IsActive:         true,
			RetryMaxAttempts: 5,
		})
		require.NoError(t, err)

		inactive, err := store.CreateWebhookClient(ctx, CreateWebhookClientInput{
			ClientID:         uuid.NewString(),
			WebhookURL:       "https://example.com/hooks/off",
			WebhookSecret:    "secret-3",
			EventFilters:     datatypes.JSON([]byte(`["*"]`)),
			IsActive:         false,
			RetryMaxAttempts: 5,
		})
		require.NoError(t, err)

		matches, err := store.GetActiveWebhookClientsByEventType(ctx, "right.sold")
		require.NoError(t, err)

		ids := make([]string, 0, len(matches))
		for _, c := range matches {
			ids = append(ids, c.ClientID)
		}
		assert.Contains(t, ids, sold.ClientID)
		assert.Contains(t, ids, wildcard.ClientID)
		assert.NotContains(t, ids, inactive.ClientID)

		bidMatches, err := store.GetActiveWebhookClientsByEventType(ctx, "bid.placed")
		require.NoError(t, err)
		bidIDs := make([]string, 0, len(bidMatches))
		for _, c := range bidMatches {
			bidIDs = append(bidIDs, c.ClientID)
		}
		assert.NotContains(t, bidIDs, sold.ClientID)
		assert.Contains(t, bidIDs, wildcard.ClientID)
	})

	t.Run("lookup, list, delete", func(t *testing.T) {
		created, err := store.CreateWebhookClient(ctx, CreateWebhookClientInput{
			ClientID:         uuid.NewString(),
			WebhookURL:       "https://example.com/hooks/x",
			WebhookSecret:    "secret-x",
			EventFilters:     datatypes.JSON([]byte(`["right.minted"]`)),
			IsActive:         true,
			RetryMaxAttempts: 3,
		})
		require.NoError(t, err)

		found, err := store.GetWebhookClientByID(ctx, created.ClientID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, created.WebhookURL, found.WebhookURL)

		all, err := store.ListWebhookClients(ctx)
		require.NoError(t, err)
		assert.NotEmpty(t, all)

		require.NoError(t, store.DeleteWebhookClient(ctx, created.ClientID))

		gone, err := store.GetWebhookClientByID(ctx, created.ClientID)
		require.NoError(t, err)
		assert.Nil(t, gone)

		err = store.DeleteWebhookClient(ctx, created.ClientID)
		assert.Error(t, err)
	})
}

func testWebhookDeliveries(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("delivery audit rows track attempts and outcome", func(t *testing.T) {
		client, err := store.CreateWebhookClient(ctx, CreateWebhookClientInput{
			ClientID:         uuid.NewString(),
			WebhookURL:       "https://example.com/hooks/audit",
			WebhookSecret:    "secret-a",
			EventFilters:     datatypes.JSON([]byte(`["*"]`)),
			IsActive:         true,
			RetryMaxAttempts: 5,
		})
		require.NoError(t, err)

		delivery := &schema.WebhookDelivery{
			ClientID:       client.ClientID,
			EventID:        "01JEVENT0001",
			EventType:      "right.sold",
			Payload:        datatypes.JSON([]byte(`{"event_type":"right.sold"}`)),
			WorkflowID:     "deliver-webhook-01JEVENT0001",
			DeliveryStatus: schema.WebhookDeliveryStatusPending,
		}
		require.NoError(t, store.CreateWebhookDelivery(ctx, delivery))
		assert.NotZero(t, delivery.ID)

		status := 200
		err = store.UpdateWebhookDeliveryStatus(ctx, delivery.ID,
			schema.WebhookDeliveryStatusSuccess, 2, &status, `{"ok":true}`, "")
		require.NoError(t, err)
	})
}

// =============================================================================
// Test: Admin aggregates
// =============================================================================

func testAdminAggregates(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("overview counts and volume", func(t *testing.T) {
		creator := seedUser(t, store, domain.BlockchainHedera)
		buyer := seedUser(t, store, domain.BlockchainHedera)
		right := seedActiveRight(t, store, creator, nil)

		_, err := store.ExecuteTrade(ctx, TradeInput{
			RightID:     right.ID,
			BuyerID:     buyer.ID,
			Price:       "1000000000",
			Breakdown:   datatypes.JSON([]byte(`{}`)),
			PurchaseRef: fmt.Sprintf("01JADMIN%s", right.ID[:8]),
		})
		require.NoError(t, err)

		overview, err := store.GetMarketplaceOverview(ctx)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, overview.TotalUsers, int64(2))
		assert.GreaterOrEqual(t, overview.TotalRights, int64(1))
		assert.NotEmpty(t, overview.RightsByType)
		assert.NotEmpty(t, overview.RightsByStatus)
		assert.Equal(t, "1000000000", overview.VolumeByTxType[string(domain.TxTypePurchase)])
		assert.NotEmpty(t, overview.SaleTrend)
	})

	t.Run("top creators ranks by volume", func(t *testing.T) {
		big := seedUser(t, store, domain.BlockchainHedera)
		small := seedUser(t, store, domain.BlockchainHedera)
		buyer := seedUser(t, store, domain.BlockchainHedera)

		bigRight := seedActiveRight(t, store, big, func(input *CreateRightInput) {
			input.Price = "9000000000"
		})
		smallRight := seedActiveRight(t, store, small, func(input *CreateRightInput) {
			input.Price = "1000"
		})

		_, err := store.ExecuteTrade(ctx, TradeInput{
			RightID:     bigRight.ID,
			BuyerID:     buyer.ID,
			Price:       "9000000000",
			Breakdown:   datatypes.JSON([]byte(`{}`)),
			PurchaseRef: fmt.Sprintf("01JTOP%s", bigRight.ID[:8]),
		})
		require.NoError(t, err)
		_, err = store.ExecuteTrade(ctx, TradeInput{
			RightID:     smallRight.ID,
			BuyerID:     buyer.ID,
			Price:       "1000",
			Breakdown:   datatypes.JSON([]byte(`{}`)),
			PurchaseRef: fmt.Sprintf("01JTOP%s", smallRight.ID[:8]),
		})
		require.NoError(t, err)

		creators, err := store.GetTopCreators(ctx, 10)
		require.NoError(t, err)
		require.NotEmpty(t, creators)
		assert.Equal(t, big.ID, creators[0].UserID)
		assert.Equal(t, "9000000000", creators[0].Volume)
	})

	t.Run("verification queue lists pending rights oldest first", func(t *testing.T) {
		creator := seedUser(t, store, domain.BlockchainHedera)
		first := seedActiveRight(t, store, creator, nil)
		second := seedActiveRight(t, store, creator, nil)

		for _, r := range []*schema.Right{first, second} {
			err := store.SetRightVerification(ctx, SetRightVerificationInput{
				RightID:  r.ID,
				Status:   domain.VerificationPending,
				Reviewer: "",
			})
			require.NoError(t, err)
		}

		queue, total, err := store.GetVerificationQueue(ctx, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, uint64(2), total)
		require.Len(t, queue, 2)
		for _, r := range queue {
			assert.Equal(t, domain.VerificationPending, r.VerificationStatus)
		}
	})
}

// =============================================================================
// Suite runner
// =============================================================================

// RunStoreTests runs the full store test suite against a Store implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"UpsertUserByAddress", testUpsertUserByAddress},
		{"UserProfile", testUserProfile},
		{"RightLifecycle", testRightLifecycle},
		{"TransferRightByRef", testTransferRightByRef},
		{"GetRightsByFilter", testGetRightsByFilter},
		{"Favorites", testFavorites},
		{"Follows", testFollows},
		{"PlaceBid", testPlaceBid},
		{"ExecuteTrade", testExecuteTrade},
		{"Transactions", testTransactions},
		{"Stakes", testStakes},
		{"Distributions", testDistributions},
		{"SecureFiles", testSecureFiles},
		{"Notifications", testNotifications},
		{"Categories", testCategories},
		{"KeyValueStore", testKeyValueStore},
		{"BlockCursor", testBlockCursor},
		{"WebhookClients", testWebhookClients},
		{"WebhookDeliveries", testWebhookDeliveries},
		{"AdminAggregates", testAdminAggregates},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
