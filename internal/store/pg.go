package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"

	"github.com/dright/marketplace/internal/domain"
	"github.com/dright/marketplace/internal/logger"
	"github.com/dright/marketplace/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

func hasDBResolver(db *gorm.DB) bool {
	return db != nil && db.Callback().Query().Get("gorm:db_resolver") != nil
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// It accesses the underlying *sql.DB and sets the pool configuration.
// If any of the pool settings are 0 or empty, reasonable defaults are used:
//   - MaxOpenConns: 20 (if 0)
//   - MaxIdleConns: 5 (if 0)
//   - ConnMaxLifetime: 5 minutes (if 0)
//   - ConnMaxIdleTime: 10 minutes (if 0)
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
//
// Notes:
//   - database/sql treats MaxOpenConns=0 as "unlimited"
//   - database/sql treats MaxIdleConns=0 as "no idle connections"
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	// Set defaults if not provided
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// calculateSafeBatchSize computes the optimal batch size for bulk inserts to avoid
// PostgreSQL's "extended protocol limited to 65535 parameters" error.
//
// PostgreSQL's extended protocol has a hard limit of 65535 parameters per query.
// When doing batch inserts with GORM, each record consumes multiple parameters
// (one per field being inserted), and ON CONFLICT clauses may add additional parameters.
//
// The function uses a total headroom to account for batch-level overhead:
//   - GORM-added timestamp fields (created_at, updated_at) across all records
//   - ON CONFLICT clause parameters
//   - Query metadata and internal GORM bookkeeping
func calculateSafeBatchSize(totalRecords int, fieldsPerRecord int) int {
	const maxParams = 65535
	const totalHeadroom = 1000 // Total parameter headroom for batch-level overhead

	availableParams := maxParams - totalHeadroom
	safeBatchSize := max(availableParams/fieldsPerRecord, 1)

	if safeBatchSize > totalRecords {
		return totalRecords
	}

	return safeBatchSize
}

// =============================================================================
// Users
// =============================================================================

// UpsertUserByAddress creates the user for a wallet address or refreshes its last login
func (s *pgStore) UpsertUserByAddress(ctx context.Context, input UpsertUserInput) (*schema.User, error) {
	user := schema.User{
		Address:     domain.NormalizeAddress(input.Address),
		Chain:       input.Chain,
		LastLoginAt: input.LastLoginAt,
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "chain"}, {Name: "address"}},
		DoUpdates: clause.AssignmentColumns([]string{"last_login_at", "updated_at"}),
	}).Create(&user).Error
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	// The upsert path does not populate generated columns, fetch the full row
	if err := s.db.WithContext(ctx).
		Where("chain = ? AND address = ?", user.Chain, user.Address).
		First(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to get upserted user: %w", err)
	}

	return &user, nil
}

// GetUserByID retrieves a user by primary key
func (s *pgStore) GetUserByID(ctx context.Context, id int64) (*schema.User, error) {
	var user schema.User
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// GetUserByAddress retrieves a user by chain and normalized address
func (s *pgStore) GetUserByAddress(ctx context.Context, chain domain.Blockchain, address string) (*schema.User, error) {
	var user schema.User
	err := s.db.WithContext(ctx).
		Where("chain = ? AND address = ?", chain, domain.NormalizeAddress(address)).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by address: %w", err)
	}
	return &user, nil
}

// GetUserByUsername retrieves a user by unique username
func (s *pgStore) GetUserByUsername(ctx context.Context, username string) (*schema.User, error) {
	var user schema.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return &user, nil
}

// UpdateUserProfile updates the mutable profile fields and returns the fresh row
func (s *pgStore) UpdateUserProfile(ctx context.Context, userID int64, input UpdateUserProfileInput) (*schema.User, error) {
	updates := make(map[string]interface{})
	if input.Username != nil {
		updates["username"] = *input.Username
	}
	if input.Bio != nil {
		updates["bio"] = *input.Bio
	}
	if input.AvatarURL != nil {
		updates["avatar_url"] = *input.AvatarURL
	}

	if len(updates) > 0 {
		result := s.db.WithContext(ctx).
			Model(&schema.User{}).
			Where("id = ?", userID).
			Updates(updates)
		if result.Error != nil {
			return nil, fmt.Errorf("failed to update user profile: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return nil, domain.ErrUserNotFound
		}
	}

	var user schema.User
	if err := s.db.WithContext(ctx).Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get updated user: %w", err)
	}
	return &user, nil
}

// SetUserBanned flips the ban flag for a user
func (s *pgStore) SetUserBanned(ctx context.Context, userID int64, banned bool) error {
	result := s.db.WithContext(ctx).
		Model(&schema.User{}).
		Where("id = ?", userID).
		Update("is_banned", banned)
	if result.Error != nil {
		return fmt.Errorf("failed to set user banned: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// =============================================================================
// Rights
// =============================================================================

// rightPreloads loads the associations every right read surface needs
func rightPreloads(db *gorm.DB) *gorm.DB {
	return db.Preload("Category").Preload("Creator").Preload("Owner")
}

// CreateRight creates a draft right owned by its creator
func (s *pgStore) CreateRight(ctx context.Context, input CreateRightInput) (*schema.Right, error) {
	right := schema.Right{
		ID:            input.ID,
		Slug:          input.Slug,
		Title:         input.Title,
		Description:   input.Description,
		RightType:     input.RightType,
		CategoryID:    input.CategoryID,
		CreatorID:     input.CreatorID,
		OwnerID:       input.CreatorID,
		Chain:         input.Chain,
		Price:         input.Price,
		Currency:      input.Currency,
		ListingType:   input.ListingType,
		Status:        domain.RightStatusDraft,
		AuctionEnd:    input.AuctionEnd,
		PaysDividends: input.PaysDividends,
		RoyaltyBps:    input.RoyaltyBps,
		LegalFileID:   input.LegalFileID,
		PreviewURL:    input.ImageURL,
	}

	if err := s.db.WithContext(ctx).Create(&right).Error; err != nil {
		return nil, fmt.Errorf("failed to create right: %w", err)
	}

	return s.GetRightByID(ctx, right.ID, false)
}

// GetRightByID retrieves a right with its associations, optionally incrementing
// the view counter atomically in the same round trip
func (s *pgStore) GetRightByID(ctx context.Context, id string, incrementViews bool) (*schema.Right, error) {
	if incrementViews {
		// Single-statement increment, no read-modify-write race
		if err := s.db.WithContext(ctx).
			Model(&schema.Right{}).
			Where("id = ?", id).
			UpdateColumn("views_count", gorm.Expr("views_count + 1")).Error; err != nil {
			return nil, fmt.Errorf("failed to increment views: %w", err)
		}
	}

	var right schema.Right
	err := rightPreloads(s.db.WithContext(ctx)).Where("id = ?", id).First(&right).Error
	if err == nil {
		return &right, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get right: %w", err)
	}
	if !hasDBResolver(s.db) {
		return nil, nil
	}

	// Replica can lag behind primary; retry on primary before returning not found.
	err = rightPreloads(s.db.WithContext(ctx).Clauses(dbresolver.Write)).
		Where("id = ?", id).
		First(&right).Error
	if err == nil {
		return &right, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return nil, fmt.Errorf("failed to get right: %w", err)
}

// GetRightBySlug retrieves a right by its unique slug
func (s *pgStore) GetRightBySlug(ctx context.Context, slug string) (*schema.Right, error) {
	var right schema.Right
	err := rightPreloads(s.db.WithContext(ctx)).Where("slug = ?", slug).First(&right).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get right by slug: %w", err)
	}
	return &right, nil
}

// GetRightByNFTRef retrieves a right by its canonical token reference
func (s *pgStore) GetRightByNFTRef(ctx context.Context, ref string) (*schema.Right, error) {
	var right schema.Right
	err := rightPreloads(s.db.WithContext(ctx)).Where("nft_ref = ?", ref).First(&right).Error
	if err == nil {
		return &right, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get right by nft ref: %w", err)
	}
	if !hasDBResolver(s.db) {
		return nil, nil
	}

	// Replica can lag behind primary; the emitters read refs written moments ago.
	err = rightPreloads(s.db.WithContext(ctx).Clauses(dbresolver.Write)).
		Where("nft_ref = ?", ref).
		First(&right).Error
	if err == nil {
		return &right, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return nil, fmt.Errorf("failed to get right by nft ref: %w", err)
}

// GetRightsByFilter retrieves rights matching the filter plus the total count
func (s *pgStore) GetRightsByFilter(ctx context.Context, filter RightQueryFilter) ([]*schema.Right, uint64, error) {
	query := s.db.WithContext(ctx).Model(&schema.Right{})

	if filter.CategorySlug != "" {
		query = query.Joins("JOIN categories ON categories.id = rights.category_id").
			Where("categories.slug = ?", filter.CategorySlug)
	}
	if len(filter.RightTypes) > 0 {
		query = query.Where("rights.right_type IN ?", filter.RightTypes)
	}
	if len(filter.ListingTypes) > 0 {
		query = query.Where("rights.listing_type IN ?", filter.ListingTypes)
	}
	if len(filter.Chains) > 0 {
		query = query.Where("rights.chain IN ?", filter.Chains)
	}
	if len(filter.Statuses) > 0 {
		query = query.Where("rights.status IN ?", filter.Statuses)
	}
	if filter.CreatorID != nil {
		query = query.Where("rights.creator_id = ?", *filter.CreatorID)
	}
	if filter.OwnerID != nil {
		query = query.Where("rights.owner_id = ?", *filter.OwnerID)
	}
	if filter.VerifiedOnly {
		query = query.Where("rights.verification_status = ?", domain.VerificationVerified)
	}
	if filter.ListedOnly {
		query = query.Where("rights.is_listed")
	}
	if filter.PaysDividends != nil {
		query = query.Where("rights.pays_dividends = ?", *filter.PaysDividends)
	}
	if filter.MinPrice != "" {
		query = query.Where("rights.price >= ?::numeric", filter.MinPrice)
	}
	if filter.MaxPrice != "" {
		query = query.Where("rights.price <= ?::numeric", filter.MaxPrice)
	}
	if filter.ActiveAuction {
		query = query.Where("rights.listing_type = ? AND rights.auction_end > now()", domain.ListingAuction)
	}
	if filter.Search != "" {
		query = query.Where("rights.title ILIKE ?", "%"+escapeLike(filter.Search)+"%")
	}

	// Count before pagination
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count rights: %w", err)
	}

	switch filter.Sort {
	case RightSortOldest:
		query = query.Order("rights.created_at ASC")
	case RightSortPriceAsc:
		query = query.Order("rights.price ASC")
	case RightSortPriceDesc:
		query = query.Order("rights.price DESC")
	case RightSortTrending:
		// Favorites weigh heavier than raw views
		query = query.Order("(rights.views_count + 5 * rights.favorites_count) DESC, rights.created_at DESC")
	case RightSortEndingSoon:
		query = query.Order("rights.auction_end ASC NULLS LAST")
	default:
		query = query.Order("rights.created_at DESC")
	}

	var rights []*schema.Right
	err := rightPreloads(query).
		Limit(filter.Limit).
		Offset(int(filter.Offset)). //nolint:gosec,G115
		Find(&rights).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query rights: %w", err)
	}

	return rights, uint64(total), nil //nolint:gosec,G115
}

// escapeLike escapes the LIKE metacharacters in user-supplied search text
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}

// UpdateRight updates the owner-mutable fields and returns the fresh row
func (s *pgStore) UpdateRight(ctx context.Context, id string, input UpdateRightInput) (*schema.Right, error) {
	updates := make(map[string]interface{})
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.CategoryID != nil {
		updates["category_id"] = *input.CategoryID
	}
	if input.Price != nil {
		updates["price"] = *input.Price
	}
	if input.ListingType != nil {
		updates["listing_type"] = *input.ListingType
	}
	if input.AuctionEnd != nil {
		updates["auction_end"] = *input.AuctionEnd
	}
	if input.IsListed != nil {
		updates["is_listed"] = *input.IsListed
	}

	if len(updates) > 0 {
		result := s.db.WithContext(ctx).
			Model(&schema.Right{}).
			Where("id = ?", id).
			Updates(updates)
		if result.Error != nil {
			return nil, fmt.Errorf("failed to update right: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return nil, domain.ErrRightNotFound
		}
	}

	return s.GetRightByID(ctx, id, false)
}

// MarkRightMinted records token identifiers and activates the listing
func (s *pgStore) MarkRightMinted(ctx context.Context, input MarkRightMintedInput) error {
	updates := map[string]interface{}{
		"nft_ref":       input.NFTRef,
		"metadata_uri":  input.MetadataURI,
		"metadata_hash": input.MetadataHash,
		"mint_tx_hash":  input.MintTxHash,
		"status":        domain.RightStatusActive,
		"is_listed":     true,
	}
	if input.TokenID != nil {
		updates["token_id"] = *input.TokenID
	}
	if input.TokenSerial != nil {
		updates["token_serial"] = *input.TokenSerial
	}
	if input.ContractAddress != nil {
		updates["contract_address"] = *input.ContractAddress
	}
	if input.TokenNumber != nil {
		updates["token_number"] = *input.TokenNumber
	}

	result := s.db.WithContext(ctx).
		Model(&schema.Right{}).
		Where("id = ?", input.RightID).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to mark right minted: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrRightNotFound
	}
	return nil
}

// UpdateRightStatus transitions the lifecycle status
func (s *pgStore) UpdateRightStatus(ctx context.Context, id string, status domain.RightStatus) error {
	result := s.db.WithContext(ctx).
		Model(&schema.Right{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update right status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrRightNotFound
	}
	return nil
}

// SetRightPreviewURL stores the generated preview URL
func (s *pgStore) SetRightPreviewURL(ctx context.Context, id string, previewURL string) error {
	result := s.db.WithContext(ctx).
		Model(&schema.Right{}).
		Where("id = ?", id).
		Update("preview_url", previewURL)
	if result.Error != nil {
		return fmt.Errorf("failed to set preview url: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrRightNotFound
	}
	return nil
}

// SetRightVerification records an admin verification decision
func (s *pgStore) SetRightVerification(ctx context.Context, input SetRightVerificationInput) error {
	updates := map[string]interface{}{
		"verification_status":   input.Status,
		"verification_reviewer": input.Reviewer,
	}
	if input.Notes != nil {
		updates["verification_notes"] = *input.Notes
	}

	result := s.db.WithContext(ctx).
		Model(&schema.Right{}).
		Where("id = ?", input.RightID).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to set right verification: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrRightNotFound
	}
	return nil
}

// DeleteDraftRight deletes a right while it is still a draft owned by the caller
func (s *pgStore) DeleteDraftRight(ctx context.Context, id string, ownerID int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var right schema.Right
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&right).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrRightNotFound
			}
			return fmt.Errorf("failed to lock right: %w", err)
		}

		if right.OwnerID != ownerID {
			return domain.ErrNotOwner
		}
		if right.Status != domain.RightStatusDraft {
			return domain.ErrNotDraft
		}

		if err := tx.Where("id = ?", id).Delete(&schema.Right{}).Error; err != nil {
			return fmt.Errorf("failed to delete draft right: %w", err)
		}
		return nil
	})
}

// TransferRightByRef reconciles ownership after an on-chain transfer observed
// by an emitter. The new owner is upserted from the destination address, the
// right is unlisted, and any open bids are closed out.
func (s *pgStore) TransferRightByRef(ctx context.Context, input TransferRightByRefInput) (*schema.Right, error) {
	var updated *schema.Right

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var right schema.Right
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("nft_ref = ?", input.NFTRef).
			First(&right).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrRightNotFound
			}
			return fmt.Errorf("failed to lock right by nft ref: %w", err)
		}

		newOwner := schema.User{
			Address: domain.NormalizeAddress(input.ToAddress),
			Chain:   input.ToChain,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "chain"}, {Name: "address"}},
			DoNothing: true,
		}).Create(&newOwner).Error; err != nil {
			return fmt.Errorf("failed to upsert transfer recipient: %w", err)
		}
		if newOwner.ID == 0 {
			if err := tx.Where("chain = ? AND address = ?", newOwner.Chain, newOwner.Address).
				First(&newOwner).Error; err != nil {
				return fmt.Errorf("failed to get transfer recipient: %w", err)
			}
		}

		if err := tx.Model(&schema.Right{}).
			Where("id = ?", right.ID).
			Updates(map[string]interface{}{
				"owner_id":  newOwner.ID,
				"is_listed": false,
			}).Error; err != nil {
			return fmt.Errorf("failed to transfer right ownership: %w", err)
		}

		// An external transfer voids any auction in flight
		if err := tx.Model(&schema.Bid{}).
			Where("right_id = ? AND is_active", right.ID).
			Update("is_active", false).Error; err != nil {
			return fmt.Errorf("failed to deactivate bids: %w", err)
		}

		logger.InfoCtx(ctx, "Reconciled on-chain transfer",
			zap.String("rightID", right.ID),
			zap.String("nftRef", input.NFTRef),
			zap.String("toAddress", newOwner.Address),
		)

		updated = &right
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetRightByID(ctx, updated.ID, false)
}

// =============================================================================
// Favorites
// =============================================================================

// ToggleFavorite flips a user's favorite on a right, maintaining the counter atomically
func (s *pgStore) ToggleFavorite(ctx context.Context, userID int64, rightID string) (bool, error) {
	var favorited bool

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_id = ? AND right_id = ?", userID, rightID).Delete(&schema.Favorite{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete favorite: %w", result.Error)
		}

		if result.RowsAffected > 0 {
			// Was favorited, now removed
			favorited = false
			return tx.Model(&schema.Right{}).
				Where("id = ?", rightID).
				UpdateColumn("favorites_count", gorm.Expr("favorites_count - 1")).Error
		}

		favorite := schema.Favorite{UserID: userID, RightID: rightID}
		if err := tx.Create(&favorite).Error; err != nil {
			return fmt.Errorf("failed to create favorite: %w", err)
		}

		favorited = true
		return tx.Model(&schema.Right{}).
			Where("id = ?", rightID).
			UpdateColumn("favorites_count", gorm.Expr("favorites_count + 1")).Error
	})
	if err != nil {
		return false, err
	}

	return favorited, nil
}

// IsFavorited checks whether a user favorited a right
func (s *pgStore) IsFavorited(ctx context.Context, userID int64, rightID string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.Favorite{}).
		Where("user_id = ? AND right_id = ?", userID, rightID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}
	return count > 0, nil
}

// ListUserFavorites retrieves the rights a user favorited, newest favorite first
func (s *pgStore) ListUserFavorites(ctx context.Context, userID int64, limit int, offset uint64) ([]*schema.Right, uint64, error) {
	base := s.db.WithContext(ctx).
		Model(&schema.Right{}).
		Joins("JOIN favorites ON favorites.right_id = rights.id").
		Where("favorites.user_id = ?", userID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count favorites: %w", err)
	}

	var rights []*schema.Right
	err := rightPreloads(base).
		Order("favorites.created_at DESC").
		Limit(limit).
		Offset(int(offset)). //nolint:gosec,G115
		Find(&rights).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list favorites: %w", err)
	}

	return rights, uint64(total), nil //nolint:gosec,G115
}

// =============================================================================
// Follows
// =============================================================================

// ToggleFollow flips the follow edge, maintaining both counters atomically
func (s *pgStore) ToggleFollow(ctx context.Context, followerID, followeeID int64) (bool, error) {
	if followerID == followeeID {
		return false, domain.ErrSelfFollow
	}

	var following bool

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
			Delete(&schema.Follow{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete follow: %w", result.Error)
		}

		if result.RowsAffected > 0 {
			following = false
			if err := tx.Model(&schema.User{}).
				Where("id = ?", followeeID).
				UpdateColumn("followers_count", gorm.Expr("followers_count - 1")).Error; err != nil {
				return err
			}
			return tx.Model(&schema.User{}).
				Where("id = ?", followerID).
				UpdateColumn("following_count", gorm.Expr("following_count - 1")).Error
		}

		follow := schema.Follow{FollowerID: followerID, FolloweeID: followeeID}
		if err := tx.Create(&follow).Error; err != nil {
			return fmt.Errorf("failed to create follow: %w", err)
		}

		following = true
		if err := tx.Model(&schema.User{}).
			Where("id = ?", followeeID).
			UpdateColumn("followers_count", gorm.Expr("followers_count + 1")).Error; err != nil {
			return err
		}
		return tx.Model(&schema.User{}).
			Where("id = ?", followerID).
			UpdateColumn("following_count", gorm.Expr("following_count + 1")).Error
	})
	if err != nil {
		return false, err
	}

	return following, nil
}

// ListFollowers retrieves the users following a user
func (s *pgStore) ListFollowers(ctx context.Context, userID int64, limit int, offset uint64) ([]*schema.User, uint64, error) {
	base := s.db.WithContext(ctx).
		Model(&schema.User{}).
		Joins("JOIN follows ON follows.follower_id = users.id").
		Where("follows.followee_id = ?", userID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count followers: %w", err)
	}

	var users []*schema.User
	err := base.Order("follows.created_at DESC").
		Limit(limit).
		Offset(int(offset)). //nolint:gosec,G115
		Find(&users).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list followers: %w", err)
	}

	return users, uint64(total), nil //nolint:gosec,G115
}

// ListFollowing retrieves the users a user follows
func (s *pgStore) ListFollowing(ctx context.Context, userID int64, limit int, offset uint64) ([]*schema.User, uint64, error) {
	base := s.db.WithContext(ctx).
		Model(&schema.User{}).
		Joins("JOIN follows ON follows.followee_id = users.id").
		Where("follows.follower_id = ?", userID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count following: %w", err)
	}

	var users []*schema.User
	err := base.Order("follows.created_at DESC").
		Limit(limit).
		Offset(int(offset)). //nolint:gosec,G115
		Find(&users).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list following: %w", err)
	}

	return users, uint64(total), nil //nolint:gosec,G115
}

// GetFollowerIDs retrieves all follower IDs of a user, used for notification fanout
func (s *pgStore) GetFollowerIDs(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64
	err := s.db.WithContext(ctx).
		Model(&schema.Follow{}).
		Where("followee_id = ?", userID).
		Pluck("follower_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get follower ids: %w", err)
	}
	return ids, nil
}

// =============================================================================
// Bids
// =============================================================================

// PlaceBid validates and inserts a bid under a row lock on the right.
// The first bid must meet the reserve (listing price); subsequent bids must
// clear the current highest by the configured increment.
func (s *pgStore) PlaceBid(ctx context.Context, input PlaceBidInput) (*schema.Bid, error) {
	amount := domain.Amount(input.Amount)
	if !amount.Valid() {
		return nil, fmt.Errorf("invalid bid amount: %q", input.Amount)
	}

	var placed *schema.Bid

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var right schema.Right
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", input.RightID).
			First(&right).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrRightNotFound
			}
			return fmt.Errorf("failed to lock right: %w", err)
		}

		if right.ListingType != domain.ListingAuction {
			return domain.ErrAuctionNotOpen
		}
		if right.Status != domain.RightStatusActive || !right.IsListed {
			return domain.ErrNotForSale
		}
		if right.AuctionEnd == nil || !right.AuctionEnd.After(time.Now()) {
			return domain.ErrAuctionClosed
		}
		if right.OwnerID == input.BidderID {
			return domain.ErrSelfPurchase
		}

		var highest schema.Bid
		err := tx.Where("right_id = ? AND is_active", input.RightID).
			Order("amount DESC").
			First(&highest).Error

		switch {
		case err == nil:
			increment, ierr := domain.Amount(highest.Amount).ApplyBps(input.MinIncrementBps)
			if ierr != nil {
				return fmt.Errorf("failed to compute bid increment: %w", ierr)
			}
			minAcceptable, aerr := domain.Amount(highest.Amount).Add(increment)
			if aerr != nil {
				return fmt.Errorf("failed to compute minimum bid: %w", aerr)
			}
			cmp, cerr := amount.Cmp(minAcceptable)
			if cerr != nil {
				return fmt.Errorf("failed to compare bid: %w", cerr)
			}
			if cmp < 0 {
				return domain.ErrBidTooLow
			}

			if uerr := tx.Model(&schema.Bid{}).
				Where("id = ?", highest.ID).
				Updates(map[string]interface{}{
					"is_active": false,
					"is_outbid": true,
				}).Error; uerr != nil {
				return fmt.Errorf("failed to outbid previous bid: %w", uerr)
			}

		case errors.Is(err, gorm.ErrRecordNotFound):
			cmp, cerr := amount.Cmp(domain.Amount(right.Price))
			if cerr != nil {
				return fmt.Errorf("failed to compare bid to reserve: %w", cerr)
			}
			if cmp < 0 {
				return domain.ErrBidTooLow
			}

		default:
			return fmt.Errorf("failed to get highest bid: %w", err)
		}

		bid := schema.Bid{
			RightID:  input.RightID,
			BidderID: input.BidderID,
			Amount:   input.Amount,
			IsActive: true,
		}
		if err := tx.Create(&bid).Error; err != nil {
			return fmt.Errorf("failed to create bid: %w", err)
		}

		placed = &bid
		return nil
	})
	if err != nil {
		return nil, err
	}

	return placed, nil
}

// GetHighestActiveBid retrieves the current winning bid of an auction
func (s *pgStore) GetHighestActiveBid(ctx context.Context, rightID string) (*schema.Bid, error) {
	var bid schema.Bid
	err := s.db.WithContext(ctx).
		Preload("Bidder").
		Where("right_id = ? AND is_active", rightID).
		Order("amount DESC").
		First(&bid).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get highest bid: %w", err)
	}
	return &bid, nil
}

// ListBidsByRight retrieves an auction's bids, newest first
func (s *pgStore) ListBidsByRight(ctx context.Context, rightID string, limit int, offset uint64) ([]*schema.Bid, uint64, error) {
	base := s.db.WithContext(ctx).Model(&schema.Bid{}).Where("right_id = ?", rightID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count bids: %w", err)
	}

	var bids []*schema.Bid
	err := base.Preload("Bidder").
		Order("created_at DESC").
		Limit(limit).
		Offset(int(offset)). //nolint:gosec,G115
		Find(&bids).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list bids: %w", err)
	}

	return bids, uint64(total), nil //nolint:gosec,G115
}

// DeactivateBids deactivates all bids of a right in one statement
func (s *pgStore) DeactivateBids(ctx context.Context, rightID string) (int64, error) {
	result := s.db.WithContext(ctx).
		Model(&schema.Bid{}).
		Where("right_id = ? AND is_active", rightID).
		Update("is_active", false)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to deactivate bids: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// RevertAuctionToFixed turns an ended auction with no bids back into a fixed
// listing at its current price
func (s *pgStore) RevertAuctionToFixed(ctx context.Context, rightID string) error {
	result := s.db.WithContext(ctx).
		Model(&schema.Right{}).
		Where("id = ? AND listing_type = ?", rightID, domain.ListingAuction).
		Updates(map[string]interface{}{
			"listing_type": domain.ListingFixed,
			"auction_end":  nil,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to revert auction to fixed listing: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrRightNotFound
	}
	return nil
}

// GetEndedAuctions retrieves active auction rights whose end time has passed,
// oldest ending first. Backed by the idx_rights_auction_sweep index.
func (s *pgStore) GetEndedAuctions(ctx context.Context, asOf time.Time, limit int) ([]*schema.Right, error) {
	var rights []*schema.Right
	err := s.db.WithContext(ctx).
		Where("listing_type = ? AND status = ? AND auction_end IS NOT NULL AND auction_end <= ?",
			domain.ListingAuction, domain.RightStatusActive, asOf).
		Order("auction_end ASC").
		Limit(limit).
		Find(&rights).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get ended auctions: %w", err)
	}
	return rights, nil
}

// =============================================================================
// Trades
// =============================================================================

// ExecuteTrade atomically transfers ownership, appends the purchase and royalty
// ledger entries, and deactivates the right's bids. The caller computes the
// breakdown; the store only enforces the marketplace invariants.
func (s *pgStore) ExecuteTrade(ctx context.Context, input TradeInput) (*TradeResult, error) {
	var result *TradeResult

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var right schema.Right
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", input.RightID).
			First(&right).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrRightNotFound
			}
			return fmt.Errorf("failed to lock right: %w", err)
		}

		if right.Status != domain.RightStatusActive || !right.IsListed {
			return domain.ErrNotForSale
		}
		if right.OwnerID == input.BuyerID {
			return domain.ErrSelfPurchase
		}
		if !input.Settlement && right.ListingType != domain.ListingFixed {
			return domain.ErrNotForSale
		}

		var seller, buyer schema.User
		if err := tx.Where("id = ?", right.OwnerID).First(&seller).Error; err != nil {
			return fmt.Errorf("failed to get seller: %w", err)
		}
		if err := tx.Where("id = ?", input.BuyerID).First(&buyer).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrUserNotFound
			}
			return fmt.Errorf("failed to get buyer: %w", err)
		}
		if buyer.IsBanned {
			return domain.ErrAddressBanned
		}

		if err := tx.Model(&schema.Right{}).
			Where("id = ?", right.ID).
			Updates(map[string]interface{}{
				"owner_id":  buyer.ID,
				"is_listed": false,
			}).Error; err != nil {
			return fmt.Errorf("failed to transfer ownership: %w", err)
		}

		purchase := schema.Transaction{
			Reference:  input.PurchaseRef,
			Type:       domain.TxTypePurchase,
			RightID:    &right.ID,
			FromUserID: &buyer.ID,
			ToUserID:   &seller.ID,
			Amount:     input.Price,
			Currency:   right.Currency,
			Breakdown:  input.Breakdown,
			Chain:      right.Chain,
			Status:     domain.TxStatusConfirmed,
		}
		if err := tx.Create(&purchase).Error; err != nil {
			return fmt.Errorf("failed to append purchase entry: %w", err)
		}

		if input.RoyaltyRef != "" && input.RoyaltyAmount != "" && input.RoyaltyAmount != "0" {
			royalty := schema.Transaction{
				Reference:  input.RoyaltyRef,
				Type:       domain.TxTypeRoyalty,
				RightID:    &right.ID,
				FromUserID: &buyer.ID,
				ToUserID:   &right.CreatorID,
				Amount:     input.RoyaltyAmount,
				Currency:   right.Currency,
				Breakdown:  input.Breakdown,
				Chain:      right.Chain,
				Status:     domain.TxStatusConfirmed,
			}
			if err := tx.Create(&royalty).Error; err != nil {
				return fmt.Errorf("failed to append royalty entry: %w", err)
			}
		}

		deactivate := tx.Model(&schema.Bid{}).
			Where("right_id = ? AND is_active", right.ID).
			Update("is_active", false)
		if deactivate.Error != nil {
			return fmt.Errorf("failed to deactivate bids: %w", deactivate.Error)
		}

		logger.InfoCtx(ctx, "Trade executed",
			zap.String("rightID", right.ID),
			zap.Int64("sellerID", seller.ID),
			zap.Int64("buyerID", buyer.ID),
			zap.String("price", input.Price),
			zap.Bool("settlement", input.Settlement),
		)

		result = &TradeResult{
			Right:           &right,
			Seller:          &seller,
			Buyer:           &buyer,
			PurchaseRef:     input.PurchaseRef,
			RoyaltyRef:      input.RoyaltyRef,
			DeactivatedBids: deactivate.RowsAffected,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Return the post-trade row with fresh associations
	fresh, err := s.GetRightByID(ctx, result.Right.ID, false)
	if err == nil && fresh != nil {
		result.Right = fresh
	}

	return result, nil
}

// =============================================================================
// Transactions (ledger)
// =============================================================================

// AppendTransaction appends a ledger row
func (s *pgStore) AppendTransaction(ctx context.Context, input AppendTransactionInput) (*schema.Transaction, error) {
	entry := schema.Transaction{
		Reference:  input.Reference,
		Type:       input.Type,
		RightID:    input.RightID,
		FromUserID: input.FromUserID,
		ToUserID:   input.ToUserID,
		Amount:     input.Amount,
		Currency:   input.Currency,
		Breakdown:  input.Breakdown,
		TxHash:     input.TxHash,
		Chain:      input.Chain,
		Status:     input.Status,
	}

	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, fmt.Errorf("failed to append transaction: %w", err)
	}

	return &entry, nil
}

// UpdateTransactionStatus transitions a pending ledger row by its reference
func (s *pgStore) UpdateTransactionStatus(ctx context.Context, reference string, status domain.TxStatus, txHash *string) error {
	updates := map[string]interface{}{
		"status": status,
	}
	if status == domain.TxStatusConfirmed || status == domain.TxStatusFailed {
		updates["confirmed_at"] = time.Now()
	}
	if txHash != nil {
		updates["tx_hash"] = *txHash
	}

	result := s.db.WithContext(ctx).
		Model(&schema.Transaction{}).
		Where("reference = ? AND status = ?", reference, domain.TxStatusPending).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update transaction status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("no pending transaction for reference %s", reference)
	}
	return nil
}

// ListTransactionsByRight retrieves a right's ledger, newest first
func (s *pgStore) ListTransactionsByRight(ctx context.Context, rightID string, limit int, offset uint64) ([]*schema.Transaction, uint64, error) {
	base := s.db.WithContext(ctx).Model(&schema.Transaction{}).Where("right_id = ?", rightID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	var entries []*schema.Transaction
	err := base.Preload("FromUser").Preload("ToUser").
		Order("created_at DESC").
		Limit(limit).
		Offset(int(offset)). //nolint:gosec,G115
		Find(&entries).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}

	return entries, uint64(total), nil //nolint:gosec,G115
}

// ListTransactionsByUser retrieves the ledger rows a user participated in, newest first
func (s *pgStore) ListTransactionsByUser(ctx context.Context, userID int64, limit int, offset uint64) ([]*schema.Transaction, uint64, error) {
	base := s.db.WithContext(ctx).
		Model(&schema.Transaction{}).
		Where("from_user_id = ? OR to_user_id = ?", userID, userID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	var entries []*schema.Transaction
	err := base.Preload("FromUser").Preload("ToUser").Preload("Right").
		Order("created_at DESC").
		Limit(limit).
		Offset(int(offset)). //nolint:gosec,G115
		Find(&entries).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}

	return entries, uint64(total), nil //nolint:gosec,G115
}

// =============================================================================
// Stakes
// =============================================================================

// CreateStake stakes on a dividends-enabled right. One active stake per
// (user, right); further stakes are rejected rather than merged.
func (s *pgStore) CreateStake(ctx context.Context, input CreateStakeInput) (*schema.Stake, error) {
	amount := domain.Amount(input.Amount)
	if !amount.Valid() || amount.IsZero() {
		return nil, fmt.Errorf("invalid stake amount: %q", input.Amount)
	}

	var created *schema.Stake

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var right schema.Right
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", input.RightID).
			First(&right).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrRightNotFound
			}
			return fmt.Errorf("failed to lock right: %w", err)
		}

		if !right.PaysDividends {
			return domain.ErrNoDividends
		}

		var existing int64
		if err := tx.Model(&schema.Stake{}).
			Where("user_id = ? AND right_id = ? AND is_active", input.UserID, input.RightID).
			Count(&existing).Error; err != nil {
			return fmt.Errorf("failed to check existing stake: %w", err)
		}
		if existing > 0 {
			return domain.ErrAlreadyStaked
		}

		stake := schema.Stake{
			UserID:   input.UserID,
			RightID:  input.RightID,
			Amount:   input.Amount,
			IsActive: true,
		}
		if err := tx.Create(&stake).Error; err != nil {
			return fmt.Errorf("failed to create stake: %w", err)
		}

		created = &stake
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// ReleaseStake soft-releases a user's active stake on a right
func (s *pgStore) ReleaseStake(ctx context.Context, userID int64, rightID string) (*schema.Stake, error) {
	var released *schema.Stake

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var stake schema.Stake
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND right_id = ? AND is_active", userID, rightID).
			First(&stake).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrStakeNotFound
			}
			return fmt.Errorf("failed to lock stake: %w", err)
		}

		now := time.Now()
		if err := tx.Model(&schema.Stake{}).
			Where("id = ?", stake.ID).
			Updates(map[string]interface{}{
				"is_active":   false,
				"unstaked_at": now,
			}).Error; err != nil {
			return fmt.Errorf("failed to release stake: %w", err)
		}

		stake.IsActive = false
		stake.UnstakedAt = &now
		released = &stake
		return nil
	})
	if err != nil {
		return nil, err
	}

	return released, nil
}

// GetActiveStakesByRight retrieves all active stakes of a right
func (s *pgStore) GetActiveStakesByRight(ctx context.Context, rightID string) ([]*schema.Stake, error) {
	var stakes []*schema.Stake
	err := s.db.WithContext(ctx).
		Preload("User").
		Where("right_id = ? AND is_active", rightID).
		Order("staked_at ASC").
		Find(&stakes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get active stakes: %w", err)
	}
	return stakes, nil
}

// GetActiveStakeTotal sums the active staked amount of a right in base units
func (s *pgStore) GetActiveStakeTotal(ctx context.Context, rightID string) (string, error) {
	var total string
	err := s.db.WithContext(ctx).
		Model(&schema.Stake{}).
		Select("COALESCE(SUM(amount), 0)::text").
		Where("right_id = ? AND is_active", rightID).
		Scan(&total).Error
	if err != nil {
		return "", fmt.Errorf("failed to sum active stakes: %w", err)
	}
	return total, nil
}

// =============================================================================
// Revenue distributions
// =============================================================================

// CreateScheduledDistribution schedules a distribution; duplicates for the same
// (right, period start) are ignored so the sweeper can re-run safely
func (s *pgStore) CreateScheduledDistribution(ctx context.Context, input CreateDistributionInput) (*schema.RevenueDistribution, error) {
	dist := schema.RevenueDistribution{
		RightID:      input.RightID,
		PeriodStart:  input.PeriodStart,
		PeriodEnd:    input.PeriodEnd,
		TotalRevenue: input.TotalRevenue,
		Status:       schema.DistributionStatusScheduled,
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "right_id"}, {Name: "period_start"}},
		DoNothing: true,
	}).Clauses(clause.Returning{Columns: []clause.Column{}}).
		Create(&dist).Error
	if err != nil {
		return nil, fmt.Errorf("failed to schedule distribution: %w", err)
	}

	// ID stays 0 when the period was already scheduled
	if dist.ID == 0 {
		if err := s.db.WithContext(ctx).
			Where("right_id = ? AND period_start = ?", input.RightID, input.PeriodStart).
			First(&dist).Error; err != nil {
			return nil, fmt.Errorf("failed to get existing distribution: %w", err)
		}
	}

	return &dist, nil
}

// GetDistributionByID retrieves a distribution by its primary key
func (s *pgStore) GetDistributionByID(ctx context.Context, id int64) (*schema.RevenueDistribution, error) {
	var dist schema.RevenueDistribution
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&dist).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get distribution: %w", err)
	}
	return &dist, nil
}

// GetDueDistributions retrieves scheduled distributions whose period has closed
func (s *pgStore) GetDueDistributions(ctx context.Context, asOf time.Time, limit int) ([]*schema.RevenueDistribution, error) {
	var dists []*schema.RevenueDistribution
	err := s.db.WithContext(ctx).
		Where("status = ? AND period_end <= ?", schema.DistributionStatusScheduled, asOf).
		Order("period_end ASC").
		Limit(limit).
		Find(&dists).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get due distributions: %w", err)
	}
	return dists, nil
}

// UpdateDistributionStatus transitions a distribution's lifecycle status
func (s *pgStore) UpdateDistributionStatus(ctx context.Context, id int64, status schema.DistributionStatus) error {
	result := s.db.WithContext(ctx).
		Model(&schema.RevenueDistribution{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update distribution status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("distribution %d not found", id)
	}
	return nil
}

// CompleteDistribution stores payout and hash snapshots and marks the distribution completed
func (s *pgStore) CompleteDistribution(ctx context.Context, id int64, payouts datatypes.JSON, txHashes datatypes.JSON) error {
	result := s.db.WithContext(ctx).
		Model(&schema.RevenueDistribution{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":    schema.DistributionStatusCompleted,
			"payouts":   payouts,
			"tx_hashes": txHashes,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to complete distribution: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("distribution %d not found", id)
	}
	return nil
}

// ListDistributionsByRight retrieves a right's distributions, newest period first
func (s *pgStore) ListDistributionsByRight(ctx context.Context, rightID string, limit int, offset uint64) ([]*schema.RevenueDistribution, uint64, error) {
	base := s.db.WithContext(ctx).
		Model(&schema.RevenueDistribution{}).
		Where("right_id = ?", rightID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count distributions: %w", err)
	}

	var dists []*schema.RevenueDistribution
	err := base.Order("period_start DESC").
		Limit(limit).
		Offset(int(offset)). //nolint:gosec,G115
		Find(&dists).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list distributions: %w", err)
	}

	return dists, uint64(total), nil //nolint:gosec,G115
}

// GetRightRevenueInPeriod sums the confirmed purchase revenue of a right over a period
func (s *pgStore) GetRightRevenueInPeriod(ctx context.Context, rightID string, from, to time.Time) (string, error) {
	var total string
	err := s.db.WithContext(ctx).
		Model(&schema.Transaction{}).
		Select("COALESCE(SUM(amount), 0)::text").
		Where("right_id = ? AND type = ? AND status = ? AND created_at >= ? AND created_at < ?",
			rightID, domain.TxTypePurchase, domain.TxStatusConfirmed, from, to).
		Scan(&total).Error
	if err != nil {
		return "", fmt.Errorf("failed to sum right revenue: %w", err)
	}
	return total, nil
}

// =============================================================================
// Secure files
// =============================================================================

// CreateSecureFile records an encrypted file's metadata
func (s *pgStore) CreateSecureFile(ctx context.Context, input CreateSecureFileInput) (*schema.SecureFile, error) {
	file := schema.SecureFile{
		OwnerID:          input.OwnerID,
		Filename:         input.Filename,
		DeclaredMimeType: input.DeclaredMimeType,
		DetectedMimeType: input.DetectedMimeType,
		SizeBytes:        input.SizeBytes,
		SHA256:           input.SHA256,
		StorageKey:       input.StorageKey,
		Nonce:            input.Nonce,
		KeyID:            input.KeyID,
		Status:           schema.SecureFileStatusStored,
	}

	if err := s.db.WithContext(ctx).Create(&file).Error; err != nil {
		return nil, fmt.Errorf("failed to create secure file: %w", err)
	}

	return &file, nil
}

// GetSecureFileByID retrieves a secure file by primary key
func (s *pgStore) GetSecureFileByID(ctx context.Context, id int64) (*schema.SecureFile, error) {
	var file schema.SecureFile
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&file).Error
	if err == nil {
		return &file, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get secure file: %w", err)
	}
	if !hasDBResolver(s.db) {
		return nil, nil
	}

	// Replica can lag behind primary; mint workflows read files uploaded moments ago.
	err = s.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("id = ?", id).
		First(&file).Error
	if err == nil {
		return &file, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return nil, fmt.Errorf("failed to get secure file: %w", err)
}

// ListSecureFilesByOwner retrieves a user's secure files, newest first
func (s *pgStore) ListSecureFilesByOwner(ctx context.Context, ownerID int64, limit int, offset uint64) ([]*schema.SecureFile, uint64, error) {
	base := s.db.WithContext(ctx).
		Model(&schema.SecureFile{}).
		Where("owner_id = ? AND status = ?", ownerID, schema.SecureFileStatusStored)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count secure files: %w", err)
	}

	var files []*schema.SecureFile
	err := base.Order("created_at DESC").
		Limit(limit).
		Offset(int(offset)). //nolint:gosec,G115
		Find(&files).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list secure files: %w", err)
	}

	return files, uint64(total), nil //nolint:gosec,G115
}

// =============================================================================
// Notifications
// =============================================================================

// CreateNotifications inserts notifications in one batch
func (s *pgStore) CreateNotifications(ctx context.Context, inputs []CreateNotificationInput) error {
	if len(inputs) == 0 {
		return nil
	}

	notifications := make([]schema.Notification, 0, len(inputs))
	for _, input := range inputs {
		notifications = append(notifications, schema.Notification{
			UserID:  input.UserID,
			Type:    input.Type,
			Title:   input.Title,
			Body:    input.Body,
			RightID: input.RightID,
			ActorID: input.ActorID,
		})
	}

	// Notification has 8 insertable fields
	batchSize := calculateSafeBatchSize(len(notifications), 8)
	if err := s.db.WithContext(ctx).CreateInBatches(&notifications, batchSize).Error; err != nil {
		return fmt.Errorf("failed to create notifications: %w", err)
	}

	return nil
}

// ListNotifications retrieves a user's notifications, newest first
func (s *pgStore) ListNotifications(ctx context.Context, userID int64, unreadOnly bool, limit int, offset uint64) ([]*schema.Notification, uint64, error) {
	base := s.db.WithContext(ctx).
		Model(&schema.Notification{}).
		Where("user_id = ?", userID)
	if unreadOnly {
		base = base.Where("NOT is_read")
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	var notifications []*schema.Notification
	err := base.Order("created_at DESC").
		Limit(limit).
		Offset(int(offset)). //nolint:gosec,G115
		Find(&notifications).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list notifications: %w", err)
	}

	return notifications, uint64(total), nil //nolint:gosec,G115
}

// MarkNotificationsRead marks the given notifications read; empty ids marks all
func (s *pgStore) MarkNotificationsRead(ctx context.Context, userID int64, ids []int64) (int64, error) {
	query := s.db.WithContext(ctx).
		Model(&schema.Notification{}).
		Where("user_id = ? AND NOT is_read", userID)
	if len(ids) > 0 {
		query = query.Where("id IN ?", ids)
	}

	result := query.Update("is_read", true)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// =============================================================================
// Categories
// =============================================================================

// ListCategories retrieves categories ordered by sort order
func (s *pgStore) ListCategories(ctx context.Context, includeInactive bool) ([]*schema.Category, error) {
	query := s.db.WithContext(ctx).Model(&schema.Category{})
	if !includeInactive {
		query = query.Where("is_active")
	}

	var categories []*schema.Category
	if err := query.Order("sort_order ASC, id ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// GetCategoryByID retrieves a category by primary key
func (s *pgStore) GetCategoryByID(ctx context.Context, id int64) (*schema.Category, error) {
	var category schema.Category
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return &category, nil
}

// GetCategoryBySlug retrieves a category by slug
func (s *pgStore) GetCategoryBySlug(ctx context.Context, slug string) (*schema.Category, error) {
	var category schema.Category
	err := s.db.WithContext(ctx).Where("slug = ?", slug).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category by slug: %w", err)
	}
	return &category, nil
}

// =============================================================================
// Key-value store
// =============================================================================

// SetKeyValue stores a key-value pair (upsert)
func (s *pgStore) SetKeyValue(ctx context.Context, key string, value string) error {
	kv := schema.KeyValueStore{
		Key:   key,
		Value: value,
	}

	if err := s.db.WithContext(ctx).Save(&kv).Error; err != nil {
		return fmt.Errorf("failed to set key value: %w", err)
	}
	return nil
}

// GetKeyValue retrieves a value by key; missing keys return ""
func (s *pgStore) GetKeyValue(ctx context.Context, key string) (string, error) {
	var kv schema.KeyValueStore
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&kv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get key value: %w", err)
	}
	return kv.Value, nil
}

// ConsumeKeyValue atomically deletes a key and returns its value; missing keys
// return "". Login nonces rely on this being single-use.
func (s *pgStore) ConsumeKeyValue(ctx context.Context, key string) (string, error) {
	var value string

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var kv schema.KeyValueStore
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("key = ?", key).
			First(&kv).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return fmt.Errorf("failed to lock key value: %w", err)
		}

		if err := tx.Where("key = ?", key).Delete(&schema.KeyValueStore{}).Error; err != nil {
			return fmt.Errorf("failed to consume key value: %w", err)
		}

		value = kv.Value
		return nil
	})
	if err != nil {
		return "", err
	}

	return value, nil
}

// GetAllKeyValuesByPrefix retrieves all key-value pairs with a specific prefix
func (s *pgStore) GetAllKeyValuesByPrefix(ctx context.Context, prefix string) (map[string]string, error) {
	var kvs []schema.KeyValueStore
	err := s.db.WithContext(ctx).
		Where("key LIKE ?", escapeLike(prefix)+"%").
		Find(&kvs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get key values by prefix: %w", err)
	}

	result := make(map[string]string, len(kvs))
	for _, kv := range kvs {
		result[kv.Key] = kv.Value
	}
	return result, nil
}

// GetBlockCursor retrieves the last processed block number for a chain
func (s *pgStore) GetBlockCursor(ctx context.Context, chain string) (uint64, error) {
	return NewCursorStore(s.db).GetBlockCursor(ctx, chain)
}

// SetBlockCursor stores the last processed block number for a chain
func (s *pgStore) SetBlockCursor(ctx context.Context, chain string, blockNumber uint64) error {
	return NewCursorStore(s.db).SetBlockCursor(ctx, chain, blockNumber)
}

// =============================================================================
// Webhook clients and deliveries
// =============================================================================

// GetActiveWebhookClientsByEventType retrieves active webhook clients matching an event type
func (s *pgStore) GetActiveWebhookClientsByEventType(ctx context.Context, eventType string) ([]*schema.WebhookClient, error) {
	var clients []*schema.WebhookClient

	// Query for active clients where event_filters contains the event type or wildcard "*"
	// Using JSONB containment operator @> to check if the array contains the value
	err := s.db.WithContext(ctx).
		Where("is_active").
		Where("event_filters @> ?::jsonb OR event_filters @> ?::jsonb",
			fmt.Sprintf(`["%s"]`, eventType),
			`["*"]`).
		Find(&clients).Error

	if err != nil {
		return nil, fmt.Errorf("failed to get webhook clients by event type: %w", err)
	}

	return clients, nil
}

// GetWebhookClientByID retrieves a webhook client by client ID
func (s *pgStore) GetWebhookClientByID(ctx context.Context, clientID string) (*schema.WebhookClient, error) {
	var client schema.WebhookClient
	err := s.db.WithContext(ctx).Where("client_id = ?", clientID).First(&client).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get webhook client: %w", err)
	}
	return &client, nil
}

// CreateWebhookClient registers a webhook consumer
func (s *pgStore) CreateWebhookClient(ctx context.Context, input CreateWebhookClientInput) (*schema.WebhookClient, error) {
	client := schema.WebhookClient{
		ClientID:         input.ClientID,
		WebhookURL:       input.WebhookURL,
		WebhookSecret:    input.WebhookSecret,
		EventFilters:     input.EventFilters,
		IsActive:         input.IsActive,
		RetryMaxAttempts: input.RetryMaxAttempts,
	}

	if err := s.db.WithContext(ctx).Create(&client).Error; err != nil {
		return nil, fmt.Errorf("failed to create webhook client: %w", err)
	}

	return &client, nil
}

// ListWebhookClients retrieves all registered webhook clients
func (s *pgStore) ListWebhookClients(ctx context.Context) ([]*schema.WebhookClient, error) {
	var clients []*schema.WebhookClient
	if err := s.db.WithContext(ctx).Order("created_at ASC").Find(&clients).Error; err != nil {
		return nil, fmt.Errorf("failed to list webhook clients: %w", err)
	}
	return clients, nil
}

// DeleteWebhookClient removes a webhook client by client ID
func (s *pgStore) DeleteWebhookClient(ctx context.Context, clientID string) error {
	result := s.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Delete(&schema.WebhookClient{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete webhook client: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("webhook client %s not found", clientID)
	}
	return nil
}

// CreateWebhookDelivery creates a delivery audit row
func (s *pgStore) CreateWebhookDelivery(ctx context.Context, delivery *schema.WebhookDelivery) error {
	if err := s.db.WithContext(ctx).Create(delivery).Error; err != nil {
		return fmt.Errorf("failed to create webhook delivery: %w", err)
	}
	return nil
}

// UpdateWebhookDeliveryStatus updates the status and result of a webhook delivery
func (s *pgStore) UpdateWebhookDeliveryStatus(ctx context.Context, deliveryID uint64, status schema.WebhookDeliveryStatus, attempts int, responseStatus *int, responseBody, errorMessage string) error {
	updates := map[string]interface{}{
		"delivery_status": status,
		"attempts":        attempts,
		"last_attempt_at": time.Now(),
		"response_body":   responseBody,
		"error_message":   errorMessage,
	}
	if responseStatus != nil {
		updates["response_status"] = *responseStatus
	}

	err := s.db.WithContext(ctx).
		Model(&schema.WebhookDelivery{}).
		Where("id = ?", deliveryID).
		Updates(updates).Error
	if err != nil {
		return fmt.Errorf("failed to update webhook delivery status: %w", err)
	}
	return nil
}

// =============================================================================
// Admin aggregates
// =============================================================================

// GetMarketplaceOverview aggregates the admin dashboard numbers
func (s *pgStore) GetMarketplaceOverview(ctx context.Context) (*MarketplaceOverview, error) {
	overview := &MarketplaceOverview{
		RightsByType:   make(map[string]int64),
		RightsByStatus: make(map[string]int64),
		VolumeByTxType: make(map[string]string),
	}

	if err := s.db.WithContext(ctx).Model(&schema.User{}).Count(&overview.TotalUsers).Error; err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	if err := s.db.WithContext(ctx).Model(&schema.Right{}).Count(&overview.TotalRights).Error; err != nil {
		return nil, fmt.Errorf("failed to count rights: %w", err)
	}

	var typeRows []struct {
		RightType string `gorm:"column:right_type"`
		Count     int64  `gorm:"column:count"`
	}
	if err := s.db.WithContext(ctx).Model(&schema.Right{}).
		Select("right_type, COUNT(*) AS count").
		Group("right_type").
		Scan(&typeRows).Error; err != nil {
		return nil, fmt.Errorf("failed to group rights by type: %w", err)
	}
	for _, row := range typeRows {
		overview.RightsByType[row.RightType] = row.Count
	}

	var statusRows []struct {
		Status string `gorm:"column:status"`
		Count  int64  `gorm:"column:count"`
	}
	if err := s.db.WithContext(ctx).Model(&schema.Right{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&statusRows).Error; err != nil {
		return nil, fmt.Errorf("failed to group rights by status: %w", err)
	}
	for _, row := range statusRows {
		overview.RightsByStatus[row.Status] = row.Count
	}

	var volumeRows []struct {
		Type   string `gorm:"column:type"`
		Volume string `gorm:"column:volume"`
	}
	if err := s.db.WithContext(ctx).Model(&schema.Transaction{}).
		Select("type, COALESCE(SUM(amount), 0)::text AS volume").
		Where("status = ?", domain.TxStatusConfirmed).
		Group("type").
		Scan(&volumeRows).Error; err != nil {
		return nil, fmt.Errorf("failed to sum volume by type: %w", err)
	}
	for _, row := range volumeRows {
		overview.VolumeByTxType[row.Type] = row.Volume
	}

	var trend []DailySaleStat
	err := s.db.WithContext(ctx).Raw(`
		SELECT date_trunc('day', created_at) AS day,
		       COUNT(*) AS sales,
		       COALESCE(SUM(amount), 0)::text AS volume
		FROM transactions
		WHERE type = ? AND status = ? AND created_at >= now() - interval '7 days'
		GROUP BY 1
		ORDER BY 1 ASC`,
		domain.TxTypePurchase, domain.TxStatusConfirmed).
		Scan(&trend).Error
	if err != nil {
		return nil, fmt.Errorf("failed to build sale trend: %w", err)
	}
	overview.SaleTrend = trend

	return overview, nil
}

// GetTopCreators reports creators by confirmed sale volume
func (s *pgStore) GetTopCreators(ctx context.Context, limit int) ([]*CreatorVolume, error) {
	var creators []*CreatorVolume
	err := s.db.WithContext(ctx).Raw(`
		SELECT u.id AS user_id,
		       u.address,
		       u.username,
		       COUNT(t.id) AS sales_count,
		       COALESCE(SUM(t.amount), 0)::text AS volume
		FROM transactions t
		JOIN rights r ON r.id = t.right_id
		JOIN users u ON u.id = r.creator_id
		WHERE t.type = ? AND t.status = ?
		GROUP BY u.id, u.address, u.username
		ORDER BY SUM(t.amount) DESC
		LIMIT ?`,
		domain.TxTypePurchase, domain.TxStatusConfirmed, limit).
		Scan(&creators).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get top creators: %w", err)
	}
	return creators, nil
}

// GetVerificationQueue retrieves rights awaiting verification review, oldest first
func (s *pgStore) GetVerificationQueue(ctx context.Context, limit int, offset uint64) ([]*schema.Right, uint64, error) {
	base := s.db.WithContext(ctx).
		Model(&schema.Right{}).
		Where("verification_status = ?", domain.VerificationPending)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count verification queue: %w", err)
	}

	var rights []*schema.Right
	err := rightPreloads(base).
		Order("updated_at ASC").
		Limit(limit).
		Offset(int(offset)). //nolint:gosec,G115
		Find(&rights).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get verification queue: %w", err)
	}

	return rights, uint64(total), nil //nolint:gosec,G115
}
