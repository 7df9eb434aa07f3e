package rest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dright/marketplace/internal/api/middleware"
	"github.com/dright/marketplace/internal/api/shared/dto"
	"github.com/dright/marketplace/internal/api/shared/executor"
	"github.com/dright/marketplace/internal/domain"
	"github.com/dright/marketplace/internal/vault"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// RequestNonce mints a one-time login challenge
	// POST /api/auth/nonce
	RequestNonce(c *gin.Context)

	// WalletLogin verifies a signed challenge and issues a session token
	// POST /api/auth/wallet
	WalletLogin(c *gin.Context)

	// GetWalletProviders probes wallet provider availability
	// GET /api/wallets/providers
	GetWalletProviders(c *gin.Context)

	// ListRights retrieves rights matching the browse filter
	// GET /api/rights?category=<slug>&right_type=<t>&listing_type=<t>&chain=<c>&q=<search>&sort=<sort>&limit=<n>&offset=<n>
	ListRights(c *gin.Context)

	// CreateRight creates a draft right and starts its mint workflow
	// POST /api/rights
	CreateRight(c *gin.Context)

	// GetRight retrieves a right by UUID or slug, counting the view
	// GET /api/rights/:id
	GetRight(c *gin.Context)

	// UpdateRight updates the owner-mutable fields of a right
	// PATCH /api/rights/:id
	UpdateRight(c *gin.Context)

	// DeleteRight deletes a right while it is still a draft
	// DELETE /api/rights/:id
	DeleteRight(c *gin.Context)

	// ToggleFavorite flips the caller's favorite on a right
	// POST /api/rights/:id/favorite
	ToggleFavorite(c *gin.Context)

	// ListBids retrieves an auction's bids, newest first
	// GET /api/rights/:id/bids
	ListBids(c *gin.Context)

	// PlaceBid places a bid on an open auction
	// POST /api/rights/:id/bids
	PlaceBid(c *gin.Context)

	// Purchase executes a fixed-price purchase
	// POST /api/rights/:id/purchase
	Purchase(c *gin.Context)

	// GetBreakdown computes the purchase price breakdown
	// GET /api/purchase/breakdown/:id
	GetBreakdown(c *gin.Context)

	// Stake stakes on a dividends-enabled right
	// POST /api/rights/:id/stake
	Stake(c *gin.Context)

	// Unstake releases the caller's active stake
	// DELETE /api/rights/:id/stake
	Unstake(c *gin.Context)

	// ListDistributions retrieves a right's revenue distributions
	// GET /api/rights/:id/distributions
	ListDistributions(c *gin.Context)

	// ListRightTransactions retrieves a right's ledger, newest first
	// GET /api/rights/:id/transactions
	ListRightTransactions(c *gin.Context)

	// UploadSecureFile encrypts an upload into the vault
	// POST /api/secure-files/upload (multipart, field "file")
	UploadSecureFile(c *gin.Context)

	// DownloadSecureFile streams a decrypted vault file to its owner or an admin
	// GET /api/secure-files/:id
	DownloadSecureFile(c *gin.Context)

	// GetUser retrieves a user profile by wallet address
	// GET /api/users/:address
	GetUser(c *gin.Context)

	// UpdateProfile updates the caller's profile
	// PATCH /api/users/me
	UpdateProfile(c *gin.Context)

	// ListUserRights retrieves the rights a user created or owns
	// GET /api/users/:address/rights?role=created|owned
	ListUserRights(c *gin.Context)

	// ToggleFollow flips the caller's follow on an address
	// POST /api/users/:address/follow
	ToggleFollow(c *gin.Context)

	// ListFollowers retrieves the users following an address
	// GET /api/users/:address/followers
	ListFollowers(c *gin.Context)

	// ListFollowing retrieves the users an address follows
	// GET /api/users/:address/following
	ListFollowing(c *gin.Context)

	// ListFavorites retrieves the rights the caller favorited
	// GET /api/users/me/favorites
	ListFavorites(c *gin.Context)

	// ListNotifications retrieves the caller's notifications
	// GET /api/users/me/notifications?unread=true
	ListNotifications(c *gin.Context)

	// MarkNotificationsRead marks notifications read; empty ids marks all
	// POST /api/users/me/notifications/read
	MarkNotificationsRead(c *gin.Context)

	// ListCategories retrieves the active browse categories
	// GET /api/categories
	ListCategories(c *gin.Context)

	// GetEthereumStatus reports the Ethereum service's network status
	// GET /api/ethereum/status
	GetEthereumStatus(c *gin.Context)

	// GetHederaStatus reports the Hedera service's network status
	// GET /api/hedera/status
	GetHederaStatus(c *gin.Context)

	// GetOverview aggregates the admin dashboard numbers (requires API key)
	// GET /api/admin/reports/overview
	GetOverview(c *gin.Context)

	// GetTopCreators reports creators by sale volume (requires API key)
	// GET /api/admin/reports/top-creators
	GetTopCreators(c *gin.Context)

	// GetVerificationQueue retrieves rights awaiting review (requires API key)
	// GET /api/admin/verification-queue
	GetVerificationQueue(c *gin.Context)

	// VerifyRight records a verification decision (requires API key)
	// POST /api/admin/rights/:id/verification
	VerifyRight(c *gin.Context)

	// BanUser bans or unbans a user (requires API key)
	// POST /api/admin/users/:address/ban
	BanUser(c *gin.Context)

	// ListWebhookClients retrieves webhook clients (requires API key)
	// GET /api/admin/webhooks
	ListWebhookClients(c *gin.Context)

	// CreateWebhookClient registers a webhook consumer (requires API key)
	// POST /api/admin/webhooks
	CreateWebhookClient(c *gin.Context)

	// DeleteWebhookClient removes a webhook client (requires API key)
	// DELETE /api/admin/webhooks/:id
	DeleteWebhookClient(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /healthz
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	debug          bool
	maxUploadBytes int64
	executor       executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(debug bool, maxUploadBytes int64, exec executor.Executor) Handler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = domain.MAX_SECURE_FILE_BYTES
	}
	return &handler{
		debug:          debug,
		maxUploadBytes: maxUploadBytes,
		executor:       exec,
	}
}

// bindJSONStrict decodes the request body rejecting unknown fields
func bindJSONStrict(c *gin.Context, out any) error {
	decoder := json.NewDecoder(c.Request.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(out)
}

// callerID returns the authenticated user, responding 401 when absent
func callerID(c *gin.Context) (int64, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		respondUnauthorized(c, "Authentication required")
		return 0, false
	}
	return userID, true
}

// --- Auth ---

func (h *handler) RequestNonce(c *gin.Context) {
	var req dto.RequestNonceRequest
	if err := bindJSONStrict(c, &req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err)
		return
	}

	response, err := h.executor.RequestNonce(c.Request.Context(), req.Blockchain, req.Address)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) WalletLogin(c *gin.Context) {
	var req dto.WalletLoginRequest
	if err := bindJSONStrict(c, &req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err)
		return
	}

	response, err := h.executor.WalletLogin(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) GetWalletProviders(c *gin.Context) {
	c.JSON(http.StatusOK, h.executor.DetectWalletProviders(c.Request.Context()))
}

// --- Rights ---

func (h *handler) ListRights(c *gin.Context) {
	params, err := ParseListRightsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}
	if err := params.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.GetRights(c.Request.Context(), params.ToFilter())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) CreateRight(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.CreateRightRequest
	if err := bindJSONStrict(c, &req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err)
		return
	}

	response, err := h.executor.CreateRight(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, response)
}

func (h *handler) GetRight(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respondBadRequest(c, "Right ID is required")
		return
	}

	response, err := h.executor.GetRight(c.Request.Context(), id, true)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) UpdateRight(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.UpdateRightRequest
	if err := bindJSONStrict(c, &req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err)
		return
	}

	response, err := h.executor.UpdateRight(c.Request.Context(), userID, c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) DeleteRight(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	if err := h.executor.DeleteDraftRight(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *handler) ToggleFavorite(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	response, err := h.executor.ToggleFavorite(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// --- Trading ---

func (h *handler) ListBids(c *gin.Context) {
	params, err := ParsePageQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.GetBids(c.Request.Context(), c.Param("id"), params.Limit, params.Offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) PlaceBid(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.PlaceBidRequest
	if err := bindJSONStrict(c, &req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err)
		return
	}

	response, err := h.executor.PlaceBid(c.Request.Context(), userID, c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *handler) Purchase(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	response, err := h.executor.Purchase(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) GetBreakdown(c *gin.Context) {
	response, err := h.executor.GetBreakdown(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// --- Staking ---

func (h *handler) Stake(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.StakeRequest
	if err := bindJSONStrict(c, &req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err)
		return
	}

	response, err := h.executor.Stake(c.Request.Context(), userID, c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *handler) Unstake(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	response, err := h.executor.Unstake(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) ListDistributions(c *gin.Context) {
	params, err := ParsePageQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.GetDistributions(c.Request.Context(), c.Param("id"), params.Limit, params.Offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) ListRightTransactions(c *gin.Context) {
	params, err := ParsePageQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.GetRightTransactions(c.Request.Context(), c.Param("id"), params.Limit, params.Offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// --- Vault ---

func (h *handler) UploadSecureFile(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	// Reject oversized bodies before buffering the upload
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes+4096)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondBadRequest(c, "Multipart field \"file\" is required", err.Error())
		return
	}
	if fileHeader.Size > h.maxUploadBytes {
		respondError(c, domain.ErrFileTooLarge)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, fmt.Errorf("failed to open upload: %w", err))
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(io.LimitReader(file, h.maxUploadBytes+1))
	if err != nil {
		respondError(c, fmt.Errorf("failed to read upload: %w", err))
		return
	}
	if int64(len(data)) > h.maxUploadBytes {
		respondError(c, domain.ErrFileTooLarge)
		return
	}

	response, err := h.executor.UploadSecureFile(c.Request.Context(), userID, vault.Upload{
		Filename:         fileHeader.Filename,
		DeclaredMimeType: fileHeader.Header.Get("Content-Type"),
		Data:             data,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *handler) DownloadSecureFile(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	fileID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid file ID")
		return
	}

	content, err := h.executor.DownloadSecureFile(c.Request.Context(), userID, middleware.IsAPIKeySession(c), fileID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", content.Filename))
	c.Data(http.StatusOK, content.MimeType, content.Data)
}

// --- Users ---

func (h *handler) GetUser(c *gin.Context) {
	response, err := h.executor.GetUser(c.Request.Context(), c.Param("address"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) UpdateProfile(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := bindJSONStrict(c, &req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err)
		return
	}

	response, err := h.executor.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) ListUserRights(c *gin.Context) {
	params, err := ParseUserRightsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.GetUserRights(c.Request.Context(), c.Param("address"), params.Role, params.Limit, params.Offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) ToggleFollow(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	response, err := h.executor.ToggleFollow(c.Request.Context(), userID, c.Param("address"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) ListFollowers(c *gin.Context) {
	params, err := ParsePageQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.GetFollowers(c.Request.Context(), c.Param("address"), params.Limit, params.Offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) ListFollowing(c *gin.Context) {
	params, err := ParsePageQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.GetFollowing(c.Request.Context(), c.Param("address"), params.Limit, params.Offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) ListFavorites(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	params, err := ParsePageQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.GetFavorites(c.Request.Context(), userID, params.Limit, params.Offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) ListNotifications(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	params, err := ParseNotificationsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.GetNotifications(c.Request.Context(), userID, params.Unread, params.Limit, params.Offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) MarkNotificationsRead(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.MarkNotificationsReadRequest
	if err := bindJSONStrict(c, &req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err)
		return
	}

	response, err := h.executor.MarkNotificationsRead(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// --- Misc ---

func (h *handler) ListCategories(c *gin.Context) {
	response, err := h.executor.GetCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) GetEthereumStatus(c *gin.Context) {
	h.chainStatus(c, domain.BlockchainEthereum)
}

func (h *handler) GetHederaStatus(c *gin.Context) {
	h.chainStatus(c, domain.BlockchainHedera)
}

func (h *handler) chainStatus(c *gin.Context, blockchain domain.Blockchain) {
	response, err := h.executor.GetChainStatus(c.Request.Context(), blockchain)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// --- Admin ---

func (h *handler) GetOverview(c *gin.Context) {
	response, err := h.executor.GetOverview(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) GetTopCreators(c *gin.Context) {
	params, err := ParsePageQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.GetTopCreators(c.Request.Context(), params.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) GetVerificationQueue(c *gin.Context) {
	params, err := ParsePageQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.GetVerificationQueue(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) VerifyRight(c *gin.Context) {
	var req dto.VerifyRightRequest
	if err := bindJSONStrict(c, &req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err)
		return
	}

	reviewer := c.GetString(string(middleware.AUTH_SUBJECT_KEY))
	if reviewer == "" {
		reviewer = "admin"
	}

	response, err := h.executor.VerifyRight(c.Request.Context(), reviewer, c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) BanUser(c *gin.Context) {
	var req dto.BanUserRequest
	if err := bindJSONStrict(c, &req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err)
		return
	}

	response, err := h.executor.BanUser(c.Request.Context(), c.Param("address"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) ListWebhookClients(c *gin.Context) {
	response, err := h.executor.ListWebhookClients(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) CreateWebhookClient(c *gin.Context) {
	var req dto.CreateWebhookClientRequest
	if err := bindJSONStrict(c, &req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := req.Validate(h.debug); err != nil {
		respondError(c, err)
		return
	}

	response, err := h.executor.CreateWebhookClient(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *handler) DeleteWebhookClient(c *gin.Context) {
	clientID := c.Param("id")
	if clientID == "" {
		respondBadRequest(c, "Client ID is required")
		return
	}

	if err := h.executor.DeleteWebhookClient(c.Request.Context(), clientID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"service": "dright-api",
	})
}
