package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/dright/marketplace/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no prefix)
	router.GET("/healthz", handler.HealthCheck)

	authed := middleware.Auth(authCfg)

	api := router.Group("/api")
	{
		// Wallet authentication
		api.POST("/auth/nonce", handler.RequestNonce)
		api.POST("/auth/wallet", handler.WalletLogin)
		api.GET("/wallets/providers", handler.GetWalletProviders)

		// Marketplace browse (public read access)
		api.GET("/rights", handler.ListRights)
		api.GET("/rights/:id", handler.GetRight)
		api.GET("/rights/:id/bids", handler.ListBids)
		api.GET("/rights/:id/distributions", handler.ListDistributions)
		api.GET("/rights/:id/transactions", handler.ListRightTransactions)
		api.GET("/purchase/breakdown/:id", handler.GetBreakdown)
		api.GET("/categories", handler.ListCategories)

		// Rights lifecycle (requires authentication)
		api.POST("/rights", authed, handler.CreateRight)
		api.PATCH("/rights/:id", authed, handler.UpdateRight)
		api.DELETE("/rights/:id", authed, handler.DeleteRight)
		api.POST("/rights/:id/favorite", authed, handler.ToggleFavorite)

		// Trading (requires authentication)
		api.POST("/rights/:id/bids", authed, handler.PlaceBid)
		api.POST("/rights/:id/purchase", authed, handler.Purchase)
		api.POST("/rights/:id/stake", authed, handler.Stake)
		api.DELETE("/rights/:id/stake", authed, handler.Unstake)

		// Secure file vault (requires authentication)
		api.POST("/secure-files/upload", authed, handler.UploadSecureFile)
		api.GET("/secure-files/:id", authed, handler.DownloadSecureFile)

		// Profiles and social graph
		api.PATCH("/users/me", authed, handler.UpdateProfile)
		api.GET("/users/me/favorites", authed, handler.ListFavorites)
		api.GET("/users/me/notifications", authed, handler.ListNotifications)
		api.POST("/users/me/notifications/read", authed, handler.MarkNotificationsRead)
		api.GET("/users/:address", handler.GetUser)
		api.GET("/users/:address/rights", handler.ListUserRights)
		api.POST("/users/:address/follow", authed, handler.ToggleFollow)
		api.GET("/users/:address/followers", handler.ListFollowers)
		api.GET("/users/:address/following", handler.ListFollowing)

		// Chain status
		api.GET("/ethereum/status", handler.GetEthereumStatus)
		api.GET("/hedera/status", handler.GetHederaStatus)

		// Admin surface (requires API key authentication)
		admin := api.Group("/admin", middleware.RequireAPIKey(authCfg))
		{
			admin.GET("/reports/overview", handler.GetOverview)
			admin.GET("/reports/top-creators", handler.GetTopCreators)
			admin.GET("/verification-queue", handler.GetVerificationQueue)
			admin.POST("/rights/:id/verification", handler.VerifyRight)
			admin.POST("/users/:address/ban", handler.BanUser)
			admin.GET("/webhooks", handler.ListWebhookClients)
			admin.POST("/webhooks", handler.CreateWebhookClient)
			admin.DELETE("/webhooks/:id", handler.DeleteWebhookClient)
		}
	}
}
