package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dright/marketplace/internal/adapter"
	"github.com/dright/marketplace/internal/api/middleware"
	"github.com/dright/marketplace/internal/api/rest"
	"github.com/dright/marketplace/internal/api/shared/executor"
	"github.com/dright/marketplace/internal/auth"
	"github.com/dright/marketplace/internal/logger"
	"github.com/dright/marketplace/internal/messaging"
	"github.com/dright/marketplace/internal/metadata"
	"github.com/dright/marketplace/internal/nft"
	"github.com/dright/marketplace/internal/pricing"
	"github.com/dright/marketplace/internal/providers/rates"
	"github.com/dright/marketplace/internal/providers/temporal"
	"github.com/dright/marketplace/internal/registry"
	"github.com/dright/marketplace/internal/store"
	"github.com/dright/marketplace/internal/vault"
	"github.com/dright/marketplace/internal/wallet"
)

// Config holds the server configuration
type Config struct {
	Debug          bool
	Host           string
	Port           int
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	AllowedOrigins []string
	APIKeys        []string
	MaxUploadBytes int64
	Executor       executor.Config
}

// Dependencies carries the constructed subsystems the API runs on.
type Dependencies struct {
	Store        store.Store
	Orchestrator temporal.TemporalOrchestrator
	Publisher    messaging.Publisher
	Wallets      *wallet.Registry
	Nonces       *auth.NonceService
	JWT          *auth.JWTService
	Chains       *nft.Router
	Pricer       *pricing.Calculator
	Rates        rates.Client
	Vault        vault.Service
	Moderation   registry.Moderation
	Resolver     metadata.Resolver
	Enhancer     metadata.Enhancer
	Clock        adapter.Clock
}

// Server wraps the HTTP server
type Server struct {
	config     Config
	deps       Dependencies
	httpServer *http.Server
}

// New creates a new API server
func New(cfg Config, deps Dependencies) *Server {
	return &Server{
		config: cfg,
		deps:   deps,
	}
}

// Start initializes and starts the HTTP server
func (s *Server) Start() error {
	if s.config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.SetupCORS(s.config.AllowedOrigins))

	// Shared executor holds the business logic behind every endpoint
	exec := executor.NewExecutor(
		s.deps.Store,
		s.deps.Orchestrator,
		s.deps.Publisher,
		s.deps.Wallets,
		s.deps.Nonces,
		s.deps.JWT,
		s.deps.Chains,
		s.deps.Pricer,
		s.deps.Rates,
		s.deps.Vault,
		s.deps.Moderation,
		s.deps.Resolver,
		s.deps.Enhancer,
		s.deps.Clock,
		s.config.Executor,
	)

	restHandler := rest.NewHandler(s.config.Debug, s.config.MaxUploadBytes, exec)

	authCfg := middleware.AuthConfig{
		JWT:     s.deps.JWT,
		APIKeys: s.config.APIKeys,
	}
	rest.SetupRoutes(router, restHandler, authCfg)

	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	logger.Info("Starting API server",
		zap.String("address", addr),
	)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down API server")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}

	return nil
}
