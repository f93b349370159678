package handler

import (
	"wallet-service/internal/adapter/http/middleware"
	redisStore "wallet-service/internal/adapter/storage/redis"
	"wallet-service/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	WalletSvc      ports.WalletService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	walletHandler := NewWalletHandler(deps.WalletSvc)
	wallets := v1.Group("/users/:userId/wallets")
	{
		wallets.POST("", rl("wallet_create"), walletHandler.Create)
		wallets.GET("", rl("wallet_read"), walletHandler.Search)
		wallets.GET("/default", rl("wallet_read"), walletHandler.RetrieveDefault)
		wallets.GET("/:walletId", rl("wallet_read"), walletHandler.Retrieve)
		wallets.PUT("/:walletId", rl("wallet_write"), walletHandler.Update)
		wallets.PATCH("/:walletId", rl("wallet_write"), walletHandler.PartialUpdate)
		wallets.DELETE("/:walletId", rl("wallet_write"), walletHandler.Delete)
		wallets.PATCH("/:walletId/default", rl("wallet_write"), walletHandler.SetDefault)
		wallets.PATCH("/:walletId/toggle/:field", rl("wallet_write"), walletHandler.Toggle)
	}

	return r
}
