package handler

import (
	"wallet-ledger/internal/adapter/http/middleware"
	redisStore "wallet-ledger/internal/adapter/storage/redis"
	"wallet-ledger/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Ledger         ports.WalletLedger
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	OpenAPISpec    []byte // nil = /swagger/spec answers 404
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Swagger documentation
	docs := NewDocsHandler(deps.OpenAPISpec, "Wallet Ledger - API Docs", "/swagger/spec")
	swagger := r.Group("/swagger")
	{
		swagger.GET("", docs.UI)
		swagger.GET("/spec", docs.Spec)
	}

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

	walletHandler := NewWalletHandler(deps.Ledger)

	wallet := r.Group("/api/v1/wallet")
	{
		read := wallet.Group("", rl(middleware.GroupWalletRead))
		read.GET("/state", walletHandler.GetState)
		read.GET("/summary", walletHandler.GetSummary)
		read.GET("/transactions", walletHandler.ListTransactions)
		read.GET("/team", walletHandler.GetTeam)
		read.GET("/assets-page", walletHandler.GetAssetsPage)

		write := wallet.Group("", rl(middleware.GroupWalletWrite))
		write.POST("/deposit", walletHandler.Deposit)
		write.POST("/withdraw", walletHandler.Withdraw)
		write.POST("/swap", walletHandler.Swap)
		write.POST("/swap/record", walletHandler.RecordSwap)
		write.POST("/income", walletHandler.AddIncome)
		write.PUT("/prices", walletHandler.SetPrices)
		write.POST("/welcome-bonus", walletHandler.ApplyWelcomeBonus)
	}

	return r
}
