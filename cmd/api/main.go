package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wallet-ledger/config"
	httpHandler "wallet-ledger/internal/adapter/http/handler"
	fileStorage "wallet-ledger/internal/adapter/storage/file"
	memoryStorage "wallet-ledger/internal/adapter/storage/memory"
	pgStorage "wallet-ledger/internal/adapter/storage/postgres"
	redisStorage "wallet-ledger/internal/adapter/storage/redis"
	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/internal/service"
	"wallet-ledger/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/spf13/afero"
)

func main() {
	// A local .env is optional; real env vars still win over config file values.
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)
	gin.SetMode(cfg.Server.Mode)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("store", cfg.Store.Driver).
		Msg("Starting Wallet Ledger")

	ctx := context.Background()

	ledgerCfg, err := ledgerConfig(cfg.Wallet)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid wallet configuration")
	}

	// Redis serves the snapshot store, the rate limiter, or both.
	var rdb *goredis.Client
	if cfg.Store.Driver == config.StoreDriverRedis || cfg.Redis.RateLimit {
		rdb, err = redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		log.Info().Msg("Redis connected")
	}

	store, checkers, closeStore, err := openSnapshotStore(ctx, cfg, rdb, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open snapshot store")
	}
	defer closeStore()

	var opts []service.LedgerOption
	if cfg.Store.EncryptionKey != "" {
		cipher, err := service.NewSnapshotCipher(cfg.Store.EncryptionKey)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize snapshot encryption")
		}
		opts = append(opts, service.WithSealer(cipher))
		log.Info().Msg("Snapshot encryption enabled")
	}

	ledger := service.NewWalletLedger(store, ledgerCfg, logger.Component(log, "ledger"), opts...)

	var rateLimitStore *redisStorage.RateLimitStore
	if cfg.Redis.RateLimit {
		rateLimitStore = redisStorage.NewRateLimitStore(rdb)
		checkers = append(checkers, rateLimitStore)
	}

	// Load OpenAPI spec for Swagger UI
	specBytes, err := os.ReadFile("docs/api/openapi.yaml")
	if err == nil {
		log.Info().Msg("OpenAPI spec loaded for Swagger UI at /swagger")
	} else {
		log.Warn().Err(err).Msg("OpenAPI spec not found, Swagger UI will be unavailable")
	}

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Ledger:         ledger,
		RateLimitStore: rateLimitStore,
		HealthCheckers: checkers,
		OpenAPISpec:    specBytes,
		Logger:         logger.Component(log, "http"),
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// openSnapshotStore builds the configured backend together with its health
// checkers and a close func.
func openSnapshotStore(ctx context.Context, cfg *config.Config, rdb *goredis.Client, log zerolog.Logger) (ports.SnapshotStore, []ports.HealthChecker, func(), error) {
	noop := func() {}

	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		log.Warn().Msg("Using in-memory snapshot store, wallet is lost on restart")
		return memoryStorage.NewSnapshotStore(), nil, noop, nil

	case config.StoreDriverRedis:
		store := redisStorage.NewSnapshotStore(rdb, cfg.Store.Key)
		log.Info().Str("key", store.Key()).Msg("Using Redis snapshot store")
		return store, []ports.HealthChecker{store}, noop, nil

	case config.StoreDriverPostgres:
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("connecting to PostgreSQL: %w", err)
		}
		store := pgStorage.NewSnapshotStore(pool, cfg.Store.Key)
		if err := store.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, nil, err
		}
		log.Info().Msg("PostgreSQL connected")
		return store, []ports.HealthChecker{store}, pool.Close, nil

	default:
		store, err := fileStorage.NewSnapshotStore(afero.NewOsFs(), cfg.Store.Dir, cfg.Store.Key)
		if err != nil {
			return nil, nil, nil, err
		}
		log.Info().Str("path", store.Path()).Msg("Using file snapshot store")
		return store, []ports.HealthChecker{store}, noop, nil
	}
}

// ledgerConfig parses the decimal settings of the wallet section.
func ledgerConfig(w config.WalletConfig) (service.LedgerConfig, error) {
	out := service.DefaultLedgerConfig()

	if w.WelcomeBonus != "" {
		bonus, err := decimal.NewFromString(w.WelcomeBonus)
		if err != nil {
			return out, fmt.Errorf("wallet.welcome_bonus: %w", err)
		}
		out.WelcomeBonus = bonus
	}

	if w.WithdrawFeeRate != "" {
		rate, err := decimal.NewFromString(w.WithdrawFeeRate)
		if err != nil {
			return out, fmt.Errorf("wallet.withdraw_fee_rate: %w", err)
		}
		if rate.IsNegative() || rate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
			return out, fmt.Errorf("wallet.withdraw_fee_rate must be in [0, 1), got %s", rate)
		}
		out.WithdrawFeeRate = rate
	}

	if len(w.Prices) > 0 {
		out.Prices = make(map[string]decimal.Decimal, len(w.Prices))
		for sym, raw := range w.Prices {
			p, err := decimal.NewFromString(raw)
			if err != nil {
				return out, fmt.Errorf("wallet.prices.%s: %w", sym, err)
			}
			if !domain.ValidAmount(p) {
				return out, fmt.Errorf("wallet.prices.%s must be positive and within bounds, got %s", sym, raw)
			}
			out.Prices[sym] = p
		}
	}

	return out, nil
}
