package middleware

import (
	"context"
	"strconv"
	"time"

	redisStore "wallet-ledger/internal/adapter/storage/redis"
	"wallet-ledger/pkg/apperror"
	"wallet-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Rate limit groups.
const (
	GroupWalletRead  = "wallet_read"
	GroupWalletWrite = "wallet_write"
)

// Limiter counts requests per key and window.
type Limiter interface {
	Allow(ctx context.Context, key string, limit int64, window time.Duration) (*redisStore.RateLimitResult, error)
}

// RateLimitRule defines a rate limit for an endpoint group.
type RateLimitRule struct {
	Limit  int64
	Window time.Duration
}

// DefaultRateLimitRules returns the limits per endpoint group. Writes are
// tighter since each one rewrites the whole snapshot.
func DefaultRateLimitRules() map[string]RateLimitRule {
	return map[string]RateLimitRule{
		GroupWalletRead:  {Limit: 120, Window: time.Minute},
		GroupWalletWrite: {Limit: 30, Window: time.Minute},
	}
}

// RateLimiter limits each client to rule within group. When the limiter
// itself fails the request goes through unthrottled.
func RateLimiter(limiter Limiter, group string, rule RateLimitRule, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		client := clientKey(c)

		result, err := limiter.Allow(c.Request.Context(), group+":"+client, rule.Limit, rule.Window)
		if err != nil {
			log.Warn().Err(err).Str("group", group).Msg("rate limit check failed, allowing request (degraded mode)")
			c.Next()
			return
		}

		writeRateLimitHeaders(c, result)
		if result.Allowed {
			c.Next()
			return
		}

		log.Info().Str("group", group).Str("client", client).Msg("rate limit exceeded")
		c.Header("Retry-After", strconv.FormatInt(max(result.ResetAt-time.Now().Unix(), 1), 10))
		response.Error(c, apperror.ErrRateLimitExceeded())
		c.Abort()
	}
}

func writeRateLimitHeaders(c *gin.Context, r *redisStore.RateLimitResult) {
	c.Header("X-RateLimit-Limit", strconv.FormatInt(r.Limit, 10))
	c.Header("X-RateLimit-Remaining", strconv.FormatInt(r.Remaining, 10))
	c.Header("X-RateLimit-Reset", strconv.FormatInt(r.ResetAt, 10))
}

// clientKey prefers the caller's X-Client-ID over its address.
func clientKey(c *gin.Context) string {
	if id := c.GetHeader(HeaderClientID); id != "" {
		return id
	}
	return c.ClientIP()
}
