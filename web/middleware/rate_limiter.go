package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RateLimiterConfig holds configuration for rate limiting
type RateLimiterConfig struct {
	MessagesPerMinute int // Max chat messages per client per minute
	BurstSize         int // Allow burst of N requests
}

// TokenBucket implements a token bucket rate limiter
type TokenBucket struct {
	tokens     float64
	maxTokens  float64
	refillRate float64 // tokens per second
	lastRefill time.Time
	mu         sync.Mutex
}

// NewTokenBucket creates a new token bucket
func NewTokenBucket(maxTokens float64, refillRate float64) *TokenBucket {
	return &TokenBucket{
		tokens:     maxTokens,
		maxTokens:  maxTokens,
		refillRate: refillRate,
		lastRefill: time.Now(),
	}
}

// Allow checks if a request can proceed and consumes a token if so
func (tb *TokenBucket) Allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(tb.lastRefill).Seconds()

	tb.tokens = min(tb.maxTokens, tb.tokens+(elapsed*tb.refillRate))
	tb.lastRefill = now

	if tb.tokens >= 1.0 {
		tb.tokens -= 1.0
		return true
	}
	return false
}

// ClientRateLimiter manages chat rate limits per client address. There are
// no sessions in this service, so the remote address is the closest stable
// key available.
type ClientRateLimiter struct {
	config  RateLimiterConfig
	buckets map[string]*TokenBucket
	mu      sync.Mutex
	logger  *zap.Logger
}

func NewClientRateLimiter(config RateLimiterConfig, logger *zap.Logger) *ClientRateLimiter {
	return &ClientRateLimiter{
		config:  config,
		buckets: make(map[string]*TokenBucket),
		logger:  logger,
	}
}

// Allow checks if a message from the given client can proceed.
func (rl *ClientRateLimiter) Allow(clientIP string) bool {
	rl.mu.Lock()
	bucket, exists := rl.buckets[clientIP]
	if !exists {
		if len(rl.buckets) > 1000 {
			// Bounded memory: clients refill quickly, dropping state is cheap.
			rl.logger.Info("Clearing rate limiter cache", zap.Int("clients", len(rl.buckets)))
			rl.buckets = make(map[string]*TokenBucket)
		}
		refillRate := float64(rl.config.MessagesPerMinute) / 60.0
		bucket = NewTokenBucket(float64(rl.config.BurstSize), refillRate)
		rl.buckets[clientIP] = bucket
	}
	rl.mu.Unlock()

	return bucket.Allow()
}

// RateLimit creates a Gin middleware that throttles chat messages.
func RateLimit(limiter *ClientRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			limiter.logger.Warn("Rate limit exceeded", zap.String("client", c.ClientIP()))
			c.Header("Retry-After", "60")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "rate limit exceeded",
				"retry_after": 60,
			})
			return
		}
		c.Next()
	}
}
