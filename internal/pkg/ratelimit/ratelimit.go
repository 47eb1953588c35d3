package ratelimit

import (
	"sync"
	"time"
)

// TokenBucket is a refilling token bucket.
type TokenBucket struct {
	tokens     int
	maxTokens  int
	refillRate int
	refillTime time.Duration
	lastRefill time.Time
	mutex      sync.Mutex
}

func NewTokenBucket(maxTokens, refillRate int, refillTime time.Duration) *TokenBucket {
	return &TokenBucket{
		tokens:     maxTokens,
		maxTokens:  maxTokens,
		refillRate: refillRate,
		refillTime: refillTime,
		lastRefill: time.Now(),
	}
}

// Allow consumes a token if one is available, otherwise reports how long
// until the next token.
func (tb *TokenBucket) Allow() (bool, time.Duration) {
	tb.mutex.Lock()
	defer tb.mutex.Unlock()

	now := time.Now()

	elapsed := now.Sub(tb.lastRefill)
	tokensToAdd := int(elapsed/tb.refillTime) * tb.refillRate

	if tokensToAdd > 0 {
		tb.tokens += tokensToAdd
		if tb.tokens > tb.maxTokens {
			tb.tokens = tb.maxTokens
		}
		tb.lastRefill = now
	}

	if tb.tokens > 0 {
		tb.tokens--
		return true, 0
	}

	nextRefill := tb.lastRefill.Add(tb.refillTime)
	return false, nextRefill.Sub(now)
}

// Limiter keeps one bucket per key (client IP for the login path).
type Limiter struct {
	buckets    map[string]*TokenBucket
	maxTokens  int
	refillRate int
	refillTime time.Duration
	mutex      sync.RWMutex
}

// NewLimiter creates a limiter whose per-key buckets hold maxTokens and gain
// refillRate tokens every refillTime.
func NewLimiter(maxTokens, refillRate int, refillTime time.Duration) *Limiter {
	return &Limiter{
		buckets:    make(map[string]*TokenBucket),
		maxTokens:  maxTokens,
		refillRate: refillRate,
		refillTime: refillTime,
	}
}

// Allow checks the bucket for key, creating it on first use.
func (l *Limiter) Allow(key string) (bool, time.Duration) {
	l.mutex.RLock()
	bucket, exists := l.buckets[key]
	l.mutex.RUnlock()

	if !exists {
		l.mutex.Lock()
		if bucket, exists = l.buckets[key]; !exists {
			bucket = NewTokenBucket(l.maxTokens, l.refillRate, l.refillTime)
			l.buckets[key] = bucket
		}
		l.mutex.Unlock()
	}

	return bucket.Allow()
}
