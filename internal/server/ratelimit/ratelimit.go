// Package ratelimit provides per-client rate limiting backed by token buckets.
package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// bucket pairs a token bucket with the configuration that sized it.
type bucket struct {
	limiter *rate.Limiter
	limit   int
}

func newBucket(limit int, window time.Duration, burst int) *bucket {
	if burst <= 0 {
		burst = limit
	}
	// Refill rate = limit / window duration in seconds
	r := rate.Limit(float64(limit) / window.Seconds())
	return &bucket{limiter: rate.NewLimiter(r, burst), limit: limit}
}

// take consumes a token at now if one is available and reports the bucket state afterwards.
func (b *bucket) take(now time.Time) Info {
	allowed := b.limiter.AllowN(now, 1)
	tokens := b.limiter.TokensAt(now)
	if tokens < 0 {
		tokens = 0
	}

	info := Info{
		Allowed:   allowed,
		Limit:     b.limit,
		Remaining: int(tokens),
		ResetTime: now,
	}

	perSecond := float64(b.limiter.Limit())
	if perSecond <= 0 {
		return info
	}
	if missing := float64(b.limiter.Burst()) - tokens; missing > 0 {
		info.ResetTime = now.Add(time.Duration(missing / perSecond * float64(time.Second)))
	}
	if !allowed {
		info.RetryAfter = time.Duration((1 - tokens) / perSecond * float64(time.Second))
	}
	return info
}

// Info contains information about rate limit status.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Limiter manages rate limiting for multiple clients, one bucket per
// client, endpoint and method.
type Limiter struct {
	buckets    map[string]*bucket
	lastAccess map[string]time.Time
	mu         sync.Mutex
	config     *Config
	now        func() time.Time

	cleanupTicker *time.Ticker
	cleanupStop   chan struct{}
	stopOnce      sync.Once
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	IdleTTL         time.Duration // Buckets unused for this long are dropped; defaults to one hour
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// NewLimiter creates a new rate limiter with the given configuration.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = &Config{
			Enabled:         true,
			DefaultLimit:    300,
			DefaultWindow:   time.Minute,
			CleanupInterval: 5 * time.Minute,
		}
	}

	limiter := &Limiter{
		buckets:    make(map[string]*bucket),
		lastAccess: make(map[string]time.Time),
		config:     config,
		now:        time.Now,
	}

	// Start cleanup goroutine if enabled
	if config.Enabled && config.CleanupInterval > 0 {
		limiter.cleanupTicker = time.NewTicker(config.CleanupInterval)
		limiter.cleanupStop = make(chan struct{})
		go limiter.cleanup()
	}

	return limiter
}

// Allow checks if a request from the given client is allowed for the specified endpoint.
// Returns true if allowed, false if rate limited, along with rate limit information.
func (l *Limiter) Allow(clientID string, endpoint string, method string) (bool, Info) {
	if !l.config.Enabled || l.config.Whitelist[clientID] {
		return true, Info{Allowed: true}
	}
	if l.config.Blacklist[clientID] {
		return false, Info{Allowed: false}
	}

	endpointConfig := MatchEndpoint(endpoint, method, l.config.EndpointConfigs)
	if endpointConfig == nil {
		endpointConfig = &EndpointConfig{
			Limit:  l.config.DefaultLimit,
			Window: l.config.DefaultWindow,
			Burst:  l.config.DefaultLimit,
		}
	}

	// Unlimited endpoint (e.g., health check)
	if endpointConfig.Limit <= 0 || endpointConfig.Window <= 0 {
		return true, Info{Allowed: true}
	}

	// Prefix-matched endpoints share a bucket
	key := clientID + ":" + endpointConfig.key(endpoint) + ":" + method
	now := l.now()

	l.mu.Lock()
	b, ok := l.buckets[key]
	if !ok {
		b = newBucket(endpointConfig.Limit, endpointConfig.Window, endpointConfig.Burst)
		l.buckets[key] = b
	}
	l.lastAccess[key] = now
	l.mu.Unlock()

	info := b.take(now)
	return info.Allowed, info
}

// cleanup removes old unused buckets to prevent memory leaks.
func (l *Limiter) cleanup() {
	for {
		select {
		case <-l.cleanupTicker.C:
			l.cleanupBuckets()
		case <-l.cleanupStop:
			return
		}
	}
}

// cleanupBuckets removes buckets that have been idle for longer than IdleTTL.
func (l *Limiter) cleanupBuckets() {
	ttl := l.config.IdleTTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	cutoff := l.now().Add(-ttl)

	l.mu.Lock()
	defer l.mu.Unlock()
	for key, last := range l.lastAccess {
		if last.Before(cutoff) {
			delete(l.buckets, key)
			delete(l.lastAccess, key)
		}
	}
}

// Stop stops the cleanup goroutine. It is safe to call more than once.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() {
		if l.cleanupTicker != nil {
			l.cleanupTicker.Stop()
		}
		if l.cleanupStop != nil {
			close(l.cleanupStop)
		}
	})
}
