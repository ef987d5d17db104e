// Package ratelimit throttles API clients per endpoint with token buckets.
package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// idleBucketTTL is how long an unused bucket survives cleanup.
const idleBucketTTL = time.Hour

// Info contains information about rate limit status.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

type bucket struct {
	lim        *rate.Limiter
	burst      int
	lastAccess time.Time
}

// Limiter keeps one token bucket per client and endpoint tier.
type Limiter struct {
	config *Config

	mu      sync.Mutex
	buckets map[string]*bucket

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
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// NewLimiter creates a new rate limiter with the given configuration.
// A nil config allows 1000 requests per minute per client and method.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = &Config{
			Enabled:         true,
			DefaultLimit:    1000,
			DefaultWindow:   time.Minute,
			CleanupInterval: 5 * time.Minute,
			Whitelist:       make(map[string]bool),
			Blacklist:       make(map[string]bool),
		}
	}

	l := &Limiter{
		config:  config,
		buckets: make(map[string]*bucket),
	}

	if config.Enabled && config.CleanupInterval > 0 {
		l.cleanupTicker = time.NewTicker(config.CleanupInterval)
		l.cleanupStop = make(chan struct{})
		go l.cleanup()
	}

	return l
}

// Allow reports whether a request from clientID to the endpoint may proceed.
func (l *Limiter) Allow(clientID string, endpoint string, method string) (bool, Info) {
	if !l.config.Enabled || l.config.Whitelist[clientID] {
		return true, Info{Allowed: true}
	}
	if l.config.Blacklist[clientID] {
		return false, Info{Allowed: false}
	}

	ec := MatchEndpoint(endpoint, method, l.config.EndpointConfigs)
	// Unmatched paths share one default bucket per client and method.
	key := clientID + ":" + method
	if ec == nil {
		ec = &EndpointConfig{
			Limit:  l.config.DefaultLimit,
			Window: l.config.DefaultWindow,
			Burst:  l.config.DefaultLimit,
		}
	} else {
		// Prefix tiers share one bucket so /jobs/a and /jobs/b count together.
		key = clientID + ":" + ec.Method + ":" + ec.Path
	}

	if ec.Limit <= 0 {
		return true, Info{Allowed: true}
	}

	now := time.Now()
	b := l.getBucket(key, ec, now)

	allowed := b.lim.AllowN(now, 1)
	tokens := b.lim.TokensAt(now)
	perSecond := float64(b.lim.Limit())

	info := Info{
		Allowed:   allowed,
		Limit:     ec.Limit,
		Remaining: max(0, int(tokens)),
		ResetTime: now,
	}
	if missing := float64(b.burst) - tokens; missing > 0 && perSecond > 0 {
		info.ResetTime = now.Add(secondsToDuration(missing / perSecond))
	}
	if !allowed && perSecond > 0 {
		info.RetryAfter = secondsToDuration((1 - tokens) / perSecond)
	}

	return allowed, info
}

func (l *Limiter) getBucket(key string, ec *EndpointConfig, now time.Time) *bucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[key]
	if !ok {
		burst := ec.Burst
		if burst <= 0 {
			burst = ec.Limit
		}
		every := ec.Window / time.Duration(ec.Limit)
		b = &bucket{lim: rate.NewLimiter(rate.Every(every), burst), burst: burst}
		l.buckets[key] = b
	}
	b.lastAccess = now
	return b
}

func (l *Limiter) cleanup() {
	for {
		select {
		case <-l.cleanupTicker.C:
			l.cleanupBuckets(time.Now().Add(-idleBucketTTL))
		case <-l.cleanupStop:
			return
		}
	}
}

// cleanupBuckets drops buckets not used since cutoff.
func (l *Limiter) cleanupBuckets(cutoff time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for key, b := range l.buckets {
		if b.lastAccess.Before(cutoff) {
			delete(l.buckets, key)
		}
	}
}

func (l *Limiter) bucketCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
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

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
