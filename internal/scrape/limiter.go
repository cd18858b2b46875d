// Package scrape collects public profile data from social platforms.
// Twitter, GitHub, and Bluesky are supported; URLs for other platforms are
// skipped rather than failed.
package scrape

import (
	"context"
	"sync"
	"time"
)

// DefaultRequestsPerMinute is the outbound request budget shared by all
// platform scrapers. Public endpoints like nitter and the GitHub API start
// blocking well before a browser-speed request rate.
const DefaultRequestsPerMinute = 20

// Limiter is a token-bucket rate limiter for outbound scraping requests.
// It is an explicit collaborator passed to each scraper, so separate scrape
// runs can carry separate budgets.
type Limiter struct {
	capacity   int
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
	mu         sync.Mutex
}

// NewLimiter creates a limiter allowing requestsPerMinute requests, with a
// burst capacity of the same size.
func NewLimiter(requestsPerMinute int) *Limiter {
	if requestsPerMinute <= 0 {
		requestsPerMinute = DefaultRequestsPerMinute
	}
	return &Limiter{
		capacity:   requestsPerMinute,
		refillRate: float64(requestsPerMinute) / 60.0,
		tokens:     float64(requestsPerMinute),
		lastRefill: time.Now(),
	}
}

// Allow consumes a token if one is available.
func (l *Limiter) Allow() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.refill()
	if l.tokens >= 1.0 {
		l.tokens -= 1.0
		return true
	}
	return false
}

// Wait blocks until a token is available or the context ends.
func (l *Limiter) Wait(ctx context.Context) error {
	for {
		if l.Allow() {
			return nil
		}

		l.mu.Lock()
		l.refill()
		needed := 1.0 - l.tokens
		l.mu.Unlock()

		delay := time.Duration(needed / l.refillRate * float64(time.Second))
		if delay < 10*time.Millisecond {
			delay = 10 * time.Millisecond
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
}

// refill adds tokens for elapsed time. Caller must hold the mutex.
func (l *Limiter) refill() {
	now := time.Now()
	elapsed := now.Sub(l.lastRefill)
	l.tokens = min(float64(l.capacity), l.tokens+elapsed.Seconds()*l.refillRate)
	l.lastRefill = now
}
