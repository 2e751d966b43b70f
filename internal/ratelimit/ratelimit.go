// Package ratelimit admits or rejects inquiries per user before they enter
// the pipeline. Fixed window: a bucket holds the full request allowance and
// refills completely at the window boundary.
package ratelimit

import (
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const maxTrackedUsers = 10000

// Result is the admission decision for one request.
type Result struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// ExceededError is returned by EnforceLimit when a user is over the limit.
// RetryAfter tells the caller when the window resets.
type ExceededError struct {
	UserID     string
	RetryAfter time.Duration
}

func (e *ExceededError) Error() string {
	return fmt.Sprintf("rate limit exceeded for user %s, retry in %s", e.UserID, e.RetryAfter)
}

type bucket struct {
	mu      sync.Mutex
	tokens  int
	resetAt time.Time
}

// Limiter tracks fixed-window buckets per user id. The tracking LRU's TTL
// measures idleness, not age: every check re-adds the bucket, so an entry
// only expires after two full windows without requests, by which point the
// window has reset and a fresh bucket is equivalent.
type Limiter struct {
	buckets  *expirable.LRU[string, *bucket]
	requests int
	window   time.Duration
	now      func() time.Time
}

// New creates a limiter allowing requests per window for each user.
func New(requests int, window time.Duration) *Limiter {
	if requests <= 0 {
		requests = 5
	}
	if window <= 0 {
		window = time.Minute
	}
	return &Limiter{
		buckets:  expirable.NewLRU[string, *bucket](maxTrackedUsers, nil, window*2),
		requests: requests,
		window:   window,
		now:      time.Now,
	}
}

// CheckLimit consumes one token for the user and reports the decision.
func (l *Limiter) CheckLimit(userID string) Result {
	b, ok := l.buckets.Get(userID)
	if !ok {
		b = &bucket{}
	}
	// Renew the tracker entry on every check, allowed or not. An active
	// user's bucket must never age out mid-window.
	l.buckets.Add(userID, b)

	b.mu.Lock()
	defer b.mu.Unlock()

	now := l.now()
	if !now.Before(b.resetAt) {
		b.tokens = l.requests
		b.resetAt = now.Add(l.window)
	}

	if b.tokens <= 0 {
		return Result{Allowed: false, Remaining: 0, RetryAfter: b.resetAt.Sub(now)}
	}
	b.tokens--
	return Result{Allowed: true, Remaining: b.tokens}
}

// EnforceLimit returns an *ExceededError when the user is over the limit.
func (l *Limiter) EnforceLimit(userID string) error {
	res := l.CheckLimit(userID)
	if !res.Allowed {
		return &ExceededError{UserID: userID, RetryAfter: res.RetryAfter}
	}
	return nil
}
