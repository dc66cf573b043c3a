package api

import (
	"context"

	"golang.org/x/time/rate"
)

const (
	// ProactiveRate is the sustained request rate against the backend.
	// Typing bursts are already bounded by the UI debounce; this guards
	// against anything else hammering the API.
	ProactiveRate = 5

	// Burst allows short runs of back-to-back requests, e.g. an upload
	// immediately followed by a create and a list refresh.
	Burst = 5
)

// RateLimiter throttles outgoing backend requests with a token bucket.
type RateLimiter struct {
	bucket *rate.Limiter
}

// NewRateLimiter creates a limiter with the proactive defaults.
func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		bucket: rate.NewLimiter(rate.Limit(ProactiveRate), Burst),
	}
}

// Wait blocks until a request may be sent or the context is cancelled.
func (r *RateLimiter) Wait(ctx context.Context) error {
	return r.bucket.Wait(ctx)
}
