package rest

import (
	"context"

	"golang.org/x/time/rate"
)

// Rate limiting defaults, conservative against the lookup service's
// published per-key quota.
const (
	requestsPerSecond = 10.0
	burstSize         = 5
)

// RateLimiter bounds outgoing lookup calls with a token bucket. The
// controller only ever has one lookup in flight, but one-shot CLI
// commands and container expansions share the same client.
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter creates a limiter with the default quota.
func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burstSize),
	}
}

// Wait blocks until a request may be sent or ctx is cancelled.
func (r *RateLimiter) Wait(ctx context.Context) error {
	return r.limiter.Wait(ctx)
}
