package limiter

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Limiter is a token bucket shared by request middleware, the gRPC
// ratelimit interceptor and upstream call pacing.
type Limiter struct {
	logger *zap.Logger
	l      *rate.Limiter
}

// New creates a limiter allowing limit events per second with the given burst.
// A non-positive limit disables limiting; a non-positive burst defaults to limit.
func New(logger *zap.Logger, limit, burst int) *Limiter {
	if limit <= 0 {
		return &Limiter{logger: logger, l: rate.NewLimiter(rate.Inf, 0)}
	}
	if burst <= 0 {
		burst = limit
	}
	return &Limiter{logger: logger, l: rate.NewLimiter(rate.Limit(limit), burst)}
}

// Limit reports whether the current event must be rejected.
func (l *Limiter) Limit() bool {
	allowed := l.l.Allow()
	l.logger.Debug("Rate limit check",
		zap.Bool("allowed", allowed),
		zap.Float64("limit", float64(l.l.Limit())),
		zap.Int("burst", l.l.Burst()),
	)
	return !allowed
}

// Wait blocks until an event is allowed or ctx is done.
func (l *Limiter) Wait(ctx context.Context) error {
	return l.l.Wait(ctx)
}
