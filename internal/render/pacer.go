// Package render provides line-oriented presenters for search sessions:
// a human-readable transcript and newline-delimited JSON.
package render

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Pacer spaces frames at most one per delay. The first frame is never held back.
type Pacer struct {
	limiter *rate.Limiter
}

// NewPacer returns a pacer for delay. A zero or negative delay disables pacing.
func NewPacer(delay time.Duration) *Pacer {
	if delay <= 0 {
		return &Pacer{}
	}
	return &Pacer{limiter: rate.NewLimiter(rate.Every(delay), 1)}
}

// Wait blocks until the next frame may be shown or ctx is done.
func (p *Pacer) Wait(ctx context.Context) error {
	if p == nil || p.limiter == nil {
		return ctx.Err()
	}
	return p.limiter.Wait(ctx)
}
