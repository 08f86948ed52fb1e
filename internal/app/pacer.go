package app

import (
	"context"
	"time"
)

// Pacer throttles a producer to a steady ticks-per-second rate.
type Pacer struct {
	step time.Duration
	last time.Time
}

// NewPacer constructs a Pacer targeting the given TPS. Non-positive values
// fall back to 60.
func NewPacer(tps int) *Pacer {
	p := &Pacer{}
	p.SetTPS(tps)
	return p
}

// SetTPS changes the tick rate.
func (p *Pacer) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	p.step = time.Second / time.Duration(tps)
}

// Step returns the interval between ticks.
func (p *Pacer) Step() time.Duration { return p.step }

// Wait blocks until one tick has elapsed since the previous Wait returned.
// The first call returns immediately.
func (p *Pacer) Wait(ctx context.Context) error {
	if !p.last.IsZero() {
		if err := Sleep(ctx, p.step-time.Since(p.last)); err != nil {
			return err
		}
	}
	p.last = time.Now()
	return nil
}

// Sleep waits for d or until ctx is done, whichever comes first.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
