package repository

import (
	"context"
	"time"
)

// simulate suspends the call for the configured mock latency, the way
// the demo front end delayed its fake API calls. Honors context
// cancellation so abandoned requests do not linger.
func simulate(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
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
