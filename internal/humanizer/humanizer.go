package humanizer

import (
	"context"
	"math/rand"
	"time"
)

// Delay picks a pseudo-random typing delay in [min, max). The reply is
// held back for this long so the agent does not answer inhumanly fast.
func Delay(min, max time.Duration) time.Duration {
	if max <= min {
		return min
	}
	return min + time.Duration(rand.Int63n(int64(max-min)))
}

// Wait blocks for d or until the context is done.
func Wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
