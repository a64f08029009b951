package clock

import (
	"context"
	"time"
)

// Countdown waits for d, reporting the remaining time to tick every step.
// It returns nil when the deadline passes or wake fires, and ctx.Err() on cancellation.
// A nil wake channel never fires.
func Countdown(ctx context.Context, d, step time.Duration, wake <-chan struct{}, tick func(remaining time.Duration)) error {
	if step <= 0 || step > d {
		step = d
	}
	deadline := time.Now().Add(d)

	timer := time.NewTimer(d)
	defer timer.Stop()
	ticker := time.NewTicker(step)
	defer ticker.Stop()

	if tick != nil {
		tick(d)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-wake:
			return nil
		case <-timer.C:
			if tick != nil {
				tick(0)
			}
			return nil
		case <-ticker.C:
			remaining := time.Until(deadline)
			if remaining > 0 && tick != nil {
				tick(remaining)
			}
		}
	}
}
