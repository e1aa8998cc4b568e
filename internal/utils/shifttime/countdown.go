package shifttime

import (
	"context"
	"time"

	"github.com/SscSPs/shiftpay/internal/core/domain"
)

// Clock returns the current time. Every tick reads it fresh.
type Clock func() time.Time

// SystemClock is the wall clock.
var SystemClock Clock = time.Now

// ProjectCountdown returns the time left until end, clamped at zero.
func ProjectCountdown(end, now time.Time) domain.Countdown {
	ms := end.Sub(now).Milliseconds()
	if ms < 0 {
		ms = 0
	}
	return domain.Countdown{
		RemainingMs: ms,
		Hours:       ms / 3_600_000,
		Minutes:     ms / 60_000 % 60,
		Seconds:     ms / 1_000 % 60,
	}
}

// RunEvery calls fn immediately and then on every tick until fn returns
// false or ctx is done. Each call gets a freshly read now.
func RunEvery(ctx context.Context, clock Clock, interval time.Duration, fn func(now time.Time) bool) error {
	if clock == nil {
		clock = SystemClock
	}
	if !fn(clock()) {
		return nil
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if !fn(clock()) {
				return nil
			}
		}
	}
}

// RunCountdown reports the countdown to end on every tick and stops once it
// reaches zero. It does not change any shift status.
func RunCountdown(ctx context.Context, end time.Time, clock Clock, interval time.Duration, onTick func(domain.Countdown)) error {
	return RunEvery(ctx, clock, interval, func(now time.Time) bool {
		c := ProjectCountdown(end, now)
		onTick(c)
		return !c.Done()
	})
}
