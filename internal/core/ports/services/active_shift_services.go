package services

import (
	"context"
	"time"

	"github.com/SscSPs/shiftpay/internal/core/domain"
)

// ActiveShiftService finds the shift running for a user at a given instant.
type ActiveShiftService interface {
	// CurrentShift returns the active shift at now, else the next one that
	// has not started, else nil. The countdown is set only while active.
	CurrentShift(ctx context.Context, userID string, now time.Time) (*domain.ActiveShift, *domain.Countdown, error)

	// WatchShift re-detects the user's shift every interval and reports each
	// change until ctx is done.
	WatchShift(ctx context.Context, userID string, interval time.Duration, onChange func(*domain.ActiveShift)) error
}
