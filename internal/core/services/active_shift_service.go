package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/shiftpay/internal/core/domain"
	portsrepo "github.com/SscSPs/shiftpay/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/shiftpay/internal/core/ports/services"
	"github.com/SscSPs/shiftpay/internal/utils/shifttime"
)

type activeShiftService struct {
	BaseService
	shiftRepo portsrepo.ShiftReader
}

// ActiveShiftServiceOption is a functional option for configuring the active shift service
type ActiveShiftServiceOption func(*activeShiftService)

// WithActiveShiftClock replaces the clock WatchShift reads on every tick.
func WithActiveShiftClock(clock shifttime.Clock) ActiveShiftServiceOption {
	return func(s *activeShiftService) {
		s.Clock = clock
	}
}

// NewActiveShiftService creates the live shift detector
func NewActiveShiftService(shiftRepo portsrepo.ShiftReader, options ...ActiveShiftServiceOption) portssvc.ActiveShiftService {
	svc := &activeShiftService{shiftRepo: shiftRepo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ActiveShiftService = (*activeShiftService)(nil)

// CurrentShift looks at yesterday through tomorrow: an overnight shift from
// yesterday may still be running and tomorrow holds the next candidate.
func (s *activeShiftService) CurrentShift(ctx context.Context, userID string, now time.Time) (*domain.ActiveShift, *domain.Countdown, error) {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	period := domain.Period{From: today.AddDate(0, 0, -1), To: today.AddDate(0, 0, 2)}

	shifts, err := s.shiftRepo.ListShiftsInPeriod(ctx, userID, period)
	if err != nil {
		s.LogError(ctx, err, "Failed to load shifts for active detection", slog.String("user_id", userID))
		return nil, nil, fmt.Errorf("failed to load shifts: %w", err)
	}

	active := shifttime.FindActiveShift(shifts, now)
	if active == nil || active.Status != domain.WindowActive {
		return active, nil, nil
	}
	countdown := shifttime.ProjectCountdown(active.EndDateTime, now)
	return active, &countdown, nil
}

// WatchShift re-detects on every interval and reports the first result and
// then only changes of shift or status.
func (s *activeShiftService) WatchShift(ctx context.Context, userID string, interval time.Duration, onChange func(*domain.ActiveShift)) error {
	var (
		last     *domain.ActiveShift
		first    = true
		watchErr error
	)
	err := shifttime.RunEvery(ctx, s.Clock, interval, func(now time.Time) bool {
		current, _, err := s.CurrentShift(ctx, userID, now)
		if err != nil {
			watchErr = err
			return false
		}
		if first || changed(last, current) {
			onChange(current)
		}
		first = false
		last = current
		return true
	})
	if watchErr != nil {
		return watchErr
	}
	return err
}

func changed(prev, next *domain.ActiveShift) bool {
	if prev == nil || next == nil {
		return prev != next
	}
	return prev.Entry.ShiftID != next.Entry.ShiftID || prev.Status != next.Status
}
