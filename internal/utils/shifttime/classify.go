package shifttime

import (
	"sort"
	"time"

	"github.com/SscSPs/shiftpay/internal/core/domain"
)

// ClassifyWindow derives the status of an already placed window.
// Start is inclusive; a window whose end equals now has ended.
func ClassifyWindow(start, end, now time.Time) domain.ShiftWindow {
	w := domain.ShiftWindow{
		StartDateTime: start,
		EndDateTime:   end,
		IsOvernight:   !sameDay(start, end),
	}
	switch {
	case now.Before(start):
		w.Status = domain.WindowNotStarted
	case !now.Before(end):
		w.Status = domain.WindowEnded
	default:
		w.Status = domain.WindowActive
	}
	return w
}

// ClassifyEntry places a start/end pair on date, rolling an end that is not
// after the start to the next day, and classifies it against now.
func ClassifyEntry(date time.Time, start, end TimeOfDay, now time.Time) domain.ShiftWindow {
	startDT := start.On(date)
	endDT := end.On(date)
	overnight := IsOvernight(start, end)
	if overnight {
		endDT = endDT.AddDate(0, 0, 1)
	}
	w := ClassifyWindow(startDT, endDT, now)
	w.IsOvernight = overnight
	return w
}

// ClassifyShift classifies a clock-only start/end pair relative to now.
// The window is anchored on now's date, except that an overnight window
// whose end is not yet behind now's clock started the previous day.
func ClassifyShift(start, end TimeOfDay, now time.Time) domain.ShiftWindow {
	anchor := now
	if IsOvernight(start, end) && ClockOf(now) <= end {
		anchor = now.AddDate(0, 0, -1)
	}
	return ClassifyEntry(anchor, start, end, now)
}

// ClassifyShiftRecord classifies a stored shift on its own date. ok is false
// for full-day entries and unparsable clock times.
func ClassifyShiftRecord(s domain.Shift, now time.Time) (domain.ShiftWindow, bool) {
	if s.IsFullDay {
		return domain.ShiftWindow{}, false
	}
	start, err := ParseTimeOfDay(s.StartTime)
	if err != nil {
		return domain.ShiftWindow{}, false
	}
	end, err := ParseTimeOfDay(s.EndTime)
	if err != nil {
		return domain.ShiftWindow{}, false
	}
	y, m, d := s.Date.Date()
	date := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	return ClassifyEntry(date, start, end, now), true
}

// FindActiveShift picks the entry to drive the live display: the first
// active entry by start time, else the first one not yet started. Cancelled
// and full-day entries never qualify.
func FindActiveShift(shifts []domain.Shift, now time.Time) *domain.ActiveShift {
	candidates := make([]domain.ActiveShift, 0, len(shifts))
	for _, s := range shifts {
		if s.Status == domain.StatusCancelled {
			continue
		}
		w, ok := ClassifyShiftRecord(s, now)
		if !ok {
			continue
		}
		candidates = append(candidates, domain.ActiveShift{Entry: s, ShiftWindow: w})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].StartDateTime.Before(candidates[j].StartDateTime)
	})

	for i := range candidates {
		if candidates[i].Status == domain.WindowActive {
			return &candidates[i]
		}
	}
	for i := range candidates {
		if candidates[i].Status == domain.WindowNotStarted {
			return &candidates[i]
		}
	}
	return nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	return ay == by && am == bm && ad == bd
}
