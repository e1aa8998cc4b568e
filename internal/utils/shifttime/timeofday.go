// Package shifttime places shifts on the wall clock: overnight rollover,
// scheduled hours, lifecycle status and the live countdown.
package shifttime

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/shiftpay/internal/utils/money"
	"github.com/shopspring/decimal"
)

const day = 24 * time.Hour

// TimeOfDay is an offset from midnight, always in [0, 24h).
type TimeOfDay time.Duration

var clockLayouts = []string{"15:04", "15:04:05"}

// ParseTimeOfDay accepts "HH:MM" or "HH:MM:SS".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	for _, layout := range clockLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return NewTimeOfDay(t.Hour(), t.Minute(), t.Second()), nil
		}
	}
	return 0, fmt.Errorf("invalid time of day %q: want HH:MM", s)
}

// MustParseTimeOfDay is ParseTimeOfDay for literals known to be valid.
func MustParseTimeOfDay(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

// NewTimeOfDay builds a clock time, wrapping past midnight.
func NewTimeOfDay(hour, minute, second int) TimeOfDay {
	d := time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute + time.Duration(second)*time.Second
	return wrap(d)
}

// ClockOf returns the time of day of t in its own location.
func ClockOf(t time.Time) TimeOfDay {
	return NewTimeOfDay(t.Hour(), t.Minute(), t.Second()) + TimeOfDay(time.Duration(t.Nanosecond()))
}

// On places the clock time on the calendar day of date.
func (t TimeOfDay) On(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, date.Location()).Add(time.Duration(t))
}

func (t TimeOfDay) String() string {
	d := time.Duration(t)
	h := int(d / time.Hour)
	m := int(d % time.Hour / time.Minute)
	return fmt.Sprintf("%02d:%02d", h, m)
}

func wrap(d time.Duration) TimeOfDay {
	d %= day
	if d < 0 {
		d += day
	}
	return TimeOfDay(d)
}

// IsOvernight reports whether a start/end pair crosses midnight.
// end == start is a full 24 hour overnight shift.
func IsOvernight(start, end TimeOfDay) bool {
	return end <= start
}

// Span returns the length of the shift, rolling the end to the next day
// for overnight pairs.
func Span(start, end TimeOfDay) time.Duration {
	d := time.Duration(end) - time.Duration(start)
	if d <= 0 {
		d += day
	}
	return d
}

// DeriveScheduledHours returns the shift length in hours rounded to the
// nearest half hour. "23:00"-"07:00" is 8.
func DeriveScheduledHours(start, end TimeOfDay) decimal.Decimal {
	minutes := decimal.NewFromInt(int64(Span(start, end) / time.Minute))
	hours := money.Divide(minutes, decimal.NewFromInt(60))
	halves := hours.Mul(decimal.NewFromInt(2)).Round(0)
	return money.Divide(halves, decimal.NewFromInt(2))
}

// EndFromDuration returns the clock time hours after start.
func EndFromDuration(start TimeOfDay, hours decimal.Decimal) TimeOfDay {
	minutes := hours.Mul(decimal.NewFromInt(60)).Round(0).IntPart()
	return wrap(time.Duration(start) + time.Duration(minutes)*time.Minute)
}
