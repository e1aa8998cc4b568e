package domain

import "time"

// ShiftWindowStatus is the wall-clock lifecycle of a shift window.
type ShiftWindowStatus string

const (
	WindowNotStarted ShiftWindowStatus = "notStarted"
	WindowActive     ShiftWindowStatus = "active"
	WindowEnded      ShiftWindowStatus = "ended"
)

// ShiftWindow is a shift placed on the calendar.
type ShiftWindow struct {
	StartDateTime time.Time         `json:"startDateTime"`
	EndDateTime   time.Time         `json:"endDateTime"`
	Status        ShiftWindowStatus `json:"status"`
	IsOvernight   bool              `json:"isOvernight"`
}

// ActiveShift is derived on every evaluation and never stored.
type ActiveShift struct {
	Entry Shift `json:"entry"`
	ShiftWindow
}

// Countdown is the remaining time of an active shift.
type Countdown struct {
	RemainingMs int64 `json:"remainingMs"`
	Hours       int64 `json:"hours"`
	Minutes     int64 `json:"minutes"`
	Seconds     int64 `json:"seconds"`
}

// Done reports whether no time remains.
func (c Countdown) Done() bool {
	return c.RemainingMs <= 0
}
