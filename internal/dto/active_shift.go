package dto

import (
	"fmt"
	"time"

	"github.com/SscSPs/shiftpay/internal/core/domain"
)

// ActiveShiftResponse describes the shift running now, or the next one to start.
type ActiveShiftResponse struct {
	Found         bool                     `json:"found"`
	Shift         *ShiftResponse           `json:"shift,omitempty"`
	Status        domain.ShiftWindowStatus `json:"status,omitempty"`
	StartDateTime *time.Time               `json:"startDateTime,omitempty"`
	EndDateTime   *time.Time               `json:"endDateTime,omitempty"`
	IsOvernight   bool                     `json:"isOvernight"`
	Countdown     *domain.Countdown        `json:"countdown,omitempty"`
	Remaining     string                   `json:"remaining,omitempty"`
}

// ToActiveShiftResponse converts the current active shift. The countdown is
// only reported while the shift is running.
func ToActiveShiftResponse(a *domain.ActiveShift, c *domain.Countdown) ActiveShiftResponse {
	if a == nil {
		return ActiveShiftResponse{}
	}
	shift := ToShiftResponse(&a.Entry)
	start, end := a.StartDateTime, a.EndDateTime
	res := ActiveShiftResponse{
		Found:         true,
		Shift:         &shift,
		Status:        a.Status,
		StartDateTime: &start,
		EndDateTime:   &end,
		IsOvernight:   a.IsOvernight,
	}
	if c != nil {
		res.Countdown = c
		res.Remaining = FormatCountdown(*c)
	}
	return res
}

// FormatCountdown renders a countdown as "HH:MM:SS".
func FormatCountdown(c domain.Countdown) string {
	return fmt.Sprintf("%02d:%02d:%02d", c.Hours, c.Minutes, c.Seconds)
}
