package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShiftType is either work or a leave tag.
type ShiftType string

const (
	ShiftWork        ShiftType = "work"
	ShiftPTO         ShiftType = "pto"
	ShiftSick        ShiftType = "sick"
	ShiftPersonal    ShiftType = "personal"
	ShiftUnpaid      ShiftType = "unpaid"
	ShiftBereavement ShiftType = "bereavement"
	ShiftHoliday     ShiftType = "holiday"
)

// ShiftStatus is the persisted lifecycle of a shift.
type ShiftStatus string

const (
	StatusPlanned    ShiftStatus = "planned"
	StatusInProgress ShiftStatus = "in_progress"
	StatusCompleted  ShiftStatus = "completed"
	StatusCancelled  ShiftStatus = "cancelled"
)

// Shift is one logged interval of work or leave.
// StartTime and EndTime are "HH:MM" clock times on Date; a full day off
// carries the same-day "00:00"-"00:00" marker with IsFullDay set.
type Shift struct {
	ShiftID           string           `json:"shiftID"`
	UserID            string           `json:"userID"`
	JobID             *string          `json:"jobID"`
	Date              time.Time        `json:"date"`
	StartTime         string           `json:"startTime"`
	EndTime           string           `json:"endTime"`
	IsFullDay         bool             `json:"isFullDay"`
	ScheduledHours    *decimal.Decimal `json:"scheduledHours"`
	ActualHours       *decimal.Decimal `json:"actualHours"`
	IsOvernight       bool             `json:"isOvernight"`
	Status            ShiftStatus      `json:"status"`
	ShiftType         ShiftType        `json:"shiftType"`
	Notes             string           `json:"notes"`
	PayOverride       PayOverride      `json:"payOverride"`
	IsHoliday         bool             `json:"isHoliday"`
	HolidayMultiplier *decimal.Decimal `json:"holidayMultiplier"`
	HolidayFixedRate  *decimal.Decimal `json:"holidayFixedRate"`
	EarningsSnapshot
	AuditFields
}

// PayInput extracts the pricing context of the shift.
func (s Shift) PayInput() PayInput {
	return PayInput{
		ActualHours:       s.ActualHours,
		ScheduledHours:    s.ScheduledHours,
		ShiftType:         s.ShiftType,
		Override:          s.PayOverride,
		IsHoliday:         s.IsHoliday,
		HolidayMultiplier: s.HolidayMultiplier,
		HolidayFixedRate:  s.HolidayFixedRate,
	}
}

// DecimalChange sets a nullable decimal field; a nil Value clears it.
type DecimalChange struct {
	Value *decimal.Decimal
}

// ShiftField names an editable shift attribute.
type ShiftField string

const (
	FieldActualHours       ShiftField = "actual_hours"
	FieldScheduledHours    ShiftField = "scheduled_hours"
	FieldPayOverride       ShiftField = "pay_override_type"
	FieldIsHoliday         ShiftField = "is_holiday"
	FieldHolidayMultiplier ShiftField = "holiday_multiplier"
	FieldHolidayFixedRate  ShiftField = "holiday_fixed_rate"
	FieldShiftType         ShiftField = "shift_type"
)

// ShiftPatch holds the fields a caller wants to set. Nil means untouched.
type ShiftPatch struct {
	JobID             *string
	Date              *time.Time
	StartTime         *string
	EndTime           *string
	IsFullDay         *bool
	ScheduledHours    *DecimalChange
	ActualHours       *DecimalChange
	Status            *ShiftStatus
	ShiftType         *ShiftType
	Notes             *string
	PayOverride       *PayOverride
	IsHoliday         *bool
	HolidayMultiplier *DecimalChange
	HolidayFixedRate  *DecimalChange

	// ManualEarnings is an explicit user-entered amount.
	ManualEarnings *decimal.Decimal
	// ManualCurrency is the currency of ManualEarnings when no job prices it.
	ManualCurrency *string
	// EarningsManualOverride=false is the "uncheck and recompute" action.
	EarningsManualOverride *bool
}

// ShiftEditIntent is a caller-constructed description of a create or edit.
type ShiftEditIntent struct {
	Patch ShiftPatch
}

// ChangedPayFields lists the pay-relevant fields present in the patch.
func (i ShiftEditIntent) ChangedPayFields() []ShiftField {
	p := i.Patch
	var fields []ShiftField
	if p.ActualHours != nil {
		fields = append(fields, FieldActualHours)
	}
	if p.ScheduledHours != nil {
		fields = append(fields, FieldScheduledHours)
	}
	if p.PayOverride != nil {
		fields = append(fields, FieldPayOverride)
	}
	if p.IsHoliday != nil {
		fields = append(fields, FieldIsHoliday)
	}
	if p.HolidayMultiplier != nil {
		fields = append(fields, FieldHolidayMultiplier)
	}
	if p.HolidayFixedRate != nil {
		fields = append(fields, FieldHolidayFixedRate)
	}
	if p.ShiftType != nil {
		fields = append(fields, FieldShiftType)
	}
	return fields
}

// PayRelevantFieldsChanged reports whether any pricing input is being edited.
func (i ShiftEditIntent) PayRelevantFieldsChanged() bool {
	return len(i.ChangedPayFields()) > 0
}

// HasManualEarnings reports whether the caller supplied an explicit amount.
func (i ShiftEditIntent) HasManualEarnings() bool {
	return i.Patch.ManualEarnings != nil
}

// ClearsManualOverride reports whether the caller unchecked the override flag.
func (i ShiftEditIntent) ClearsManualOverride() bool {
	return i.Patch.EarningsManualOverride != nil && !*i.Patch.EarningsManualOverride
}

// Apply returns a copy of s with the patch merged over it.
// Earnings fields are left alone; they belong to the snapshot policy.
func (p ShiftPatch) Apply(s Shift) Shift {
	if p.JobID != nil {
		if *p.JobID == "" {
			s.JobID = nil
		} else {
			id := *p.JobID
			s.JobID = &id
		}
	}
	if p.Date != nil {
		s.Date = *p.Date
	}
	if p.StartTime != nil {
		s.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		s.EndTime = *p.EndTime
	}
	if p.IsFullDay != nil {
		s.IsFullDay = *p.IsFullDay
	}
	if p.ScheduledHours != nil {
		s.ScheduledHours = p.ScheduledHours.Value
	}
	if p.ActualHours != nil {
		s.ActualHours = p.ActualHours.Value
	}
	if p.Status != nil {
		s.Status = *p.Status
	}
	if p.ShiftType != nil {
		s.ShiftType = *p.ShiftType
	}
	if p.Notes != nil {
		s.Notes = *p.Notes
	}
	if p.PayOverride != nil {
		s.PayOverride = *p.PayOverride
	}
	if p.IsHoliday != nil {
		s.IsHoliday = *p.IsHoliday
	}
	if p.HolidayMultiplier != nil {
		s.HolidayMultiplier = p.HolidayMultiplier.Value
	}
	if p.HolidayFixedRate != nil {
		s.HolidayFixedRate = p.HolidayFixedRate.Value
	}
	return s
}
