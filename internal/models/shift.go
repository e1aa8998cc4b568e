package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Shift is a row of the shifts table.
// The pay override is stored as pay_override_type plus the one amount
// column matching it: holiday_fixed_amount for a flat amount,
// custom_hourly_rate or custom_daily_rate for a rate.
type Shift struct {
	ShiftID            string              `db:"shift_id"`
	UserID             string              `db:"user_id"`
	JobID              *string             `db:"job_id"`
	ShiftDate          time.Time           `db:"shift_date"`
	StartTime          string              `db:"start_time"`
	EndTime            string              `db:"end_time"`
	IsFullDay          bool                `db:"is_full_day"`
	ScheduledHours     decimal.NullDecimal `db:"scheduled_hours"`
	ActualHours        decimal.NullDecimal `db:"actual_hours"`
	IsOvernight        bool                `db:"is_overnight"`
	Status             string              `db:"status"`
	ShiftType          string              `db:"shift_type"`
	Notes              string              `db:"notes"`
	PayOverrideType    string              `db:"pay_override_type"`
	HolidayFixedAmount decimal.NullDecimal `db:"holiday_fixed_amount"`
	CustomHourlyRate   decimal.NullDecimal `db:"custom_hourly_rate"`
	CustomDailyRate    decimal.NullDecimal `db:"custom_daily_rate"`
	OverrideCurrency   string              `db:"override_currency"`
	IsHoliday          bool                `db:"is_holiday"`
	HolidayMultiplier  decimal.NullDecimal `db:"holiday_multiplier"`
	HolidayFixedRate   decimal.NullDecimal `db:"holiday_fixed_rate"`

	ActualEarnings         decimal.NullDecimal `db:"actual_earnings"`
	EarningsCurrency       string              `db:"earnings_currency"`
	EarningsManualOverride bool                `db:"earnings_manual_override"`
	AuditFields
}
