package domain

import "github.com/shopspring/decimal"

// PayOverrideType tags the per-shift pay override variant.
type PayOverrideType string

const (
	OverrideNone         PayOverrideType = "none"
	OverrideFixed        PayOverrideType = "fixed"
	OverrideCustomHourly PayOverrideType = "custom_hourly"
	OverrideCustomDaily  PayOverrideType = "custom_daily"
)

// PayOverride replaces the job's default rate for a single shift.
// Amount is a flat sum for OverrideFixed and a rate otherwise.
// CurrencyCode is optional; empty means the job's currency.
type PayOverride struct {
	Type         PayOverrideType `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode,omitempty"`
}

// Active reports whether the override carries a usable positive amount.
func (o PayOverride) Active() bool {
	switch o.Type {
	case OverrideFixed, OverrideCustomHourly, OverrideCustomDaily:
		return o.Amount.IsPositive()
	}
	return false
}

// NoOverride is the zero override.
var NoOverride = PayOverride{Type: OverrideNone}

// EarningsSource names the rate source that produced an amount.
type EarningsSource string

const (
	SourceFixedAmount      EarningsSource = "fixed_amount"
	SourceHolidayFixedRate EarningsSource = "holiday_fixed_rate"
	SourceCustomHourly     EarningsSource = "custom_hourly"
	SourceCustomDaily      EarningsSource = "custom_daily"
	SourceJobHourly        EarningsSource = "job_hourly"
	SourceJobDaily         EarningsSource = "job_daily"
	SourceUnpaidLeave      EarningsSource = "unpaid_leave"
)

// PayInput is the hours-worked context pay resolution prices.
type PayInput struct {
	ActualHours       *decimal.Decimal
	ScheduledHours    *decimal.Decimal
	ShiftType         ShiftType
	Override          PayOverride
	IsHoliday         bool
	HolidayMultiplier *decimal.Decimal
	HolidayFixedRate  *decimal.Decimal
}

// Hours returns actual hours when recorded, scheduled hours otherwise.
func (in PayInput) Hours() decimal.Decimal {
	if in.ActualHours != nil {
		return *in.ActualHours
	}
	if in.ScheduledHours != nil {
		return *in.ScheduledHours
	}
	return decimal.Zero
}

// ResolvedEarnings is a priced amount and the currency it is in.
type ResolvedEarnings struct {
	Amount       decimal.Decimal  `json:"amount"`
	CurrencyCode string           `json:"currencyCode"`
	Source       EarningsSource   `json:"source"`
	Multiplier   *decimal.Decimal `json:"multiplier,omitempty"`
}

// EarningsSnapshot is the stored earnings state of a shift.
type EarningsSnapshot struct {
	ActualEarnings         *decimal.Decimal `json:"actualEarnings"`
	EarningsCurrency       string           `json:"earningsCurrency"`
	EarningsManualOverride bool             `json:"earningsManualOverride"`
}
