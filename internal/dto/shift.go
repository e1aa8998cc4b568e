package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/SscSPs/shiftpay/internal/apperrors"
	"github.com/SscSPs/shiftpay/internal/core/domain"
	"github.com/SscSPs/shiftpay/internal/utils/money"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// OptionalDecimal tells an absent JSON key apart from an explicit null.
type OptionalDecimal struct {
	Set   bool
	Value *decimal.Decimal
}

// UnmarshalJSON is only called when the key is present.
func (o *OptionalDecimal) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Value = nil
		return nil
	}
	var d decimal.Decimal
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	o.Value = &d
	return nil
}

func (o OptionalDecimal) change() *domain.DecimalChange {
	if !o.Set {
		return nil
	}
	return &domain.DecimalChange{Value: o.Value}
}

// PayOverrideRequest is the per-shift pay override sent by clients.
type PayOverrideRequest struct {
	Type         domain.PayOverrideType `json:"type" binding:"required,oneof=none fixed custom_hourly custom_daily"`
	Amount       decimal.Decimal        `json:"amount"`
	CurrencyCode string                 `json:"currencyCode" binding:"omitempty,currency"`
}

func (r *PayOverrideRequest) toDomain() *domain.PayOverride {
	if r == nil {
		return nil
	}
	if r.Type == domain.OverrideNone {
		return &domain.NoOverride
	}
	return &domain.PayOverride{Type: r.Type, Amount: r.Amount, CurrencyCode: r.CurrencyCode}
}

// CreateShiftRequest defines the data needed to log a shift or a leave entry.
type CreateShiftRequest struct {
	JobID             *string             `json:"jobID"`
	Date              string              `json:"date" binding:"required,datetime=2006-01-02"`
	StartTime         string              `json:"startTime" binding:"required,timeofday"`
	EndTime           string              `json:"endTime" binding:"required,timeofday"`
	IsFullDay         bool                `json:"isFullDay"`
	ScheduledHours    *decimal.Decimal    `json:"scheduledHours"`
	ActualHours       *decimal.Decimal    `json:"actualHours"`
	Status            domain.ShiftStatus  `json:"status" binding:"omitempty,oneof=planned in_progress completed cancelled"`
	ShiftType         domain.ShiftType    `json:"shiftType" binding:"omitempty,oneof=work pto sick personal unpaid bereavement holiday"`
	Notes             string              `json:"notes"`
	PayOverride       *PayOverrideRequest `json:"payOverride"`
	IsHoliday         bool                `json:"isHoliday"`
	HolidayMultiplier *decimal.Decimal    `json:"holidayMultiplier"`
	HolidayFixedRate  *decimal.Decimal    `json:"holidayFixedRate"`

	// ActualEarnings is a manually entered amount; it pins the earnings.
	ActualEarnings   *decimal.Decimal `json:"actualEarnings"`
	EarningsCurrency *string          `json:"earningsCurrency" binding:"omitempty,currency"`
}

// ToIntent builds the edit intent for a new shift. Defaults for status and
// type are filled in here so the patch describes the full entry.
func (r CreateShiftRequest) ToIntent() (domain.ShiftEditIntent, error) {
	date, err := time.Parse(DateLayout, r.Date)
	if err != nil {
		return domain.ShiftEditIntent{}, apperrors.NewValidationError(fmt.Sprintf("invalid date %q", r.Date))
	}
	status := r.Status
	if status == "" {
		status = domain.StatusPlanned
	}
	shiftType := r.ShiftType
	if shiftType == "" {
		shiftType = domain.ShiftWork
	}

	p := domain.ShiftPatch{
		JobID:          r.JobID,
		Date:           &date,
		StartTime:      &r.StartTime,
		EndTime:        &r.EndTime,
		IsFullDay:      &r.IsFullDay,
		ScheduledHours: &domain.DecimalChange{Value: r.ScheduledHours},
		ActualHours:    &domain.DecimalChange{Value: r.ActualHours},
		Status:         &status,
		ShiftType:      &shiftType,
		Notes:          &r.Notes,
		PayOverride:    r.PayOverride.toDomain(),
		IsHoliday:      &r.IsHoliday,
		ManualEarnings: r.ActualEarnings,
		ManualCurrency: r.EarningsCurrency,
	}
	if p.PayOverride == nil {
		p.PayOverride = &domain.NoOverride
	}
	if r.HolidayMultiplier != nil {
		p.HolidayMultiplier = &domain.DecimalChange{Value: r.HolidayMultiplier}
	}
	if r.HolidayFixedRate != nil {
		p.HolidayFixedRate = &domain.DecimalChange{Value: r.HolidayFixedRate}
	}
	return domain.ShiftEditIntent{Patch: p}, nil
}

// UpdateShiftRequest defines a partial shift edit. Absent keys are left
// untouched; an explicit null clears a nullable number.
type UpdateShiftRequest struct {
	JobID             *string             `json:"jobID"`
	Date              *string             `json:"date" binding:"omitempty,datetime=2006-01-02"`
	StartTime         *string             `json:"startTime" binding:"omitempty,timeofday"`
	EndTime           *string             `json:"endTime" binding:"omitempty,timeofday"`
	IsFullDay         *bool               `json:"isFullDay"`
	ScheduledHours    OptionalDecimal     `json:"scheduledHours"`
	ActualHours       OptionalDecimal     `json:"actualHours"`
	Status            *domain.ShiftStatus `json:"status" binding:"omitempty,oneof=planned in_progress completed cancelled"`
	ShiftType         *domain.ShiftType   `json:"shiftType" binding:"omitempty,oneof=work pto sick personal unpaid bereavement holiday"`
	Notes             *string             `json:"notes"`
	PayOverride       *PayOverrideRequest `json:"payOverride"`
	IsHoliday         *bool               `json:"isHoliday"`
	HolidayMultiplier OptionalDecimal     `json:"holidayMultiplier"`
	HolidayFixedRate  OptionalDecimal     `json:"holidayFixedRate"`

	ActualEarnings         *decimal.Decimal `json:"actualEarnings"`
	EarningsCurrency       *string          `json:"earningsCurrency" binding:"omitempty,currency"`
	EarningsManualOverride *bool            `json:"earningsManualOverride"`
}

// ToIntent builds the edit intent of a partial update.
func (r UpdateShiftRequest) ToIntent() (domain.ShiftEditIntent, error) {
	p := domain.ShiftPatch{
		JobID:                  r.JobID,
		StartTime:              r.StartTime,
		EndTime:                r.EndTime,
		IsFullDay:              r.IsFullDay,
		ScheduledHours:         r.ScheduledHours.change(),
		ActualHours:            r.ActualHours.change(),
		Status:                 r.Status,
		ShiftType:              r.ShiftType,
		Notes:                  r.Notes,
		PayOverride:            r.PayOverride.toDomain(),
		IsHoliday:              r.IsHoliday,
		HolidayMultiplier:      r.HolidayMultiplier.change(),
		HolidayFixedRate:       r.HolidayFixedRate.change(),
		ManualEarnings:         r.ActualEarnings,
		ManualCurrency:         r.EarningsCurrency,
		EarningsManualOverride: r.EarningsManualOverride,
	}
	if r.Date != nil {
		date, err := time.Parse(DateLayout, *r.Date)
		if err != nil {
			return domain.ShiftEditIntent{}, apperrors.NewValidationError(fmt.Sprintf("invalid date %q", *r.Date))
		}
		p.Date = &date
	}
	return domain.ShiftEditIntent{Patch: p}, nil
}

// EarningsPreviewRequest prices a shift form without saving it.
type EarningsPreviewRequest struct {
	JobID             *string             `json:"jobID"`
	StartTime         *string             `json:"startTime" binding:"omitempty,timeofday"`
	EndTime           *string             `json:"endTime" binding:"omitempty,timeofday"`
	ScheduledHours    *decimal.Decimal    `json:"scheduledHours"`
	ActualHours       *decimal.Decimal    `json:"actualHours"`
	ShiftType         domain.ShiftType    `json:"shiftType" binding:"omitempty,oneof=work pto sick personal unpaid bereavement holiday"`
	PayOverride       *PayOverrideRequest `json:"payOverride"`
	IsHoliday         bool                `json:"isHoliday"`
	HolidayMultiplier *decimal.Decimal    `json:"holidayMultiplier"`
	HolidayFixedRate  *decimal.Decimal    `json:"holidayFixedRate"`
}

// EarningsPreviewResponse is the priced result of a preview. Calculable is
// false when the inputs cannot be priced, which is different from zero.
type EarningsPreviewResponse struct {
	Calculable   bool             `json:"calculable"`
	Amount       *decimal.Decimal `json:"amount"`
	CurrencyCode string           `json:"currencyCode,omitempty"`
	Source       string           `json:"source,omitempty"`
	Multiplier   *decimal.Decimal `json:"multiplier,omitempty"`
	Formatted    string           `json:"formatted,omitempty"`
}

// ToEarningsPreviewResponse converts a resolution result; nil means not calculable.
func ToEarningsPreviewResponse(r *domain.ResolvedEarnings) EarningsPreviewResponse {
	if r == nil {
		return EarningsPreviewResponse{}
	}
	amount := r.Amount
	return EarningsPreviewResponse{
		Calculable:   true,
		Amount:       &amount,
		CurrencyCode: r.CurrencyCode,
		Source:       string(r.Source),
		Multiplier:   r.Multiplier,
		Formatted:    money.FormatCurrency(r.Amount, r.CurrencyCode),
	}
}

// ListShiftsParams defines query parameters for listing shifts.
type ListShiftsParams struct {
	From      string  `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To        string  `form:"to" binding:"omitempty,datetime=2006-01-02"`
	JobID     *string `form:"jobID"`
	Status    *string `form:"status" binding:"omitempty,oneof=planned in_progress completed cancelled"`
	Limit     int     `form:"limit,default=50" binding:"min=1,max=500"`
	NextToken *string `form:"nextToken"`
}

// ShiftResponse defines the data returned for a shift.
type ShiftResponse struct {
	ShiftID                string             `json:"shiftID"`
	JobID                  *string            `json:"jobID"`
	Date                   string             `json:"date"`
	StartTime              string             `json:"startTime"`
	EndTime                string             `json:"endTime"`
	IsFullDay              bool               `json:"isFullDay"`
	ScheduledHours         *decimal.Decimal   `json:"scheduledHours"`
	ActualHours            *decimal.Decimal   `json:"actualHours"`
	IsOvernight            bool               `json:"isOvernight"`
	Status                 domain.ShiftStatus `json:"status"`
	ShiftType              domain.ShiftType   `json:"shiftType"`
	Notes                  string             `json:"notes"`
	PayOverride            domain.PayOverride `json:"payOverride"`
	IsHoliday              bool               `json:"isHoliday"`
	HolidayMultiplier      *decimal.Decimal   `json:"holidayMultiplier"`
	HolidayFixedRate       *decimal.Decimal   `json:"holidayFixedRate"`
	ActualEarnings         *decimal.Decimal   `json:"actualEarnings"`
	EarningsCurrency       string             `json:"earningsCurrency"`
	EarningsManualOverride bool               `json:"earningsManualOverride"`
	EarningsFormatted      string             `json:"earningsFormatted,omitempty"`
	CreatedAt              time.Time          `json:"createdAt"`
	LastUpdatedAt          time.Time          `json:"lastUpdatedAt"`
}

// ToShiftResponse converts a domain.Shift to ShiftResponse DTO
func ToShiftResponse(s *domain.Shift) ShiftResponse {
	res := ShiftResponse{
		ShiftID:                s.ShiftID,
		JobID:                  s.JobID,
		Date:                   s.Date.Format(DateLayout),
		StartTime:              s.StartTime,
		EndTime:                s.EndTime,
		IsFullDay:              s.IsFullDay,
		ScheduledHours:         s.ScheduledHours,
		ActualHours:            s.ActualHours,
		IsOvernight:            s.IsOvernight,
		Status:                 s.Status,
		ShiftType:              s.ShiftType,
		Notes:                  s.Notes,
		PayOverride:            s.PayOverride,
		IsHoliday:              s.IsHoliday,
		HolidayMultiplier:      s.HolidayMultiplier,
		HolidayFixedRate:       s.HolidayFixedRate,
		ActualEarnings:         s.ActualEarnings,
		EarningsCurrency:       s.EarningsCurrency,
		EarningsManualOverride: s.EarningsManualOverride,
		CreatedAt:              s.CreatedAt,
		LastUpdatedAt:          s.LastUpdatedAt,
	}
	if s.ActualEarnings != nil {
		res.EarningsFormatted = money.FormatCurrency(*s.ActualEarnings, s.EarningsCurrency)
	}
	return res
}

// ToListShiftResponse converts a slice of domain.Shift to a slice of ShiftResponse DTOs
func ToListShiftResponse(shifts []domain.Shift) []ShiftResponse {
	res := make([]ShiftResponse, len(shifts))
	for i := range shifts {
		res[i] = ToShiftResponse(&shifts[i])
	}
	return res
}

// ListShiftsResponse is one page of shifts.
type ListShiftsResponse struct {
	Shifts    []ShiftResponse `json:"shifts"`
	NextToken *string         `json:"nextToken,omitempty"`
}
