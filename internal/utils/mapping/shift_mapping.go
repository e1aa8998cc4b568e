package mapping

import (
	"github.com/SscSPs/shiftpay/internal/core/domain"
	"github.com/SscSPs/shiftpay/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelShift converts a domain Shift to a model Shift.
// Only the amount column matching the override type is written.
func ToModelShift(d domain.Shift) models.Shift {
	m := models.Shift{
		ShiftID:           d.ShiftID,
		UserID:            d.UserID,
		JobID:             d.JobID,
		ShiftDate:         d.Date,
		StartTime:         d.StartTime,
		EndTime:           d.EndTime,
		IsFullDay:         d.IsFullDay,
		ScheduledHours:    toNullDecimal(d.ScheduledHours),
		ActualHours:       toNullDecimal(d.ActualHours),
		IsOvernight:       d.IsOvernight,
		Status:            string(d.Status),
		ShiftType:         string(d.ShiftType),
		Notes:             d.Notes,
		PayOverrideType:   string(domain.OverrideNone),
		IsHoliday:         d.IsHoliday,
		HolidayMultiplier: toNullDecimal(d.HolidayMultiplier),
		HolidayFixedRate:  toNullDecimal(d.HolidayFixedRate),

		ActualEarnings:         toNullDecimal(d.ActualEarnings),
		EarningsCurrency:       d.EarningsCurrency,
		EarningsManualOverride: d.EarningsManualOverride,
		AuditFields:            ToModelAuditFields(d.AuditFields),
	}

	amount := decimal.NewNullDecimal(d.PayOverride.Amount)
	switch d.PayOverride.Type {
	case domain.OverrideFixed:
		m.HolidayFixedAmount = amount
	case domain.OverrideCustomHourly:
		m.CustomHourlyRate = amount
	case domain.OverrideCustomDaily:
		m.CustomDailyRate = amount
	default:
		return m
	}
	m.PayOverrideType = string(d.PayOverride.Type)
	m.OverrideCurrency = d.PayOverride.CurrencyCode
	return m
}

// ToDomainShift converts a model Shift to a domain Shift
func ToDomainShift(m models.Shift) domain.Shift {
	return domain.Shift{
		ShiftID:           m.ShiftID,
		UserID:            m.UserID,
		JobID:             m.JobID,
		Date:              m.ShiftDate,
		StartTime:         m.StartTime,
		EndTime:           m.EndTime,
		IsFullDay:         m.IsFullDay,
		ScheduledHours:    fromNullDecimal(m.ScheduledHours),
		ActualHours:       fromNullDecimal(m.ActualHours),
		IsOvernight:       m.IsOvernight,
		Status:            domain.ShiftStatus(m.Status),
		ShiftType:         domain.ShiftType(m.ShiftType),
		Notes:             m.Notes,
		PayOverride:       toDomainPayOverride(m),
		IsHoliday:         m.IsHoliday,
		HolidayMultiplier: fromNullDecimal(m.HolidayMultiplier),
		HolidayFixedRate:  fromNullDecimal(m.HolidayFixedRate),
		EarningsSnapshot: domain.EarningsSnapshot{
			ActualEarnings:         fromNullDecimal(m.ActualEarnings),
			EarningsCurrency:       m.EarningsCurrency,
			EarningsManualOverride: m.EarningsManualOverride,
		},
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// Rows written before pay_override_type existed only carry amount
// columns, so the type is inferred from whichever one is set.
func toDomainPayOverride(m models.Shift) domain.PayOverride {
	override := domain.PayOverride{
		Type:         domain.PayOverrideType(m.PayOverrideType),
		CurrencyCode: m.OverrideCurrency,
	}
	if override.Type == "" || override.Type == domain.OverrideNone {
		switch {
		case m.HolidayFixedAmount.Valid:
			override.Type = domain.OverrideFixed
		case m.CustomHourlyRate.Valid:
			override.Type = domain.OverrideCustomHourly
		case m.CustomDailyRate.Valid:
			override.Type = domain.OverrideCustomDaily
		default:
			return domain.NoOverride
		}
	}

	var amount decimal.NullDecimal
	switch override.Type {
	case domain.OverrideFixed:
		amount = m.HolidayFixedAmount
	case domain.OverrideCustomHourly:
		amount = m.CustomHourlyRate
	case domain.OverrideCustomDaily:
		amount = m.CustomDailyRate
	default:
		return domain.NoOverride
	}
	if !amount.Valid {
		return domain.NoOverride
	}
	override.Amount = amount.Decimal
	return override
}

// ToDomainShiftSlice converts a slice of model Shifts to a slice of domain Shifts
func ToDomainShiftSlice(ms []models.Shift) []domain.Shift {
	ds := make([]domain.Shift, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainShift(m)
	}
	return ds
}
