// Package earnings prices shifts and decides when a stored price may change.
package earnings

import (
	"github.com/SscSPs/shiftpay/internal/core/domain"
	"github.com/SscSPs/shiftpay/internal/utils/money"
	"github.com/shopspring/decimal"
)

// Resolve computes what a shift earned under job. It returns nil when no
// amount can be calculated; nil is never the same thing as zero.
//
// Precedence, highest first:
//  1. fixed override amount
//     (unpaid leave earns a calculable zero)
//  2. holiday fixed hourly rate (multiplier ignored)
//  3. custom hourly/daily override rate, scaled by the holiday multiplier
//  4. job default rate for its pay type, scaled the same way
//
// Fixed-income jobs are never priced per shift.
func Resolve(in domain.PayInput, job *domain.Job) *domain.ResolvedEarnings {
	if job != nil && job.IsFixedIncome() {
		return nil
	}

	baseCurrency := ""
	if job != nil {
		baseCurrency = job.CurrencyCode
	}

	hours := in.Hours()
	override := in.Override

	if override.Type == domain.OverrideFixed && override.Active() {
		return result(override.Amount, currencyOf(override, baseCurrency), domain.SourceFixedAmount, nil)
	}

	if in.ShiftType == domain.ShiftUnpaid {
		return result(decimal.Zero, baseCurrency, domain.SourceUnpaidLeave, nil)
	}

	if in.IsHoliday && positive(in.HolidayFixedRate) {
		if !hours.IsPositive() {
			return nil
		}
		return result(money.Multiply(hours, *in.HolidayFixedRate), currencyOf(override, baseCurrency), domain.SourceHolidayFixedRate, nil)
	}

	multiplier := holidayMultiplier(in)

	if override.Active() {
		switch override.Type {
		case domain.OverrideCustomHourly:
			if !hours.IsPositive() {
				return nil
			}
			return result(money.Multiply(hours, override.Amount), currencyOf(override, baseCurrency), domain.SourceCustomHourly, multiplier)
		case domain.OverrideCustomDaily:
			return result(override.Amount, currencyOf(override, baseCurrency), domain.SourceCustomDaily, multiplier)
		}
	}

	if job == nil {
		return nil
	}

	rate := job.DefaultRate()
	if !positive(rate) {
		return nil
	}
	switch job.PayType {
	case domain.PayHourly:
		if !hours.IsPositive() {
			return nil
		}
		return result(money.Multiply(hours, *rate), baseCurrency, domain.SourceJobHourly, multiplier)
	case domain.PayDaily:
		return result(*rate, baseCurrency, domain.SourceJobDaily, multiplier)
	}
	return nil
}

// holidayMultiplier returns the multiplier to apply, or nil.
func holidayMultiplier(in domain.PayInput) *decimal.Decimal {
	if !in.IsHoliday || !positive(in.HolidayMultiplier) {
		return nil
	}
	m := *in.HolidayMultiplier
	return &m
}

func result(amount decimal.Decimal, currency string, source domain.EarningsSource, multiplier *decimal.Decimal) *domain.ResolvedEarnings {
	if multiplier != nil {
		amount = money.Multiply(amount, *multiplier)
	}
	return &domain.ResolvedEarnings{
		Amount:       money.RoundMoney(amount),
		CurrencyCode: currency,
		Source:       source,
		Multiplier:   multiplier,
	}
}

func currencyOf(o domain.PayOverride, fallback string) string {
	if o.CurrencyCode != "" {
		return o.CurrencyCode
	}
	return fallback
}

func positive(d *decimal.Decimal) bool {
	return d != nil && d.IsPositive()
}
