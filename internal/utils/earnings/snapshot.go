package earnings

import (
	"github.com/SscSPs/shiftpay/internal/core/domain"
	"github.com/SscSPs/shiftpay/internal/utils/money"
	"github.com/shopspring/decimal"
)

// ApplySnapshotPolicy decides the stored earnings of a shift after a create
// (existing == nil) or an edit. A manually priced shift is never repriced by
// later edits unless the caller sends a new amount or clears the override.
func ApplySnapshotPolicy(existing *domain.Shift, intent domain.ShiftEditIntent, job *domain.Job) domain.EarningsSnapshot {
	if existing == nil {
		return applyOnCreate(intent, job)
	}
	return applyOnEdit(*existing, intent, job)
}

func applyOnCreate(intent domain.ShiftEditIntent, job *domain.Job) domain.EarningsSnapshot {
	if intent.HasManualEarnings() {
		return manualSnapshot(intent, job, "")
	}
	if job == nil {
		return domain.EarningsSnapshot{}
	}
	draft := intent.Patch.Apply(domain.Shift{ShiftType: domain.ShiftWork})
	return computedSnapshot(draft, job)
}

func applyOnEdit(existing domain.Shift, intent domain.ShiftEditIntent, job *domain.Job) domain.EarningsSnapshot {
	current := existing.EarningsSnapshot

	if intent.HasManualEarnings() {
		return manualSnapshot(intent, job, current.EarningsCurrency)
	}

	manual := current.EarningsManualOverride
	if intent.ClearsManualOverride() {
		manual = false
	}
	if manual {
		return current
	}
	if !intent.PayRelevantFieldsChanged() && !intent.ClearsManualOverride() && !jobChanged(existing, intent) {
		return current
	}

	merged := intent.Patch.Apply(existing)
	if job == nil {
		return domain.EarningsSnapshot{}
	}
	return computedSnapshot(merged, job)
}

// jobChanged reports whether the edit moves the shift to a different job,
// which changes the pay configuration just like a rate edit.
func jobChanged(existing domain.Shift, intent domain.ShiftEditIntent) bool {
	p := intent.Patch.JobID
	if p == nil {
		return false
	}
	if existing.JobID == nil {
		return *p != ""
	}
	return *p != *existing.JobID
}

// Fixed-income jobs price to null whenever a new price is written.
func computedSnapshot(s domain.Shift, job *domain.Job) domain.EarningsSnapshot {
	if job.IsFixedIncome() {
		return domain.EarningsSnapshot{}
	}
	resolved := Resolve(s.PayInput(), job)
	if resolved == nil {
		return domain.EarningsSnapshot{EarningsCurrency: job.CurrencyCode}
	}
	amount := resolved.Amount
	return domain.EarningsSnapshot{
		ActualEarnings:   &amount,
		EarningsCurrency: resolved.CurrencyCode,
	}
}

func manualSnapshot(intent domain.ShiftEditIntent, job *domain.Job, previousCurrency string) domain.EarningsSnapshot {
	if job != nil && job.IsFixedIncome() {
		return domain.EarningsSnapshot{}
	}
	amount := money.RoundMoney(*intent.Patch.ManualEarnings)
	return domain.EarningsSnapshot{
		ActualEarnings:         decimalPtr(amount),
		EarningsCurrency:       manualCurrency(intent, job, previousCurrency),
		EarningsManualOverride: true,
	}
}

func manualCurrency(intent domain.ShiftEditIntent, job *domain.Job, previous string) string {
	if c := intent.Patch.ManualCurrency; c != nil && *c != "" {
		return *c
	}
	if o := intent.Patch.PayOverride; o != nil && o.CurrencyCode != "" {
		return o.CurrencyCode
	}
	if job != nil {
		return job.CurrencyCode
	}
	return previous
}

func decimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}
