// Package aggregation folds priced shifts and financial records into
// per-currency totals.
package aggregation

import (
	"sort"
	"time"

	"github.com/SscSPs/shiftpay/internal/core/domain"
	"github.com/SscSPs/shiftpay/internal/utils/earnings"
	"github.com/SscSPs/shiftpay/internal/utils/money"
	"github.com/shopspring/decimal"
)

// Input is everything a summary is computed from. Jobs is keyed by JobID.
type Input struct {
	Shifts          []domain.Shift
	Records         []domain.FinancialRecord
	Jobs            map[string]domain.Job
	DefaultCurrency string
}

// AggregateByCurrency sums earnings per currency for the period. Amounts in
// different currencies are kept in separate buckets; MixedCurrencies tells
// the caller more than one currency is present.
func AggregateByCurrency(in Input, period domain.Period) domain.EarningsSummary {
	summary := domain.EarningsSummary{
		Period:      period,
		ShiftIncome: domain.CurrencyTotals{},
		FixedIncome: domain.CurrencyTotals{},
		OtherIncome: domain.CurrencyTotals{},
		Expenses:    domain.CurrencyTotals{},
		Expected:    domain.CurrencyTotals{},
		Net:         domain.CurrencyTotals{},
	}

	for _, s := range in.Shifts {
		if !period.Contains(s.Date) {
			continue
		}
		// A job that became fixed income keeps its already priced shifts;
		// unpriced ones resolve to nil below.
		job := lookupJob(in.Jobs, s.JobID)
		switch s.Status {
		case domain.StatusCompleted:
			if s.ActualEarnings == nil {
				continue
			}
			summary.ShiftIncome.Add(shiftCurrency(s, job, in.DefaultCurrency), *s.ActualEarnings)
		case domain.StatusPlanned, domain.StatusInProgress:
			if s.ActualEarnings != nil {
				summary.Expected.Add(shiftCurrency(s, job, in.DefaultCurrency), *s.ActualEarnings)
				continue
			}
			resolved := earnings.Resolve(s.PayInput(), job)
			if resolved == nil {
				continue
			}
			code := resolved.CurrencyCode
			if code == "" {
				code = in.DefaultCurrency
			}
			summary.Expected.Add(code, resolved.Amount)
		}
	}

	months := decimal.NewFromInt(int64(monthsIn(period)))
	for _, job := range sortedJobs(in.Jobs) {
		if !job.IsActive || !job.IsFixedIncome() || job.MonthlySalary == nil || !job.MonthlySalary.IsPositive() {
			continue
		}
		summary.FixedIncome.Add(orDefault(job.CurrencyCode, in.DefaultCurrency), money.Multiply(*job.MonthlySalary, months))
	}

	for _, r := range in.Records {
		if r.Status != domain.RecordCompleted || !period.Contains(r.Date) {
			continue
		}
		code := orDefault(r.CurrencyCode, in.DefaultCurrency)
		switch r.Type {
		case domain.RecordIncome:
			summary.OtherIncome.Add(code, r.Amount)
		case domain.RecordExpense:
			summary.Expenses.Add(code, r.Amount)
		}
	}

	for _, code := range unionCodes(summary.ShiftIncome, summary.OtherIncome, summary.Expenses) {
		net := money.Sum(summary.ShiftIncome[code], summary.OtherIncome[code])
		summary.Net[code] = money.Subtract(net, summary.Expenses[code])
	}

	for _, totals := range []domain.CurrencyTotals{
		summary.ShiftIncome, summary.FixedIncome, summary.OtherIncome,
		summary.Expenses, summary.Expected, summary.Net,
	} {
		for code, amount := range totals {
			totals[code] = money.RoundMoney(amount)
		}
	}

	summary.Currencies = unionCodes(summary.ShiftIncome, summary.FixedIncome, summary.OtherIncome, summary.Expenses, summary.Expected)
	summary.MixedCurrencies = len(summary.Currencies) > 1
	return summary
}

// monthsIn counts the calendar months a bounded period touches; an
// unbounded period counts as one month.
func monthsIn(p domain.Period) int {
	if !p.Bounded() || !p.To.After(p.From) {
		return 1
	}
	last := p.To.Add(-time.Nanosecond)
	return (last.Year()-p.From.Year())*12 + int(last.Month()) - int(p.From.Month()) + 1
}

func lookupJob(jobs map[string]domain.Job, id *string) *domain.Job {
	if id == nil {
		return nil
	}
	job, ok := jobs[*id]
	if !ok {
		return nil
	}
	return &job
}

func shiftCurrency(s domain.Shift, job *domain.Job, fallback string) string {
	if s.EarningsCurrency != "" {
		return s.EarningsCurrency
	}
	if job != nil && job.CurrencyCode != "" {
		return job.CurrencyCode
	}
	return fallback
}

func orDefault(code, fallback string) string {
	if code == "" {
		return fallback
	}
	return code
}

func sortedJobs(jobs map[string]domain.Job) []domain.Job {
	list := make([]domain.Job, 0, len(jobs))
	for _, j := range jobs {
		list = append(list, j)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].JobID < list[j].JobID })
	return list
}

func unionCodes(totals ...domain.CurrencyTotals) []string {
	seen := map[string]struct{}{}
	for _, t := range totals {
		for code := range t {
			seen[code] = struct{}{}
		}
	}
	codes := make([]string, 0, len(seen))
	for code := range seen {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
