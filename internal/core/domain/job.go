package domain

import "github.com/shopspring/decimal"

// PayType is the pay structure of a job.
type PayType string

const (
	PayHourly  PayType = "hourly"
	PayDaily   PayType = "daily"
	PayMonthly PayType = "monthly"
	PaySalary  PayType = "salary"
)

// Valid reports whether p is one of the known pay types.
func (p PayType) Valid() bool {
	switch p {
	case PayHourly, PayDaily, PayMonthly, PaySalary:
		return true
	}
	return false
}

// Job is a pay profile that shifts are logged against.
// Only the rate field matching PayType is meaningful.
type Job struct {
	JobID             string           `json:"jobID"`
	UserID            string           `json:"userID"`
	Name              string           `json:"name"`
	Description       string           `json:"description"`
	PayType           PayType          `json:"payType"`
	HourlyRate        *decimal.Decimal `json:"hourlyRate"`
	DailyRate         *decimal.Decimal `json:"dailyRate"`
	MonthlySalary     *decimal.Decimal `json:"monthlySalary"`
	CurrencyCode      string           `json:"currencyCode"`
	ShowInFixedIncome bool             `json:"showInFixedIncome"`
	Color             string           `json:"color"`
	IsActive          bool             `json:"isActive"`
	AuditFields
}

// IsFixedIncome reports whether shifts of this job are time-tracked only
// and never priced individually.
func (j Job) IsFixedIncome() bool {
	return (j.PayType == PayMonthly || j.PayType == PaySalary) && j.ShowInFixedIncome
}

// DefaultRate returns the rate matching the job's pay type, or nil.
func (j Job) DefaultRate() *decimal.Decimal {
	switch j.PayType {
	case PayHourly:
		return j.HourlyRate
	case PayDaily:
		return j.DailyRate
	case PayMonthly, PaySalary:
		return j.MonthlySalary
	}
	return nil
}
