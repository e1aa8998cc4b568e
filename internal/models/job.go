package models

import "github.com/shopspring/decimal"

// Job is a row of the jobs table.
type Job struct {
	JobID             string              `db:"job_id"`
	UserID            string              `db:"user_id"`
	Name              string              `db:"name"`
	Description       string              `db:"description"`
	PayType           string              `db:"pay_type"`
	HourlyRate        decimal.NullDecimal `db:"hourly_rate"`
	DailyRate         decimal.NullDecimal `db:"daily_rate"`
	MonthlySalary     decimal.NullDecimal `db:"monthly_salary"`
	CurrencyCode      string              `db:"currency_code"`
	ShowInFixedIncome bool                `db:"show_in_fixed_income"`
	Color             string              `db:"color"`
	IsActive          bool                `db:"is_active"`
	AuditFields
}
