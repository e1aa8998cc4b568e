package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FinancialRecord is a row of the financial_records table.
type FinancialRecord struct {
	RecordID     string          `db:"record_id"`
	UserID       string          `db:"user_id"`
	JobID        *string         `db:"job_id"`
	RecordType   string          `db:"record_type"`
	Amount       decimal.Decimal `db:"amount"`
	CurrencyCode string          `db:"currency_code"`
	Category     string          `db:"category"`
	Description  string          `db:"description"`
	RecordDate   time.Time       `db:"record_date"`
	Status       string          `db:"status"`
	AuditFields
}
