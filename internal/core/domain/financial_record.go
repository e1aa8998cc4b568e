package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordType separates income from expenses.
type RecordType string

const (
	RecordIncome  RecordType = "income"
	RecordExpense RecordType = "expense"
)

// RecordStatus is the lifecycle of a financial record.
type RecordStatus string

const (
	RecordCompleted RecordStatus = "completed"
	RecordPlanned   RecordStatus = "planned"
	RecordCancelled RecordStatus = "cancelled"
)

// FinancialRecord is a standalone income or expense entry.
type FinancialRecord struct {
	RecordID     string          `json:"recordID"`
	UserID       string          `json:"userID"`
	JobID        *string         `json:"jobID"`
	Type         RecordType      `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
	Category     string          `json:"category"`
	Description  string          `json:"description"`
	Date         time.Time       `json:"date"`
	Status       RecordStatus    `json:"status"`
	AuditFields
}
