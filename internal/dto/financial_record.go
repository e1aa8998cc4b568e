package dto

import (
	"time"

	"github.com/SscSPs/shiftpay/internal/core/domain"
	"github.com/SscSPs/shiftpay/internal/utils/money"
	"github.com/shopspring/decimal"
)

// CreateFinancialRecordRequest defines the data needed to add income or an expense.
type CreateFinancialRecordRequest struct {
	JobID        *string             `json:"jobID"`
	Type         domain.RecordType   `json:"type" binding:"required,oneof=income expense"`
	Amount       decimal.Decimal     `json:"amount"`
	CurrencyCode string              `json:"currencyCode" binding:"required,currency"`
	Category     string              `json:"category" binding:"omitempty,max=64"`
	Description  string              `json:"description"`
	Date         string              `json:"date" binding:"required,datetime=2006-01-02"`
	Status       domain.RecordStatus `json:"status" binding:"omitempty,oneof=completed planned cancelled"`
}

// ListFinancialRecordsParams defines query parameters for listing records.
type ListFinancialRecordsParams struct {
	From string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To   string `form:"to" binding:"omitempty,datetime=2006-01-02"`
}

// FinancialRecordResponse defines the data returned for a record.
type FinancialRecordResponse struct {
	RecordID     string              `json:"recordID"`
	JobID        *string             `json:"jobID"`
	Type         domain.RecordType   `json:"type"`
	Amount       decimal.Decimal     `json:"amount"`
	CurrencyCode string              `json:"currencyCode"`
	Formatted    string              `json:"formatted"`
	Category     string              `json:"category"`
	Description  string              `json:"description"`
	Date         string              `json:"date"`
	Status       domain.RecordStatus `json:"status"`
	CreatedAt    time.Time           `json:"createdAt"`
}

// ToFinancialRecordResponse converts a domain.FinancialRecord to its DTO
func ToFinancialRecordResponse(r *domain.FinancialRecord) FinancialRecordResponse {
	return FinancialRecordResponse{
		RecordID:     r.RecordID,
		JobID:        r.JobID,
		Type:         r.Type,
		Amount:       r.Amount,
		CurrencyCode: r.CurrencyCode,
		Formatted:    money.FormatCurrency(r.Amount, r.CurrencyCode),
		Category:     r.Category,
		Description:  r.Description,
		Date:         r.Date.Format(DateLayout),
		Status:       r.Status,
		CreatedAt:    r.CreatedAt,
	}
}

// ToListFinancialRecordResponse converts a slice of records to DTOs
func ToListFinancialRecordResponse(records []domain.FinancialRecord) []FinancialRecordResponse {
	res := make([]FinancialRecordResponse, len(records))
	for i := range records {
		res[i] = ToFinancialRecordResponse(&records[i])
	}
	return res
}
