package mapping

import (
	"github.com/SscSPs/shiftpay/internal/core/domain"
	"github.com/SscSPs/shiftpay/internal/models"
)

// ToModelFinancialRecord converts a domain FinancialRecord to a model FinancialRecord
func ToModelFinancialRecord(d domain.FinancialRecord) models.FinancialRecord {
	return models.FinancialRecord{
		RecordID:     d.RecordID,
		UserID:       d.UserID,
		JobID:        d.JobID,
		RecordType:   string(d.Type),
		Amount:       d.Amount,
		CurrencyCode: d.CurrencyCode,
		Category:     d.Category,
		Description:  d.Description,
		RecordDate:   d.Date,
		Status:       string(d.Status),
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainFinancialRecord converts a model FinancialRecord to a domain FinancialRecord
func ToDomainFinancialRecord(m models.FinancialRecord) domain.FinancialRecord {
	return domain.FinancialRecord{
		RecordID:     m.RecordID,
		UserID:       m.UserID,
		JobID:        m.JobID,
		Type:         domain.RecordType(m.RecordType),
		Amount:       m.Amount,
		CurrencyCode: m.CurrencyCode,
		Category:     m.Category,
		Description:  m.Description,
		Date:         m.RecordDate,
		Status:       domain.RecordStatus(m.Status),
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainFinancialRecordSlice converts a slice of model records to domain records
func ToDomainFinancialRecordSlice(ms []models.FinancialRecord) []domain.FinancialRecord {
	ds := make([]domain.FinancialRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainFinancialRecord(m)
	}
	return ds
}
