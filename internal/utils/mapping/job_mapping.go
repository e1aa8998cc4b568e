package mapping

import (
	"github.com/SscSPs/shiftpay/internal/core/domain"
	"github.com/SscSPs/shiftpay/internal/models"
)

// ToModelJob converts a domain Job to a model Job
func ToModelJob(d domain.Job) models.Job {
	return models.Job{
		JobID:             d.JobID,
		UserID:            d.UserID,
		Name:              d.Name,
		Description:       d.Description,
		PayType:           string(d.PayType),
		HourlyRate:        toNullDecimal(d.HourlyRate),
		DailyRate:         toNullDecimal(d.DailyRate),
		MonthlySalary:     toNullDecimal(d.MonthlySalary),
		CurrencyCode:      d.CurrencyCode,
		ShowInFixedIncome: d.ShowInFixedIncome,
		Color:             d.Color,
		IsActive:          d.IsActive,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJob converts a model Job to a domain Job
func ToDomainJob(m models.Job) domain.Job {
	return domain.Job{
		JobID:             m.JobID,
		UserID:            m.UserID,
		Name:              m.Name,
		Description:       m.Description,
		PayType:           domain.PayType(m.PayType),
		HourlyRate:        fromNullDecimal(m.HourlyRate),
		DailyRate:         fromNullDecimal(m.DailyRate),
		MonthlySalary:     fromNullDecimal(m.MonthlySalary),
		CurrencyCode:      m.CurrencyCode,
		ShowInFixedIncome: m.ShowInFixedIncome,
		Color:             m.Color,
		IsActive:          m.IsActive,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainJobSlice converts a slice of model Jobs to a slice of domain Jobs
func ToDomainJobSlice(ms []models.Job) []domain.Job {
	ds := make([]domain.Job, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainJob(m)
	}
	return ds
}
