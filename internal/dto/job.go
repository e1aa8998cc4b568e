package dto

import (
	"time"

	"github.com/SscSPs/shiftpay/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateJobRequest defines the data needed to create a new job.
type CreateJobRequest struct {
	Name              string           `json:"name" binding:"required,max=255"`
	Description       string           `json:"description"`
	PayType           domain.PayType   `json:"payType" binding:"required,paytype"`
	HourlyRate        *decimal.Decimal `json:"hourlyRate"`
	DailyRate         *decimal.Decimal `json:"dailyRate"`
	MonthlySalary     *decimal.Decimal `json:"monthlySalary"`
	CurrencyCode      string           `json:"currencyCode" binding:"required,currency"`
	ShowInFixedIncome bool             `json:"showInFixedIncome"`
	Color             string           `json:"color" binding:"omitempty,max=16"`
}

// UpdateJobRequest defines the data allowed for updating a job.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateJobRequest struct {
	Name              *string          `json:"name" binding:"omitempty,max=255"`
	Description       *string          `json:"description"`
	PayType           *domain.PayType  `json:"payType" binding:"omitempty,paytype"`
	HourlyRate        *decimal.Decimal `json:"hourlyRate"`
	DailyRate         *decimal.Decimal `json:"dailyRate"`
	MonthlySalary     *decimal.Decimal `json:"monthlySalary"`
	CurrencyCode      *string          `json:"currencyCode" binding:"omitempty,currency"`
	ShowInFixedIncome *bool            `json:"showInFixedIncome"`
	Color             *string          `json:"color" binding:"omitempty,max=16"`
	IsActive          *bool            `json:"isActive"`
}

// ListJobsParams defines query parameters for listing jobs.
type ListJobsParams struct {
	IncludeInactive bool `form:"includeInactive"`
}

// DeleteJobParams defines query parameters for deleting a job.
type DeleteJobParams struct {
	DeleteShifts bool `form:"deleteShifts"`
}

// JobResponse defines the data returned for a job.
type JobResponse struct {
	JobID             string           `json:"jobID"`
	Name              string           `json:"name"`
	Description       string           `json:"description"`
	PayType           domain.PayType   `json:"payType"`
	HourlyRate        *decimal.Decimal `json:"hourlyRate,omitempty"`
	DailyRate         *decimal.Decimal `json:"dailyRate,omitempty"`
	MonthlySalary     *decimal.Decimal `json:"monthlySalary,omitempty"`
	CurrencyCode      string           `json:"currencyCode"`
	ShowInFixedIncome bool             `json:"showInFixedIncome"`
	IsFixedIncome     bool             `json:"isFixedIncome"`
	Color             string           `json:"color"`
	IsActive          bool             `json:"isActive"`
	CreatedAt         time.Time        `json:"createdAt"`
	LastUpdatedAt     time.Time        `json:"lastUpdatedAt"`
}

// ToJobResponse converts a domain.Job to JobResponse DTO
func ToJobResponse(j *domain.Job) JobResponse {
	return JobResponse{
		JobID:             j.JobID,
		Name:              j.Name,
		Description:       j.Description,
		PayType:           j.PayType,
		HourlyRate:        j.HourlyRate,
		DailyRate:         j.DailyRate,
		MonthlySalary:     j.MonthlySalary,
		CurrencyCode:      j.CurrencyCode,
		ShowInFixedIncome: j.ShowInFixedIncome,
		IsFixedIncome:     j.IsFixedIncome(),
		Color:             j.Color,
		IsActive:          j.IsActive,
		CreatedAt:         j.CreatedAt,
		LastUpdatedAt:     j.LastUpdatedAt,
	}
}

// ToListJobResponse converts a slice of domain.Job to a slice of JobResponse DTOs
func ToListJobResponse(jobs []domain.Job) []JobResponse {
	res := make([]JobResponse, len(jobs))
	for i := range jobs {
		res[i] = ToJobResponse(&jobs[i])
	}
	return res
}
