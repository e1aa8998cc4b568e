package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/shiftpay/internal/apperrors"
	"github.com/SscSPs/shiftpay/internal/core/domain"
	portsrepo "github.com/SscSPs/shiftpay/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/shiftpay/internal/core/ports/services"
	"github.com/SscSPs/shiftpay/internal/dto"
	"github.com/SscSPs/shiftpay/internal/utils/money"
	"github.com/google/uuid"
)

type financialRecordService struct {
	BaseService
	recordRepo portsrepo.FinancialRecordRepositoryFacade
}

// NewFinancialRecordService creates a new income and expense record service
func NewFinancialRecordService(repo portsrepo.FinancialRecordRepositoryFacade) portssvc.FinancialRecordSvcFacade {
	return &financialRecordService{recordRepo: repo}
}

var _ portssvc.FinancialRecordSvcFacade = (*financialRecordService)(nil)

func (s *financialRecordService) CreateRecord(ctx context.Context, userID string, req dto.CreateFinancialRecordRequest) (*domain.FinancialRecord, error) {
	if !req.Amount.IsPositive() {
		return nil, apperrors.NewValidationError("amount must be positive")
	}
	date, err := time.Parse(dto.DateLayout, req.Date)
	if err != nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid date %q", req.Date))
	}
	status := req.Status
	if status == "" {
		status = domain.RecordCompleted
	}

	now := s.Now()
	record := domain.FinancialRecord{
		RecordID:     uuid.NewString(),
		UserID:       userID,
		JobID:        req.JobID,
		Type:         req.Type,
		Amount:       money.RoundMoney(req.Amount),
		CurrencyCode: strings.ToUpper(req.CurrencyCode),
		Category:     req.Category,
		Description:  req.Description,
		Date:         date,
		Status:       status,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.recordRepo.SaveRecord(ctx, record); err != nil {
		s.LogError(ctx, err, "Failed to save financial record", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to save financial record: %w", err)
	}
	s.LogInfo(ctx, "Financial record created",
		slog.String("record_id", record.RecordID),
		slog.String("type", string(record.Type)))
	return &record, nil
}

func (s *financialRecordService) ListRecords(ctx context.Context, userID string, period domain.Period) ([]domain.FinancialRecord, error) {
	records, err := s.recordRepo.ListRecordsInPeriod(ctx, userID, period)
	if err != nil {
		s.LogError(ctx, err, "Failed to list financial records", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list financial records: %w", err)
	}
	if records == nil {
		records = []domain.FinancialRecord{}
	}
	return records, nil
}

func (s *financialRecordService) DeleteRecord(ctx context.Context, userID, recordID string) error {
	if err := s.recordRepo.DeleteRecord(ctx, userID, recordID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("financial record " + recordID)
		}
		s.LogError(ctx, err, "Failed to delete financial record", slog.String("record_id", recordID))
		return fmt.Errorf("failed to delete financial record: %w", err)
	}
	return nil
}
