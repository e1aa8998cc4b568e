package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/shiftpay/internal/core/domain"
	portsrepo "github.com/SscSPs/shiftpay/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/shiftpay/internal/core/ports/services"
	"github.com/SscSPs/shiftpay/internal/utils/aggregation"
)

type reportingService struct {
	BaseService
	shiftRepo       portsrepo.ShiftReader
	jobRepo         portsrepo.JobReader
	recordRepo      portsrepo.FinancialRecordReader
	defaultCurrency string
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithDefaultCurrency sets the currency of shifts no job or snapshot prices.
func WithDefaultCurrency(code string) ReportingServiceOption {
	return func(s *reportingService) {
		s.defaultCurrency = code
	}
}

// NewReportingService creates a new reporting service
func NewReportingService(shiftRepo portsrepo.ShiftReader, jobRepo portsrepo.JobReader, recordRepo portsrepo.FinancialRecordReader, options ...ReportingServiceOption) portssvc.ReportingService {
	svc := &reportingService{
		shiftRepo:       shiftRepo,
		jobRepo:         jobRepo,
		recordRepo:      recordRepo,
		defaultCurrency: "USD",
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ReportingService = (*reportingService)(nil)

func (s *reportingService) EarningsSummary(ctx context.Context, userID string, period domain.Period) (*domain.EarningsSummary, error) {
	shifts, err := s.shiftRepo.ListShiftsInPeriod(ctx, userID, period)
	if err != nil {
		s.LogError(ctx, err, "Failed to load shifts for report", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to load shifts: %w", err)
	}
	records, err := s.recordRepo.ListRecordsInPeriod(ctx, userID, period)
	if err != nil {
		s.LogError(ctx, err, "Failed to load records for report", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to load financial records: %w", err)
	}
	byID, err := s.reportJobs(ctx, userID, shifts)
	if err != nil {
		s.LogError(ctx, err, "Failed to load jobs for report", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to load jobs: %w", err)
	}
	summary := aggregation.AggregateByCurrency(aggregation.Input{
		Shifts:          shifts,
		Records:         records,
		Jobs:            byID,
		DefaultCurrency: s.defaultCurrency,
	}, period)

	s.LogDebug(ctx, "Earnings summary built",
		slog.Int("shifts", len(shifts)),
		slog.Int("records", len(records)),
		slog.Any("currencies", summary.Currencies))
	return &summary, nil
}

// reportJobs loads the active jobs plus any archived job a shift in the
// period still points at.
func (s *reportingService) reportJobs(ctx context.Context, userID string, shifts []domain.Shift) (map[string]domain.Job, error) {
	active, err := s.jobRepo.ListJobs(ctx, userID, false)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]domain.Job, len(active))
	for _, j := range active {
		byID[j.JobID] = j
	}

	var missing []string
	seen := map[string]bool{}
	for _, sh := range shifts {
		if sh.JobID == nil || seen[*sh.JobID] {
			continue
		}
		seen[*sh.JobID] = true
		if _, ok := byID[*sh.JobID]; !ok {
			missing = append(missing, *sh.JobID)
		}
	}
	if len(missing) == 0 {
		return byID, nil
	}

	archived, err := s.jobRepo.FindJobsByIDs(ctx, userID, missing)
	if err != nil {
		return nil, err
	}
	for id, j := range archived {
		byID[id] = j
	}
	return byID, nil
}
