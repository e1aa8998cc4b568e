package services

import (
	portsrepo "github.com/SscSPs/shiftpay/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/shiftpay/internal/core/ports/services"
	"github.com/SscSPs/shiftpay/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Job: NewJobService(
			repos.JobRepo,
			WithJobShiftReader(repos.ShiftRepo),
		),
		Shift:           NewShiftService(repos.ShiftRepo, repos.JobRepo),
		FinancialRecord: NewFinancialRecordService(repos.FinancialRecordRepo),
		Reporting: NewReportingService(
			repos.ShiftRepo,
			repos.JobRepo,
			repos.FinancialRecordRepo,
			WithDefaultCurrency(cfg.DefaultCurrency),
		),
		ActiveShift: NewActiveShiftService(repos.ShiftRepo),
		Currency:    NewCurrencyService(repos.CurrencyRepo),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.JobSvcFacade   = (*jobService)(nil)
	_ portssvc.ShiftSvcFacade = (*shiftService)(nil)
)
