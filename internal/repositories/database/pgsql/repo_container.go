package pgsql

import (
	portsrepo "github.com/SscSPs/shiftpay/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		JobRepo:             newPgxJobRepository(dbPool),
		ShiftRepo:           newPgxShiftRepository(dbPool),
		FinancialRecordRepo: newPgxFinancialRecordRepository(dbPool),
		CurrencyRepo:        newPgxCurrencyRepository(dbPool),
	}
}
