package pgsql

import (
	portsrepo "github.com/dpk-exchange/exchange_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgx-backed repository for the service layer.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo: newPgxTransactionRepository(dbPool),
	}
}

// Compile-time interface check
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)
