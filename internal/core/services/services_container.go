package services

import (
	portsrepo "github.com/dpk-exchange/exchange_backend/internal/core/ports/repositories"
	portssvc "github.com/dpk-exchange/exchange_backend/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies. The renderer, store and notifier adapters are
// constructed by the caller so tests can substitute fakes.
func NewServiceContainer(
	repos portsrepo.RepositoryProvider,
	renderer portssvc.InvoiceRenderer,
	store portssvc.InvoiceStore,
	notifier portssvc.Notifier,
) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Exchange = NewExchangeService(repos.TransactionRepo, renderer, store)
	container.Reporting = NewReportingService(repos.TransactionRepo)
	container.Notifier = notifier
	container.Invoices = store

	return container
}

// Compile-time interface checks
var (
	_ portssvc.ExchangeSvcFacade  = (*exchangeService)(nil)
	_ portssvc.ReportingSvcFacade = (*reportingService)(nil)
)
