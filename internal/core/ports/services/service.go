package services

// ServiceContainer bundles every service facade handed to the HTTP layer.
type ServiceContainer struct {
	Exchange  ExchangeSvcFacade
	Reporting ReportingSvcFacade
	Notifier  Notifier
	Invoices  InvoiceStore
}
