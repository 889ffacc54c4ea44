package services

import (
	portsrepo "github.com/SscSPs/retail_pos_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/retail_pos_app/internal/core/ports/services"
	"github.com/SscSPs/retail_pos_app/internal/platform/config"
	"github.com/SscSPs/retail_pos_app/internal/utils"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, analytics *utils.PosthogClientWrapper) *portssvc.ServiceContainer {
	options := []ServiceOption{
		WithLocation(cfg.Location),
		WithAnalytics(analytics),
	}

	return &portssvc.ServiceContainer{
		CreditSale:   NewCreditSaleService(repos.CreditSaleRepo, repos.CashSessionRepo, repos.SettingsRepo, options...),
		Transaction:  NewTransactionService(repos.TransactionRepo, repos.CreditSaleRepo, repos.CashSessionRepo, options...),
		ServiceOrder: NewServiceOrderService(repos.ServiceOrderRepo, options...),
		CashSession:  NewCashSessionService(repos.CashSessionRepo, repos.TransactionRepo, options...),
		Settings:     NewSettingsService(repos.SettingsRepo, options...),
		Reporting:    NewReportingService(repos.ReportingRepo, options...),
		User:         NewUserService(repos.UserRepo, options...),
		Token:        NewTokenService(cfg, options...),
	}
}
