package services

import (
	"banking-ledger/internal/config"
	"banking-ledger/internal/repositories"

	"gorm.io/gorm"
)

// Ledger bundles the services over one database
type Ledger struct {
	Customers  CustomerServiceInterface
	Currencies CurrencyServiceInterface
	Accounts   AccountServiceInterface
	Loans      LoanServiceInterface
}

// NewLedger wires repositories and services over db
func NewLedger(db *gorm.DB, cfg config.LedgerConfig, logger LedgerLoggerInterface, metrics MetricsRecorderInterface) *Ledger {
	retry := repositories.DefaultRetryPolicy
	if cfg.TxRetries > 0 {
		retry.MaxRetries = cfg.TxRetries
	}
	if cfg.TxRetryWait > 0 {
		retry.InitialInterval = cfg.TxRetryWait
	}

	customerRepo := repositories.NewCustomerRepository(db)
	currencyRepo := repositories.NewCurrencyRepository(db)
	accountRepo := repositories.NewAccountRepository(db, retry)
	transactionRepo := repositories.NewTransactionRepository(db)
	loanRepo := repositories.NewLoanRepository(db)
	reserveRepo := repositories.NewReserveRepository(db, retry)

	currencies := NewCurrencyService(currencyRepo, cfg.HomeCurrency, logger, metrics)

	return &Ledger{
		Customers:  NewCustomerService(customerRepo, logger, metrics),
		Currencies: currencies,
		Accounts:   NewAccountService(accountRepo, transactionRepo, customerRepo, currencies, logger, metrics),
		Loans:      NewLoanService(reserveRepo, loanRepo, customerRepo, accountRepo, currencies, logger, metrics),
	}
}
