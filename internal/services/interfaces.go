package services

import (
	"context"
	"time"

	"banking-ledger/internal/models"

	"github.com/shopspring/decimal"
)

// AccountServiceInterface defines account-related ledger operations.
// An empty currency code means the home currency.
type AccountServiceInterface interface {
	OpenAccount(ctx context.Context, customerID uint, openingBalance decimal.Decimal) (*models.Account, error)
	GetAccount(ctx context.Context, accountID uint) (*models.Account, error)
	GetBalance(ctx context.Context, accountID uint) (decimal.Decimal, error)
	ListCustomerAccounts(ctx context.Context, customerID uint) ([]models.Account, error)
	Deposit(ctx context.Context, accountID uint, amount decimal.Decimal, currencyCode string) (*models.AccountMutation, error)
	Withdraw(ctx context.Context, accountID uint, amount decimal.Decimal, currencyCode string) (*models.AccountMutation, error)
	Transfer(ctx context.Context, fromAccountID, toAccountID uint, amount decimal.Decimal, currencyCode string) (*models.TransferResult, error)
	Close(ctx context.Context, accountID uint) (*models.Account, error)
	ListAccountTransactions(ctx context.Context, accountID uint, offset, limit int) ([]models.Transaction, int64, error)
	ListCustomerTransactions(ctx context.Context, customerID uint, offset, limit int) ([]models.Transaction, int64, error)
	TotalFees(ctx context.Context) (decimal.Decimal, error)
	GetTransaction(ctx context.Context, transactionID uint) (*models.Transaction, error)
	GetTransactionByReference(ctx context.Context, reference string) (*models.Transaction, error)
}

// CurrencyServiceInterface manages the exchange rate table
type CurrencyServiceInterface interface {
	SetRate(ctx context.Context, code string, rate decimal.Decimal) (*models.Currency, error)
	Resolve(ctx context.Context, code string) (*models.Currency, error)
	List(ctx context.Context) ([]models.Currency, error)
	HomeCurrency() string
}

// CustomerServiceInterface manages customers
type CustomerServiceInterface interface {
	CreateCustomer(ctx context.Context, identityRef, phone, address string) (*models.Customer, error)
	GetCustomer(ctx context.Context, customerID uint) (*models.Customer, error)
	UpdateContact(ctx context.Context, customerID uint, phone, address string) (*models.Customer, error)
	FindCustomer(ctx context.Context, identityRef string) (*models.Customer, error)
	ListCustomers(ctx context.Context, offset, limit int) ([]models.Customer, int64, error)
}

// LoanServiceInterface grants and collects loans against the bank reserve
type LoanServiceInterface interface {
	GrantLoan(ctx context.Context, customerID uint, principal decimal.Decimal, disbursementAccountID *uint) (*models.LoanGrant, error)
	RepayLoan(ctx context.Context, loanID uint, amount decimal.Decimal) (*models.LoanRepaymentResult, error)
	GetLoan(ctx context.Context, loanID uint) (*models.Loan, error)
	ListCustomerLoans(ctx context.Context, customerID uint) ([]models.Loan, error)
	ListRepayments(ctx context.Context, loanID uint) ([]models.LoanRepayment, error)
	GetReserve(ctx context.Context) (*models.BankReserve, error)
}

// LedgerLoggerInterface emits one structured event per ledger outcome
type LedgerLoggerInterface interface {
	LogCustomerCreated(ctx context.Context, customerID uint, identityRef string)
	LogAccountOpened(ctx context.Context, accountID, customerID uint, openingBalance string)
	LogTransactionRecorded(ctx context.Context, txn *models.Transaction)
	LogAccountClosed(ctx context.Context, accountID uint)
	LogLoanGranted(ctx context.Context, loanID, customerID uint, principal, reserveBalance string)
	LogLoanRepayment(ctx context.Context, loanID uint, amount, remaining string, repaid bool)
	LogCurrencyRateSet(ctx context.Context, code, rate string)
	LogOperationRejected(ctx context.Context, operation string, entityID uint, err error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
