package repositories

import (
	"context"

	"banking-ledger/internal/models"

	"github.com/shopspring/decimal"
)

// CustomerRepositoryInterface defines the contract for customer repository operations
type CustomerRepositoryInterface interface {
	Create(ctx context.Context, customer *models.Customer) error
	GetByID(ctx context.Context, id uint) (*models.Customer, error)
	GetByIdentityRef(ctx context.Context, identityRef string) (*models.Customer, error)
	UpdateContact(ctx context.Context, id uint, phone, address string) (*models.Customer, error)
	List(ctx context.Context, offset, limit int) ([]models.Customer, int64, error)
}

// CurrencyRepositoryInterface defines the contract for the currency table
type CurrencyRepositoryInterface interface {
	Upsert(ctx context.Context, code string, rate decimal.Decimal) (*models.Currency, error)
	GetByCode(ctx context.Context, code string) (*models.Currency, error)
	List(ctx context.Context) ([]models.Currency, error)
}

// AccountRepositoryInterface defines the contract for account repository operations.
// The Execute* methods lock the affected rows, apply the mutation and write
// the transaction record in one storage transaction.
type AccountRepositoryInterface interface {
	Create(ctx context.Context, account *models.Account, opening *models.Transaction) error
	GetByID(ctx context.Context, id uint) (*models.Account, error)
	GetByCustomerID(ctx context.Context, customerID uint) ([]models.Account, error)
	ExecuteDeposit(ctx context.Context, accountID uint, txn *models.Transaction) (*models.AccountMutation, error)
	ExecuteWithdrawal(ctx context.Context, accountID uint, txn *models.Transaction) (*models.AccountMutation, error)
	ExecuteTransfer(ctx context.Context, fromAccountID, toAccountID uint, txn *models.Transaction) (*models.TransferResult, error)
	Close(ctx context.Context, accountID uint) (*models.Account, error)
}

// TransactionRepositoryInterface defines the contract for reading the transaction log
type TransactionRepositoryInterface interface {
	GetByID(ctx context.Context, id uint) (*models.Transaction, error)
	GetByReference(ctx context.Context, reference string) (*models.Transaction, error)
	GetByAccountID(ctx context.Context, accountID uint, offset, limit int) ([]models.Transaction, int64, error)
	GetByCustomerID(ctx context.Context, customerID uint, offset, limit int) ([]models.Transaction, int64, error)
	TotalFees(ctx context.Context) (decimal.Decimal, error)
}

// LoanRepositoryInterface defines the contract for reading loans
type LoanRepositoryInterface interface {
	GetByID(ctx context.Context, id uint) (*models.Loan, error)
	GetByCustomerID(ctx context.Context, customerID uint) ([]models.Loan, error)
	GetRepayments(ctx context.Context, loanID uint) ([]models.LoanRepayment, error)
}

// ReserveRepositoryInterface is the handle on the bank reserve. Every loan
// grant and repayment goes through it so they serialize on the reserve.
type ReserveRepositoryInterface interface {
	Get(ctx context.Context) (*models.BankReserve, error)
	GrantLoan(ctx context.Context, loan *models.Loan, disbursement *models.Transaction) (*models.LoanGrant, error)
	RepayLoan(ctx context.Context, loanID uint, amount decimal.Decimal) (*models.LoanRepaymentResult, error)
}
