package services

import (
	"context"
	"strings"
	"time"

	apperrors "banking-ledger/internal/errors"
	"banking-ledger/internal/models"
	"banking-ledger/internal/repositories"

	"github.com/shopspring/decimal"
)

// accountService implements AccountServiceInterface
type accountService struct {
	accountRepo     repositories.AccountRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	customerRepo    repositories.CustomerRepositoryInterface
	currencies      CurrencyServiceInterface
	observer
}

// NewAccountService creates the account service
func NewAccountService(
	accountRepo repositories.AccountRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	customerRepo repositories.CustomerRepositoryInterface,
	currencies CurrencyServiceInterface,
	logger LedgerLoggerInterface,
	metrics MetricsRecorderInterface,
) AccountServiceInterface {
	return &accountService{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		customerRepo:    customerRepo,
		currencies:      currencies,
		observer:        observer{logger: logger, metrics: metrics},
	}
}

// OpenAccount opens an account for an existing customer. A positive opening
// balance is booked as a home-currency deposit.
func (s *accountService) OpenAccount(ctx context.Context, customerID uint, openingBalance decimal.Decimal) (account *models.Account, err error) {
	start := time.Now()
	defer func() { s.finish(ctx, "open_account", customerID, start, err) }()

	if openingBalance.IsNegative() || (!openingBalance.IsZero() && !models.IsMoneyAmount(openingBalance)) {
		return nil, apperrors.ErrInvalidAmount.Withf("opening balance %s", openingBalance.String())
	}

	if _, err = s.customerRepo.GetByID(ctx, customerID); err != nil {
		return nil, err
	}

	var opening *models.Transaction
	if openingBalance.IsPositive() {
		home, err := s.currencies.Resolve(ctx, "")
		if err != nil {
			return nil, err
		}
		opening = models.NewTransaction(models.TransactionTypeDeposit, 0, openingBalance, home, openingBalance)
		opening.Description = "opening balance"
	}

	account = &models.Account{CustomerID: customerID}
	if err = s.accountRepo.Create(ctx, account, opening); err != nil {
		return nil, err
	}

	s.logger.LogAccountOpened(ctx, account.ID, customerID, account.Balance.StringFixed(models.MoneyScale))
	if opening != nil {
		s.logger.LogTransactionRecorded(ctx, opening)
	}
	return account, nil
}

// GetAccount retrieves an account by ID
func (s *accountService) GetAccount(ctx context.Context, accountID uint) (*models.Account, error) {
	return s.accountRepo.GetByID(ctx, accountID)
}

// GetBalance returns the current balance of an account
func (s *accountService) GetBalance(ctx context.Context, accountID uint) (decimal.Decimal, error) {
	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return decimal.Zero, err
	}
	return account.Balance, nil
}

// ListCustomerAccounts lists every account of a customer
func (s *accountService) ListCustomerAccounts(ctx context.Context, customerID uint) ([]models.Account, error) {
	if _, err := s.customerRepo.GetByID(ctx, customerID); err != nil {
		return nil, err
	}
	return s.accountRepo.GetByCustomerID(ctx, customerID)
}

// Deposit credits amount, given in currencyCode, to the account
func (s *accountService) Deposit(ctx context.Context, accountID uint, amount decimal.Decimal, currencyCode string) (result *models.AccountMutation, err error) {
	start := time.Now()
	defer func() { s.finish(ctx, "deposit", accountID, start, err) }()

	txn, err := s.prepare(ctx, models.TransactionTypeDeposit, amount, currencyCode, accountID)
	if err != nil {
		return nil, err
	}

	result, err = s.accountRepo.ExecuteDeposit(ctx, accountID, txn)
	if err != nil {
		return nil, err
	}

	s.logger.LogTransactionRecorded(ctx, result.Transaction)
	return result, nil
}

// Withdraw debits amount plus the withdrawal fee from the account
func (s *accountService) Withdraw(ctx context.Context, accountID uint, amount decimal.Decimal, currencyCode string) (result *models.AccountMutation, err error) {
	start := time.Now()
	defer func() { s.finish(ctx, "withdraw", accountID, start, err) }()

	txn, err := s.prepare(ctx, models.TransactionTypeWithdraw, amount, currencyCode, accountID)
	if err != nil {
		return nil, err
	}

	result, err = s.accountRepo.ExecuteWithdrawal(ctx, accountID, txn)
	if err != nil {
		return nil, err
	}

	s.logger.LogTransactionRecorded(ctx, result.Transaction)
	s.metrics.RecordGauge(MetricFeesCollected, result.Transaction.Fee.InexactFloat64(), nil)
	return result, nil
}

// Transfer moves amount from one account to another. The source pays the
// gross converted amount, the target receives it net of the fee.
func (s *accountService) Transfer(ctx context.Context, fromAccountID, toAccountID uint, amount decimal.Decimal, currencyCode string) (result *models.TransferResult, err error) {
	start := time.Now()
	defer func() { s.finish(ctx, "transfer", fromAccountID, start, err) }()

	if !models.IsMoneyAmount(amount) {
		return nil, apperrors.ErrInvalidAmount.Withf("transfer amount %s", amount.String())
	}

	if fromAccountID == toAccountID {
		return nil, apperrors.ErrSameAccountTransfer.Withf("account id %d", fromAccountID)
	}

	txn, err := s.prepare(ctx, models.TransactionTypeTransfer, amount, currencyCode, fromAccountID, toAccountID)
	if err != nil {
		return nil, err
	}
	txn.TargetAccountID = &toAccountID

	result, err = s.accountRepo.ExecuteTransfer(ctx, fromAccountID, toAccountID, txn)
	if err != nil {
		return nil, err
	}

	s.logger.LogTransactionRecorded(ctx, result.Transaction)
	s.metrics.RecordGauge(MetricTransferAmount, result.Transaction.GrossAmount().InexactFloat64(), nil)
	s.metrics.RecordGauge(MetricFeesCollected, result.Transaction.Fee.InexactFloat64(), nil)
	return result, nil
}

// Close suspends the account for good
func (s *accountService) Close(ctx context.Context, accountID uint) (account *models.Account, err error) {
	start := time.Now()
	defer func() { s.finish(ctx, "close_account", accountID, start, err) }()

	account, err = s.accountRepo.Close(ctx, accountID)
	if err != nil {
		return nil, err
	}

	s.logger.LogAccountClosed(ctx, account.ID)
	return account, nil
}

// ListAccountTransactions pages through the transactions of an account
func (s *accountService) ListAccountTransactions(ctx context.Context, accountID uint, offset, limit int) ([]models.Transaction, int64, error) {
	if _, err := s.accountRepo.GetByID(ctx, accountID); err != nil {
		return nil, 0, err
	}
	return s.transactionRepo.GetByAccountID(ctx, accountID, offset, limit)
}

// ListCustomerTransactions pages through the transactions of all accounts of a customer
func (s *accountService) ListCustomerTransactions(ctx context.Context, customerID uint, offset, limit int) ([]models.Transaction, int64, error) {
	if _, err := s.customerRepo.GetByID(ctx, customerID); err != nil {
		return nil, 0, err
	}
	return s.transactionRepo.GetByCustomerID(ctx, customerID, offset, limit)
}

// TotalFees returns the fee income retained so far
func (s *accountService) TotalFees(ctx context.Context) (decimal.Decimal, error) {
	return s.transactionRepo.TotalFees(ctx)
}

// GetTransaction retrieves a transaction record by ID
func (s *accountService) GetTransaction(ctx context.Context, transactionID uint) (*models.Transaction, error) {
	return s.transactionRepo.GetByID(ctx, transactionID)
}

// GetTransactionByReference retrieves a transaction record by its reference
func (s *accountService) GetTransactionByReference(ctx context.Context, reference string) (*models.Transaction, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return nil, apperrors.NewValidationError("reference is required")
	}
	return s.transactionRepo.GetByReference(ctx, reference)
}

// prepare validates the request in the order callers see errors (amount,
// accounts, currency) and builds the home-currency record template.
func (s *accountService) prepare(
	ctx context.Context,
	kind models.TransactionType,
	amount decimal.Decimal,
	currencyCode string,
	accountIDs ...uint,
) (*models.Transaction, error) {
	if !models.IsMoneyAmount(amount) {
		return nil, apperrors.ErrInvalidAmount.Withf("%s amount %s", kind, amount.String())
	}

	for _, id := range accountIDs {
		if _, err := s.accountRepo.GetByID(ctx, id); err != nil {
			return nil, err
		}
	}

	currency, err := s.currencies.Resolve(ctx, currencyCode)
	if err != nil {
		return nil, err
	}

	gross := currency.Convert(amount)
	if !models.IsMoneyAmount(gross) {
		return nil, apperrors.ErrInvalidAmount.Withf("%s %s converts to %s", amount.String(), currency.Code, gross.StringFixed(models.MoneyScale))
	}

	return models.NewTransaction(kind, accountIDs[0], gross, currency, amount), nil
}
