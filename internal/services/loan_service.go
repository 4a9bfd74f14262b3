package services

import (
	"context"
	"time"

	apperrors "banking-ledger/internal/errors"
	"banking-ledger/internal/models"
	"banking-ledger/internal/repositories"

	"github.com/shopspring/decimal"
)

// loanService implements LoanServiceInterface
type loanService struct {
	reserveRepo  repositories.ReserveRepositoryInterface
	loanRepo     repositories.LoanRepositoryInterface
	customerRepo repositories.CustomerRepositoryInterface
	accountRepo  repositories.AccountRepositoryInterface
	currencies   CurrencyServiceInterface
	observer
}

// NewLoanService creates the loan service
func NewLoanService(
	reserveRepo repositories.ReserveRepositoryInterface,
	loanRepo repositories.LoanRepositoryInterface,
	customerRepo repositories.CustomerRepositoryInterface,
	accountRepo repositories.AccountRepositoryInterface,
	currencies CurrencyServiceInterface,
	logger LedgerLoggerInterface,
	metrics MetricsRecorderInterface,
) LoanServiceInterface {
	return &loanService{
		reserveRepo:  reserveRepo,
		loanRepo:     loanRepo,
		customerRepo: customerRepo,
		accountRepo:  accountRepo,
		currencies:   currencies,
		observer:     observer{logger: logger, metrics: metrics},
	}
}

// GrantLoan lends principal from the reserve to a customer, optionally
// crediting it to one of the customer's accounts.
func (s *loanService) GrantLoan(ctx context.Context, customerID uint, principal decimal.Decimal, disbursementAccountID *uint) (grant *models.LoanGrant, err error) {
	start := time.Now()
	defer func() { s.finish(ctx, "grant_loan", customerID, start, err) }()

	if err = models.ValidatePrincipal(principal); err != nil {
		return nil, err
	}

	if _, err = s.customerRepo.GetByID(ctx, customerID); err != nil {
		return nil, err
	}

	var disbursement *models.Transaction
	if disbursementAccountID != nil {
		account, err := s.accountRepo.GetByID(ctx, *disbursementAccountID)
		if err != nil {
			return nil, err
		}
		if account.CustomerID != customerID {
			return nil, apperrors.NewValidationError("disbursement account belongs to another customer")
		}

		home, err := s.currencies.Resolve(ctx, "")
		if err != nil {
			return nil, err
		}
		disbursement = models.NewTransaction(models.TransactionTypeDeposit, account.ID, principal, home, principal)
		disbursement.Description = "loan disbursement"
	}

	grant, err = s.reserveRepo.GrantLoan(ctx, &models.Loan{
		CustomerID:            customerID,
		Principal:             principal,
		DisbursementAccountID: disbursementAccountID,
	}, disbursement)
	if err != nil {
		return nil, err
	}

	s.logger.LogLoanGranted(ctx, grant.Loan.ID, customerID,
		grant.Loan.Principal.StringFixed(models.MoneyScale), grant.ReserveBalance.StringFixed(models.MoneyScale))
	if grant.Disbursement != nil {
		s.logger.LogTransactionRecorded(ctx, grant.Disbursement)
	}
	s.metrics.RecordGauge(MetricLoanPrincipal, grant.Loan.Principal.InexactFloat64(), nil)
	s.metrics.RecordGauge(MetricReserveBalance, grant.ReserveBalance.InexactFloat64(), nil)
	return grant, nil
}

// RepayLoan applies a repayment and returns it to the reserve
func (s *loanService) RepayLoan(ctx context.Context, loanID uint, amount decimal.Decimal) (result *models.LoanRepaymentResult, err error) {
	start := time.Now()
	defer func() { s.finish(ctx, "repay_loan", loanID, start, err) }()

	if !models.IsMoneyAmount(amount) {
		return nil, apperrors.ErrInvalidAmount.Withf("repayment amount %s", amount.String())
	}

	result, err = s.reserveRepo.RepayLoan(ctx, loanID, amount)
	if err != nil {
		return nil, err
	}

	s.logger.LogLoanRepayment(ctx, loanID, amount.StringFixed(models.MoneyScale),
		result.Remaining().StringFixed(models.MoneyScale), result.Loan.IsRepaid)
	s.metrics.RecordGauge(MetricReserveBalance, result.ReserveBalance.InexactFloat64(), nil)
	return result, nil
}

// GetLoan retrieves a loan by ID
func (s *loanService) GetLoan(ctx context.Context, loanID uint) (*models.Loan, error) {
	return s.loanRepo.GetByID(ctx, loanID)
}

// ListCustomerLoans lists every loan of a customer
func (s *loanService) ListCustomerLoans(ctx context.Context, customerID uint) ([]models.Loan, error) {
	if _, err := s.customerRepo.GetByID(ctx, customerID); err != nil {
		return nil, err
	}
	return s.loanRepo.GetByCustomerID(ctx, customerID)
}

// ListRepayments lists the repayment history of a loan
func (s *loanService) ListRepayments(ctx context.Context, loanID uint) ([]models.LoanRepayment, error) {
	if _, err := s.loanRepo.GetByID(ctx, loanID); err != nil {
		return nil, err
	}
	return s.loanRepo.GetRepayments(ctx, loanID)
}

// GetReserve returns the bank reserve
func (s *loanService) GetReserve(ctx context.Context) (*models.BankReserve, error) {
	return s.reserveRepo.Get(ctx)
}
