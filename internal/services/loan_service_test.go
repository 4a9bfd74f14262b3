package services

import (
	"context"
	"errors"
	"testing"

	apperrors "banking-ledger/internal/errors"
	"banking-ledger/internal/models"
	"banking-ledger/internal/repositories/repository_mocks"
	"banking-ledger/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// LoanServiceSuite defines the test suite for LoanServiceInterface
type LoanServiceSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	reserveRepo  *repository_mocks.MockReserveRepositoryInterface
	loanRepo     *repository_mocks.MockLoanRepositoryInterface
	customerRepo *repository_mocks.MockCustomerRepositoryInterface
	accountRepo  *repository_mocks.MockAccountRepositoryInterface
	currencies   *service_mocks.MockCurrencyServiceInterface
	service      *loanService
	ctx          context.Context
}

// SetupTest runs before each test in the suite
func (s *LoanServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.reserveRepo = repository_mocks.NewMockReserveRepositoryInterface(s.ctrl)
	s.loanRepo = repository_mocks.NewMockLoanRepositoryInterface(s.ctrl)
	s.customerRepo = repository_mocks.NewMockCustomerRepositoryInterface(s.ctrl)
	s.accountRepo = repository_mocks.NewMockAccountRepositoryInterface(s.ctrl)
	s.currencies = service_mocks.NewMockCurrencyServiceInterface(s.ctrl)
	s.service = NewLoanService(
		s.reserveRepo,
		s.loanRepo,
		s.customerRepo,
		s.accountRepo,
		s.currencies,
		discardLedgerLogger(),
		NewNoopMetrics(),
	).(*loanService)
	s.ctx = context.Background()
}

// TearDownTest runs after each test in the suite
func (s *LoanServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestLoanServiceSuite runs the test suite
func TestLoanServiceSuite(t *testing.T) {
	suite.Run(t, new(LoanServiceSuite))
}

func (s *LoanServiceSuite) TestGrantLoan() {
	s.customerRepo.EXPECT().GetByID(s.ctx, uint(3)).Return(&models.Customer{ID: 3}, nil)
	s.reserveRepo.EXPECT().GrantLoan(s.ctx, gomock.Any(), gomock.Nil()).DoAndReturn(
		func(_ context.Context, loan *models.Loan, _ *models.Transaction) (*models.LoanGrant, error) {
			s.Equal(uint(3), loan.CustomerID)
			s.True(loan.Principal.Equal(decimal.NewFromInt(50000)))
			loan.ID = 1
			return &models.LoanGrant{Loan: loan, ReserveBalance: decimal.NewFromInt(50000)}, nil
		})

	grant, err := s.service.GrantLoan(s.ctx, 3, decimal.NewFromInt(50000), nil)

	s.Require().NoError(err)
	s.Equal(uint(1), grant.Loan.ID)
}

func (s *LoanServiceSuite) TestGrantLoan_LimitCheckedBeforeAnyLookup() {
	_, err := s.service.GrantLoan(s.ctx, 3, decimal.RequireFromString("50000.01"), nil)
	s.True(errors.Is(err, apperrors.ErrLoanLimitExceeded))

	_, err = s.service.GrantLoan(s.ctx, 3, decimal.Zero, nil)
	s.True(errors.Is(err, apperrors.ErrInvalidAmount))
}

func (s *LoanServiceSuite) TestGrantLoan_UnknownCustomer() {
	s.customerRepo.EXPECT().GetByID(s.ctx, uint(3)).Return(nil, apperrors.NotFound("customer", 3))

	_, err := s.service.GrantLoan(s.ctx, 3, decimal.NewFromInt(100), nil)
	s.True(errors.Is(err, apperrors.ErrNotFound))
}

func (s *LoanServiceSuite) TestGrantLoan_WithDisbursement() {
	accountID := uint(12)
	home := &models.Currency{Code: "ILS", ExchangeRate: decimal.NewFromInt(1)}

	s.customerRepo.EXPECT().GetByID(s.ctx, uint(3)).Return(&models.Customer{ID: 3}, nil)
	s.accountRepo.EXPECT().GetByID(s.ctx, accountID).Return(&models.Account{ID: accountID, CustomerID: 3}, nil)
	s.currencies.EXPECT().Resolve(s.ctx, "").Return(home, nil)
	s.reserveRepo.EXPECT().GrantLoan(s.ctx, gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, loan *models.Loan, txn *models.Transaction) (*models.LoanGrant, error) {
			s.Require().NotNil(loan.DisbursementAccountID)
			s.Equal(accountID, *loan.DisbursementAccountID)
			s.Require().NotNil(txn)
			s.Equal(models.TransactionTypeDeposit, txn.Type)
			s.True(txn.Amount.Equal(decimal.NewFromInt(2500)))
			loan.ID = 4
			return &models.LoanGrant{Loan: loan, ReserveBalance: decimal.NewFromInt(1), Disbursement: txn}, nil
		})

	grant, err := s.service.GrantLoan(s.ctx, 3, decimal.NewFromInt(2500), &accountID)

	s.Require().NoError(err)
	s.NotNil(grant.Disbursement)
}

func (s *LoanServiceSuite) TestGrantLoan_ForeignDisbursementAccount() {
	accountID := uint(12)
	s.customerRepo.EXPECT().GetByID(s.ctx, uint(3)).Return(&models.Customer{ID: 3}, nil)
	s.accountRepo.EXPECT().GetByID(s.ctx, accountID).Return(&models.Account{ID: accountID, CustomerID: 99}, nil)

	_, err := s.service.GrantLoan(s.ctx, 3, decimal.NewFromInt(2500), &accountID)
	s.True(errors.Is(err, apperrors.ErrValidation))
}

func (s *LoanServiceSuite) TestGrantLoan_InsufficientReserve() {
	s.customerRepo.EXPECT().GetByID(s.ctx, uint(3)).Return(&models.Customer{ID: 3}, nil)
	s.reserveRepo.EXPECT().GrantLoan(s.ctx, gomock.Any(), gomock.Nil()).Return(nil, apperrors.ErrInsufficientReserve)

	_, err := s.service.GrantLoan(s.ctx, 3, decimal.NewFromInt(100), nil)
	s.True(errors.Is(err, apperrors.ErrInsufficientReserve))
}

func (s *LoanServiceSuite) TestRepayLoan() {
	loan := &models.Loan{ID: 4, CustomerID: 3, Principal: decimal.NewFromInt(100), RepaidAmount: decimal.NewFromInt(100), IsRepaid: true}
	s.reserveRepo.EXPECT().RepayLoan(s.ctx, uint(4), decimal.NewFromInt(100)).Return(&models.LoanRepaymentResult{
		Loan:           loan,
		Repayment:      &models.LoanRepayment{LoanID: 4, Amount: decimal.NewFromInt(100)},
		ReserveBalance: decimal.NewFromInt(1000),
	}, nil)

	result, err := s.service.RepayLoan(s.ctx, 4, decimal.NewFromInt(100))

	s.Require().NoError(err)
	s.True(result.Loan.IsRepaid)
	s.True(result.Remaining().IsZero())
}

func (s *LoanServiceSuite) TestRepayLoan_InvalidAmount() {
	for _, amount := range []string{"0", "-1", "0.001"} {
		_, err := s.service.RepayLoan(s.ctx, 4, decimal.RequireFromString(amount))
		s.True(errors.Is(err, apperrors.ErrInvalidAmount), amount)
	}
}

func (s *LoanServiceSuite) TestListRepayments_UnknownLoan() {
	s.loanRepo.EXPECT().GetByID(s.ctx, uint(5)).Return(nil, apperrors.NotFound("loan", 5))

	_, err := s.service.ListRepayments(s.ctx, 5)
	s.True(errors.Is(err, apperrors.ErrNotFound))
}
