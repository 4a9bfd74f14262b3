package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	apperrors "banking-ledger/internal/errors"
	"banking-ledger/internal/models"
	"banking-ledger/internal/repositories/repository_mocks"
	"banking-ledger/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func discardLedgerLogger() LedgerLoggerInterface {
	return NewLedgerLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// AccountServiceSuite defines the test suite for AccountServiceInterface
type AccountServiceSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	accountRepo     *repository_mocks.MockAccountRepositoryInterface
	transactionRepo *repository_mocks.MockTransactionRepositoryInterface
	customerRepo    *repository_mocks.MockCustomerRepositoryInterface
	currencies      *service_mocks.MockCurrencyServiceInterface
	service         *accountService
	ctx             context.Context
	home            *models.Currency
	usd             *models.Currency
}

// SetupTest runs before each test in the suite
func (s *AccountServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.accountRepo = repository_mocks.NewMockAccountRepositoryInterface(s.ctrl)
	s.transactionRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.customerRepo = repository_mocks.NewMockCustomerRepositoryInterface(s.ctrl)
	s.currencies = service_mocks.NewMockCurrencyServiceInterface(s.ctrl)
	s.service = NewAccountService(
		s.accountRepo,
		s.transactionRepo,
		s.customerRepo,
		s.currencies,
		discardLedgerLogger(),
		NewNoopMetrics(),
	).(*accountService)

	s.ctx = context.Background()
	s.home = &models.Currency{ID: 1, Code: "ILS", ExchangeRate: decimal.NewFromInt(1)}
	s.usd = &models.Currency{ID: 2, Code: "USD", ExchangeRate: decimal.RequireFromString("3.5")}
}

// TearDownTest runs after each test in the suite
func (s *AccountServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestAccountServiceSuite runs the test suite
func TestAccountServiceSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceSuite))
}

func (s *AccountServiceSuite) expectAccount(id uint) {
	s.accountRepo.EXPECT().GetByID(s.ctx, id).Return(&models.Account{ID: id, CustomerID: 7}, nil)
}

func (s *AccountServiceSuite) TestOpenAccount_WithOpeningBalance() {
	s.customerRepo.EXPECT().GetByID(s.ctx, uint(7)).Return(&models.Customer{ID: 7}, nil)
	s.currencies.EXPECT().Resolve(s.ctx, "").Return(s.home, nil)
	s.accountRepo.EXPECT().Create(s.ctx, gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, account *models.Account, opening *models.Transaction) error {
			s.Equal(uint(7), account.CustomerID)
			s.Require().NotNil(opening)
			s.Equal(models.TransactionTypeDeposit, opening.Type)
			s.True(opening.Amount.Equal(decimal.NewFromInt(100)))
			s.True(opening.Fee.IsZero())
			account.ID = 11
			account.Balance = decimal.NewFromInt(100)
			return nil
		})

	account, err := s.service.OpenAccount(s.ctx, 7, decimal.NewFromInt(100))

	s.Require().NoError(err)
	s.Equal(uint(11), account.ID)
}

func (s *AccountServiceSuite) TestOpenAccount_ZeroBalanceSkipsOpeningDeposit() {
	s.customerRepo.EXPECT().GetByID(s.ctx, uint(7)).Return(&models.Customer{ID: 7}, nil)
	s.accountRepo.EXPECT().Create(s.ctx, gomock.Any(), gomock.Nil()).Return(nil)

	_, err := s.service.OpenAccount(s.ctx, 7, decimal.Zero)
	s.NoError(err)
}

func (s *AccountServiceSuite) TestOpenAccount_InvalidBalance() {
	for _, balance := range []string{"-1", "10.001"} {
		_, err := s.service.OpenAccount(s.ctx, 7, decimal.RequireFromString(balance))
		s.True(errors.Is(err, apperrors.ErrInvalidAmount), balance)
	}
}

func (s *AccountServiceSuite) TestOpenAccount_UnknownCustomer() {
	s.customerRepo.EXPECT().GetByID(s.ctx, uint(9)).Return(nil, apperrors.NotFound("customer", 9))

	_, err := s.service.OpenAccount(s.ctx, 9, decimal.Zero)
	s.True(errors.Is(err, apperrors.ErrNotFound))
}

func (s *AccountServiceSuite) TestDeposit_ConvertsCurrency() {
	s.expectAccount(1)
	s.currencies.EXPECT().Resolve(s.ctx, "usd").Return(s.usd, nil)
	s.accountRepo.EXPECT().ExecuteDeposit(s.ctx, uint(1), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uint, txn *models.Transaction) (*models.AccountMutation, error) {
			s.True(txn.Amount.Equal(decimal.NewFromInt(350)))
			s.True(txn.Fee.IsZero())
			s.True(txn.OriginalAmount.Equal(decimal.NewFromInt(100)))
			s.Equal("USD", txn.CurrencyCode)
			s.True(txn.ExchangeRate.Equal(decimal.RequireFromString("3.5")))
			return &models.AccountMutation{Account: &models.Account{ID: 1}, Transaction: txn}, nil
		})

	result, err := s.service.Deposit(s.ctx, 1, decimal.NewFromInt(100), "usd")

	s.Require().NoError(err)
	s.Equal(uint(1), result.Account.ID)
}

func (s *AccountServiceSuite) TestDeposit_InvalidAmount() {
	for _, amount := range []string{"0", "-5", "1.005"} {
		_, err := s.service.Deposit(s.ctx, 1, decimal.RequireFromString(amount), "")
		s.True(errors.Is(err, apperrors.ErrInvalidAmount), amount)
	}
}

func (s *AccountServiceSuite) TestDeposit_AccountNotFoundBeforeCurrency() {
	s.accountRepo.EXPECT().GetByID(s.ctx, uint(404)).Return(nil, apperrors.NotFound("account", 404))

	_, err := s.service.Deposit(s.ctx, 404, decimal.NewFromInt(10), "XXX")
	s.True(errors.Is(err, apperrors.ErrNotFound))
}

func (s *AccountServiceSuite) TestDeposit_UnknownCurrency() {
	s.expectAccount(1)
	s.currencies.EXPECT().Resolve(s.ctx, "XYZ").Return(nil, apperrors.ErrUnknownCurrency)

	_, err := s.service.Deposit(s.ctx, 1, decimal.NewFromInt(10), "XYZ")
	s.True(errors.Is(err, apperrors.ErrUnknownCurrency))
}

func (s *AccountServiceSuite) TestDeposit_ConvertsToNothing() {
	tiny := &models.Currency{Code: "XTS", ExchangeRate: decimal.RequireFromString("0.0001")}
	s.expectAccount(1)
	s.currencies.EXPECT().Resolve(s.ctx, "XTS").Return(tiny, nil)

	_, err := s.service.Deposit(s.ctx, 1, decimal.RequireFromString("0.01"), "XTS")
	s.True(errors.Is(err, apperrors.ErrInvalidAmount))
}

func (s *AccountServiceSuite) TestWithdraw_SplitsFee() {
	s.expectAccount(1)
	s.currencies.EXPECT().Resolve(s.ctx, "").Return(s.home, nil)
	s.accountRepo.EXPECT().ExecuteWithdrawal(s.ctx, uint(1), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uint, txn *models.Transaction) (*models.AccountMutation, error) {
			s.True(txn.Amount.Equal(decimal.NewFromInt(490)))
			s.True(txn.Fee.Equal(decimal.NewFromInt(10)))
			return &models.AccountMutation{Account: &models.Account{ID: 1}, Transaction: txn}, nil
		})

	_, err := s.service.Withdraw(s.ctx, 1, decimal.NewFromInt(500), "")
	s.NoError(err)
}

func (s *AccountServiceSuite) TestWithdraw_PropagatesOverdraft() {
	s.expectAccount(1)
	s.currencies.EXPECT().Resolve(s.ctx, "").Return(s.home, nil)
	s.accountRepo.EXPECT().ExecuteWithdrawal(s.ctx, uint(1), gomock.Any()).Return(nil, apperrors.ErrOverdraftExceeded)

	_, err := s.service.Withdraw(s.ctx, 1, decimal.NewFromInt(5000), "")
	s.True(errors.Is(err, apperrors.ErrOverdraftExceeded))
}

func (s *AccountServiceSuite) TestTransfer_ConvertsOnceAtSource() {
	s.expectAccount(1)
	s.expectAccount(2)
	s.currencies.EXPECT().Resolve(s.ctx, "USD").Return(s.usd, nil)
	s.accountRepo.EXPECT().ExecuteTransfer(s.ctx, uint(1), uint(2), gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _ uint, txn *models.Transaction) (*models.TransferResult, error) {
			s.True(txn.GrossAmount().Equal(decimal.NewFromInt(350)))
			s.True(txn.Fee.Equal(decimal.NewFromInt(7)))
			s.True(txn.Amount.Equal(decimal.NewFromInt(343)))
			s.Require().NotNil(txn.TargetAccountID)
			s.Equal(uint(2), *txn.TargetAccountID)
			return &models.TransferResult{
				Source:      &models.Account{ID: 1},
				Target:      &models.Account{ID: 2},
				Transaction: txn,
			}, nil
		})

	result, err := s.service.Transfer(s.ctx, 1, 2, decimal.NewFromInt(100), "USD")

	s.Require().NoError(err)
	s.Equal(uint(2), result.Target.ID)
}

func (s *AccountServiceSuite) TestTransfer_SameAccount() {
	_, err := s.service.Transfer(s.ctx, 3, 3, decimal.NewFromInt(10), "")
	s.True(errors.Is(err, apperrors.ErrSameAccountTransfer))
}

func (s *AccountServiceSuite) TestTransfer_MissingTarget() {
	s.expectAccount(1)
	s.accountRepo.EXPECT().GetByID(s.ctx, uint(2)).Return(nil, apperrors.NotFound("account", 2))

	_, err := s.service.Transfer(s.ctx, 1, 2, decimal.NewFromInt(10), "")
	s.True(errors.Is(err, apperrors.ErrNotFound))
}

func (s *AccountServiceSuite) TestClose() {
	s.accountRepo.EXPECT().Close(s.ctx, uint(5)).Return(&models.Account{ID: 5, Suspended: true}, nil)

	account, err := s.service.Close(s.ctx, 5)

	s.Require().NoError(err)
	s.True(account.Suspended)
}

func (s *AccountServiceSuite) TestClose_NegativeBalance() {
	s.accountRepo.EXPECT().Close(s.ctx, uint(5)).Return(nil, apperrors.ErrNegativeBalance)

	_, err := s.service.Close(s.ctx, 5)
	s.True(errors.Is(err, apperrors.ErrNegativeBalance))
}

func (s *AccountServiceSuite) TestGetBalance() {
	s.accountRepo.EXPECT().GetByID(s.ctx, uint(1)).Return(&models.Account{ID: 1, Balance: decimal.RequireFromString("12.34")}, nil)

	balance, err := s.service.GetBalance(s.ctx, 1)

	s.Require().NoError(err)
	s.Equal("12.34", balance.StringFixed(2))
}

func (s *AccountServiceSuite) TestListAccountTransactions() {
	s.expectAccount(1)
	s.transactionRepo.EXPECT().GetByAccountID(s.ctx, uint(1), 0, 20).Return([]models.Transaction{{ID: 1}}, int64(1), nil)

	txns, total, err := s.service.ListAccountTransactions(s.ctx, 1, 0, 20)

	s.Require().NoError(err)
	s.Len(txns, 1)
	s.Equal(int64(1), total)
}

func (s *AccountServiceSuite) TestListCustomerTransactions_UnknownCustomer() {
	s.customerRepo.EXPECT().GetByID(s.ctx, uint(8)).Return(nil, apperrors.NotFound("customer", 8))

	_, _, err := s.service.ListCustomerTransactions(s.ctx, 8, 0, 20)
	s.True(errors.Is(err, apperrors.ErrNotFound))
}

func (s *AccountServiceSuite) TestRejectionIsCountedByCode() {
	metrics := service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	logger := service_mocks.NewMockLedgerLoggerInterface(s.ctrl)
	s.service.observer = observer{logger: logger, metrics: metrics}

	logger.EXPECT().LogOperationRejected(s.ctx, "deposit", uint(1), gomock.Any())
	metrics.EXPECT().IncrementCounter(MetricLedgerOperation, map[string]string{
		"operation": "deposit",
		"status":    string(apperrors.LedgerInvalidAmount),
	})
	metrics.EXPECT().RecordProcessingTime("deposit", gomock.Any())

	_, err := s.service.Deposit(s.ctx, 1, decimal.Zero, "")
	s.Error(err)
}

func (s *AccountServiceSuite) TestOpenAccount_AboveStorageCeiling() {
	_, err := s.service.OpenAccount(s.ctx, 7, decimal.RequireFromString("123456789012.00"))
	s.True(errors.Is(err, apperrors.ErrInvalidAmount))
}

func (s *AccountServiceSuite) TestDeposit_ConvertedAmountAboveStorageCeiling() {
	s.expectAccount(1)
	s.currencies.EXPECT().Resolve(s.ctx, "USD").Return(s.usd, nil)

	_, err := s.service.Deposit(s.ctx, 1, decimal.NewFromInt(30000000), "USD")
	s.True(errors.Is(err, apperrors.ErrInvalidAmount))
}

func (s *AccountServiceSuite) TestGetTransactionByReference() {
	record := &models.Transaction{ID: 4, Reference: "TXN-abc"}
	s.transactionRepo.EXPECT().GetByReference(s.ctx, "TXN-abc").Return(record, nil)

	found, err := s.service.GetTransactionByReference(s.ctx, " TXN-abc ")
	s.Require().NoError(err)
	s.Equal(record, found)

	_, err = s.service.GetTransactionByReference(s.ctx, "  ")
	s.True(errors.Is(err, apperrors.ErrValidation))

	s.transactionRepo.EXPECT().GetByID(s.ctx, uint(9)).Return(nil, apperrors.NotFound("transaction", 9))
	_, err = s.service.GetTransaction(s.ctx, 9)
	s.True(errors.Is(err, apperrors.ErrNotFound))
}
