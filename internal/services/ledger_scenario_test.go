package services

import (
	"context"
	"errors"
	"testing"

	"banking-ledger/internal/config"
	"banking-ledger/internal/database"
	apperrors "banking-ledger/internal/errors"
	"banking-ledger/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// LedgerScenarioSuite runs end-to-end flows over SQLite
type LedgerScenarioSuite struct {
	suite.Suite
	ledger *Ledger
	ctx    context.Context
}

func (s *LedgerScenarioSuite) SetupTest() {
	db := database.SetupTestDB(s.T())
	s.ctx = context.Background()

	_, err := db.SeedLedger(s.ctx, "ILS", decimal.NewFromInt(100000))
	s.Require().NoError(err)

	s.ledger = NewLedger(db.DB, config.LedgerConfig{HomeCurrency: "ILS", TxRetries: 2}, discardLedgerLogger(), NewNoopMetrics())
}

func TestLedgerScenarioSuite(t *testing.T) {
	suite.Run(t, new(LedgerScenarioSuite))
}

func (s *LedgerScenarioSuite) newCustomer() *models.Customer {
	customer, err := s.ledger.Customers.CreateCustomer(s.ctx, gofakeit.UUID(), gofakeit.Phone(), gofakeit.Street())
	s.Require().NoError(err)
	return customer
}

func (s *LedgerScenarioSuite) openAccount(customerID uint, balance string) *models.Account {
	account, err := s.ledger.Accounts.OpenAccount(s.ctx, customerID, decimal.RequireFromString(balance))
	s.Require().NoError(err)
	return account
}

func (s *LedgerScenarioSuite) balance(accountID uint) string {
	balance, err := s.ledger.Accounts.GetBalance(s.ctx, accountID)
	s.Require().NoError(err)
	return balance.StringFixed(2)
}

func (s *LedgerScenarioSuite) TestDepositThenWithdraw() {
	customer := s.newCustomer()
	account := s.openAccount(customer.ID, "100")

	deposit, err := s.ledger.Accounts.Deposit(s.ctx, account.ID, decimal.NewFromInt(50), "")
	s.Require().NoError(err)
	s.Equal("150.00", deposit.Account.Balance.StringFixed(2))

	withdrawal, err := s.ledger.Accounts.Withdraw(s.ctx, account.ID, decimal.NewFromInt(30), "")
	s.Require().NoError(err)
	s.Equal("120.00", withdrawal.Account.Balance.StringFixed(2))
	s.Equal("29.40", withdrawal.Transaction.Amount.StringFixed(2))
	s.Equal("0.60", withdrawal.Transaction.Fee.StringFixed(2))
	s.Equal("120.00", s.balance(account.ID))

	history, total, err := s.ledger.Accounts.ListAccountTransactions(s.ctx, account.ID, 0, 10)
	s.Require().NoError(err)
	s.Equal(int64(3), total, "opening deposit, deposit and withdrawal")
	s.Equal(models.TransactionTypeWithdraw, history[0].Type)
}

func (s *LedgerScenarioSuite) TestWithdrawFeeSchedule() {
	customer := s.newCustomer()
	account := s.openAccount(customer.ID, "0")

	result, err := s.ledger.Accounts.Withdraw(s.ctx, account.ID, decimal.NewFromInt(500), "")
	s.Require().NoError(err)
	s.Equal("10.00", result.Transaction.Fee.StringFixed(2))
	s.Equal("490.00", result.Transaction.Amount.StringFixed(2))
	s.Equal("-500.00", s.balance(account.ID))

	_, err = s.ledger.Accounts.Withdraw(s.ctx, account.ID, decimal.RequireFromString("500.01"), "")
	s.True(errors.Is(err, apperrors.ErrOverdraftExceeded))
	s.Equal("-500.00", s.balance(account.ID))

	fees, err := s.ledger.Accounts.TotalFees(s.ctx)
	s.Require().NoError(err)
	s.Equal("10.00", fees.StringFixed(2))
}

func (s *LedgerScenarioSuite) TestSuspendedAccountRejectsMutations() {
	customer := s.newCustomer()
	account := s.openAccount(customer.ID, "20")

	_, err := s.ledger.Accounts.Close(s.ctx, account.ID)
	s.Require().NoError(err)

	_, err = s.ledger.Accounts.Deposit(s.ctx, account.ID, decimal.NewFromInt(1), "")
	s.True(errors.Is(err, apperrors.ErrAccountSuspended))

	_, err = s.ledger.Accounts.Withdraw(s.ctx, account.ID, decimal.NewFromInt(1), "")
	s.True(errors.Is(err, apperrors.ErrAccountSuspended))

	s.Equal("20.00", s.balance(account.ID))
}

func (s *LedgerScenarioSuite) TestForeignCurrencyTransfer() {
	_, err := s.ledger.Currencies.SetRate(s.ctx, "eur", decimal.NewFromInt(4))
	s.Require().NoError(err)

	customer := s.newCustomer()
	source := s.openAccount(customer.ID, "1000")
	target := s.openAccount(s.newCustomer().ID, "0")

	result, err := s.ledger.Accounts.Transfer(s.ctx, source.ID, target.ID, decimal.NewFromInt(100), "EUR")
	s.Require().NoError(err)

	s.Equal("600.00", s.balance(source.ID))
	s.Equal("392.00", s.balance(target.ID))
	s.Equal("EUR", result.Transaction.CurrencyCode)
	s.Equal("100.00", result.Transaction.OriginalAmount.StringFixed(2))

	_, err = s.ledger.Accounts.Transfer(s.ctx, source.ID, target.ID, decimal.NewFromInt(1), "GBP")
	s.True(errors.Is(err, apperrors.ErrUnknownCurrency))
}

func (s *LedgerScenarioSuite) TestHomeCurrencyRateIsFixed() {
	_, err := s.ledger.Currencies.SetRate(s.ctx, "ils", decimal.NewFromInt(3))
	s.True(errors.Is(err, apperrors.ErrValidation))

	account := s.openAccount(s.newCustomer().ID, "0")
	_, err = s.ledger.Accounts.Deposit(s.ctx, account.ID, decimal.NewFromInt(100), "")
	s.Require().NoError(err)
	s.Equal("100.00", s.balance(account.ID))

	home, err := s.ledger.Currencies.Resolve(s.ctx, "")
	s.Require().NoError(err)
	s.Equal("1.0000", home.ExchangeRate.StringFixed(4))
}

func (s *LedgerScenarioSuite) TestAmountsAboveStorageCeiling() {
	customer := s.newCustomer()

	_, err := s.ledger.Accounts.OpenAccount(s.ctx, customer.ID, decimal.RequireFromString("123456789012.00"))
	s.True(errors.Is(err, apperrors.ErrInvalidAmount))

	account := s.openAccount(customer.ID, "99999999.99")

	_, err = s.ledger.Accounts.Deposit(s.ctx, account.ID, decimal.RequireFromString("999999999999.99"), "")
	s.True(errors.Is(err, apperrors.ErrInvalidAmount))

	_, err = s.ledger.Accounts.Deposit(s.ctx, account.ID, decimal.RequireFromString("0.01"), "")
	s.True(errors.Is(err, apperrors.ErrInvalidAmount), "balance would pass the ceiling")

	_, err = s.ledger.Currencies.SetRate(s.ctx, "eur", decimal.NewFromInt(4))
	s.Require().NoError(err)
	other := s.openAccount(customer.ID, "0")
	_, err = s.ledger.Accounts.Deposit(s.ctx, other.ID, decimal.NewFromInt(30000000), "EUR")
	s.True(errors.Is(err, apperrors.ErrInvalidAmount), "converted amount passes the ceiling")

	source := s.openAccount(customer.ID, "1000")
	_, err = s.ledger.Accounts.Transfer(s.ctx, source.ID, account.ID, decimal.NewFromInt(100), "")
	s.True(errors.Is(err, apperrors.ErrInvalidAmount), "target credit passes the ceiling")

	s.Equal("99999999.99", s.balance(account.ID))
	s.Equal("1000.00", s.balance(source.ID))
}

func (s *LedgerScenarioSuite) TestLoanLifecycle() {
	customer := s.newCustomer()

	grant, err := s.ledger.Loans.GrantLoan(s.ctx, customer.ID, decimal.NewFromInt(5000), nil)
	s.Require().NoError(err)
	s.Equal("95000.00", grant.ReserveBalance.StringFixed(2))

	repayment, err := s.ledger.Loans.RepayLoan(s.ctx, grant.Loan.ID, decimal.NewFromInt(1000))
	s.Require().NoError(err)
	s.Equal("4000.00", repayment.Remaining().StringFixed(2))
	s.False(repayment.Loan.IsRepaid)

	_, err = s.ledger.Loans.RepayLoan(s.ctx, grant.Loan.ID, decimal.RequireFromString("4000.01"))
	s.True(errors.Is(err, apperrors.ErrOverRepayment))

	repayment, err = s.ledger.Loans.RepayLoan(s.ctx, grant.Loan.ID, decimal.NewFromInt(4000))
	s.Require().NoError(err)
	s.True(repayment.Loan.IsRepaid)

	reserve, err := s.ledger.Loans.GetReserve(s.ctx)
	s.Require().NoError(err)
	s.Equal("100000.00", reserve.Balance.StringFixed(2))

	repayments, err := s.ledger.Loans.ListRepayments(s.ctx, grant.Loan.ID)
	s.Require().NoError(err)
	s.Len(repayments, 2)
}

func (s *LedgerScenarioSuite) TestLoanLimit() {
	customer := s.newCustomer()

	_, err := s.ledger.Loans.GrantLoan(s.ctx, customer.ID, decimal.NewFromInt(50000), nil)
	s.NoError(err)

	_, err = s.ledger.Loans.GrantLoan(s.ctx, customer.ID, decimal.RequireFromString("50000.01"), nil)
	s.True(errors.Is(err, apperrors.ErrLoanLimitExceeded))

	loans, err := s.ledger.Loans.ListCustomerLoans(s.ctx, customer.ID)
	s.Require().NoError(err)
	s.Len(loans, 1)
}

func (s *LedgerScenarioSuite) TestLoanDisbursement() {
	customer := s.newCustomer()
	account := s.openAccount(customer.ID, "0")

	grant, err := s.ledger.Loans.GrantLoan(s.ctx, customer.ID, decimal.NewFromInt(2500), &account.ID)
	s.Require().NoError(err)
	s.Require().NotNil(grant.Disbursement)
	s.Equal("2500.00", s.balance(account.ID))

	history, _, err := s.ledger.Accounts.ListCustomerTransactions(s.ctx, customer.ID, 0, 10)
	s.Require().NoError(err)
	s.Require().Len(history, 1)
	s.Require().NotNil(history[0].LoanID)
	s.Equal(grant.Loan.ID, *history[0].LoanID)
}
