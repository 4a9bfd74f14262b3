package models

import "github.com/shopspring/decimal"

// AccountMutation is the outcome of a deposit or withdrawal
type AccountMutation struct {
	Account     *Account
	Transaction *Transaction
}

// TransferResult carries both balances after a transfer
type TransferResult struct {
	Source      *Account
	Target      *Account
	Transaction *Transaction
}

// LoanGrant is the outcome of granting a loan
type LoanGrant struct {
	Loan           *Loan
	ReserveBalance decimal.Decimal
	Disbursement   *Transaction
}

// LoanRepaymentResult is the outcome of a repayment
type LoanRepaymentResult struct {
	Loan           *Loan
	Repayment      *LoanRepayment
	ReserveBalance decimal.Decimal
}

// Remaining returns the loan's remaining balance
func (r *LoanRepaymentResult) Remaining() decimal.Decimal {
	return r.Loan.RemainingBalance()
}
