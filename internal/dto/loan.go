package dto

import (
	"time"

	"banking-ledger/internal/models"

	"github.com/shopspring/decimal"
)

// GrantLoanRequest grants a loan, optionally paid out into an account
type GrantLoanRequest struct {
	CustomerID            string `json:"customer_id" validate:"required,entity_id"`
	Principal             string `json:"principal" validate:"required,decimal_amount"`
	DisbursementAccountID string `json:"disbursement_account_id" validate:"omitempty,entity_id"`
}

// Parse validates the request and returns its typed fields
func (r GrantLoanRequest) Parse() (customerID uint, principal decimal.Decimal, account *uint, err error) {
	if err = validate(r); err != nil {
		return 0, decimal.Zero, nil, err
	}
	if customerID, err = ParseID("customer_id", r.CustomerID); err != nil {
		return 0, decimal.Zero, nil, err
	}
	if principal, err = ParseAmount("principal", r.Principal); err != nil {
		return 0, decimal.Zero, nil, err
	}
	if account, err = ParseOptionalID("disbursement_account_id", r.DisbursementAccountID); err != nil {
		return 0, decimal.Zero, nil, err
	}
	return customerID, principal, account, nil
}

// RepayLoanRequest pays an amount off a loan
type RepayLoanRequest struct {
	LoanID string `json:"loan_id" validate:"required,entity_id"`
	Amount string `json:"amount" validate:"required,decimal_amount"`
}

// Parse validates the request and returns its typed fields
func (r RepayLoanRequest) Parse() (uint, decimal.Decimal, error) {
	if err := validate(r); err != nil {
		return 0, decimal.Zero, err
	}
	loanID, err := ParseID("loan_id", r.LoanID)
	if err != nil {
		return 0, decimal.Zero, err
	}
	amount, err := ParseAmount("amount", r.Amount)
	if err != nil {
		return 0, decimal.Zero, err
	}
	return loanID, amount, nil
}

// LoanResponse represents a loan in CLI output
type LoanResponse struct {
	ID                    uint       `json:"id"`
	CustomerID            uint       `json:"customer_id"`
	Principal             string     `json:"principal"`
	RepaidAmount          string     `json:"repaid_amount"`
	Remaining             string     `json:"remaining"`
	IsRepaid              bool       `json:"is_repaid"`
	DisbursementAccountID *uint      `json:"disbursement_account_id,omitempty"`
	RepaidAt              *time.Time `json:"repaid_at,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
}

// NewLoanResponse builds a response from a loan
func NewLoanResponse(l *models.Loan) LoanResponse {
	return LoanResponse{
		ID:                    l.ID,
		CustomerID:            l.CustomerID,
		Principal:             l.Principal.StringFixed(models.MoneyScale),
		RepaidAmount:          l.RepaidAmount.StringFixed(models.MoneyScale),
		Remaining:             l.RemainingBalance().StringFixed(models.MoneyScale),
		IsRepaid:              l.IsRepaid,
		DisbursementAccountID: l.DisbursementAccountID,
		RepaidAt:              l.RepaidAt,
		CreatedAt:             l.CreatedAt,
	}
}

// NewLoanListResponse builds responses for a list of loans
func NewLoanListResponse(loans []models.Loan) []LoanResponse {
	out := make([]LoanResponse, 0, len(loans))
	for i := range loans {
		out = append(out, NewLoanResponse(&loans[i]))
	}
	return out
}

// LoanGrantResponse is printed after a loan is granted
type LoanGrantResponse struct {
	Loan           LoanResponse         `json:"loan"`
	ReserveBalance string               `json:"reserve_balance"`
	Disbursement   *TransactionResponse `json:"disbursement,omitempty"`
}

// NewLoanGrantResponse builds a response from a grant
func NewLoanGrantResponse(g *models.LoanGrant) LoanGrantResponse {
	resp := LoanGrantResponse{
		Loan:           NewLoanResponse(g.Loan),
		ReserveBalance: g.ReserveBalance.StringFixed(models.MoneyScale),
	}
	if g.Disbursement != nil {
		txn := NewTransactionResponse(g.Disbursement)
		resp.Disbursement = &txn
	}
	return resp
}

// RepaymentResponse represents one repayment
type RepaymentResponse struct {
	ID             uint      `json:"id"`
	LoanID         uint      `json:"loan_id"`
	Amount         string    `json:"amount"`
	RemainingAfter string    `json:"remaining_after"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewRepaymentResponse builds a response from a repayment
func NewRepaymentResponse(r *models.LoanRepayment) RepaymentResponse {
	return RepaymentResponse{
		ID:             r.ID,
		LoanID:         r.LoanID,
		Amount:         r.Amount.StringFixed(models.MoneyScale),
		RemainingAfter: r.RemainingAfter.StringFixed(models.MoneyScale),
		CreatedAt:      r.CreatedAt,
	}
}

// NewRepaymentListResponse builds responses for a list of repayments
func NewRepaymentListResponse(repayments []models.LoanRepayment) []RepaymentResponse {
	out := make([]RepaymentResponse, 0, len(repayments))
	for i := range repayments {
		out = append(out, NewRepaymentResponse(&repayments[i]))
	}
	return out
}

// LoanRepaymentResponse is printed after a repayment
type LoanRepaymentResponse struct {
	Loan           LoanResponse      `json:"loan"`
	Repayment      RepaymentResponse `json:"repayment"`
	ReserveBalance string            `json:"reserve_balance"`
}

// NewLoanRepaymentResponse builds a response from a repayment result
func NewLoanRepaymentResponse(r *models.LoanRepaymentResult) LoanRepaymentResponse {
	return LoanRepaymentResponse{
		Loan:           NewLoanResponse(r.Loan),
		Repayment:      NewRepaymentResponse(r.Repayment),
		ReserveBalance: r.ReserveBalance.StringFixed(models.MoneyScale),
	}
}

// ReserveResponse reports the bank reserve
type ReserveResponse struct {
	Balance   string    `json:"balance"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewReserveResponse builds a response from the reserve
func NewReserveResponse(r *models.BankReserve) ReserveResponse {
	return ReserveResponse{
		Balance:   r.Balance.StringFixed(models.MoneyScale),
		UpdatedAt: r.UpdatedAt,
	}
}
