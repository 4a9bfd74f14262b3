package dto

import (
	"time"

	"banking-ledger/internal/models"

	"github.com/shopspring/decimal"
)

// Account Request DTOs

// OpenAccountRequest opens an account with an optional opening balance
type OpenAccountRequest struct {
	CustomerID     string `json:"customer_id" validate:"required,entity_id"`
	OpeningBalance string `json:"opening_balance" validate:"omitempty,decimal_amount"`
}

// Parse validates the request and returns its typed fields
func (r OpenAccountRequest) Parse() (uint, decimal.Decimal, error) {
	if err := validate(r); err != nil {
		return 0, decimal.Zero, err
	}
	customerID, err := ParseID("customer_id", r.CustomerID)
	if err != nil {
		return 0, decimal.Zero, err
	}
	if r.OpeningBalance == "" {
		return customerID, decimal.Zero, nil
	}
	balance, err := ParseAmount("opening_balance", r.OpeningBalance)
	if err != nil {
		return 0, decimal.Zero, err
	}
	return customerID, balance, nil
}

// AccountRequest addresses a single account
type AccountRequest struct {
	AccountID string `json:"account_id" validate:"required,entity_id"`
}

// Parse validates the request and returns the account id
func (r AccountRequest) Parse() (uint, error) {
	if err := validate(r); err != nil {
		return 0, err
	}
	return ParseID("account_id", r.AccountID)
}

// MoneyRequest is a deposit or withdrawal
type MoneyRequest struct {
	AccountID string `json:"account_id" validate:"required,entity_id"`
	Amount    string `json:"amount" validate:"required,decimal_amount"`
	Currency  string `json:"currency" validate:"omitempty,currency_code"`
}

// Parse validates the request and returns its typed fields
func (r MoneyRequest) Parse() (uint, decimal.Decimal, error) {
	if err := validate(r); err != nil {
		return 0, decimal.Zero, err
	}
	accountID, err := ParseID("account_id", r.AccountID)
	if err != nil {
		return 0, decimal.Zero, err
	}
	amount, err := ParseAmount("amount", r.Amount)
	if err != nil {
		return 0, decimal.Zero, err
	}
	return accountID, amount, nil
}

// TransferRequest moves money between two accounts
type TransferRequest struct {
	FromAccountID string `json:"from_account_id" validate:"required,entity_id"`
	ToAccountID   string `json:"to_account_id" validate:"required,entity_id"`
	Amount        string `json:"amount" validate:"required,decimal_amount"`
	Currency      string `json:"currency" validate:"omitempty,currency_code"`
}

// Parse validates the request and returns its typed fields
func (r TransferRequest) Parse() (from, to uint, amount decimal.Decimal, err error) {
	if err = validate(r); err != nil {
		return 0, 0, decimal.Zero, err
	}
	if from, err = ParseID("from_account_id", r.FromAccountID); err != nil {
		return 0, 0, decimal.Zero, err
	}
	if to, err = ParseID("to_account_id", r.ToAccountID); err != nil {
		return 0, 0, decimal.Zero, err
	}
	if amount, err = ParseAmount("amount", r.Amount); err != nil {
		return 0, 0, decimal.Zero, err
	}
	return from, to, amount, nil
}

// HistoryRequest pages through the transactions of an account or customer
type HistoryRequest struct {
	ID     string `json:"id" validate:"required,entity_id"`
	Offset int    `json:"offset" validate:"min=0"`
	Limit  int    `json:"limit" validate:"min=0,max=500"`
}

// Parse validates the request and returns the owner id
func (r HistoryRequest) Parse() (uint, error) {
	if err := validate(r); err != nil {
		return 0, err
	}
	return ParseID("id", r.ID)
}

// Account Response DTOs

// AccountResponse represents an account in CLI output
type AccountResponse struct {
	ID         uint       `json:"id"`
	CustomerID uint       `json:"customer_id"`
	Balance    string     `json:"balance"`
	Suspended  bool       `json:"suspended"`
	ClosedAt   *time.Time `json:"closed_at,omitempty"`
}

// NewAccountResponse builds a response from an account
func NewAccountResponse(a *models.Account) AccountResponse {
	return AccountResponse{
		ID:         a.ID,
		CustomerID: a.CustomerID,
		Balance:    a.Balance.StringFixed(models.MoneyScale),
		Suspended:  a.Suspended,
		ClosedAt:   a.ClosedAt,
	}
}

// NewAccountListResponse builds responses for a list of accounts
func NewAccountListResponse(accounts []models.Account) []AccountResponse {
	out := make([]AccountResponse, 0, len(accounts))
	for i := range accounts {
		out = append(out, NewAccountResponse(&accounts[i]))
	}
	return out
}

// MutationResponse is printed after a deposit or withdrawal
type MutationResponse struct {
	Account     AccountResponse     `json:"account"`
	Transaction TransactionResponse `json:"transaction"`
}

// NewMutationResponse builds a response from a deposit or withdrawal
func NewMutationResponse(m *models.AccountMutation) MutationResponse {
	return MutationResponse{
		Account:     NewAccountResponse(m.Account),
		Transaction: NewTransactionResponse(m.Transaction),
	}
}

// TransferResponse is printed after a transfer
type TransferResponse struct {
	Source      AccountResponse     `json:"source"`
	Target      AccountResponse     `json:"target"`
	Transaction TransactionResponse `json:"transaction"`
}

// NewTransferResponse builds a response from a transfer
func NewTransferResponse(r *models.TransferResult) TransferResponse {
	return TransferResponse{
		Source:      NewAccountResponse(r.Source),
		Target:      NewAccountResponse(r.Target),
		Transaction: NewTransactionResponse(r.Transaction),
	}
}

// BalanceResponse reports a single balance
type BalanceResponse struct {
	AccountID uint   `json:"account_id"`
	Balance   string `json:"balance"`
}

// FeesResponse reports the fee income retained by the bank
type FeesResponse struct {
	TotalFees string `json:"total_fees"`
}
