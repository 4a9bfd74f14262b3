package dto

import (
	"time"

	"banking-ledger/internal/models"
)

// TransactionResponse represents a transaction record in CLI output
type TransactionResponse struct {
	ID              uint      `json:"id"`
	Reference       string    `json:"reference"`
	Type            string    `json:"type"`
	AccountID       uint      `json:"account_id"`
	TargetAccountID *uint     `json:"target_account_id,omitempty"`
	LoanID          *uint     `json:"loan_id,omitempty"`
	Amount          string    `json:"amount"`
	Fee             string    `json:"fee"`
	Currency        string    `json:"currency"`
	ExchangeRate    string    `json:"exchange_rate"`
	OriginalAmount  string    `json:"original_amount"`
	BalanceBefore   string    `json:"balance_before"`
	BalanceAfter    string    `json:"balance_after"`
	Description     string    `json:"description,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// NewTransactionResponse builds a response from a transaction record
func NewTransactionResponse(t *models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:              t.ID,
		Reference:       t.Reference,
		Type:            string(t.Type),
		AccountID:       t.AccountID,
		TargetAccountID: t.TargetAccountID,
		LoanID:          t.LoanID,
		Amount:          t.Amount.StringFixed(models.MoneyScale),
		Fee:             t.Fee.StringFixed(models.MoneyScale),
		Currency:        t.CurrencyCode,
		ExchangeRate:    t.ExchangeRate.StringFixed(models.RateScale),
		OriginalAmount:  t.OriginalAmount.StringFixed(models.MoneyScale),
		BalanceBefore:   t.BalanceBefore.StringFixed(models.MoneyScale),
		BalanceAfter:    t.BalanceAfter.StringFixed(models.MoneyScale),
		Description:     t.Description,
		CreatedAt:       t.CreatedAt,
	}
}

// TransactionListResponse represents a page of transactions
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int64                 `json:"total"`
	Offset       int                   `json:"offset"`
	Limit        int                   `json:"limit"`
}

// NewTransactionListResponse builds a page response
func NewTransactionListResponse(txns []models.Transaction, total int64, offset, limit int) TransactionListResponse {
	out := make([]TransactionResponse, 0, len(txns))
	for i := range txns {
		out = append(out, NewTransactionResponse(&txns[i]))
	}
	return TransactionListResponse{
		Transactions: out,
		Total:        total,
		Offset:       offset,
		Limit:        limit,
	}
}
