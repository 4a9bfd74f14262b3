package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionType is the kind of ledger mutation a Transaction records
type TransactionType string

const (
	TransactionTypeDeposit  TransactionType = "deposit"
	TransactionTypeWithdraw TransactionType = "withdraw"
	TransactionTypeTransfer TransactionType = "transfer"
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrTransactionImmutable   = errors.New("transactions cannot be modified once recorded")
	ErrTransactionFeeMismatch = errors.New("transaction fee does not match the fee schedule")
	ErrTransactionBalance     = errors.New("transaction balance snapshot is inconsistent")
)

// IsValid checks if the transaction type is one of the known kinds
func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionTypeDeposit, TransactionTypeWithdraw, TransactionTypeTransfer:
		return true
	default:
		return false
	}
}

// ChargesFee reports whether the fee schedule applies to this kind
func (t TransactionType) ChargesFee() bool {
	return t == TransactionTypeWithdraw || t == TransactionTypeTransfer
}

// Debits reports whether this kind takes money out of the owning account
func (t TransactionType) Debits() bool {
	return t == TransactionTypeWithdraw || t == TransactionTypeTransfer
}

// ComputeFee returns the fee charged on a gross amount
func ComputeFee(t TransactionType, gross decimal.Decimal) decimal.Decimal {
	if !t.ChargesFee() {
		return decimal.Zero
	}
	return RoundMoney(gross.Mul(FeeRate))
}

// SplitFee divides a gross amount into the net amount recorded on the
// transaction and the fee retained by the bank.
func SplitFee(t TransactionType, gross decimal.Decimal) (net, fee decimal.Decimal) {
	fee = ComputeFee(t, gross)
	return gross.Sub(fee), fee
}

// Transaction is an immutable log entry for one applied mutation.
//
// Amount is net of Fee. For debits the owning account moved by Amount+Fee;
// for a transfer the target account was credited Amount.
type Transaction struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	Reference       string          `gorm:"type:varchar(100);uniqueIndex;not null" json:"reference"`
	AccountID       uint            `gorm:"not null;index" json:"account_id"`
	TargetAccountID *uint           `gorm:"index" json:"target_account_id,omitempty"`
	LoanID          *uint           `gorm:"index" json:"loan_id,omitempty"`
	Type            TransactionType `gorm:"type:varchar(10);not null" json:"type"`
	Amount          decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Fee             decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"fee"`
	CurrencyCode    string          `gorm:"type:varchar(3);not null" json:"currency"`
	ExchangeRate    decimal.Decimal `gorm:"type:decimal(10,4);not null" json:"exchange_rate"`
	OriginalAmount  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"original_amount"`
	BalanceBefore   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"balance_before"`
	BalanceAfter    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"balance_after"`
	Description     string          `gorm:"type:text" json:"description,omitempty"`
	CreatedAt       time.Time       `gorm:"not null;index" json:"created_at"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.Reference == "" {
		t.Reference = GenerateTransactionReference()
	}

	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}

	return t.Validate()
}

// BeforeUpdate hook for Transaction
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	return ErrTransactionImmutable
}

// BeforeDelete hook for Transaction
func (t *Transaction) BeforeDelete(tx *gorm.DB) error {
	return ErrTransactionImmutable
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.AccountID == 0 {
		return errors.New("account ID is required")
	}

	if !t.Type.IsValid() {
		return ErrInvalidTransactionType
	}

	if !t.Amount.IsPositive() {
		return fmt.Errorf("transaction amount must be positive, got %s", t.Amount.String())
	}

	if t.CurrencyCode == "" {
		return errors.New("currency code is required")
	}

	if !ComputeFee(t.Type, t.GrossAmount()).Equal(t.Fee) {
		return ErrTransactionFeeMismatch
	}

	if t.Type == TransactionTypeTransfer && t.TargetAccountID == nil {
		return errors.New("transfer requires a target account")
	}

	return t.ensureBalanceIsCorrect()
}

func (t *Transaction) ensureBalanceIsCorrect() error {
	var expected decimal.Decimal
	if t.Type.Debits() {
		expected = t.BalanceBefore.Sub(t.GrossAmount())
	} else {
		expected = t.BalanceBefore.Add(t.Amount)
	}

	if !expected.Equal(t.BalanceAfter) {
		return ErrTransactionBalance
	}
	return nil
}

// GrossAmount returns the amount that left or entered the owning account
// before the fee was taken.
func (t *Transaction) GrossAmount() decimal.Decimal {
	return t.Amount.Add(t.Fee)
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// NewTransaction builds a record for a gross amount in the home currency.
// The fee schedule decides the net Amount and the Fee.
func NewTransaction(kind TransactionType, accountID uint, gross decimal.Decimal, currency *Currency, original decimal.Decimal) *Transaction {
	net, fee := SplitFee(kind, gross)
	return &Transaction{
		AccountID:      accountID,
		Type:           kind,
		Amount:         net,
		Fee:            fee,
		CurrencyCode:   currency.Code,
		ExchangeRate:   currency.ExchangeRate,
		OriginalAmount: original,
	}
}

// GenerateTransactionReference generates a unique transaction reference
func GenerateTransactionReference() string {
	return "TXN-" + uuid.New().String()[:8] + "-" + time.Now().Format("20060102150405")
}
