package models

import (
	"errors"
	"time"

	apperrors "banking-ledger/internal/errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrBalanceBelowFloor   = errors.New("balance is below the overdraft floor")
	ErrBalanceAboveCeiling = errors.New("balance exceeds the largest storable amount")
)

// Account represents a customer ledger account. Balances are kept in the
// home currency.
type Account struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	CustomerID uint            `gorm:"not null;index" json:"customer_id"`
	Balance    decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"balance"`
	Suspended  bool            `gorm:"not null;default:false" json:"suspended"`
	ClosedAt   *time.Time      `gorm:"index" json:"closed_at,omitempty"`
	CreatedAt  time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Account
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = now
	}
	return a.Validate()
}

// BeforeUpdate hook for Account
func (a *Account) BeforeUpdate(tx *gorm.DB) error {
	a.UpdatedAt = time.Now()
	return a.Validate()
}

// Validate validates the account fields
func (a *Account) Validate() error {
	if a.CustomerID == 0 {
		return errors.New("customer ID is required")
	}

	if a.Balance.LessThan(OverdraftFloor) {
		return ErrBalanceBelowFloor
	}

	if a.Balance.GreaterThan(MaxMoneyAmount) {
		return ErrBalanceAboveCeiling
	}

	return nil
}

// IsActive returns true if the account accepts deposits and withdrawals
func (a *Account) IsActive() bool {
	return !a.Suspended
}

// CanWithdraw checks if the amount can be withdrawn without crossing the floor
func (a *Account) CanWithdraw(amount decimal.Decimal) bool {
	return a.IsActive() && amount.IsPositive() && a.Balance.Sub(amount).GreaterThanOrEqual(OverdraftFloor)
}

// Deposit credits the account with an amount already expressed in the home currency
func (a *Account) Deposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return apperrors.ErrInvalidAmount.Withf("deposit amount %s", amount.String())
	}

	if !a.IsActive() {
		return apperrors.ErrAccountSuspended.Withf("account id %d", a.ID)
	}

	next := a.Balance.Add(amount)
	if next.GreaterThan(MaxMoneyAmount) {
		return apperrors.ErrInvalidAmount.Withf("account id %d balance would be %s, above %s",
			a.ID, next.StringFixed(MoneyScale), MaxMoneyAmount.StringFixed(MoneyScale))
	}

	a.Balance = next
	return nil
}

// Withdraw debits the account. The balance may go negative down to OverdraftFloor.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return apperrors.ErrInvalidAmount.Withf("withdrawal amount %s", amount.String())
	}

	if !a.IsActive() {
		return apperrors.ErrAccountSuspended.Withf("account id %d", a.ID)
	}

	if !a.CanWithdraw(amount) {
		return apperrors.ErrOverdraftExceeded.Withf("account id %d balance would be %s",
			a.ID, a.Balance.Sub(amount).StringFixed(MoneyScale))
	}

	a.Balance = a.Balance.Sub(amount)
	return nil
}

// Close suspends the account permanently
func (a *Account) Close() error {
	if !a.IsActive() {
		return apperrors.ErrAccountSuspended.Withf("account id %d is already closed", a.ID)
	}

	if a.Balance.IsNegative() {
		return apperrors.ErrNegativeBalance.Withf("account id %d balance %s", a.ID, a.Balance.StringFixed(MoneyScale))
	}

	a.Suspended = true
	now := time.Now()
	a.ClosedAt = &now
	return nil
}

// TableName returns the table name for Account
func (a *Account) TableName() string {
	return "accounts"
}
