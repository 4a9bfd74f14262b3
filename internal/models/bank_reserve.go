package models

import (
	"errors"
	"time"

	apperrors "banking-ledger/internal/errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ReserveID is the fixed primary key of the bank reserve row
const ReserveID uint = 1

var ErrNegativeReserve = errors.New("reserve balance cannot be negative")

// BankReserve is the bank's own lending capacity. Exactly one row exists.
type BankReserve struct {
	ID        uint            `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Balance   decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"balance"`
	CreatedAt time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeSave hook for BankReserve
func (r *BankReserve) BeforeSave(tx *gorm.DB) error {
	if r.ID != ReserveID {
		return errors.New("bank reserve must use the fixed reserve ID")
	}
	if r.Balance.IsNegative() {
		return ErrNegativeReserve
	}
	return nil
}

// Lend debits the reserve for a new loan
func (r *BankReserve) Lend(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return apperrors.ErrInvalidAmount.Withf("lend amount %s", amount.String())
	}

	if r.Balance.LessThan(amount) {
		return apperrors.ErrInsufficientReserve.Withf("reserve %s, requested %s",
			r.Balance.StringFixed(MoneyScale), amount.StringFixed(MoneyScale))
	}

	r.Balance = r.Balance.Sub(amount)
	return nil
}

// Collect credits the reserve with a loan repayment
func (r *BankReserve) Collect(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return apperrors.ErrInvalidAmount.Withf("collect amount %s", amount.String())
	}

	r.Balance = r.Balance.Add(amount)
	return nil
}

// TableName returns the table name for BankReserve
func (r *BankReserve) TableName() string {
	return "bank_reserve"
}
