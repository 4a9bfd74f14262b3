package models

import (
	"errors"
	"time"

	apperrors "banking-ledger/internal/errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrRepaidExceedsPrincipal = errors.New("repaid amount exceeds principal")
	ErrLoanRepaidFlag         = errors.New("repaid flag does not match remaining balance")
)

// Loan is a principal drawn from the bank reserve and repaid over time.
// Active while RemainingBalance() > 0, then Repaid, which is terminal.
type Loan struct {
	ID                    uint            `gorm:"primaryKey" json:"id"`
	CustomerID            uint            `gorm:"not null;index" json:"customer_id"`
	Principal             decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"principal"`
	RepaidAmount          decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"repaid_amount"`
	IsRepaid              bool            `gorm:"not null;default:false" json:"is_repaid"`
	DisbursementAccountID *uint           `gorm:"index" json:"disbursement_account_id,omitempty"`
	RepaidAt              *time.Time      `json:"repaid_at,omitempty"`
	CreatedAt             time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt             time.Time       `gorm:"not null" json:"updated_at"`
}

// LoanRepayment records one accepted repayment
type LoanRepayment struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	LoanID         uint            `gorm:"not null;index" json:"loan_id"`
	Amount         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	RemainingAfter decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"remaining_after"`
	CreatedAt      time.Time       `gorm:"not null;index" json:"created_at"`
}

// BeforeCreate hook for Loan
func (l *Loan) BeforeCreate(tx *gorm.DB) error {
	if err := ValidatePrincipal(l.Principal); err != nil {
		return err
	}
	return l.Validate()
}

// BeforeUpdate hook for Loan
func (l *Loan) BeforeUpdate(tx *gorm.DB) error {
	l.UpdatedAt = time.Now()
	return l.Validate()
}

// Validate validates the loan fields
func (l *Loan) Validate() error {
	if l.CustomerID == 0 {
		return errors.New("customer ID is required")
	}

	if l.RepaidAmount.IsNegative() {
		return errors.New("repaid amount cannot be negative")
	}

	if l.RepaidAmount.GreaterThan(l.Principal) {
		return ErrRepaidExceedsPrincipal
	}

	if l.IsRepaid != !l.RemainingBalance().IsPositive() {
		return ErrLoanRepaidFlag
	}

	return nil
}

// RemainingBalance returns principal minus cumulative repayments
func (l *Loan) RemainingBalance() decimal.Decimal {
	return l.Principal.Sub(l.RepaidAmount)
}

// Repay applies a repayment. The loan flips to repaid once nothing remains.
func (l *Loan) Repay(amount decimal.Decimal) error {
	if !IsMoneyAmount(amount) {
		return apperrors.ErrInvalidAmount.Withf("repayment amount %s", amount.String())
	}

	if l.IsRepaid {
		return apperrors.ErrAlreadyRepaid.Withf("loan id %d", l.ID)
	}

	remaining := l.RemainingBalance()
	if amount.GreaterThan(remaining) {
		return apperrors.ErrOverRepayment.Withf("loan id %d remaining %s, repayment %s",
			l.ID, remaining.StringFixed(MoneyScale), amount.StringFixed(MoneyScale))
	}

	l.RepaidAmount = l.RepaidAmount.Add(amount)
	if !l.RemainingBalance().IsPositive() {
		l.IsRepaid = true
		now := time.Now()
		l.RepaidAt = &now
	}
	return nil
}

// TableName returns the table name for Loan
func (l *Loan) TableName() string {
	return "loans"
}

// TableName returns the table name for LoanRepayment
func (r *LoanRepayment) TableName() string {
	return "loan_repayments"
}

// ValidatePrincipal checks 0 < principal <= MaxLoanPrincipal
func ValidatePrincipal(principal decimal.Decimal) error {
	if !IsMoneyAmount(principal) {
		return apperrors.ErrInvalidAmount.Withf("loan principal %s", principal.String())
	}

	if principal.GreaterThan(MaxLoanPrincipal) {
		return apperrors.ErrLoanLimitExceeded.Withf("principal %s exceeds %s",
			principal.StringFixed(MoneyScale), MaxLoanPrincipal.StringFixed(MoneyScale))
	}

	return nil
}
