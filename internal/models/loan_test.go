package models

import (
	"testing"

	apperrors "banking-ledger/internal/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePrincipal(t *testing.T) {
	tests := []struct {
		name      string
		principal string
		wantErr   error
	}{
		{name: "small loan", principal: "100"},
		{name: "exactly the limit", principal: "50000"},
		{name: "one cent over the limit", principal: "50000.01", wantErr: apperrors.ErrLoanLimitExceeded},
		{name: "zero", principal: "0", wantErr: apperrors.ErrInvalidAmount},
		{name: "negative", principal: "-10", wantErr: apperrors.ErrInvalidAmount},
		{name: "sub-cent precision", principal: "10.001", wantErr: apperrors.ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePrincipal(decimal.RequireFromString(tt.principal))
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoan_RepayLifecycle(t *testing.T) {
	loan := &Loan{ID: 1, CustomerID: 1, Principal: decimal.NewFromInt(20000)}

	require.NoError(t, loan.Repay(decimal.NewFromInt(5000)))
	assert.Equal(t, "15000", loan.RemainingBalance().String())
	assert.False(t, loan.IsRepaid)
	assert.NoError(t, loan.Validate())

	require.NoError(t, loan.Repay(decimal.NewFromInt(15000)))
	assert.True(t, loan.RemainingBalance().IsZero())
	assert.True(t, loan.IsRepaid)
	assert.NotNil(t, loan.RepaidAt)
	assert.NoError(t, loan.Validate())

	err := loan.Repay(decimal.NewFromInt(1))
	assert.ErrorIs(t, err, apperrors.ErrAlreadyRepaid)
	assert.True(t, loan.IsRepaid)
}

func TestLoan_RepayRejections(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		wantErr error
	}{
		{name: "zero", amount: "0", wantErr: apperrors.ErrInvalidAmount},
		{name: "negative", amount: "-1", wantErr: apperrors.ErrInvalidAmount},
		{name: "more than remaining", amount: "4000.01", wantErr: apperrors.ErrOverRepayment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loan := &Loan{ID: 1, CustomerID: 1, Principal: decimal.NewFromInt(5000), RepaidAmount: decimal.NewFromInt(1000)}

			err := loan.Repay(decimal.RequireFromString(tt.amount))

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, "1000", loan.RepaidAmount.String())
			assert.False(t, loan.IsRepaid)
		})
	}
}

func TestLoan_Validate(t *testing.T) {
	tests := []struct {
		name    string
		loan    Loan
		wantErr error
	}{
		{
			name: "active loan",
			loan: Loan{CustomerID: 1, Principal: decimal.NewFromInt(100), RepaidAmount: decimal.NewFromInt(40)},
		},
		{
			name: "repaid loan",
			loan: Loan{CustomerID: 1, Principal: decimal.NewFromInt(100), RepaidAmount: decimal.NewFromInt(100), IsRepaid: true},
		},
		{
			name:    "repaid beyond principal",
			loan:    Loan{CustomerID: 1, Principal: decimal.NewFromInt(100), RepaidAmount: decimal.NewFromInt(101), IsRepaid: true},
			wantErr: ErrRepaidExceedsPrincipal,
		},
		{
			name:    "flag set with balance remaining",
			loan:    Loan{CustomerID: 1, Principal: decimal.NewFromInt(100), RepaidAmount: decimal.NewFromInt(10), IsRepaid: true},
			wantErr: ErrLoanRepaidFlag,
		},
		{
			name:    "flag missing with nothing remaining",
			loan:    Loan{CustomerID: 1, Principal: decimal.NewFromInt(100), RepaidAmount: decimal.NewFromInt(100)},
			wantErr: ErrLoanRepaidFlag,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.loan.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
