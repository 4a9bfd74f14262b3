package models

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func homeCurrency() *Currency {
	return &Currency{Code: "ILS", ExchangeRate: decimal.NewFromInt(1)}
}

func TestTransactionType_IsValid(t *testing.T) {
	assert.True(t, TransactionTypeDeposit.IsValid())
	assert.True(t, TransactionTypeWithdraw.IsValid())
	assert.True(t, TransactionTypeTransfer.IsValid())
	assert.False(t, TransactionType("refund").IsValid())
	assert.False(t, TransactionType("").IsValid())
}

func TestComputeFee(t *testing.T) {
	tests := []struct {
		name  string
		kind  TransactionType
		gross string
		want  string
	}{
		{name: "deposit is free", kind: TransactionTypeDeposit, gross: "500", want: "0"},
		{name: "withdraw 500", kind: TransactionTypeWithdraw, gross: "500", want: "10"},
		{name: "transfer 30", kind: TransactionTypeTransfer, gross: "30", want: "0.6"},
		{name: "rounds half up", kind: TransactionTypeWithdraw, gross: "0.25", want: "0.01"},
		{name: "tiny amount rounds to zero", kind: TransactionTypeWithdraw, gross: "0.2", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fee := ComputeFee(tt.kind, decimal.RequireFromString(tt.gross))
			assert.True(t, decimal.RequireFromString(tt.want).Equal(fee), "got %s", fee)
		})
	}
}

func TestSplitFee_NetIsNinetyEightPercent(t *testing.T) {
	net, fee := SplitFee(TransactionTypeWithdraw, decimal.NewFromInt(500))

	assert.Equal(t, "490.00", net.StringFixed(2))
	assert.Equal(t, "10.00", fee.StringFixed(2))
	assert.True(t, net.Add(fee).Equal(decimal.NewFromInt(500)))
}

func TestNewTransaction(t *testing.T) {
	usd := &Currency{Code: "USD", ExchangeRate: decimal.RequireFromString("3.7000")}

	txn := NewTransaction(TransactionTypeWithdraw, 9, decimal.NewFromInt(370), usd, decimal.NewFromInt(100))

	assert.Equal(t, uint(9), txn.AccountID)
	assert.Equal(t, "362.60", txn.Amount.StringFixed(2))
	assert.Equal(t, "7.40", txn.Fee.StringFixed(2))
	assert.Equal(t, "USD", txn.CurrencyCode)
	assert.True(t, txn.ExchangeRate.Equal(usd.ExchangeRate))
	assert.True(t, txn.OriginalAmount.Equal(decimal.NewFromInt(100)))
}

func TestTransaction_Validate(t *testing.T) {
	target := uint(2)

	valid := func(kind TransactionType) Transaction {
		txn := NewTransaction(kind, 1, decimal.NewFromInt(100), homeCurrency(), decimal.NewFromInt(100))
		txn.BalanceBefore = decimal.NewFromInt(500)
		if kind.Debits() {
			txn.BalanceAfter = decimal.NewFromInt(400)
		} else {
			txn.BalanceAfter = decimal.NewFromInt(600)
		}
		if kind == TransactionTypeTransfer {
			txn.TargetAccountID = &target
		}
		return *txn
	}

	tests := []struct {
		name    string
		mutate  func(txn *Transaction)
		kind    TransactionType
		wantErr string
	}{
		{name: "valid deposit", kind: TransactionTypeDeposit},
		{name: "valid withdraw", kind: TransactionTypeWithdraw},
		{name: "valid transfer", kind: TransactionTypeTransfer},
		{
			name:    "missing account",
			kind:    TransactionTypeDeposit,
			mutate:  func(txn *Transaction) { txn.AccountID = 0 },
			wantErr: "account ID is required",
		},
		{
			name:    "unknown type",
			kind:    TransactionTypeDeposit,
			mutate:  func(txn *Transaction) { txn.Type = "refund" },
			wantErr: ErrInvalidTransactionType.Error(),
		},
		{
			name:    "fee does not match schedule",
			kind:    TransactionTypeWithdraw,
			mutate:  func(txn *Transaction) { txn.Fee = decimal.NewFromInt(1); txn.Amount = decimal.NewFromInt(99) },
			wantErr: ErrTransactionFeeMismatch.Error(),
		},
		{
			name:    "deposit with fee",
			kind:    TransactionTypeDeposit,
			mutate:  func(txn *Transaction) { txn.Fee = decimal.NewFromInt(2); txn.BalanceAfter = decimal.NewFromInt(600) },
			wantErr: ErrTransactionFeeMismatch.Error(),
		},
		{
			name:    "balance snapshot off by the fee",
			kind:    TransactionTypeWithdraw,
			mutate:  func(txn *Transaction) { txn.BalanceAfter = decimal.NewFromInt(402) },
			wantErr: ErrTransactionBalance.Error(),
		},
		{
			name:    "transfer without target",
			kind:    TransactionTypeTransfer,
			mutate:  func(txn *Transaction) { txn.TargetAccountID = nil },
			wantErr: "transfer requires a target account",
		},
		{
			name:    "missing currency",
			kind:    TransactionTypeDeposit,
			mutate:  func(txn *Transaction) { txn.CurrencyCode = "" },
			wantErr: "currency code is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := valid(tt.kind)
			if tt.mutate != nil {
				tt.mutate(&txn)
			}

			err := txn.Validate()

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestTransaction_GrossAmount(t *testing.T) {
	txn := &Transaction{Amount: decimal.RequireFromString("29.40"), Fee: decimal.RequireFromString("0.60")}
	assert.Equal(t, "30.00", txn.GrossAmount().StringFixed(2))
}

func TestTransaction_ImmutableHooks(t *testing.T) {
	txn := &Transaction{}
	assert.ErrorIs(t, txn.BeforeUpdate(nil), ErrTransactionImmutable)
	assert.ErrorIs(t, txn.BeforeDelete(nil), ErrTransactionImmutable)
}

func TestGenerateTransactionReference(t *testing.T) {
	first := GenerateTransactionReference()
	second := GenerateTransactionReference()

	assert.True(t, strings.HasPrefix(first, "TXN-"))
	assert.NotEqual(t, first, second)
}
