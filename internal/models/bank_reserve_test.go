package models

import (
	"testing"

	apperrors "banking-ledger/internal/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBankReserve_Lend(t *testing.T) {
	reserve := &BankReserve{ID: ReserveID, Balance: decimal.NewFromInt(100000)}

	require.NoError(t, reserve.Lend(decimal.NewFromInt(5000)))
	assert.Equal(t, "95000", reserve.Balance.String())

	err := reserve.Lend(decimal.RequireFromString("95000.01"))
	assert.ErrorIs(t, err, apperrors.ErrInsufficientReserve)
	assert.Equal(t, "95000", reserve.Balance.String())

	require.NoError(t, reserve.Lend(decimal.NewFromInt(95000)))
	assert.True(t, reserve.Balance.IsZero())
}

func TestBankReserve_Collect(t *testing.T) {
	reserve := &BankReserve{ID: ReserveID, Balance: decimal.NewFromInt(95000)}

	require.NoError(t, reserve.Collect(decimal.NewFromInt(1000)))
	assert.Equal(t, "96000", reserve.Balance.String())
	assert.ErrorIs(t, reserve.Collect(decimal.Zero), apperrors.ErrInvalidAmount)
}

func TestBankReserve_BeforeSave(t *testing.T) {
	assert.NoError(t, (&BankReserve{ID: ReserveID, Balance: decimal.Zero}).BeforeSave(nil))
	assert.ErrorIs(t, (&BankReserve{ID: ReserveID, Balance: decimal.NewFromInt(-1)}).BeforeSave(nil), ErrNegativeReserve)
	assert.Error(t, (&BankReserve{ID: 2, Balance: decimal.NewFromInt(1)}).BeforeSave(nil))
}
