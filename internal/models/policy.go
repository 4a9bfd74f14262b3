package models

import "github.com/shopspring/decimal"

// Ledger rules shared by every account and loan.
var (
	// OverdraftFloor is the most negative balance a withdrawal or transfer may produce.
	OverdraftFloor = decimal.NewFromInt(-1000)

	// FeeRate applies to withdrawals and transfers.
	FeeRate = decimal.RequireFromString("0.02")

	// MaxLoanPrincipal is the largest principal a single loan may carry.
	MaxLoanPrincipal = decimal.NewFromInt(50000)

	// DefaultReserveBalance is the bank's opening lending capacity.
	DefaultReserveBalance = decimal.NewFromInt(10000000)

	// MaxMoneyAmount is the largest value a decimal(10,2) amount or balance column holds.
	MaxMoneyAmount = decimal.RequireFromString("99999999.99")
)

// MoneyScale is the number of fractional digits kept for every money amount.
const MoneyScale = 2

// RateScale is the number of fractional digits kept for exchange rates.
const RateScale = 4

// IsMoneyAmount reports whether amount is strictly positive, at most
// MaxMoneyAmount and carries no more than two fractional digits.
func IsMoneyAmount(amount decimal.Decimal) bool {
	if !amount.IsPositive() || amount.GreaterThan(MaxMoneyAmount) {
		return false
	}
	return amount.Equal(amount.Round(MoneyScale))
}

// RoundMoney rounds half away from zero to two places.
func RoundMoney(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(MoneyScale)
}
