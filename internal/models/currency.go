package models

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrInvalidCurrencyCode = errors.New("currency code must be three letters")
	ErrInvalidExchangeRate = errors.New("exchange rate must be positive")
)

var currencyCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)

// Currency maps a currency code to its rate against the home currency:
// 1 unit of Code equals ExchangeRate units of the home currency.
type Currency struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	Code         string          `gorm:"type:varchar(3);uniqueIndex;not null" json:"code"`
	ExchangeRate decimal.Decimal `gorm:"type:decimal(10,4);not null" json:"exchange_rate"`
	CreatedAt    time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeSave hook for Currency
func (c *Currency) BeforeSave(tx *gorm.DB) error {
	c.Code = NormalizeCurrencyCode(c.Code)
	c.ExchangeRate = c.ExchangeRate.Round(RateScale)
	return c.Validate()
}

// Validate validates the currency fields
func (c *Currency) Validate() error {
	if !IsValidCurrencyCode(c.Code) {
		return ErrInvalidCurrencyCode
	}

	if !c.ExchangeRate.IsPositive() {
		return ErrInvalidExchangeRate
	}

	return nil
}

// Convert expresses amount units of this currency in the home currency
func (c *Currency) Convert(amount decimal.Decimal) decimal.Decimal {
	return RoundMoney(amount.Mul(c.ExchangeRate))
}

// TableName returns the table name for Currency
func (c *Currency) TableName() string {
	return "currencies"
}

// NormalizeCurrencyCode upper-cases and trims a currency code
func NormalizeCurrencyCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// IsValidCurrencyCode checks that code is three ASCII letters after normalization
func IsValidCurrencyCode(code string) bool {
	return currencyCodePattern.MatchString(NormalizeCurrencyCode(code))
}
