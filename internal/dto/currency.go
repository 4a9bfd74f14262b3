package dto

import (
	"banking-ledger/internal/models"

	"github.com/shopspring/decimal"
)

// SetRateRequest registers or updates an exchange rate
type SetRateRequest struct {
	Code string `json:"code" validate:"required,currency_code"`
	Rate string `json:"rate" validate:"required,decimal_amount"`
}

// Parse validates the request and returns the rate
func (r SetRateRequest) Parse() (decimal.Decimal, error) {
	if err := validate(r); err != nil {
		return decimal.Zero, err
	}
	return ParseAmount("rate", r.Rate)
}

// CurrencyResponse represents a currency in CLI output
type CurrencyResponse struct {
	Code         string `json:"code"`
	ExchangeRate string `json:"exchange_rate"`
	Home         bool   `json:"home,omitempty"`
}

// NewCurrencyResponse builds a response from a currency
func NewCurrencyResponse(c *models.Currency) CurrencyResponse {
	return CurrencyResponse{
		Code:         c.Code,
		ExchangeRate: c.ExchangeRate.StringFixed(models.RateScale),
	}
}

// NewCurrencyListResponse builds responses for a list of currencies,
// flagging the home currency
func NewCurrencyListResponse(currencies []models.Currency, homeCurrency string) []CurrencyResponse {
	out := make([]CurrencyResponse, 0, len(currencies))
	for i := range currencies {
		resp := NewCurrencyResponse(&currencies[i])
		resp.Home = currencies[i].Code == homeCurrency
		out = append(out, resp)
	}
	return out
}
