package services

import (
	"context"
	"time"

	apperrors "banking-ledger/internal/errors"
	"banking-ledger/internal/models"
	"banking-ledger/internal/repositories"

	"github.com/shopspring/decimal"
)

// homeRate is the rate of the home currency, in which balances are kept
var homeRate = decimal.NewFromInt(1)

// currencyService implements CurrencyServiceInterface
type currencyService struct {
	currencyRepo repositories.CurrencyRepositoryInterface
	homeCurrency string
	observer
}

// NewCurrencyService creates a currency service. homeCurrency is the code
// used when an operation names no currency.
func NewCurrencyService(
	currencyRepo repositories.CurrencyRepositoryInterface,
	homeCurrency string,
	logger LedgerLoggerInterface,
	metrics MetricsRecorderInterface,
) CurrencyServiceInterface {
	return &currencyService{
		currencyRepo: currencyRepo,
		homeCurrency: models.NormalizeCurrencyCode(homeCurrency),
		observer:     observer{logger: logger, metrics: metrics},
	}
}

// HomeCurrency returns the configured home currency code
func (s *currencyService) HomeCurrency() string {
	return s.homeCurrency
}

// SetRate registers a currency or replaces its rate
func (s *currencyService) SetRate(ctx context.Context, code string, rate decimal.Decimal) (currency *models.Currency, err error) {
	start := time.Now()
	defer func() { s.finish(ctx, "set_rate", 0, start, err) }()

	if !rate.IsPositive() {
		return nil, apperrors.ErrInvalidAmount.Withf("exchange rate %s", rate.String())
	}

	if !models.IsValidCurrencyCode(code) {
		return nil, apperrors.NewValidationError("currency code must be three letters")
	}

	if models.NormalizeCurrencyCode(code) == s.homeCurrency && !rate.Equal(homeRate) {
		return nil, apperrors.NewValidationError("home currency " + s.homeCurrency + " has a fixed rate of 1")
	}

	currency, err = s.currencyRepo.Upsert(ctx, code, rate)
	if err != nil {
		return nil, err
	}

	s.logger.LogCurrencyRateSet(ctx, currency.Code, currency.ExchangeRate.StringFixed(models.RateScale))
	return currency, nil
}

// Resolve finds the currency for code, falling back to the home currency
func (s *currencyService) Resolve(ctx context.Context, code string) (*models.Currency, error) {
	normalized := models.NormalizeCurrencyCode(code)
	if normalized == "" {
		normalized = s.homeCurrency
	}
	return s.currencyRepo.GetByCode(ctx, normalized)
}

// List returns all registered currencies
func (s *currencyService) List(ctx context.Context) ([]models.Currency, error) {
	return s.currencyRepo.List(ctx)
}
