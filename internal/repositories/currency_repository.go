package repositories

import (
	"context"
	"errors"
	"fmt"

	apperrors "banking-ledger/internal/errors"
	"banking-ledger/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// currencyRepository implements CurrencyRepositoryInterface
type currencyRepository struct {
	db *gorm.DB
}

// NewCurrencyRepository creates a new currency repository
func NewCurrencyRepository(db *gorm.DB) CurrencyRepositoryInterface {
	return &currencyRepository{db: db}
}

// Upsert inserts the currency or replaces its rate
func (r *currencyRepository) Upsert(ctx context.Context, code string, rate decimal.Decimal) (*models.Currency, error) {
	currency := &models.Currency{Code: code, ExchangeRate: rate}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "code"}},
		DoUpdates: clause.AssignmentColumns([]string{"exchange_rate", "updated_at"}),
	}).Create(currency).Error
	if err != nil {
		if errors.Is(err, models.ErrInvalidCurrencyCode) || errors.Is(err, models.ErrInvalidExchangeRate) {
			return nil, apperrors.NewValidationError(err.Error())
		}
		return nil, fmt.Errorf("failed to save currency: %w", err)
	}

	return r.GetByCode(ctx, currency.Code)
}

// GetByCode looks up a currency, ignoring case
func (r *currencyRepository) GetByCode(ctx context.Context, code string) (*models.Currency, error) {
	normalized := models.NormalizeCurrencyCode(code)

	var currency models.Currency
	if err := r.db.WithContext(ctx).Where("code = ?", normalized).First(&currency).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUnknownCurrency.Withf("currency %s", normalized)
		}
		return nil, fmt.Errorf("failed to get currency: %w", err)
	}
	return &currency, nil
}

// List returns every known currency ordered by code
func (r *currencyRepository) List(ctx context.Context) ([]models.Currency, error) {
	var currencies []models.Currency
	if err := r.db.WithContext(ctx).Order("code ASC").Find(&currencies).Error; err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	return currencies, nil
}
