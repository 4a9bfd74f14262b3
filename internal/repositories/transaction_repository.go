package repositories

import (
	"context"
	"errors"
	"fmt"

	apperrors "banking-ledger/internal/errors"
	"banking-ledger/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// transactionRepository implements TransactionRepositoryInterface.
// The log is append-only; records are written by the account and reserve
// repositories inside their mutations.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{db: db}
}

// GetByID retrieves a transaction by ID
func (r *transactionRepository) GetByID(ctx context.Context, id uint) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := r.db.WithContext(ctx).First(&transaction, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("transaction", id)
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &transaction, nil
}

// GetByReference retrieves a transaction by its reference
func (r *transactionRepository) GetByReference(ctx context.Context, reference string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := r.db.WithContext(ctx).Where("reference = ?", reference).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("transaction", reference)
		}
		return nil, fmt.Errorf("failed to get transaction by reference: %w", err)
	}
	return &transaction, nil
}

// GetByAccountID lists transactions that touched the account, as owner or
// as transfer target, newest first.
func (r *transactionRepository) GetByAccountID(ctx context.Context, accountID uint, offset, limit int) ([]models.Transaction, int64, error) {
	query := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&models.Transaction{}).
			Where("account_id = ? OR target_account_id = ?", accountID, accountID)
	}
	return r.page(query, offset, limit)
}

// GetByCustomerID lists transactions that touched any account of the customer
func (r *transactionRepository) GetByCustomerID(ctx context.Context, customerID uint, offset, limit int) ([]models.Transaction, int64, error) {
	query := func() *gorm.DB {
		owned := r.db.WithContext(ctx).Model(&models.Account{}).Select("id").Where("customer_id = ?", customerID)
		return r.db.WithContext(ctx).Model(&models.Transaction{}).
			Where("account_id IN (?) OR target_account_id IN (?)", owned, owned)
	}
	return r.page(query, offset, limit)
}

func (r *transactionRepository) page(query func() *gorm.DB, offset, limit int) ([]models.Transaction, int64, error) {
	offset, limit = normalizePage(offset, limit)

	var total int64
	if err := query().Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	var transactions []models.Transaction
	if err := query().Order("created_at DESC, id DESC").
		Offset(offset).Limit(limit).Find(&transactions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get transactions: %w", err)
	}

	return transactions, total, nil
}

// TotalFees sums every fee the bank has retained
func (r *transactionRepository) TotalFees(ctx context.Context) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}

	if err := r.db.WithContext(ctx).Model(&models.Transaction{}).
		Select("COALESCE(SUM(fee), 0) AS total").Scan(&result).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum fees: %w", err)
	}

	return result.Total.Round(models.MoneyScale), nil
}
