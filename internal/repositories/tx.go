package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"banking-ledger/internal/database"
	apperrors "banking-ledger/internal/errors"
	"banking-ledger/internal/models"

	"github.com/cenkalti/backoff/v4"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	defaultPageSize = 50
	maxPageSize     = 500
)

// RetryPolicy bounds how often a mutation is re-run after a transient
// storage conflict.
type RetryPolicy struct {
	MaxRetries      int
	InitialInterval time.Duration
}

// DefaultRetryPolicy is used when a repository is built without one
var DefaultRetryPolicy = RetryPolicy{MaxRetries: 5, InitialInterval: 20 * time.Millisecond}

// runInTransaction runs fn inside a storage transaction, retrying the whole
// transaction on serialization failures, deadlocks and busy databases.
// Every other error, domain rejections included, is returned at once.
func runInTransaction(ctx context.Context, db *gorm.DB, policy RetryPolicy, fn func(tx *gorm.DB) error) error {
	operation := func() error {
		err := db.WithContext(ctx).Transaction(fn)
		if err == nil {
			return nil
		}
		if database.IsTransient(err) {
			return err
		}
		return backoff.Permanent(err)
	}

	expo := backoff.NewExponentialBackOff()
	expo.InitialInterval = policy.InitialInterval
	expo.MaxElapsedTime = 0

	var b backoff.BackOff = backoff.WithMaxRetries(expo, uint64(policy.MaxRetries))
	b = backoff.WithContext(b, ctx)

	return backoff.Retry(operation, b)
}

func lockAccount(tx *gorm.DB, id uint) (*models.Account, error) {
	var account models.Account
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&account, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("account", id)
		}
		return nil, fmt.Errorf("failed to lock account: %w", err)
	}
	return &account, nil
}

func lockReserve(tx *gorm.DB) (*models.BankReserve, error) {
	var reserve models.BankReserve
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&reserve, models.ReserveID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrReserveUnavailable
		}
		return nil, fmt.Errorf("failed to lock bank reserve: %w", err)
	}
	return &reserve, nil
}

func lockLoan(tx *gorm.DB, id uint) (*models.Loan, error) {
	var loan models.Loan
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&loan, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("loan", id)
		}
		return nil, fmt.Errorf("failed to lock loan: %w", err)
	}
	return &loan, nil
}

func normalizePage(offset, limit int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return offset, limit
}
