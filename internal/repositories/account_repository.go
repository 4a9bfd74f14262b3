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

var ErrTransactionKindMismatch = errors.New("transaction kind does not match the operation")

// accountRepository implements AccountRepositoryInterface
type accountRepository struct {
	db    *gorm.DB
	retry RetryPolicy
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB, retry RetryPolicy) AccountRepositoryInterface {
	return &accountRepository{
		db:    db,
		retry: retry,
	}
}

// Create inserts an account. A non-nil opening record is applied as the
// first deposit in the same storage transaction.
func (r *accountRepository) Create(ctx context.Context, account *models.Account, opening *models.Transaction) error {
	if opening != nil && opening.Type != models.TransactionTypeDeposit {
		return ErrTransactionKindMismatch
	}

	template := *account
	return runInTransaction(ctx, r.db, r.retry, func(tx *gorm.DB) error {
		*account = template
		if err := tx.Create(account).Error; err != nil {
			if errors.Is(err, gorm.ErrForeignKeyViolated) {
				return apperrors.NotFound("customer", account.CustomerID)
			}
			return fmt.Errorf("failed to create account: %w", err)
		}

		if opening == nil {
			return nil
		}

		record := *opening
		record.ID = 0
		record.AccountID = account.ID
		record.BalanceBefore = account.Balance
		if err := account.Deposit(record.GrossAmount()); err != nil {
			return err
		}
		record.BalanceAfter = account.Balance

		if err := tx.Save(account).Error; err != nil {
			return fmt.Errorf("failed to apply opening deposit: %w", err)
		}
		if err := tx.Create(&record).Error; err != nil {
			return fmt.Errorf("failed to record opening deposit: %w", err)
		}
		*opening = record
		return nil
	})
}

// GetByID retrieves an account by ID
func (r *accountRepository) GetByID(ctx context.Context, id uint) (*models.Account, error) {
	var account models.Account
	if err := r.db.WithContext(ctx).First(&account, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("account", id)
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

// GetByCustomerID retrieves all accounts for a customer
func (r *accountRepository) GetByCustomerID(ctx context.Context, customerID uint) ([]models.Account, error) {
	var accounts []models.Account
	if err := r.db.WithContext(ctx).Where("customer_id = ?", customerID).
		Order("id ASC").Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to get accounts for customer: %w", err)
	}
	return accounts, nil
}

// ExecuteDeposit credits the gross amount of txn to the account
func (r *accountRepository) ExecuteDeposit(ctx context.Context, accountID uint, txn *models.Transaction) (*models.AccountMutation, error) {
	if txn.Type != models.TransactionTypeDeposit {
		return nil, ErrTransactionKindMismatch
	}
	return r.executeSingle(ctx, accountID, txn, (*models.Account).Deposit)
}

// ExecuteWithdrawal debits the gross amount of txn (net plus fee) from the account
func (r *accountRepository) ExecuteWithdrawal(ctx context.Context, accountID uint, txn *models.Transaction) (*models.AccountMutation, error) {
	if txn.Type != models.TransactionTypeWithdraw {
		return nil, ErrTransactionKindMismatch
	}
	return r.executeSingle(ctx, accountID, txn, (*models.Account).Withdraw)
}

func (r *accountRepository) executeSingle(
	ctx context.Context,
	accountID uint,
	txn *models.Transaction,
	apply func(*models.Account, decimal.Decimal) error,
) (*models.AccountMutation, error) {
	var result *models.AccountMutation

	err := runInTransaction(ctx, r.db, r.retry, func(tx *gorm.DB) error {
		account, err := lockAccount(tx, accountID)
		if err != nil {
			return err
		}

		record := *txn
		record.ID = 0
		record.AccountID = account.ID
		record.BalanceBefore = account.Balance

		if err := apply(account, record.GrossAmount()); err != nil {
			return err
		}
		record.BalanceAfter = account.Balance

		if err := tx.Save(account).Error; err != nil {
			return fmt.Errorf("failed to update account balance: %w", err)
		}
		if err := tx.Create(&record).Error; err != nil {
			return fmt.Errorf("failed to record transaction: %w", err)
		}

		result = &models.AccountMutation{Account: account, Transaction: &record}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// ExecuteTransfer debits the gross amount of txn from the source and
// credits the net amount to the target. Rows are locked in ascending id
// order so that crossing transfers cannot deadlock.
func (r *accountRepository) ExecuteTransfer(ctx context.Context, fromAccountID, toAccountID uint, txn *models.Transaction) (*models.TransferResult, error) {
	if txn.Type != models.TransactionTypeTransfer {
		return nil, ErrTransactionKindMismatch
	}
	if fromAccountID == toAccountID {
		return nil, apperrors.ErrSameAccountTransfer.Withf("account id %d", fromAccountID)
	}

	var result *models.TransferResult

	err := runInTransaction(ctx, r.db, r.retry, func(tx *gorm.DB) error {
		firstID, secondID := fromAccountID, toAccountID
		if secondID < firstID {
			firstID, secondID = secondID, firstID
		}

		first, err := lockAccount(tx, firstID)
		if err != nil {
			return err
		}
		second, err := lockAccount(tx, secondID)
		if err != nil {
			return err
		}

		source, target := first, second
		if source.ID != fromAccountID {
			source, target = second, first
		}

		record := *txn
		record.ID = 0
		record.AccountID = source.ID
		targetID := target.ID
		record.TargetAccountID = &targetID
		record.BalanceBefore = source.Balance

		if err := source.Withdraw(record.GrossAmount()); err != nil {
			return err
		}
		if err := target.Deposit(record.Amount); err != nil {
			return err
		}
		record.BalanceAfter = source.Balance

		if err := tx.Save(source).Error; err != nil {
			return fmt.Errorf("failed to update source account: %w", err)
		}
		if err := tx.Save(target).Error; err != nil {
			return fmt.Errorf("failed to update target account: %w", err)
		}
		if err := tx.Create(&record).Error; err != nil {
			return fmt.Errorf("failed to record transfer: %w", err)
		}

		result = &models.TransferResult{Source: source, Target: target, Transaction: &record}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// Close suspends the account. Closed accounts keep their history.
func (r *accountRepository) Close(ctx context.Context, accountID uint) (*models.Account, error) {
	var closed *models.Account

	err := runInTransaction(ctx, r.db, r.retry, func(tx *gorm.DB) error {
		account, err := lockAccount(tx, accountID)
		if err != nil {
			return err
		}

		if err := account.Close(); err != nil {
			return err
		}

		if err := tx.Save(account).Error; err != nil {
			return fmt.Errorf("failed to close account: %w", err)
		}

		closed = account
		return nil
	})
	if err != nil {
		return nil, err
	}

	return closed, nil
}
