package repositories

import (
	"context"
	"errors"
	"fmt"
	"sync"

	apperrors "banking-ledger/internal/errors"
	"banking-ledger/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrDisbursementMissing = errors.New("disbursement account given without a disbursement record")

// reserveRepository implements ReserveRepositoryInterface.
//
// Lock order is reserve, then loan, then account. Account-only mutations
// never take the reserve lock.
type reserveRepository struct {
	db    *gorm.DB
	retry RetryPolicy
	mu    sync.Mutex // serializes reserve mutations within this process
}

// NewReserveRepository creates a new reserve repository
func NewReserveRepository(db *gorm.DB, retry RetryPolicy) ReserveRepositoryInterface {
	return &reserveRepository{
		db:    db,
		retry: retry,
	}
}

// Get returns the current reserve row
func (r *reserveRepository) Get(ctx context.Context) (*models.BankReserve, error) {
	var reserve models.BankReserve
	if err := r.db.WithContext(ctx).First(&reserve, models.ReserveID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrReserveUnavailable
		}
		return nil, fmt.Errorf("failed to get bank reserve: %w", err)
	}
	return &reserve, nil
}

// GrantLoan debits the reserve by the principal and creates the loan. When
// the loan names a disbursement account, the principal is also credited to
// that account and recorded as a deposit linked to the loan.
func (r *reserveRepository) GrantLoan(ctx context.Context, loan *models.Loan, disbursement *models.Transaction) (*models.LoanGrant, error) {
	if loan.DisbursementAccountID != nil && disbursement == nil {
		return nil, ErrDisbursementMissing
	}
	if disbursement != nil && disbursement.Type != models.TransactionTypeDeposit {
		return nil, ErrTransactionKindMismatch
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var grant *models.LoanGrant

	err := runInTransaction(ctx, r.db, r.retry, func(tx *gorm.DB) error {
		reserve, err := lockReserve(tx)
		if err != nil {
			return err
		}

		if err := reserve.Lend(loan.Principal); err != nil {
			return err
		}

		record := *loan
		record.ID = 0
		record.RepaidAmount = decimal.Zero
		record.IsRepaid = false
		record.RepaidAt = nil
		if err := tx.Create(&record).Error; err != nil {
			if errors.Is(err, gorm.ErrForeignKeyViolated) {
				return apperrors.NotFound("customer", record.CustomerID)
			}
			return fmt.Errorf("failed to create loan: %w", err)
		}

		if err := tx.Save(reserve).Error; err != nil {
			return fmt.Errorf("failed to update bank reserve: %w", err)
		}

		var credited *models.Transaction
		if record.DisbursementAccountID != nil {
			credited, err = disburse(tx, &record, disbursement)
			if err != nil {
				return err
			}
		}

		grant = &models.LoanGrant{Loan: &record, ReserveBalance: reserve.Balance, Disbursement: credited}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return grant, nil
}

func disburse(tx *gorm.DB, loan *models.Loan, template *models.Transaction) (*models.Transaction, error) {
	account, err := lockAccount(tx, *loan.DisbursementAccountID)
	if err != nil {
		return nil, err
	}

	if account.CustomerID != loan.CustomerID {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("account %d does not belong to customer %d", account.ID, loan.CustomerID))
	}

	record := *template
	record.ID = 0
	record.AccountID = account.ID
	loanID := loan.ID
	record.LoanID = &loanID
	record.BalanceBefore = account.Balance

	if err := account.Deposit(record.GrossAmount()); err != nil {
		return nil, err
	}
	record.BalanceAfter = account.Balance

	if err := tx.Save(account).Error; err != nil {
		return nil, fmt.Errorf("failed to credit disbursement account: %w", err)
	}
	if err := tx.Create(&record).Error; err != nil {
		return nil, fmt.Errorf("failed to record disbursement: %w", err)
	}

	return &record, nil
}

// RepayLoan applies a repayment and returns the amount to the reserve
func (r *reserveRepository) RepayLoan(ctx context.Context, loanID uint, amount decimal.Decimal) (*models.LoanRepaymentResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result *models.LoanRepaymentResult

	err := runInTransaction(ctx, r.db, r.retry, func(tx *gorm.DB) error {
		reserve, err := lockReserve(tx)
		if err != nil {
			return err
		}

		loan, err := lockLoan(tx, loanID)
		if err != nil {
			return err
		}

		if err := loan.Repay(amount); err != nil {
			return err
		}
		if err := reserve.Collect(amount); err != nil {
			return err
		}

		if err := tx.Save(loan).Error; err != nil {
			return fmt.Errorf("failed to update loan: %w", err)
		}
		if err := tx.Save(reserve).Error; err != nil {
			return fmt.Errorf("failed to update bank reserve: %w", err)
		}

		repayment := &models.LoanRepayment{
			LoanID:         loan.ID,
			Amount:         amount,
			RemainingAfter: loan.RemainingBalance(),
		}
		if err := tx.Create(repayment).Error; err != nil {
			return fmt.Errorf("failed to record repayment: %w", err)
		}

		result = &models.LoanRepaymentResult{Loan: loan, Repayment: repayment, ReserveBalance: reserve.Balance}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
