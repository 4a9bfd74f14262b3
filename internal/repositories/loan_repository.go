package repositories

import (
	"context"
	"errors"
	"fmt"

	apperrors "banking-ledger/internal/errors"
	"banking-ledger/internal/models"

	"gorm.io/gorm"
)

// loanRepository implements LoanRepositoryInterface. Mutations go through
// the reserve repository.
type loanRepository struct {
	db *gorm.DB
}

// NewLoanRepository creates a new loan repository
func NewLoanRepository(db *gorm.DB) LoanRepositoryInterface {
	return &loanRepository{db: db}
}

// GetByID retrieves a loan by ID
func (r *loanRepository) GetByID(ctx context.Context, id uint) (*models.Loan, error) {
	var loan models.Loan
	if err := r.db.WithContext(ctx).First(&loan, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("loan", id)
		}
		return nil, fmt.Errorf("failed to get loan: %w", err)
	}
	return &loan, nil
}

// GetByCustomerID retrieves all loans of a customer, oldest first
func (r *loanRepository) GetByCustomerID(ctx context.Context, customerID uint) ([]models.Loan, error) {
	var loans []models.Loan
	if err := r.db.WithContext(ctx).Where("customer_id = ?", customerID).
		Order("id ASC").Find(&loans).Error; err != nil {
		return nil, fmt.Errorf("failed to get loans for customer: %w", err)
	}
	return loans, nil
}

// GetRepayments lists the repayments of a loan in the order they were accepted
func (r *loanRepository) GetRepayments(ctx context.Context, loanID uint) ([]models.LoanRepayment, error) {
	var repayments []models.LoanRepayment
	if err := r.db.WithContext(ctx).Where("loan_id = ?", loanID).
		Order("id ASC").Find(&repayments).Error; err != nil {
		return nil, fmt.Errorf("failed to get loan repayments: %w", err)
	}
	return repayments, nil
}
