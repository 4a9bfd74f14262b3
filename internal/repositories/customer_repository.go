package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	apperrors "banking-ledger/internal/errors"
	"banking-ledger/internal/models"

	"gorm.io/gorm"
)

// customerRepository implements CustomerRepositoryInterface
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) CustomerRepositoryInterface {
	return &customerRepository{db: db}
}

// Create creates a new customer
func (r *customerRepository) Create(ctx context.Context, customer *models.Customer) error {
	if err := r.db.WithContext(ctx).Create(customer).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrAlreadyExists.Withf("customer with identity %s", customer.IdentityRef)
		}
		return fmt.Errorf("failed to create customer: %w", err)
	}
	return nil
}

// GetByID retrieves a customer by ID
func (r *customerRepository) GetByID(ctx context.Context, id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.WithContext(ctx).First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("customer", id)
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return &customer, nil
}

// GetByIdentityRef retrieves a customer by its external identity reference
func (r *customerRepository) GetByIdentityRef(ctx context.Context, identityRef string) (*models.Customer, error) {
	ref := strings.TrimSpace(identityRef)

	var customer models.Customer
	if err := r.db.WithContext(ctx).Where("identity_ref = ?", ref).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("customer", ref)
		}
		return nil, fmt.Errorf("failed to get customer by identity: %w", err)
	}
	return &customer, nil
}

// UpdateContact replaces the phone and address of a customer
func (r *customerRepository) UpdateContact(ctx context.Context, id uint, phone, address string) (*models.Customer, error) {
	customer, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	customer.Phone = phone
	customer.Address = address

	if err := r.db.WithContext(ctx).Save(customer).Error; err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}
	return customer, nil
}

// List retrieves customers with pagination
func (r *customerRepository) List(ctx context.Context, offset, limit int) ([]models.Customer, int64, error) {
	offset, limit = normalizePage(offset, limit)

	var customers []models.Customer
	var total int64

	db := r.db.WithContext(ctx)
	if err := db.Model(&models.Customer{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count customers: %w", err)
	}

	if err := db.Offset(offset).Limit(limit).Order("id ASC").Find(&customers).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list customers: %w", err)
	}

	return customers, total, nil
}
