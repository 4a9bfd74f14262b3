package services

import (
	"context"
	"strings"
	"time"

	apperrors "banking-ledger/internal/errors"
	"banking-ledger/internal/models"
	"banking-ledger/internal/repositories"
)

// customerService implements CustomerServiceInterface
type customerService struct {
	customerRepo repositories.CustomerRepositoryInterface
	observer
}

// NewCustomerService creates a customer service
func NewCustomerService(
	customerRepo repositories.CustomerRepositoryInterface,
	logger LedgerLoggerInterface,
	metrics MetricsRecorderInterface,
) CustomerServiceInterface {
	return &customerService{
		customerRepo: customerRepo,
		observer:     observer{logger: logger, metrics: metrics},
	}
}

// CreateCustomer registers a customer under a unique identity reference
func (s *customerService) CreateCustomer(ctx context.Context, identityRef, phone, address string) (customer *models.Customer, err error) {
	start := time.Now()
	defer func() { s.finish(ctx, "create_customer", 0, start, err) }()

	identityRef = strings.TrimSpace(identityRef)
	if identityRef == "" {
		return nil, apperrors.NewValidationError("identity_ref is required")
	}

	customer = &models.Customer{
		IdentityRef: identityRef,
		Phone:       strings.TrimSpace(phone),
		Address:     strings.TrimSpace(address),
	}

	if err = s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	s.logger.LogCustomerCreated(ctx, customer.ID, customer.IdentityRef)
	s.metrics.IncrementCounter(MetricCustomerCreated, nil)
	return customer, nil
}

// GetCustomer retrieves a customer by ID
func (s *customerService) GetCustomer(ctx context.Context, customerID uint) (*models.Customer, error) {
	return s.customerRepo.GetByID(ctx, customerID)
}

// UpdateContact replaces the customer's phone and address
func (s *customerService) UpdateContact(ctx context.Context, customerID uint, phone, address string) (customer *models.Customer, err error) {
	start := time.Now()
	defer func() { s.finish(ctx, "update_customer", customerID, start, err) }()

	return s.customerRepo.UpdateContact(ctx, customerID, strings.TrimSpace(phone), strings.TrimSpace(address))
}

// FindCustomer looks a customer up by the external identity reference
func (s *customerService) FindCustomer(ctx context.Context, identityRef string) (*models.Customer, error) {
	identityRef = strings.TrimSpace(identityRef)
	if identityRef == "" {
		return nil, apperrors.NewValidationError("identity_ref is required")
	}
	return s.customerRepo.GetByIdentityRef(ctx, identityRef)
}

// ListCustomers pages through customers in registration order
func (s *customerService) ListCustomers(ctx context.Context, offset, limit int) ([]models.Customer, int64, error) {
	return s.customerRepo.List(ctx, offset, limit)
}
