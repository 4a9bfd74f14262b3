package dto

import (
	"time"

	"banking-ledger/internal/models"
)

// CreateCustomerRequest registers a customer
type CreateCustomerRequest struct {
	IdentityRef string `json:"identity_ref" validate:"required,max=255"`
	Phone       string `json:"phone" validate:"max=20"`
	Address     string `json:"address" validate:"max=255"`
}

// Validate checks the request fields
func (r CreateCustomerRequest) Validate() error {
	return validate(r)
}

// UpdateContactRequest replaces a customer's contact details
type UpdateContactRequest struct {
	CustomerID string `json:"customer_id" validate:"required,entity_id"`
	Phone      string `json:"phone" validate:"max=20"`
	Address    string `json:"address" validate:"max=255"`
}

// Parse validates the request and returns the customer id
func (r UpdateContactRequest) Parse() (uint, error) {
	if err := validate(r); err != nil {
		return 0, err
	}
	return ParseID("customer_id", r.CustomerID)
}

// CustomerResponse represents a customer in CLI output
type CustomerResponse struct {
	ID          uint      `json:"id"`
	IdentityRef string    `json:"identity_ref"`
	Phone       string    `json:"phone,omitempty"`
	Address     string    `json:"address,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewCustomerResponse builds a response from a customer
func NewCustomerResponse(c *models.Customer) CustomerResponse {
	return CustomerResponse{
		ID:          c.ID,
		IdentityRef: c.IdentityRef,
		Phone:       c.Phone,
		Address:     c.Address,
		CreatedAt:   c.CreatedAt,
	}
}

// ListRequest pages through a collection
type ListRequest struct {
	Offset int `json:"offset" validate:"min=0"`
	Limit  int `json:"limit" validate:"min=0,max=500"`
}

// Validate checks the paging bounds
func (r ListRequest) Validate() error {
	return validate(r)
}

// CustomerListResponse represents a page of customers
type CustomerListResponse struct {
	Customers []CustomerResponse `json:"customers"`
	Total     int64              `json:"total"`
	Offset    int                `json:"offset"`
	Limit     int                `json:"limit"`
}

// NewCustomerListResponse builds a page response
func NewCustomerListResponse(customers []models.Customer, total int64, offset, limit int) CustomerListResponse {
	out := make([]CustomerResponse, 0, len(customers))
	for i := range customers {
		out = append(out, NewCustomerResponse(&customers[i]))
	}
	return CustomerListResponse{
		Customers: out,
		Total:     total,
		Offset:    offset,
		Limit:     limit,
	}
}
