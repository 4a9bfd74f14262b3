package models

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

var ErrIdentityRefRequired = errors.New("identity reference is required")

// Customer owns accounts and loans. IdentityRef points at the external
// identity record the customer was registered from.
type Customer struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	IdentityRef string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"identity_ref"`
	Phone       string    `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Address     string    `gorm:"type:varchar(255)" json:"address,omitempty"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`

	// Associations
	Accounts []Account `gorm:"foreignKey:CustomerID" json:"accounts,omitempty"`
	Loans    []Loan    `gorm:"foreignKey:CustomerID" json:"loans,omitempty"`
}

// BeforeSave hook for Customer
func (c *Customer) BeforeSave(tx *gorm.DB) error {
	c.IdentityRef = strings.TrimSpace(c.IdentityRef)
	if c.IdentityRef == "" {
		return ErrIdentityRefRequired
	}
	return nil
}

// TableName returns the table name for Customer
func (c *Customer) TableName() string {
	return "customers"
}
