package dto

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "banking-ledger/internal/errors"
	"banking-ledger/internal/validation"

	"github.com/shopspring/decimal"
)

// ParseID converts a validated id field to uint
func ParseID(field, value string) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(value), 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.NewValidationError(fmt.Sprintf("%s must be a positive integer id", field))
	}
	return uint(id), nil
}

// ParseOptionalID returns nil for an empty value
func ParseOptionalID(field, value string) (*uint, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	id, err := ParseID(field, value)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// ParseAmount converts a validated amount field to a decimal
func ParseAmount(field, value string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero, apperrors.NewValidationError(fmt.Sprintf("%s must be a decimal number", field))
	}
	return amount, nil
}

func validate(request interface{}) error {
	return validation.Validate(request)
}
