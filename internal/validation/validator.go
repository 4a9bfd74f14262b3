package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"

	apperrors "banking-ledger/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var currencyCodePattern = regexp.MustCompile(`^[A-Za-z]{3}$`)

// Validator wraps the go-playground validator with the ledger's custom rules
type Validator struct {
	validate *validator.Validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

type rule struct {
	tag string
	fn  validator.Func
}

var customRules = []rule{
	{tag: "decimal_amount", fn: validateDecimalAmount},
	{tag: "currency_code", fn: validateCurrencyCode},
	{tag: "entity_id", fn: validateEntityID},
}

func registerRules(v *validator.Validate, rules []rule) error {
	for _, r := range rules {
		if err := v.RegisterValidation(r.tag, r.fn); err != nil {
			return fmt.Errorf("validation: register %q: %w", r.tag, err)
		}
	}
	return nil
}

// NewValidator creates a validator with the custom tags registered
func NewValidator() *Validator {
	v := validator.New()

	if err := registerRules(v, customRules); err != nil {
		panic(err)
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Validate checks a request struct and reports every failing field as one
// validation error.
func (v *Validator) Validate(request interface{}) error {
	err := v.validate.Struct(request)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return apperrors.NewValidationError(err.Error())
	}

	details := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		details = append(details, describe(fe))
	}
	return apperrors.NewValidationError(details...)
}

// Validate checks request with the shared validator
func Validate(request interface{}) error {
	return GetValidator().Validate(request)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "decimal_amount":
		return fmt.Sprintf("%s must be a decimal number", fe.Field())
	case "currency_code":
		return fmt.Sprintf("%s must be a three letter currency code", fe.Field())
	case "entity_id":
		return fmt.Sprintf("%s must be a positive integer id", fe.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// validateDecimalAmount accepts any string that parses as a decimal. Sign
// and scale are ledger rules and are checked by the services.
func validateDecimalAmount(fl validator.FieldLevel) bool {
	_, err := decimal.NewFromString(strings.TrimSpace(fl.Field().String()))
	return err == nil
}

func validateCurrencyCode(fl validator.FieldLevel) bool {
	return currencyCodePattern.MatchString(strings.TrimSpace(fl.Field().String()))
}

func validateEntityID(fl validator.FieldLevel) bool {
	id, err := strconv.ParseUint(strings.TrimSpace(fl.Field().String()), 10, 64)
	return err == nil && id > 0
}
