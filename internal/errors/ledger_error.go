package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// LedgerError is the typed error returned by every engine operation.
// Two LedgerErrors match under errors.Is when their codes are equal, so a
// sentinel enriched with details still matches the bare sentinel.
type LedgerError struct {
	Code    ErrorCode
	Message string
	Details []string
	cause   error
}

// Option is a functional option for configuring a LedgerError
type Option func(*LedgerError)

// WithDetails adds detail messages to the error
func WithDetails(details ...string) Option {
	return func(e *LedgerError) {
		e.Details = append(e.Details, details...)
	}
}

// WithMessage overrides the default message for the error code
func WithMessage(message string) Option {
	return func(e *LedgerError) {
		e.Message = message
	}
}

// WithCause attaches the underlying error
func WithCause(err error) Option {
	return func(e *LedgerError) {
		e.cause = err
	}
}

// New creates a LedgerError for the code with its catalog message
func New(code ErrorCode, opts ...Option) *LedgerError {
	e := &LedgerError{
		Code:    code,
		Message: GetErrorMessage(code),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *LedgerError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", e.Code, e.Message)
	if len(e.Details) > 0 {
		b.WriteString(": ")
		b.WriteString(strings.Join(e.Details, "; "))
	}
	if e.cause != nil {
		b.WriteString(": ")
		b.WriteString(e.cause.Error())
	}
	return b.String()
}

func (e *LedgerError) Is(target error) bool {
	t, ok := target.(*LedgerError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

func (e *LedgerError) Unwrap() error {
	return e.cause
}

// With returns a copy of the error with the options applied. Sentinels are
// never mutated.
func (e *LedgerError) With(opts ...Option) *LedgerError {
	clone := &LedgerError{
		Code:    e.Code,
		Message: e.Message,
		Details: append([]string(nil), e.Details...),
		cause:   e.cause,
	}
	for _, opt := range opts {
		opt(clone)
	}
	return clone
}

// Withf is shorthand for With(WithDetails(fmt.Sprintf(format, args...)))
func (e *LedgerError) Withf(format string, args ...interface{}) *LedgerError {
	return e.With(WithDetails(fmt.Sprintf(format, args...)))
}

var (
	ErrInvalidAmount       = New(LedgerInvalidAmount)
	ErrAccountSuspended    = New(LedgerAccountSuspended)
	ErrOverdraftExceeded   = New(LedgerOverdraftExceeded)
	ErrUnknownCurrency     = New(LedgerUnknownCurrency)
	ErrNegativeBalance     = New(LedgerNegativeBalance)
	ErrSameAccountTransfer = New(LedgerSameAccountTransfer)

	ErrLoanLimitExceeded   = New(LoanLimitExceeded)
	ErrInsufficientReserve = New(LoanInsufficientReserve)
	ErrOverRepayment       = New(LoanOverRepayment)
	ErrAlreadyRepaid       = New(LoanAlreadyRepaid)

	ErrNotFound      = New(ResourceNotFound)
	ErrAlreadyExists = New(ResourceAlreadyExists)

	ErrValidation         = New(ValidationGeneral)
	ErrReserveUnavailable = New(SystemReserveUnavailable)
)

// NotFound builds a NotFound error naming the missing entity
func NotFound(entity string, id interface{}) *LedgerError {
	return ErrNotFound.With(WithMessage(fmt.Sprintf("%s not found", entity)), WithDetails(fmt.Sprintf("%s id %v", entity, id)))
}

// NewValidationError creates a validation error from field-level messages
func NewValidationError(details ...string) *LedgerError {
	return ErrValidation.With(WithDetails(details...))
}

// CodeOf returns the code carried by err, SystemInternalError for foreign
// errors and an empty code for nil.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return ""
	}
	var ledgerErr *LedgerError
	if stderrors.As(err, &ledgerErr) {
		return ledgerErr.Code
	}
	return SystemInternalError
}

// IsDomainError reports whether err is a recoverable, user-facing rejection
func IsDomainError(err error) bool {
	var ledgerErr *LedgerError
	if !stderrors.As(err, &ledgerErr) {
		return false
	}
	return !IsSystemCode(ledgerErr.Code)
}
