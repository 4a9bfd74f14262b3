package errors

// ErrorCode represents a standardized error code used throughout the ledger
type ErrorCode string

// Ledger mutation error codes (LEDGER_*)
const (
	LedgerInvalidAmount       ErrorCode = "LEDGER_001"
	LedgerAccountSuspended    ErrorCode = "LEDGER_002"
	LedgerOverdraftExceeded   ErrorCode = "LEDGER_003"
	LedgerUnknownCurrency     ErrorCode = "LEDGER_004"
	LedgerNegativeBalance     ErrorCode = "LEDGER_005"
	LedgerSameAccountTransfer ErrorCode = "LEDGER_006"
)

// Loan and reserve error codes (LOAN_*)
const (
	LoanLimitExceeded       ErrorCode = "LOAN_001"
	LoanInsufficientReserve ErrorCode = "LOAN_002"
	LoanOverRepayment       ErrorCode = "LOAN_003"
	LoanAlreadyRepaid       ErrorCode = "LOAN_004"
)

// Resource error codes (RESOURCE_*)
const (
	ResourceNotFound      ErrorCode = "RESOURCE_001"
	ResourceAlreadyExists ErrorCode = "RESOURCE_002"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemReserveUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
)

var errorMessages = map[ErrorCode]string{
	LedgerInvalidAmount:       "Amount must be a positive value with at most two decimal places",
	LedgerAccountSuspended:    "Account is suspended",
	LedgerOverdraftExceeded:   "Operation would exceed the overdraft limit",
	LedgerUnknownCurrency:     "Currency is not registered",
	LedgerNegativeBalance:     "Account cannot be closed with a negative balance",
	LedgerSameAccountTransfer: "Cannot transfer to the same account",

	LoanLimitExceeded:       "Loan principal exceeds the maximum allowed",
	LoanInsufficientReserve: "Bank reserve cannot cover the loan",
	LoanOverRepayment:       "Repayment exceeds the remaining loan balance",
	LoanAlreadyRepaid:       "Loan is already fully repaid",

	ResourceNotFound:      "Resource not found",
	ResourceAlreadyExists: "Resource already exists",

	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",

	SystemInternalError:      "An unexpected error occurred",
	SystemDatabaseError:      "A storage error occurred",
	SystemReserveUnavailable: "Bank reserve is not initialized",
	SystemConfigurationError: "Configuration error",
}

// GetErrorMessage returns the human-readable message for an error code
func GetErrorMessage(code ErrorCode) string {
	if message, ok := errorMessages[code]; ok {
		return message
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the given error code is defined in the system
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}

// IsSystemCode reports whether the code describes an infrastructure failure
// rather than a rejected request.
func IsSystemCode(code ErrorCode) bool {
	switch code {
	case SystemInternalError, SystemDatabaseError, SystemReserveUnavailable, SystemConfigurationError:
		return true
	}
	return false
}
