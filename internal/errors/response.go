package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
)

// ErrorResponse represents the structure printed by the CLI for a failed operation
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains the detailed error information
type ErrorDetail struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	TraceID string   `json:"trace_id"`
}

// NewErrorResponse creates an error response for the given code and trace ID
func NewErrorResponse(code ErrorCode, traceID string, details ...string) *ErrorResponse {
	return &ErrorResponse{
		Error: ErrorDetail{
			Code:    string(code),
			Message: GetErrorMessage(code),
			Details: details,
			TraceID: traceID,
		},
	}
}

// FromError converts any error into a response. Ledger errors keep their
// code, message and details; anything else is reported as a generic system
// error so internal details are not exposed.
func FromError(err error, traceID string) *ErrorResponse {
	var ledgerErr *LedgerError
	if stderrors.As(err, &ledgerErr) {
		return &ErrorResponse{
			Error: ErrorDetail{
				Code:    string(ledgerErr.Code),
				Message: ledgerErr.Message,
				Details: ledgerErr.Details,
				TraceID: traceID,
			},
		}
	}
	return NewErrorResponse(SystemInternalError, traceID)
}

// ToJSON serializes the error response to JSON bytes
func (er *ErrorResponse) ToJSON() ([]byte, error) {
	return json.Marshal(er)
}

// IsClientError returns true if the request itself was rejected
func (er *ErrorResponse) IsClientError() bool {
	return !IsSystemCode(ErrorCode(er.Error.Code))
}

// String returns a string representation of the error response
func (er *ErrorResponse) String() string {
	return fmt.Sprintf("[%s] %s (trace: %s)", er.Error.Code, er.Error.Message, er.Error.TraceID)
}
