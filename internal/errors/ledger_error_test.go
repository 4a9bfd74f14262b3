package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLedgerError_IsMatchesByCode(t *testing.T) {
	enriched := ErrOverdraftExceeded.Withf("balance would be %s", "-1500.00")

	assert.True(t, stderrors.Is(enriched, ErrOverdraftExceeded))
	assert.True(t, stderrors.Is(fmt.Errorf("wrapped: %w", enriched), ErrOverdraftExceeded))
	assert.False(t, stderrors.Is(enriched, ErrAccountSuspended))
}

func TestLedgerError_WithDoesNotMutateSentinel(t *testing.T) {
	_ = ErrInvalidAmount.Withf("amount %s", "-5")

	assert.Empty(t, ErrInvalidAmount.Details)
	assert.Equal(t, "[LEDGER_001] Amount must be a positive value with at most two decimal places", ErrInvalidAmount.Error())
}

func TestLedgerError_ErrorIncludesDetailsAndCause(t *testing.T) {
	cause := stderrors.New("disk full")
	err := New(SystemDatabaseError, WithDetails("saving account"), WithCause(cause))

	assert.Equal(t, "[SYSTEM_002] A storage error occurred: saving account: disk full", err.Error())
	assert.True(t, stderrors.Is(err, cause))
}

func TestNotFound(t *testing.T) {
	err := NotFound("loan", 42)

	assert.True(t, stderrors.Is(err, ErrNotFound))
	assert.Equal(t, "loan not found", err.Message)
	assert.Equal(t, []string{"loan id 42"}, err.Details)
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{name: "nil", err: nil, want: ""},
		{name: "sentinel", err: ErrAlreadyRepaid, want: LoanAlreadyRepaid},
		{name: "wrapped", err: fmt.Errorf("repay: %w", ErrOverRepayment), want: LoanOverRepayment},
		{name: "foreign", err: stderrors.New("boom"), want: SystemInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CodeOf(tt.err))
		})
	}
}

func TestIsDomainError(t *testing.T) {
	assert.True(t, IsDomainError(ErrInsufficientReserve))
	assert.True(t, IsDomainError(NewValidationError("amount: required")))
	assert.False(t, IsDomainError(ErrReserveUnavailable))
	assert.False(t, IsDomainError(stderrors.New("boom")))
}
