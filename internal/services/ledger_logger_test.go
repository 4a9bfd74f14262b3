package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	apperrors "banking-ledger/internal/errors"
	"banking-ledger/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedLedgerLogger() (LedgerLoggerInterface, *bytes.Buffer) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return NewLedgerLogger(slog.New(handler)), &buf
}

func decodeLogLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestLedgerLogger_TransactionRecorded(t *testing.T) {
	logger, buf := newBufferedLedgerLogger()
	ctx := WithCorrelationID(context.Background(), "corr-1")

	target := uint(9)
	logger.LogTransactionRecorded(ctx, &models.Transaction{
		ID:              3,
		Reference:       "TXN-abc",
		Type:            models.TransactionTypeTransfer,
		AccountID:       4,
		TargetAccountID: &target,
		Amount:          decimal.NewFromInt(490),
		Fee:             decimal.NewFromInt(10),
		CurrencyCode:    "ILS",
		OriginalAmount:  decimal.NewFromInt(500),
		BalanceBefore:   decimal.NewFromInt(1000),
		BalanceAfter:    decimal.NewFromInt(500),
	})

	entry := decodeLogLine(t, buf)
	assert.Equal(t, "transaction recorded", entry["msg"])
	assert.Equal(t, "transaction_recorded", entry["event_type"])
	assert.Equal(t, "490.00", entry["amount"])
	assert.Equal(t, "10.00", entry["fee"])
	assert.Equal(t, float64(9), entry["target_account_id"])
	assert.Equal(t, "corr-1", entry["correlation_id"])
	assert.NotContains(t, entry, "loan_id")
}

func TestLedgerLogger_OperationRejectedLevels(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
		wantCode  string
	}{
		{name: "domain rejection", err: apperrors.ErrOverdraftExceeded, wantLevel: "WARN", wantCode: string(apperrors.LedgerOverdraftExceeded)},
		{name: "system failure", err: errors.New("disk full"), wantLevel: "ERROR", wantCode: string(apperrors.SystemInternalError)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferedLedgerLogger()
			logger.LogOperationRejected(context.Background(), "withdraw", 1, tt.err)

			entry := decodeLogLine(t, buf)
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, tt.wantCode, entry["error_code"])
			assert.Equal(t, "withdraw", entry["operation"])
		})
	}
}

func TestCorrelationID(t *testing.T) {
	assert.Equal(t, "", CorrelationID(context.Background()))
	assert.Equal(t, "abc", CorrelationID(WithCorrelationID(context.Background(), "abc")))
}
