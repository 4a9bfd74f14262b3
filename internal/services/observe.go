package services

import (
	"context"
	"time"

	apperrors "banking-ledger/internal/errors"
)

const statusSuccess = "success"

// observer records the outcome of one ledger operation on both the
// metrics recorder and the ledger log.
type observer struct {
	logger  LedgerLoggerInterface
	metrics MetricsRecorderInterface
}

func (o observer) finish(ctx context.Context, operation string, entityID uint, start time.Time, err error) {
	status := statusSuccess
	if err != nil {
		status = string(apperrors.CodeOf(err))
		o.logger.LogOperationRejected(ctx, operation, entityID, err)
	}

	o.metrics.IncrementCounter(MetricLedgerOperation, map[string]string{
		"operation": operation,
		"status":    status,
	})
	o.metrics.RecordProcessingTime(operation, time.Since(start))
}
