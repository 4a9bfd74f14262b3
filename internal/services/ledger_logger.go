package services

import (
	"context"
	"log/slog"
	"time"

	apperrors "banking-ledger/internal/errors"
	"banking-ledger/internal/models"
)

type LedgerLogger struct {
	logger *slog.Logger
}

func NewLedgerLogger(logger *slog.Logger) LedgerLoggerInterface {
	return &LedgerLogger{
		logger: logger,
	}
}

func (ll *LedgerLogger) LogCustomerCreated(ctx context.Context, customerID uint, identityRef string) {
	ll.logger.InfoContext(ctx, "customer created",
		slog.String("event_type", "customer_created"),
		slog.Uint64("customer_id", uint64(customerID)),
		slog.String("identity_ref", identityRef),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (ll *LedgerLogger) LogAccountOpened(ctx context.Context, accountID, customerID uint, openingBalance string) {
	ll.logger.InfoContext(ctx, "account opened",
		slog.String("event_type", "account_opened"),
		slog.Uint64("account_id", uint64(accountID)),
		slog.Uint64("customer_id", uint64(customerID)),
		slog.String("opening_balance", openingBalance),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (ll *LedgerLogger) LogTransactionRecorded(ctx context.Context, txn *models.Transaction) {
	attrs := []slog.Attr{
		slog.String("event_type", "transaction_recorded"),
		slog.Uint64("transaction_id", uint64(txn.ID)),
		slog.String("reference", txn.Reference),
		slog.String("type", string(txn.Type)),
		slog.Uint64("account_id", uint64(txn.AccountID)),
		slog.String("amount", txn.Amount.StringFixed(models.MoneyScale)),
		slog.String("fee", txn.Fee.StringFixed(models.MoneyScale)),
		slog.String("currency", txn.CurrencyCode),
		slog.String("original_amount", txn.OriginalAmount.StringFixed(models.MoneyScale)),
		slog.String("balance_before", txn.BalanceBefore.StringFixed(models.MoneyScale)),
		slog.String("balance_after", txn.BalanceAfter.StringFixed(models.MoneyScale)),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	}

	if txn.TargetAccountID != nil {
		attrs = append(attrs, slog.Uint64("target_account_id", uint64(*txn.TargetAccountID)))
	}
	if txn.LoanID != nil {
		attrs = append(attrs, slog.Uint64("loan_id", uint64(*txn.LoanID)))
	}

	ll.logger.LogAttrs(ctx, slog.LevelInfo, "transaction recorded", attrs...)
}

func (ll *LedgerLogger) LogAccountClosed(ctx context.Context, accountID uint) {
	ll.logger.InfoContext(ctx, "account closed",
		slog.String("event_type", "account_closed"),
		slog.Uint64("account_id", uint64(accountID)),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (ll *LedgerLogger) LogLoanGranted(ctx context.Context, loanID, customerID uint, principal, reserveBalance string) {
	ll.logger.InfoContext(ctx, "loan granted",
		slog.String("event_type", "loan_granted"),
		slog.Uint64("loan_id", uint64(loanID)),
		slog.Uint64("customer_id", uint64(customerID)),
		slog.String("principal", principal),
		slog.String("reserve_balance", reserveBalance),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (ll *LedgerLogger) LogLoanRepayment(ctx context.Context, loanID uint, amount, remaining string, repaid bool) {
	ll.logger.InfoContext(ctx, "loan repayment",
		slog.String("event_type", "loan_repayment"),
		slog.Uint64("loan_id", uint64(loanID)),
		slog.String("amount", amount),
		slog.String("remaining", remaining),
		slog.Bool("is_repaid", repaid),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (ll *LedgerLogger) LogCurrencyRateSet(ctx context.Context, code, rate string) {
	ll.logger.InfoContext(ctx, "currency rate set",
		slog.String("event_type", "currency_rate_set"),
		slog.String("currency", code),
		slog.String("exchange_rate", rate),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

// LogOperationRejected logs domain rejections at warn and everything else at error
func (ll *LedgerLogger) LogOperationRejected(ctx context.Context, operation string, entityID uint, err error) {
	level := slog.LevelError
	if apperrors.IsDomainError(err) {
		level = slog.LevelWarn
	}

	ll.logger.LogAttrs(ctx, level, "operation rejected",
		slog.String("event_type", "operation_rejected"),
		slog.String("operation", operation),
		slog.Uint64("entity_id", uint64(entityID)),
		slog.String("error_code", string(apperrors.CodeOf(err))),
		slog.String("error", err.Error()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}
