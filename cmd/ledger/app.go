package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"banking-ledger/internal/config"
	"banking-ledger/internal/database"
	apperrors "banking-ledger/internal/errors"
	"banking-ledger/internal/services"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

// ledgerApp holds what a single CLI invocation opens in preRun
type ledgerApp struct {
	out         io.Writer
	errOut      io.Writer
	envFile     string
	metricsFile string

	cfg           *config.Config
	logger        *slog.Logger
	db            *database.DB
	ledger        *services.Ledger
	registry      *prometheus.Registry
	correlationID string
}

func (a *ledgerApp) preRun(cmd *cobra.Command, _ []string) error {
	config.LoadDotEnv(a.envFile)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	a.cfg = cfg
	a.logger = newLogger(cfg.Logging, a.errOut)

	a.correlationID = uuid.NewString()
	cmd.SetContext(services.WithCorrelationID(cmd.Context(), a.correlationID))

	db, err := database.Initialize(cfg)
	if err != nil {
		return fmt.Errorf("error opening database: %w", err)
	}
	a.db = db

	var metrics services.MetricsRecorderInterface = services.NewNoopMetrics()
	if cfg.Metrics.Enabled || a.metricsFile != "" {
		a.registry = prometheus.NewRegistry()
		metrics = services.NewPrometheusMetrics(a.registry, cfg.Metrics.Namespace)
	}

	a.ledger = services.NewLedger(db.DB, cfg.Ledger, services.NewLedgerLogger(a.logger), metrics)
	return nil
}

func (a *ledgerApp) postRun(_ *cobra.Command, _ []string) error {
	return a.close()
}

func (a *ledgerApp) close() error {
	var errs []error
	if a.registry != nil && a.metricsFile != "" {
		if err := prometheus.WriteToTextfile(a.metricsFile, a.registry); err != nil {
			errs = append(errs, fmt.Errorf("failed to write metrics: %w", err))
		}
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
		a.db = nil
	}
	return errors.Join(errs...)
}

// run executes fn and prints its result as JSON. Failures are printed as a
// JSON error response and returned wrapped so main only sets the exit code.
func (a *ledgerApp) run(fn func(ctx context.Context) (interface{}, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		result, err := fn(cmd.Context())
		if err != nil {
			// PersistentPostRunE is skipped when RunE fails
			_ = a.close()
			return a.fail(err)
		}
		return a.print(result)
	}
}

func (a *ledgerApp) print(v interface{}) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (a *ledgerApp) fail(err error) error {
	resp := apperrors.FromError(err, a.correlationID)
	if !apperrors.IsDomainError(err) && a.logger != nil {
		a.logger.Error("command failed", "error", err.Error(), "correlation_id", a.correlationID)
	}
	if data, jsonErr := resp.ToJSON(); jsonErr == nil {
		fmt.Fprintln(a.errOut, string(data))
	}
	return &reportedError{err: err}
}

// reportedError marks an error whose JSON response was already printed
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

func reported(err error) bool {
	var r *reportedError
	return errors.As(err, &r)
}

func newLogger(cfg config.LoggingConfig, w io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
