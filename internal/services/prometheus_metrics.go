package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	MetricLedgerOperation = "ledger_operation"
	MetricCustomerCreated = "customer_created"
	MetricReserveBalance  = "reserve_balance"
	MetricLoanPrincipal   = "loan_principal"
	MetricTransferAmount  = "transfer_amount"
	MetricFeesCollected   = "fees_collected"
)

type PrometheusMetrics struct {
	operationsTotal   *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
	customersCreated  prometheus.Counter
	feesCollected     prometheus.Counter
	reserveBalance    prometheus.Gauge
	loanPrincipal     prometheus.Histogram
	transferAmount    prometheus.Histogram
}

// NewPrometheusMetrics registers the ledger collectors on reg. A nil reg
// means the default registerer.
func NewPrometheusMetrics(reg prometheus.Registerer, namespace string) MetricsRecorderInterface {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		operationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "operations_total",
				Help:      "Total number of ledger operations by outcome",
			},
			[]string{"operation", "status"},
		),
		operationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "operation_duration_milliseconds",
				Help:      "Ledger operation duration in milliseconds",
				Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"operation"},
		),
		customersCreated: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "customers_created_total",
				Help:      "Total number of customers created",
			},
		),
		feesCollected: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "fees_collected_total",
				Help:      "Fee income retained by the bank in home currency units",
			},
		),
		reserveBalance: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "reserve_balance",
				Help:      "Bank reserve balance after the last loan operation",
			},
		),
		loanPrincipal: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "loan_principal",
				Help:      "Principal of granted loans in home currency units",
				Buckets:   prometheus.ExponentialBuckets(100, 2, 10),
			},
		),
		transferAmount: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "transfer_amount",
				Help:      "Gross transfer amount in home currency units",
				Buckets:   prometheus.ExponentialBuckets(1, 10, 8),
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case MetricLedgerOperation:
		operation := tags["operation"]
		status := tags["status"]
		if operation != "" && status != "" {
			m.operationsTotal.WithLabelValues(operation, status).Inc()
		}
	case MetricCustomerCreated:
		m.customersCreated.Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	m.operationDuration.WithLabelValues(name).Observe(float64(duration.Milliseconds()))
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricReserveBalance:
		m.reserveBalance.Set(value)
	case MetricLoanPrincipal:
		m.loanPrincipal.Observe(value)
	case MetricTransferAmount:
		m.transferAmount.Observe(value)
	case MetricFeesCollected:
		if value > 0 {
			m.feesCollected.Add(value)
		}
	}
}

// NoopMetrics discards everything. Used when metrics are disabled.
type NoopMetrics struct{}

func NewNoopMetrics() MetricsRecorderInterface {
	return NoopMetrics{}
}

func (NoopMetrics) IncrementCounter(string, map[string]string) {}
func (NoopMetrics) RecordProcessingTime(string, time.Duration) {}
func (NoopMetrics) RecordGauge(string, float64, map[string]string) {}
