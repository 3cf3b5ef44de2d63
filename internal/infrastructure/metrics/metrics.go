package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Ledger metrics
	TransactionsApplied *prometheus.CounterVec
	TransactionsIgnored *prometheus.CounterVec

	// Run metrics
	RunsCompleted   prometheus.Counter
	RunDuration     prometheus.Histogram
	AccountsEmitted prometheus.Counter

	// Input metrics
	RecordsParsed prometheus.Counter
	ParseFailures prometheus.Counter
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		// Ledger metrics
		TransactionsApplied: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payment_engine_transactions_applied_total",
				Help: "Total number of transactions applied, by kind",
			},
			[]string{"kind"},
		),
		TransactionsIgnored: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payment_engine_transactions_ignored_total",
				Help: "Total number of transactions ignored by the ledger, by reason",
			},
			[]string{"reason"},
		),

		// Run metrics
		RunsCompleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "payment_engine_runs_completed_total",
			Help: "Total number of input sources processed to completion",
		}),
		RunDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "payment_engine_run_duration_seconds",
			Help:    "Duration of one source run from open to snapshot",
			Buckets: prometheus.DefBuckets,
		}),
		AccountsEmitted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "payment_engine_accounts_emitted_total",
			Help: "Total number of accounts written to snapshots",
		}),

		// Input metrics
		RecordsParsed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "payment_engine_records_parsed_total",
			Help: "Total number of input records parsed into transactions",
		}),
		ParseFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "payment_engine_parse_failures_total",
			Help: "Total number of input records rejected by the parser",
		}),
	}
}
