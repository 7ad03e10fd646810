// Package observability exposes Prometheus metrics for the transaction
// engine. The core transactors stay metric-free; engine counters are
// incremented at the dispatch layer only, so a failed stream leaves an
// accurate count of what was actually applied. The stream counter is
// incremented by the CSV reader.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ─── Engine Metrics ─────────────────────────────────────────────────────────

// TransactionsApplied counts successful transactor outcomes by record type
// and status (transacted or duplicate).
var TransactionsApplied = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "payline",
	Subsystem: "engine",
	Name:      "transactions_applied_total",
	Help:      "Successful transactor outcomes by record type and status.",
}, []string{"type", "status"})

// SuppressedErrors counts records skipped under the suppressed-error
// policy (insufficient funds, unknown transaction id).
var SuppressedErrors = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "payline",
	Subsystem: "engine",
	Name:      "suppressed_errors_total",
	Help:      "Records skipped under the suppressed-error policy.",
}, []string{"type"})

// FatalErrors counts fatal errors that aborted a stream.
var FatalErrors = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "payline",
	Subsystem: "engine",
	Name:      "fatal_errors_total",
	Help:      "Fatal errors that aborted a transaction stream.",
})

// AccountsTracked reports the number of client accounts in the registry.
var AccountsTracked = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "payline",
	Subsystem: "engine",
	Name:      "accounts_tracked",
	Help:      "Client accounts currently held in the registry.",
})

// ─── Stream Metrics ─────────────────────────────────────────────────────────

// RecordsRead counts records successfully parsed from input streams.
var RecordsRead = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "payline",
	Subsystem: "stream",
	Name:      "records_read_total",
	Help:      "Transaction records parsed from input streams.",
})
