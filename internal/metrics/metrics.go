// Package metrics provides Prometheus instrumentation for the crypto operations.
// Handlers call RecordOperation once per request, the collectors are served on /metrics.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	// Namespace is the Prometheus namespace for all crypto API metrics
	Namespace = "crypto_api"

	// Label names
	LabelOperation = "operation"
	LabelStatus    = "status"

	// Status values
	StatusSuccess = "success"
	StatusError   = "error"
	// StatusInvalid is used by verify when the signature does not match
	StatusInvalid = "invalid"

	// Operation names
	OpEncrypt = "encrypt"
	OpDecrypt = "decrypt"
	OpSign    = "sign"
	OpVerify  = "verify"
)

var (
	// OperationsTotal tracks the total number of operations by type and status.
	OperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "operations_total",
			Help:      "Total number of crypto API operations by type and status",
		},
		[]string{LabelOperation, LabelStatus},
	)

	// OperationDuration tracks the duration of operations in seconds.
	// The operations are CPU bound and small, so the buckets start at 100µs.
	OperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "operation_duration_seconds",
			Help:      "Duration of crypto API operations in seconds",
			Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
		},
		[]string{LabelOperation},
	)

	// DecryptFallbacksTotal counts /decrypt values that could not be decoded and were returned unchanged.
	DecryptFallbacksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "decrypt_fallbacks_total",
			Help:      "Total number of decrypt values returned unchanged because they were not valid tokens",
		},
	)
)

// RecordOperation records an operation with its status and the time elapsed since start.
//
// Example:
//
//	start := time.Now()
//	sig, err := signer.Sign(value)
//	if err != nil {
//	    metrics.RecordOperation(metrics.OpSign, metrics.StatusError, start)
//	}
func RecordOperation(operation, status string, start time.Time) {
	OperationsTotal.WithLabelValues(operation, status).Inc()
	OperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// RecordDecryptFallbacks adds n to the decrypt fallback counter.
func RecordDecryptFallbacks(n int) {
	if n > 0 {
		DecryptFallbacksTotal.Add(float64(n))
	}
}

// Handler returns the handler for the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
