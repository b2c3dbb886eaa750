package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// ModulesTotal tracks the number of registered modules by their current
	// process state (Init, Running, Error, Exit, InitCrashLoopBackoff).
	ModulesTotal = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "hyperion_modules_total",
			Help: "Total number of registered modules by process state",
		},
		[]string{"state"},
	)

	// ModuleRestartsTotal counts every supervision-loop iteration that tried
	// to spawn a fresh process for a module, whether the spawn succeeded
	// (Running) or failed (InitCrashLoopBackOff).
	ModuleRestartsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hyperion_module_restarts_total",
			Help: "Total number of process restarts per module",
		},
		[]string{"module"},
	)

	// ModuleBackoffSeconds is the current exponential backoff delay that will
	// be applied before the next restart attempt.
	ModuleBackoffSeconds = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "hyperion_module_backoff_seconds",
			Help: "Current supervision backoff delay in seconds",
		},
		[]string{"module"},
	)

	// BusSubscribersTotal tracks live subscriber counts per topic on the
	// event bus.
	BusSubscribersTotal = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "hyperion_bus_subscribers_total",
			Help: "Total number of live subscribers by topic",
		},
		[]string{"topic"},
	)

	// APIRequestsTotal counts gRPC adapter calls by method and result code.
	APIRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hyperion_api_requests_total",
			Help: "Total number of API requests by method and status code",
		},
		[]string{"method", "code"},
	)

	// APIRequestDuration observes handler latency per gRPC method.
	APIRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hyperion_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	// BinaryAcquisitionDuration observes how long an HTTP(S) download of a
	// module's binary took. file:// locations are used in place and are not
	// observed.
	BinaryAcquisitionDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "hyperion_binary_acquisition_duration_seconds",
			Help:    "Time taken to acquire a module binary in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)

func init() {
	prometheus.MustRegister(
		ModulesTotal,
		ModuleRestartsTotal,
		ModuleBackoffSeconds,
		BusSubscribersTotal,
		APIRequestsTotal,
		APIRequestDuration,
		BinaryAcquisitionDuration,
	)
}

// Handler returns the Prometheus scrape handler for mounting on the metrics
// HTTP mux.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Timer is a helper for timing operations against a histogram.
type Timer struct {
	start time.Time
}

// NewTimer creates a new timer started at the current instant.
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// ObserveDuration records the elapsed duration to a histogram.
func (t *Timer) ObserveDuration(histogram prometheus.Histogram) {
	histogram.Observe(time.Since(t.start).Seconds())
}

// ObserveDurationVec records the elapsed duration to a histogram vec with
// labels.
func (t *Timer) ObserveDurationVec(histogram prometheus.ObserverVec, labels ...string) {
	histogram.WithLabelValues(labels...).Observe(time.Since(t.start).Seconds())
}

// Duration returns the elapsed time since the timer started.
func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}
