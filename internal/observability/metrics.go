package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics keeps request and error counters both in memory, for quick
// inspection in tests, and in a Prometheus registry served at /metrics.
type Metrics struct {
	mu           sync.Mutex
	requestCount map[string]int64
	errorCount   map[string]int64

	registry        *prometheus.Registry
	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	errorTotal      *prometheus.CounterVec
	directoryQuery  *prometheus.HistogramVec
}

// NewMetrics initializes metrics storage on a private registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		requestCount: make(map[string]int64),
		errorCount:   make(map[string]int64),
		registry:     reg,
		requestTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "admin_console_http_requests_total",
			Help: "HTTP requests by route, method and status",
		}, []string{"path", "method", "status"}),
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "admin_console_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"path", "method"}),
		errorTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "admin_console_http_errors_total",
			Help: "HTTP errors by route, method and error code",
		}, []string{"path", "method", "code"}),
		directoryQuery: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "admin_console_directory_query_results",
			Help:    "Matching users per directory query",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 500},
		}, []string{"sort_by"}),
	}
}

// Registry exposes the Prometheus registry backing these metrics.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordRequest increments counters for requests.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	key := pathKey(path, method, status)
	m.mu.Lock()
	m.requestCount[key]++
	m.mu.Unlock()

	m.requestTotal.WithLabelValues(path, method, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(path, method).Observe(duration.Seconds())
}

// RecordError increments error counters.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	key := path + "|" + method + "|" + code
	m.mu.Lock()
	m.errorCount[key]++
	m.mu.Unlock()

	m.errorTotal.WithLabelValues(path, method, code).Inc()
}

// RecordDirectoryQuery tracks how many users matched a directory query.
func (m *Metrics) RecordDirectoryQuery(sortBy string, total int) {
	if m == nil {
		return
	}
	m.directoryQuery.WithLabelValues(sortBy).Observe(float64(total))
}

// RequestCount returns the in-memory request counter for a route.
func (m *Metrics) RequestCount(path, method string, status int) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.requestCount[pathKey(path, method, status)]
}

// ErrorCount returns the in-memory error counter for a route and code.
func (m *Metrics) ErrorCount(path, method, code string) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.errorCount[path+"|"+method+"|"+code]
}

func pathKey(path, method string, status int) string {
	return path + "|" + method + "|" + strconv.Itoa(status)
}
