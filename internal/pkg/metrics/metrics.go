package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the collectors exported on /metrics.
type Metrics struct {
	HTTPRequests      *prometheus.CounterVec
	HTTPDuration      *prometheus.HistogramVec
	DBQueryDuration   *prometheus.HistogramVec
	DashboardBuilds   *prometheus.CounterVec
	DashboardFallback prometheus.Counter
}

// NewMetrics registers all collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "dashboard_http_requests_total",
			Help: "Total HTTP requests by route pattern, method and status code.",
		}, []string{"route", "method", "status"}),
		HTTPDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dashboard_http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),
		DBQueryDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dashboard_db_query_duration_seconds",
			Help:    "Duration of database queries.",
			Buckets: prometheus.DefBuckets,
		}, []string{"query_type"}), // query_type: 'attendance_records', 'manager_tasks'
		DashboardBuilds: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "dashboard_tiles_builds_total",
			Help: "Tiles payloads assembled, by branch (manager, employee, empty).",
		}, []string{"branch"}),
		DashboardFallback: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "dashboard_tiles_fallback_total",
			Help: "Tiles requests answered with the empty payload because assembly failed.",
		}),
	}

	m.DashboardBuilds.WithLabelValues("manager")
	m.DashboardBuilds.WithLabelValues("employee")
	m.DashboardBuilds.WithLabelValues("empty")

	return m
}

// ObserveQuery records the time since start under queryType. Safe on a nil receiver.
func (m *Metrics) ObserveQuery(queryType string, start time.Time) {
	if m == nil {
		return
	}
	m.DBQueryDuration.WithLabelValues(queryType).Observe(time.Since(start).Seconds())
}

// Build counts one assembled payload. Safe on a nil receiver.
func (m *Metrics) Build(branch string) {
	if m == nil {
		return
	}
	m.DashboardBuilds.WithLabelValues(branch).Inc()
}

// Fallback counts one failed assembly. Safe on a nil receiver.
func (m *Metrics) Fallback() {
	if m == nil {
		return
	}
	m.DashboardFallback.Inc()
}
