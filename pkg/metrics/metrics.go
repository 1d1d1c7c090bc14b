// Package metrics содержит prometheus-коллекторы сервиса:
// HTTP-запросы, SQL-запросы и состояние connection pool.
package metrics

import (
	"database/sql"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-коллекторов сервиса
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueriesTotal   *prometheus.CounterVec
	dbQueryDuration  *prometheus.HistogramVec
	dbConnsOpen      *prometheus.GaugeVec
	dbConnsIdle      *prometheus.GaugeVec
	dbConnsInUse     *prometheus.GaugeVec
	dbConnsWaitCount *prometheus.GaugeVec
}

// New регистрирует коллекторы в default registry и возвращает Metrics
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests.",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds.",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		dbQueriesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_queries_total",
			Help:        "Total number of database queries.",
			ConstLabels: constLabels,
		}, []string{"operation", "status"}),

		dbQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds.",
			ConstLabels: constLabels,
			Buckets:     []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"operation"}),

		dbConnsOpen: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections_open",
			Help:        "Number of open database connections.",
			ConstLabels: constLabels,
		}, []string{"db"}),

		dbConnsIdle: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections_idle",
			Help:        "Number of idle database connections.",
			ConstLabels: constLabels,
		}, []string{"db"}),

		dbConnsInUse: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections_in_use",
			Help:        "Number of database connections currently in use.",
			ConstLabels: constLabels,
		}, []string{"db"}),

		dbConnsWaitCount: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections_wait_count",
			Help:        "Total number of connections waited for.",
			ConstLabels: constLabels,
		}, []string{"db"}),
	}
}

// ObserveHTTPRequest фиксирует завершённый HTTP-запрос
func (m *Metrics) ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveDBQuery фиксирует выполненный SQL-запрос
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.dbQueriesTotal.WithLabelValues(operation, status).Inc()
	m.dbQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// SetDBPoolStats публикует текущее состояние connection pool
func (m *Metrics) SetDBPoolStats(dbName string, stats sql.DBStats) {
	m.dbConnsOpen.WithLabelValues(dbName).Set(float64(stats.OpenConnections))
	m.dbConnsIdle.WithLabelValues(dbName).Set(float64(stats.Idle))
	m.dbConnsInUse.WithLabelValues(dbName).Set(float64(stats.InUse))
	m.dbConnsWaitCount.WithLabelValues(dbName).Set(float64(stats.WaitCount))
}
