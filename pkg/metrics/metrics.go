package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор коллекторов сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration    *prometheus.HistogramVec
	DBOpenConnections  prometheus.Gauge
	DBInUseConnections prometheus.Gauge
	DBIdleConnections  prometheus.Gauge
	DBWaitCount        prometheus.Gauge

	SlotsEvaluated     *prometheus.CounterVec
	SlotsBlocked       *prometheus.CounterVec
	ReservationsByCode *prometheus.CounterVec
}

// New регистрирует коллекторы в переданном registerer
// В production передается prometheus.DefaultRegisterer, в тестах - prometheus.NewRegistry()
func New(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		DBQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency by statement kind",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation", "status"}),

		DBOpenConnections: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Open connections in the pool",
			ConstLabels: constLabels,
		}),
		DBInUseConnections: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Connections currently in use",
			ConstLabels: constLabels,
		}),
		DBIdleConnections: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Idle connections in the pool",
			ConstLabels: constLabels,
		}),
		DBWaitCount: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: constLabels,
		}),

		SlotsEvaluated: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "reservation_slots_evaluated_total",
			Help:        "Candidate slots checked for availability",
			ConstLabels: constLabels,
		}, []string{"restaurant"}),

		SlotsBlocked: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "reservation_slots_blocked_total",
			Help:        "Candidate slots blocked by existing reservations",
			ConstLabels: constLabels,
		}, []string{"restaurant"}),

		ReservationsByCode: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "reservations_created_total",
			Help:        "Reservation creation attempts by outcome",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
	}
}

// RecordAvailability учитывает проверенные и занятые слоты одного расчета доступности
func (m *Metrics) RecordAvailability(restaurantID int64, evaluated, blocked int) {
	label := strconv.FormatInt(restaurantID, 10)
	m.SlotsEvaluated.WithLabelValues(label).Add(float64(evaluated))
	m.SlotsBlocked.WithLabelValues(label).Add(float64(blocked))
}

// RecordReservation учитывает результат попытки создать бронирование
func (m *Metrics) RecordReservation(outcome string) {
	m.ReservationsByCode.WithLabelValues(outcome).Inc()
}
