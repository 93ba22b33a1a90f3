package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор метрик сервиса
// Все методы безопасны для nil-получателя: при выключенных метриках передается nil
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration   *prometheus.HistogramVec
	DBQueryErrors     *prometheus.CounterVec
	DBOpenConnections prometheus.Gauge
	DBInUse           prometheus.Gauge
	DBIdle            prometheus.Gauge

	BookingsTotal      *prometheus.CounterVec
	CapacityRejections *prometheus.CounterVec
	SchedulesCreated   prometheus.Counter
	ScheduleConflicts  prometheus.Counter
}

// New создает метрики и регистрирует их в prometheus.DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer, serviceName)
}

// NewWithRegistry создает метрики и регистрирует их в переданном реестре
func NewWithRegistry(reg prometheus.Registerer, serviceName string) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "path", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),
		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency",
			ConstLabels: labels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),
		DBQueryErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_query_errors_total",
			Help:        "Total number of failed database queries",
			ConstLabels: labels,
		}, []string{"operation"}),
		DBOpenConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections",
			ConstLabels: labels,
		}),
		DBInUse: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: labels,
		}),
		DBIdle: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: labels,
		}),
		BookingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_total",
			Help:        "Booking ledger mutations by operation",
			ConstLabels: labels,
		}, []string{"operation"}),
		CapacityRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "capacity_rejections_total",
			Help:        "Requests rejected because the schedule had no room",
			ConstLabels: labels,
		}, []string{"operation"}),
		SchedulesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "schedules_created_total",
			Help:        "Schedules created individually or in bulk",
			ConstLabels: labels,
		}),
		ScheduleConflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "schedule_conflicts_total",
			Help:        "Bulk generation candidates skipped because of overlaps",
			ConstLabels: labels,
		}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBQueryErrors,
		m.DBOpenConnections,
		m.DBInUse,
		m.DBIdle,
		m.BookingsTotal,
		m.CapacityRejections,
		m.SchedulesCreated,
		m.ScheduleConflicts,
	)

	return m
}

// BookingMutation учитывает изменение реестра бронирований (create, update, cancel)
func (m *Metrics) BookingMutation(operation string) {
	if m == nil {
		return
	}
	m.BookingsTotal.WithLabelValues(operation).Inc()
}

// CapacityRejected учитывает отказ из-за нехватки мест
func (m *Metrics) CapacityRejected(operation string) {
	if m == nil {
		return
	}
	m.CapacityRejections.WithLabelValues(operation).Inc()
}

// SchedulesAdded учитывает созданные расписания
func (m *Metrics) SchedulesAdded(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.SchedulesCreated.Add(float64(n))
}

// ScheduleConflictsFound учитывает пропущенные при массовом создании слоты
func (m *Metrics) ScheduleConflictsFound(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.ScheduleConflicts.Add(float64(n))
}

// ObserveHTTPRequest учитывает обработанный HTTP запрос
// path ожидается в виде шаблона маршрута, чтобы не плодить метки
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}
