package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// События жизненного цикла бронирований для ReservationEvents
const (
	EventCreated     = "created"
	EventFulfilled   = "fulfilled"
	EventUnfulfilled = "unfulfilled"
	EventRescheduled = "rescheduled"
	EventSwept       = "swept"
	EventSlotTaken   = "slot_taken"
)

// Metrics набор метрик сервиса.
// Все методы безопасны для nil-получателя: при выключенных метриках ничего не делают.
type Metrics struct {
	serviceName string

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueriesTotal    *prometheus.CounterVec
	DBQueryDuration   *prometheus.HistogramVec
	DBOpenConnections *prometheus.GaugeVec
	DBInUse           *prometheus.GaugeVec
	DBIdle            *prometheus.GaugeVec

	ReservationEvents *prometheus.CounterVec
	ScheduleConflicts *prometheus.CounterVec
	SlotsServed       *prometheus.HistogramVec
	EmailQueueLength  *prometheus.GaugeVec
}

// New регистрирует метрики в глобальном реестре prometheus
func New(serviceName string) *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer, serviceName)
}

// NewWithRegistry регистрирует метрики в переданном реестре
func NewWithRegistry(reg prometheus.Registerer, serviceName string) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		serviceName: serviceName,

		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "route", "status"}),

		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "route"}),

		DBQueriesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "db_queries_total",
			Help: "Total number of database queries",
		}, []string{"service", "operation", "status"}),

		DBQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query latency",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"service", "operation"}),

		DBOpenConnections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_open_connections",
			Help: "Number of established connections",
		}, []string{"service"}),

		DBInUse: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_in_use_connections",
			Help: "Number of connections currently in use",
		}, []string{"service"}),

		DBIdle: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_idle_connections",
			Help: "Number of idle connections",
		}, []string{"service"}),

		ReservationEvents: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "reservation_events_total",
			Help: "Reservation lifecycle events",
		}, []string{"service", "event"}),

		ScheduleConflicts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "schedule_conflicts_total",
			Help: "Pending reservations that blocked a schedule change",
		}, []string{"service"}),

		SlotsServed: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "available_slots_served",
			Help:    "Number of available slots returned per request",
			Buckets: []float64{0, 1, 4, 8, 16, 32, 64},
		}, []string{"service"}),

		EmailQueueLength: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "email_queue_length",
			Help: "Confirmation emails waiting in the queue",
		}, []string{"service"}),
	}
}

// ServiceName имя сервиса в лейблах
func (m *Metrics) ServiceName() string {
	if m == nil {
		return ""
	}
	return m.serviceName
}

// IncReservationEvent учитывает событие жизненного цикла бронирования
func (m *Metrics) IncReservationEvent(event string) {
	if m == nil {
		return
	}
	m.ReservationEvents.WithLabelValues(m.serviceName, event).Inc()
}

// AddScheduleConflicts учитывает бронирования, помешавшие изменить расписание
func (m *Metrics) AddScheduleConflicts(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.ScheduleConflicts.WithLabelValues(m.serviceName).Add(float64(n))
}

// ObserveSlots учитывает количество отданных слотов
func (m *Metrics) ObserveSlots(n int) {
	if m == nil {
		return
	}
	m.SlotsServed.WithLabelValues(m.serviceName).Observe(float64(n))
}

// SetEmailQueueLength текущая длина очереди писем
func (m *Metrics) SetEmailQueueLength(n int64) {
	if m == nil {
		return
	}
	m.EmailQueueLength.WithLabelValues(m.serviceName).Set(float64(n))
}

// ObserveHTTPRequest учитывает HTTP запрос. route - шаблон маршрута, а не фактический путь.
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(m.serviceName, method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(m.serviceName, method, route).Observe(duration.Seconds())
}
