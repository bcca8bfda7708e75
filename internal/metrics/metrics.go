// Package metrics собирает метрики prometheus: HTTP-запросы и события трекера.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "leaflog"

// Metrics набор метрик сервиса со своим реестром.
type Metrics struct {
	registry           *prometheus.Registry
	requests           *prometheus.CounterVec
	duration           *prometheus.HistogramVec
	plants             prometheus.Gauge
	remindersCreated   prometheus.Counter
	remindersCompleted prometheus.Counter
	remindersCascaded  prometheus.Counter
	careEvents         *prometheus.CounterVec
}

// New регистрирует все метрики в новом реестре.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		plants: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "plants",
			Help:      "Plants currently tracked.",
		}),
		remindersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reminders_created_total",
			Help:      "Reminders created.",
		}),
		remindersCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reminders_completed_total",
			Help:      "Reminders marked completed.",
		}),
		remindersCascaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reminders_cascade_deleted_total",
			Help:      "Reminders removed together with their plant.",
		}),
		careEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "care_events_total",
			Help:      "Care actions logged, by kind.",
		}, []string{"kind"}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests,
		m.duration,
		m.plants,
		m.remindersCreated,
		m.remindersCompleted,
		m.remindersCascaded,
		m.careEvents,
	)
	return m
}

// Handler отдаёт метрики в формате prometheus.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Middleware считает запросы и их длительность по шаблону маршрута chi.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unknown"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.requests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		m.duration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

// SetPlants выставляет текущее число растений.
func (m *Metrics) SetPlants(n int) {
	m.plants.Set(float64(n))
}

// PlantAdded увеличивает число растений на одно.
func (m *Metrics) PlantAdded() {
	m.plants.Inc()
}

// PlantRemoved уменьшает число растений на одно.
func (m *Metrics) PlantRemoved() {
	m.plants.Dec()
}

// ReminderCreated увеличивает счётчик созданных напоминаний.
func (m *Metrics) ReminderCreated() {
	m.remindersCreated.Inc()
}

// ReminderCompleted увеличивает счётчик выполненных напоминаний.
func (m *Metrics) ReminderCompleted() {
	m.remindersCompleted.Inc()
}

// RemindersCascaded учитывает напоминания, удалённые вместе с растением.
func (m *Metrics) RemindersCascaded(n int) {
	m.remindersCascaded.Add(float64(n))
}

// CareEvent учитывает действие по уходу: water, growth_log, fertilizer.
func (m *Metrics) CareEvent(kind string) {
	m.careEvents.WithLabelValues(kind).Inc()
}
