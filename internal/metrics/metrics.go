// Package metrics собирает счётчики Prometheus сервиса коротких ссылок.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "shortlink"

// Компоненты, сбои которых не прерывают основную операцию
const (
	ComponentCache     = "cache"
	ComponentRanker    = "ranker"
	ComponentPublisher = "publisher"
	ComponentLimiter   = "limiter"
)

// Исходы обработки события посещения
const (
	VisitPublished = "published"
	VisitDropped   = "dropped"
	VisitFailed    = "failed"
)

// Metrics набор счётчиков сервиса
type Metrics struct {
	CacheHits            prometheus.Counter
	CacheMisses          prometheus.Counter
	Evictions            prometheus.Counter
	CollaboratorFailures *prometheus.CounterVec
	VisitEvents          *prometheus.CounterVec
	RateLimited          prometheus.Counter
}

// New создаёт счётчики и регистрирует их в reg
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "hits_total",
			Help:      "Number of lookups served from the hot cache.",
		}),
		CacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "misses_total",
			Help:      "Number of lookups that fell through to the store.",
		}),
		Evictions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "evictions_total",
			Help:      "Number of short codes evicted from the ranking and the cache.",
		}),
		CollaboratorFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "collaborator_failures_total",
			Help:      "Best-effort collaborator failures swallowed by the service.",
		}, []string{"component", "operation"}),
		VisitEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "visits",
			Name:      "events_total",
			Help:      "Visit events by outcome.",
		}, []string{"result"}),
		RateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the rate limiter.",
		}),
	}

	reg.MustRegister(
		m.CacheHits,
		m.CacheMisses,
		m.Evictions,
		m.CollaboratorFailures,
		m.VisitEvents,
		m.RateLimited,
	)

	return m
}

// NewNop возвращает незарегистрированные счётчики для тестов
func NewNop() *Metrics {
	return New(prometheus.NewRegistry())
}

// CollaboratorFailed учитывает проглоченный сбой вспомогательного компонента
func (m *Metrics) CollaboratorFailed(component, operation string) {
	m.CollaboratorFailures.WithLabelValues(component, operation).Inc()
}

// Visit учитывает исход события посещения
func (m *Metrics) Visit(result string) {
	m.VisitEvents.WithLabelValues(result).Inc()
}
